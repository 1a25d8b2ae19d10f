package friend

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"fridgecircle-api/domain"
	"fridgecircle-api/entities"
	"fridgecircle-api/internal/utils/mailing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FriendService interface {
		AddFriend(ctx context.Context, req domain.AddFriendRequest, userID string) (domain.FriendResponse, error)
		GetFriends(ctx context.Context, userID string) ([]domain.FriendResponse, error)
		GetPendingRequests(ctx context.Context, userID string) ([]domain.FriendResponse, error)
		AcceptFriendRequest(ctx context.Context, id string, userID string) error
		DeclineFriendRequest(ctx context.Context, id string, userID string) error
		RemoveFriend(ctx context.Context, id string, userID string) error
	}

	friendService struct {
		friendRepository FriendRepository
	}
)

func NewFriendService(friendRepository FriendRepository) FriendService {
	return &friendService{
		friendRepository: friendRepository,
	}
}

func (s *friendService) AddFriend(ctx context.Context, req domain.AddFriendRequest, userID string) (domain.FriendResponse, error) {
	exists, err := s.friendRepository.CheckFriendEmailExists(ctx, userID, req.Email)
	if err != nil {
		return domain.FriendResponse{}, err
	}
	if exists {
		return domain.FriendResponse{}, domain.ErrFriendAlreadyExists
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FriendResponse{}, domain.ErrParseUUID
	}

	friend := &entities.Friend{
		ID:     uuid.New(),
		UserID: userUUID,
		Name:   strings.Split(req.Email, "@")[0],
		Email:  req.Email,
		Status: entities.FriendStatusPending,
	}

	if err := s.friendRepository.AddFriend(ctx, friend); err != nil {
		return domain.FriendResponse{}, err
	}

	// Invitation mail failure must not fail the request.
	go func(email string) {
		body := fmt.Sprintf(
			"<p>You have been invited to join a FridgeCircle household. "+
				"Sign up with %s to see items shared with you.</p>", email)
		if err := mailing.SendMail(email, "FridgeCircle invitation", body); err != nil {
			log.Printf("Error sending invitation mail to %s: %v", email, err)
		}
	}(req.Email)

	return s.toResponse(friend), nil
}

func (s *friendService) GetFriends(ctx context.Context, userID string) ([]domain.FriendResponse, error) {
	friends, err := s.friendRepository.GetFriendsByStatus(ctx, userID, entities.FriendStatusAccepted)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FriendResponse, 0, len(friends))
	for _, friend := range friends {
		response = append(response, s.toResponse(friend))
	}

	return response, nil
}

func (s *friendService) GetPendingRequests(ctx context.Context, userID string) ([]domain.FriendResponse, error) {
	friends, err := s.friendRepository.GetFriendsByStatus(ctx, userID, entities.FriendStatusPending)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FriendResponse, 0, len(friends))
	for _, friend := range friends {
		response = append(response, s.toResponse(friend))
	}

	return response, nil
}

func (s *friendService) AcceptFriendRequest(ctx context.Context, id string, userID string) error {
	friend, err := s.getOwnedFriend(ctx, id, userID)
	if err != nil {
		return err
	}

	// Pending is the only state an accept is valid from.
	if friend.Status != entities.FriendStatusPending {
		return domain.ErrFriendNotPending
	}

	friend.Status = entities.FriendStatusAccepted
	return s.friendRepository.UpdateFriend(ctx, friend)
}

func (s *friendService) DeclineFriendRequest(ctx context.Context, id string, userID string) error {
	friend, err := s.getOwnedFriend(ctx, id, userID)
	if err != nil {
		return err
	}

	if friend.Status != entities.FriendStatusPending {
		return domain.ErrFriendNotPending
	}

	// Declined records are kept, they never return to Pending.
	friend.Status = entities.FriendStatusDeclined
	return s.friendRepository.UpdateFriend(ctx, friend)
}

func (s *friendService) RemoveFriend(ctx context.Context, id string, userID string) error {
	friend, err := s.getOwnedFriend(ctx, id, userID)
	if err != nil {
		return err
	}

	if friend.Status != entities.FriendStatusAccepted {
		return domain.ErrFriendNotAccepted
	}

	return s.friendRepository.DeleteFriend(ctx, id)
}

func (s *friendService) getOwnedFriend(ctx context.Context, id string, userID string) (*entities.Friend, error) {
	friend, err := s.friendRepository.GetFriendByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFriendNotFound
		}
		return nil, err
	}

	if friend.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}

	return friend, nil
}

func (s *friendService) toResponse(friend *entities.Friend) domain.FriendResponse {
	return domain.FriendResponse{
		ID:     friend.ID.String(),
		Name:   friend.Name,
		Email:  friend.Email,
		Avatar: friend.Avatar,
		Status: friend.Status,
	}
}
