package food

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"fridgecircle-api/domain"
	"fridgecircle-api/entities"
	"fridgecircle-api/internal/utils/storage"
	"fridgecircle-api/internal/utils/webhook"
	"fridgecircle-api/pkg/friend"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpiringSoonDays is the lookahead window for the expiry classifier.
const ExpiringSoonDays = 3

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error
		DeleteFoodItem(ctx context.Context, id string, userID string) error
		GetFoodItems(ctx context.Context, userID string, category string, page, limit int) ([]domain.FoodItemResponse, int64, error)
		GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error)
		GetExpiringItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error)
		NotifyExpiringItems(ctx context.Context, userID string) error
		ShareFoodItem(ctx context.Context, req domain.ShareFoodItemRequest, userID string) error
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
	}

	foodService struct {
		foodRepository   FoodRepository
		friendRepository friend.FriendRepository
		notifier         webhook.Notifier
		s3               storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, friendRepository friend.FriendRepository, notifier webhook.Notifier, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository:   foodRepository,
		friendRepository: friendRepository,
		notifier:         notifier,
		s3:               s3,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	if req.Quantity <= 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrParseUUID
	}

	foodItem := &entities.FoodItem{
		ID:          uuid.New(),
		UserID:      userUUID,
		Name:        req.Name,
		Quantity:    req.Quantity,
		UnitMeasure: req.UnitMeasure,
		ExpiryDate:  expiryDate,
		Category:    req.Category,
		Status:      ClassifyExpiry(expiryDate, time.Now()),
		Notes:       req.Notes,
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return s.toResponse(foodItem), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if req.Name != "" {
		foodItem.Name = req.Name
	}

	if req.Quantity > 0 {
		foodItem.Quantity = req.Quantity
	}

	if req.UnitMeasure != "" {
		foodItem.UnitMeasure = req.UnitMeasure
	}

	if req.Category != "" {
		foodItem.Category = req.Category
	}

	if req.Notes != "" {
		foodItem.Notes = req.Notes
	}

	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		foodItem.ExpiryDate = expiryDate
		foodItem.Status = ClassifyExpiry(expiryDate, time.Now())
	}

	return s.foodRepository.UpdateFoodItem(ctx, foodItem)
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if foodItem.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.foodRepository.DeleteFoodItem(ctx, id)
}

func (s *foodService) GetFoodItems(ctx context.Context, userID string, category string, page, limit int) ([]domain.FoodItemResponse, int64, error) {
	foodItems, count, err := s.foodRepository.GetFoodItems(ctx, userID, category, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.FoodItemResponse
	for _, item := range foodItems {
		response = append(response, s.toResponse(item))
	}

	return response, count, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	if foodItem.UserID.String() != userID {
		return domain.FoodItemResponse{}, domain.ErrUnauthorizedAccess
	}

	return s.toResponse(foodItem), nil
}

// GetExpiringItems reports items inside the lookahead window. Both bounds are
// strict, so already-expired items and items at or past the threshold are
// excluded.
func (s *foodService) GetExpiringItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error) {
	now := time.Now()
	threshold := now.AddDate(0, 0, ExpiringSoonDays)

	foodItems, err := s.foodRepository.GetFoodItemsByExpiryRange(ctx, userID, now, threshold)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, s.toResponse(item))
	}

	return response, nil
}

func (s *foodService) NotifyExpiringItems(ctx context.Context, userID string) error {
	now := time.Now()
	threshold := now.AddDate(0, 0, ExpiringSoonDays)

	foodItems, err := s.foodRepository.GetFoodItemsByExpiryRange(ctx, userID, now, threshold)
	if err != nil {
		return err
	}

	items := make([]webhook.ItemPayload, 0, len(foodItems))
	for _, item := range foodItems {
		items = append(items, webhook.ItemPayload{
			Name:       item.Name,
			Quantity:   item.Quantity,
			Unit:       item.UnitMeasure,
			ExpiryDate: item.ExpiryDate.Format(time.RFC3339),
		})
	}

	if err := s.notifier.NotifyExpiringItems(ctx, items); err != nil {
		log.Printf("Error notifying expiring items: %v", err)
		return err
	}

	return nil
}

func (s *foodService) ShareFoodItem(ctx context.Context, req domain.ShareFoodItemRequest, userID string) error {
	if len(req.FriendIDs) > entities.MaxShareRecipients {
		return domain.ErrTooManyRecipients
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	shares := make([]*entities.FoodItemShare, 0, len(req.FriendIDs))
	friendEmails := make([]string, 0, len(req.FriendIDs))
	seen := make(map[string]bool)

	for _, friendID := range req.FriendIDs {
		if seen[friendID] {
			continue
		}
		seen[friendID] = true

		f, err := s.friendRepository.GetFriendByID(ctx, friendID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrFriendNotFound
			}
			return err
		}

		if f.UserID.String() != userID {
			return domain.ErrFriendNotFound
		}

		if f.Status != entities.FriendStatusAccepted {
			return domain.ErrFriendNotAccepted
		}

		shares = append(shares, &entities.FoodItemShare{
			ID:         uuid.New(),
			FoodItemID: foodItem.ID,
			FriendID:   f.ID,
		})
		friendEmails = append(friendEmails, f.Email)
	}

	if err := s.foodRepository.ReplaceShares(ctx, foodItem, shares); err != nil {
		return err
	}

	if len(friendEmails) == 0 {
		return nil
	}

	item := webhook.ItemPayload{
		Name:       foodItem.Name,
		Quantity:   foodItem.Quantity,
		Unit:       foodItem.UnitMeasure,
		ExpiryDate: foodItem.ExpiryDate.Format(time.RFC3339),
	}

	if err := s.notifier.ShareItem(ctx, item, friendEmails); err != nil {
		log.Printf("Error sharing item through webhook: %v", err)
		return err
	}

	return nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	fileName := fmt.Sprintf("food-item-%s", foodItem.ID.String())
	var objectKey string
	var uploadErr error

	if foodItem.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
	}

	if uploadErr != nil {
		return uploadErr
	}

	foodItem.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	return s.foodRepository.UpdateFoodItem(ctx, foodItem)
}

func (s *foodService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	now := time.Now()
	threshold := now.AddDate(0, 0, ExpiringSoonDays)

	stats, err := s.foodRepository.GetDashboardStats(ctx, userID, now, threshold)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	return domain.DashboardStatsResponse{
		TotalItems:    int(stats["total_items"]),
		FreshItems:    int(stats["fresh_items"]),
		ExpiringItems: int(stats["expiring_items"]),
		ExpiredItems:  int(stats["expired_items"]),
		SharedItems:   int(stats["shared_items"]),
	}, nil
}

func (s *foodService) toResponse(item *entities.FoodItem) domain.FoodItemResponse {
	sharedWith := make([]string, 0, len(item.Shares))
	for _, share := range item.Shares {
		sharedWith = append(sharedWith, share.FriendID.String())
	}

	return domain.FoodItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Quantity:    item.Quantity,
		UnitMeasure: item.UnitMeasure,
		ExpiryDate:  item.ExpiryDate,
		Category:    item.Category,
		Status:      ClassifyExpiry(item.ExpiryDate, time.Now()),
		ImageURL:    item.ImageURL,
		Notes:       item.Notes,
		IsShared:    item.IsShared,
		SharedWith:  sharedWith,
		CreatedAt:   item.CreatedAt,
	}
}

// ClassifyExpiry buckets an item by how close it is to expiry. The comparison
// is strict on both bounds: an item expiring exactly at the threshold is still
// Fresh.
func ClassifyExpiry(expiryDate time.Time, referenceDate time.Time) string {
	if expiryDate.Before(referenceDate) {
		return entities.StatusExpired
	}

	threshold := referenceDate.AddDate(0, 0, ExpiringSoonDays)
	if expiryDate.Before(threshold) {
		return entities.StatusExpiringSoon
	}

	return entities.StatusFresh
}
