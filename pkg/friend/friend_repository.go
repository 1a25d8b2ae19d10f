package friend

import (
	"context"

	"fridgecircle-api/entities"

	"gorm.io/gorm"
)

type (
	FriendRepository interface {
		AddFriend(ctx context.Context, friend *entities.Friend) error
		GetFriendByID(ctx context.Context, id string) (*entities.Friend, error)
		UpdateFriend(ctx context.Context, friend *entities.Friend) error
		DeleteFriend(ctx context.Context, id string) error
		GetFriendsByStatus(ctx context.Context, userID string, status string) ([]*entities.Friend, error)
		CheckFriendEmailExists(ctx context.Context, userID string, email string) (bool, error)
	}

	friendRepository struct {
		db *gorm.DB
	}
)

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) AddFriend(ctx context.Context, friend *entities.Friend) error {
	return r.db.WithContext(ctx).Create(friend).Error
}

func (r *friendRepository) GetFriendByID(ctx context.Context, id string) (*entities.Friend, error) {
	var friend entities.Friend
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&friend).Error; err != nil {
		return nil, err
	}
	return &friend, nil
}

func (r *friendRepository) UpdateFriend(ctx context.Context, friend *entities.Friend) error {
	return r.db.WithContext(ctx).Save(friend).Error
}

func (r *friendRepository) DeleteFriend(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("friend_id = ?", id).Delete(&entities.FoodItemShare{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Friend{}).Error
	})
}

func (r *friendRepository) GetFriendsByStatus(ctx context.Context, userID string, status string) ([]*entities.Friend, error) {
	var friends []*entities.Friend

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("created_at desc").Find(&friends).Error; err != nil {
		return nil, err
	}

	return friends, nil
}

func (r *friendRepository) CheckFriendEmailExists(ctx context.Context, userID string, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Friend{}).
		Where("user_id = ? AND email = ?", userID, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
