package food

import (
	"context"
	"time"

	"fridgecircle-api/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string) error
		GetFoodItems(ctx context.Context, userID string, category string, page, limit int) ([]*entities.FoodItem, int64, error)
		GetFoodItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error)
		ReplaceShares(ctx context.Context, foodItem *entities.FoodItem, shares []*entities.FoodItemShare) error
		GetDashboardStats(ctx context.Context, userID string, now time.Time, threshold time.Time) (map[string]int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).
		Preload("Shares").
		Where("id = ?", id).
		First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_item_id = ?", id).Delete(&entities.FoodItemShare{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.FoodItem{}).Error
	})
}

func (r *foodRepository) GetFoodItems(ctx context.Context, userID string, category string, page, limit int) ([]*entities.FoodItem, int64, error) {
	var foodItems []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if category != "all" && category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Model(&entities.FoodItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Shares").
		Offset(offset).Limit(limit).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, 0, err
	}

	return foodItems, count, nil
}

// GetFoodItemsByExpiryRange returns items with startDate < expiry_date < endDate,
// both bounds strict. Expired items never qualify.
func (r *foodRepository) GetFoodItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date > ? AND expiry_date < ?",
			userID, startDate, endDate).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) ReplaceShares(ctx context.Context, foodItem *entities.FoodItem, shares []*entities.FoodItemShare) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_item_id = ?", foodItem.ID).
			Delete(&entities.FoodItemShare{}).Error; err != nil {
			return err
		}

		if len(shares) > 0 {
			if err := tx.Create(shares).Error; err != nil {
				return err
			}
		}

		foodItem.IsShared = len(shares) > 0
		return tx.Save(foodItem).Error
	})
}

func (r *foodRepository) GetDashboardStats(ctx context.Context, userID string, now time.Time, threshold time.Time) (map[string]int64, error) {
	var totalItems, freshItems, expiringItems, expiredItems, sharedItems int64

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("user_id = ?", userID).
		Count(&totalItems).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("user_id = ? AND expiry_date >= ?", userID, threshold).
		Count(&freshItems).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("user_id = ? AND expiry_date >= ? AND expiry_date < ?", userID, now, threshold).
		Count(&expiringItems).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("user_id = ? AND expiry_date < ?", userID, now).
		Count(&expiredItems).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("user_id = ? AND is_shared = ?", userID, true).
		Count(&sharedItems).Error; err != nil {
		return nil, err
	}

	stats := map[string]int64{
		"total_items":    totalItems,
		"fresh_items":    freshItems,
		"expiring_items": expiringItems,
		"expired_items":  expiredItems,
		"shared_items":   sharedItems,
	}

	return stats, nil
}
