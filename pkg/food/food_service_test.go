package food

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"fridgecircle-api/domain"
	"fridgecircle-api/entities"
	"fridgecircle-api/internal/utils/webhook"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFoodRepository struct {
	items  map[string]*entities.FoodItem
	shares map[string][]*entities.FoodItemShare
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{
		items:  make(map[string]*entities.FoodItem),
		shares: make(map[string][]*entities.FoodItemShare),
	}
}

func (r *fakeFoodRepository) AddFoodItem(_ context.Context, foodItem *entities.FoodItem) error {
	r.items[foodItem.ID.String()] = foodItem
	return nil
}

func (r *fakeFoodRepository) GetFoodItemByID(_ context.Context, id string) (*entities.FoodItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakeFoodRepository) UpdateFoodItem(_ context.Context, foodItem *entities.FoodItem) error {
	r.items[foodItem.ID.String()] = foodItem
	return nil
}

func (r *fakeFoodRepository) DeleteFoodItem(_ context.Context, id string) error {
	delete(r.items, id)
	delete(r.shares, id)
	return nil
}

func (r *fakeFoodRepository) GetFoodItems(_ context.Context, userID string, category string, _, _ int) ([]*entities.FoodItem, int64, error) {
	var items []*entities.FoodItem
	for _, item := range r.items {
		if item.UserID.String() != userID {
			continue
		}
		if category != "all" && category != "" && item.Category != category {
			continue
		}
		items = append(items, item)
	}
	return items, int64(len(items)), nil
}

func (r *fakeFoodRepository) GetFoodItemsByExpiryRange(_ context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	for _, item := range r.items {
		if item.UserID.String() != userID {
			continue
		}
		if item.ExpiryDate.After(startDate) && item.ExpiryDate.Before(endDate) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeFoodRepository) ReplaceShares(_ context.Context, foodItem *entities.FoodItem, shares []*entities.FoodItemShare) error {
	r.shares[foodItem.ID.String()] = shares
	foodItem.IsShared = len(shares) > 0
	return nil
}

func (r *fakeFoodRepository) GetDashboardStats(_ context.Context, userID string, now time.Time, threshold time.Time) (map[string]int64, error) {
	stats := map[string]int64{}
	for _, item := range r.items {
		if item.UserID.String() != userID {
			continue
		}
		stats["total_items"]++
		switch {
		case item.ExpiryDate.Before(now):
			stats["expired_items"]++
		case item.ExpiryDate.Before(threshold):
			stats["expiring_items"]++
		default:
			stats["fresh_items"]++
		}
		if item.IsShared {
			stats["shared_items"]++
		}
	}
	return stats, nil
}

type fakeFriendRepository struct {
	friends map[string]*entities.Friend
}

func newFakeFriendRepository() *fakeFriendRepository {
	return &fakeFriendRepository{friends: make(map[string]*entities.Friend)}
}

func (r *fakeFriendRepository) AddFriend(_ context.Context, friend *entities.Friend) error {
	r.friends[friend.ID.String()] = friend
	return nil
}

func (r *fakeFriendRepository) GetFriendByID(_ context.Context, id string) (*entities.Friend, error) {
	friend, ok := r.friends[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return friend, nil
}

func (r *fakeFriendRepository) UpdateFriend(_ context.Context, friend *entities.Friend) error {
	r.friends[friend.ID.String()] = friend
	return nil
}

func (r *fakeFriendRepository) DeleteFriend(_ context.Context, id string) error {
	delete(r.friends, id)
	return nil
}

func (r *fakeFriendRepository) GetFriendsByStatus(_ context.Context, userID string, status string) ([]*entities.Friend, error) {
	var friends []*entities.Friend
	for _, friend := range r.friends {
		if friend.UserID.String() == userID && friend.Status == status {
			friends = append(friends, friend)
		}
	}
	return friends, nil
}

func (r *fakeFriendRepository) CheckFriendEmailExists(_ context.Context, userID string, email string) (bool, error) {
	for _, friend := range r.friends {
		if friend.UserID.String() == userID && friend.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeNotifier struct {
	expiringCalls [][]webhook.ItemPayload
	sharedItems   []webhook.ItemPayload
	sharedEmails  [][]string
	err           error
}

func (n *fakeNotifier) NotifyExpiringItems(_ context.Context, items []webhook.ItemPayload) error {
	n.expiringCalls = append(n.expiringCalls, items)
	return n.err
}

func (n *fakeNotifier) ShareItem(_ context.Context, item webhook.ItemPayload, friendEmails []string) error {
	n.sharedItems = append(n.sharedItems, item)
	n.sharedEmails = append(n.sharedEmails, friendEmails)
	return n.err
}

type fakeS3 struct{}

func (fakeS3) UploadFile(string, *multipart.FileHeader, string, ...string) (string, error) {
	return "food-items/fake", nil
}

func (fakeS3) UpdateFile(string, *multipart.FileHeader, ...string) (string, error) {
	return "food-items/fake", nil
}

func (fakeS3) DeleteFile(string) error { return nil }

func (fakeS3) GetPublicLinkKey(objectKey string) string { return "https://bucket/" + objectKey }

func (fakeS3) GetObjectKeyFromLink(string) string { return "" }

func newTestService() (FoodService, *fakeFoodRepository, *fakeFriendRepository, *fakeNotifier) {
	foodRepo := newFakeFoodRepository()
	friendRepo := newFakeFriendRepository()
	notifier := &fakeNotifier{}
	service := NewFoodService(foodRepo, friendRepo, notifier, fakeS3{})
	return service, foodRepo, friendRepo, notifier
}

func seedItem(repo *fakeFoodRepository, userID uuid.UUID, name string, expiry time.Time) *entities.FoodItem {
	item := &entities.FoodItem{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Quantity:    1,
		UnitMeasure: "pcs",
		ExpiryDate:  expiry,
		Category:    "other",
	}
	repo.items[item.ID.String()] = item
	return item
}

func seedFriend(repo *fakeFriendRepository, userID uuid.UUID, email string, status string) *entities.Friend {
	friend := &entities.Friend{
		ID:     uuid.New(),
		UserID: userID,
		Email:  email,
		Status: status,
	}
	repo.friends[friend.ID.String()] = friend
	return friend
}

func TestClassifyExpiry(t *testing.T) {
	reference := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   string
	}{
		{"yesterday is expired", reference.AddDate(0, 0, -1), entities.StatusExpired},
		{"one second ago is expired", reference.Add(-time.Second), entities.StatusExpired},
		{"reference instant is expiring soon", reference, entities.StatusExpiringSoon},
		{"tomorrow is expiring soon", reference.AddDate(0, 0, 1), entities.StatusExpiringSoon},
		{"just under three days is expiring soon", reference.AddDate(0, 0, 3).Add(-time.Second), entities.StatusExpiringSoon},
		{"exactly three days is fresh", reference.AddDate(0, 0, 3), entities.StatusFresh},
		{"ten days out is fresh", reference.AddDate(0, 0, 10), entities.StatusFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyExpiry(tt.expiry, reference))
		})
	}
}

func TestAddFoodItemAssignsStatus(t *testing.T) {
	service, _, _, _ := newTestService()
	userID := uuid.NewString()

	tests := []struct {
		name       string
		expiryDate string
		want       string
	}{
		{"milk expiring in two days", time.Now().AddDate(0, 0, 2).Format("2006-01-02"), entities.StatusExpiringSoon},
		{"milk expiring in ten days", time.Now().AddDate(0, 0, 10).Format("2006-01-02"), entities.StatusFresh},
		{"milk expired yesterday", time.Now().AddDate(0, 0, -1).Format("2006-01-02"), entities.StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
				Name:        "Milk",
				Quantity:    1,
				UnitMeasure: "liter",
				ExpiryDate:  tt.expiryDate,
				Category:    "dairy",
			}, userID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Status)
		})
	}
}

func TestAddFoodItemInvalidExpiryDate(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:        "Milk",
		Quantity:    1,
		UnitMeasure: "liter",
		ExpiryDate:  "not-a-date",
		Category:    "dairy",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestGetExpiringItemsWindow(t *testing.T) {
	service, foodRepo, _, _ := newTestService()
	userID := uuid.New()
	now := time.Now()

	seedItem(foodRepo, userID, "Milk", now.AddDate(0, 0, 2))
	seedItem(foodRepo, userID, "Apples", now.AddDate(0, 0, 10))
	seedItem(foodRepo, userID, "Yogurt", now.AddDate(0, 0, -1))

	items, err := service.GetExpiringItems(context.Background(), userID.String())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, entities.StatusExpiringSoon, items[0].Status)
}

func TestNotifyExpiringItemsPayload(t *testing.T) {
	service, foodRepo, _, notifier := newTestService()
	userID := uuid.New()

	seedItem(foodRepo, userID, "Milk", time.Now().AddDate(0, 0, 2))
	seedItem(foodRepo, userID, "Apples", time.Now().AddDate(0, 0, 10))

	err := service.NotifyExpiringItems(context.Background(), userID.String())

	require.NoError(t, err)
	require.Len(t, notifier.expiringCalls, 1)
	require.Len(t, notifier.expiringCalls[0], 1)
	assert.Equal(t, "Milk", notifier.expiringCalls[0][0].Name)
}

func TestShareFoodItemWithFiveRecipients(t *testing.T) {
	service, foodRepo, friendRepo, notifier := newTestService()
	userID := uuid.New()
	item := seedItem(foodRepo, userID, "Bread", time.Now().AddDate(0, 0, 4))

	friendIDs := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		friend := seedFriend(friendRepo, userID, uuid.NewString()+"@example.com", entities.FriendStatusAccepted)
		friendIDs = append(friendIDs, friend.ID.String())
	}

	err := service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{
		FoodItemID: item.ID.String(),
		FriendIDs:  friendIDs,
	}, userID.String())

	require.NoError(t, err)
	assert.Len(t, foodRepo.shares[item.ID.String()], 5)
	assert.True(t, item.IsShared)
	require.Len(t, notifier.sharedEmails, 1)
	assert.Len(t, notifier.sharedEmails[0], 5)
}

func TestShareFoodItemRecipientCap(t *testing.T) {
	service, foodRepo, friendRepo, notifier := newTestService()
	userID := uuid.New()
	item := seedItem(foodRepo, userID, "Bread", time.Now().AddDate(0, 0, 4))

	friendIDs := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		friend := seedFriend(friendRepo, userID, uuid.NewString()+"@example.com", entities.FriendStatusAccepted)
		friendIDs = append(friendIDs, friend.ID.String())
	}

	err := service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{
		FoodItemID: item.ID.String(),
		FriendIDs:  friendIDs,
	}, userID.String())

	assert.ErrorIs(t, err, domain.ErrTooManyRecipients)
	assert.Empty(t, foodRepo.shares[item.ID.String()])
	assert.Empty(t, notifier.sharedEmails)
}

func TestShareFoodItemDeduplicatesRecipients(t *testing.T) {
	service, foodRepo, friendRepo, _ := newTestService()
	userID := uuid.New()
	item := seedItem(foodRepo, userID, "Bread", time.Now().AddDate(0, 0, 4))
	friend := seedFriend(friendRepo, userID, "jane@example.com", entities.FriendStatusAccepted)

	err := service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{
		FoodItemID: item.ID.String(),
		FriendIDs:  []string{friend.ID.String(), friend.ID.String()},
	}, userID.String())

	require.NoError(t, err)
	assert.Len(t, foodRepo.shares[item.ID.String()], 1)
}

func TestShareFoodItemRequiresAcceptedFriend(t *testing.T) {
	service, foodRepo, friendRepo, _ := newTestService()
	userID := uuid.New()
	item := seedItem(foodRepo, userID, "Bread", time.Now().AddDate(0, 0, 4))
	friend := seedFriend(friendRepo, userID, "bob@example.com", entities.FriendStatusPending)

	err := service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{
		FoodItemID: item.ID.String(),
		FriendIDs:  []string{friend.ID.String()},
	}, userID.String())

	assert.ErrorIs(t, err, domain.ErrFriendNotAccepted)
}

func TestShareFoodItemRejectsForeignFriend(t *testing.T) {
	service, foodRepo, friendRepo, _ := newTestService()
	userID := uuid.New()
	item := seedItem(foodRepo, userID, "Bread", time.Now().AddDate(0, 0, 4))
	foreign := seedFriend(friendRepo, uuid.New(), "stranger@example.com", entities.FriendStatusAccepted)

	err := service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{
		FoodItemID: item.ID.String(),
		FriendIDs:  []string{foreign.ID.String()},
	}, userID.String())

	assert.ErrorIs(t, err, domain.ErrFriendNotFound)
}

func TestShareFoodItemUnownedItem(t *testing.T) {
	service, foodRepo, friendRepo, _ := newTestService()
	owner := uuid.New()
	item := seedItem(foodRepo, owner, "Bread", time.Now().AddDate(0, 0, 4))

	other := uuid.New()
	friend := seedFriend(friendRepo, other, "jane@example.com", entities.FriendStatusAccepted)

	err := service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{
		FoodItemID: item.ID.String(),
		FriendIDs:  []string{friend.ID.String()},
	}, other.String())

	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}

func TestGetDashboardStats(t *testing.T) {
	service, foodRepo, _, _ := newTestService()
	userID := uuid.New()
	now := time.Now()

	seedItem(foodRepo, userID, "Milk", now.AddDate(0, 0, 2))
	seedItem(foodRepo, userID, "Apples", now.AddDate(0, 0, 10))
	shared := seedItem(foodRepo, userID, "Yogurt", now.AddDate(0, 0, -1))
	shared.IsShared = true

	stats, err := service.GetDashboardStats(context.Background(), userID.String())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 1, stats.FreshItems)
	assert.Equal(t, 1, stats.ExpiringItems)
	assert.Equal(t, 1, stats.ExpiredItems)
	assert.Equal(t, 1, stats.SharedItems)
}
