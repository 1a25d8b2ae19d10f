package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyExpiringItemsPostsEvent(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewNotifier(server.URL)
	err := notifier.NotifyExpiringItems(context.Background(), []ItemPayload{
		{Name: "Milk", Quantity: 1, Unit: "liter", ExpiryDate: "2025-06-17T00:00:00Z"},
	})

	require.NoError(t, err)
	assert.Equal(t, EventExpiringItems, received["event"])

	items, ok := received["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
}

func TestShareItemPostsEvent(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	notifier := NewNotifier(server.URL)
	err := notifier.ShareItem(context.Background(), ItemPayload{Name: "Bread"}, []string{"jane@example.com"})

	require.NoError(t, err)
	assert.Equal(t, EventShareItem, received["event"])
	assert.Equal(t, []interface{}{"jane@example.com"}, received["friendEmails"])
}

func TestNotifierRejectsNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := NewNotifier(server.URL)
	err := notifier.NotifyExpiringItems(context.Background(), nil)

	assert.Error(t, err)
}

func TestNotifierRequiresURL(t *testing.T) {
	notifier := NewNotifier("")

	err := notifier.ShareItem(context.Background(), ItemPayload{Name: "Bread"}, []string{"jane@example.com"})

	assert.Error(t, err)
}
