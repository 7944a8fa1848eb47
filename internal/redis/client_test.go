package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"storefront/internal/cart"
	"storefront/internal/models"
	"storefront/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	client, err := Initialize(url)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCollectionRoundTrip(t *testing.T) {
	client := newTestClient(t)
	name := "test-" + uuid.NewString()
	t.Cleanup(func() { client.rdb.Del(context.Background(), "collection:"+name) })

	_, err := client.Load(name)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, client.Save(name, []byte(`[{"id":"1"}]`)))
	payload, err := client.Load(name)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(payload))
}

func TestCartSessions(t *testing.T) {
	carts := newTestClient(t).Carts(time.Minute)
	cartID := uuid.NewString()

	_, found, err := carts.LoadCart(cartID)
	require.NoError(t, err)
	assert.False(t, found)

	items := []cart.Item{{Product: models.Product{ID: "p1", Name: "شیر پرچرب", Price: 25000}, Quantity: 2}}
	require.NoError(t, carts.SaveCart(cartID, items))

	loaded, found, err := carts.LoadCart(cartID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, items, loaded)

	require.NoError(t, carts.DeleteCart(cartID))
	_, found, err = carts.LoadCart(cartID)
	require.NoError(t, err)
	assert.False(t, found)
}
