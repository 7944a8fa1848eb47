package repository_test

import (
	"path/filepath"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/testutil"
	"storefront/pkg/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stuckGenerator replays ids in order, then repeats the last one.
type stuckGenerator struct {
	ids []string
	i   int
}

func (g *stuckGenerator) Next() string {
	id := g.ids[g.i]
	if g.i < len(g.ids)-1 {
		g.i++
	}
	return id
}

func sampleInput() models.OrderInput {
	items := []models.OrderItem{{Name: "شیر پرچرب", Price: 25000, Quantity: 2}}
	return models.OrderInput{
		CustomerName: "سارا احمدی",
		Phone:        "09121234567",
		Address:      "تهران، خیابان آزادی",
		Items:        items,
		TotalAmount:  models.SumItems(items),
	}
}

func TestCreateOrder(t *testing.T) {
	repo := repository.NewOrderRepository(testutil.NewStore(t), idgen.NewTimeGenerator())

	order, err := repo.Create(sampleInput())

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, int64(50000), order.TotalAmount)
	assert.False(t, order.CreatedAt.IsZero())

	stored, ok := repo.GetByID(order.ID)
	require.True(t, ok)
	assert.Equal(t, order.ID, stored.ID)
	assert.Equal(t, order.Items, stored.Items)
	assert.True(t, order.CreatedAt.Equal(stored.CreatedAt))
}

func TestOrderIDsPairwiseDistinct(t *testing.T) {
	repo := repository.NewOrderRepository(testutil.NewStore(t), idgen.NewTimeGenerator())

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		order, err := repo.Create(sampleInput())
		require.NoError(t, err)
		assert.False(t, seen[order.ID], "id %s reused", order.ID)
		seen[order.ID] = true
	}
	assert.Len(t, repo.GetAll(), 50)
}

func TestCreateSkipsIdsAlreadyStored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	first := repository.NewOrderRepository(testutil.OpenStore(t, path), &stuckGenerator{ids: []string{"100"}})
	_, err := first.Create(sampleInput())
	require.NoError(t, err)

	// a restarted process whose clock hands out an id already in history
	restarted := repository.NewOrderRepository(testutil.OpenStore(t, path), &stuckGenerator{ids: []string{"100", "100", "101"}})
	order, err := restarted.Create(sampleInput())

	require.NoError(t, err)
	assert.Equal(t, "101", order.ID)
}

func TestCreateCopiesItems(t *testing.T) {
	repo := repository.NewOrderRepository(testutil.NewStore(t), idgen.NewTimeGenerator())
	input := sampleInput()

	order, err := repo.Create(input)
	require.NoError(t, err)
	input.Items[0].Price = 1

	stored, _ := repo.GetByID(order.ID)
	assert.Equal(t, int64(25000), stored.Items[0].Price)
}

func TestGetByIDExactMatchOnly(t *testing.T) {
	repo := repository.NewOrderRepository(testutil.NewStore(t), &stuckGenerator{ids: []string{"ORD-Ab12"}})
	_, err := repo.Create(sampleInput())
	require.NoError(t, err)

	_, ok := repo.GetByID("ORD-Ab12")
	assert.True(t, ok)
	for _, probe := range []string{"ord-ab12", "ORD-AB12", "ORD-Ab1", " ORD-Ab12", "Ab12", ""} {
		_, ok := repo.GetByID(probe)
		assert.False(t, ok, "probe %q", probe)
	}
}

func TestUpdateStatusKeepsEverythingElse(t *testing.T) {
	repo := repository.NewOrderRepository(testutil.NewStore(t), idgen.NewTimeGenerator())
	created, err := repo.Create(sampleInput())
	require.NoError(t, err)
	before, _ := repo.GetByID(created.ID)

	for _, status := range []models.OrderStatus{models.OrderShipped, models.OrderCompleted, models.OrderCancelled, models.OrderPending} {
		require.NoError(t, repo.UpdateStatus(created.ID, status))
		after, ok := repo.GetByID(created.ID)
		require.True(t, ok)
		assert.Equal(t, status, after.Status)

		after.Status = before.Status
		assert.Equal(t, before, after)
	}
}

func TestUpdateStatusUnknownIDIsNoop(t *testing.T) {
	repo := repository.NewOrderRepository(testutil.NewStore(t), idgen.NewTimeGenerator())
	created, err := repo.Create(sampleInput())
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus("nonexistent", models.OrderCancelled))

	orders := repo.GetAll()
	require.Len(t, orders, 1)
	assert.Equal(t, created.ID, orders[0].ID)
	assert.Equal(t, models.OrderPending, orders[0].Status)
}

func TestEmptyHistory(t *testing.T) {
	repo := repository.NewOrderRepository(testutil.NewStore(t), idgen.NewTimeGenerator())

	assert.Empty(t, repo.GetAll())
	_, ok := repo.GetByID("nonexistent")
	assert.False(t, ok)
}

func TestOrderLifecycleScenario(t *testing.T) {
	repo := repository.NewOrderRepository(testutil.NewStore(t), idgen.NewTimeGenerator())

	o1, err := repo.Create(sampleInput())
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, o1.Status)
	assert.Equal(t, int64(50000), o1.TotalAmount)

	got, ok := repo.GetByID(o1.ID)
	require.True(t, ok)
	assert.Equal(t, o1.CustomerName, got.CustomerName)

	require.NoError(t, repo.UpdateStatus(o1.ID, models.OrderShipped))
	shipped, ok := repo.GetByID(o1.ID)
	require.True(t, ok)
	assert.Equal(t, models.OrderShipped, shipped.Status)
	assert.Equal(t, got.Items, shipped.Items)
	assert.Equal(t, got.TotalAmount, shipped.TotalAmount)
	assert.Equal(t, got.CreatedAt, shipped.CreatedAt)
	assert.Equal(t, got.Phone, shipped.Phone)
	assert.Equal(t, got.Address, shipped.Address)

	_, ok = repo.GetByID("nonexistent")
	assert.False(t, ok)
}
