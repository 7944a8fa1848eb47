package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/testutil"
	"storefront/pkg/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func useTempStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storectl.db")
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", path)
	t.Setenv("CART_STORE", "memory")
	return path
}

func TestSeedAndListProducts(t *testing.T) {
	useTempStore(t)

	out, err := run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "13 products")

	out, err = run(t, "products", "list", "--category", "لبنیات")
	require.NoError(t, err)
	assert.Contains(t, out, "شیر پرچرب")
	assert.NotContains(t, out, "شامپو")
}

func TestOrderCommands(t *testing.T) {
	path := useTempStore(t)
	_, err := run(t, "migrate")
	require.NoError(t, err)

	repo := repository.NewOrderRepository(testutil.OpenStore(t, path), idgen.NewTimeGenerator())
	order, err := repo.Create(models.OrderInput{
		CustomerName: "حسین",
		Phone:        "09131234567",
		Address:      "یزد",
		Items:        []models.OrderItem{{Name: "دوغ", Price: 30000, Quantity: 2}},
		TotalAmount:  60000,
	})
	require.NoError(t, err)

	out, err := run(t, "orders", "list", "--pending")
	require.NoError(t, err)
	assert.Contains(t, out, order.ID)

	out, err = run(t, "orders", "show", order.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "حسین")
	assert.Contains(t, out, "60000")

	out, err = run(t, "orders", "status", order.ID, "cancelled")
	require.NoError(t, err)
	assert.Contains(t, out, "CANCELLED")

	_, err = run(t, "orders", "status", order.ID, "shipped")
	assert.Error(t, err)

	_, err = run(t, "orders", "show", "missing")
	assert.ErrorIs(t, err, errOrderNotFound)

	_, err = run(t, "orders", "status", order.ID, "lost")
	assert.Error(t, err)
}
