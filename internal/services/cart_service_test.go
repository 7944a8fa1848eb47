package services_test

import (
	"testing"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/services"
	"storefront/internal/testutil"
	"storefront/pkg/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartFixture struct {
	carts    services.CartService
	orders   services.OrderService
	products repository.ProductRepository
}

func newCartFixture(t *testing.T) cartFixture {
	t.Helper()
	s := testutil.NewStore(t)
	products := repository.NewProductRepository(s)
	orders := services.NewOrderService(repository.NewOrderRepository(s, idgen.NewTimeGenerator()), nil, nil)
	carts := services.NewCartService(services.NewMemoryCartStore(0), products, orders, nil)
	return cartFixture{carts: carts, orders: orders, products: products}
}

var customer = services.Customer{Name: "مریم", Phone: "09190001122", Address: "شیراز"}

func TestCartLifecycle(t *testing.T) {
	f := newCartFixture(t)
	cartID, c, err := f.carts.NewCart()
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	_, err = f.carts.AddProduct(cartID, "p1")
	require.NoError(t, err)
	_, err = f.carts.AddProduct(cartID, "p1")
	require.NoError(t, err)
	c, err = f.carts.AddProduct(cartID, "p3")
	require.NoError(t, err)

	require.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.TotalItems())

	c, err = f.carts.AdjustQuantity(cartID, "p1", -1)
	require.NoError(t, err)
	assert.Equal(t, 2, c.TotalItems())

	c, err = f.carts.RemoveProduct(cartID, "p3")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	again, err := f.carts.GetCart(cartID)
	require.NoError(t, err)
	assert.Equal(t, c.Items(), again.Items())
}

func TestCartUnknownIDs(t *testing.T) {
	f := newCartFixture(t)
	cartID, _, err := f.carts.NewCart()
	require.NoError(t, err)

	_, err = f.carts.GetCart("missing")
	assert.ErrorIs(t, err, services.ErrCartNotFound)

	_, err = f.carts.AddProduct(cartID, "missing")
	assert.ErrorIs(t, err, services.ErrProductNotFound)

	c, err := f.carts.AdjustQuantity(cartID, "missing", 3)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestCartKeepsPriceSnapshot(t *testing.T) {
	f := newCartFixture(t)
	cartID, _, err := f.carts.NewCart()
	require.NoError(t, err)
	_, err = f.carts.AddProduct(cartID, "p1")
	require.NoError(t, err)

	p1, _ := f.products.GetByID("p1")
	p1.Price = 99999
	require.NoError(t, f.products.Upsert(p1))

	c, err := f.carts.GetCart(cartID)
	require.NoError(t, err)
	assert.Equal(t, int64(25000), c.TotalAmount())
}

func TestCheckout(t *testing.T) {
	f := newCartFixture(t)
	cartID, _, err := f.carts.NewCart()
	require.NoError(t, err)
	_, err = f.carts.AddProduct(cartID, "p1")
	require.NoError(t, err)
	_, err = f.carts.AdjustQuantity(cartID, "p1", 2)
	require.NoError(t, err)

	order, err := f.carts.Checkout(cartID, customer)

	require.NoError(t, err)
	assert.Equal(t, int64(75000), order.TotalAmount)
	assert.Equal(t, []models.OrderItem{{Name: "شیر پرچرب", Price: 25000, Quantity: 3}}, order.Items)
	assert.Equal(t, models.OrderPending, order.Status)

	c, err := f.carts.GetCart(cartID)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	tracked, ok := f.orders.GetOrder(order.ID)
	require.True(t, ok)
	assert.Equal(t, "مریم", tracked.CustomerName)
}

func TestCheckoutRejected(t *testing.T) {
	f := newCartFixture(t)
	cartID, _, err := f.carts.NewCart()
	require.NoError(t, err)

	_, err = f.carts.Checkout(cartID, customer)
	assert.ErrorIs(t, err, services.ErrEmptyCart)

	_, err = f.carts.AddProduct(cartID, "p2")
	require.NoError(t, err)
	_, err = f.carts.Checkout(cartID, services.Customer{Name: "بدون آدرس"})
	assert.ErrorIs(t, err, services.ErrInvalidCustomer)

	c, err := f.carts.GetCart(cartID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Empty(t, f.orders.ListOrders())
}

func TestClearCart(t *testing.T) {
	f := newCartFixture(t)
	cartID, _, err := f.carts.NewCart()
	require.NoError(t, err)
	_, err = f.carts.AddProduct(cartID, "p4")
	require.NoError(t, err)

	require.NoError(t, f.carts.ClearCart(cartID))

	c, err := f.carts.GetCart(cartID)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.ErrorIs(t, f.carts.ClearCart("missing"), services.ErrCartNotFound)
}
