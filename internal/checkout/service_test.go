package checkout

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kruthislayscoding/hardzy-app/internal/cart"
	"github.com/kruthislayscoding/hardzy-app/internal/domain"
	"github.com/kruthislayscoding/hardzy-app/internal/orders"
)

type failingRepository struct {
	err error
}

func (r *failingRepository) Save(*domain.Order) error { return r.err }
func (r *failingRepository) GetOrder(uuid.UUID) (*domain.Order, error) {
	return nil, r.err
}
func (r *failingRepository) ListByUser(string) ([]*domain.Order, error) {
	return nil, r.err
}
func (r *failingRepository) UpdateStatus(uuid.UUID, domain.OrderStatus) error {
	return r.err
}

func testProduct() *domain.Product {
	return &domain.Product{
		ID:    "p1",
		Name:  "Drill Machine",
		Price: 100,
		Variants: []domain.ProductVariant{
			{ID: "v1", Name: "13mm", Price: 100, DiscountedPrice: domain.Discounted(80), InStock: true},
		},
		InStock: true,
	}
}

func completeUser() *domain.User {
	return &domain.User{
		ID:              "user-1",
		Name:            "Kruthi",
		Email:           "kruthi@example.com",
		Phone:           "+91 9876543210",
		ProfileComplete: true,
		Address: domain.Address{
			Street:  "12 MG Road",
			City:    "Bengaluru",
			Pincode: "560001",
		},
		CreatedAt: time.Now(),
	}
}

func setupService(t *testing.T) (*Service, *cart.Service, *orders.MemoryRepository) {
	cartSvc := cart.NewService(nil)
	repo := orders.NewMemoryRepository()
	return NewService(cartSvc, repo, nil), cartSvc, repo
}

func TestPlaceOrder_Success(t *testing.T) {
	sut, cartSvc, repo := setupService(t)
	product := testProduct()

	_, err := cartSvc.AddItem(product, &product.Variants[0], 2)
	require.NoError(t, err)

	order, err := sut.PlaceOrder(context.Background(), completeUser(), domain.DeliveryOptionDelivery, domain.PaymentMethodRazorpay)
	require.NoError(t, err)

	assert.Equal(t, 160.0, order.Subtotal)
	assert.Equal(t, 50.0, order.DeliveryCharge)
	assert.Equal(t, 210.0, order.Total)
	assert.Equal(t, domain.OrderStatusPlaced, order.Status)
	assert.Equal(t, domain.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, "560001", order.DeliveryAddress.Pincode)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Drill Machine", order.Items[0].ProductName)
	assert.Equal(t, "13mm", order.Items[0].VariantName)
	assert.Equal(t, 80.0, order.Items[0].Price)

	// cart is cleared after placement
	assert.Equal(t, 0, cartSvc.ItemCount())
	assert.Equal(t, 0.0, cartSvc.Subtotal())

	// order is retrievable
	stored, err := repo.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Total, stored.Total)
}

func TestPlaceOrder_PickupHasNoSurcharge(t *testing.T) {
	sut, cartSvc, _ := setupService(t)
	product := testProduct()

	_, err := cartSvc.AddItem(product, nil, 1)
	require.NoError(t, err)

	order, err := sut.PlaceOrder(context.Background(), completeUser(), domain.DeliveryOptionPickup, domain.PaymentMethodCOD)
	require.NoError(t, err)

	assert.Equal(t, order.Subtotal, order.Total)
	assert.Equal(t, 0.0, order.DeliveryCharge)
	assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	sut, _, _ := setupService(t)

	_, err := sut.PlaceOrder(context.Background(), completeUser(), domain.DeliveryOptionDelivery, domain.PaymentMethodCOD)
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrder_IncompleteProfile(t *testing.T) {
	sut, cartSvc, _ := setupService(t)
	product := testProduct()

	_, err := cartSvc.AddItem(product, nil, 1)
	require.NoError(t, err)

	user := completeUser()
	user.ProfileComplete = false

	_, err = sut.PlaceOrder(context.Background(), user, domain.DeliveryOptionDelivery, domain.PaymentMethodCOD)
	require.ErrorIs(t, err, ErrProfileIncomplete)

	_, err = sut.PlaceOrder(context.Background(), nil, domain.DeliveryOptionDelivery, domain.PaymentMethodCOD)
	require.ErrorIs(t, err, ErrProfileIncomplete)

	// cart is untouched on rejection
	assert.Equal(t, 1, cartSvc.ItemCount())
}

func TestPlaceOrder_RepoError_KeepsCart(t *testing.T) {
	cartSvc := cart.NewService(nil)
	repo := &failingRepository{err: fmt.Errorf("storage error")}
	sut := NewService(cartSvc, repo, nil)
	product := testProduct()

	_, err := cartSvc.AddItem(product, nil, 2)
	require.NoError(t, err)

	_, err = sut.PlaceOrder(context.Background(), completeUser(), domain.DeliveryOptionDelivery, domain.PaymentMethodCOD)
	require.ErrorContains(t, err, "storage error")
	assert.Equal(t, 2, cartSvc.ItemCount())
}

func TestPlaceOrder_SnapshotSurvivesCatalogChanges(t *testing.T) {
	sut, cartSvc, repo := setupService(t)
	product := testProduct()

	_, err := cartSvc.AddItem(product, nil, 1)
	require.NoError(t, err)

	order, err := sut.PlaceOrder(context.Background(), completeUser(), domain.DeliveryOptionPickup, domain.PaymentMethodCOD)
	require.NoError(t, err)

	product.Name = "Renamed"
	product.Price = 9999

	stored, err := repo.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Drill Machine", stored.Items[0].ProductName)
	assert.Equal(t, 100.0, stored.Items[0].Price)
}

func TestTrack(t *testing.T) {
	sut, cartSvc, repo := setupService(t)
	product := testProduct()

	_, err := cartSvc.AddItem(product, nil, 1)
	require.NoError(t, err)

	order, err := sut.PlaceOrder(context.Background(), completeUser(), domain.DeliveryOptionDelivery, domain.PaymentMethodCOD)
	require.NoError(t, err)

	tracked, steps, eta, err := sut.Track(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, tracked.ID)
	require.Len(t, steps, 4)
	assert.True(t, steps[0].Completed) // placed
	assert.False(t, steps[3].Completed)
	assert.Equal(t, order.CreatedAt.Add(orders.EstimatedDeliveryWindow), eta)

	require.NoError(t, repo.UpdateStatus(order.ID, domain.OrderStatusOutForDelivery))
	_, steps, _, err = sut.Track(order.ID)
	require.NoError(t, err)
	assert.True(t, steps[2].Completed)
	assert.False(t, steps[3].Completed)
}

func TestTrack_UnknownOrder(t *testing.T) {
	sut, _, _ := setupService(t)

	_, _, _, err := sut.Track(uuid.New())
	require.ErrorIs(t, err, orders.ErrOrderNotFound)
}
