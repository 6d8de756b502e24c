package queries_test

import (
	"context"
	"testing"

	"burgershop/internal/core/application/usecases/queries"
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/core/domain/model/user"
	"burgershop/internal/core/ports"
	"burgershop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderStore) Find(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderStore) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderStore) Subscribe(fn func(ports.OrderChange)) func() {
	args := m.Called(fn)
	return args.Get(0).(func())
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func newTrackedOrder(t *testing.T, email string) *order.Order {
	t.Helper()
	item, err := order.NewItem("1", "Classic Burger", 100, 2, "")
	require.NoError(t, err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:              kernel.NewOrderID(),
		Customer:        "Juan Dela Cruz",
		CustomerEmail:   email,
		CustomerPhone:   "09171234567",
		DeliveryAddress: "123 Rizal St",
		DeliveryCity:    "Lipa",
		Zip:             "4217",
		Municipality:    kernel.NewMunicipalitySlug("Lipa"),
		Items:           []order.Item{item},
		Subtotal:        200,
		ShippingFee:     60,
		PaymentDetails:  order.NewCODDetails(),
		DeliveryTime:    "30-40 minutes",
	})
	require.NoError(t, err)
	return o
}

func TestTrackOrderQueryHandler_Handle(t *testing.T) {
	t.Run("staff_lookup_returns_any_order", func(t *testing.T) {
		aggregate := newTrackedOrder(t, "juan@example.com")
		query, err := queries.NewTrackOrderQuery(aggregate.ID(), "")
		require.NoError(t, err)

		store := new(MockOrderStore)
		store.On("Find", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

		h := queries.NewTrackOrderQueryHandler(store)
		resp, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Equal(t, aggregate.ID().String(), resp.ID)
		require.Equal(t, "preparing", resp.Status)
		require.Equal(t, 260.0, resp.Total)
		require.Len(t, resp.Items, 1)
		store.AssertExpectations(t)
	})

	t.Run("customer_sees_own_order", func(t *testing.T) {
		aggregate := newTrackedOrder(t, "juan@example.com")
		query, err := queries.NewTrackOrderQuery(aggregate.ID(), "Juan@Example.com")
		require.NoError(t, err)

		store := new(MockOrderStore)
		store.On("Find", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

		h := queries.NewTrackOrderQueryHandler(store)
		_, err = h.Handle(t.Context(), query)
		require.NoError(t, err)
	})

	t.Run("customer_cannot_see_someone_elses_order", func(t *testing.T) {
		aggregate := newTrackedOrder(t, "juan@example.com")
		query, err := queries.NewTrackOrderQuery(aggregate.ID(), "other@example.com")
		require.NoError(t, err)

		store := new(MockOrderStore)
		store.On("Find", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

		h := queries.NewTrackOrderQueryHandler(store)
		_, err = h.Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound, "must read as not-found, not forbidden")
	})

	t.Run("unknown_order_is_not_found", func(t *testing.T) {
		aggregate := newTrackedOrder(t, "juan@example.com")
		query, err := queries.NewTrackOrderQuery(aggregate.ID(), "")
		require.NoError(t, err)

		store := new(MockOrderStore)
		store.On("Find", mock.Anything, aggregate.ID()).Return(nil, nil).Once()

		h := queries.NewTrackOrderQueryHandler(store)
		_, err = h.Handle(t.Context(), query)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
