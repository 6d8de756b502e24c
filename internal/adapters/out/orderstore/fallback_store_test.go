package orderstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"burgershop/internal/adapters/out/localstore"
	"burgershop/internal/adapters/out/orderstore"
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/core/ports"
	"burgershop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) (*orderstore.FallbackOrderStore, *MockOrderRepository, *localstore.Store) {
	t.Helper()
	local, err := localstore.NewStore(filepath.Join(t.TempDir(), "orders.json"))
	require.NoError(t, err)

	remote := new(MockOrderRepository)
	return orderstore.NewFallbackOrderStore(remote, local, testLogger()), remote, local
}

func placedOrder(t *testing.T, placedAt time.Time) *order.Order {
	t.Helper()
	item, err := order.NewItem("1", "Classic Burger", 100, 2, "")
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:               kernel.NewOrderID(),
		Customer:         "Juan Dela Cruz",
		CustomerEmail:    "juan@example.com",
		CustomerPhone:    "09171234567",
		DeliveryAddress:  "123 Rizal St",
		DeliveryCity:     "Lipa",
		Zip:              "4217",
		Municipality:     kernel.NewMunicipalitySlug("Lipa"),
		Items:            []order.Item{item},
		Subtotal:         200,
		ShippingFee:      60,
		Total:            260,
		Status:           order.Preparing,
		StatusTimestamps: map[order.Status]int64{order.Preparing: placedAt.UnixMilli()},
		PaymentMethod:    order.PaymentCOD,
		PaymentDetails:   order.NewCODDetails(),
		DeliveryTime:     "30-40 minutes",
		PlacedAt:         placedAt.UnixMilli(),
	})
	require.NoError(t, err)
	return o
}

func TestFallbackOrderStore_Save_RemoteSuccess_MirrorsLocally(t *testing.T) {
	store, remote, local := newTestStore(t)
	o := placedOrder(t, time.Now())

	remote.On("Add", mock.Anything, o).Return(nil).Once()

	require.NoError(t, store.Save(t.Context(), o))

	_, found, err := local.Get(o.ID())
	require.NoError(t, err)
	assert.True(t, found, "remote success still mirrors to the cache")

	pending, err := local.PendingOrders()
	require.NoError(t, err)
	assert.Empty(t, pending)
	remote.AssertExpectations(t)
}

func TestFallbackOrderStore_Save_RemoteFailure_FallsBackToCache(t *testing.T) {
	store, remote, local := newTestStore(t)
	o := placedOrder(t, time.Now())

	remote.On("Add", mock.Anything, o).Return(errors.New("connection refused")).Once()

	require.NoError(t, store.Save(t.Context(), o), "local write absorbs the remote failure")

	pending, err := local.PendingOrders()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, o.ID(), pending[0].ID())
	remote.AssertExpectations(t)
}

func TestFallbackOrderStore_Find_RemoteHit(t *testing.T) {
	store, remote, _ := newTestStore(t)
	o := placedOrder(t, time.Now())

	remote.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

	found, err := store.Find(t.Context(), o.ID())
	require.NoError(t, err)
	assert.Equal(t, o.ID(), found.ID())
}

func TestFallbackOrderStore_Find_PendingOrderServedFromCache(t *testing.T) {
	store, remote, local := newTestStore(t)
	o := placedOrder(t, time.Now())
	require.NoError(t, local.Put(o, true))

	remote.On("Get", mock.Anything, o.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderId", o.ID().String())).Once()

	found, err := store.Find(t.Context(), o.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, o.ID(), found.ID())
}

func TestFallbackOrderStore_Find_UnknownOrderReturnsNil(t *testing.T) {
	store, remote, _ := newTestStore(t)
	id := kernel.NewOrderID()

	remote.On("Get", mock.Anything, id).
		Return(nil, errs.NewObjectNotFoundError("orderId", id.String())).Once()

	found, err := store.Find(t.Context(), id)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFallbackOrderStore_Find_OutageWithoutCacheCopyFails(t *testing.T) {
	store, remote, _ := newTestStore(t)
	id := kernel.NewOrderID()

	remote.On("Get", mock.Anything, id).Return(nil, errors.New("connection refused")).Once()

	_, err := store.Find(t.Context(), id)
	require.ErrorIs(t, err, errs.ErrPersistenceUnavailable)
}

func TestFallbackOrderStore_List_MergesPendingOrders(t *testing.T) {
	store, remote, local := newTestStore(t)
	persisted := placedOrder(t, time.Now().Add(-time.Hour))
	stranded := placedOrder(t, time.Now())
	require.NoError(t, local.Put(stranded, true))

	remote.On("GetAll", mock.Anything).Return([]*order.Order{persisted}, nil).Once()

	all, err := store.List(t.Context())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, stranded.ID(), all[0].ID(), "newest first")
	assert.Equal(t, persisted.ID(), all[1].ID())
}

func TestFallbackOrderStore_List_OutageServesCache(t *testing.T) {
	store, remote, local := newTestStore(t)
	cached := placedOrder(t, time.Now())
	require.NoError(t, local.Put(cached, true))

	remote.On("GetAll", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	all, err := store.List(t.Context())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, cached.ID(), all[0].ID())
}

func TestFallbackOrderStore_ResyncPending_PushesAndMarks(t *testing.T) {
	store, remote, local := newTestStore(t)
	stranded := placedOrder(t, time.Now())
	require.NoError(t, local.Put(stranded, true))

	mock.InOrder(
		remote.On("Get", mock.Anything, stranded.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderId", stranded.ID().String())).Once(),
		remote.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
	)

	synced, err := store.ResyncPending(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, synced)

	pending, err := local.PendingOrders()
	require.NoError(t, err)
	assert.Empty(t, pending)
	remote.AssertExpectations(t)
}

func TestFallbackOrderStore_ResyncPending_AlreadyRemoteJustMarks(t *testing.T) {
	store, remote, local := newTestStore(t)
	stranded := placedOrder(t, time.Now())
	require.NoError(t, local.Put(stranded, true))

	remote.On("Get", mock.Anything, stranded.ID()).Return(stranded, nil).Once()

	synced, err := store.ResyncPending(t.Context())
	require.NoError(t, err)
	assert.Zero(t, synced)

	pending, err := local.PendingOrders()
	require.NoError(t, err)
	assert.Empty(t, pending)
	remote.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestFallbackOrderStore_ResyncPending_StopsOnRemoteFailure(t *testing.T) {
	store, remote, local := newTestStore(t)
	stranded := placedOrder(t, time.Now())
	require.NoError(t, local.Put(stranded, true))

	remote.On("Get", mock.Anything, stranded.ID()).Return(nil, errors.New("still down")).Once()

	synced, err := store.ResyncPending(t.Context())
	require.ErrorIs(t, err, errs.ErrPersistenceUnavailable)
	assert.Zero(t, synced)

	pending, err := local.PendingOrders()
	require.NoError(t, err)
	assert.Len(t, pending, 1, "order stays pending for the next run")
}

func TestFallbackOrderStore_Clear_DropsCacheAndNotifies(t *testing.T) {
	store, _, local := newTestStore(t)
	require.NoError(t, local.Put(placedOrder(t, time.Now()), true))

	changes := make(chan ports.OrderChange, 1)
	unsubscribe := store.Subscribe(func(c ports.OrderChange) { changes <- c })
	defer unsubscribe()

	require.NoError(t, store.Clear(t.Context()))

	all, err := local.All()
	require.NoError(t, err)
	assert.Empty(t, all)

	select {
	case change := <-changes:
		assert.Equal(t, "cleared", change.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected a cleared change notification")
	}
}

func TestFallbackOrderStore_Subscribe_UnsubscribeStopsDelivery(t *testing.T) {
	store, remote, _ := newTestStore(t)
	o := placedOrder(t, time.Now())
	remote.On("Add", mock.Anything, o).Return(nil).Once()

	changes := make(chan ports.OrderChange, 1)
	unsubscribe := store.Subscribe(func(c ports.OrderChange) { changes <- c })
	unsubscribe()

	require.NoError(t, store.Save(t.Context(), o))

	select {
	case <-changes:
		t.Fatal("unsubscribed listener must not receive changes")
	case <-time.After(100 * time.Millisecond):
	}
}
