// Package orderstore provides the dual-write order store: PostgreSQL first,
// durable local cache as fallback. A placed order is accepted as long as at
// least one side takes the write.
package orderstore

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"burgershop/internal/adapters/out/localstore"
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/core/ports"
	"burgershop/internal/pkg/errs"
)

// change kinds published to the feed.
const (
	changeSaved   = "saved"
	changeUpdated = "updated"
	changeCleared = "cleared"
)

// FallbackOrderStore implements ports.OrderStore over a remote repository and
// a local file cache. Writes go remote first; a remote failure downgrades to
// the cache and marks the order pending for the resync job. Reads are served
// remotely while the database is reachable and from the cache when it is not.
type FallbackOrderStore struct {
	remote ports.OrderRepository
	local  *localstore.Store
	logger *slog.Logger

	mu     sync.Mutex
	subs   map[int]func(ports.OrderChange)
	nextID int
}

// NewFallbackOrderStore creates the dual-write store.
func NewFallbackOrderStore(
	remote ports.OrderRepository,
	local *localstore.Store,
	logger *slog.Logger,
) *FallbackOrderStore {
	return &FallbackOrderStore{
		remote: remote,
		local:  local,
		logger: logger.With("component", "order_store"),
		subs:   make(map[int]func(ports.OrderChange)),
	}
}

// Save persists the order remote first. When the remote write fails the order
// is cached locally as pending and the save still succeeds; the caller only
// sees an error when both sides reject the write.
func (s *FallbackOrderStore) Save(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	remoteErr := s.remote.Add(ctx, o)
	if remoteErr == nil {
		if err := s.local.Put(o, false); err != nil {
			s.logger.Warn("failed to mirror order to local cache",
				"orderId", o.ID().String(), "error", err)
		}
		s.publish(ports.OrderChange{OrderID: o.ID(), Kind: changeSaved})
		return nil
	}

	unavailable := errs.NewPersistenceUnavailableError("save order", remoteErr)
	s.logger.Warn("remote order write failed, falling back to local cache",
		"orderId", o.ID().String(), "error", remoteErr)

	if err := s.local.Put(o, true); err != nil {
		return errors.Join(unavailable, err)
	}

	s.publish(ports.OrderChange{OrderID: o.ID(), Kind: changeSaved})
	return nil
}

// Find retrieves an order by id. Unknown ids return nil without error. When
// the remote store is unreachable the local cache answers; an order missing
// from both sides during an outage reads as a persistence error, not as
// not-found, because the remote side could not be consulted.
func (s *FallbackOrderStore) Find(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	o, remoteErr := s.remote.Get(ctx, id)
	if remoteErr == nil {
		return o, nil
	}

	if errors.Is(remoteErr, errs.ErrObjectNotFound) {
		// A pending fallback order may not have reached the remote yet.
		cached, found, err := s.local.Get(id)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, nil
		}
		return cached, nil
	}

	s.logger.Warn("remote order read failed, consulting local cache",
		"orderId", id.String(), "error", remoteErr)

	cached, found, err := s.local.Get(id)
	if err != nil || !found {
		return nil, errs.NewPersistenceUnavailableError("find order", remoteErr)
	}
	return cached, nil
}

// List retrieves all known orders, newest first. While the remote store is
// reachable the result is its rows plus any pending cached orders that have
// not arrived there yet.
func (s *FallbackOrderStore) List(ctx context.Context) ([]*order.Order, error) {
	remote, remoteErr := s.remote.GetAll(ctx)
	if remoteErr != nil {
		s.logger.Warn("remote order listing failed, serving local cache", "error", remoteErr)
		return s.local.All()
	}

	pending, err := s.local.PendingOrders()
	if err != nil {
		s.logger.Warn("failed to read pending orders from local cache", "error", err)
		return remote, nil
	}
	if len(pending) == 0 {
		return remote, nil
	}

	known := make(map[string]bool, len(remote))
	for _, o := range remote {
		known[o.ID().String()] = true
	}

	merged := remote
	for _, o := range pending {
		if !known[o.ID().String()] {
			merged = append(merged, o)
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].PlacedAt() > merged[j].PlacedAt()
	})
	return merged, nil
}

// Clear drops the local cache and publishes a cleared change.
func (s *FallbackOrderStore) Clear(_ context.Context) error {
	if err := s.local.Clear(); err != nil {
		return err
	}
	s.publish(ports.OrderChange{Kind: changeCleared})
	return nil
}

// ResyncPending pushes pending cached orders to the remote store. Orders that
// already exist remotely are just marked synced. Returns the number of orders
// pushed; stops at the first remote failure since the database is likely
// still down.
func (s *FallbackOrderStore) ResyncPending(ctx context.Context) (int, error) {
	pending, err := s.local.PendingOrders()
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, o := range pending {
		_, getErr := s.remote.Get(ctx, o.ID())
		switch {
		case getErr == nil:
			// Already there, probably from a previous partial resync.
		case errors.Is(getErr, errs.ErrObjectNotFound):
			if addErr := s.remote.Add(ctx, o); addErr != nil {
				return synced, errs.NewPersistenceUnavailableError("resync order", addErr)
			}
			s.publish(ports.OrderChange{OrderID: o.ID(), Kind: changeUpdated})
			synced++
		default:
			return synced, errs.NewPersistenceUnavailableError("resync order", getErr)
		}

		if err := s.local.MarkSynced(o.ID()); err != nil {
			s.logger.Warn("failed to mark order as synced",
				"orderId", o.ID().String(), "error", err)
		}
	}
	return synced, nil
}

// Subscribe registers a change-feed listener and returns its removal
// function. Notifications are dispatched on their own goroutines.
func (s *FallbackOrderStore) Subscribe(fn func(ports.OrderChange)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *FallbackOrderStore) publish(change ports.OrderChange) {
	s.mu.Lock()
	listeners := make([]func(ports.OrderChange), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		go fn(change)
	}
}
