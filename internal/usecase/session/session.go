package session

import (
	"context"
	"log/slog"

	"github.com/Victor-armando18/cupcake-corner/internal/domain"
	"github.com/Victor-armando18/cupcake-corner/internal/interfaces"
)

// Session owns the order for one checkout flow. Every method except the
// constructor must be called on the session's loop.
type Session struct {
	loop     *Loop
	checkout interfaces.CheckoutFacade
	logger   *slog.Logger

	order       domain.Order
	subscribers map[int]func(domain.Order)
	nextID      int
}

func New(loop *Loop, checkout interfaces.CheckoutFacade, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		loop:        loop,
		checkout:    checkout,
		logger:      logger,
		order:       domain.NewOrder(),
		subscribers: make(map[int]func(domain.Order)),
	}
}

// Order returns a snapshot.
func (s *Session) Order() domain.Order {
	return s.order
}

// Update mutates the order in place, then notifies subscribers.
func (s *Session) Update(fn func(o *domain.Order)) {
	fn(&s.order)
	snapshot := s.order
	for _, sub := range s.subscribers {
		sub(snapshot)
	}
}

// Subscribe registers fn for change notifications; call the returned func to stop.
func (s *Session) Subscribe(fn func(domain.Order)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	return func() { delete(s.subscribers, id) }
}

func (s *Session) CanCheckout() bool {
	return s.order.HasValidAddress()
}

// PlaceOrder submits a snapshot of the order off the loop and delivers the
// outcome back onto it. Nothing stops a second call while one is in flight.
func (s *Session) PlaceOrder(ctx context.Context, done func(domain.Confirmation, error)) {
	snapshot := s.order
	go func() {
		confirmation, err := s.checkout.PlaceOrder(ctx, snapshot)
		if !s.loop.Post(func() { done(confirmation, err) }) {
			s.logger.Warn("checkout finished after the session loop closed", "error", err)
		}
	}()
}
