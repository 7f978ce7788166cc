package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"order-viewer/internal/entities"
)

type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateSuccess State = "success"
	StateFailure State = "failure"
)

// Snapshot is an immutable value of the view state machine. Order is
// set only in StateSuccess, Err only in StateFailure; they can never
// coexist.
type Snapshot struct {
	State State
	Seq   uint64
	Order entities.Order
	Err   string
}

type OrderFetcher interface {
	FetchOrder(ctx context.Context, orderUID string) (entities.Order, error)
}

// LookupService owns the fetch lifecycle and the current view state.
type LookupService struct {
	logger  *slog.Logger
	fetcher OrderFetcher

	mu   sync.Mutex
	seq  uint64
	snap Snapshot
}

func NewLookupService(logger *slog.Logger, fetcher OrderFetcher) *LookupService {
	return &LookupService{
		logger:  logger.With(slog.String("service", "lookup")),
		fetcher: fetcher,
		snap:    Snapshot{State: StateIdle},
	}
}

// Snapshot returns the current view state.
func (s *LookupService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Submit runs one lookup cycle. A blank identifier fails with
// entities.ErrEmptyOrderUID before any network call and leaves the
// stored state untouched. Otherwise the previous order/error is
// cleared before the request is dispatched, and the outcome is
// committed only if no newer submission has started since; a
// superseded submission fails with entities.ErrLookupSuperseded so
// callers never mistake the newer result for their own.
func (s *LookupService) Submit(ctx context.Context, raw string) (Snapshot, error) {
	orderUID := strings.TrimSpace(raw)
	if orderUID == "" {
		return s.Snapshot(), entities.ErrEmptyOrderUID
	}

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.snap = Snapshot{State: StatePending, Seq: seq}
	s.mu.Unlock()

	order, err := s.fetcher.FetchOrder(ctx, orderUID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		// A newer submission superseded this one; its result wins
		// regardless of response ordering.
		s.logger.DebugContext(ctx, "discarding superseded lookup",
			slog.String("order_uid", orderUID), slog.Uint64("seq", seq))
		return s.snap, entities.ErrLookupSuperseded
	}

	if err != nil {
		s.logger.WarnContext(ctx, "lookup failed",
			slog.String("order_uid", orderUID), slog.Any("error", err))
		s.snap = Snapshot{State: StateFailure, Seq: seq, Err: failureMessage(err)}
		return s.snap, nil
	}

	s.snap = Snapshot{State: StateSuccess, Seq: seq, Order: order}
	return s.snap, nil
}

// failureMessage distinguishes a failure status from the order service
// (numeric status embedded) from a request that produced no response
// (cause text embedded). Both are surfaced verbatim to the operator.
func failureMessage(err error) string {
	var statusErr *entities.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}
	return fmt.Sprintf("failed to fetch order data: %s", err)
}
