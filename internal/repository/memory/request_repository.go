package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
)

// Store keeps requests and swaps behind one lock so that accepting a
// request and starting its swap happen as a single step.
type Store struct {
	mu       sync.RWMutex
	requests map[string]*domain.SwapRequest
	swaps    map[string]*domain.ActiveSwap
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		requests: make(map[string]*domain.SwapRequest),
		swaps:    make(map[string]*domain.ActiveSwap),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Requests returns the request view of the store.
func (s *Store) Requests() repository.RequestRepository {
	return (*requestRepository)(s)
}

// Swaps returns the swap view of the store.
func (s *Store) Swaps() repository.SwapRepository {
	return (*swapRepository)(s)
}

type requestRepository Store

func (r *requestRepository) Create(_ context.Context, req *domain.SwapRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[req.ID]; ok {
		return domain.NewValidationError("id", "request %s already exists", req.ID)
	}
	if req.UpdatedAt.IsZero() {
		req.UpdatedAt = req.CreatedAt
	}
	c := *req
	r.requests[req.ID] = &c
	return nil
}

func (r *requestRepository) GetByID(_ context.Context, id string) (*domain.SwapRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	c := *req
	return &c, nil
}

func (r *requestRepository) ListPendingTo(_ context.Context, profileID string) ([]*domain.SwapRequest, error) {
	return r.listPending(func(req *domain.SwapRequest) bool { return req.To.ID == profileID }), nil
}

func (r *requestRepository) ListPendingFrom(_ context.Context, profileID string) ([]*domain.SwapRequest, error) {
	return r.listPending(func(req *domain.SwapRequest) bool { return req.From.ID == profileID }), nil
}

func (r *requestRepository) listPending(match func(*domain.SwapRequest) bool) []*domain.SwapRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.SwapRequest, 0)
	for _, req := range r.requests {
		if req.Status == domain.RequestPending && match(req) {
			c := *req
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *requestRepository) Transition(_ context.Context, id string, from, to domain.RequestStatus, event string) (*domain.SwapRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, err := r.transitionLocked(id, from, to, event)
	if err != nil {
		return nil, err
	}
	c := *req
	return &c, nil
}

func (r *requestRepository) Accept(_ context.Context, id string, swap *domain.ActiveSwap) (*domain.SwapRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.swaps[swap.ID]; ok {
		return nil, &domain.TransitionError{ID: id, From: string(domain.RequestAccepted), Event: domain.EventAccept}
	}
	req, err := r.transitionLocked(id, domain.RequestPending, domain.RequestAccepted, domain.EventAccept)
	if err != nil {
		return nil, err
	}
	sc := *swap
	r.swaps[swap.ID] = &sc

	c := *req
	return &c, nil
}

func (r *requestRepository) transitionLocked(id string, from, to domain.RequestStatus, event string) (*domain.SwapRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	if req.Status != from {
		return nil, &domain.TransitionError{ID: id, From: string(req.Status), Event: event}
	}
	req.Status = to
	req.UpdatedAt = r.now()
	return req, nil
}

type swapRepository Store

func (r *swapRepository) GetByID(_ context.Context, id string) (*domain.ActiveSwap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.swaps[id]
	if !ok {
		return nil, domain.ErrSwapNotFound
	}
	return copySwap(s), nil
}

func (r *swapRepository) ListByParticipant(_ context.Context, profileID string, status domain.SwapStatus) ([]*domain.ActiveSwap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.ActiveSwap, 0)
	for _, s := range r.swaps {
		if s.Status == status && s.HasParticipant(profileID) {
			out = append(out, copySwap(s))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartDate.After(out[j].StartDate)
	})
	return out, nil
}

func (r *swapRepository) UpdateProgress(_ context.Context, id string, progress int) (*domain.ActiveSwap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.swaps[id]
	if !ok {
		return nil, domain.ErrSwapNotFound
	}
	if s.Status != domain.SwapActive {
		return nil, &domain.TransitionError{ID: id, From: string(s.Status), Event: domain.EventProgress}
	}
	if progress < s.Progress {
		return nil, domain.NewValidationError("progress", "cannot go back from %d to %d", s.Progress, progress)
	}
	s.Progress = progress
	return copySwap(s), nil
}

func (r *swapRepository) Complete(_ context.Context, id string) (*domain.ActiveSwap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.swaps[id]
	if !ok {
		return nil, domain.ErrSwapNotFound
	}
	if s.Status != domain.SwapActive {
		return nil, &domain.TransitionError{ID: id, From: string(s.Status), Event: domain.EventComplete}
	}
	now := r.now()
	s.Status = domain.SwapCompleted
	s.CompletedAt = &now
	return copySwap(s), nil
}

func copySwap(s *domain.ActiveSwap) *domain.ActiveSwap {
	c := *s
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}
