// Package request runs the swap request lifecycle: a request is created
// pending, then accepted, declined or cancelled exactly once. Accepting
// starts an ActiveSwap that is worked on until completed.
package request

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier delivers notices about lifecycle events. It must not block the
// caller for long and its failures are its own to handle.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// MessageDrafter writes the note for a request whose sender left it blank.
type MessageDrafter interface {
	DraftRequestMessage(ctx context.Context, from, to *domain.Profile, skillOffered, skillWanted string) (string, error)
}

// ProfileDirectory returns a profile as viewerID is allowed to see it.
// Hidden profiles are reported as domain.ErrProfileNotFound.
type ProfileDirectory interface {
	GetProfile(ctx context.Context, id, viewerID string) (*domain.Profile, error)
}

type RequestUseCase struct {
	requestRepo repository.RequestRepository
	swapRepo    repository.SwapRepository
	profiles    ProfileDirectory
	notifier    Notifier
	drafter     MessageDrafter
	logger      *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewRequestUseCase wires the lifecycle. drafter may be nil, in which case
// blank messages get domain.DefaultRequestMessage.
func NewRequestUseCase(
	requestRepo repository.RequestRepository,
	swapRepo repository.SwapRepository,
	profiles ProfileDirectory,
	notifier Notifier,
	drafter MessageDrafter,
	logger *zap.Logger,
) *RequestUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestUseCase{
		requestRepo: requestRepo,
		swapRepo:    swapRepo,
		profiles:    profiles,
		notifier:    notifier,
		drafter:     drafter,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
}

// CreateRequest is the input of Create.
type CreateRequest struct {
	ToProfileID  string `json:"to_profile_id" binding:"required"`
	SkillOffered string `json:"skill_offered" binding:"required,max=100"`
	SkillWanted  string `json:"skill_wanted" binding:"required,max=100"`
	Message      string `json:"message" binding:"max=1000"`
}

// Create stores a new pending request from senderID. It shows up in the
// sender's outgoing list and the recipient's incoming list. Profiles the
// sender cannot see cannot be requested.
func (uc *RequestUseCase) Create(ctx context.Context, senderID string, in *CreateRequest) (*domain.SwapRequest, error) {
	offered := strings.TrimSpace(in.SkillOffered)
	wanted := strings.TrimSpace(in.SkillWanted)
	message := strings.TrimSpace(in.Message)

	switch {
	case strings.TrimSpace(in.ToProfileID) == "":
		return nil, domain.NewValidationError("to_profile_id", "is required")
	case offered == "":
		return nil, domain.NewValidationError("skill_offered", "is required")
	case wanted == "":
		return nil, domain.NewValidationError("skill_wanted", "is required")
	case utf8.RuneCountInString(message) > domain.MaxMessageLength:
		return nil, domain.NewValidationError("message", "must be at most %d characters", domain.MaxMessageLength)
	}
	if in.ToProfileID == senderID {
		return nil, domain.ErrCannotRequestSelf
	}

	sender, err := uc.profiles.GetProfile(ctx, senderID, senderID)
	if err != nil {
		return nil, fmt.Errorf("load sender: %w", err)
	}
	recipient, err := uc.profiles.GetProfile(ctx, in.ToProfileID, senderID)
	if err != nil {
		return nil, fmt.Errorf("load recipient: %w", err)
	}

	if message == "" {
		message = uc.draft(ctx, sender, recipient, offered, wanted)
	}

	now := uc.now()
	req := &domain.SwapRequest{
		ID:           uc.newID(),
		From:         sender.Snapshot(),
		To:           recipient.Snapshot(),
		SkillOffered: offered,
		SkillWanted:  wanted,
		Message:      message,
		Status:       domain.RequestPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.requestRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	uc.notify(ctx, recipient.ID, "New swap request",
		fmt.Sprintf("%s wants to trade %s for %s.", sender.Name, offered, wanted), domain.SeverityInfo)
	uc.notify(ctx, sender.ID, "Request sent",
		fmt.Sprintf("Your request was sent to %s.", recipient.Name), domain.SeverityInfo)
	return req, nil
}

func (uc *RequestUseCase) draft(ctx context.Context, from, to *domain.Profile, offered, wanted string) string {
	if uc.drafter != nil {
		msg, err := uc.drafter.DraftRequestMessage(ctx, from, to, offered, wanted)
		if err == nil && strings.TrimSpace(msg) != "" {
			return truncate(strings.TrimSpace(msg), domain.MaxMessageLength)
		}
		if err != nil {
			uc.logger.Warn("draft request message", zap.Error(err))
		}
	}
	return domain.DefaultRequestMessage(to.Name, offered, wanted)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// Accept is done by the recipient. The request leaves both pending lists
// and an ActiveSwap with progress 0 starts in the same step.
func (uc *RequestUseCase) Accept(ctx context.Context, profileID, requestID string) (*domain.ActiveSwap, error) {
	req, err := uc.loadAs(ctx, profileID, requestID, domain.PerspectiveIncoming)
	if err != nil {
		uc.failed(ctx, profileID, domain.EventAccept, err)
		return nil, err
	}

	swap := domain.NewActiveSwap(req, uc.now())
	if _, err := uc.requestRepo.Accept(ctx, requestID, swap); err != nil {
		uc.failed(ctx, profileID, domain.EventAccept, err)
		return nil, err
	}

	uc.notify(ctx, req.From.ID, "Request accepted",
		fmt.Sprintf("%s accepted your swap request. Time to start learning %s!", req.To.Name, req.SkillWanted), domain.SeverityInfo)
	uc.notify(ctx, req.To.ID, "Swap started",
		fmt.Sprintf("You and %s started a swap.", req.From.Name), domain.SeverityInfo)
	return swap, nil
}

// Decline is done by the recipient.
func (uc *RequestUseCase) Decline(ctx context.Context, profileID, requestID string) (*domain.SwapRequest, error) {
	req, err := uc.transition(ctx, profileID, requestID, domain.PerspectiveIncoming, domain.RequestDeclined, domain.EventDecline)
	if err != nil {
		return nil, err
	}
	uc.notify(ctx, req.From.ID, "Request declined",
		fmt.Sprintf("%s declined your swap request.", req.To.Name), domain.SeverityWarning)
	uc.notify(ctx, req.To.ID, "Request declined",
		fmt.Sprintf("You declined %s's request.", req.From.Name), domain.SeverityInfo)
	return req, nil
}

// Cancel is done by the sender.
func (uc *RequestUseCase) Cancel(ctx context.Context, profileID, requestID string) (*domain.SwapRequest, error) {
	req, err := uc.transition(ctx, profileID, requestID, domain.PerspectiveOutgoing, domain.RequestCancelled, domain.EventCancel)
	if err != nil {
		return nil, err
	}
	uc.notify(ctx, req.To.ID, "Request cancelled",
		fmt.Sprintf("%s cancelled their swap request.", req.From.Name), domain.SeverityInfo)
	uc.notify(ctx, req.From.ID, "Request cancelled",
		fmt.Sprintf("Your request to %s was cancelled.", req.To.Name), domain.SeverityInfo)
	return req, nil
}

func (uc *RequestUseCase) transition(ctx context.Context, profileID, requestID string, side domain.Perspective, to domain.RequestStatus, event string) (*domain.SwapRequest, error) {
	if _, err := uc.loadAs(ctx, profileID, requestID, side); err != nil {
		uc.failed(ctx, profileID, event, err)
		return nil, err
	}
	req, err := uc.requestRepo.Transition(ctx, requestID, domain.RequestPending, to, event)
	if err != nil {
		uc.failed(ctx, profileID, event, err)
		return nil, err
	}
	return req, nil
}

// loadAs returns the request when profileID is on the given side of it.
// Requests the caller cannot act on look the same as missing ones.
func (uc *RequestUseCase) loadAs(ctx context.Context, profileID, requestID string, side domain.Perspective) (*domain.SwapRequest, error) {
	req, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if p, ok := req.PerspectiveOf(profileID); !ok || p != side {
		return nil, domain.ErrRequestNotFound
	}
	return req, nil
}

// ListIncoming returns pending requests addressed to profileID, newest first.
func (uc *RequestUseCase) ListIncoming(ctx context.Context, profileID string) ([]*domain.SwapRequest, error) {
	return uc.requestRepo.ListPendingTo(ctx, profileID)
}

// ListOutgoing returns pending requests sent by profileID, newest first.
func (uc *RequestUseCase) ListOutgoing(ctx context.Context, profileID string) ([]*domain.SwapRequest, error) {
	return uc.requestRepo.ListPendingFrom(ctx, profileID)
}

func (uc *RequestUseCase) ListActive(ctx context.Context, profileID string) ([]domain.SwapView, error) {
	return uc.listSwaps(ctx, profileID, domain.SwapActive)
}

func (uc *RequestUseCase) ListCompleted(ctx context.Context, profileID string) ([]domain.SwapView, error) {
	return uc.listSwaps(ctx, profileID, domain.SwapCompleted)
}

func (uc *RequestUseCase) listSwaps(ctx context.Context, profileID string, status domain.SwapStatus) ([]domain.SwapView, error) {
	swaps, err := uc.swapRepo.ListByParticipant(ctx, profileID, status)
	if err != nil {
		return nil, err
	}
	views := make([]domain.SwapView, 0, len(swaps))
	for _, s := range swaps {
		if v, ok := s.ViewFor(profileID); ok {
			views = append(views, v)
		}
	}
	return views, nil
}

// UpdateProgress sets the progress of an active swap. Progress stays in
// [0, 100] and never goes down.
func (uc *RequestUseCase) UpdateProgress(ctx context.Context, profileID, swapID string, progress int) (*domain.SwapView, error) {
	if progress < domain.MinProgress || progress > domain.MaxProgress {
		err := domain.NewValidationError("progress", "must be between %d and %d", domain.MinProgress, domain.MaxProgress)
		uc.failed(ctx, profileID, domain.EventProgress, err)
		return nil, err
	}
	if _, err := uc.swapAs(ctx, profileID, swapID); err != nil {
		uc.failed(ctx, profileID, domain.EventProgress, err)
		return nil, err
	}
	swap, err := uc.swapRepo.UpdateProgress(ctx, swapID, progress)
	if err != nil {
		uc.failed(ctx, profileID, domain.EventProgress, err)
		return nil, err
	}
	v, _ := swap.ViewFor(profileID)
	return &v, nil
}

// Complete moves an active swap to the completed history. Either
// participant may complete it.
func (uc *RequestUseCase) Complete(ctx context.Context, profileID, swapID string) (*domain.SwapView, error) {
	if _, err := uc.swapAs(ctx, profileID, swapID); err != nil {
		uc.failed(ctx, profileID, domain.EventComplete, err)
		return nil, err
	}
	swap, err := uc.swapRepo.Complete(ctx, swapID)
	if err != nil {
		uc.failed(ctx, profileID, domain.EventComplete, err)
		return nil, err
	}
	v, _ := swap.ViewFor(profileID)
	uc.notify(ctx, v.Partner.ID, "Swap completed",
		fmt.Sprintf("Your swap of %s for %s is complete.", v.TheirSkill, v.YourSkill), domain.SeverityInfo)
	uc.notify(ctx, profileID, "Swap completed",
		fmt.Sprintf("Nice work! You finished your swap with %s.", v.Partner.Name), domain.SeverityInfo)
	return &v, nil
}

func (uc *RequestUseCase) swapAs(ctx context.Context, profileID, swapID string) (*domain.ActiveSwap, error) {
	swap, err := uc.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if !swap.HasParticipant(profileID) {
		return nil, domain.ErrSwapNotFound
	}
	return swap, nil
}

func (uc *RequestUseCase) notify(ctx context.Context, recipient, title, body string, severity domain.Severity) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.Notify(ctx, domain.Notification{
		Recipient: recipient,
		Title:     title,
		Body:      body,
		Severity:  severity,
	})
}

func (uc *RequestUseCase) failed(ctx context.Context, profileID, event string, err error) {
	title := "Could not " + event
	severity := domain.SeverityError
	if errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrValidation) {
		severity = domain.SeverityWarning
	}
	uc.notify(ctx, profileID, title, err.Error(), severity)
}
