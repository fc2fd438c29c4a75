package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/till_reconciliation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/till_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/till_reconciliation_app/internal/dto"
	"github.com/google/uuid"
)

// historyService implements the HistorySvcFacade interface
type historyService struct {
	BaseService
	historyRepo portsrepo.HistoryRepositoryFacade
	userService portssvc.UserReaderSvc
	reconciler  portssvc.ReconciliationSvc
	colorFn     func() int
	now         func() time.Time
}

// HistoryServiceOption is a functional option for configuring the history service
type HistoryServiceOption func(*historyService)

// WithHistoryColorGenerator replaces the random hue assigned to new submissions.
func WithHistoryColorGenerator(fn func() int) HistoryServiceOption {
	return func(s *historyService) {
		s.colorFn = fn
	}
}

// WithHistoryClock replaces the clock used for creation timestamps.
func WithHistoryClock(fn func() time.Time) HistoryServiceOption {
	return func(s *historyService) {
		s.now = fn
	}
}

// NewHistoryService creates a new history service with the provided options
func NewHistoryService(
	repo portsrepo.HistoryRepositoryFacade,
	userService portssvc.UserReaderSvc,
	reconciler portssvc.ReconciliationSvc,
	options ...HistoryServiceOption,
) portssvc.HistorySvcFacade {
	svc := &historyService{
		historyRepo: repo,
		userService: userService,
		reconciler:  reconciler,
		colorFn:     randomHistoryColor,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.HistorySvcFacade = (*historyService)(nil)

// randomHistoryColor picks one of 24 hues, 15 degrees apart.
func randomHistoryColor() int {
	return rand.IntN(24) * 15
}

func normalizeNote(note *string) *string {
	if note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *historyService) Submit(ctx context.Context, req dto.SubmitHistoryRequest, requestingUserID string) (*domain.SubmissionReport, error) {
	result, err := s.reconciler.Reconcile(ctx, req.ReconcileRequest)
	if err != nil {
		return nil, err
	}

	submission := domain.Submission{
		SubmissionID:  uuid.NewString(),
		UserID:        requestingUserID,
		CurrencyCode:  result.CurrencyCode,
		DrawerAmount:  *req.DrawerAmount,
		Denominations: domain.DenominationVector(req.Denominations).Clone(),
		Note:          normalizeNote(req.Note),
		HistoryColor:  s.colorFn(),
		CreatedAt:     s.now().UTC(),
	}

	if err := s.historyRepo.SaveSubmission(ctx, submission); err != nil {
		s.LogError(ctx, err, "Failed to save submission", slog.String("user_id", requestingUserID))
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	s.LogInfo(ctx, "Submission stored",
		slog.String("submission_id", submission.SubmissionID),
		slog.String("currency_code", submission.CurrencyCode))
	return &domain.SubmissionReport{Submission: submission, Result: result}, nil
}

// findOwned loads a submission and checks it belongs to the requesting user.
func (s *historyService) findOwned(ctx context.Context, submissionID, requestingUserID string) (*domain.Submission, error) {
	submission, err := s.historyRepo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load submission", slog.String("submission_id", submissionID))
		}
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, submission.UserID, requestingUserID); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *historyService) GetSubmission(ctx context.Context, submissionID string, requestingUserID string) (*domain.SubmissionReport, error) {
	submission, err := s.findOwned(ctx, submissionID, requestingUserID)
	if err != nil {
		return nil, err
	}

	drawerAmount := submission.DrawerAmount
	result, err := s.reconciler.Reconcile(ctx, dto.ReconcileRequest{
		CurrencyCode:  submission.CurrencyCode,
		DrawerAmount:  &drawerAmount,
		Denominations: submission.Denominations,
	})
	if err != nil {
		// A stored row that no longer fits the currency table is a server-side problem, not bad input.
		s.LogError(ctx, err, "Stored submission cannot be reconciled", slog.String("submission_id", submissionID))
		return nil, fmt.Errorf("stored submission %s cannot be reconciled: %v", submissionID, err)
	}
	return &domain.SubmissionReport{Submission: *submission, Result: result}, nil
}

// resolveOwnUser returns the requesting user when they are username.
func (s *historyService) resolveOwnUser(ctx context.Context, username, requestingUserID string) (*domain.User, error) {
	requester, err := s.userService.GetUserByID(ctx, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if requester.Username != username {
		s.GetLogger(ctx).Warn("Rejected access to another user's history", slog.String("requesting_user_id", requestingUserID))
		return nil, apperrors.ErrUnauthorized
	}
	return requester, nil
}

func (s *historyService) ListUserHistory(ctx context.Context, username string, requestingUserID string) ([]domain.SubmissionSummary, error) {
	user, err := s.resolveOwnUser(ctx, username, requestingUserID)
	if err != nil {
		return nil, err
	}
	rows, err := s.historyRepo.ListSubmissionsByUser(ctx, user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list history", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	if rows == nil {
		rows = []domain.SubmissionSummary{}
	}
	return rows, nil
}

func (s *historyService) AddNote(ctx context.Context, submissionID string, note string, requestingUserID string) (*domain.Submission, error) {
	normalized := normalizeNote(&note)
	if normalized == nil {
		return nil, fmt.Errorf("%w: note must not be blank", apperrors.ErrValidation)
	}
	if _, err := s.findOwned(ctx, submissionID, requestingUserID); err != nil {
		return nil, err
	}

	updated, err := s.historyRepo.UpdateNote(ctx, submissionID, normalized)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update note", slog.String("submission_id", submissionID))
		}
		return nil, err
	}
	return updated, nil
}

func (s *historyService) DeleteSubmission(ctx context.Context, submissionID string, requestingUserID string) error {
	if _, err := s.findOwned(ctx, submissionID, requestingUserID); err != nil {
		return err
	}
	if err := s.historyRepo.DeleteSubmission(ctx, submissionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete submission", slog.String("submission_id", submissionID))
		}
		return err
	}
	s.LogInfo(ctx, "Submission deleted", slog.String("submission_id", submissionID))
	return nil
}

func (s *historyService) DeleteUserHistory(ctx context.Context, username string, requestingUserID string) error {
	user, err := s.resolveOwnUser(ctx, username, requestingUserID)
	if err != nil {
		return err
	}
	removed, err := s.historyRepo.DeleteSubmissionsByUser(ctx, user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete history", slog.String("user_id", user.UserID))
		return fmt.Errorf("failed to delete history: %w", err)
	}
	if removed == 0 {
		return fmt.Errorf("%w: no submissions for %s", apperrors.ErrNotFound, username)
	}
	s.LogInfo(ctx, "History deleted", slog.Int64("removed", removed))
	return nil
}
