package repositories

import (
	"context"

	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
)

// HistoryReader defines read operations for stored submissions
type HistoryReader interface {
	// FindSubmissionByID retrieves a submission, or apperrors.ErrNotFound.
	FindSubmissionByID(ctx context.Context, submissionID string) (*domain.Submission, error)

	// ListSubmissionsByUser lists a user's submissions, newest first.
	ListSubmissionsByUser(ctx context.Context, userID string) ([]domain.SubmissionSummary, error)
}

// HistoryWriter defines write operations for stored submissions
type HistoryWriter interface {
	// SaveSubmission persists a new submission.
	SaveSubmission(ctx context.Context, submission domain.Submission) error

	// UpdateNote replaces the note of a submission and returns the updated row.
	UpdateNote(ctx context.Context, submissionID string, note *string) (*domain.Submission, error)

	// DeleteSubmission removes one submission, or returns apperrors.ErrNotFound.
	DeleteSubmission(ctx context.Context, submissionID string) error

	// DeleteSubmissionsByUser removes every submission of a user and reports how many were removed.
	DeleteSubmissionsByUser(ctx context.Context, userID string) (int64, error)
}

// HistoryRepositoryFacade combines all history-related repository interfaces
type HistoryRepositoryFacade interface {
	HistoryReader
	HistoryWriter
}
