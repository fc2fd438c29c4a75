package services

import (
	"context"

	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	"github.com/SscSPs/till_reconciliation_app/internal/dto"
)

// HistoryReaderSvc defines read operations on a user's stored submissions.
// Every operation is restricted to the owner of the data.
type HistoryReaderSvc interface {
	// GetSubmission returns a stored submission with its recomputed reconciliation.
	GetSubmission(ctx context.Context, submissionID string, requestingUserID string) (*domain.SubmissionReport, error)

	// ListUserHistory lists the submissions of username.
	ListUserHistory(ctx context.Context, username string, requestingUserID string) ([]domain.SubmissionSummary, error)
}

// HistoryWriterSvc defines write operations on a user's stored submissions.
type HistoryWriterSvc interface {
	// Submit reconciles a drawer count and stores it. Invalid input is never stored.
	Submit(ctx context.Context, req dto.SubmitHistoryRequest, requestingUserID string) (*domain.SubmissionReport, error)

	// AddNote replaces the note of a submission.
	AddNote(ctx context.Context, submissionID string, note string, requestingUserID string) (*domain.Submission, error)

	// DeleteSubmission removes one submission.
	DeleteSubmission(ctx context.Context, submissionID string, requestingUserID string) error

	// DeleteUserHistory removes every submission of username.
	DeleteUserHistory(ctx context.Context, username string, requestingUserID string) error
}

// HistorySvcFacade combines all history-related service interfaces
type HistorySvcFacade interface {
	HistoryReaderSvc
	HistoryWriterSvc
}
