package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
)

// SubmitHistoryRequest stores a drawer count in the caller's history.
type SubmitHistoryRequest struct {
	ReconcileRequest
	Note *string `json:"note" binding:"omitempty,max=500"`
}

// AddNoteRequest replaces the note of a submission.
type AddNoteRequest struct {
	Note string `json:"note" binding:"required,max=500"`
}

// SubmissionReportResponse is a stored submission together with its reconciliation.
type SubmissionReportResponse struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	Note         *string   `json:"note,omitempty"`
	HistoryColor int       `json:"historyColor"`
	ReconciliationResponse
}

// SubmissionRecordResponse is the stored form of a submission.
type SubmissionRecordResponse struct {
	ID            string      `json:"id"`
	CreatedAt     time.Time   `json:"createdAt"`
	CurrencyCode  string      `json:"currencyCode"`
	DrawerAmount  json.Number `json:"drawerAmount" swaggertype:"number"`
	Denominations []int64     `json:"denominations"`
	Note          *string     `json:"note"`
	HistoryColor  int         `json:"historyColor"`
}

// SubmissionSummaryResponse is one row of a user's history.
type SubmissionSummaryResponse struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	HistoryColor int       `json:"historyColor"`
}

// SubmissionReportEnvelope wraps a submission report.
type SubmissionReportEnvelope struct {
	Submission SubmissionReportResponse `json:"submission"`
}

// SubmissionRecordEnvelope wraps a stored submission.
type SubmissionRecordEnvelope struct {
	Submission SubmissionRecordResponse `json:"submission"`
}

// ListHistoryResponse wraps a user's history.
type ListHistoryResponse struct {
	History []SubmissionSummaryResponse `json:"history"`
}

// MessageResponse is returned by operations without a body of their own.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToSubmissionReportResponse converts a domain.SubmissionReport to its wire form.
func ToSubmissionReportResponse(r *domain.SubmissionReport) SubmissionReportResponse {
	return SubmissionReportResponse{
		ID:                     r.Submission.SubmissionID,
		CreatedAt:              r.Submission.CreatedAt,
		Note:                   r.Submission.Note,
		HistoryColor:           r.Submission.HistoryColor,
		ReconciliationResponse: ToReconciliationResponse(r.Result),
	}
}

// ToSubmissionRecordResponse converts the stored fields of a submission.
func ToSubmissionRecordResponse(s *domain.Submission) SubmissionRecordResponse {
	counts := make([]int64, len(s.Denominations))
	copy(counts, s.Denominations)
	return SubmissionRecordResponse{
		ID:            s.SubmissionID,
		CreatedAt:     s.CreatedAt,
		CurrencyCode:  s.CurrencyCode,
		DrawerAmount:  json.Number(s.DrawerAmount.String()),
		Denominations: counts,
		Note:          s.Note,
		HistoryColor:  s.HistoryColor,
	}
}

// ToListHistoryResponse converts a slice of domain.SubmissionSummary.
func ToListHistoryResponse(rows []domain.SubmissionSummary) ListHistoryResponse {
	res := make([]SubmissionSummaryResponse, len(rows))
	for i, row := range rows {
		res[i] = SubmissionSummaryResponse{
			ID:           row.SubmissionID,
			CreatedAt:    row.CreatedAt,
			HistoryColor: row.HistoryColor,
		}
	}
	return ListHistoryResponse{History: res}
}
