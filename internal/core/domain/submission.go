package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Submission is a stored drawer count. Only the inputs are stored; the reconciliation report is
// recomputed from them on every read.
type Submission struct {
	SubmissionID  string             `json:"id"` // Primary Key (UUID)
	UserID        string             `json:"userID"`
	CurrencyCode  string             `json:"currencyCode"`
	DrawerAmount  decimal.Decimal    `json:"drawerAmount"`
	Denominations DenominationVector `json:"denominations"`
	Note          *string            `json:"note,omitempty"`
	HistoryColor  int                `json:"historyColor"` // HSL hue used by clients
	CreatedAt     time.Time          `json:"createdAt"`
}

// SubmissionSummary is the listing view of a submission.
type SubmissionSummary struct {
	SubmissionID string    `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	HistoryColor int       `json:"historyColor"`
}

// SubmissionReport pairs a stored submission with the reconciliation computed from it.
type SubmissionReport struct {
	Submission Submission
	Result     *ReconciliationResult
}
