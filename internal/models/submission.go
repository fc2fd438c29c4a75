package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Submission is a stored drawer count.
// Denominations is a BIGINT[] in Postgres and a JSON column in SQLite.
type Submission struct {
	SubmissionID  string          `json:"id" db:"submission_id" gorm:"primaryKey;size:36"`
	UserID        string          `json:"userID" db:"user_id" gorm:"index:idx_submissions_user_created,priority:1;not null"`
	CurrencyCode  string          `json:"currencyCode" db:"currency_code" gorm:"size:3;not null"`
	DrawerAmount  decimal.Decimal `json:"drawerAmount" db:"drawer_amount" gorm:"type:text;not null"`
	Denominations []int64         `json:"denominations" db:"denominations" gorm:"serializer:json;not null"`
	Note          *string         `json:"note,omitempty" db:"note"`
	HistoryColor  int             `json:"historyColor" db:"history_color"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at" gorm:"index:idx_submissions_user_created,priority:2,sort:desc"`
}

// TableName specifies the table name for GORM
func (Submission) TableName() string {
	return "submissions"
}

// SubmissionSummary is the listing projection of a submission.
type SubmissionSummary struct {
	SubmissionID string    `db:"submission_id"`
	CreatedAt    time.Time `db:"created_at"`
	HistoryColor int       `db:"history_color"`
}
