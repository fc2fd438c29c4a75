package mapping

import (
	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	"github.com/SscSPs/till_reconciliation_app/internal/models"
)

// ToModelSubmission converts a domain Submission to a model Submission
func ToModelSubmission(d domain.Submission) models.Submission {
	return models.Submission{
		SubmissionID:  d.SubmissionID,
		UserID:        d.UserID,
		CurrencyCode:  d.CurrencyCode,
		DrawerAmount:  d.DrawerAmount,
		Denominations: append([]int64(nil), d.Denominations...),
		Note:          d.Note,
		HistoryColor:  d.HistoryColor,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainSubmission converts a model Submission to a domain Submission
func ToDomainSubmission(m models.Submission) domain.Submission {
	return domain.Submission{
		SubmissionID:  m.SubmissionID,
		UserID:        m.UserID,
		CurrencyCode:  m.CurrencyCode,
		DrawerAmount:  m.DrawerAmount,
		Denominations: domain.DenominationVector(m.Denominations),
		Note:          m.Note,
		HistoryColor:  m.HistoryColor,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

// ToDomainSubmissionSummaries converts listing rows to domain summaries
func ToDomainSubmissionSummaries(ms []models.SubmissionSummary) []domain.SubmissionSummary {
	ds := make([]domain.SubmissionSummary, len(ms))
	for i, m := range ms {
		ds[i] = domain.SubmissionSummary{
			SubmissionID: m.SubmissionID,
			CreatedAt:    m.CreatedAt.UTC(),
			HistoryColor: m.HistoryColor,
		}
	}
	return ds
}
