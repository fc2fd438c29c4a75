package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/till_reconciliation_app/internal/core/ports/repositories"
	"github.com/SscSPs/till_reconciliation_app/internal/models"
	"github.com/SscSPs/till_reconciliation_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxHistoryRepository struct {
	BaseRepository
}

func newPgxHistoryRepository(pool *pgxpool.Pool) portsrepo.HistoryRepositoryFacade {
	return &PgxHistoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.HistoryRepositoryFacade = (*PgxHistoryRepository)(nil)

const submissionColumns = `submission_id, user_id, currency_code, drawer_amount, denominations, note, history_color, created_at`

func scanSubmission(row pgx.Row) (*domain.Submission, error) {
	var m models.Submission
	if err := row.Scan(
		&m.SubmissionID,
		&m.UserID,
		&m.CurrencyCode,
		&m.DrawerAmount,
		&m.Denominations,
		&m.Note,
		&m.HistoryColor,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	submission := mapping.ToDomainSubmission(m)
	return &submission, nil
}

func (r *PgxHistoryRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE submission_id = $1;`
	submission, err := scanSubmission(r.Pool.QueryRow(ctx, query, submissionID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find submission %s", submissionID)
	}
	return submission, nil
}

func (r *PgxHistoryRepository) ListSubmissionsByUser(ctx context.Context, userID string) ([]domain.SubmissionSummary, error) {
	query := `
		SELECT submission_id, created_at, history_color
		FROM submissions
		WHERE user_id = $1
		ORDER BY created_at DESC, submission_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	summaries := []models.SubmissionSummary{}
	for rows.Next() {
		var m models.SubmissionSummary
		if err := rows.Scan(&m.SubmissionID, &m.CreatedAt, &m.HistoryColor); err != nil {
			return nil, fmt.Errorf("failed to scan submission row: %w", err)
		}
		summaries = append(summaries, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating submission rows: %w", rows.Err())
	}
	return mapping.ToDomainSubmissionSummaries(summaries), nil
}

func (r *PgxHistoryRepository) SaveSubmission(ctx context.Context, submission domain.Submission) error {
	m := mapping.ToModelSubmission(submission)
	query := `INSERT INTO submissions (` + submissionColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	_, err := r.Pool.Exec(ctx, query,
		m.SubmissionID,
		m.UserID,
		m.CurrencyCode,
		m.DrawerAmount,
		m.Denominations,
		m.Note,
		m.HistoryColor,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: submission %s", apperrors.ErrDuplicate, m.SubmissionID)
		}
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}

func (r *PgxHistoryRepository) UpdateNote(ctx context.Context, submissionID string, note *string) (*domain.Submission, error) {
	query := `UPDATE submissions SET note = $1 WHERE submission_id = $2 RETURNING ` + submissionColumns + `;`
	submission, err := scanSubmission(r.Pool.QueryRow(ctx, query, note, submissionID))
	if err != nil {
		return nil, notFoundOr(err, "failed to update note of submission %s", submissionID)
	}
	return submission, nil
}

func (r *PgxHistoryRepository) DeleteSubmission(ctx context.Context, submissionID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM submissions WHERE submission_id = $1`, submissionID)
	if err != nil {
		return fmt.Errorf("failed to delete submission %s: %w", submissionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxHistoryRepository) DeleteSubmissionsByUser(ctx context.Context, userID string) (int64, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM submissions WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete submissions of user %s: %w", userID, err)
	}
	return cmdTag.RowsAffected(), nil
}
