package sqlite

import (
	"context"
	"fmt"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/till_reconciliation_app/internal/core/ports/repositories"
	"github.com/SscSPs/till_reconciliation_app/internal/models"
	"github.com/SscSPs/till_reconciliation_app/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormHistoryRepository struct {
	BaseRepository
}

func newGormHistoryRepository(db *gorm.DB) portsrepo.HistoryRepositoryFacade {
	return &GormHistoryRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.HistoryRepositoryFacade = (*GormHistoryRepository)(nil)

func (r *GormHistoryRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	var m models.Submission
	if err := r.DB.WithContext(ctx).Where("submission_id = ?", submissionID).First(&m).Error; err != nil {
		return nil, notFoundOr(err, "failed to find submission "+submissionID)
	}
	submission := mapping.ToDomainSubmission(m)
	return &submission, nil
}

func (r *GormHistoryRepository) ListSubmissionsByUser(ctx context.Context, userID string) ([]domain.SubmissionSummary, error) {
	var rows []models.SubmissionSummary
	err := r.DB.WithContext(ctx).Model(&models.Submission{}).
		Select("submission_id", "created_at", "history_color").
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("submission_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	return mapping.ToDomainSubmissionSummaries(rows), nil
}

func (r *GormHistoryRepository) SaveSubmission(ctx context.Context, submission domain.Submission) error {
	m := mapping.ToModelSubmission(submission)
	if err := r.DB.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: submission %s", apperrors.ErrDuplicate, m.SubmissionID)
		}
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}

func (r *GormHistoryRepository) UpdateNote(ctx context.Context, submissionID string, note *string) (*domain.Submission, error) {
	result := r.DB.WithContext(ctx).Model(&models.Submission{}).
		Where("submission_id = ?", submissionID).
		Update("note", note)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update note of submission %s: %w", submissionID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindSubmissionByID(ctx, submissionID)
}

func (r *GormHistoryRepository) DeleteSubmission(ctx context.Context, submissionID string) error {
	result := r.DB.WithContext(ctx).Where("submission_id = ?", submissionID).Delete(&models.Submission{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete submission %s: %w", submissionID, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GormHistoryRepository) DeleteSubmissionsByUser(ctx context.Context, userID string) (int64, error) {
	result := r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Submission{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete submissions of user %s: %w", userID, result.Error)
	}
	return result.RowsAffected, nil
}
