package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/till_reconciliation_app/internal/core/ports/repositories"
	gsqlite "github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type RepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	repos portsrepo.RepositoryProvider
	base  time.Time
}

func (s *RepositoryTestSuite) SetupTest() {
	dbPath := filepath.Join(s.T().TempDir(), "till.db")
	db, err := gorm.Open(gsqlite.Open(dbPath), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	s.Require().NoError(err)
	s.Require().NoError(AutoMigrate(db))
	s.T().Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	s.ctx = context.Background()
	s.repos = NewRepositoryProvider(db)
	s.base = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
}

func (s *RepositoryTestSuite) saveUser(id, username string) domain.User {
	hash := "hash"
	user := domain.User{
		UserID:       id,
		Username:     username,
		PasswordHash: &hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields:  domain.AuditFields{CreatedAt: s.base, CreatedBy: id, LastUpdatedAt: s.base, LastUpdatedBy: id},
	}
	s.Require().NoError(s.repos.UserRepo.SaveUser(s.ctx, user))
	return user
}

func (s *RepositoryTestSuite) saveSubmission(id, userID string, offset time.Duration) domain.Submission {
	submission := domain.Submission{
		SubmissionID:  id,
		UserID:        userID,
		CurrencyCode:  "USD",
		DrawerAmount:  decimal.RequireFromString("100.50"),
		Denominations: domain.DenominationVector{4, 2, 10, 7, 2, 17, 15, 21, 10, 30},
		HistoryColor:  45,
		CreatedAt:     s.base.Add(offset),
	}
	s.Require().NoError(s.repos.HistoryRepo.SaveSubmission(s.ctx, submission))
	return submission
}

func (s *RepositoryTestSuite) TestUser_SaveAndFind() {
	saved := s.saveUser("u-1", "till1")

	byID, err := s.repos.UserRepo.FindUserByID(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Equal(saved.Username, byID.Username)
	s.Equal(domain.ProviderLocal, byID.AuthProvider)
	s.Equal("hash", *byID.PasswordHash)
	s.True(saved.CreatedAt.Equal(byID.CreatedAt))

	byName, err := s.repos.UserRepo.FindUserByUsername(s.ctx, "till1")
	s.Require().NoError(err)
	s.Equal("u-1", byName.UserID)

	_, err = s.repos.UserRepo.FindUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryTestSuite) TestUser_DuplicateUsername() {
	s.saveUser("u-1", "till1")

	hash := "other"
	err := s.repos.UserRepo.SaveUser(s.ctx, domain.User{UserID: "u-2", Username: "till1", PasswordHash: &hash, AuthProvider: domain.ProviderLocal})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *RepositoryTestSuite) TestUser_ProviderLookup() {
	subject := "google-sub"
	user := domain.User{UserID: "g-1", Username: "a@example.com", AuthProvider: domain.ProviderGoogle, ProviderUserID: &subject}
	s.Require().NoError(s.repos.UserRepo.SaveUser(s.ctx, user))

	found, err := s.repos.UserRepo.FindUserByProviderDetails(s.ctx, domain.ProviderGoogle, "google-sub")
	s.Require().NoError(err)
	s.Equal("g-1", found.UserID)
	s.Nil(found.PasswordHash)

	_, err = s.repos.UserRepo.FindUserByProviderDetails(s.ctx, domain.ProviderGoogle, "other")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryTestSuite) TestUser_UpdatePassword() {
	s.saveUser("u-1", "till1")
	later := s.base.Add(time.Hour)

	s.Require().NoError(s.repos.UserRepo.UpdatePassword(s.ctx, "u-1", "new-hash", later))
	user, err := s.repos.UserRepo.FindUserByID(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Equal("new-hash", *user.PasswordHash)
	s.True(later.Equal(user.LastUpdatedAt))

	s.ErrorIs(s.repos.UserRepo.UpdatePassword(s.ctx, "missing", "x", later), apperrors.ErrNotFound)
}

func (s *RepositoryTestSuite) TestUser_DeleteRemovesHistory() {
	s.saveUser("u-1", "till1")
	s.saveUser("u-2", "till2")
	s.saveSubmission("s-1", "u-1", 0)
	s.saveSubmission("s-2", "u-2", 0)

	s.Require().NoError(s.repos.UserRepo.DeleteUser(s.ctx, "u-1"))

	_, err := s.repos.UserRepo.FindUserByID(s.ctx, "u-1")
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.repos.HistoryRepo.FindSubmissionByID(s.ctx, "s-1")
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.repos.HistoryRepo.FindSubmissionByID(s.ctx, "s-2")
	s.NoError(err)

	s.ErrorIs(s.repos.UserRepo.DeleteUser(s.ctx, "u-1"), apperrors.ErrNotFound)
}

func (s *RepositoryTestSuite) TestHistory_SaveAndFind() {
	s.saveUser("u-1", "till1")
	saved := s.saveSubmission("s-1", "u-1", 0)

	found, err := s.repos.HistoryRepo.FindSubmissionByID(s.ctx, "s-1")
	s.Require().NoError(err)
	s.Equal(saved.Denominations, found.Denominations)
	s.True(saved.DrawerAmount.Equal(found.DrawerAmount))
	s.True(saved.CreatedAt.Equal(found.CreatedAt))
	s.Equal("USD", found.CurrencyCode)
	s.Equal(45, found.HistoryColor)
	s.Nil(found.Note)

	_, err = s.repos.HistoryRepo.FindSubmissionByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryTestSuite) TestHistory_ListNewestFirst() {
	s.saveUser("u-1", "till1")
	s.saveSubmission("old", "u-1", 0)
	s.saveSubmission("new", "u-1", 2*time.Hour)
	s.saveSubmission("mid", "u-1", time.Hour)

	rows, err := s.repos.HistoryRepo.ListSubmissionsByUser(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal([]string{"new", "mid", "old"}, []string{rows[0].SubmissionID, rows[1].SubmissionID, rows[2].SubmissionID})
	s.Equal(45, rows[0].HistoryColor)

	empty, err := s.repos.HistoryRepo.ListSubmissionsByUser(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *RepositoryTestSuite) TestHistory_UpdateNote() {
	s.saveUser("u-1", "till1")
	s.saveSubmission("s-1", "u-1", 0)
	note := "counted twice"

	updated, err := s.repos.HistoryRepo.UpdateNote(s.ctx, "s-1", &note)
	s.Require().NoError(err)
	s.Require().NotNil(updated.Note)
	s.Equal(note, *updated.Note)

	_, err = s.repos.HistoryRepo.UpdateNote(s.ctx, "missing", &note)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryTestSuite) TestHistory_Delete() {
	s.saveUser("u-1", "till1")
	s.saveSubmission("s-1", "u-1", 0)
	s.saveSubmission("s-2", "u-1", time.Minute)
	s.saveSubmission("s-3", "u-1", 2*time.Minute)

	s.Require().NoError(s.repos.HistoryRepo.DeleteSubmission(s.ctx, "s-1"))
	s.ErrorIs(s.repos.HistoryRepo.DeleteSubmission(s.ctx, "s-1"), apperrors.ErrNotFound)

	removed, err := s.repos.HistoryRepo.DeleteSubmissionsByUser(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Equal(int64(2), removed)

	removed, err = s.repos.HistoryRepo.DeleteSubmissionsByUser(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Zero(removed)
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
