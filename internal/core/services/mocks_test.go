package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/till_reconciliation_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, now time.Time) error {
	args := m.Called(ctx, userID, passwordHash, now)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock HistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

var _ portsrepo.HistoryRepositoryFacade = (*MockHistoryRepository)(nil)

func (m *MockHistoryRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	args := m.Called(ctx, submissionID)
	var submission *domain.Submission
	if args.Get(0) != nil {
		submission = args.Get(0).(*domain.Submission)
	}
	return submission, args.Error(1)
}

func (m *MockHistoryRepository) ListSubmissionsByUser(ctx context.Context, userID string) ([]domain.SubmissionSummary, error) {
	args := m.Called(ctx, userID)
	var rows []domain.SubmissionSummary
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.SubmissionSummary)
	}
	return rows, args.Error(1)
}

func (m *MockHistoryRepository) SaveSubmission(ctx context.Context, submission domain.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockHistoryRepository) UpdateNote(ctx context.Context, submissionID string, note *string) (*domain.Submission, error) {
	args := m.Called(ctx, submissionID, note)
	var submission *domain.Submission
	if args.Get(0) != nil {
		submission = args.Get(0).(*domain.Submission)
	}
	return submission, args.Error(1)
}

func (m *MockHistoryRepository) DeleteSubmission(ctx context.Context, submissionID string) error {
	args := m.Called(ctx, submissionID)
	return args.Error(0)
}

func (m *MockHistoryRepository) DeleteSubmissionsByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
