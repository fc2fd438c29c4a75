package sqlite

import (
	portsrepo "github.com/SscSPs/till_reconciliation_app/internal/core/ports/repositories"
	"gorm.io/gorm"
)

func NewRepositoryProvider(db *gorm.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newGormUserRepository(db),
		HistoryRepo: newGormHistoryRepository(db),
	}
}
