package services

import (
	"github.com/SscSPs/till_reconciliation_app/internal/core/currencytable"
	portsrepo "github.com/SscSPs/till_reconciliation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/till_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/till_reconciliation_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, currencies *currencytable.Table) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Reconciliation = NewReconciliationService(currencies)
	container.User = NewUserService(repos.UserRepo)
	container.History = NewHistoryService(repos.HistoryRepo, container.User, container.Reconciliation)
	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
