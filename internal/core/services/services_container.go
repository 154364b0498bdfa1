package services

import (
	portsrepo "github.com/bizbooks/bizbooks_app/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Business service first: it is the authorizer every report depends on.
	container.Business = NewBusinessService(repos.BusinessRepo)

	container.Reporting = NewReportingService(
		repos.LedgerRepo,
		repos.SettingsRepo,
		WithReportingBusinessAuthorizer(container.Business),
	)
	container.Inventory = NewInventoryService(
		repos.InventoryRepo,
		WithInventoryBusinessAuthorizer(container.Business),
	)

	return container
}
