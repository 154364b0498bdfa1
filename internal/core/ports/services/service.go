package services

// ServiceContainer bundles every service implementation for handler wiring.
type ServiceContainer struct {
	Business  BusinessService
	Reporting ReportingService
	Inventory InventoryReportingService
}
