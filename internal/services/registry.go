package services

// ServiceContainer bundles the constructed services for handler wiring.
type ServiceContainer struct {
	AuthService        AuthService
	JobService         JobService
	ApplicationService ApplicationService
	DashboardService   DashboardService
	FeedService        FeedService
}
