package handlers

// AppHandlers bundles the constructed handlers for route registration.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	DashboardHandler   *DashboardHandler
	FeedHandler        *FeedHandler
}
