package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns today's summary, the weekly overview and recent activity
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
