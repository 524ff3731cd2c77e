package dashboard_refresh

import (
	"context"
	"time"
)

type View interface {
	Refresh(ctx context.Context) error
}

// DashboardRefresh keeps the home surface warm so the dashboard renders
// instantly when the operator returns to it.
type DashboardRefresh struct {
	view     View
	interval time.Duration
}

func NewDashboardRefresh(view View, interval time.Duration) *DashboardRefresh {
	return &DashboardRefresh{
		view:     view,
		interval: interval,
	}
}

func (d *DashboardRefresh) TTL() time.Duration {
	return d.interval
}

func (d *DashboardRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	return d.view.Refresh(ctxWithTimeout)
}

func (d *DashboardRefresh) Info() string {
	return "dashboard refresh"
}
