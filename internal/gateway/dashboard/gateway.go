package dashboard

import (
	"context"
	"fmt"
	"net/http"

	"panel/internal/entities"
)

type DashboardGateway struct {
	client doer
}

func New(client doer) *DashboardGateway {
	return &DashboardGateway{client: client}
}

type kpiResponse struct {
	OrdersInTransit int64     `json:"ordersInTransit"`
	WeeklyIncidents int64     `json:"weeklyIncidents"`
	AvgDurationMin  float64   `json:"avgDurationMin"`
	SLAOK           string    `json:"slaOK"`
	Trend           []float64 `json:"trend"`
	IsRealData      bool      `json:"isRealData"`
}

// KPIs fetches the aggregate fleet snapshot.
func (g *DashboardGateway) KPIs(ctx context.Context) (*entities.KPIReport, error) {
	var resp kpiResponse
	if err := g.client.Do(ctx, http.MethodGet, "/dashboard/kpis", nil, &resp); err != nil {
		return nil, fmt.Errorf("gateway dashboard, kpis: %w", err)
	}

	report := &entities.KPIReport{
		OrdersInTransit: resp.OrdersInTransit,
		WeeklyIncidents: resp.WeeklyIncidents,
		AvgDurationMin:  resp.AvgDurationMin,
		SLACompliance:   resp.SLAOK,
		Trend:           resp.Trend,
		IsRealData:      resp.IsRealData,
	}
	if report.SLACompliance == "" {
		report.SLACompliance = "N/A"
	}
	return report, nil
}
