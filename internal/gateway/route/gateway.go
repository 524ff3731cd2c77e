// Package route talks to the /routes endpoints: geocoding, trip
// optimization and the stored query history.
package route

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"panel/internal/entities"
)

type RouteGateway struct {
	client doer
}

func New(client doer) *RouteGateway {
	return &RouteGateway{client: client}
}

type coordinateDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type optimizeRequest struct {
	Origin      coordinateDTO `json:"origin"`
	Destination coordinateDTO `json:"destination"`
}

type optimizeResponse struct {
	DistanceKM  float64  `json:"distance_km"`
	DurationHMS string   `json:"duration_hms"`
	DurationMin string   `json:"duration_min"`
	TollCostCLP float64  `json:"toll_cost_clp"`
	TollCost    float64  `json:"toll_cost"`
	RiskScore   float64  `json:"risk_score"`
	Path        *pathDTO `json:"path"`
}

type pathDTO struct {
	Coords []coordinateDTO `json:"coords"`
}

type recordDTO struct {
	ID              int64   `json:"id"`
	OriginText      string  `json:"origin_text"`
	DestinationText string  `json:"destination_text"`
	OriginLat       float64 `json:"origin_lat"`
	OriginLon       float64 `json:"origin_lon"`
	DestinationLat  float64 `json:"destination_lat"`
	DestinationLon  float64 `json:"destination_lon"`
	DistanceKM      float64 `json:"distance_km"`
	DurationHMS     string  `json:"duration_hms"`
	DurationMin     string  `json:"duration_min"`
	RiskScore       float64 `json:"risk_score"`
}

// Geocode resolves a free-form address into a coordinate pair.
func (g *RouteGateway) Geocode(ctx context.Context, address string) (entities.Location, error) {
	var resp coordinateDTO
	path := "/routes/geocode?q=" + url.QueryEscape(address)
	if err := g.client.Do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return entities.Location{}, fmt.Errorf("gateway route, geocode %q: %w", address, err)
	}
	return entities.Location{Lat: resp.Lat, Lon: resp.Lon}, nil
}

// Optimize computes the trip between two resolved coordinates. The original
// address texts ride along as query params so the server can store them with
// the history record.
func (g *RouteGateway) Optimize(ctx context.Context, originText, destinationText string, origin, destination entities.Location) (*entities.RoutePlan, error) {
	req := optimizeRequest{
		Origin:      coordinateDTO{Lat: origin.Lat, Lon: origin.Lon},
		Destination: coordinateDTO{Lat: destination.Lat, Lon: destination.Lon},
	}

	path := fmt.Sprintf("/routes/optimize?origin_text=%s&destination_text=%s",
		url.QueryEscape(originText), url.QueryEscape(destinationText))

	var resp optimizeResponse
	if err := g.client.Do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("gateway route, optimize: %w", err)
	}

	plan := &entities.RoutePlan{
		DistanceKM:  resp.DistanceKM,
		DurationHMS: resp.DurationHMS,
		DurationMin: resp.DurationMin,
		RiskScore:   resp.RiskScore,
		TollCostCLP: resp.TollCostCLP,
	}
	// Older backend builds report toll cost in thousands of CLP.
	if plan.TollCostCLP == 0 && resp.TollCost != 0 {
		plan.TollCostCLP = resp.TollCost * 1000
	}
	if resp.Path != nil {
		plan.Path = make([]entities.Location, 0, len(resp.Path.Coords))
		for _, c := range resp.Path.Coords {
			plan.Path = append(plan.Path, entities.Location{Lat: c.Lat, Lon: c.Lon})
		}
	}
	return plan, nil
}

// Recent fetches at most limit stored route queries, newest first.
func (g *RouteGateway) Recent(ctx context.Context, limit int) ([]entities.RouteRecord, error) {
	var dtos []recordDTO
	path := fmt.Sprintf("/routes/recent?limit=%d", limit)
	if err := g.client.Do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, fmt.Errorf("gateway route, recent: %w", err)
	}

	items := make([]entities.RouteRecord, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, entities.RouteRecord{
			ID:              dto.ID,
			OriginText:      dto.OriginText,
			DestinationText: dto.DestinationText,
			Origin:          entities.Location{Lat: dto.OriginLat, Lon: dto.OriginLon},
			Destination:     entities.Location{Lat: dto.DestinationLat, Lon: dto.DestinationLon},
			DistanceKM:      dto.DistanceKM,
			DurationHMS:     dto.DurationHMS,
			DurationMin:     dto.DurationMin,
			RiskScore:       dto.RiskScore,
		})
	}
	return items, nil
}

// DeleteRecent removes one stored route query.
func (g *RouteGateway) DeleteRecent(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/routes/recent/%d", id)
	if err := g.client.Do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("gateway route, delete recent %d: %w", id, err)
	}
	return nil
}
