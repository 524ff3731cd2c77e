// Package incident talks to the /incidentes endpoints.
package incident

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"panel/internal/entities"
)

type IncidentGateway struct {
	client doer
}

func New(client doer) *IncidentGateway {
	return &IncidentGateway{client: client}
}

type incidentDTO struct {
	ID          int64        `json:"id"`
	CargoID     string       `json:"cargo_id"`
	VehicleID   string       `json:"vehicle_id"`
	EmployeeID  string       `json:"employee_id"`
	Type        string       `json:"type"`
	Description string       `json:"description"`
	Location    *locationDTO `json:"location"`
	CreatedAt   string       `json:"created_at"`
}

type locationDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type registerPayload struct {
	CargoID     string      `json:"cargo_id"`
	VehicleID   string      `json:"vehicle_id"`
	EmployeeID  string      `json:"employee_id"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Location    locationDTO `json:"location"`
}

// List fetches at most limit incidents, newest first.
func (g *IncidentGateway) List(ctx context.Context, limit int) ([]entities.Incident, error) {
	var dtos []incidentDTO
	path := fmt.Sprintf("/incidentes?limit=%d", limit)
	if err := g.client.Do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, fmt.Errorf("gateway incident, list: %w", err)
	}

	items := make([]entities.Incident, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, toDomain(dto))
	}
	return items, nil
}

// Register stores a new incident with an already resolved location.
func (g *IncidentGateway) Register(ctx context.Context, draft entities.IncidentDraft, loc entities.Location) (*entities.Incident, error) {
	payload := registerPayload{
		CargoID:     draft.CargoID,
		VehicleID:   draft.VehicleID,
		EmployeeID:  draft.EmployeeID,
		Type:        draft.Type.String(),
		Description: draft.Description,
		Location:    locationDTO{Lat: loc.Lat, Lon: loc.Lon},
	}

	var resp incidentDTO
	if err := g.client.Do(ctx, http.MethodPost, "/incidentes/registrar", payload, &resp); err != nil {
		return nil, fmt.Errorf("gateway incident, register: %w", err)
	}
	created := toDomain(resp)
	return &created, nil
}

// Delete removes an incident from the history.
func (g *IncidentGateway) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/incidentes/%d", id)
	if err := g.client.Do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("gateway incident, delete %d: %w", id, err)
	}
	return nil
}

func toDomain(dto incidentDTO) entities.Incident {
	inc := entities.Incident{
		ID:          dto.ID,
		CargoID:     dto.CargoID,
		VehicleID:   dto.VehicleID,
		EmployeeID:  dto.EmployeeID,
		Type:        entities.IncidentType(dto.Type),
		Description: dto.Description,
	}
	if dto.Location != nil {
		inc.Location = entities.Location{Lat: dto.Location.Lat, Lon: dto.Location.Lon}
	}
	if t, err := time.Parse(time.RFC3339, dto.CreatedAt); err == nil {
		inc.CreatedAt = t
	}
	return inc
}
