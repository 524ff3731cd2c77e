package assignment

import (
	"encoding/json"
	"time"

	"panel/internal/entities"
)

// assignmentDTO carries both field generations. Canonical English names are
// preferred on decode; the Spanish legacy names are the fallback.
type assignmentDTO struct {
	ID        int64  `json:"id"`
	CargoID   string `json:"cargo_id"`
	VehicleID string `json:"vehicle_id"`

	EmployeeID  string          `json:"employee_id"`
	Responsable *responsableDTO `json:"responsable"`

	Origin      string `json:"origin_address"`
	Origen      string `json:"origen"`
	Destination string `json:"destination_address"`
	Destino     string `json:"destino"`

	Priority  string `json:"priority"`
	Prioridad string `json:"prioridad"`

	Status string `json:"status"`
	Estado string `json:"estado"`

	ScheduledAt string `json:"scheduled_at"`
	FechaHora   string `json:"fecha_hora"`

	Notes string `json:"notas"`

	CreatedAt string `json:"created_at"`
}

type responsableDTO struct {
	RUT string `json:"rut"`
}

type listEnvelope struct {
	Items []assignmentDTO `json:"items"`
}

func decodeAssignmentList(raw json.RawMessage) ([]entities.Assignment, error) {
	if len(raw) == 0 {
		return []entities.Assignment{}, nil
	}

	var dtos []assignmentDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		var envelope listEnvelope
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, err
		}
		dtos = envelope.Items
	}

	items := make([]entities.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, toDomain(dto))
	}
	return items, nil
}

func toDomain(dto assignmentDTO) entities.Assignment {
	employeeID := dto.EmployeeID
	if dto.Responsable != nil && dto.Responsable.RUT != "" {
		employeeID = dto.Responsable.RUT
	}

	priority := entities.AssignmentPriority(firstNonEmpty(dto.Priority, dto.Prioridad))
	if !priority.Valid() {
		priority = entities.DefaultPriority
	}

	status := entities.AssignmentStatus(firstNonEmpty(dto.Status, dto.Estado))
	if status == "" {
		status = entities.AssignmentAssigned
	}

	return entities.Assignment{
		ID:          dto.ID,
		CargoID:     dto.CargoID,
		VehicleID:   dto.VehicleID,
		EmployeeID:  employeeID,
		Origin:      firstNonEmpty(dto.Origin, dto.Origen),
		Destination: firstNonEmpty(dto.Destination, dto.Destino),
		Priority:    priority,
		Status:      status,
		ScheduledAt: parseWhen(firstNonEmpty(dto.ScheduledAt, dto.FechaHora)),
		Notes:       dto.Notes,
		CreatedAt:   parseWhenValue(dto.CreatedAt),
	}
}

type createPayload struct {
	CargoID   string  `json:"cargo_id"`
	VehicleID string  `json:"vehicle_id"`
	Prioridad string  `json:"prioridad"`
	Origen    string  `json:"origen"`
	Destino   string  `json:"destino"`
	FechaHora *string `json:"fecha_hora"`
	Notas     string  `json:"notas"`

	// Alias duplicates for backend builds that predate the rename.
	EmployeeID  string  `json:"employee_id"`
	Origin      string  `json:"origin_address"`
	Destination string  `json:"destination_address"`
	Priority    string  `json:"priority"`
	ScheduledAt *string `json:"scheduled_at"`
}

type updatePayload struct {
	Priority *string `json:"prioridad,omitempty"`
	Notes    *string `json:"notas,omitempty"`
}

func toCreatePayload(draft entities.AssignmentDraft) createPayload {
	var when *string
	if draft.ScheduledAt != nil {
		s := draft.ScheduledAt.Format(time.RFC3339)
		when = &s
	}

	return createPayload{
		CargoID:     draft.CargoID,
		VehicleID:   draft.VehicleID,
		Prioridad:   draft.Priority.String(),
		Origen:      draft.Origin,
		Destino:     draft.Destination,
		FechaHora:   when,
		Notas:       draft.Notes,
		EmployeeID:  draft.EmployeeID,
		Origin:      draft.Origin,
		Destination: draft.Destination,
		Priority:    draft.Priority.String(),
		ScheduledAt: when,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseWhen accepts the two timestamp layouts seen on the wire: RFC 3339 and
// the zone-less form the legacy scheduler form produced.
func parseWhen(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02T15:04", raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return &t
	}
	return nil
}

func parseWhenValue(raw string) time.Time {
	if t := parseWhen(raw); t != nil {
		return *t
	}
	return time.Time{}
}
