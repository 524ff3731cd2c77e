package entities

import "time"

type IncidentType string

const (
	IncidentRouteDeviation  IncidentType = "DESVIO_RUTA"
	IncidentUnplannedStop   IncidentType = "DETENCION_NO_PROGRAMADA"
	IncidentAccident        IncidentType = "ACCIDENTE"
	IncidentTheft           IncidentType = "ROBO"
	IncidentOther           IncidentType = "OTRO"
)

const DefaultIncidentType = IncidentRouteDeviation

func (t IncidentType) String() string {
	return string(t)
}

func (t IncidentType) Valid() bool {
	switch t {
	case IncidentRouteDeviation, IncidentUnplannedStop, IncidentAccident, IncidentTheft, IncidentOther:
		return true
	}
	return false
}

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64
	Lon float64
}

// Incident is an append-only record; its only lifecycle beyond creation is
// optional deletion.
type Incident struct {
	ID          int64
	CargoID     string
	VehicleID   string
	EmployeeID  string
	Type        IncidentType
	Description string
	Location    Location
	CreatedAt   time.Time
}

// IncidentDraft carries the registration form fields. Address is geocoded to
// a Location before the record is sent.
type IncidentDraft struct {
	CargoID     string
	VehicleID   string
	EmployeeID  string
	Type        IncidentType
	Description string
	Address     string
}
