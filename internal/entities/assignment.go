package entities

import (
	"strings"
	"time"
)

type AssignmentPriority string

const (
	PriorityHigh   AssignmentPriority = "ALTA"
	PriorityMedium AssignmentPriority = "MEDIA"
	PriorityLow    AssignmentPriority = "BAJA"
)

const DefaultPriority = PriorityMedium

func (p AssignmentPriority) String() string {
	return string(p)
}

func (p AssignmentPriority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type AssignmentStatus string

const (
	// AssignmentAssigned is the initial status of every created assignment.
	AssignmentAssigned AssignmentStatus = "ASIGNADA"
	// AssignmentInTransit is set upstream, never by this client.
	AssignmentInTransit AssignmentStatus = "EN_CURSO"
	// AssignmentDelivered is terminal; no transition leads out of it.
	AssignmentDelivered AssignmentStatus = "ENTREGADA"
)

func (s AssignmentStatus) String() string {
	return string(s)
}

func (s AssignmentStatus) Terminal() bool {
	return s == AssignmentDelivered
}

// Assignment is one cargo-delivery task. The server owns its state; the
// client only caches short-lived per-view copies.
type Assignment struct {
	ID          int64
	CargoID     string
	VehicleID   string
	EmployeeID  string // national ID (RUT) of the responsible
	Origin      string
	Destination string
	Priority    AssignmentPriority
	Status      AssignmentStatus
	ScheduledAt *time.Time
	Notes       string
	CreatedAt   time.Time
}

// AssignmentDraft carries the creation form fields before normalization.
type AssignmentDraft struct {
	CargoID     string
	VehicleID   string
	EmployeeID  string
	Origin      string
	Destination string
	Priority    AssignmentPriority
	ScheduledAt *time.Time
	Notes       string
}

// AssignmentModify holds the editable subset. Only priority and notes are
// exposed for edit.
type AssignmentModify struct {
	Priority *AssignmentPriority
	Notes    *string
}

const cargoIDPrefix = "CARGA-"

// NormalizeCargoID uppercases the raw identifier and prefixes it with
// "CARGA-" when the prefix is absent. Idempotent:
// NormalizeCargoID(NormalizeCargoID(x)) == NormalizeCargoID(x).
func NormalizeCargoID(raw string) string {
	t := strings.ToUpper(strings.TrimSpace(raw))
	if strings.HasPrefix(t, cargoIDPrefix) {
		return t
	}
	return cargoIDPrefix + t
}
