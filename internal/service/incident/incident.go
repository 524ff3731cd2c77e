// Package incident owns the incident registration flow: the free-form
// address is geocoded first, then the record is stored with the resolved
// coordinates.
package incident

import (
	"context"
	"fmt"
	"strings"

	"panel/internal/authz"
	"panel/internal/entities"
	"panel/pkg/logger"
)

type Incident struct {
	gateway  Gateway
	geocoder Geocoder
	sessions Sessions
	confirm  Confirmer
	log      serviceLogger
}

func New(gateway Gateway, geocoder Geocoder, sessions Sessions, confirm Confirmer, log serviceLogger) *Incident {
	return &Incident{
		gateway:  gateway,
		geocoder: geocoder,
		sessions: sessions,
		confirm:  confirm,
		log:      log,
	}
}

func (i *Incident) List(ctx context.Context, limit int) ([]entities.Incident, error) {
	return i.gateway.List(ctx, limit)
}

// Register geocodes the draft address and stores the incident. The cargo id
// is normalized the same way the assignment form normalizes it.
func (i *Incident) Register(ctx context.Context, draft entities.IncidentDraft) (*entities.Incident, error) {
	if _, ok := i.sessions.Current(); !ok {
		return nil, ErrNotAuthenticated
	}
	if !hasRequiredDraftFields(draft) {
		return nil, ErrMissingRequiredFields
	}
	if draft.Type == "" {
		draft.Type = entities.DefaultIncidentType
	}
	if !draft.Type.Valid() {
		return nil, ErrInvalidIncidentType
	}
	draft.CargoID = entities.NormalizeCargoID(draft.CargoID)

	loc, err := i.geocoder.Geocode(ctx, draft.Address)
	if err != nil {
		return nil, fmt.Errorf("geocode incident address: %w", err)
	}

	created, err := i.gateway.Register(ctx, draft, loc)
	if err != nil {
		return nil, fmt.Errorf("register incident: %w", err)
	}

	i.log.Info("incident registered",
		logger.NewField("incident_id", created.ID),
		logger.NewField("type", created.Type),
	)
	return created, nil
}

// Delete removes an incident from the history after confirmation.
func (i *Incident) Delete(ctx context.Context, id int64) error {
	session, ok := i.sessions.Current()
	if !ok {
		return ErrNotAuthenticated
	}
	if !authz.Capabilities(session.User.Role).Has(authz.CapDeleteIncident) {
		return ErrForbidden
	}

	ok, err := i.confirm.Confirm(fmt.Sprintf("Eliminar el incidente %d?", id))
	if err != nil {
		return fmt.Errorf("confirm deletion: %w", err)
	}
	if !ok {
		return ErrConfirmationDeclined
	}

	if err := i.gateway.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete incident %d: %w", id, err)
	}
	return nil
}

func hasRequiredDraftFields(draft entities.IncidentDraft) bool {
	required := []string{
		draft.CargoID,
		draft.VehicleID,
		draft.EmployeeID,
		draft.Description,
		draft.Address,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}
