// Package route owns trip planning: both endpoint addresses are geocoded
// concurrently, then the optimizer is called with the resolved coordinates.
package route

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"panel/internal/authz"
	"panel/internal/entities"
	"panel/pkg/logger"
)

type Route struct {
	gateway  Gateway
	sessions Sessions
	confirm  Confirmer
	log      serviceLogger
}

func New(gateway Gateway, sessions Sessions, confirm Confirmer, log serviceLogger) *Route {
	return &Route{
		gateway:  gateway,
		sessions: sessions,
		confirm:  confirm,
		log:      log,
	}
}

// Plan geocodes origin and destination in parallel and optimizes the trip.
// Either geocoding failure aborts the whole plan.
func (r *Route) Plan(ctx context.Context, originAddr, destinationAddr string) (*entities.RoutePlan, error) {
	if _, ok := r.sessions.Current(); !ok {
		return nil, ErrNotAuthenticated
	}

	originAddr = strings.TrimSpace(originAddr)
	destinationAddr = strings.TrimSpace(destinationAddr)
	if originAddr == "" || destinationAddr == "" {
		return nil, ErrMissingAddresses
	}

	var origin, destination entities.Location

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		origin, err = r.gateway.Geocode(groupCtx, originAddr)
		return err
	})
	group.Go(func() error {
		var err error
		destination, err = r.gateway.Geocode(groupCtx, destinationAddr)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("geocode route endpoints: %w", err)
	}

	plan, err := r.gateway.Optimize(ctx, originAddr, destinationAddr, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("optimize route: %w", err)
	}

	r.log.Info("route planned",
		logger.NewField("distance_km", plan.DistanceKM),
		logger.NewField("risk", entities.RiskBand(plan.RiskScore)),
	)
	return plan, nil
}

func (r *Route) Recent(ctx context.Context, limit int) ([]entities.RouteRecord, error) {
	return r.gateway.Recent(ctx, limit)
}

// DeleteRecent removes one stored route query after confirmation.
func (r *Route) DeleteRecent(ctx context.Context, id int64) error {
	session, ok := r.sessions.Current()
	if !ok {
		return ErrNotAuthenticated
	}
	if !authz.Capabilities(session.User.Role).Has(authz.CapDeleteRoute) {
		return ErrForbidden
	}

	ok, err := r.confirm.Confirm(fmt.Sprintf("Eliminar la ruta %d del historial?", id))
	if err != nil {
		return fmt.Errorf("confirm deletion: %w", err)
	}
	if !ok {
		return ErrConfirmationDeclined
	}

	if err := r.gateway.DeleteRecent(ctx, id); err != nil {
		return fmt.Errorf("delete route %d: %w", id, err)
	}
	return nil
}
