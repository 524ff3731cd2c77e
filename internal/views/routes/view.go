// Package routes is the trip-planning surface: the optimizer form plus the
// stored-query history list.
package routes

import (
	"context"
	"sync"

	"panel/internal/entities"
)

const historyLimit = 50

type View struct {
	mu     sync.Mutex
	svc    Service
	plan   *entities.RoutePlan
	items  []entities.RouteRecord
	closed bool
}

func New(svc Service) *View {
	return &View{svc: svc}
}

// Plan runs the optimizer and keeps the result for rendering.
func (v *View) Plan(ctx context.Context, originAddr, destinationAddr string) (*entities.RoutePlan, error) {
	plan, err := v.svc.Plan(ctx, originAddr, destinationAddr)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	if !v.closed {
		v.plan = plan
	}
	v.mu.Unlock()
	return plan, nil
}

func (v *View) Reload(ctx context.Context) error {
	items, err := v.svc.Recent(ctx, historyLimit)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	if err != nil {
		return err
	}
	v.items = items
	return nil
}

// Delete removes the row only when the server accepted the deletion.
func (v *View) Delete(ctx context.Context, id int64) error {
	if err := v.svc.DeleteRecent(ctx, id); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	filtered := v.items[:0]
	for _, item := range v.items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	v.items = filtered
	return nil
}

// LastPlan returns the most recent optimizer result, if any.
func (v *View) LastPlan() (entities.RoutePlan, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.plan == nil {
		return entities.RoutePlan{}, false
	}
	return *v.plan, true
}

func (v *View) Items() []entities.RouteRecord {
	v.mu.Lock()
	defer v.mu.Unlock()

	items := make([]entities.RouteRecord, len(v.items))
	copy(items, v.items)
	return items
}

func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.plan = nil
	v.items = nil
}
