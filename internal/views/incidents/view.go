// Package incidents is the incident surface: the registration form plus the
// history list. Registration refreshes the history so the new record shows
// up with its server-assigned id.
package incidents

import (
	"context"
	"sync"

	"panel/internal/entities"
)

const historyLimit = 50

type View struct {
	mu     sync.Mutex
	svc    Service
	items  []entities.Incident
	closed bool
}

func New(svc Service) *View {
	return &View{svc: svc}
}

func (v *View) Reload(ctx context.Context) error {
	items, err := v.svc.List(ctx, historyLimit)

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

// Register stores the incident and reloads the history.
func (v *View) Register(ctx context.Context, draft entities.IncidentDraft) (*entities.Incident, error) {
	created, err := v.svc.Register(ctx, draft)
	if err != nil {
		return nil, err
	}
	if err := v.Reload(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// Delete removes the row only when the server accepted the deletion.
func (v *View) Delete(ctx context.Context, id int64) error {
	if err := v.svc.Delete(ctx, id); err != nil {
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

func (v *View) Items() []entities.Incident {
	v.mu.Lock()
	defer v.mu.Unlock()

	items := make([]entities.Incident, len(v.items))
	copy(items, v.items)
	return items
}

func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.items = nil
}
