// Package assignments is the full assignment list surface. The view owns a
// short-lived copy of the server list and keeps it consistent with the
// operations performed through it: creation refreshes the whole list,
// deletion and completion remove the affected row only after the server
// confirmed.
package assignments

import (
	"context"
	"sync"

	"panel/internal/entities"
	"panel/pkg/logger"
)

type View struct {
	mu      sync.Mutex
	svc     Service
	log     viewLogger
	items   []entities.Assignment
	loading bool
	closed  bool
}

func New(svc Service, log viewLogger) *View {
	return &View{svc: svc, log: log}
}

// Reload replaces the list with a fresh server copy. A response arriving
// after Close is discarded.
func (v *View) Reload(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	v.loading = true
	v.mu.Unlock()

	items, err := v.svc.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if v.closed {
		return nil
	}
	if err != nil {
		return err
	}
	v.items = items
	return nil
}

// Create stores the draft, shows the created record immediately, then
// refreshes the whole list so rows created elsewhere appear too. A failed
// refresh keeps the appended row visible.
func (v *View) Create(ctx context.Context, draft entities.AssignmentDraft) (*entities.Assignment, error) {
	created, err := v.svc.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	if !v.closed {
		v.items = append(v.items, *created)
	}
	v.mu.Unlock()

	if err := v.Reload(ctx); err != nil {
		v.log.Warn("refresh after create", logger.NewField("error", err))
	}
	return created, nil
}

// Delete removes the row only when the server accepted the deletion.
func (v *View) Delete(ctx context.Context, id int64) error {
	if err := v.svc.Delete(ctx, id); err != nil {
		return err
	}
	v.removeByID(id)
	return nil
}

// Complete removes the row on success; delivered assignments leave this
// surface.
func (v *View) Complete(ctx context.Context, id int64) error {
	if err := v.svc.Complete(ctx, id); err != nil {
		return err
	}
	v.removeByID(id)
	return nil
}

// Items returns a copy of the current list.
func (v *View) Items() []entities.Assignment {
	v.mu.Lock()
	defer v.mu.Unlock()

	items := make([]entities.Assignment, len(v.items))
	copy(items, v.items)
	return items
}

func (v *View) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Close marks the surface inactive; responses still in flight are discarded.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.items = nil
}

func (v *View) removeByID(id int64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	filtered := v.items[:0]
	for _, item := range v.items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	v.items = filtered
}
