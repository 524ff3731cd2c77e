// Package miniassignments is the bounded recent-assignments widget embedded
// in the home surface. It does not own the dashboard numbers around it, so
// after every mutation it fires the OnChanged callback its parent injected
// and lets the parent refetch whatever else depends on assignment state.
package miniassignments

import (
	"context"
	"sync"

	"panel/internal/entities"
)

type View struct {
	mu        sync.Mutex
	svc       Service
	limit     int
	onChanged func()
	items     []entities.Assignment
	closed    bool
}

// New builds the widget. onChanged may be nil when no parent refresh is
// wired.
func New(svc Service, limit int, onChanged func()) *View {
	return &View{svc: svc, limit: limit, onChanged: onChanged}
}

// SetOnChanged installs the parent callback after construction, for
// compositions where the parent is built around this widget.
func (v *View) SetOnChanged(onChanged func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onChanged = onChanged
}

func (v *View) Reload(ctx context.Context) error {
	items, err := v.svc.Recent(ctx, v.limit)

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

// Edit saves the change, refreshes the widget and notifies the parent.
func (v *View) Edit(ctx context.Context, id int64, modify entities.AssignmentModify) error {
	if err := v.svc.Edit(ctx, id, modify); err != nil {
		return err
	}
	if err := v.Reload(ctx); err != nil {
		return err
	}
	v.notify()
	return nil
}

// Delete removes the row locally on success and notifies the parent.
func (v *View) Delete(ctx context.Context, id int64) error {
	if err := v.svc.Delete(ctx, id); err != nil {
		return err
	}
	v.removeByID(id)
	v.notify()
	return nil
}

// Complete removes the row locally on success and notifies the parent.
func (v *View) Complete(ctx context.Context, id int64) error {
	if err := v.svc.Complete(ctx, id); err != nil {
		return err
	}
	v.removeByID(id)
	v.notify()
	return nil
}

func (v *View) Items() []entities.Assignment {
	v.mu.Lock()
	defer v.mu.Unlock()

	items := make([]entities.Assignment, len(v.items))
	copy(items, v.items)
	return items
}

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

func (v *View) notify() {
	v.mu.Lock()
	onChanged := v.onChanged
	v.mu.Unlock()

	if onChanged != nil {
		onChanged()
	}
}
