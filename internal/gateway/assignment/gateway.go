// Package assignment talks to the /asignaciones endpoints. The upstream wire
// format is mid-migration: records may carry Spanish legacy field names,
// English canonical names, or both. Decoding resolves the alias chains in
// converters.go; the create payload populates both generations so older
// backend builds keep working.
package assignment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"panel/internal/entities"
)

type AssignmentGateway struct {
	client doer
}

func New(client doer) *AssignmentGateway {
	return &AssignmentGateway{client: client}
}

// List fetches all assignments. The endpoint has shipped both a bare array
// and an {"items": [...]} envelope over time; both shapes are accepted.
func (g *AssignmentGateway) List(ctx context.Context) ([]entities.Assignment, error) {
	var raw json.RawMessage
	if err := g.client.Do(ctx, http.MethodGet, "/asignaciones", nil, &raw); err != nil {
		return nil, fmt.Errorf("gateway assignment, list: %w", err)
	}
	items, err := decodeAssignmentList(raw)
	if err != nil {
		return nil, fmt.Errorf("gateway assignment, list: %w", err)
	}
	return items, nil
}

// Recent fetches at most limit assignments, newest first.
func (g *AssignmentGateway) Recent(ctx context.Context, limit int) ([]entities.Assignment, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/asignaciones?limit=%d", limit)
	if err := g.client.Do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, fmt.Errorf("gateway assignment, recent: %w", err)
	}
	items, err := decodeAssignmentList(raw)
	if err != nil {
		return nil, fmt.Errorf("gateway assignment, recent: %w", err)
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// Create posts a new assignment and returns the created record as the server
// stored it.
func (g *AssignmentGateway) Create(ctx context.Context, draft entities.AssignmentDraft) (*entities.Assignment, error) {
	var resp assignmentDTO
	if err := g.client.Do(ctx, http.MethodPost, "/asignaciones", toCreatePayload(draft), &resp); err != nil {
		return nil, fmt.Errorf("gateway assignment, create: %w", err)
	}
	created := toDomain(resp)
	return &created, nil
}

// Update changes the editable subset of an assignment.
func (g *AssignmentGateway) Update(ctx context.Context, id int64, modify entities.AssignmentModify) error {
	payload := updatePayload{}
	if modify.Priority != nil {
		payload.Priority = (*string)(modify.Priority)
	}
	if modify.Notes != nil {
		payload.Notes = modify.Notes
	}

	path := fmt.Sprintf("/asignaciones/%d", id)
	if err := g.client.Do(ctx, http.MethodPut, path, payload, nil); err != nil {
		return fmt.Errorf("gateway assignment, update %d: %w", id, err)
	}
	return nil
}

// Delete removes an assignment.
func (g *AssignmentGateway) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/asignaciones/%d", id)
	if err := g.client.Do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("gateway assignment, delete %d: %w", id, err)
	}
	return nil
}

// Complete marks an assignment as delivered.
func (g *AssignmentGateway) Complete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/asignaciones/%d/completar", id)
	if err := g.client.Do(ctx, http.MethodPatch, path, nil, nil); err != nil {
		return fmt.Errorf("gateway assignment, complete %d: %w", id, err)
	}
	return nil
}
