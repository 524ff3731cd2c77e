// Package assignment owns the cargo-assignment lifecycle rules: field
// validation and normalization on create, role gating on the mutating
// operations, confirmation before the destructive ones, and manifest
// generation for just-created records.
package assignment

import (
	"context"
	"fmt"

	"panel/internal/authz"
	"panel/internal/entities"
	"panel/pkg/logger"
)

type Assignment struct {
	gateway  Gateway
	sessions Sessions
	confirm  Confirmer
	manifest ManifestWriter
	log      serviceLogger
}

func New(
	gateway Gateway,
	sessions Sessions,
	confirm Confirmer,
	manifest ManifestWriter,
	log serviceLogger,
) *Assignment {
	return &Assignment{
		gateway:  gateway,
		sessions: sessions,
		confirm:  confirm,
		manifest: manifest,
		log:      log,
	}
}

func (a *Assignment) List(ctx context.Context) ([]entities.Assignment, error) {
	return a.gateway.List(ctx)
}

func (a *Assignment) Recent(ctx context.Context, limit int) ([]entities.Assignment, error) {
	return a.gateway.Recent(ctx, limit)
}

// Create validates and normalizes the draft, stores it, and writes a manifest
// for the record the server returned. A manifest failure does not fail the
// creation.
func (a *Assignment) Create(ctx context.Context, draft entities.AssignmentDraft) (*entities.Assignment, error) {
	if _, err := a.require(authz.CapCreateAssignment); err != nil {
		return nil, err
	}
	if !hasRequiredDraftFields(draft) {
		return nil, ErrMissingRequiredFields
	}

	draft.CargoID = entities.NormalizeCargoID(draft.CargoID)
	if draft.Priority == "" {
		draft.Priority = entities.DefaultPriority
	}
	if !draft.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	created, err := a.gateway.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	if path, err := a.manifest.WriteAssignments([]entities.Assignment{*created}); err != nil {
		a.log.Warn("write assignment manifest",
			logger.NewField("assignment_id", created.ID),
			logger.NewField("error", err),
		)
	} else {
		a.log.Info("assignment manifest written",
			logger.NewField("assignment_id", created.ID),
			logger.NewField("path", path),
		)
	}
	return created, nil
}

// Edit changes priority and notes.
func (a *Assignment) Edit(ctx context.Context, id int64, modify entities.AssignmentModify) error {
	if _, err := a.require(authz.CapEditAssignment); err != nil {
		return err
	}
	if modify.Priority != nil && !modify.Priority.Valid() {
		return ErrInvalidPriority
	}

	if err := a.gateway.Update(ctx, id, modify); err != nil {
		return fmt.Errorf("edit assignment %d: %w", id, err)
	}
	return nil
}

// Complete marks the assignment delivered after the operator confirms. A
// declined confirmation makes no network call.
func (a *Assignment) Complete(ctx context.Context, id int64) error {
	if _, err := a.require(authz.CapCompleteAssignment); err != nil {
		return err
	}

	ok, err := a.confirm.Confirm(fmt.Sprintf("Completar la asignacion %d?", id))
	if err != nil {
		return fmt.Errorf("confirm completion: %w", err)
	}
	if !ok {
		return ErrConfirmationDeclined
	}

	if err := a.gateway.Complete(ctx, id); err != nil {
		return fmt.Errorf("complete assignment %d: %w", id, err)
	}
	return nil
}

// Delete removes the assignment after the operator confirms.
func (a *Assignment) Delete(ctx context.Context, id int64) error {
	if _, err := a.require(authz.CapDeleteAssignment); err != nil {
		return err
	}

	ok, err := a.confirm.Confirm(fmt.Sprintf("Eliminar la asignacion %d?", id))
	if err != nil {
		return fmt.Errorf("confirm deletion: %w", err)
	}
	if !ok {
		return ErrConfirmationDeclined
	}

	if err := a.gateway.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete assignment %d: %w", id, err)
	}
	return nil
}

// ExportManifest writes a manifest document for the full current list.
func (a *Assignment) ExportManifest(ctx context.Context) (string, error) {
	items, err := a.gateway.List(ctx)
	if err != nil {
		return "", fmt.Errorf("export manifest: %w", err)
	}
	path, err := a.manifest.WriteAssignments(items)
	if err != nil {
		return "", fmt.Errorf("export manifest: %w", err)
	}
	return path, nil
}

func (a *Assignment) require(cap authz.Capability) (entities.Session, error) {
	session, ok := a.sessions.Current()
	if !ok {
		return entities.Session{}, ErrNotAuthenticated
	}
	if !authz.Capabilities(session.User.Role).Has(cap) {
		return entities.Session{}, ErrForbidden
	}
	return session, nil
}
