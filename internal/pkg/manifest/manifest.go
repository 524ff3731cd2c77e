// Package manifest renders delivery manifests to plain-text documents in a
// local directory.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"panel/internal/entities"
)

type Writer struct {
	dir string
	now func() time.Time
}

func New(dir string) *Writer {
	return &Writer{dir: dir, now: time.Now}
}

// WriteAssignments renders one manifest document for the given assignments
// and returns the path it was written to.
func (w *Writer) WriteAssignments(items []entities.Assignment) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create manifest dir: %w", err)
	}

	now := w.now()
	name := fmt.Sprintf("asignaciones_%s.txt", now.Format("20060102_150405"))
	path := filepath.Join(w.dir, name)

	var b strings.Builder
	b.WriteString("MANIFIESTO DE ASIGNACIONES - LuxChile\n")
	b.WriteString("Generado: " + now.Format(time.RFC3339) + "\n")
	b.WriteString(fmt.Sprintf("Registros: %d\n\n", len(items)))

	for _, item := range items {
		b.WriteString(fmt.Sprintf("[%d] %s\n", item.ID, item.CargoID))
		b.WriteString(fmt.Sprintf("  Vehiculo:    %s\n", item.VehicleID))
		b.WriteString(fmt.Sprintf("  Responsable: %s\n", item.EmployeeID))
		b.WriteString(fmt.Sprintf("  Origen:      %s\n", item.Origin))
		b.WriteString(fmt.Sprintf("  Destino:     %s\n", item.Destination))
		b.WriteString(fmt.Sprintf("  Prioridad:   %s\n", item.Priority))
		b.WriteString(fmt.Sprintf("  Estado:      %s\n", item.Status))
		if item.ScheduledAt != nil {
			b.WriteString(fmt.Sprintf("  Programada:  %s\n", item.ScheduledAt.Format(time.RFC3339)))
		}
		if item.Notes != "" {
			b.WriteString(fmt.Sprintf("  Notas:       %s\n", item.Notes))
		}
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}

// WriteIncidents renders one report document for the given incidents.
func (w *Writer) WriteIncidents(items []entities.Incident) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create manifest dir: %w", err)
	}

	now := w.now()
	name := fmt.Sprintf("incidentes_%s.txt", now.Format("20060102_150405"))
	path := filepath.Join(w.dir, name)

	var b strings.Builder
	b.WriteString("REPORTE DE INCIDENTES - LuxChile\n")
	b.WriteString("Generado: " + now.Format(time.RFC3339) + "\n")
	b.WriteString(fmt.Sprintf("Registros: %d\n\n", len(items)))

	for _, item := range items {
		b.WriteString(fmt.Sprintf("[%d] %s - %s\n", item.ID, item.Type, item.CargoID))
		b.WriteString(fmt.Sprintf("  Vehiculo:    %s\n", item.VehicleID))
		b.WriteString(fmt.Sprintf("  Responsable: %s\n", item.EmployeeID))
		b.WriteString(fmt.Sprintf("  Ubicacion:   %.5f, %.5f\n", item.Location.Lat, item.Location.Lon))
		b.WriteString(fmt.Sprintf("  Descripcion: %s\n", item.Description))
		if !item.CreatedAt.IsZero() {
			b.WriteString(fmt.Sprintf("  Fecha:       %s\n", item.CreatedAt.Format(time.RFC3339)))
		}
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
