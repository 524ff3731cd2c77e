package assignment

import (
	"strings"

	"panel/internal/entities"
)

func hasRequiredDraftFields(draft entities.AssignmentDraft) bool {
	required := []string{
		draft.CargoID,
		draft.VehicleID,
		draft.EmployeeID,
		draft.Origin,
		draft.Destination,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}
