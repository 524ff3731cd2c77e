// Package authz maps user roles to the operations they may perform. The
// mapping is static; gating decisions elsewhere in the codebase go through
// Capabilities rather than comparing role strings directly.
package authz

import "panel/internal/entities"

type Capability string

const (
	CapCompleteAssignment Capability = "assignment:complete"
	CapCreateAssignment   Capability = "assignment:create"
	CapEditAssignment     Capability = "assignment:edit"
	CapDeleteAssignment   Capability = "assignment:delete"
	CapDeleteIncident     Capability = "incident:delete"
	CapDeleteRoute        Capability = "route:delete"
	CapViewStock          Capability = "stock:view"
)

type Set map[Capability]struct{}

func (s Set) Has(cap Capability) bool {
	_, ok := s[cap]
	return ok
}

var staffCapabilities = []Capability{
	CapCompleteAssignment,
	CapDeleteIncident,
	CapDeleteRoute,
}

var adminCapabilities = append([]Capability{
	CapViewStock,
	CapCreateAssignment,
	CapEditAssignment,
	CapDeleteAssignment,
}, staffCapabilities...)

// Capabilities resolves the capability set for a role. Unknown roles get an
// empty set.
func Capabilities(role entities.Role) Set {
	var caps []Capability
	switch role {
	case entities.RoleAdmin:
		caps = adminCapabilities
	case entities.RoleStaff:
		caps = staffCapabilities
	}

	set := make(Set, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}
