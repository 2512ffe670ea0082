package role

import "floreria-be/internal/auth"

// Fixed group names. Membership comes from the groups tables; the set of
// groups itself is static configuration, reconciled by Sync.
const (
	Admin     = "admin"
	Vendedor  = "vendedor"
	Bodeguero = "bodeguero"
)

// All lists every known group.
var All = []string{Admin, Vendedor, Bodeguero}

// permissions is the static role -> model -> action table. It mirrors what
// Sync writes to the store and is the source of truth for InRole callers.
var permissions = map[string]map[string][]string{
	Admin: {
		"product":  {"add", "change", "delete", "view"},
		"category": {"add", "change", "delete", "view"},
		"order":    {"add", "change", "delete", "view"},
	},
	Vendedor: {
		"product":  {"view"},
		"category": {"view"},
		"order":    {"add", "view"},
	},
	Bodeguero: {
		"product":  {"view", "change"},
		"category": {"view", "change", "add"},
		"order":    {"view"},
	},
}

// Permissions returns the action list for a group/model pair.
func Permissions(group, model string) []string {
	return permissions[group][model]
}

// InRole reports whether the caller may act as any of the allowed groups.
// Superusers always pass.
func InRole(id auth.Identity, allowed ...string) bool {
	if id.IsSuperuser {
		return true
	}
	for _, g := range allowed {
		if id.InGroup(g) {
			return true
		}
	}
	return false
}
