package domain

// ServiceRole classifies API callers. This service has no user store;
// callers are machine accounts configured through the environment.
type ServiceRole string

const (
	// RoleAdmin may additionally trigger catalog refreshes.
	RoleAdmin ServiceRole = "admin"
	// RoleReconciler is the upstream conversational backend.
	RoleReconciler ServiceRole = "reconciler"
)

// ValidServiceRole reports whether the role is one the service issues.
func ValidServiceRole(role ServiceRole) bool {
	switch role {
	case RoleAdmin, RoleReconciler:
		return true
	}
	return false
}
