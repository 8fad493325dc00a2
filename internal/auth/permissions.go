package auth

import "jobboard_backend/internal/models"

// Pure role/ownership checks. Every mutating handler consults the relevant
// check before touching storage; a failed check means no state change.

// CanPostJob reports whether the role may create job listings.
func CanPostJob(role models.UserRole) bool {
	return role == models.UserRoleEmployer
}

// CanApply reports whether the role may apply to job listings.
func CanApply(role models.UserRole) bool {
	return role == models.UserRoleSeeker
}

// CanDeleteJob reports whether the requester may delete a listing owned by
// ownerID: only the owning employer may.
func CanDeleteJob(role models.UserRole, ownerID, requesterID string) bool {
	return role == models.UserRoleEmployer && ownerID == requesterID
}

// CanViewAggregate reports whether the role may see platform-wide data.
func CanViewAggregate(role models.UserRole) bool {
	return role == models.UserRoleAdmin
}
