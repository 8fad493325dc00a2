package models

type UserRole string
type UserStatus string

const (
	UserRoleSeeker   UserRole = "seeker"
	UserRoleEmployer UserRole = "employer"
	UserRoleAdmin    UserRole = "admin"

	UserStatusActive UserStatus = "active"
)

// ValidRole reports whether the value belongs to the closed role set.
// Anything else is rejected at the identity-store boundary.
func ValidRole(role UserRole) bool {
	switch role {
	case UserRoleSeeker, UserRoleEmployer, UserRoleAdmin:
		return true
	default:
		return false
	}
}
