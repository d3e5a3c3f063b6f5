// Package entity contains the core business objects of the project.
package entity

// TenantStatus represents the lifecycle state of a tenant.
type TenantStatus string

const (
	// TenantStatusActive indicates the tenant may authenticate users.
	TenantStatusActive TenantStatus = "active"
	// TenantStatusInactive indicates the tenant is suspended.
	TenantStatusInactive TenantStatus = "inactive"
)

// String returns the string representation of the TenantStatus.
func (s TenantStatus) String() string {
	return string(s)
}

// IsValid checks if the TenantStatus is a valid value.
func (s TenantStatus) IsValid() bool {
	switch s {
	case TenantStatusActive, TenantStatusInactive:
		return true
	default:
		return false
	}
}

// UserStatus represents the lifecycle state of a user account.
type UserStatus string

const (
	// UserStatusActive indicates the account may log in.
	UserStatusActive UserStatus = "active"
	// UserStatusInactive indicates the account is disabled.
	UserStatusInactive UserStatus = "inactive"
)

// String returns the string representation of the UserStatus.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive:
		return true
	default:
		return false
	}
}
