package constants

// User roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User statuses.
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)
