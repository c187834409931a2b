// File: internal/common/roles.go
package common

const (
	// RoleAdmin is held by exactly the first user ever created.
	RoleAdmin = "admin"
	// RoleUser is assigned to every subsequently created user.
	RoleUser = "user"
)
