// File: internal/user/model.go
package user

import "taskboard_backend/internal/common"

// User is an internal account created lazily on first successful login
// from a given (provider, providerId) pair. Users are never deleted, and
// only the role is decided at creation time; every other field is carried
// unchanged from the first login.
type User struct {
	ID          int64  `json:"id"`
	ProviderID  string `json:"providerId"`
	Provider    string `json:"provider"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == common.RoleAdmin
}
