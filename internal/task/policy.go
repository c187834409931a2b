// File: internal/task/policy.go
package task

import (
	"taskboard_backend/internal/user"
)

// Access policy: pure, stateless predicates consulted by the service
// before every read or mutation.

// CanViewAll reports whether the user may see every task.
func CanViewAll(u *user.User) bool {
	return u.IsAdmin()
}

// CanModify reports whether the user may update or delete the task.
// Owners and admins may; nobody else.
func CanModify(u *user.User, t Task) bool {
	return t.Owner == u.ID || u.IsAdmin()
}

// CanViewUsers gates the admin user-listing endpoint.
func CanViewUsers(u *user.User) bool {
	return u.IsAdmin()
}

// VisibleTo filters a task list down to what the user may observe:
// everything for admins, owned tasks only for everyone else. Filtering
// never fails; it narrows rather than rejects.
func VisibleTo(u *user.User, tasks []Task) []Task {
	if CanViewAll(u) {
		return tasks
	}
	visible := make([]Task, 0)
	for _, t := range tasks {
		if t.Owner == u.ID {
			visible = append(visible, t)
		}
	}
	return visible
}
