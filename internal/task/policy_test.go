// File: internal/task/policy_test.go
package task

import (
	"testing"

	"taskboard_backend/internal/common"
	"taskboard_backend/internal/user"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_CanModify(t *testing.T) {
	owner := &user.User{ID: 2, Role: common.RoleUser}
	other := &user.User{ID: 3, Role: common.RoleUser}
	admin := &user.User{ID: 1, Role: common.RoleAdmin}
	owned := Task{ID: 5, Owner: 2}

	assert.True(t, CanModify(owner, owned))
	assert.False(t, CanModify(other, owned))
	assert.True(t, CanModify(admin, owned))

	// Seed tasks (owner 0) are admin-only.
	seed := Task{ID: 1, Owner: 0}
	assert.False(t, CanModify(owner, seed))
	assert.True(t, CanModify(admin, seed))
}

func TestPolicy_VisibleTo(t *testing.T) {
	tasks := []Task{
		{ID: 1, Owner: 0},
		{ID: 5, Owner: 2},
		{ID: 6, Owner: 3},
		{ID: 7, Owner: 2},
	}

	admin := &user.User{ID: 1, Role: common.RoleAdmin}
	assert.Len(t, VisibleTo(admin, tasks), 4)

	regular := &user.User{ID: 2, Role: common.RoleUser}
	visible := VisibleTo(regular, tasks)
	assert.Len(t, visible, 2)
	assert.Equal(t, int64(5), visible[0].ID)
	assert.Equal(t, int64(7), visible[1].ID)

	// A user owning nothing gets an empty list, never nil, so the
	// handler still renders a JSON array.
	stranger := &user.User{ID: 9, Role: common.RoleUser}
	empty := VisibleTo(stranger, tasks)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestPolicy_CanViewUsers(t *testing.T) {
	assert.True(t, CanViewUsers(&user.User{ID: 1, Role: common.RoleAdmin}))
	assert.False(t, CanViewUsers(&user.User{ID: 2, Role: common.RoleUser}))
}
