// File: tests/integration/tasks_api_test.go
package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"taskboard_backend/internal/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listTasks(t *testing.T, env *testEnv, cookie *http.Cookie) []task.Task {
	t.Helper()
	w := env.do(t, http.MethodGet, "/api/tasks", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []task.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	return tasks
}

func TestTasks_AdminSeesSeedTasks(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "google", "g-1", "Alice")

	tasks := listTasks(t, env, admin)
	require.Len(t, tasks, 4)
	assert.Equal(t, int64(1), tasks[0].ID)
	assert.Equal(t, "Submit performance review", tasks[0].Text)
}

func TestTasks_VisibilityPerOwner(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "google", "g-1", "Alice")
	bob := env.login(t, "facebook", "fb-1", "Bob")

	w := env.do(t, http.MethodPost, "/api/tasks",
		`{"text":"Bob's errand","type":"personal","period":"daily"}`, bob)
	require.Equal(t, http.StatusCreated, w.Code)
	var created task.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(5), created.ID)

	// Bob sees only his own task; the admin sees the seeds plus it.
	bobTasks := listTasks(t, env, bob)
	require.Len(t, bobTasks, 1)
	assert.Equal(t, "Bob's errand", bobTasks[0].Text)
	assert.Len(t, listTasks(t, env, admin), 5)
}

func TestTasks_CrossUserModificationForbidden(t *testing.T) {
	env := newTestEnv(t)
	_ = env.login(t, "google", "g-1", "Alice")
	bob := env.login(t, "facebook", "fb-1", "Bob")
	carol := env.login(t, "facebook", "fb-2", "Carol")

	w := env.do(t, http.MethodPost, "/api/tasks",
		`{"text":"Bob's errand","type":"personal","period":"daily"}`, bob)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPut, "/api/tasks/5", `{"completed":true}`, carol)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Forbidden"}`, w.Body.String())

	w = env.do(t, http.MethodDelete, "/api/tasks/5", "", carol)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Seed tasks belong to nobody; regular users cannot touch them either.
	w = env.do(t, http.MethodPut, "/api/tasks/1", `{"completed":true}`, bob)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTasks_OwnerAndAdminCanModify(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "google", "g-1", "Alice")
	bob := env.login(t, "facebook", "fb-1", "Bob")

	w := env.do(t, http.MethodPost, "/api/tasks",
		`{"text":"Bob's errand","type":"personal","period":"daily"}`, bob)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPut, "/api/tasks/5", `{"completed":true}`, bob)
	require.Equal(t, http.StatusOK, w.Code)
	var updated task.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.True(t, updated.Completed)

	// Admins may modify and delete anyone's task.
	w = env.do(t, http.MethodPut, "/api/tasks/5", `{"completed":false}`, admin)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodDelete, "/api/tasks/5", "", admin)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, listTasks(t, env, bob), 0)
}

func TestTasks_UnknownIDs(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "google", "g-1", "Alice")

	w := env.do(t, http.MethodPut, "/api/tasks/999", `{"completed":true}`, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Task not found"}`, w.Body.String())

	// Deletes are idempotent.
	w = env.do(t, http.MethodDelete, "/api/tasks/999", "", admin)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTasks_ValidationError(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "google", "g-1", "Alice")

	w := env.do(t, http.MethodPost, "/api/tasks", `{"text":"only text"}`, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Text, type, and period are required"}`, w.Body.String())
}
