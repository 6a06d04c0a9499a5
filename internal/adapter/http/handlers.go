package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tasktrace/tasktrace/internal/domain/journal"
	"github.com/tasktrace/tasktrace/internal/domain/task"
	"github.com/tasktrace/tasktrace/internal/service"
)

// notFoundMessage mirrors the journal line the core emits on a miss.
const notFoundMessage = "ID not found."

// Handlers holds the HTTP handler dependencies.
type Handlers struct {
	Session *service.SessionService
}

// ListTasks handles GET /api/v1/tasks
func (h *Handlers) ListTasks(w http.ResponseWriter, _ *http.Request) {
	tasks := h.Session.Tasks()
	if tasks == nil {
		tasks = []task.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

// AddTask handles POST /api/v1/tasks
//
// Descriptions are accepted as-is, including empty text; adding a task
// never fails.
func (h *Handlers) AddTask(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[task.AddRequest](w, r)
	if !ok {
		return
	}

	t := h.Session.AddTask(r.Context(), req.Description)
	writeJSON(w, http.StatusCreated, t)
}

// GetTask handles GET /api/v1/tasks/{id}
func (h *Handlers) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, notFoundMessage)
		return
	}

	t, err := h.Session.Task(id)
	if err != nil {
		writeDomainError(w, err, notFoundMessage)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// CompleteTask handles POST /api/v1/tasks/{id}/complete
//
// A miss maps to 404 here, but it is a normal outcome for the session:
// the core journals "ID not found." and carries on. A non-integer id
// never reaches the core; any integer is legal input, a non-integer
// simply cannot match.
func (h *Handlers) CompleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, notFoundMessage)
		return
	}

	if !h.Session.CompleteTask(r.Context(), id) {
		writeError(w, http.StatusNotFound, notFoundMessage)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": id, "completed": true})
}

// ResetSession handles POST /api/v1/session/reset
func (h *Handlers) ResetSession(w http.ResponseWriter, r *http.Request) {
	h.Session.Reset(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// ListLogs handles GET /api/v1/logs
func (h *Handlers) ListLogs(w http.ResponseWriter, _ *http.Request) {
	logs := h.Session.Logs()
	if logs == nil {
		logs = []journal.Entry{}
	}
	writeJSON(w, http.StatusOK, logs)
}

// GetSession handles GET /api/v1/session — tasks and journal in one
// consistent snapshot for initial render.
func (h *Handlers) GetSession(w http.ResponseWriter, _ *http.Request) {
	snap := h.Session.Snapshot()
	if snap.Tasks == nil {
		snap.Tasks = []task.Task{}
	}
	if snap.Logs == nil {
		snap.Logs = []journal.Entry{}
	}
	writeJSON(w, http.StatusOK, snap)
}
