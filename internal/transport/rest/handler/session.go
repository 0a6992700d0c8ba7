package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"mindscale/internal/model"
	"mindscale/internal/scoring"
	"mindscale/internal/service"
)

// SessionHandler handles submission and session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionSvc: sessionSvc,
	}
}

// Submit handles POST /v1/tests/{testId}/submit
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	testID := mux.Vars(r)["testId"]

	var sub model.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.sessionSvc.Submit(r.Context(), testID, &sub)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			writeError(w, http.StatusNotFound, "test not found")
		case errors.Is(err, service.ErrNoAnswers),
			errors.Is(err, scoring.ErrAnswerCount),
			errors.Is(err, scoring.ErrDuplicateAnswer),
			errors.Is(err, scoring.ErrUnknownQuestion),
			errors.Is(err, scoring.ErrOptionMismatch):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// Get handles GET /v1/sessions/{sessionId}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.sessionSvc.GetByID(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// ListByUser handles GET /v1/users/{userId}/sessions
func (h *SessionHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	sessions, err := h.sessionSvc.GetByUserID(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sessions == nil {
		sessions = []*model.Session{}
	}

	writeJSON(w, http.StatusOK, sessions)
}
