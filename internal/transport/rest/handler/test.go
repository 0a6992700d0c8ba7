package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"mindscale/internal/model"
	"mindscale/internal/service"
)

// TestHandler handles instrument endpoints
type TestHandler struct {
	testSvc *service.TestService
}

// NewTestHandler creates a new test handler
func NewTestHandler(testSvc *service.TestService) *TestHandler {
	return &TestHandler{
		testSvc: testSvc,
	}
}

// Create handles POST /v1/tests
func (h *TestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var test model.Test
	if err := json.NewDecoder(r.Body).Decode(&test); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.testSvc.Create(r.Context(), &test); err != nil {
		if errors.Is(err, service.ErrInvalidTest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, test)
}

// Get handles GET /v1/tests/{testType}
func (h *TestHandler) Get(w http.ResponseWriter, r *http.Request) {
	testType := mux.Vars(r)["testType"]
	includeScores := r.URL.Query().Get("include_scores") == "true"

	test, err := h.testSvc.GetByType(r.Context(), testType, includeScores)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeError(w, http.StatusNotFound, "test not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, test)
}

// Popular handles GET /v1/tests/popular
func (h *TestHandler) Popular(w http.ResponseWriter, r *http.Request) {
	rows, err := h.testSvc.Popular(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, rows)
}
