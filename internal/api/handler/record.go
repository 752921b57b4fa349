package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jpmiranda/regform/internal/api/response"
	"github.com/jpmiranda/regform/internal/services/registration"
)

// RecordHandler handles persisted registration record endpoints
type RecordHandler struct {
	controller registration.ControllerInterface
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(controller registration.ControllerInterface) *RecordHandler {
	return &RecordHandler{
		controller: controller,
	}
}

// Get handles GET /api/v1/records/{student_number}
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	studentNumber := mux.Vars(r)["student_number"]

	record, err := h.controller.GetRecord(r.Context(), studentNumber)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RecordFromModel(record))
}

// Programs handles GET /api/v1/programs
func (h *RecordHandler) Programs(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.ProgramsFromModel())
}
