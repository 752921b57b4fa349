package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jpmiranda/regform/internal/api/request"
	"github.com/jpmiranda/regform/internal/api/response"
	"github.com/jpmiranda/regform/internal/model"
	"github.com/jpmiranda/regform/internal/services/registration"
)

// FormHandler handles registration form endpoints
type FormHandler struct {
	controller registration.ControllerInterface
}

// NewFormHandler creates a new form handler
func NewFormHandler(controller registration.ControllerInterface) *FormHandler {
	return &FormHandler{
		controller: controller,
	}
}

// hasImage reports whether an encoded image is available for the form
func (h *FormHandler) hasImage(r *http.Request, formID model.FormID) bool {
	_, err := h.controller.Image(r.Context(), formID)
	return err == nil
}

// Create handles POST /api/v1/forms
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	f, err := h.controller.CreateForm(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.FormFromModel(f, false))
}

// Get handles GET /api/v1/forms/{form_id}
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	formID := model.FormID(mux.Vars(r)["form_id"])

	f, err := h.controller.GetForm(r.Context(), formID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FormFromModel(f, h.hasImage(r, formID)))
}

// UpdateField handles PATCH /api/v1/forms/{form_id}/fields
func (h *FormHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	formID := model.FormID(mux.Vars(r)["form_id"])

	var req request.UpdateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Field == "" {
		WriteError(w, NewInvalidRequestError("field is required"))
		return
	}

	f, err := h.controller.UpdateField(r.Context(), formID, model.Field(req.Field), req.Value)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FormFromModel(f, h.hasImage(r, formID)))
}

// Submit handles POST /api/v1/forms/{form_id}/submit
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	formID := model.FormID(mux.Vars(r)["form_id"])

	f, err := h.controller.Submit(r.Context(), formID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FormFromModel(f, h.hasImage(r, formID)))
}

// Encode handles POST /api/v1/forms/{form_id}/encode
// Retries image generation for a form whose record is already saved
func (h *FormHandler) Encode(w http.ResponseWriter, r *http.Request) {
	formID := model.FormID(mux.Vars(r)["form_id"])

	f, err := h.controller.RetryEncode(r.Context(), formID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FormFromModel(f, h.hasImage(r, formID)))
}

// Reset handles POST /api/v1/forms/{form_id}/reset
func (h *FormHandler) Reset(w http.ResponseWriter, r *http.Request) {
	formID := model.FormID(mux.Vars(r)["form_id"])

	f, err := h.controller.Reset(r.Context(), formID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FormFromModel(f, false))
}

// Delete handles DELETE /api/v1/forms/{form_id}
func (h *FormHandler) Delete(w http.ResponseWriter, r *http.Request) {
	formID := model.FormID(mux.Vars(r)["form_id"])

	if err := h.controller.DeleteForm(r.Context(), formID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Image handles GET /api/v1/forms/{form_id}/image
// Returns the image as a data URI for inline display
func (h *FormHandler) Image(w http.ResponseWriter, r *http.Request) {
	formID := model.FormID(mux.Vars(r)["form_id"])

	img, err := h.controller.Image(r.Context(), formID)
	if err != nil {
		WriteError(w, err)
		return
	}

	f, err := h.controller.GetForm(r.Context(), formID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ImageFromModel(img, f))
}

// Download handles GET /api/v1/forms/{form_id}/image/download
// Serves the raw PNG with a filename derived from the student's name
func (h *FormHandler) Download(w http.ResponseWriter, r *http.Request) {
	formID := model.FormID(mux.Vars(r)["form_id"])

	img, err := h.controller.Image(r.Context(), formID)
	if err != nil {
		WriteError(w, err)
		return
	}

	f, err := h.controller.GetForm(r.Context(), formID)
	if err != nil {
		WriteError(w, err)
		return
	}

	fileName := model.ImageFileName(f.FirstName, f.LastName)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.PNG)
}
