package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"parkeo/internal/entities"
	apperrors "parkeo/internal/errors"
	"parkeo/internal/service"

	"github.com/gorilla/mux"
)

// AdminHandler exposes the entry/exit rulings. Role enforcement sits in the
// auth middleware, not here.
type AdminHandler struct {
	Service *service.ParkingService
}

func NewAdminHandler(svc *service.ParkingService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) ListEntryRequests(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.EntryRequests())
}

func (h *AdminHandler) ListExitRequests(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.ExitRequests())
}

func (h *AdminHandler) ApproveEntry(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Service.ApproveEntry)
}

func (h *AdminHandler) RejectEntry(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Service.RejectEntry)
}

func (h *AdminHandler) ApproveExit(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Service.ApproveExit)
}

func (h *AdminHandler) RejectExit(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Service.RejectExit)
}

func (h *AdminHandler) transition(w http.ResponseWriter, r *http.Request, op func(int) (entities.Session, error)) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	session, err := op(id)
	if err != nil {
		http.Error(w, err.Error(), apperrors.StatusForError(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}
