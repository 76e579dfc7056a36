package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"parkeo/internal/auth"
	apperrors "parkeo/internal/errors"
	"parkeo/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type SessionHandler struct {
	Service  *service.ParkingService
	validate *validator.Validate
}

func NewSessionHandler(svc *service.ParkingService) *SessionHandler {
	return &SessionHandler{Service: svc, validate: validator.New()}
}

func (h *SessionHandler) RequestEntry(w http.ResponseWriter, r *http.Request) {
	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.Service.RequestEntry(req.ParkingCode, req.PlateNumber, auth.UserID(r))
	if err != nil {
		http.Error(w, err.Error(), apperrors.StatusForError(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(session)
}

func (h *SessionHandler) RequestExit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	session, err := h.Service.RequestExit(id)
	if err != nil {
		http.Error(w, err.Error(), apperrors.StatusForError(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

func (h *SessionHandler) MySessions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.MySessions(auth.UserID(r)))
}

func (h *SessionHandler) ActiveSessions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.ActiveSessions(auth.UserID(r)))
}
