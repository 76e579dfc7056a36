package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	apperrors "parkeo/internal/errors"
	"parkeo/internal/service"

	"github.com/gorilla/mux"
)

type ParkingHandler struct {
	Service *service.ParkingService
}

func NewParkingHandler(svc *service.ParkingService) *ParkingHandler {
	return &ParkingHandler{Service: svc}
}

func (h *ParkingHandler) ListParkings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.ListLots())
}

func (h *ParkingHandler) GetParking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	lot, err := h.Service.GetLot(id)
	if err != nil {
		http.Error(w, err.Error(), apperrors.StatusForError(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lot)
}

func (h *ParkingHandler) GetParkingByCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	lot, err := h.Service.GetLotByCode(code)
	if err != nil {
		http.Error(w, err.Error(), apperrors.StatusForError(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lot)
}
