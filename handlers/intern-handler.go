package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/PaiAmitha/zap-it-delivery-dashboard/logging"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/models"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/services"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type InternHandler struct {
	Service *services.InternService
}

func NewInternHandler(service *services.InternService) *InternHandler {
	return &InternHandler{Service: service}
}

func (h *InternHandler) ListInterns(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "hr", "viewer"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	interns, err := h.Service.ListInterns(r.Context())
	if err != nil {
		logging.Logger.Errorf("Event ID: INTERN_LIST_FAILED, Description: Failed to list interns: %v", err)
		http.Error(w, "Failed to retrieve interns", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, interns)
}

func (h *InternHandler) CreateIntern(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "hr"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	var intern models.Intern
	if err := json.NewDecoder(r.Body).Decode(&intern); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateIntern(r.Context(), intern)
	if err != nil {
		if err.Error() == "intern name is required" {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logging.Logger.Errorf("Event ID: INTERN_CREATE_FAILED, Description: Failed to create intern: %v", err)
		http.Error(w, "Failed to create intern", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *InternHandler) DeleteIntern(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "hr"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		http.Error(w, "Invalid intern ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteIntern(r.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Intern not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete intern", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "Intern deleted successfully"}`))
}
