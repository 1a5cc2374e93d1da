package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/PaiAmitha/zap-it-delivery-dashboard/logging"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/models"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/services"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EscalationHandler struct {
	Service *services.EscalationService
}

func NewEscalationHandler(service *services.EscalationService) *EscalationHandler {
	return &EscalationHandler{Service: service}
}

func (h *EscalationHandler) ListEscalations(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "hr", "viewer"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	escalations, err := h.Service.ListEscalations(r.Context())
	if err != nil {
		logging.Logger.Errorf("Event ID: ESCALATION_LIST_FAILED, Description: Failed to list escalations: %v", err)
		http.Error(w, "Failed to retrieve escalations", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, escalations)
}

func (h *EscalationHandler) CreateEscalation(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	var escalation models.Escalation
	if err := json.NewDecoder(r.Body).Decode(&escalation); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if escalation.Title == "" {
		http.Error(w, "Escalation title is required", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateEscalation(r.Context(), escalation)
	if err != nil {
		logging.Logger.Errorf("Event ID: ESCALATION_CREATE_FAILED, Description: Failed to create escalation: %v", err)
		http.Error(w, "Failed to create escalation", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *EscalationHandler) UpdateEscalation(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		http.Error(w, "Invalid escalation ID", http.StatusBadRequest)
		return
	}

	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateEscalation(r.Context(), id, updates)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Escalation not found", http.StatusNotFound)
			return
		}
		logging.Logger.Errorf("Event ID: ESCALATION_UPDATE_FAILED, Description: Failed to update escalation %s: %v", id.Hex(), err)
		http.Error(w, "Failed to update escalation", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *EscalationHandler) DeleteEscalation(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		http.Error(w, "Invalid escalation ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteEscalation(r.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Escalation not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete escalation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "Escalation deleted successfully"}`))
}
