package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaiAmitha/zap-it-delivery-dashboard/logging"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/services"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ResourceHandler struct {
	Service *services.ResourceService
}

func NewResourceHandler(service *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{Service: service}
}

// ListResources supports ?seniority= and ?billable= query filters.
func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "hr", "viewer"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	filters := services.ResourceFilters{
		Seniority: r.URL.Query().Get("seniority"),
	}
	if raw := r.URL.Query().Get("billable"); raw != "" {
		billable, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "Invalid billable filter", http.StatusBadRequest)
			return
		}
		filters.Billable = &billable
	}

	resources, err := h.Service.ListResources(r.Context(), filters)
	if err != nil {
		logging.Logger.Errorf("Event ID: RESOURCE_LIST_FAILED, Description: Failed to list resources: %v", err)
		http.Error(w, "Failed to retrieve resources", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resources)
}

func (h *ResourceHandler) GetResource(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "hr", "viewer"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	resource, err := h.Service.GetByEmployeeID(r.Context(), vars["employeeId"])
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Resource not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to retrieve resource", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resource)
}

func (h *ResourceHandler) CreateResource(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "hr"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	var raw bson.M
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	resource, err := h.Service.CreateResource(r.Context(), raw)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		logging.Logger.Errorf("Event ID: RESOURCE_CREATE_FAILED, Description: Failed to create resource: %v", err)
		http.Error(w, "Failed to create resource", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, resource)
}

func (h *ResourceHandler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "hr"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	resource, err := h.Service.UpdateResource(r.Context(), vars["employeeId"], updates)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Resource not found", http.StatusNotFound)
			return
		}
		logging.Logger.Errorf("Event ID: RESOURCE_UPDATE_FAILED, Description: Failed to update resource %s: %v", vars["employeeId"], err)
		http.Error(w, "Failed to update resource", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resource)
}

func (h *ResourceHandler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "hr"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	if err := h.Service.DeleteResource(r.Context(), vars["employeeId"]); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Resource not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete resource", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "Resource deleted successfully"}`))
}

// GetResignations lists resources whose last working day falls within
// the next 60 days.
func (h *ResourceHandler) GetResignations(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "hr"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	resources, err := h.Service.Resignations(r.Context())
	if err != nil {
		logging.Logger.Errorf("Event ID: RESOURCE_RESIGNATIONS_FAILED, Description: Failed to list resignations: %v", err)
		http.Error(w, "Failed to retrieve resignations", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resources)
}
