package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/PaiAmitha/zap-it-delivery-dashboard/logging"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/services"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProjectHandler struct {
	Service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{Service: service}
}

func projectID(r *http.Request) (primitive.ObjectID, error) {
	vars := mux.Vars(r)
	return primitive.ObjectIDFromHex(vars["id"])
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "hr", "viewer"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	projects, err := h.Service.ListProjects(r.Context())
	if err != nil {
		logging.Logger.Errorf("Event ID: PROJECT_LIST_FAILED, Description: Failed to list projects: %v", err)
		http.Error(w, "Error fetching projects", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "hr", "viewer"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	id, err := projectID(r)
	if err != nil {
		http.Error(w, "Invalid project ID", http.StatusBadRequest)
		return
	}

	project, err := h.Service.GetProjectByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error fetching project", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	var raw bson.M
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	project, err := h.Service.CreateProject(r.Context(), raw)
	if err != nil {
		if err.Error() == "project name is required" {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logging.Logger.Errorf("Event ID: PROJECT_CREATE_FAILED, Description: Failed to create project: %v", err)
		http.Error(w, "Failed to create project", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	id, err := projectID(r)
	if err != nil {
		http.Error(w, "Invalid project ID", http.StatusBadRequest)
		return
	}

	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	project, err := h.Service.UpdateProject(r.Context(), id, updates)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		logging.Logger.Errorf("Event ID: PROJECT_UPDATE_FAILED, Description: Failed to update project %s: %v", id.Hex(), err)
		http.Error(w, "Failed to update project", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	id, err := projectID(r)
	if err != nil {
		http.Error(w, "Invalid project ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteProject(r.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete project", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "Project deleted successfully"}`))
}

// projectSection serves the per-project sub-resource endpoints that all
// share the same shape: parse the ID, call the service, encode the list.
func (h *ProjectHandler) projectSection(w http.ResponseWriter, r *http.Request, fetch func(primitive.ObjectID) (interface{}, error)) {
	if err := checkRole(r, []string{"admin", "manager", "hr", "viewer"}); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	id, err := projectID(r)
	if err != nil {
		http.Error(w, "Invalid project ID", http.StatusBadRequest)
		return
	}

	result, err := fetch(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		logging.Logger.Errorf("Event ID: PROJECT_SECTION_FAILED, Description: Failed to fetch project section for %s: %v", id.Hex(), err)
		http.Error(w, "Failed to retrieve project data", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *ProjectHandler) GetMilestones(w http.ResponseWriter, r *http.Request) {
	h.projectSection(w, r, func(id primitive.ObjectID) (interface{}, error) {
		return h.Service.GetProjectMilestones(r.Context(), id)
	})
}

func (h *ProjectHandler) GetRisks(w http.ResponseWriter, r *http.Request) {
	h.projectSection(w, r, func(id primitive.ObjectID) (interface{}, error) {
		return h.Service.GetProjectRisks(r.Context(), id)
	})
}

func (h *ProjectHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	h.projectSection(w, r, func(id primitive.ObjectID) (interface{}, error) {
		return h.Service.GetProjectKPIs(r.Context(), id)
	})
}

func (h *ProjectHandler) GetSprints(w http.ResponseWriter, r *http.Request) {
	h.projectSection(w, r, func(id primitive.ObjectID) (interface{}, error) {
		return h.Service.GetProjectSprints(r.Context(), id)
	})
}

func (h *ProjectHandler) GetTeamMembers(w http.ResponseWriter, r *http.Request) {
	h.projectSection(w, r, func(id primitive.ObjectID) (interface{}, error) {
		return h.Service.GetProjectTeamMembers(r.Context(), id)
	})
}

func (h *ProjectHandler) GetFinance(w http.ResponseWriter, r *http.Request) {
	h.projectSection(w, r, func(id primitive.ObjectID) (interface{}, error) {
		return h.Service.GetProjectFinance(r.Context(), id)
	})
}

func (h *ProjectHandler) GetEngineeringMetrics(w http.ResponseWriter, r *http.Request) {
	h.projectSection(w, r, func(id primitive.ObjectID) (interface{}, error) {
		return h.Service.GetProjectEngineeringMetrics(r.Context(), id)
	})
}
