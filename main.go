package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/PaiAmitha/zap-it-delivery-dashboard/handlers"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/logging"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/middleware"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Role")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	logging.InitLogger()

	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Delivery Dashboard Service...")
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_ERROR, Description: Error loading .env file: %v", err)
	}

	mongoURI := os.Getenv("MONGO_URI")
	mongoDBName := os.Getenv("MONGO_DB_NAME")
	if mongoURI == "" || mongoDBName == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: MONGO_URI and MONGO_DB_NAME must be set in the environment variables.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", mongoURI)

	store := services.NewStore(client.Database(mongoDBName))

	dashboardService := services.NewDashboardService(store)
	resourceService := services.NewResourceService(client, mongoDBName)
	projectService := services.NewProjectService(client, mongoDBName)
	escalationService := services.NewEscalationService(client, mongoDBName)
	internService := services.NewInternService(client, mongoDBName)
	userService := services.NewUserService(client, mongoDBName)

	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	projectHandler := handlers.NewProjectHandler(projectService)
	escalationHandler := handlers.NewEscalationHandler(escalationService)
	internHandler := handlers.NewInternHandler(internService)
	authHandler := handlers.NewAuthHandler(userService)

	r := mux.NewRouter()

	r.HandleFunc("/api/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/login", authHandler.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.JWTAuthMiddleware)

	api.HandleFunc("/dashboard", dashboardHandler.GetDashboard).Methods(http.MethodGet)

	api.HandleFunc("/resources", resourceHandler.ListResources).Methods(http.MethodGet)
	api.HandleFunc("/resources", resourceHandler.CreateResource).Methods(http.MethodPost)
	api.HandleFunc("/resources/{employeeId}", resourceHandler.GetResource).Methods(http.MethodGet)
	api.HandleFunc("/resources/{employeeId}", resourceHandler.UpdateResource).Methods(http.MethodPut)
	api.HandleFunc("/resources/{employeeId}", resourceHandler.DeleteResource).Methods(http.MethodDelete)
	api.HandleFunc("/resignations", resourceHandler.GetResignations).Methods(http.MethodGet)

	api.HandleFunc("/projects", projectHandler.ListProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects", projectHandler.CreateProject).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}", projectHandler.GetProjectByID).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", projectHandler.UpdateProject).Methods(http.MethodPut)
	api.HandleFunc("/projects/{id}", projectHandler.DeleteProject).Methods(http.MethodDelete)
	api.HandleFunc("/projects/{id}/milestones", projectHandler.GetMilestones).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}/risks", projectHandler.GetRisks).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}/kpis", projectHandler.GetKPIs).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}/sprints", projectHandler.GetSprints).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}/team-members", projectHandler.GetTeamMembers).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}/finance", projectHandler.GetFinance).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}/engineering-metrics", projectHandler.GetEngineeringMetrics).Methods(http.MethodGet)

	api.HandleFunc("/escalations", escalationHandler.ListEscalations).Methods(http.MethodGet)
	api.HandleFunc("/escalations", escalationHandler.CreateEscalation).Methods(http.MethodPost)
	api.HandleFunc("/escalations/{id}", escalationHandler.UpdateEscalation).Methods(http.MethodPut)
	api.HandleFunc("/escalations/{id}", escalationHandler.DeleteEscalation).Methods(http.MethodDelete)

	api.HandleFunc("/interns", internHandler.ListInterns).Methods(http.MethodGet)
	api.HandleFunc("/interns", internHandler.CreateIntern).Methods(http.MethodPost)
	api.HandleFunc("/interns/{id}", internHandler.DeleteIntern).Methods(http.MethodDelete)

	corsRouter := enableCORS(r)

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8000"
	}

	serverAddress := fmt.Sprintf(":%s", serverPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      corsRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)
	if err := srv.ListenAndServe(); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
