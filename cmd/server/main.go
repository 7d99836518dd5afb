package main

import (
	"net/http"

	"github.com/aquadrill/fieldops/internal/auth"
	"github.com/aquadrill/fieldops/internal/config"
	"github.com/aquadrill/fieldops/internal/db"
	"github.com/aquadrill/fieldops/internal/geo"
	"github.com/aquadrill/fieldops/internal/handlers"
	"github.com/aquadrill/fieldops/internal/middleware"
	"github.com/aquadrill/fieldops/internal/notify"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	client, err := db.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	log.Info("connected to MongoDB")

	database := client.Database(cfg.MongoDB)
	requestCollection := &db.MongoRequestCollection{Collection: database.Collection("requests")}
	userCollection := &db.MongoUserCollection{Collection: database.Collection("users")}
	vehicleCollection := &db.MongoVehicleCollection{Collection: database.Collection("vehicles")}
	productCollection := &db.MongoProductCollection{Collection: database.Collection("products")}
	employeeCollection := &db.MongoEmployeeCollection{Collection: database.Collection("employees")}

	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()

	var notifier notify.Notifier = notify.LogNotifier{}
	if cfg.MQTTBroker != "" {
		mqttNotifier, err := notify.NewMQTTNotifier(cfg.MQTTBroker, "fieldops-server", cfg.MQTTTopic)
		if err != nil {
			log.WithError(err).Warn("MQTT broker unreachable, falling back to log notifier")
		} else {
			defer mqttNotifier.Close()
			notifier = mqttNotifier
			log.WithField("topic", cfg.MQTTTopic).Info("publishing toasts to MQTT")
		}
	}

	authHandler := handlers.NewAuthHandler(authService, userCollection)
	requestHandler := handlers.NewRequestHandler(requestCollection, notifier)
	referenceHandler := handlers.NewReferenceHandler(vehicleCollection, productCollection, employeeCollection)
	geoHandler := handlers.NewGeoHandler(geo.NewClient(cfg.MapBaseURL, cfg.MapAPIKey))

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)

	api.HandleFunc("/requests", requestHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/requests", requestHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/requests/export", requestHandler.Export).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id}", requestHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id}", requestHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/requests/{id}", requestHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/vehicles", referenceHandler.ListVehicles).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", referenceHandler.CreateVehicle).Methods(http.MethodPost)
	api.HandleFunc("/products", referenceHandler.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products", referenceHandler.CreateProduct).Methods(http.MethodPost)
	api.HandleFunc("/employees", referenceHandler.ListEmployees).Methods(http.MethodGet)
	api.HandleFunc("/employees", referenceHandler.CreateEmployee).Methods(http.MethodPost)

	api.HandleFunc("/geo/search", geoHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/geo/reverse", geoHandler.Reverse).Methods(http.MethodGet)

	handler := rateLimiter.RateLimit(300, 60)(authMiddleware.Authenticate(r))

	log.WithField("port", cfg.Port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
