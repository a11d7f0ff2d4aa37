package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"hbday/config"
	"hbday/handlers"
	"hbday/logger"
	"hbday/middleware"
	"hbday/sessions"
	"hbday/storage"
	"hbday/utils"
)

func main() {
	// Load environment variables
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, continuing..")
		}
	}

	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zlog := logger.Run(cfg.LogLevel)
	defer zlog.Sync()

	// Initialize the database connection pool
	dbPool, pgErr := utils.OpenDB(cfg.DatabaseURL)
	if pgErr != nil {
		log.Fatalf("Failed to connect to database: %v", pgErr)
	}
	defer dbPool.Close()

	redisPool, redisErr := utils.OpenRedisPool(cfg.RedisURL)
	if redisErr != nil {
		log.Fatalf("Failed to connect to redis: %v", redisErr)
	}
	defer redisPool.Close()

	photoStore := storage.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, cfg.BucketName)
	sessionStore := sessions.NewStore()

	// Set up the HTTP routes
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Admin auth
	api.HandleFunc("/admin-login", func(w http.ResponseWriter, r *http.Request) {
		handlers.LoginHandler(w, r, cfg, sessionStore)
	}).Methods("POST")
	api.HandleFunc("/admin-logout", func(w http.ResponseWriter, r *http.Request) {
		handlers.LogoutHandler(w, r, sessionStore)
	}).Methods("POST")
	api.HandleFunc("/admin-status", handlers.AdminStatus).Methods("GET")

	// Comments
	api.HandleFunc("/comments", func(w http.ResponseWriter, r *http.Request) {
		handlers.GetComments(w, r, dbPool, redisPool)
	}).Methods("GET")
	api.HandleFunc("/comments", func(w http.ResponseWriter, r *http.Request) {
		handlers.AddComment(w, r, dbPool, redisPool, cfg)
	}).Methods("POST")
	api.HandleFunc("/comments/{id}", func(w http.ResponseWriter, r *http.Request) {
		handlers.UpdateComment(w, r, dbPool, redisPool)
	}).Methods("PUT")
	api.HandleFunc("/comments/{id}", func(w http.ResponseWriter, r *http.Request) {
		handlers.DeleteComment(w, r, dbPool, redisPool)
	}).Methods("DELETE")

	// Photos
	api.HandleFunc("/photos", func(w http.ResponseWriter, r *http.Request) {
		handlers.GetPhotos(w, r, photoStore, redisPool, cfg)
	}).Methods("GET")
	api.HandleFunc("/photos", func(w http.ResponseWriter, r *http.Request) {
		handlers.UploadPhoto(w, r, photoStore, redisPool, cfg)
	}).Methods("POST")
	api.HandleFunc("/photos", func(w http.ResponseWriter, r *http.Request) {
		handlers.DeletePhoto(w, r, photoStore, redisPool, cfg)
	}).Methods("DELETE")

	// Music playlist
	api.HandleFunc("/music", func(w http.ResponseWriter, r *http.Request) {
		handlers.GetMusic(w, r, cfg)
	}).Methods("GET")

	// Birthday note
	api.HandleFunc("/birthday", func(w http.ResponseWriter, r *http.Request) {
		handlers.GetBirthday(w, r, dbPool)
	}).Methods("GET")
	api.HandleFunc("/birthday", func(w http.ResponseWriter, r *http.Request) {
		handlers.UpdateBirthday(w, r, dbPool)
	}).Methods("POST")

	// Every request passes the identity gate before routing logic; the
	// gate annotates, handlers authorize.
	identity := middleware.NewIdentityMiddleware(sessionStore)
	logMiddleware := middleware.NewLoggingMiddleware(zlog)
	r.Use(logMiddleware.SetupLogging)
	r.Use(logMiddleware.AccessLog)
	r.Use(identity.Middleware)

	log.Printf("Serving at %s", cfg.RunAddress)
	log.Fatalln(http.ListenAndServe(cfg.RunAddress, r))
}
