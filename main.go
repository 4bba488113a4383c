package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/filedepot/backend/api/v1/database"
	"github.com/filedepot/backend/api/v1/handlers"
	"github.com/filedepot/backend/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	store := database.NewStore(db)
	folderHandler := &handlers.FolderHandler{Store: store}
	fileHandler := &handlers.FileHandler{Store: store}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", handlers.HomeHandler)
	r.Get("/health", handlers.HealthHandler)

	r.Get("/files", fileHandler.GetFiles)

	r.Route("/folders", func(r chi.Router) {
		r.Get("/", folderHandler.GetFolders)
		r.Get("/{id}", folderHandler.GetFolder)
		r.Post("/{id}/files", fileHandler.CreateFile)
	})

	log.Printf("Starting server on port %s", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	if err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
