//	@title			ShotDeck API
//	@version		1.0
//	@description	Movie catalogue with timestamped annotations and presigned image uploads.
//
//	@host		localhost:4000
//	@BasePath	/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/shotdeck/service/internal/annotation"
	"github.com/shotdeck/service/internal/config"
	"github.com/shotdeck/service/internal/db"
	appMiddleware "github.com/shotdeck/service/internal/middleware"
	"github.com/shotdeck/service/internal/movie"
	"github.com/shotdeck/service/internal/storage"
	"github.com/shotdeck/service/internal/uploads"

	_ "github.com/shotdeck/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	store, err := storage.NewMinioStorage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StorageRegion,
		cfg.CDNBaseURL,
		cfg.StorageUseSSL,
	)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	// Wire dependencies: repository → service → handler
	movieRepo := movie.NewRepository(pool)
	movieSvc := movie.NewService(movieRepo, store)
	movieHandler := movie.NewHandler(movieSvc)

	annotationRepo := annotation.NewRepository(pool)
	annotationSvc := annotation.NewService(annotationRepo, movieRepo, store)
	annotationHandler := annotation.NewHandler(annotationSvc)

	uploadsSvc := uploads.NewService(store)
	uploadsHandler := uploads.NewHandler(uploadsSvc)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at http://localhost:4000/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Post("/movies", movieHandler.Create)
	r.Get("/movies", movieHandler.List)
	r.Route("/movies/{movieID}", func(r chi.Router) {
		r.Get("/", movieHandler.Get)
		r.Put("/", movieHandler.Update)

		r.Route("/annotations", func(r chi.Router) {
			r.Post("/", annotationHandler.Create)
			r.Get("/", annotationHandler.List)
			r.Put("/{annotationID}", annotationHandler.Update)
			r.Delete("/{annotationID}", annotationHandler.Delete)
		})
	})

	r.Post("/uploads/presign", uploadsHandler.Presign)
	r.Get("/uploads/view-url", uploadsHandler.ViewURL)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
