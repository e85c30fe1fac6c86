package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	api "github.com/quizcraft/quizcraft/internal/api/http"
	"github.com/quizcraft/quizcraft/internal/config"
	"github.com/quizcraft/quizcraft/internal/db"
	"github.com/quizcraft/quizcraft/internal/loader"
	"github.com/quizcraft/quizcraft/internal/registry"
	"github.com/quizcraft/quizcraft/internal/results"
	"github.com/quizcraft/quizcraft/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		var err error
		cfg, err = config.LoadFile(path, cfg)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// --- Question sources ---
	reg := registry.New(cfg.QuestionDirs...)
	files := loader.NewFileSource(reg.Dir)
	sources := []loader.Source{files}
	if cfg.RemoteBase != "" {
		sources = append(sources, loader.NewHTTPSource(cfg.RemoteBase))
	}
	ldr := loader.New(reg, sources...)

	// --- Result store ---
	store, err := openResultStore(cfg)
	if err != nil {
		log.Fatalf("result store: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins(),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(ar chi.Router) {
		api.Mount(ar, api.Deps{
			Registry:  reg,
			Files:     files,
			Loader:    ldr,
			Sessions:  session.NewManager(),
			Results:   store,
			ChunkSize: cfg.ChunkSize,
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	// Static question-set files, tried by clients before the API fallback.
	api.MountStatic(r, files)

	log.Printf("listening on %s (mode=%s, questions=%s, results=%s)",
		cfg.HTTPAddr, cfg.Mode, reg.Dir(), cfg.ResultStore)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func openResultStore(cfg config.Config) (results.Store, error) {
	switch cfg.ResultStore {
	case config.StoreMemory:
		return results.NewMemoryStore(), nil
	case config.StoreFile:
		return results.NewFileStore(cfg.ResultDir)
	case config.StoreRedis:
		return results.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case config.StoreSQL:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		return results.NewSQLStore(dbh), nil
	}
	return results.NewMemoryStore(), nil
}
