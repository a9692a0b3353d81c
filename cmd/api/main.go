package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rachitsingh/baatein/backend/internal/auth"
	"github.com/rachitsingh/baatein/backend/internal/config"
	"github.com/rachitsingh/baatein/backend/internal/handler"
	"github.com/rachitsingh/baatein/backend/internal/model/persona"
	chatservice "github.com/rachitsingh/baatein/backend/internal/service/chat"
	"github.com/rachitsingh/baatein/backend/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	personaStore := persona.NewMemoryStore(persona.Seed())

	profiles, transcripts := buildStores(ctx, cfg)

	verifier := buildVerifier(cfg.Auth)
	tokens := auth.NewSessionTokens(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	authSvc := auth.NewService(verifier, tokens, profiles)

	var chatSvc *chatservice.Service
	if cfg.AI.Enabled() {
		generator, err := cfg.AI.NewClient()
		if err != nil {
			log.Fatalf("failed to initialize completion client: %v", err)
		}
		chatSvc = chatservice.NewService(personaStore, generator, transcripts)
		log.Println("completion client initialized")
	} else {
		log.Println("GEMINI_API_KEY not configured, chat endpoints will answer 503")
	}

	router := handler.NewRouter(personaStore, profiles, authSvc, tokens, chatSvc)

	startServer(ctx, cfg.Server, router)
}

// buildStores selects Postgres/Redis when configured and falls back to
// the in-memory store otherwise.
func buildStores(ctx context.Context, cfg *config.Config) (store.ProfileStore, store.TranscriptStore) {
	memory := store.NewMemoryStore()

	var profiles store.ProfileStore = memory
	if cfg.DB.DSN != "" {
		gormStore, err := store.NewGormStore(cfg.DB.DSN)
		if err != nil {
			log.Fatalf("failed to open profile database: %v", err)
		}
		profiles = gormStore
		log.Println("profile store backed by postgres")
	} else {
		log.Println("POSTGRES_DSN not configured, profiles kept in memory")
	}

	var transcripts store.TranscriptStore = memory
	if cfg.Redis.Addr != "" {
		redisStore := store.NewRedisTranscriptStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.TranscriptTTL)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := redisStore.Ping(pingCtx); err != nil {
			log.Fatalf("failed to reach redis at %s: %v", cfg.Redis.Addr, err)
		}
		transcripts = redisStore
		log.Println("transcript store backed by redis")
	} else {
		log.Println("REDIS_ADDR not configured, transcripts kept in memory")
	}

	return profiles, transcripts
}

func buildVerifier(cfg config.AuthConfig) auth.IdentityVerifier {
	if cfg.GoogleClientID != "" {
		verifier, err := auth.NewGoogleVerifier(cfg.GoogleClientID)
		if err != nil {
			log.Fatalf("failed to initialize google verifier: %v", err)
		}
		return verifier
	}
	log.Println("GOOGLE_CLIENT_ID not configured, using insecure dev sign-in")
	return auth.InsecureEmailVerifier{}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Baatein backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
