package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/celarium/celarium/config"
	"github.com/celarium/celarium/pkg/anonymizer"
	"github.com/celarium/celarium/pkg/detect"
	"github.com/celarium/celarium/pkg/fake"
	"github.com/celarium/celarium/pkg/models"
	"github.com/celarium/celarium/pkg/server"
	"github.com/celarium/celarium/pkg/sessionstore"
)

const shutdownTimeout = 10 * time.Second

// run is the entrypoint for the celarium server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring Celarium: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting celarium server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	srv := server.Create(appState)
	setupSignalHandler(srv)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV and
// wires the anonymization pipeline and session store.
func NewAppState(cfg *config.Config) *models.AppState {
	if len(cfg.Auth.Keys) == 0 {
		log.Fatal("auth.keys must be set. Ensure CELARIUM_AUTH_KEYS is set in your environment.")
	}

	detector := detect.NewDetector(cfg)
	generator := fake.NewGenerator()

	if cfg.NLP.Enabled {
		log.Info("Entity model detection enabled: ", cfg.NLP.ServerURL)
	} else {
		log.Info("Entity model detection disabled, using rule matcher only")
	}

	return &models.AppState{
		Anonymizer:   anonymizer.New(detector, generator),
		SessionStore: sessionstore.New(cfg.Sessions.TTL),
		Config:       cfg,
	}
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(out))
		os.Exit(0)
	}
}

// setupSignalHandler shuts the HTTP server down gracefully on termination.
// Sessions are process-lifetime only and need no teardown.
func setupSignalHandler(srv *http.Server) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("Error shutting down server: %v", err)
		}
	}()
}
