package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"gopkg.in/natefinch/lumberjack.v2"

	"lismoretv/api"
	"lismoretv/config"
	"lismoretv/handlers"
	"lismoretv/services/guide"
	"lismoretv/services/relay"
)

func main() {
	portOverride := flag.Int("port", 0, "override server port from config")
	flag.Parse()

	fmt.Println("📺 Lismore Smart TV Server Starting...")

	// Determine config path (env or default)
	configPath := os.Getenv("LISMORETV_CONFIG")
	if configPath == "" {
		configPath = filepath.Join("cache", "settings.json")
	}

	cfgManager := config.NewManager(configPath)
	settings, err := cfgManager.Load()
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	// Set up file logging with rotation
	if settings.Log.File != "" {
		logDir := filepath.Dir(settings.Log.File)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			log.Printf("Warning: could not create log directory %s: %v", logDir, err)
		} else {
			fileWriter := &lumberjack.Logger{
				Filename:   settings.Log.File,
				MaxSize:    settings.Log.MaxSize,
				MaxBackups: settings.Log.MaxBackups,
				MaxAge:     settings.Log.MaxAge,
				Compress:   settings.Log.Compress,
			}
			multiWriter := io.MultiWriter(os.Stdout, fileWriter)
			log.SetOutput(multiWriter)
			log.SetFlags(log.LstdFlags | log.Lshortfile)
			log.Printf("Logging to file: %s", settings.Log.File)
		}
	}

	if *portOverride > 0 {
		settings.Server.Port = *portOverride
	}

	guideService, err := guide.NewService(settings.Guide)
	if err != nil {
		log.Fatalf("failed to initialise guide service: %v", err)
	}
	relayService := relay.NewService(config.RelayUpstreams(), time.Duration(settings.Relay.TimeoutSec)*time.Second)

	guideHandler := handlers.NewGuideHandler(guideService)
	channelsHandler := handlers.NewChannelsHandler(config.Channels())
	streamHandler := handlers.NewStreamHandler(relayService)
	healthHandler := handlers.NewHealthHandler(guideService)
	statusHandler := handlers.NewStatusHandler(settings.UI.StaticDir)

	r := mux.NewRouter()
	handler := api.Register(r, guideHandler, channelsHandler, streamHandler, healthHandler, statusHandler, settings.UI.StaticDir)

	// Warm the guide cache so the first viewer doesn't wait on the mirrors
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		programs := guideService.Programs(ctx)
		log.Printf("[main] guide preloaded: %d channels", len(programs))
	}()

	addr := fmt.Sprintf("%s:%d", settings.Server.Host, settings.Server.Port)
	fmt.Printf("🚀 Server starting on %s\n", addr)
	fmt.Println("📺 Ready for connections...")

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // No write timeout for streaming
		IdleTimeout:  120 * time.Second,
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("🛑 Shutdown signal received, cleaning up...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}
