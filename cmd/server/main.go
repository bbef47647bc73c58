/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the leave calculation server: configuration,
  storage, optional holiday-feed import, HTTP router, and graceful
  shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load YAML configuration (flags override the essentials)
  3. Open the SQLite store
  4. Import configured holiday feeds (additive, idempotent)
  5. Start the HTTP server

COMMAND-LINE FLAGS:
  -config  YAML configuration path (optional; defaults apply without it)
  -port    HTTP server port (overrides config listen address)
  -db      SQLite database path; use ":memory:" for in-memory

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM the server stops accepting connections, waits up to
  30s for in-flight requests, then closes the database.

SEE ALSO:
  - config/config.go: Configuration model
  - api/server.go: Router configuration
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/leave-engine/api"
	"github.com/warp/leave-engine/calendar"
	"github.com/warp/leave-engine/config"
	"github.com/warp/leave-engine/factory"
	"github.com/warp/leave-engine/store/sqlite"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration path")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Listen = fmt.Sprintf(":%d", *port)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	if err := importFeeds(context.Background(), store, cfg.HolidayFeeds); err != nil {
		log.Fatalf("Failed to import holiday feeds: %v", err)
	}

	handler := api.NewHandler(store)
	router := api.NewRouter(handler, cfg.CORSOrigins)

	server := &http.Server{
		Addr:         cfg.Listen,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.Listen)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// importFeeds loads each configured feed file into the holiday table.
// The store upserts on date+name, so restarting with the same feeds
// does not duplicate records.
func importFeeds(ctx context.Context, store *sqlite.Store, feeds []config.FeedConfig) error {
	for _, feed := range feeds {
		payload, err := os.ReadFile(feed.Path)
		if err != nil {
			return fmt.Errorf("read feed %s: %w", feed.Path, err)
		}

		var holidays []calendar.Holiday
		switch feed.Format {
		case "ics":
			holidays, err = factory.ParseICSFeed(payload)
		default:
			holidays, err = factory.ParseJSONFeed(payload)
		}
		if err != nil {
			return fmt.Errorf("parse feed %s: %w", feed.Path, err)
		}

		if err := store.SaveHolidays(ctx, holidays); err != nil {
			return fmt.Errorf("save feed %s: %w", feed.Path, err)
		}
		log.Printf("Imported %d holidays from %s", len(holidays), feed.Path)
	}
	return nil
}
