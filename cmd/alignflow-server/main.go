// Command alignflow-server provides a REST API for AlignFlow
// operations.
//
// Usage:
//
//	alignflow-server [options]
//
// Options:
//
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
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

	"github.com/alignflow/alignflow-go/api/handlers"
	"github.com/alignflow/alignflow-go/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	flag.Parse()

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/sequence", func(r chi.Router) {
			r.Post("/validate", handlers.ValidateHandler)
			r.Post("/info", handlers.SequenceInfoHandler)
			r.Post("/generate", handlers.GenerateHandler)
		})

		r.Route("/alignment", func(r chi.Router) {
			r.Post("/global", handlers.GlobalAlignHandler)
			r.Post("/score", handlers.AlignmentScoreHandler)
			r.Post("/stats", handlers.AlignmentStatsHandler)
		})
	})

	// Home page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>AlignFlow API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>AlignFlow API</h1>
    <p>A REST API for global sequence alignment.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/alignment/global</code>
        <p>Perform global alignment (Needleman-Wunsch). Scoring fields are optional.</p>
        <pre>{"sequence1": "GATTACA", "sequence2": "GCATGCT", "match": 1, "mismatch": -1, "gap": -2}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/alignment/score</code>
        <p>Compute the alignment score only.</p>
        <pre>{"sequence1": "ATGCATGC", "sequence2": "ATGCGGGG"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/alignment/stats</code>
        <p>Compute statistics for an already aligned pair.</p>
        <pre>{"aligned_seq1": "AT-GC", "aligned_seq2": "ATGGC"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/sequence/generate</code>
        <p>Generate a random DNA sequence. Seed is optional.</p>
        <pre>{"length": 50, "seed": 42}</pre>
    </div>
</body>
</html>`))
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("AlignFlow API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
