package metrics

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthServer serves /health and /metrics on the configured port.
type HealthServer struct {
	mu        sync.RWMutex
	port      int
	startTime time.Time
	lastBlock int64
	lastError string
	server    *http.Server
}

// HealthResponse is the JSON response for /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	LastBlock int64  `json:"last_block"`
	LastError string `json:"last_error,omitempty"`
}

// NewHealthServer creates a health server listening on port.
func NewHealthServer(port int) *HealthServer {
	return &HealthServer{
		port:      port,
		startTime: time.Now(),
	}
}

// Start serves the endpoints in a background goroutine.
func (hs *HealthServer) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", hs.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	hs.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", hs.port),
		Handler: mux,
	}

	go func() {
		if err := hs.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Health server error: %v\n", err)
		}
	}()
}

// Stop closes the listener.
func (hs *HealthServer) Stop() error {
	if hs.server != nil {
		return hs.server.Close()
	}
	return nil
}

// RecordBlock notes the most recently applied block number.
func (hs *HealthServer) RecordBlock(blockNum int64) {
	hs.mu.Lock()
	hs.lastBlock = blockNum
	hs.mu.Unlock()
}

// RecordError notes the most recent fatal error.
func (hs *HealthServer) RecordError(err error) {
	hs.mu.Lock()
	hs.lastError = err.Error()
	hs.mu.Unlock()
}

func (hs *HealthServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	hs.mu.RLock()
	resp := HealthResponse{
		Status:    "healthy",
		Uptime:    time.Since(hs.startTime).String(),
		LastBlock: hs.lastBlock,
		LastError: hs.lastError,
	}
	if hs.lastError != "" {
		resp.Status = "degraded"
	}
	hs.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
