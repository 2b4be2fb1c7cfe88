package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/alignflow/alignflow-go/pkg/alignflow"
)

// SequenceRequest represents a request with a sequence.
type SequenceRequest struct {
	Sequence string `json:"sequence"`
}

// ValidateResponse represents the response for sequence validation.
type ValidateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidateHandler handles sequence validation requests.
func ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	resp := ValidateResponse{Valid: true}
	if _, err := alignflow.NewSequence(req.Sequence); err != nil {
		resp.Valid = false
		resp.Error = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// SequenceInfoResponse represents the response for sequence info.
type SequenceInfoResponse struct {
	Length    int     `json:"length"`
	GCContent float64 `json:"gc_content"`
	ACount    int     `json:"a_count"`
	CCount    int     `json:"c_count"`
	GCount    int     `json:"g_count"`
	TCount    int     `json:"t_count"`
	NCount    int     `json:"n_count"`
}

// SequenceInfoHandler handles sequence info requests.
func SequenceInfoHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq, err := alignflow.NewSequence(req.Sequence)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	counts := seq.BaseCounts()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SequenceInfoResponse{
		Length:    seq.Len(),
		GCContent: seq.GCContent(),
		ACount:    counts.A,
		CCount:    counts.C,
		GCount:    counts.G,
		TCount:    counts.T,
		NCount:    counts.N,
	})
}

// GenerateRequest represents a random sequence generation request.
// Seed is optional; absent, the generator is seeded from the clock.
type GenerateRequest struct {
	Length int    `json:"length"`
	Seed   *int64 `json:"seed,omitempty"`
}

// GenerateResponse represents the response for sequence generation.
type GenerateResponse struct {
	Sequence string `json:"sequence"`
	Length   int    `json:"length"`
}

// GenerateHandler handles random sequence generation requests.
func GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	if req.Length < 0 {
		http.Error(w, `{"error": "length must be non-negative"}`, http.StatusBadRequest)
		return
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	seq := alignflow.RandomSequence(rand.New(rand.NewSource(seed)), req.Length)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GenerateResponse{
		Sequence: seq.Bases,
		Length:   seq.Len(),
	})
}
