// Package handlers provides HTTP handlers for the AlignFlow API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/alignflow/alignflow-go/pkg/alignflow"
)

// AlignmentRequest represents an alignment request. The scoring fields
// are optional; absent fields fall back to the defaults
// (match +1, mismatch -1, gap -2).
type AlignmentRequest struct {
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
	Match     *int   `json:"match,omitempty"`
	Mismatch  *int   `json:"mismatch,omitempty"`
	Gap       *int   `json:"gap,omitempty"`
}

func (req *AlignmentRequest) scoring() alignflow.Scoring {
	sc := alignflow.DefaultScoring()
	if req.Match != nil {
		sc.Match = *req.Match
	}
	if req.Mismatch != nil {
		sc.Mismatch = *req.Mismatch
	}
	if req.Gap != nil {
		sc.Gap = *req.Gap
	}
	return sc
}

// StatsResponse represents alignment statistics in a response body.
type StatsResponse struct {
	Matches         int     `json:"matches"`
	Mismatches      int     `json:"mismatches"`
	Gaps            int     `json:"gaps"`
	MatchPercentage float64 `json:"match_percentage"`
	GapPercentage   float64 `json:"gap_percentage"`
}

func statsResponse(st alignflow.Statistics) StatsResponse {
	return StatsResponse{
		Matches:         st.Matches,
		Mismatches:      st.Mismatches,
		Gaps:            st.Gaps,
		MatchPercentage: st.MatchPercentage,
		GapPercentage:   st.GapPercentage,
	}
}

// AlignmentResponse represents the response for a global alignment.
type AlignmentResponse struct {
	AlignedSeq1   string        `json:"aligned_seq1"`
	AlignedSeq2   string        `json:"aligned_seq2"`
	Score         int           `json:"score"`
	TracebackPath [][2]int      `json:"traceback_path"`
	ScoringMatrix [][]int       `json:"scoring_matrix"`
	Statistics    StatsResponse `json:"statistics"`
}

// GlobalAlignHandler handles global alignment requests.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq1, err := alignflow.NewSequence(req.Sequence1)
	if err != nil {
		http.Error(w, `{"error": "sequence1: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	seq2, err := alignflow.NewSequence(req.Sequence2)
	if err != nil {
		http.Error(w, `{"error": "sequence2: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	res := alignflow.AlignWithScoring(seq1, seq2, req.scoring())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AlignmentResponse{
		AlignedSeq1:   res.AlignedSeq1,
		AlignedSeq2:   res.AlignedSeq2,
		Score:         res.Score,
		TracebackPath: res.Path,
		ScoringMatrix: res.Matrix.Grid(),
		Statistics:    statsResponse(res.Statistics()),
	})
}

// ScoreResponse represents the response for alignment score.
type ScoreResponse struct {
	Score int `json:"score"`
}

// AlignmentScoreHandler handles score-only requests. It uses the
// two-row variant, so no matrix or alignment is materialized.
func AlignmentScoreHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq1, err := alignflow.NewSequence(req.Sequence1)
	if err != nil {
		http.Error(w, `{"error": "sequence1: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	seq2, err := alignflow.NewSequence(req.Sequence2)
	if err != nil {
		http.Error(w, `{"error": "sequence2: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	score := alignflow.AlignScore(seq1, seq2, req.scoring())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScoreResponse{Score: score})
}

// AlignedPairRequest represents a statistics request over an already
// aligned pair of sequences.
type AlignedPairRequest struct {
	AlignedSeq1 string `json:"aligned_seq1"`
	AlignedSeq2 string `json:"aligned_seq2"`
}

// AlignmentStatsHandler computes statistics for a supplied aligned
// pair. The two sequences must have equal length; their content is not
// re-validated beyond that.
func AlignmentStatsHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignedPairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	if len(req.AlignedSeq1) != len(req.AlignedSeq2) {
		http.Error(w, `{"error": "aligned sequences must have equal length"}`, http.StatusBadRequest)
		return
	}

	st := alignflow.StatsFor(req.AlignedSeq1, req.AlignedSeq2)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(statsResponse(st))
}
