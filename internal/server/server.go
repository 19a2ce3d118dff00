// Package server exposes the display decoder over HTTP and records solved
// puzzles to BigQuery.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"crosswarped.com/sevenseg"
)

type DecodeRequest struct {
	// Input is the raw puzzle text, one display per line.
	Input string `json:"input"`
	// Part selects which answer to compute: 1, 2, or 0 for both.
	Part int `json:"part"`
}

type DecodeResponse struct {
	Success     bool   `json:"success"`
	Lines       int    `json:"lines"`
	UniqueCount int    `json:"uniqueCount"`
	OutputSum   int    `json:"outputSum"`
	Error       string `json:"error,omitempty"`
}

type ResultsResponse struct {
	Success bool        `json:"success"`
	Results []ResultRow `json:"results"`
	Error   string      `json:"error,omitempty"`
}

// Server holds the HTTP handlers. The recorder may be nil, in which case
// solved puzzles are not persisted and the results endpoint is disabled.
type Server struct {
	recorder *Recorder
}

func New(recorder *Recorder) *Server {
	return &Server{recorder: recorder}
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("Error marshaling response: %v", err)
	}
}

// Decode solves the submitted puzzle text and returns both answers.
func (s *Server) Decode(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		writeJSON(w, http.StatusMethodNotAllowed, DecodeResponse{
			Error: fmt.Sprintf("Method %s not allowed", r.Method),
		})
		return
	}

	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fmt.Printf("Error parsing JSON body: %v", err)
		writeJSON(w, http.StatusBadRequest, DecodeResponse{
			Error: fmt.Sprintf("Invalid JSON: %v", err),
		})
		return
	}

	if req.Part < 0 || req.Part > 2 {
		writeJSON(w, http.StatusBadRequest, DecodeResponse{
			Error: fmt.Sprintf("part must be 0, 1 or 2, got %d", req.Part),
		})
		return
	}

	resp := DecodeResponse{Lines: countLines(req.Input)}

	if req.Part == 0 || req.Part == 1 {
		count, err := sevenseg.CountUniqueOutputs(strings.NewReader(req.Input))
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, DecodeResponse{Error: err.Error()})
			return
		}
		resp.UniqueCount = count
	}

	if req.Part == 0 || req.Part == 2 {
		sum, err := sevenseg.SumOutputs(strings.NewReader(req.Input))
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, DecodeResponse{Error: err.Error()})
			return
		}
		resp.OutputSum = sum
	}

	resp.Success = true

	// Result history is best effort: a failed insert never fails the decode.
	if s.recorder != nil {
		row := ResultRow{
			SolvedAt:    time.Now().UTC(),
			Lines:       resp.Lines,
			UniqueCount: resp.UniqueCount,
			OutputSum:   resp.OutputSum,
		}
		if err := s.recorder.Record(r.Context(), row); err != nil {
			fmt.Printf("Error recording result: %v\n", err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// Results returns recently solved puzzles from the result table.
func (s *Server) Results(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "GET" {
		writeJSON(w, http.StatusMethodNotAllowed, ResultsResponse{
			Error: fmt.Sprintf("Method %s not allowed", r.Method),
		})
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, ResultsResponse{
				Error: fmt.Sprintf("invalid limit %q", v),
			})
			return
		}
		limit = n
	}

	if s.recorder == nil {
		writeJSON(w, http.StatusServiceUnavailable, ResultsResponse{
			Error: "result history is not configured",
		})
		return
	}

	rows, err := s.recorder.Recent(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ResultsResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ResultsResponse{Success: true, Results: rows})
}

func countLines(input string) int {
	count := 0
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
