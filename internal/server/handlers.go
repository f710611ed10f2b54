package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/matchpoint/matchpoint/internal/export"
	"github.com/matchpoint/matchpoint/internal/ingestion"
	"github.com/matchpoint/matchpoint/internal/matchsvc"
)

// IngestResponse represents the response for /api/v1/ingest
type IngestResponse struct {
	Message       string `json:"message"`
	FilesIngested int    `json:"files_ingested"`
}

// ExportRequest represents the request body for /api/v1/export
type ExportRequest struct {
	Name     string   `json:"name"`
	Role     string   `json:"role,omitempty"`
	Evidence []string `json:"evidence"`
}

// handleIngest scans the resume directory and upserts every candidate.
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	count, err := ingestion.IngestDir(r.Context(), s.dataDir, s.store)
	if err != nil {
		log.Printf("Ingestion failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Ingestion failed. Check server logs for details.")
		return
	}

	s.jsonResponse(w, http.StatusOK, IngestResponse{
		Message:       "Ingestion complete.",
		FilesIngested: count,
	})
}

// handleSearch delegates ranking to the matcher and passes its response
// through unchanged.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req matchsvc.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid search request: "+err.Error())
		return
	}

	resp, err := s.matcher.Search(r.Context(), &req)
	if err != nil {
		log.Printf("Search failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "Candidate search failed. Check server logs for details.")
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleResume returns the stored raw resume content for one candidate.
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Candidate name is required")
		return
	}

	candidate, err := s.store.CandidateByName(r.Context(), name)
	if err != nil {
		log.Printf("Resume lookup failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, matchsvc.Resume{
		Name:    candidate.Name,
		Content: candidate.Content,
	})
}

// handleExport builds the highlighted document for one candidate and streams
// it back as a file download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	requestID := uuid.New().String()
	log.Printf("Export %s: candidate=%q evidence=%d", requestID, req.Name, len(req.Evidence))

	candidate, err := s.store.CandidateByName(r.Context(), req.Name)
	if err != nil {
		log.Printf("Export %s: lookup failed: %v", requestID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "not found")
		return
	}

	role := req.Role
	if role == "" {
		role = candidate.Role
	}

	artifact := export.Build(candidate.Name, role, candidate.Content, req.Evidence)

	w.Header().Set("Content-Type", artifact.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact.Data); err != nil {
		log.Printf("Export %s: write failed: %v", requestID, err)
	}
}
