package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/talentsift/talentsift/core"
)

type recommendRequest struct {
	Query string `json:"query"`
}

type recommendResponse struct {
	RecommendedAssessments []core.Recommendation `json:"recommended_assessments"`
}

type healthResponse struct {
	Status      string `json:"status"`
	Assessments int    `json:"assessments,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	engine := s.engine.Load()
	if engine == nil {
		s.writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "loading"})
		return
	}
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ready", Assessments: engine.Size()})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	engine := s.engine.Load()
	if engine == nil {
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "engine is still loading"})
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request body must be JSON with a query field"})
		return
	}

	recommendations, err := engine.Recommend(r.Context(), req.Query)
	if err != nil {
		if errors.Is(err, core.ErrEmptyQuery) {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query must not be empty"})
			return
		}
		s.logger.Error("recommendation failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "recommendation failed"})
		return
	}

	s.writeJSON(w, http.StatusOK, recommendResponse{RecommendedAssessments: recommendations})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}
