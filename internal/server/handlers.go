package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/drmixer/seogenix-schema/internal/pipeline"
	"github.com/drmixer/seogenix-schema/internal/types"
)

// handleGenerate runs one synthesis invocation. Only malformed requests
// produce a non-2xx response; every downstream failure degrades to a
// best-effort successful result.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result, err := s.runner.Run(r.Context(), req)
	if err != nil {
		var inputErr *pipeline.InputError
		if errors.As(err, &inputErr) {
			s.errorResponse(w, http.StatusBadRequest, inputErr.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "generation failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleListRuns returns the recorded run history for a project. It is a
// dashboard query, separate from the pipeline, and requires the Postgres
// recorder to be configured.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusNotFound, "run history requires a configured database")
		return
	}

	projectID := r.PathValue("project_id")
	if projectID == "" {
		s.errorResponse(w, http.StatusBadRequest, "project_id is required")
		return
	}

	runs, err := s.store.List(r.Context(), projectID, 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list runs: "+err.Error())
		return
	}
	if runs == nil {
		runs = []types.ToolRun{}
	}

	s.jsonResponse(w, http.StatusOK, runs)
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// validationMessage flattens validator findings into one caller-facing
// message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		switch first.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", first.Field())
		case "oneof":
			return fmt.Sprintf("%s must be one of: %s", first.Field(), first.Param())
		case "url":
			return fmt.Sprintf("%s must be a valid URL", first.Field())
		default:
			return fmt.Sprintf("%s is invalid", first.Field())
		}
	}
	return "invalid request"
}
