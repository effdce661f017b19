package api

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v3"

	"uniassist/internal/config"
	"uniassist/internal/db"
	"uniassist/internal/metrics"
	"uniassist/internal/models"
	"uniassist/internal/pipeline"
	"uniassist/internal/validation"
)

// ProcessHandler handles student query processing via JSON API.
type ProcessHandler struct {
	db   *db.DB
	pipe *pipeline.Pipeline
	cfg  *config.Config
}

// NewProcessHandler creates a new process handler.
func NewProcessHandler(database *db.DB, pipe *pipeline.Pipeline, cfg *config.Config) *ProcessHandler {
	return &ProcessHandler{db: database, pipe: pipe, cfg: cfg}
}

// processResponse is the payload returned for one processed query.
// QueryResponse and Subject are null when the pipeline found no match.
type processResponse struct {
	QueryResponse   *string                 `json:"query_response"`
	Subject         *string                 `json:"subject"`
	Literature      []models.Literature     `json:"literature"`
	Recommendations []models.Recommendation `json:"recommendations"`
}

// Process accepts a free-text student query, runs the interpretation
// pipeline and returns the advisory response, the classified subject,
// matching literature and the user's recent pushed recommendations.
func (h *ProcessHandler) Process(c fiber.Ctx) error {
	var body struct {
		UserID    string `json:"user_id"`
		InputText string `json:"input_text"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if !validation.ValidateUserID(body.UserID) {
		return jsonError(c, fiber.StatusBadRequest, "user_id is missing or invalid")
	}
	if valid, msg := validation.ValidateQueryText(body.InputText); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	result, err := h.pipe.Process(c.Context(), body.UserID, body.InputText)
	if err != nil {
		log.Printf("Failed to process query for user %s: %v", body.UserID, err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to process query")
	}

	metrics.RecordQueryOutcome(result.Subject, result.Outcome())

	recommendations, err := h.db.GetRecentRecommendations(c.Context(), body.UserID, h.cfg.RecentRecommendations)
	if err != nil {
		log.Printf("Failed to fetch recommendations for user %s: %v", body.UserID, err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch recommendations")
	}

	resp := processResponse{
		Literature:      result.Literature,
		Recommendations: recommendations,
	}
	if result.HasAdvice {
		resp.QueryResponse = &result.Advice
	}
	if result.HasSubject {
		resp.Subject = &result.Subject
	}
	if resp.Literature == nil {
		resp.Literature = []models.Literature{}
	}
	if resp.Recommendations == nil {
		resp.Recommendations = []models.Recommendation{}
	}

	return jsonSuccess(c, resp)
}
