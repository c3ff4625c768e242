package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skillpath/api/http/middleware"
	"github.com/artem13815/skillpath/api/http/presenter"
	"github.com/artem13815/skillpath/pkg/logging"
	"github.com/artem13815/skillpath/pkg/recommendation"
)

const (
	msgSkillRequired = "Skill is required."
	msgAIError       = "AI error"
)

// RecommendationHandler serves POST /recommendation.
type RecommendationHandler struct {
	uc  recommendation.UseCase
	log logging.Logger
}

// NewRecommendationHandler returns a handler backed by the given use case.
func NewRecommendationHandler(uc recommendation.UseCase, log logging.Logger) *RecommendationHandler {
	return &RecommendationHandler{uc: uc, log: log}
}

type recommendationRequest struct {
	Skill string `json:"skill"`
}

// Recommend records the skill and returns AI-generated career suggestions.
// @Summary Career suggestions for a skill
// @Tags    recommendation
// @Accept  json
// @Produce json
// @Param   input body recommendationRequest true "skill"
// @Success 200 {object} presenter.RecommendationResponse
// @Failure 400 {object} presenter.RecommendationResponse
// @Failure 500 {object} presenter.RecommendationResponse
// @Router  /recommendation [post]
func (h *RecommendationHandler) Recommend(c *fiber.Ctx) error {
	var req recommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Recommendation(c, http.StatusBadRequest, msgSkillRequired)
	}

	text, err := h.uc.Recommend(c.Context(), req.Skill)
	if err != nil {
		if errors.Is(err, recommendation.ErrValidation) {
			return presenter.Recommendation(c, http.StatusBadRequest, msgSkillRequired)
		}
		h.log.Error(c.Context(), "recommendation failed", "request_id", middleware.RequestIDFrom(c), "error", err)
		return presenter.Recommendation(c, http.StatusInternalServerError, msgAIError)
	}
	return presenter.Recommendation(c, http.StatusOK, text)
}
