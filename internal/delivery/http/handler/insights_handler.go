package handler

import (
	"github.com/Barshamagar123/skill-matcher/internal/delivery/http/dto"
	"github.com/Barshamagar123/skill-matcher/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type InsightsHandler struct {
	uc InsightsService
}

func NewInsightsHandler(uc InsightsService) *InsightsHandler {
	return &InsightsHandler{uc: uc}
}

func (h *InsightsHandler) Categories(c fiber.Ctx) error {
	cats, err := h.uc.Categories(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job categories retrieved successfully", fiber.Map{"categories": dto.NewCategoriesResponse(cats)})
}

func (h *InsightsHandler) Dashboard(c fiber.Ctx) error {
	employerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	d, err := h.uc.EmployerDashboard(c.Context(), employerID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Dashboard stats retrieved successfully", fiber.Map{"stats": dto.NewDashboardResponse(d)})
}
