package handler

import (
	"github.com/Barshamagar123/skill-matcher/internal/delivery/http/dto"
	"github.com/Barshamagar123/skill-matcher/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc MatchingService
}

func NewMatchHandler(uc MatchingService) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) SearchJobs(c fiber.Ctx) error {
	var req dto.SkillSearchRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.uc.SearchJobs(c.Context(), req.Skills)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Jobs found successfully", fiber.Map{"jobs": dto.NewJobMatches(res)})
}

func (h *MatchHandler) Recommended(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	res, err := h.uc.Recommended(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	msg := "Recommended jobs retrieved successfully"
	if len(res) == 0 {
		msg = "No matching jobs found for your skills"
	}
	return response.Success(c, fiber.StatusOK, msg, fiber.Map{"jobs": dto.NewJobMatches(res)})
}

func (h *MatchHandler) SearchPeople(c fiber.Ctx) error {
	var req dto.SearchPeopleRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.uc.SearchPeople(c.Context(), req.Skills, req.Limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Users found successfully", fiber.Map{"users": dto.NewPersonMatches(res)})
}

func (h *MatchHandler) Apply(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	a, err := h.uc.Apply(c.Context(), jobID, userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Application submitted successfully", fiber.Map{"application": dto.NewApplicationResponse(a)})
}
