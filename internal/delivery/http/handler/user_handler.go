package handler

import (
	"github.com/Barshamagar123/skill-matcher/internal/delivery/http/dto"
	"github.com/Barshamagar123/skill-matcher/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc UserService
}

func NewUserHandler(uc UserService) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	u, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile retrieved successfully", fiber.Map{"user": dto.NewUserResponse(u)})
}

func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	u, err := h.uc.UpdateProfile(c.Context(), userID, req.ToDomain())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated successfully", fiber.Map{"user": dto.NewUserResponse(u)})
}

func (h *UserHandler) DeleteMe(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Context(), userID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Account deleted successfully", nil)
}

func (h *UserHandler) GetSkills(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	skills, err := h.uc.GetSkills(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skills retrieved successfully", dto.SkillsResponse{Skills: skills})
}

func (h *UserHandler) UpdateSkills(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSkillsRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	skills, err := h.uc.UpdateSkills(c.Context(), userID, req.Skills)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skills updated successfully", dto.SkillsResponse{Skills: skills})
}

func (h *UserHandler) Stats(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	st, err := h.uc.Stats(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Stats retrieved successfully", fiber.Map{"stats": dto.NewStatsResponse(st)})
}
