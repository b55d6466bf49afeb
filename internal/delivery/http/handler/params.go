package handler

import (
	"strconv"
	"strings"

	"github.com/Barshamagar123/skill-matcher/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func currentUserID(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil, nil)
	}
	return id.UserID, nil
}

func viewerID(c fiber.Ctx) *uuid.UUID {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		return nil
	}
	return &id.UserID
}

func pathUUID(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, nil, err)
	}
	return id, nil
}

func queryInt(c fiber.Ctx, key string, def int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, key+" must be an integer", nil, err)
	}
	return v, nil
}

func queryIntPtr(c fiber.Ctx, key string) (*int, error) {
	if strings.TrimSpace(c.Query(key)) == "" {
		return nil, nil
	}
	v, err := queryInt(c, key, 0)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
