package handler

import (
	"strings"

	"github.com/Barshamagar123/skill-matcher/internal/delivery/http/dto"
	"github.com/Barshamagar123/skill-matcher/internal/pkg/response"
	"github.com/Barshamagar123/skill-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc JobService
}

func NewJobHandler(uc JobService) *JobHandler {
	return &JobHandler{uc: uc}
}

// List accepts search, jobType, location, experience, minSalary, maxSalary,
// sortBy, sortOrder, page and limit.
func (h *JobHandler) List(c fiber.Ctx) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}
	minSalary, err := queryIntPtr(c, "minSalary")
	if err != nil {
		return err
	}
	maxSalary, err := queryIntPtr(c, "maxSalary")
	if err != nil {
		return err
	}

	res, err := h.uc.List(c.Context(), usecase.JobListParams{
		Search:     strings.TrimSpace(c.Query("search")),
		JobType:    strings.TrimSpace(c.Query("jobType")),
		Location:   strings.TrimSpace(c.Query("location")),
		Experience: strings.TrimSpace(c.Query("experience")),
		MinSalary:  minSalary,
		MaxSalary:  maxSalary,
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Jobs retrieved successfully", dto.NewJobListResponse(res))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	d, err := h.uc.Get(c.Context(), id, viewerID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job retrieved successfully", fiber.Map{"job": dto.NewJobDetailResponse(d)})
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	employerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateJobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	j, err := h.uc.Create(c.Context(), employerID, req.ToInput())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Job created successfully", fiber.Map{"job": dto.NewJobResponse(j)})
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	employerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateJobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	j, err := h.uc.Update(c.Context(), employerID, id, req.ToDomain())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job updated successfully", fiber.Map{"job": dto.NewJobResponse(j)})
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	employerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), employerID, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job deleted successfully", nil)
}

func (h *JobHandler) ListMine(c fiber.Ctx) error {
	employerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	jobs, err := h.uc.ListMine(c.Context(), employerID, c.Query("status"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Employer jobs retrieved successfully", fiber.Map{"jobs": dto.NewJobResponses(jobs)})
}
