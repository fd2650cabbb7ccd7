package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"foundation_api/dto"
	"foundation_api/internal/apperr"
	"foundation_api/internal/repository"
	"foundation_api/internal/respond"
	"foundation_api/internal/validation"
	"foundation_api/model"
	"foundation_api/services"
)

type ProjectHandler struct {
	projects *repository.ProjectRepository
}

func NewProjectHandler(projects *repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// ListPublic godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        page        query int    false "Page (>=1)"
// @Param        limit       query int    false "Page size (max 50)"
// @Param        status      query string false "ongoing|completed|upcoming"
// @Param        highlighted query bool   false "Highlighted only"
// @Success      200 {object} respond.Envelope{data=dto.ProjectList}
// @Failure      400 {object} respond.Envelope
// @Router       /projects [get]
func (h *ProjectHandler) ListPublic(c *fiber.Ctx) error {
	page := queryPage(c)
	limit := queryLimit(c, 10, 50)

	filter := repository.ProjectFilter{Highlighted: queryBool(c, "highlighted")}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.IsValidProjectStatus(status) {
			return apperr.BadRequest("Invalid status query parameter.")
		}
		filter.Status = status
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	items, total, err := h.projects.List(ctx, filter, page, limit)
	if err != nil {
		return err
	}

	return respond.Success(c, fiber.StatusOK, dto.ProjectList{
		Items:      items,
		Pagination: dto.NewPagination(total, page, limit),
	})
}

// GetBySlug godoc
// @Summary      Get a project by slug
// @Tags         projects
// @Produce      json
// @Param        slug path string true "Project slug"
// @Success      200 {object} respond.Envelope{data=model.Project}
// @Failure      404 {object} respond.Envelope
// @Router       /projects/{slug} [get]
func (h *ProjectHandler) GetBySlug(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	project, err := h.projects.FindBySlug(ctx, c.Params("slug"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Project not found.")
		}
		return err
	}

	return respond.Success(c, fiber.StatusOK, project)
}

// ListAdmin godoc
// @Summary      List projects for the admin area
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        page   query int    false "Page (>=1)"
// @Param        limit  query int    false "Page size (max 100)"
// @Param        status query string false "Filter by status"
// @Param        search query string false "Substring match on title"
// @Success      200 {object} respond.Envelope{data=dto.ProjectList}
// @Failure      401 {object} respond.Envelope
// @Router       /admin/projects [get]
func (h *ProjectHandler) ListAdmin(c *fiber.Ctx) error {
	page := queryPage(c)
	limit := queryLimit(c, 50, 100)

	filter := repository.ProjectFilter{
		Status: strings.TrimSpace(c.Query("status")),
		Search: strings.TrimSpace(c.Query("search")),
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	items, total, err := h.projects.List(ctx, filter, page, limit)
	if err != nil {
		return err
	}

	return respond.Success(c, fiber.StatusOK, dto.ProjectList{
		Items:      items,
		Pagination: dto.NewPagination(total, page, limit),
	})
}

// Create godoc
// @Summary      Create a project
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        data body dto.ProjectInput true "Project payload"
// @Success      201 {object} respond.Envelope{data=model.Project}
// @Failure      400 {object} respond.Envelope
// @Failure      409 {object} respond.Envelope
// @Router       /admin/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.ProjectInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	services.NormalizeProjectInput(&in, false)
	if v := validation.ValidateProjectInput(in); !v.IsValid {
		return apperr.Validation(v.Details)
	}

	project := services.NewProject(in, time.Now().UTC())

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	if err := h.projects.Insert(ctx, &project); err != nil {
		return err
	}

	return respond.Success(c, fiber.StatusCreated, project)
}

// Update godoc
// @Summary      Update a project (partial)
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string           true "Project id (hex)"
// @Param        data body dto.ProjectInput true "Fields to change"
// @Success      200 {object} respond.Envelope{data=model.Project}
// @Failure      400 {object} respond.Envelope
// @Failure      404 {object} respond.Envelope
// @Failure      409 {object} respond.Envelope
// @Router       /admin/projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return apperr.BadRequest("Invalid project id.")
	}

	var in dto.ProjectInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	services.NormalizeProjectInput(&in, true)
	if v := validation.ValidateProjectInput(in); !v.IsValid {
		return apperr.Validation(v.Details)
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	project, err := h.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Project not found.")
		}
		return err
	}

	services.ApplyProjectUpdate(project, in, time.Now().UTC())

	if err := h.projects.Replace(ctx, project); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Project not found.")
		}
		return err
	}

	return respond.Success(c, fiber.StatusOK, project)
}

// Delete godoc
// @Summary      Delete a project
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Project id (hex)"
// @Success      200 {object} respond.Envelope
// @Failure      400 {object} respond.Envelope
// @Failure      404 {object} respond.Envelope
// @Router       /admin/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return apperr.BadRequest("Invalid project id.")
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	if err := h.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Project not found.")
		}
		return err
	}

	return respond.Success(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
