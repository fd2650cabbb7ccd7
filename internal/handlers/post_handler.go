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

const mongoTimeout = 5 * time.Second

type PostHandler struct {
	posts *repository.PostRepository
}

func NewPostHandler(posts *repository.PostRepository) *PostHandler {
	return &PostHandler{posts: posts}
}

// ListPublic godoc
// @Summary      List published posts
// @Tags         posts
// @Produce      json
// @Param        page     query int    false "Page (>=1)"
// @Param        limit    query int    false "Page size (max 50)"
// @Param        type     query string false "news|story|blog|press|event"
// @Param        featured query bool   false "Featured only"
// @Success      200 {object} respond.Envelope{data=dto.PostList}
// @Failure      400 {object} respond.Envelope
// @Router       /posts [get]
func (h *PostHandler) ListPublic(c *fiber.Ctx) error {
	page := queryPage(c)
	limit := queryLimit(c, 10, 50)

	published := true
	filter := repository.PostFilter{Published: &published, Featured: queryBool(c, "featured")}

	if postType := strings.TrimSpace(c.Query("type")); postType != "" {
		if !model.IsValidPostType(postType) {
			return apperr.BadRequest("Invalid type query parameter.")
		}
		filter.Type = postType
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	items, total, err := h.posts.List(ctx, filter, repository.SortPublic, page, limit)
	if err != nil {
		return err
	}

	return respond.Success(c, fiber.StatusOK, dto.PostList{
		Items:      items,
		Pagination: dto.NewPagination(total, page, limit),
	})
}

// GetBySlug godoc
// @Summary      Get a published post by slug
// @Tags         posts
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200 {object} respond.Envelope{data=model.Post}
// @Failure      404 {object} respond.Envelope
// @Router       /posts/{slug} [get]
func (h *PostHandler) GetBySlug(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	post, err := h.posts.FindPublishedBySlug(ctx, c.Params("slug"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Post not found.")
		}
		return err
	}

	return respond.Success(c, fiber.StatusOK, post)
}

// UpcomingEvents godoc
// @Summary      List upcoming published events
// @Tags         posts
// @Produce      json
// @Param        limit query int false "Max events (default 5, max 50)"
// @Success      200 {object} respond.Envelope{data=dto.EventList}
// @Router       /events/upcoming [get]
func (h *PostHandler) UpcomingEvents(c *fiber.Ctx) error {
	limit := queryLimit(c, 5, 50)

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	items, err := h.posts.UpcomingEvents(ctx, time.Now().UTC(), limit)
	if err != nil {
		return err
	}

	return respond.Success(c, fiber.StatusOK, dto.EventList{Items: items})
}

// ListAdmin godoc
// @Summary      List posts for the admin area
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        page      query int    false "Page (>=1)"
// @Param        limit     query int    false "Page size (max 100)"
// @Param        type      query string false "Filter by type"
// @Param        published query bool   false "Filter by published flag"
// @Param        search    query string false "Substring match on title/excerpt"
// @Success      200 {object} respond.Envelope{data=dto.PostList}
// @Failure      401 {object} respond.Envelope
// @Router       /admin/posts [get]
func (h *PostHandler) ListAdmin(c *fiber.Ctx) error {
	page := queryPage(c)
	limit := queryLimit(c, 10, 100)

	filter := repository.PostFilter{
		Type:      strings.TrimSpace(c.Query("type")),
		Published: queryBool(c, "published"),
		Search:    strings.TrimSpace(c.Query("search")),
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	items, total, err := h.posts.List(ctx, filter, repository.SortAdmin, page, limit)
	if err != nil {
		return err
	}

	return respond.Success(c, fiber.StatusOK, dto.PostList{
		Items:      items,
		Pagination: dto.NewPagination(total, page, limit),
	})
}

// Create godoc
// @Summary      Create a post
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        data body dto.PostInput true "Post payload"
// @Success      201 {object} respond.Envelope{data=model.Post}
// @Failure      400 {object} respond.Envelope
// @Failure      401 {object} respond.Envelope
// @Failure      409 {object} respond.Envelope
// @Router       /admin/posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var in dto.PostInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	services.NormalizePostInput(&in, false)
	if v := validation.ValidatePostInput(in, false); !v.IsValid {
		return apperr.Validation(v.Details)
	}

	post := services.NewPost(in, time.Now().UTC())

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	if err := h.posts.Insert(ctx, &post); err != nil {
		return err
	}

	return respond.Success(c, fiber.StatusCreated, post)
}

// Update godoc
// @Summary      Update a post (partial)
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string        true "Post id (hex)"
// @Param        data body dto.PostInput true "Fields to change"
// @Success      200 {object} respond.Envelope{data=model.Post}
// @Failure      400 {object} respond.Envelope
// @Failure      404 {object} respond.Envelope
// @Failure      409 {object} respond.Envelope
// @Router       /admin/posts/{id} [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return apperr.BadRequest("Invalid post id.")
	}

	var in dto.PostInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	services.NormalizePostInput(&in, true)
	if v := validation.ValidatePostInput(in, true); !v.IsValid {
		return apperr.Validation(v.Details)
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	post, err := h.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Post not found.")
		}
		return err
	}

	services.ApplyPostUpdate(post, in, time.Now().UTC())

	if err := h.posts.Replace(ctx, post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Post not found.")
		}
		return err
	}

	return respond.Success(c, fiber.StatusOK, post)
}

// Delete godoc
// @Summary      Delete a post
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Post id (hex)"
// @Success      200 {object} respond.Envelope
// @Failure      400 {object} respond.Envelope
// @Failure      404 {object} respond.Envelope
// @Router       /admin/posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return apperr.BadRequest("Invalid post id.")
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	if err := h.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Post not found.")
		}
		return err
	}

	return respond.Success(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
