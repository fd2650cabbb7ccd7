package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"foundation_api/internal/handlers"
	"foundation_api/internal/middleware"
	"foundation_api/internal/repository"
)

// Deps carries everything route handlers need. The database handle is passed
// in explicitly; nothing reads it from a package-level slot.
type Deps struct {
	DB        *mongo.Database
	JWTSecret string
	JWTTTL    time.Duration
}

// Register mounts every endpoint under /api.
func Register(app *fiber.App, deps Deps) {
	posts := handlers.NewPostHandler(repository.NewPostRepository(deps.DB))
	projects := handlers.NewProjectHandler(repository.NewProjectRepository(deps.DB))
	settings := handlers.NewSettingsHandler(repository.NewSettingsRepository(deps.DB))
	contact := handlers.NewContactHandler(repository.NewContactRepository(deps.DB))
	auth := handlers.NewAuthHandler(repository.NewAdminUserRepository(deps.DB), deps.JWTSecret, deps.JWTTTL)

	api := app.Group("/api")

	api.Get("/health", handlers.Health)

	api.Get("/posts", posts.ListPublic)
	api.Get("/posts/:slug", posts.GetBySlug)
	api.Get("/events/upcoming", posts.UpcomingEvents)
	api.Get("/projects", projects.ListPublic)
	api.Get("/projects/:slug", projects.GetBySlug)
	api.Get("/settings", settings.GetPublic)
	api.Post("/contact", middleware.ContactRateLimiter(), contact.Submit)

	api.Post("/auth/login", middleware.LoginRateLimiter(), auth.Login)

	admin := api.Group("/admin", middleware.RequireAdmin(deps.JWTSecret))
	admin.Get("/posts", posts.ListAdmin)
	admin.Post("/posts", posts.Create)
	admin.Put("/posts/:id", posts.Update)
	admin.Delete("/posts/:id", posts.Delete)
	admin.Get("/projects", projects.ListAdmin)
	admin.Post("/projects", projects.Create)
	admin.Put("/projects/:id", projects.Update)
	admin.Delete("/projects/:id", projects.Delete)
	admin.Get("/settings", settings.GetAdmin)
	admin.Put("/settings", settings.Update)
}
