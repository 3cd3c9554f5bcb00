package handler

import (
	"github.com/gofiber/fiber/v2"

	"gedapi/internal/service"
)

// Services bundles the application services the HTTP surface exposes.
type Services struct {
	Documents  service.DocumentService
	Users      service.UserService
	History    service.HistoryService
	Categories service.CategoryService
	Stats      service.StatsService
}

// HealthCheck reports readiness along with the store counts.
func HealthCheck(svcs Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		docs, err := svcs.Documents.List(ctx, "", "", "")
		if err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		users, err := svcs.Users.List(ctx)
		if err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		entries, err := svcs.History.List(ctx)
		if err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"documents": len(docs),
			"users":     len(users),
			"history":   len(entries),
		})
	}
}

// LivenessProbe is a bare liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListHistory returns the activity log, most recent first.
func ListHistory(svc service.HistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"items": entries, "total": len(entries)})
	}
}

// ListCategories returns the static classification tree.
func ListCategories(svc service.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		nodes, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"items": nodes})
	}
}

// GetStats returns the dashboard overview.
func GetStats(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Overview(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stats)
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, svcs Services) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(svcs))
	app.Get("/healthz", LivenessProbe())

	// Static segments must precede /documents/:id.
	app.Get("/documents/subcategories", ListSubcategories(svcs.Documents))
	app.Post("/documents/suggest", SuggestMetadata(svcs.Documents))
	app.Get("/documents", ListDocuments(svcs.Documents))
	app.Post("/documents", UploadDocument(svcs.Documents))
	app.Get("/documents/:id", GetDocument(svcs.Documents))
	app.Delete("/documents/:id", DeleteDocument(svcs.Documents))
	app.Get("/documents/:id/download", DownloadDocument(svcs.Documents))

	app.Get("/search", SearchDocuments(svcs.Documents))
	app.Get("/search/facets", SearchFacets(svcs.Documents))
	app.Post("/search/smart", SmartSearch(svcs.Documents))

	app.Get("/users/current", CurrentUser(svcs.Users))
	app.Put("/users/current", SetCurrentUser(svcs.Users))
	app.Get("/users", ListUsers(svcs.Users))
	app.Post("/users", AddUser(svcs.Users))
	app.Delete("/users/:id", RemoveUser(svcs.Users))

	app.Get("/history", ListHistory(svcs.History))
	app.Get("/categories", ListCategories(svcs.Categories))
	app.Get("/stats", GetStats(svcs.Stats))
}
