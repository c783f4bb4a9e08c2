package routes

import (
	"time"

	"kesher-manager-backend/config"
	"kesher-manager-backend/controllers"
	"kesher-manager-backend/repositories"
	"kesher-manager-backend/services"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	loc := cfg.Location()

	// Repositories
	boxRepo := repositories.NewGormBoxRepository(db)
	transportRepo := repositories.NewGormTransportRepository(db)
	taskRepo := repositories.NewGormTaskRepository(db)

	// Services
	boxService := services.NewBoxService(boxRepo, transportRepo)
	transportService := services.NewTransportService(transportRepo, boxRepo, loc)
	taskService := services.NewTaskService(taskRepo, boxRepo, transportRepo, loc)
	importService := services.NewImportService(boxService)

	// Controllers
	boxController := controllers.NewBoxController(boxService)
	transportController := controllers.NewTransportController(transportService, loc)
	taskController := controllers.NewTaskController(taskService, loc)
	importController := controllers.NewImportController(importService)
	dateController := controllers.NewDateController(loc)

	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"Application": cfg.AppName,
			"Version":     "1.0.0",
			"message":     "Health check successful",
			"status":      "ok",
			"Time":        time.Now().Format("02-01-2006 15:04:05"),
		})
	})

	// API Documentation routes - Serve static swagger files
	app.Get("/docs/swagger.json", func(c fiber.Ctx) error {
		return c.SendFile("./docs/swagger.json")
	})

	app.Get("/docs/swagger.yaml", func(c fiber.Ctx) error {
		return c.SendFile("./docs/swagger.yaml")
	})

	// Swagger UI HTML page
	app.Get("/docs", func(c fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <meta name="description" content="SwaggerUI" />
  <title>Kesher Manager API - Swagger UI</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '/docs/swagger.json',
      dom_id: '#swagger-ui',
    });
  };
</script>
</body>
</html>`
		c.Set("Content-Type", "text/html")
		return c.SendString(html)
	})

	// Box routes
	boxes := api.Group("/boxes")
	boxes.Get("/", boxController.GetBoxes)
	boxes.Get("/search", boxController.SearchBoxes)
	boxes.Get("/advanced-search", boxController.AdvancedSearch)
	boxes.Get("/nearby", boxController.GetNearbyBoxes)
	boxes.Get("/status/:status", boxController.GetBoxesByStatus)
	boxes.Get("/donation-group/:group", boxController.GetBoxesByDonationGroup)
	boxes.Get("/:id", boxController.GetBox)
	boxes.Post("/", boxController.CreateBox)
	boxes.Put("/:id", boxController.UpdateBox)
	boxes.Delete("/:id", boxController.DeleteBox)
	boxes.Patch("/:id/status", boxController.UpdateBoxStatus)
	boxes.Get("/:id/outgoing-transports", boxController.GetOutgoingTransports)
	boxes.Get("/:id/incoming-transports", boxController.GetIncomingTransports)

	// Transport routes
	transports := api.Group("/transports")
	transports.Get("/", transportController.GetTransports)
	transports.Get("/today", transportController.GetTodayTransports)
	transports.Get("/date-range", transportController.GetTransportsByDateRange)
	transports.Get("/status/:status", transportController.GetTransportsByStatus)
	transports.Get("/destination-type/:destinationType", transportController.GetTransportsByDestinationType)
	transports.Get("/source-donation-group/:group", transportController.GetTransportsBySourceDonationGroup)
	transports.Get("/destination-donation-group/:group", transportController.GetTransportsByDestinationDonationGroup)
	transports.Get("/driver/:name", transportController.SearchTransportsByDriver)
	transports.Get("/created-by/:createdBy", transportController.GetTransportsByCreatedBy)
	transports.Get("/:id", transportController.GetTransport)
	transports.Post("/", transportController.CreateTransport)
	transports.Put("/:id", transportController.UpdateTransport)
	transports.Delete("/:id", transportController.DeleteTransport)
	transports.Patch("/:id/status", transportController.UpdateTransportStatus)
	transports.Patch("/:id/complete", transportController.CompleteTransport)

	// Task routes
	tasks := api.Group("/tasks")
	tasks.Get("/", taskController.GetTasks)
	tasks.Get("/overdue", taskController.GetOverdueTasks)
	tasks.Get("/due-today", taskController.GetTasksDueToday)
	tasks.Get("/date-range", taskController.GetTasksByDateRange)
	tasks.Get("/status/:status", taskController.GetTasksByStatus)
	tasks.Get("/priority/:priority", taskController.GetTasksByPriority)
	tasks.Get("/type/:taskType", taskController.GetTasksByType)
	tasks.Get("/assigned/:assignee", taskController.GetTasksByAssignee)
	tasks.Get("/donation-group/:group", taskController.GetTasksByDonationGroup)
	tasks.Get("/association-manager/:manager", taskController.GetTasksByAssociationManager)
	tasks.Get("/category/:category", taskController.GetTasksByCategory)
	tasks.Get("/box/:boxId", taskController.GetTasksByRelatedBox)
	tasks.Get("/transport/:transportId", taskController.GetTasksByRelatedTransport)
	tasks.Get("/:id", taskController.GetTask)
	tasks.Post("/", taskController.CreateTask)
	tasks.Put("/:id", taskController.UpdateTask)
	tasks.Delete("/:id", taskController.DeleteTask)
	tasks.Patch("/:id/status", taskController.UpdateTaskStatus)
	tasks.Patch("/:id/assign", taskController.AssignTask)

	// Import routes
	importGroup := api.Group("/import")
	importGroup.Post("/boxes", importController.ImportBoxesFile)
	importGroup.Post("/boxes/json", importController.ImportBoxes)

	// Date utility routes
	dates := api.Group("/date-utils")
	dates.Get("/now", dateController.GetNow)
	dates.Get("/today", dateController.GetToday)
	dates.Get("/this-week", dateController.GetThisWeek)
	dates.Get("/this-month", dateController.GetThisMonth)
}
