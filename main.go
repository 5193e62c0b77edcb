package main

import (
	"log"
	"os"
	"time"

	"github.com/shivangi1713/The-Intelligent-Content-API/database"
	"github.com/shivangi1713/The-Intelligent-Content-API/handlers"
	"github.com/shivangi1713/The-Intelligent-Content-API/services/analyzer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Provider keys may come from .env, so the manager is built only after
	// the load above.
	handlers.Analyzer = analyzer.NewManager()

	app := fiber.New()

	// Security Middleware
	app.Use(helmet.New())

	// Rate Limiting (100 reqs / min)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"detail": "Too many requests, please try again later.",
			})
		},
	}))

	// CORS
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Database
	database.Connect()

	setupRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("Starting server on :" + port + "...")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Server Listen Error: ", err)
	}
}

func setupRoutes(app *fiber.App) {
	app.Get("/", handlers.HealthCheck)

	// Auth
	app.Post("/signup", handlers.Signup)
	app.Post("/login", handlers.Login)

	// Content (Protected)
	contents := app.Group("/contents", handlers.RequireAuth)
	contents.Post("/", handlers.CreateContent)
	contents.Get("/", handlers.ListContents)
	contents.Get("/:id", handlers.GetContent)
	contents.Delete("/:id", handlers.DeleteContent)

	// Event trail (Protected)
	app.Get("/events", handlers.RequireAuth, handlers.ListEvents)
}
