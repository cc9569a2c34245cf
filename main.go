package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/platforma-programari/booking-backend/cron"
	"github.com/platforma-programari/booking-backend/db"
	"github.com/platforma-programari/booking-backend/notifications"
	"github.com/platforma-programari/booking-backend/realtime"
	"github.com/platforma-programari/booking-backend/routes"
	"github.com/platforma-programari/booking-backend/utils"
)

func main() {
	app := fiber.New()
	db.Init()
	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.Migrate(); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	}

	notifications.Init()
	realtime.Init()
	if _, err := utils.InitCloudinary(); err != nil {
		log.Printf("Cloudinary not configured, photo uploads will fail: %v", err)
	}

	scheduler := cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	routes.SetupAuthRoutes(app)
	routes.SetupAvailabilityRoutes(app)
	routes.SetupHoursRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupEmployeeRoutes(app)
	routes.SetupAppointmentFieldRoutes(app)
	routes.SetupDashboardRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()
	log.Printf("Server started on port %s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	scheduler.Stop()
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
