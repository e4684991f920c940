package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/SaptarshiMaity01/ai-resume-shortlisting/internal/config"
	"github.com/SaptarshiMaity01/ai-resume-shortlisting/internal/handlers"
	"github.com/SaptarshiMaity01/ai-resume-shortlisting/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize completion backend
	completion, err := newCompletionService(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM client: %v", err)
	}
	log.Printf("✅ LLM client initialized (%s)", cfg.LLM.Provider)

	// Initialize services
	spooler := services.NewSpooler(cfg.Storage.TmpDir)

	var ocr services.OCREngine
	if cfg.OCR.Enabled {
		ocr = services.NewTesseractEngine(cfg.OCR.Languages)
		log.Println("✅ OCR fallback enabled")
	}

	extractor := services.NewDocumentExtractor(spooler, ocr)
	analyzer := services.NewAnalyzer(completion)
	parser := services.NewLineParser()
	screener := services.NewScreener(extractor, analyzer, parser, cfg.Screening.Concurrency)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	screenHandler := handlers.NewScreenHandler(screener, cfg.Storage.MaxFileSize)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Shortlisting API",
		ReadTimeout:  120 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) * 10,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/screen", screenHandler.HandleScreen)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Resume Shortlisting API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/screen",
				"GET /api/v1/health",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func newCompletionService(cfg *config.Config) (services.CompletionService, error) {
	switch cfg.LLM.Provider {
	case "gemini":
		return services.NewGeminiService(cfg.LLM)
	default:
		return services.NewGroqService(cfg.LLM), nil
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
