package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	feedbackHttp "feedback-service/internal/feedback/adapters/http/fiber"
	feedbackRepoPg "feedback-service/internal/feedback/adapters/postgres"
	feedbackUsecase "feedback-service/internal/feedback/core/usecase"

	statisticsHttp "feedback-service/internal/statistics/adapters/http/fiber"
	statisticsUsecase "feedback-service/internal/statistics/core/usecase"

	storagePg "feedback-service/internal/storage/postgres"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "feedback-service/docs"
)

func main() {
	// Config
	_ = godotenv.Load()

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is not set")
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// DB connection
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Adapter-level DB wrapper
	storeDB := storagePg.NewSQLDB(db)

	// Repositories
	feedbackRepository := feedbackRepoPg.NewFeedbackRepository(storeDB)

	// Usecases
	createFeedbackUC := feedbackUsecase.NewCreateFeedbackUseCase(feedbackRepository)
	queryFeedbackUC := feedbackUsecase.NewQueryFeedbackUseCase()
	getStatisticsUC := statisticsUsecase.NewGetStatisticsUseCase()

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	// statistics endpoint (registered before the :id route)
	statisticsHandler := statisticsHttp.NewStatisticsHandler(getStatisticsUC)
	app.Get("/api/feedbacks/statistics", statisticsHandler.GetStatistics)

	// feedback endpoints
	feedbackHandler := feedbackHttp.NewFeedbackHandler(createFeedbackUC, queryFeedbackUC)
	app.Get("/api/feedbacks", feedbackHandler.ListFeedbacks)
	app.Get("/api/feedbacks/event/:eventId", feedbackHandler.ListFeedbacksByEvent)
	app.Get("/api/feedbacks/:id", feedbackHandler.GetFeedback)
	app.Post("/api/feedbacks", feedbackHandler.CreateFeedback)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
