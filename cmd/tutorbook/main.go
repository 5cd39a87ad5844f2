package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/app"
	"github.com/tutorkit/tutorbook/internal/config"
	"github.com/tutorkit/tutorbook/internal/httpapi"
	"github.com/tutorkit/tutorbook/internal/repository"
	"github.com/tutorkit/tutorbook/internal/schedule"
	"github.com/tutorkit/tutorbook/internal/service"
	"github.com/tutorkit/tutorbook/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting tutorbook",
		zap.String("environment", cfg.Environment),
		zap.String("addr", cfg.HTTPAddr),
		zap.String("data_path", cfg.DataPath),
	)

	store, err := storage.Open(cfg.DataPath)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer store.Close()

	lessons := repository.NewLessonRepository(store, logger)
	students := repository.NewStudentRepository(store, logger)
	notes := repository.NewNoteRepository(store, logger)
	enquiries := repository.NewEnquiryRepository(store, logger)
	patterns := repository.NewPatternRepository(store, logger)
	terms := repository.NewTermRepository(store, logger)
	availability := repository.NewAvailabilityRepository(store, logger)

	availabilityService := service.NewAvailabilityService(availability, logger)
	expander := schedule.NewRecurringExpander(cfg.ExpandHorizonWeeks)
	bookingService := service.NewBookingService(lessons, students, patterns, terms, availabilityService, expander, logger)
	studentService := service.NewStudentService(students, notes, logger)
	enquiryService := service.NewEnquiryService(enquiries, bookingService, logger)
	exportService := service.NewExportService(lessons, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := app.NewScheduler(bookingService, logger)
	if err := scheduler.Start(ctx, cfg.ExpandCron); err != nil {
		logger.Fatal("Failed to start scheduler", zap.Error(err))
	}
	defer scheduler.Stop()

	server := httpapi.NewServer(bookingService, studentService, enquiryService, availabilityService, exportService, logger)
	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      server.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", zap.Error(err))
	}
}
