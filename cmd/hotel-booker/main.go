package main

import (
	"context"
	"errors"
	"hotelBooker/internal/config"
	"hotelBooker/internal/http-server/handlers/booking/createBooking"
	"hotelBooker/internal/http-server/handlers/booking/deleteBooking"
	"hotelBooker/internal/http-server/handlers/booking/getAllBookings"
	"hotelBooker/internal/http-server/handlers/booking/getBooking"
	"hotelBooker/internal/http-server/handlers/booking/getExcludedDates"
	"hotelBooker/internal/http-server/handlers/booking/getHotelBookings"
	"hotelBooker/internal/http-server/handlers/booking/getRoomBookings"
	"hotelBooker/internal/http-server/handlers/booking/getUserBookings"
	"hotelBooker/internal/http-server/handlers/booking/updateBooking"
	"hotelBooker/internal/http-server/handlers/booking/updateStatus"
	"hotelBooker/internal/http-server/handlers/search/getSearch"
	"hotelBooker/internal/http-server/handlers/search/saveSearch"
	"hotelBooker/internal/http-server/middleware/mwlogger"
	"hotelBooker/internal/lib/logger/handlers/slogpretty"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/storage/postgres"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting hotel booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/bookings", func(r chi.Router) {
		r.Get("/", getAllBookings.New(log, storage))
		r.Post("/", createBooking.New(log, storage))
		r.Get("/hotel/{hotelID}", getHotelBookings.New(log, storage))
		r.Get("/user/{userID}", getUserBookings.New(log, storage))
		r.Patch("/status/{id}/{bookingStatus}", updateStatus.New(log, storage))
		r.Get("/{hotelID}/{roomID}/excluded-dates", getExcludedDates.New(log, storage))
		r.Get("/{hotelID}/{roomID}", getRoomBookings.New(log, storage))
		r.Get("/{id}", getBooking.New(log, storage))
		r.Put("/{id}", updateBooking.New(log, storage))
		r.Delete("/{id}", deleteBooking.New(log, storage))
	})

	router.Post("/search", saveSearch.New(log, storage))
	router.Get("/search/{key}", getSearch.New(log, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	// The signal is delivered once, so only main reads stop; the sweeper
	// gets its own channel, closed during shutdown.
	sweepStop := make(chan struct{})

	if cfg.Bookings.PendingTTL > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Bookings.SweepInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					cancelled, err := storage.CancelExpiredBookings(cfg.Bookings.PendingTTL)
					if err != nil {
						log.Error("failed to cancel expired bookings", sl.Err(err))
						continue
					}
					if cancelled > 0 {
						log.Info("expired pending bookings cancelled", slog.Int64("count", cancelled))
					}
				case <-sweepStop:
					return
				}
			}
		}()
	}

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	close(sweepStop)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
