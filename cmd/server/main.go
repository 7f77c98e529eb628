package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/movie-seat-booking/internal/booking"    // Reservation core
	"github.com/iliyamo/movie-seat-booking/internal/config"     // Internal config loader
	"github.com/iliyamo/movie-seat-booking/internal/handler"    // HTTP handlers
	"github.com/iliyamo/movie-seat-booking/internal/middleware" // Redis cache + rate limit
	"github.com/iliyamo/movie-seat-booking/internal/queue"      // Booking event consumer
	"github.com/iliyamo/movie-seat-booking/internal/router"     // Internal router setup
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win
	cfg := config.Load()

	svc := booking.NewService()
	if cfg.Seed {
		seedSampleData(svc)
	}

	// Background consumer mirrors confirmed bookings into logs/booking.log.
	// It reconnects on its own; the server does not depend on the broker.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking-consumer: stopped: %v", err)
		}
	}()

	e := echo.New()

	// Redis is optional: a nil client disables both middlewares.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterCatalog(e, handler.NewCatalogHandler(svc))
	router.RegisterReservations(e, handler.NewReservationHandler(svc))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// seedSampleData loads the demo catalog so the API is usable out of the
// box: four movies, three theaters and their screening links.
func seedSampleData(svc *booking.Service) {
	svc.AddTheater(1, "VOX Cinemas - Mall of the Emirates (Dubai)")
	svc.AddTheater(2, "Reel Cinemas - Dubai Mall")
	svc.AddTheater(3, "Novo Cinemas - IMG Worlds of Adventure")

	svc.AddMovie(1, "Mission: Impossible – Dead Reckoning")
	svc.AddMovie(2, "Dune: Part Two")
	svc.AddMovie(3, "Oppenheimer")
	svc.AddMovie(4, "Avatar: The Way of Water")

	links := [][2]uint32{
		{1, 1}, {1, 2},
		{2, 1}, {2, 3},
		{3, 2}, {3, 3},
		{4, 1}, {4, 2}, {4, 3},
	}
	for _, l := range links {
		svc.Link(l[0], l[1])
	}
	log.Printf("seeded sample catalog: 4 movies, 3 theaters, %d links", len(links))
}
