package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/court-booking-planner/internal/api"
	"github.com/nekogravitycat/court-booking-planner/internal/community"
	"github.com/nekogravitycat/court-booking-planner/internal/court"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apiclient"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/clock"
	"github.com/nekogravitycat/court-booking-planner/internal/planner"
	"github.com/nekogravitycat/court-booking-planner/internal/reservation"
	"github.com/nekogravitycat/court-booking-planner/internal/session"
	"github.com/nekogravitycat/court-booking-planner/internal/timeslot"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       *zap.Logger

	APIBaseURL         string
	Clock              clock.Clock // Defaults to the system clock in Location
	Location           *time.Location
	DefaultBookingDays int

	Sessions    session.Store // Defaults to an in-memory store with SessionTTL
	SessionTTL  time.Duration
	RateLimiter *api.RateLimiter // Optional
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router  *gin.Engine
	Planner planner.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewSystem(cfg.Location)
	}

	sessions := cfg.Sessions
	if sessions == nil {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
	}

	// Reservation API client shared by every repository
	client := apiclient.New(cfg.APIBaseURL, logger.Named("apiclient"))

	// Community Module
	communityRepo := community.NewAPIRepository(client)

	// Court Module
	courtRepo := court.NewAPIRepository(client)
	courtService := court.NewService(courtRepo, communityRepo)

	// TimeSlot Module
	slotRepo := timeslot.NewAPIRepository(client)

	// Reservation Module
	reservationRepo := reservation.NewAPIRepository(client, logger.Named("reservation"))

	// Planner Module
	plannerService := planner.NewService(planner.Deps{
		Courts:       courtService,
		Slots:        slotRepo,
		Reservations: reservationRepo,
		Sessions:     sessions,
		Clock:        clk,
		DefaultDays:  cfg.DefaultBookingDays,
		Logger:       logger.Named("planner"),
	})

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		Logger:         logger,
		RateLimiter:    cfg.RateLimiter,
		CommunityRepo:  communityRepo,
		CourtService:   courtService,
		PlannerService: plannerService,
	})

	return &Container{
		Router:  router,
		Planner: plannerService,
	}
}
