package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/court-booking-planner/internal/auth"
	"github.com/nekogravitycat/court-booking-planner/internal/community"
	commHttp "github.com/nekogravitycat/court-booking-planner/internal/community/http"
	"github.com/nekogravitycat/court-booking-planner/internal/court"
	courtHttp "github.com/nekogravitycat/court-booking-planner/internal/court/http"
	"github.com/nekogravitycat/court-booking-planner/internal/planner"
	plannerHttp "github.com/nekogravitycat/court-booking-planner/internal/planner/http"
)

type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       *zap.Logger
	RateLimiter  *RateLimiter // Optional

	CommunityRepo  community.Repository
	CourtService   court.Service
	PlannerService planner.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - RequestLogger: Logs request information through zap.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	commHandler := commHttp.NewHandler(cfg.CommunityRepo, cfg.Logger)
	courtHandler := courtHttp.NewHandler(cfg.CourtService, cfg.Logger)
	plannerHandler := plannerHttp.NewHandler(cfg.PlannerService, cfg.Logger)

	// Register API routes under /v1. The bearer token is forwarded to the reservation API.
	v1 := r.Group("/v1")
	v1.Use(auth.BearerToken())
	{
		commHttp.RegisterRoutes(v1, commHandler)
		courtHttp.RegisterRoutes(v1, courtHandler)
		plannerHttp.RegisterRoutes(v1, plannerHandler)
	}

	return r
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
