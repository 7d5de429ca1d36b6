package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"screening-backend/internal/match"
	"screening-backend/internal/screenings"
	"screening-backend/internal/shared/config"
	"screening-backend/internal/shared/metrics"
	"screening-backend/internal/shared/server/middleware"
	"screening-backend/internal/shared/server/respond"
	"screening-backend/internal/vocab"
)

// Per-IP throttle for screening uploads.
var screeningRateRule = middleware.RateLimitRule{Rate: 2, Burst: 10}

// NewRouter constructs the Gin engine with middleware and routes
// registered. An invalid vocabulary file or weight configuration fails
// here, at startup.
func NewRouter(cfg config.Config, log *zap.Logger) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(log),
		middleware.Recovery(log),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	v := vocab.Default()
	if cfg.VocabFile != "" {
		loaded, err := vocab.LoadFile(cfg.VocabFile)
		if err != nil {
			return nil, err
		}
		v = loaded
	}

	matchCfg := MatchConfig(cfg)
	if _, err := match.NewEngine(matchCfg, v); err != nil {
		return nil, fmt.Errorf("validate match config: %w", err)
	}

	svc := &screenings.Service{
		Vocab:   v,
		Match:   matchCfg,
		Workers: cfg.Workers,
		Log:     log,
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	uploads := api.Group("")
	uploads.Use(middleware.RateLimit(middleware.NewRateLimiter(nil), screeningRateRule))
	screenings.NewHandler(svc).RegisterRoutes(uploads)

	return r, nil
}

// MatchConfig builds the engine configuration from the app config.
func MatchConfig(cfg config.Config) match.Config {
	return match.Config{
		Weights: match.Weights{
			Technical:  cfg.WeightTechnical,
			Experience: cfg.WeightExperience,
			Education:  cfg.WeightEducation,
			SoftSkills: cfg.WeightSoftSkills,
		},
		Thresholds: match.Thresholds{
			Shortlist: cfg.ShortlistAt,
			Pending:   cfg.PendingAt,
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
