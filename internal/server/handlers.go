package server

import (
	"bytes"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/hongyeon/internal/cache"
	"github.com/ZanzyTHEbar/hongyeon/internal/errors"
	"github.com/ZanzyTHEbar/hongyeon/internal/monitoring"
	"github.com/ZanzyTHEbar/hongyeon/internal/saju"
	"github.com/ZanzyTHEbar/hongyeon/internal/security"
	"github.com/ZanzyTHEbar/hongyeon/internal/types"
	"github.com/gin-gonic/gin"
)

type handlers struct {
	deps Deps
}

// score godoc
// @Summary      Score the compatibility of two birth records
// @Description  Derives each person's element profile from birth year and optional birth time and returns a 50-centred score with its band message. Hour defaults to 12 and minute to 0 when absent.
// @Tags         score
// @Accept       json
// @Produce      json
// @Param        request  body      types.ScoreRequest  true  "Both people"
// @Success      200      {object}  types.ScoreResponse
// @Failure      400      {object}  map[string]interface{}  "Missing year or malformed body"
// @Failure      413      {object}  map[string]interface{}
// @Failure      415      {object}  map[string]interface{}
// @Failure      429      {object}  map[string]interface{}
// @Router       /api/score [post]
func (h *handlers) score(c *gin.Context) {
	var req types.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.deps.Metrics.IncrementValidationFailure()
		errors.Abort(c, err)
		return
	}

	if missing := req.MissingYears(); len(missing) > 0 {
		h.deps.Metrics.IncrementValidationFailure()
		errors.Abort(c, errors.NewMissingYearError(missing...))
		return
	}

	req.PersonA.Name = security.SanitizeName(req.PersonA.Name)
	req.PersonB.Name = security.SanitizeName(req.PersonB.Name)

	result, err := saju.Score(req.PersonA.Birth(), req.PersonB.Birth())
	if err != nil {
		errors.Abort(c, err)
		return
	}

	summary := scoreSummary{
		score:    result.Score,
		band:     string(result.Band),
		profileA: len(result.Breakdown.PersonA.Elements),
		profileB: len(result.Breakdown.PersonB.Elements),
	}
	c.Set(cache.MetaKey, summary)
	h.recordScore(summary, false)

	c.JSON(http.StatusOK, types.NewScoreResponse(req, result))
}

// scoreSummary is kept next to a cached response so hits are still counted
type scoreSummary struct {
	score    int
	band     string
	profileA int
	profileB int
}

func (h *handlers) recordScore(s scoreSummary, cacheHit bool) {
	h.deps.Metrics.RecordScore(s.band)
	h.deps.Logger.ScoreLogger("api", s.score, s.band, s.profileA, s.profileB, cacheHit)
}

func (h *handlers) cachedScore(_ *gin.Context, meta interface{}) {
	if summary, ok := meta.(scoreSummary); ok {
		h.recordScore(summary, true)
	}
}

// elements godoc
// @Summary      Lookup tables
// @Description  Stems, branches, their elements and the directional compatibility matrix.
// @Tags         score
// @Produce      json
// @Success      200  {object}  saju.Tables
// @Router       /api/elements [get]
func (h *handlers) elements(c *gin.Context) {
	c.JSON(http.StatusOK, saju.LookupTables())
}

// health godoc
// @Summary      Health check
// @Tags         ops
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *handlers) health(c *gin.Context) {
	status := "ok"
	backend := "memory"

	if h.deps.Redis.IsEnabled() {
		backend = "redis"
		if err := h.deps.Redis.HealthCheck(c.Request.Context()); err != nil {
			// scoring still works on the in-memory limiter
			status = "degraded"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":             status,
		"version":            Version,
		"timestamp":          time.Now().Format(time.RFC3339),
		"rate_limit_backend": backend,
	})
}

// metrics godoc
// @Summary      Service metrics
// @Tags         ops
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /metrics [get]
func (h *handlers) metrics(c *gin.Context) {
	stats := h.deps.Metrics.GetStats()
	stats["cache"] = h.deps.Cache.Stats()
	stats["rate_limiter"] = h.deps.Limiter.GetStats()
	stats["compression"] = h.deps.Compression.GetStats()
	stats["system"] = monitoring.SystemStats()
	c.JSON(http.StatusOK, stats)
}

// prometheus godoc
// @Summary      Service counters in Prometheus text format
// @Tags         ops
// @Produce      plain
// @Success      200  {string}  string
// @Router       /metrics/prometheus [get]
func (h *handlers) prometheus(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.deps.Metrics.WritePrometheus(&buf); err != nil {
		errors.Abort(c, errors.NewInternalError("failed to encode metrics", err))
		return
	}
	c.Data(http.StatusOK, monitoring.PrometheusContentType, buf.Bytes())
}
