package monitoring

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync/atomic"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

const metricPrefix = "hongyeon_"

// PrometheusContentType is the text exposition format version written by WritePrometheus
const PrometheusContentType = "text/plain; version=0.0.4; charset=utf-8"

// WritePrometheus writes the counters in the Prometheus text exposition format.
// Labelled families with no samples yet are left out.
func (m *Metrics) WritePrometheus(w io.Writer) error {
	for _, mf := range m.families() {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func (m *Metrics) families() []*dto.MetricFamily {
	families := []*dto.MetricFamily{
		counter("requests_total", "HTTP requests served.", atomic.LoadInt64(&m.RequestCount)),
		counter("errors_total", "HTTP requests that ended in an error.", atomic.LoadInt64(&m.ErrorCount)),
		counter("cache_hits_total", "Score responses served from cache.", atomic.LoadInt64(&m.CacheHits)),
		counter("cache_misses_total", "Score requests that missed the cache.", atomic.LoadInt64(&m.CacheMisses)),
		counter("validation_failures_total", "Requests rejected for a missing birth year.", atomic.LoadInt64(&m.ValidationFailures)),
		counter("rate_limit_blocks_total", "Requests blocked by the per-IP limiter.", atomic.LoadInt64(&m.RateLimitIPBlocks)),
		counter("rate_limit_redis_errors_total", "Redis errors seen by the limiter.", atomic.LoadInt64(&m.RateLimitRedisErrors)),
		counter("rate_limit_fallback_total", "Limiter decisions made in memory.", atomic.LoadInt64(&m.RateLimitFallbackCount)),
		{
			Name: proto.String(metricPrefix + "uptime_seconds"),
			Help: proto.String("Seconds since the process started."),
			Type: dto.MetricType_GAUGE.Enum(),
			Metric: []*dto.Metric{{
				Gauge: &dto.Gauge{Value: proto.Float64(time.Since(m.StartTime).Seconds())},
			}},
		},
	}

	bands := m.GetBandDistribution()
	scores := &dto.MetricFamily{
		Name: proto.String(metricPrefix + "scores_total"),
		Help: proto.String("Compatibility scores computed, by band."),
		Type: dto.MetricType_COUNTER.Enum(),
	}
	for _, band := range sortedKeys(bands) {
		scores.Metric = append(scores.Metric, labelled("band", band, bands[band]))
	}
	if len(scores.Metric) > 0 {
		families = append(families, scores)
	}

	statuses := m.GetStatusCodeDistribution()
	codes := make([]int, 0, len(statuses))
	for code := range statuses {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	byStatus := &dto.MetricFamily{
		Name: proto.String(metricPrefix + "responses_total"),
		Help: proto.String("HTTP responses, by status code."),
		Type: dto.MetricType_COUNTER.Enum(),
	}
	for _, code := range codes {
		byStatus.Metric = append(byStatus.Metric, labelled("code", strconv.Itoa(code), statuses[code]))
	}
	if len(byStatus.Metric) > 0 {
		families = append(families, byStatus)
	}

	return families
}

func counter(name, help string, value int64) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(metricPrefix + name),
		Help: proto.String(help),
		Type: dto.MetricType_COUNTER.Enum(),
		Metric: []*dto.Metric{{
			Counter: &dto.Counter{Value: proto.Float64(float64(value))},
		}},
	}
}

func labelled(label, value string, count int64) *dto.Metric {
	return &dto.Metric{
		Label:   []*dto.LabelPair{{Name: proto.String(label), Value: proto.String(value)}},
		Counter: &dto.Counter{Value: proto.Float64(float64(count))},
	}
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
