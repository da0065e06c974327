package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector 指标收集器，nil 值可安全调用 (不记录)
type MetricsCollector struct {
	registry *prometheus.Registry

	// HTTP 指标
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// 帖子业务指标
	topicOpsTotal        *prometheus.CounterVec
	weightRefreshTotal   *prometheus.CounterVec
	weightRefreshSeconds prometheus.Histogram
	weightRefreshTopics  prometheus.Gauge

	// 缓存指标
	cacheHitsTotal   *prometheus.CounterVec
	cacheMissesTotal *prometheus.CounterVec
}

// NewMetricsCollector 创建指标收集器，每个实例使用独立的 registry
func NewMetricsCollector() *MetricsCollector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &MetricsCollector{
		registry: reg,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		topicOpsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bbs_topic_operations_total",
				Help: "Topic workflow invocations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),

		weightRefreshTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bbs_weight_refresh_total",
				Help: "Full weight refresh runs by outcome",
			},
			[]string{"outcome"},
		),

		weightRefreshSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bbs_weight_refresh_duration_seconds",
				Help:    "Duration of a full weight refresh",
				Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300},
			},
		),

		weightRefreshTopics: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bbs_weight_refresh_topics",
				Help: "Number of topics updated by the last weight refresh",
			},
		),

		cacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache"},
		),

		cacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache"},
		),
	}
}

// RecordHTTPRequest 记录 HTTP 请求
func (mc *MetricsCollector) RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	if mc == nil {
		return
	}
	mc.httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	mc.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordTopicOp outcome 取 ok / rejected / failed
func (mc *MetricsCollector) RecordTopicOp(operation, outcome string) {
	if mc == nil {
		return
	}
	mc.topicOpsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordWeightRefresh 记录一次全量刷新
func (mc *MetricsCollector) RecordWeightRefresh(outcome string, updated int, duration time.Duration) {
	if mc == nil {
		return
	}
	mc.weightRefreshTotal.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		mc.weightRefreshSeconds.Observe(duration.Seconds())
		mc.weightRefreshTopics.Set(float64(updated))
	}
}

// RecordCacheHit 记录缓存命中
func (mc *MetricsCollector) RecordCacheHit(cache string) {
	if mc == nil {
		return
	}
	mc.cacheHitsTotal.WithLabelValues(cache).Inc()
}

// RecordCacheMiss 记录缓存未命中
func (mc *MetricsCollector) RecordCacheMiss(cache string) {
	if mc == nil {
		return
	}
	mc.cacheMissesTotal.WithLabelValues(cache).Inc()
}

// Registry 供测试读取指标
func (mc *MetricsCollector) Registry() *prometheus.Registry {
	return mc.registry
}

// Handler 暴露 /metrics
func (mc *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(mc.registry, promhttp.HandlerOpts{})
}
