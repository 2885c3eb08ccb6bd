package services

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	MONITORING_SVC          = "monitoring_svc"
	SERVICE_NAME            = "cardex_backend"
	DEFAULT_PROMETHEUS_PORT = 2112
)

// HTTP Metrics
var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"endpoint", "method", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint", "method", "status"},
	)
)

// Progression Metrics
var (
	scansTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "progression_scans_total",
			Help: "Total card scans recorded, by rarity",
		},
		[]string{"rarity"},
	)

	xpAwardedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "progression_xp_awarded_total",
			Help: "Total XP awarded, by action type",
		},
		[]string{"action"},
	)

	levelUpsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "progression_level_ups_total",
			Help: "Total level ups across all users",
		},
	)

	achievementsUnlockedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "progression_achievements_unlocked_total",
			Help: "Total achievement unlocks across all users",
		},
	)

	skinsUnlockedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "progression_skins_unlocked_total",
			Help: "Total skin unlocks across all users",
		},
	)

	eventBadgesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "progression_event_badges_total",
			Help: "Total seasonal event badges earned, by event",
		},
		[]string{"event"},
	)
)

// System Metrics
var (
	heapAllocBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "heap_alloc_bytes",
			Help: "Heap memory allocated in bytes",
		},
	)

	heapSysBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "heap_sys_bytes",
			Help: "Heap memory obtained from system in bytes",
		},
	)

	gcTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gc_total",
			Help: "Total number of garbage collections",
		},
	)
)

type MonitoringService struct {
	appContext.DefaultService

	port     int
	register *prometheus.Registry

	closed      chan struct{}
	server      *fiber.App
	lastGCCount uint32
}

func (svc *MonitoringService) Id() string {
	return MONITORING_SVC
}

func (svc *MonitoringService) Start() error {
	svc.closed = make(chan struct{}, 1)

	portStr := os.Getenv("PROMETHEUS_PORT")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = DEFAULT_PROMETHEUS_PORT
	}
	svc.port = port

	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	reg.MustRegister(
		httpRequestsTotal,
		httpRequestDurationSeconds,
		scansTotal,
		xpAwardedTotal,
		levelUpsTotal,
		achievementsUnlockedTotal,
		skinsUnlockedTotal,
		eventBadgesTotal,
		heapAllocBytes,
		heapSysBytes,
		gcTotal,
	)

	svc.register = reg

	go svc.updateMemoryMetrics()

	config := fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		},
	}

	svc.server = fiber.New(config)
	svc.server.Use(recover.New())

	svc.server.Get("/metrics", svc.metricsHandler)
	svc.server.Get("/health", svc.healthHandler)

	log.Info().Int("port", svc.port).Msg("Prometheus metrics server started")
	return svc.server.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *MonitoringService) Shutdown() {
	svc.closed <- struct{}{}
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

func (svc *MonitoringService) metricsHandler(c *fiber.Ctx) error {
	handler := promhttp.HandlerFor(svc.register, promhttp.HandlerOpts{})
	return adaptor.HTTPHandler(handler)(c)
}

func (svc *MonitoringService) healthHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "healthy",
		"service":   SERVICE_NAME,
		"timestamp": time.Now().Unix(),
	})
}

func (svc *MonitoringService) updateMemoryMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			heapAllocBytes.Set(float64(m.Alloc))
			heapSysBytes.Set(float64(m.Sys))

			if m.NumGC > svc.lastGCCount {
				gcTotal.Add(float64(m.NumGC - svc.lastGCCount))
				svc.lastGCCount = m.NumGC
			}

		case <-svc.closed:
			log.Info().Msg("Memory metrics updater stopped")
			return
		}
	}
}

// RecordRequest records HTTP request metrics
func (svc *MonitoringService) RecordRequest(method, endpoint, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
	httpRequestDurationSeconds.WithLabelValues(endpoint, method, status).Observe(duration.Seconds())
}

// RecordScan records a card scan by rarity
func (svc *MonitoringService) RecordScan(rarity string) {
	scansTotal.WithLabelValues(rarity).Inc()
}

// RecordXPAward records XP given out for an action
func (svc *MonitoringService) RecordXPAward(action string, xp int) {
	xpAwardedTotal.WithLabelValues(action).Add(float64(xp))
}

// RecordLevelUp records a user crossing a level threshold
func (svc *MonitoringService) RecordLevelUp() {
	levelUpsTotal.Inc()
}

// RecordUnlocks records achievement, skin and event badge unlocks
func (svc *MonitoringService) RecordUnlocks(achievements, skins int, eventID string, eventBadges int) {
	if achievements > 0 {
		achievementsUnlockedTotal.Add(float64(achievements))
	}
	if skins > 0 {
		skinsUnlockedTotal.Add(float64(skins))
	}
	if eventBadges > 0 && eventID != "" {
		eventBadgesTotal.WithLabelValues(eventID).Add(float64(eventBadges))
	}
}
