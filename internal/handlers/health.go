// internal/handlers/health.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/ammerola/meta4-erp/internal/pkg/config"
)

const (
	statusUp   = "up"
	statusDown = "down"
)

// Pinger is a dependency that can report whether it answers
type Pinger interface {
	Ping(ctx context.Context) error
}

// SessionCounter reports the number of mounted view sessions
type SessionCounter interface {
	Count() int
}

// probe checks one dependency. Only gating probes decide readiness.
type probe struct {
	name   string
	gating bool
	run    func(ctx context.Context) (map[string]any, error)
}

// HealthHandler serves liveness and readiness reports
type HealthHandler struct {
	probes   []probe
	sessions SessionCounter
	version  string
	env      string
	started  time.Time
	logger   *slog.Logger
}

// NewHealthHandler creates a new health handler. redisClient, inspector and
// sessions may be nil when the process runs without them.
func NewHealthHandler(
	upstream Pinger,
	redisClient *redis.Client,
	inspector *asynq.Inspector,
	sessions SessionCounter,
	cfg *config.Config,
	logger *slog.Logger,
) *HealthHandler {
	probes := []probe{{name: "upstream", gating: true, run: func(ctx context.Context) (map[string]any, error) {
		return nil, upstream.Ping(ctx)
	}}}
	if redisClient != nil {
		probes = append(probes, probe{name: "redis", gating: true, run: redisProbe(redisClient)})
	}
	if inspector != nil {
		probes = append(probes, probe{name: "asynq", run: queueProbe(inspector)})
	}

	return &HealthHandler{
		probes:   probes,
		sessions: sessions,
		version:  cfg.App.Version,
		env:      cfg.App.Environment,
		started:  time.Now(),
		logger:   logger.With(slog.String("handler", "health")),
	}
}

// HealthReport is the body of /health
type HealthReport struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Environment string                 `json:"environment"`
	Uptime      string                 `json:"uptime"`
	CheckedAt   time.Time              `json:"checked_at"`
	Sessions    int                    `json:"sessions"`
	Checks      map[string]CheckResult `json:"checks"`
	Runtime     RuntimeStats           `json:"runtime"`
}

// CheckResult is the outcome of one probe
type CheckResult struct {
	Status  string         `json:"status"`
	Error   string         `json:"error,omitempty"`
	Latency string         `json:"latency"`
	Details map[string]any `json:"details,omitempty"`
}

// ReadinessReport is the body of /ready
type ReadinessReport struct {
	Ready  bool              `json:"ready"`
	Checks map[string]string `json:"checks"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	Goroutines   int    `json:"goroutines"`
	CPUs         int    `json:"cpus"`
	HeapAllocMB  uint64 `json:"heap_alloc_mb"`
	SysMB        uint64 `json:"sys_mb"`
	GCCycles     uint32 `json:"gc_cycles"`
	GCPauseTotal string `json:"gc_pause_total"`
}

// Health runs every probe. Any failure reports "degraded" with a 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	report := HealthReport{
		Status:      "ok",
		Version:     h.version,
		Environment: h.env,
		Uptime:      time.Since(h.started).Round(time.Second).String(),
		CheckedAt:   time.Now().UTC(),
		Checks:      h.runProbes(ctx, false),
		Runtime:     readRuntimeStats(),
	}
	if h.sessions != nil {
		report.Sessions = h.sessions.Count()
	}

	status := http.StatusOK
	for _, res := range report.Checks {
		if res.Status != statusUp {
			report.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
	}
	h.respond(w, status, report)
}

// Readiness runs the gating probes only
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	report := ReadinessReport{Ready: true, Checks: make(map[string]string)}
	for name, res := range h.runProbes(ctx, true) {
		report.Checks[name] = res.Status
		if res.Status != statusUp {
			report.Ready = false
		}
	}

	status := http.StatusOK
	if !report.Ready {
		status = http.StatusServiceUnavailable
	}
	h.respond(w, status, report)
}

func (h *HealthHandler) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, h.logger, status, body)
}

// runProbes runs the probes concurrently. Failures are recorded in the
// result, never returned, so the group never cancels a sibling.
func (h *HealthHandler) runProbes(ctx context.Context, gatingOnly bool) map[string]CheckResult {
	var selected []probe
	for _, p := range h.probes {
		if p.gating || !gatingOnly {
			selected = append(selected, p)
		}
	}

	results := make([]CheckResult, len(selected))
	var g errgroup.Group
	for i, p := range selected {
		g.Go(func() error {
			start := time.Now()
			details, err := p.run(ctx)
			res := CheckResult{Status: statusUp, Details: details, Latency: time.Since(start).String()}
			if err != nil {
				res.Status, res.Error, res.Details = statusDown, err.Error(), nil
				h.logger.WarnContext(ctx, "health probe failed",
					slog.String("probe", p.name),
					slog.String("error", err.Error()))
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]CheckResult, len(selected))
	for i, p := range selected {
		out[p.name] = results[i]
	}
	return out
}

func redisProbe(client *redis.Client) func(context.Context) (map[string]any, error) {
	return func(ctx context.Context) (map[string]any, error) {
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		stats := client.PoolStats()
		return map[string]any{
			"total_conns": stats.TotalConns,
			"idle_conns":  stats.IdleConns,
			"timeouts":    stats.Timeouts,
		}, nil
	}
}

// queueProbe reports the refresh queues. The inspector API takes no context.
func queueProbe(inspector *asynq.Inspector) func(context.Context) (map[string]any, error) {
	return func(context.Context) (map[string]any, error) {
		names, err := inspector.Queues()
		if err != nil {
			return nil, err
		}

		queues := make(map[string]any, len(names))
		for _, name := range names {
			q, err := inspector.GetQueueInfo(name)
			if err != nil {
				continue
			}
			queues[name] = map[string]int{
				"pending":   q.Pending,
				"active":    q.Active,
				"scheduled": q.Scheduled,
				"retry":     q.Retry,
				"archived":  q.Archived,
			}
		}

		details := map[string]any{"queues": queues}
		if servers, err := inspector.Servers(); err == nil {
			details["servers"] = len(servers)
		}
		return details, nil
	}
}

func readRuntimeStats() RuntimeStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return RuntimeStats{
		GoVersion:    runtime.Version(),
		Goroutines:   runtime.NumGoroutine(),
		CPUs:         runtime.NumCPU(),
		HeapAllocMB:  m.HeapAlloc >> 20,
		SysMB:        m.Sys >> 20,
		GCCycles:     m.NumGC,
		GCPauseTotal: time.Duration(m.PauseTotalNs).String(),
	}
}
