package queue

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/prana-g/livestock-api/internal/api/metrics"
	"github.com/prana-g/livestock-api/internal/core/domain"
	"github.com/prana-g/livestock-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128

	criticalScore = 40
)

// Dispatcher routes alert jobs to a fixed set of workers using consistent
// hashing on the cattle id, so alerts for one animal are always raised in
// order by the same worker. Alert generation is best-effort and entirely off
// the request path.
type Dispatcher struct {
	workers []chan ports.AlertJob
	alerts  ports.AlertService
	dedup   ports.AlertDeduper
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, alerts ports.AlertService, dedup ports.AlertDeduper, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AlertJob, numWorkers),
		alerts:  alerts,
		dedup:   dedup,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AlertJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its cattle id.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.AlertJob) {
	idx := d.shardIndex(job.CattleID)
	d.workers[idx] <- job
	metrics.AlertQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a cattle id deterministically to a worker index.
func (d *Dispatcher) shardIndex(cattleID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(cattleID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AlertJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			d.process(ctx, job)
			metrics.AlertQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, job ports.AlertJob) {
	if d.dedup != nil {
		shouldAlert, err := d.dedup.ShouldAlert(ctx, job.UserID, job.CattleID)
		if err != nil {
			d.log.Warn().Err(err).Str("cattle_id", job.CattleID).Msg("alert dedup check failed, raising anyway")
		} else if !shouldAlert {
			d.log.Debug().Str("cattle_id", job.CattleID).Msg("alert already raised today, skipping")
			return
		}
	}

	severity := domain.SeverityWarning
	if job.Score < criticalScore {
		severity = domain.SeverityCritical
	}

	_, err := d.alerts.Create(ctx, job.UserID, ports.CreateAlertInput{
		CattleID: job.CattleID,
		Severity: severity,
		Message:  fmt.Sprintf("Low health score (%.0f) detected during %s scan", job.Score, job.Mode),
		Type:     "health",
	})
	if err != nil {
		d.log.Error().Err(err).
			Str("cattle_id", job.CattleID).
			Str("user_id", job.UserID).
			Msg("system alert write failed")
		return
	}

	metrics.AlertsGeneratedTotal.WithLabelValues(severity).Inc()
	d.log.Info().
		Str("cattle_id", job.CattleID).
		Str("severity", severity).
		Float64("score", job.Score).
		Msg("system alert raised")
}
