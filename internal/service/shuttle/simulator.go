package shuttle

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
	"github.com/NssGourav/shuttle-tracker/pkg/logger"
	wrap "github.com/NssGourav/shuttle-tracker/pkg/logger/wrapper"
	"github.com/NssGourav/shuttle-tracker/pkg/metrics"
)

const serviceName = "shuttle-tracker"

// Broadcaster receives the fleet snapshot after every simulation tick.
type Broadcaster interface {
	BroadcastShuttles(shuttles []models.Shuttle)
}

// Simulator nudges every shuttle position on a fixed interval, standing in
// for real GPS units on the demo campus. Each tick perturbs coordinates by
// up to ±0.00015 degrees and picks a speed between 10 and 30 km/h.
type Simulator struct {
	repo      ShuttleRepo
	broadcast Broadcaster
	interval  time.Duration
	l         logger.Logger
}

func NewSimulator(repo ShuttleRepo, broadcast Broadcaster, interval time.Duration, l logger.Logger) *Simulator {
	return &Simulator{
		repo:      repo,
		broadcast: broadcast,
		interval:  interval,
		l:         l,
	}
}

// Run ticks until ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) {
	ctx = wrap.WithAction(ctx, types.ActionSimulatorTick)
	s.l.Info(ctx, "shuttle simulator started", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.l.Info(ctx, "shuttle simulator stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Simulator) tick(ctx context.Context) {
	shuttles, err := s.repo.ListShuttles(ctx)
	if err != nil {
		s.l.Warn(ctx, "simulator failed to load shuttles", "error", err.Error())
		return
	}

	for i := range shuttles {
		shuttles[i] = jitter(shuttles[i])
		if err := s.repo.UpdatePosition(ctx, shuttles[i]); err != nil {
			s.l.Warn(ctx, "simulator failed to store position",
				"shuttle_id", shuttles[i].ID,
				"error", err.Error(),
			)
		}
	}

	metrics.SimulatorTicksTotal.WithLabelValues(serviceName).Inc()

	if s.broadcast != nil {
		s.broadcast.BroadcastShuttles(shuttles)
	}
}

func jitter(sh models.Shuttle) models.Shuttle {
	sh.Latitude += (rand.Float64() - 0.5) * 0.0003
	sh.Longitude += (rand.Float64() - 0.5) * 0.0003
	sh.SpeedKph = 10 + rand.IntN(21)
	sh.UpdatedAt = time.Now()
	return sh
}
