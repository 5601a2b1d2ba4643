// Package sensor simulates a wearable fitness feed. Samples follow
// hour-of-day activity and mood curves so dashboards show plausible
// daily rhythm without real hardware.
package sensor

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jmoren/wellspring/internal/domain"
)

// DefaultInterval is how often a new sample is produced.
const DefaultInterval = 5 * time.Second

type pattern struct {
	base     float64
	variance float64
}

var (
	sleepPattern    = pattern{base: 7.5, variance: 1.5}
	stepsPattern    = pattern{base: 8000, variance: 3000}
	moodPattern     = pattern{base: 7, variance: 2}
	caloriesPattern = pattern{base: 400, variance: 200}
	waterPattern    = pattern{base: 6, variance: 2}
)

// Simulator produces fitness samples on a fixed interval and keeps only
// the latest one.
type Simulator struct {
	interval time.Duration
	log      *zap.Logger
	rng      *rand.Rand
	now      func() time.Time

	mu     sync.RWMutex
	latest *domain.FitnessSample

	cancel context.CancelFunc
	done   chan struct{}
}

func NewSimulator(interval time.Duration, log *zap.Logger) *Simulator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Simulator{
		interval: interval,
		log:      log,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// Start launches the background sampling loop. Stop cancels it.
func (s *Simulator) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.record()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.record()
			}
		}
	}()
	s.log.Info("sensor simulator started", zap.Duration("interval", s.interval))
}

// Stop halts the sampling loop and waits for it to exit.
func (s *Simulator) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.log.Info("sensor simulator stopped")
}

// Latest returns the most recent sample, or ok=false before the first
// sample has been produced.
func (s *Simulator) Latest() (domain.FitnessSample, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return domain.FitnessSample{}, false
	}
	return *s.latest, true
}

func (s *Simulator) record() {
	sample := s.Sample()
	s.mu.Lock()
	s.latest = &sample
	s.mu.Unlock()
}

// Sample generates one sample at the current clock time.
func (s *Simulator) Sample() domain.FitnessSample {
	now := s.now()
	hour := now.Hour()

	activity := activityMultiplier(hour)
	mood := moodPattern.base + moodAdjustment(hour)

	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.FitnessSample{
		Timestamp:      now,
		SleepHours:     clampF(s.normal(sleepPattern.base, sleepPattern.variance), 4, 12),
		Steps:          int(math.Max(0, s.normal(stepsPattern.base*activity, stepsPattern.variance))),
		MoodScore:      clampF(s.normal(mood, moodPattern.variance), 1, 10),
		CaloriesBurned: int(math.Max(0, s.normal(caloriesPattern.base*activity, caloriesPattern.variance))),
		WaterIntake:    math.Max(0, s.normal(waterPattern.base, waterPattern.variance)),
		HeartRate:      60 + s.rng.Intn(41),
		ActiveMinutes:  20 + s.rng.Intn(101),
	}
}

func (s *Simulator) normal(mean, stddev float64) float64 {
	return mean + s.rng.NormFloat64()*stddev
}

// activityMultiplier scales steps and calories through the day: morning
// and evening peaks, a lunch bump, near-dormant nights.
func activityMultiplier(hour int) float64 {
	switch {
	case hour >= 6 && hour <= 9:
		return 1.2
	case hour >= 12 && hour <= 14:
		return 1.1
	case hour >= 17 && hour <= 19:
		return 1.3
	case hour >= 22 || hour <= 5:
		return 0.3
	default:
		return 1.0
	}
}

// moodAdjustment nudges mood up in the morning and evening, down in the
// afternoon dip.
func moodAdjustment(hour int) float64 {
	switch {
	case hour >= 7 && hour <= 11:
		return 0.5
	case hour >= 14 && hour <= 16:
		return -0.3
	case hour >= 18 && hour <= 21:
		return 0.3
	default:
		return 0
	}
}

func clampF(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
