package sensor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixedClock(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, 6, 1, hour, 30, 0, 0, time.UTC)
	}
}

func TestSimulator_SampleBounds(t *testing.T) {
	s := NewSimulator(DefaultInterval, zap.NewNop())
	s.now = fixedClock(10)

	for i := 0; i < 200; i++ {
		sample := s.Sample()
		assert.GreaterOrEqual(t, sample.SleepHours, 4.0)
		assert.LessOrEqual(t, sample.SleepHours, 12.0)
		assert.GreaterOrEqual(t, sample.MoodScore, 1.0)
		assert.LessOrEqual(t, sample.MoodScore, 10.0)
		assert.GreaterOrEqual(t, sample.Steps, 0)
		assert.GreaterOrEqual(t, sample.CaloriesBurned, 0)
		assert.GreaterOrEqual(t, sample.WaterIntake, 0.0)
		assert.GreaterOrEqual(t, sample.HeartRate, 60)
		assert.LessOrEqual(t, sample.HeartRate, 100)
		assert.GreaterOrEqual(t, sample.ActiveMinutes, 20)
		assert.LessOrEqual(t, sample.ActiveMinutes, 120)
	}
}

func TestSimulator_NightIsQuieterThanEvening(t *testing.T) {
	s := NewSimulator(DefaultInterval, zap.NewNop())

	mean := func(hour int) float64 {
		s.now = fixedClock(hour)
		total := 0
		for i := 0; i < 300; i++ {
			total += s.Sample().Steps
		}
		return float64(total) / 300
	}

	night := mean(3)
	evening := mean(18)
	assert.Less(t, night, evening)
}

func TestActivityMultiplier(t *testing.T) {
	assert.Equal(t, 1.2, activityMultiplier(7))
	assert.Equal(t, 1.1, activityMultiplier(13))
	assert.Equal(t, 1.3, activityMultiplier(18))
	assert.Equal(t, 0.3, activityMultiplier(23))
	assert.Equal(t, 0.3, activityMultiplier(2))
	assert.Equal(t, 1.0, activityMultiplier(10))
}

func TestMoodAdjustment(t *testing.T) {
	assert.Equal(t, 0.5, moodAdjustment(8))
	assert.Equal(t, -0.3, moodAdjustment(15))
	assert.Equal(t, 0.3, moodAdjustment(20))
	assert.Equal(t, 0.0, moodAdjustment(12))
}

func TestSimulator_LatestBeforeFirstSample(t *testing.T) {
	s := NewSimulator(DefaultInterval, zap.NewNop())

	_, ok := s.Latest()
	assert.False(t, ok)
}

func TestSimulator_StartRecordsImmediately(t *testing.T) {
	s := NewSimulator(time.Hour, zap.NewNop())
	s.Start(context.Background())
	defer s.Stop()

	require.Eventually(t, func() bool {
		_, ok := s.Latest()
		return ok
	}, time.Second, 10*time.Millisecond)

	sample, ok := s.Latest()
	require.True(t, ok)
	assert.False(t, sample.Timestamp.IsZero())
}
