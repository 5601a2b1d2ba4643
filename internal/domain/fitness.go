package domain

import "time"

// FitnessSample is one simulated wearable reading.
type FitnessSample struct {
	Timestamp      time.Time `json:"timestamp"`
	SleepHours     float64   `json:"sleep_hours"`
	Steps          int       `json:"steps"`
	MoodScore      float64   `json:"mood_score"`
	CaloriesBurned int       `json:"calories_burned"`
	WaterIntake    float64   `json:"water_intake"`
	HeartRate      int       `json:"heart_rate"`
	ActiveMinutes  int       `json:"active_minutes"`
}
