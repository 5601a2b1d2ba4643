package risk

import (
	"github.com/jmoren/wellspring/internal/domain"
)

// ComputeLevel maps a profile to a risk level in [1,10]. It is a pure,
// total function: every category contributes a bounded number of points
// and the cumulative score is banded through fixed thresholds, so the
// result is monotone non-decreasing in each worsening factor.
func ComputeLevel(profile domain.Profile) int {
	p := profile.Normalized()

	score := 0
	factors := []func(domain.Profile) int{
		scoreSleep,
		scoreStressAnxiety,
		scoreMood,
		scoreEnergy,
		scoreActivity,
		scoreWorkHours,
		scoreSocialMedia,
		scoreDiet,
		scoreSubstances,
	}
	for _, f := range factors {
		score += f(p)
	}

	return bandScore(score)
}

// scoreSleep contributes 0-5 points: up to 3 for quantity, up to 2 for quality.
func scoreSleep(p domain.Profile) int {
	pts := 0
	switch {
	case p.SleepHours < 5:
		pts += 3
	case p.SleepHours < 6:
		pts += 2
	case p.SleepHours < 7:
		pts += 1
	case p.SleepHours > 9:
		pts += 1
	}
	switch p.SleepQuality {
	case domain.SleepPoor:
		pts += 2
	case domain.SleepFair:
		pts += 1
	}
	return pts
}

// scoreStressAnxiety contributes 0-6 points.
func scoreStressAnxiety(p domain.Profile) int {
	pts := 0
	switch p.StressLevel {
	case domain.StressHigh:
		pts += 3
	case domain.StressMedium:
		pts += 1
	}
	switch p.AnxietyFrequency {
	case domain.AnxietyOften, domain.AnxietyAlways:
		pts += 3
	case domain.AnxietySometimes:
		pts += 1
	}
	return pts
}

// scoreMood contributes 0-3 points.
func scoreMood(p domain.Profile) int {
	switch p.Mood {
	case domain.MoodVerySad, domain.MoodSad:
		return 3
	case domain.MoodNeutral:
		return 1
	}
	return 0
}

// scoreEnergy contributes 0-2 points. Medium energy only counts when
// paired with high stress.
func scoreEnergy(p domain.Profile) int {
	switch p.EnergyLevel {
	case domain.EnergyVeryLow, domain.EnergyLow:
		return 2
	case domain.EnergyMedium:
		if p.StressLevel == domain.StressHigh {
			return 1
		}
	}
	return 0
}

// scoreActivity contributes 0-2 points.
func scoreActivity(p domain.Profile) int {
	switch {
	case p.PhysicalActivityHours < 1:
		return 2
	case p.PhysicalActivityHours < 2:
		return 1
	}
	return 0
}

// scoreWorkHours contributes 0-2 points.
func scoreWorkHours(p domain.Profile) int {
	switch {
	case p.WorkHours > 60:
		return 2
	case p.WorkHours > 50:
		return 1
	}
	return 0
}

// scoreSocialMedia contributes 0-2 points.
func scoreSocialMedia(p domain.Profile) int {
	switch {
	case p.SocialMediaHours > 8:
		return 2
	case p.SocialMediaHours > 6:
		return 1
	}
	return 0
}

// scoreDiet contributes 0-1 points.
func scoreDiet(p domain.Profile) int {
	if p.Diet == domain.DietUnhealthy {
		return 1
	}
	return 0
}

// scoreSubstances contributes 0-3 points: up to 2 for smoking, 1 for alcohol.
func scoreSubstances(p domain.Profile) int {
	pts := 0
	switch p.Smoking {
	case domain.SmokingRegular, domain.SmokingHeavy:
		pts += 2
	case domain.SmokingOccasional:
		pts += 1
	}
	if p.AlcoholConsumption == domain.AlcoholRegularly {
		pts += 1
	}
	return pts
}

// bandScore maps the cumulative point score to the 1-10 risk scale.
func bandScore(score int) int {
	thresholds := []struct {
		max   int
		level int
	}{
		{2, 1}, {4, 2}, {6, 3}, {8, 4}, {10, 5},
		{12, 6}, {14, 7}, {16, 8}, {18, 9},
	}
	for _, t := range thresholds {
		if score <= t.max {
			return t.level
		}
	}
	return 10
}
