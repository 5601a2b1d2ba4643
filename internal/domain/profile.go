package domain

// Attribute values the intake form collects. Scoring treats unknown
// strings as the neutral middle of each scale.
const (
	StressLow    = "Low"
	StressMedium = "Medium"
	StressHigh   = "High"

	SleepPoor = "Poor"
	SleepFair = "Fair"
	SleepGood = "Good"

	AnxietyNever     = "Never"
	AnxietyRarely    = "Rarely"
	AnxietySometimes = "Sometimes"
	AnxietyOften     = "Often"
	AnxietyAlways    = "Always"

	MoodVerySad  = "Very Sad"
	MoodSad      = "Sad"
	MoodNeutral  = "Neutral"
	MoodHappy    = "Happy"
	MoodVeryHappy = "Very Happy"

	EnergyVeryLow  = "Very Low"
	EnergyLow      = "Low"
	EnergyMedium   = "Medium"
	EnergyHigh     = "High"
	EnergyVeryHigh = "Very High"

	DietHealthy   = "Healthy"
	DietAverage   = "Average"
	DietUnhealthy = "Unhealthy"

	SmokingNone       = "Non-Smoker"
	SmokingOccasional = "Occasional Smoker"
	SmokingRegular    = "Regular Smoker"
	SmokingHeavy      = "Heavy Smoker"

	AlcoholNever     = "Never"
	AlcoholRarely    = "Rarely"
	AlcoholSocially  = "Socially"
	AlcoholRegularly = "Regularly"
)

// Profile is the lifestyle/mental-health intake for one user. It is a
// read-only input to risk scoring and prompt construction.
type Profile struct {
	Age                   int     `json:"age"`
	Occupation            string  `json:"occupation"`
	StressLevel           string  `json:"stress_level"`
	SleepHours            float64 `json:"sleep_hours"`
	SleepQuality          string  `json:"sleep_quality"`
	WorkHours             int     `json:"work_hours"`
	PhysicalActivityHours float64 `json:"physical_activity_hours"`
	Mood                  string  `json:"mood"`
	AnxietyFrequency      string  `json:"anxiety_frequency"`
	EnergyLevel           string  `json:"energy_level"`
	Diet                  string  `json:"diet"`
	Smoking               string  `json:"smoking"`
	AlcoholConsumption    string  `json:"alcohol_consumption"`
	SocialMediaHours      float64 `json:"social_media_hours"`
}

// Normalized returns a copy with zero-valued fields replaced by neutral
// defaults, so that a partially filled form scores as "average".
func (p Profile) Normalized() Profile {
	if p.Age == 0 {
		p.Age = 30
	}
	if p.StressLevel == "" {
		p.StressLevel = StressMedium
	}
	if p.SleepHours == 0 {
		p.SleepHours = 7
	}
	if p.SleepQuality == "" {
		p.SleepQuality = SleepFair
	}
	if p.WorkHours == 0 {
		p.WorkHours = 40
	}
	if p.PhysicalActivityHours == 0 {
		p.PhysicalActivityHours = 3
	}
	if p.Mood == "" {
		p.Mood = MoodNeutral
	}
	if p.AnxietyFrequency == "" {
		p.AnxietyFrequency = AnxietySometimes
	}
	if p.EnergyLevel == "" {
		p.EnergyLevel = EnergyMedium
	}
	if p.Diet == "" {
		p.Diet = DietAverage
	}
	if p.Smoking == "" {
		p.Smoking = SmokingNone
	}
	if p.AlcoholConsumption == "" {
		p.AlcoholConsumption = AlcoholRarely
	}
	if p.SocialMediaHours == 0 {
		p.SocialMediaHours = 3
	}
	return p
}
