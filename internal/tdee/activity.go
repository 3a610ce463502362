package tdee

// ActivityLevel is one of the daily step-count bands a user can pick, with the
// multiplier applied to BMR.
type ActivityLevel struct {
	Key         string  `json:"key"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

// activityLevels is the single source of truth for valid activity levels, in
// display order. Also used for input validation.
var activityLevels = []ActivityLevel{
	{Key: "sedentary", Multiplier: 1.2, Description: "Less than 5,000 steps per day"},
	{Key: "light", Multiplier: 1.375, Description: "10,000 to 14,999 steps per day"},
	{Key: "moderate", Multiplier: 1.55, Description: "15,000 to 19,999 steps per day"},
	{Key: "active", Multiplier: 1.725, Description: "20,000 to 24,999 steps per day"},
	{Key: "very_active", Multiplier: 1.9, Description: "25,000 or more steps per day"},
}

// ActivityLevels returns the valid activity levels in display order.
func ActivityLevels() []ActivityLevel {
	out := make([]ActivityLevel, len(activityLevels))
	copy(out, activityLevels)
	return out
}

// Multiplier looks up the TDEE multiplier for an activity level key.
func Multiplier(key string) (float64, bool) {
	for _, l := range activityLevels {
		if l.Key == key {
			return l.Multiplier, true
		}
	}
	return 0, false
}
