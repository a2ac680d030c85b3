package challenge

// Level names recognized by the daily cap table.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// defaultDailyCap applies to any level not in the cap table.
const defaultDailyCap = 5

// DailyCap returns the maximum number of answers a user may submit per
// calendar day for a (language, level, platform) combination. The cap
// depends only on the level.
func DailyCap(level string) int {
	switch level {
	case LevelBeginner:
		return 5
	case LevelIntermediate:
		return 7
	case LevelAdvanced:
		return 10
	default:
		return defaultDailyCap
	}
}
