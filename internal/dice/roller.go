package dice

// Roller provides an interface for rolling dice
// Skills use it for resistance checks, weighted overrides and counter attacks
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// Percent rolls a single d100. A failing roller counts as the lowest result.
func Percent(r Roller) int {
	result, err := r.Roll(1, 100, 0)
	if err != nil || result == nil {
		return 1
	}
	return result.Total
}
