package policy

// Range inference bounds: the assumed opponent range never narrows past the
// top 10% of hands and never loosens past the top 70%.
const (
	minTopFraction = 0.10
	maxTopFraction = 0.70
)

// InferTopFraction maps observed betting pressure to an assumed opponent
// range, expressed as "top X of all starting hands". Larger bets relative
// to the pot and later streets both imply a narrower, stronger holding.
func InferTopFraction(boardLen int, callAmount, pot int) float64 {
	pressure := 0.0
	if pot+callAmount > 0 {
		pressure = float64(callAmount) / float64(pot+callAmount)
	}

	var base float64
	switch boardLen {
	case 0:
		base = 0.55
	case 3:
		base = 0.45
	case 4:
		base = 0.40
	case 5:
		base = 0.35
	default:
		base = 0.50
	}

	topFrac := base - 0.60*pressure
	if topFrac < minTopFraction {
		topFrac = minTopFraction
	}
	if topFrac > maxTopFraction {
		topFrac = maxTopFraction
	}
	return topFrac
}
