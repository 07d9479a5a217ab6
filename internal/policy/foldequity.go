package policy

// FoldProbability estimates how often the opponent folds to a raise to
// raiseTo given the assumed range topFrac. A looser range (higher topFrac)
// folds more; a bigger raise relative to the pot folds more. Both
// relationships are monotonic by construction, and the result is kept
// inside [0.05, 0.75]: nobody always folds, nobody never folds.
func FoldProbability(topFrac float64, raiseTo, pot int) float64 {
	tightness := 1.0 - topFrac

	potRef := pot
	if potRef < 1 {
		potRef = 1
	}
	sizeTerm := 0.35 * float64(raiseTo) / float64(potRef)
	if sizeTerm > 1.0 {
		sizeTerm = 1.0
	}

	base := 0.40*topFrac + 0.10
	foldP := base + sizeTerm - 0.25*tightness

	if foldP < 0.05 {
		foldP = 0.05
	}
	if foldP > 0.75 {
		foldP = 0.75
	}
	return foldP
}
