package policy

// RaiseEV returns the expected value of raising with invest chips on top of
// a pot, given the probability the opponent folds and the hero's equity
// when called. The opponent calling matches the investment, so the pot when
// called is pot + 2*invest. Used to rank a candidate bluff or semi-bluff
// against the zero-EV baseline of giving up.
func RaiseEV(equityIfCalled, foldP float64, pot, invest int) float64 {
	potIfCalled := float64(pot + 2*invest)
	won := equityIfCalled * potIfCalled
	lost := (1.0 - equityIfCalled) * float64(invest)
	return foldP*float64(pot) + (1.0-foldP)*(won-lost)
}
