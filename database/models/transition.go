package models

// ValidateTransition enforces the per-person state machine: a denial is only
// possible when the most recent vurdering is an expired forhandsvarsel, and at
// most one unexpired forhandsvarsel exists per person no matter what came
// after it. Every other type can follow any state. The vurderinger slice is
// the person's history, newest first. The repository re-checks this inside the
// create transaction under a per-person advisory lock, so two concurrent
// creations cannot both pass.
func ValidateTransition(vurderingType VurderingType, vurderinger []Vurdering) error {
	switch vurderingType {
	case VurderingTypeAvslag:
		if len(vurderinger) == 0 || vurderinger[0].Type != VurderingTypeForhandsvarsel {
			return NewValidationError("%s requires the latest vurdering to be a forhandsvarsel", vurderingType)
		}
		if !vurderinger[0].IsExpiredForhandsvarsel() {
			return NewValidationError("%s requires the forhandsvarsel svarfrist to have passed", vurderingType)
		}
	case VurderingTypeForhandsvarsel:
		for _, vurdering := range vurderinger {
			if vurdering.Type == VurderingTypeForhandsvarsel && !vurdering.IsExpiredForhandsvarsel() {
				return NewValidationError("an unexpired forhandsvarsel already exists for this person")
			}
		}
	}
	return nil
}
