// Package wizard holds the in-memory state of the campaign creation wizard:
// form data, step navigation and the autosave race run on step completion.
package wizard

// StepLabels names every wizard step in order. Its length is the step count
// used both for navigation bounds and for notices.
var StepLabels = []string{
	"Campaign Basics",
	"Talent Matchmaking",
	"Content Requirements",
	"Budget & Payment",
	"Timeline & Deliverables",
	"Review & Launch",
}

// MaxStep is the last wizard step.
var MaxStep = len(StepLabels)

// StepLabel returns the label of a 1-based step, or "" when out of range.
func StepLabel(step int) string {
	if step < 1 || step > len(StepLabels) {
		return ""
	}
	return StepLabels[step-1]
}

// ClampStep bounds step to [1, MaxStep].
func ClampStep(step int) int {
	return min(max(step, 1), MaxStep)
}
