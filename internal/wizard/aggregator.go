package wizard

import "github.com/unclebandit/creatorhub-backend/internal/model"

// Aggregator holds the partial campaign form across steps. It performs no
// validation; that happens once at submission.
type Aggregator struct {
	data model.FormData
}

func NewAggregator(initial model.FormData) *Aggregator {
	return &Aggregator{data: initial.Clone()}
}

// Update shallow-merges partial into the held data.
func (a *Aggregator) Update(partial model.FormData) {
	a.data.Merge(partial)
}

func (a *Aggregator) Basics() model.Basics   { return a.data.Basics() }
func (a *Aggregator) Content() model.Content { return a.data.Content() }
func (a *Aggregator) Budget() model.Budget   { return a.data.Budget() }
func (a *Aggregator) Review() model.Review   { return a.data.Review() }

func (a *Aggregator) SetBasics(p model.BasicsFields) {
	a.Update(model.FormData{BasicsFields: p})
}

func (a *Aggregator) SetContent(p model.ContentFields) {
	a.Update(model.FormData{ContentFields: p})
}

func (a *Aggregator) SetBudget(p model.BudgetFields) {
	a.Update(model.FormData{BudgetFields: p})
}

func (a *Aggregator) SetReview(p model.ReviewFields) {
	a.Update(model.FormData{ReviewFields: p})
}

// Snapshot returns a deep copy safe to hand to another goroutine.
func (a *Aggregator) Snapshot() model.FormData {
	return a.data.Clone()
}

func (a *Aggregator) Reset() {
	a.data = model.FormData{}
}
