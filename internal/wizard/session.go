package wizard

import (
	"sync"
	"time"

	"github.com/unclebandit/creatorhub-backend/internal/model"
)

// Session is one owner's wizard: form data, current step and last confirmed save.
// All methods are safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	ownerID  string
	draftID  string
	form     *Aggregator
	nav      *Navigator
	lastSave *time.Time
	loadErr  error
}

// State is the JSON view of a session.
type State struct {
	OwnerID      string         `json:"owner_id"`
	DraftID      string         `json:"draft_id,omitempty"`
	CurrentStep  int            `json:"current_step"`
	MaxStep      int            `json:"max_step"`
	StepLabel    string         `json:"step_label"`
	Form         model.FormData `json:"form"`
	Review       model.Review   `json:"review"`
	LastSaveTime *time.Time     `json:"last_save_time,omitempty"`
	DraftError   string         `json:"draft_error,omitempty"`
}

func NewSession(ownerID string) *Session {
	return &Session{
		ownerID: ownerID,
		form:    NewAggregator(model.FormData{}),
		nav:     NewNavigator(MaxStep),
	}
}

// Restore loads a stored draft into the session. The stored step is clamped.
func (s *Session) Restore(d *model.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draftID = d.ID
	s.form = NewAggregator(d.Payload.Form)
	s.nav.GoTo(d.Payload.CurrentStep)
	updated := d.UpdatedAt
	s.lastSave = &updated
}

// Recover applies a draft that could not be read when the session began and
// clears the load error. Edits made since then win over stored values; the
// stored step is used only if the user has not moved or typed yet.
func (s *Session) Recover(d *model.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadErr = nil
	if d == nil {
		return
	}

	edits := s.form.Snapshot()
	untouched := edits.IsEmpty() && s.nav.Current() == 1

	form := d.Payload.Form.Clone()
	form.Merge(edits)
	s.form = NewAggregator(form)
	s.draftID = d.ID
	updated := d.UpdatedAt
	s.lastSave = &updated
	if untouched {
		s.nav.GoTo(d.Payload.CurrentStep)
	}
}

// SetLoadError keeps a draft load failure for diagnostics.
func (s *Session) SetLoadError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

func (s *Session) LoadError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

func (s *Session) OwnerID() string { return s.ownerID }

func (s *Session) DraftID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftID
}

func (s *Session) SetDraftID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draftID = id
}

func (s *Session) Update(partial model.FormData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Update(partial)
}

func (s *Session) Form() model.FormData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Snapshot()
}

func (s *Session) CurrentStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Current()
}

func (s *Session) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Next()
}

func (s *Session) Previous() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Previous()
}

func (s *Session) GoTo(step int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.GoTo(step)
}

// MarkSaved records a confirmed save.
func (s *Session) MarkSaved(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSave = &at
}

func (s *Session) LastSaveTime() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastSave == nil {
		return nil
	}
	t := *s.lastSave
	return &t
}

// Payload projects the session for persistence, resuming at resumeStep.
func (s *Session) Payload(resumeStep int) model.DraftPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.DraftPayload{
		CurrentStep: s.nav.Clamp(resumeStep),
		Form:        s.form.Snapshot(),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		OwnerID:     s.ownerID,
		DraftID:     s.draftID,
		CurrentStep: s.nav.Current(),
		MaxStep:     s.nav.Max(),
		StepLabel:   StepLabel(s.nav.Current()),
		Form:        s.form.Snapshot(),
		Review:      s.form.Review(),
	}
	if s.lastSave != nil {
		t := *s.lastSave
		st.LastSaveTime = &t
	}
	if s.loadErr != nil {
		st.DraftError = s.loadErr.Error()
	}
	return st
}
