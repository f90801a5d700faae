// internal/service/wizard_service.go
package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	appErrors "github.com/unclebandit/creatorhub-backend/internal/errors"
	"github.com/unclebandit/creatorhub-backend/internal/metrics"
	"github.com/unclebandit/creatorhub-backend/internal/model"
	"github.com/unclebandit/creatorhub-backend/internal/wizard"
)

// WizardService holds one wizard session per owner and wires it to the draft store.
type WizardService struct {
	Drafts      *DraftStore
	Coordinator *wizard.Coordinator
	Log         *zap.Logger

	mu       sync.Mutex
	sessions map[string]*wizard.Session
}

// StepResult is returned by CompleteStep.
type StepResult struct {
	Outcome wizard.Outcome `json:"outcome"`
	State   wizard.State   `json:"state"`
}

func NewWizardService(drafts *DraftStore, coord *wizard.Coordinator, log *zap.Logger) *WizardService {
	return &WizardService{
		Drafts:      drafts,
		Coordinator: coord,
		Log:         log,
		sessions:    make(map[string]*wizard.Session),
	}
}

// Begin returns the owner's session, creating it from the stored draft if needed.
// A draft that cannot be loaded leaves the session empty with the error kept on
// it; later calls retry the load until it succeeds.
func (s *WizardService) Begin(ctx context.Context, ownerID string) (*wizard.Session, error) {
	if ownerID == "" {
		return nil, appErrors.ErrMissingOwner
	}

	s.mu.Lock()
	if sess, ok := s.sessions[ownerID]; ok {
		s.mu.Unlock()
		if sess.LoadError() != nil {
			s.retryLoad(ctx, sess)
		}
		return sess, nil
	}
	s.mu.Unlock()

	sess := wizard.NewSession(ownerID)
	draft, err := s.Drafts.Load(ctx, ownerID)
	switch {
	case err != nil:
		s.Log.Error("could not load draft, starting empty", zap.String("owner_id", ownerID), zap.Error(err))
		sess.SetLoadError(err)
	case draft != nil:
		sess.Restore(draft)
		s.Log.Info("draft restored", zap.String("owner_id", ownerID), zap.String("draft_id", draft.ID), zap.Int("step", sess.CurrentStep()))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another request may have created the session while the draft was loading.
	if existing, ok := s.sessions[ownerID]; ok {
		return existing, nil
	}
	s.sessions[ownerID] = sess
	metrics.ActiveWizardSessions.Set(float64(len(s.sessions)))
	return sess, nil
}

// retryLoad reads the draft again for a session whose first load failed.
func (s *WizardService) retryLoad(ctx context.Context, sess *wizard.Session) {
	draft, err := s.Drafts.Load(ctx, sess.OwnerID())
	if err != nil {
		s.Log.Warn("draft still unavailable", zap.String("owner_id", sess.OwnerID()), zap.Error(err))
		sess.SetLoadError(err)
		return
	}
	sess.Recover(draft)
	s.Log.Info("draft recovered", zap.String("owner_id", sess.OwnerID()), zap.Bool("found", draft != nil))
}

func (s *WizardService) State(ctx context.Context, ownerID string) (wizard.State, error) {
	sess, err := s.Begin(ctx, ownerID)
	if err != nil {
		return wizard.State{}, err
	}
	return sess.State(), nil
}

// Update merges a partial form into the session without saving.
func (s *WizardService) Update(ctx context.Context, ownerID string, partial model.FormData) (wizard.State, error) {
	sess, err := s.Begin(ctx, ownerID)
	if err != nil {
		return wizard.State{}, err
	}
	sess.Update(partial)
	return sess.State(), nil
}

func (s *WizardService) Next(ctx context.Context, ownerID string) (wizard.State, error) {
	return s.navigate(ctx, ownerID, (*wizard.Session).Next)
}

func (s *WizardService) Previous(ctx context.Context, ownerID string) (wizard.State, error) {
	return s.navigate(ctx, ownerID, (*wizard.Session).Previous)
}

func (s *WizardService) GoTo(ctx context.Context, ownerID string, step int) (wizard.State, error) {
	return s.navigate(ctx, ownerID, func(sess *wizard.Session) int { return sess.GoTo(step) })
}

func (s *WizardService) navigate(ctx context.Context, ownerID string, move func(*wizard.Session) int) (wizard.State, error) {
	sess, err := s.Begin(ctx, ownerID)
	if err != nil {
		return wizard.State{}, err
	}
	move(sess)
	return sess.State(), nil
}

// CompleteStep merges stepData, autosaves within the coordinator's timeout and
// always advances to the next step.
func (s *WizardService) CompleteStep(ctx context.Context, ownerID string, stepData model.FormData) (*StepResult, error) {
	sess, err := s.Begin(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	sess.Update(stepData)
	step := sess.CurrentStep()
	payload := sess.Payload(step + 1)

	save := func(ctx context.Context) error {
		// Saving now would overwrite a stored draft this session never read.
		if lerr := sess.LoadError(); lerr != nil {
			return fmt.Errorf("%w: %v", appErrors.ErrDraftNotLoaded, lerr)
		}
		d, err := s.Drafts.Save(ctx, ownerID, payload)
		if err != nil {
			return err
		}
		sess.SetDraftID(d.ID)
		return nil
	}

	outcome := s.Coordinator.CompleteStep(ctx, ownerID, step, save, sess.MarkSaved)
	sess.Next()

	return &StepResult{Outcome: outcome, State: sess.State()}, nil
}

// Reset deletes the stored draft and forgets the session.
func (s *WizardService) Reset(ctx context.Context, ownerID string) error {
	sess, err := s.Begin(ctx, ownerID)
	if err != nil {
		return err
	}

	draftID := sess.DraftID()
	if draftID == "" {
		// The session may predate a save made elsewhere; look the draft up.
		d, err := s.Drafts.Load(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("reset wizard: %w", err)
		}
		if d != nil {
			draftID = d.ID
		}
	}

	if err := s.Drafts.Clear(ctx, ownerID, draftID); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	s.Drop(ownerID)
	return nil
}

// Drop forgets the owner's session without touching the stored draft.
func (s *WizardService) Drop(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, ownerID)
	metrics.ActiveWizardSessions.Set(float64(len(s.sessions)))
}
