// internal/controller/wizard_controller.go
package controller

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/creatorhub-backend/internal/errors"
	"github.com/unclebandit/creatorhub-backend/internal/notify"
	"github.com/unclebandit/creatorhub-backend/internal/service"
	"github.com/unclebandit/creatorhub-backend/internal/wizard"
)

type stateFunc func(ctx context.Context, ownerID string) (wizard.State, error)

type WizardController struct {
	Wizard    *service.WizardService
	Campaigns *service.CampaignService
	Inbox     *notify.Inbox
}

// Begin starts or resumes the owner's wizard.
func (c *WizardController) Begin(w http.ResponseWriter, r *http.Request) {
	c.respondState(w, r, c.Wizard.State)
}

func (c *WizardController) GetState(w http.ResponseWriter, r *http.Request) {
	c.respondState(w, r, c.Wizard.State)
}

func (c *WizardController) UpdateSection(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		badRequest(w, "invalid body")
		return
	}
	partial, err := wizard.DecodeSection(chi.URLParam(r, "section"), raw)
	if err != nil {
		if errors.Is(err, appErrors.ErrUnknownSection) {
			writeError(w, err)
			return
		}
		badRequest(w, err.Error())
		return
	}

	st, err := c.Wizard.Update(r.Context(), OwnerFromContext(r.Context()), partial)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (c *WizardController) Next(w http.ResponseWriter, r *http.Request) {
	c.respondState(w, r, c.Wizard.Next)
}

func (c *WizardController) Previous(w http.ResponseWriter, r *http.Request) {
	c.respondState(w, r, c.Wizard.Previous)
}

func (c *WizardController) GoTo(w http.ResponseWriter, r *http.Request) {
	step, err := strconv.Atoi(chi.URLParam(r, "step"))
	if err != nil {
		badRequest(w, "invalid step")
		return
	}
	st, err := c.Wizard.GoTo(r.Context(), OwnerFromContext(r.Context()), step)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// CompleteStep merges the posted step data and autosaves. The step advances
// even when the save fails; the outcome carries the notice either way.
func (c *WizardController) CompleteStep(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		badRequest(w, "invalid body")
		return
	}
	partial, err := wizard.DecodeForm(raw)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	res, err := c.Wizard.CompleteStep(r.Context(), OwnerFromContext(r.Context()), partial)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (c *WizardController) Submit(w http.ResponseWriter, r *http.Request) {
	res, err := c.Campaigns.Submit(r.Context(), OwnerFromContext(r.Context()))
	if err != nil && res == nil {
		writeError(w, err)
		return
	}
	// The campaign exists even if the draft could not be cleared.
	writeJSON(w, http.StatusCreated, res)
}

func (c *WizardController) Reset(w http.ResponseWriter, r *http.Request) {
	if err := c.Wizard.Reset(r.Context(), OwnerFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Notices drains the notices queued for the owner since the last call.
func (c *WizardController) Notices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"data": c.Inbox.Drain(OwnerFromContext(r.Context())),
	})
}

func (c *WizardController) respondState(w http.ResponseWriter, r *http.Request, get stateFunc) {
	st, err := get(r.Context(), OwnerFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
