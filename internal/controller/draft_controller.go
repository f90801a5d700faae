// internal/controller/draft_controller.go
package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/creatorhub-backend/internal/errors"
	"github.com/unclebandit/creatorhub-backend/internal/model"
	"github.com/unclebandit/creatorhub-backend/internal/service"
	"github.com/unclebandit/creatorhub-backend/internal/wizard"
)

// DraftController exposes the raw draft store.
type DraftController struct {
	Drafts *service.DraftStore
}

func (c *DraftController) GetDraft(w http.ResponseWriter, r *http.Request) {
	d, err := c.Drafts.Load(r.Context(), OwnerFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if d == nil {
		writeError(w, appErrors.ErrDraftNotFound)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (c *DraftController) SaveDraft(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		badRequest(w, "invalid body")
		return
	}

	var payload model.DraftPayload
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		badRequest(w, "invalid body: "+err.Error())
		return
	}
	payload.CurrentStep = wizard.ClampStep(payload.CurrentStep)

	d, err := c.Drafts.Save(r.Context(), OwnerFromContext(r.Context()), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (c *DraftController) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := c.Drafts.Clear(r.Context(), OwnerFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
