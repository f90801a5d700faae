package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/creatorhub-backend/internal/errors"
	"github.com/unclebandit/creatorhub-backend/internal/model"
)

func str(s string) *string { return &s }

func TestUpdateMergesWithoutLoss(t *testing.T) {
	agg := NewAggregator(model.FormData{})
	agg.Update(model.FormData{BasicsFields: model.BasicsFields{Name: str("Summer Launch")}})
	agg.Update(model.FormData{BasicsFields: model.BasicsFields{Description: str("Beach wear")}})

	b := agg.Basics()
	assert.Equal(t, "Summer Launch", b.Name)
	assert.Equal(t, "Beach wear", b.Description)
}

func TestSectionSettersPassThrough(t *testing.T) {
	agg := NewAggregator(model.FormData{})
	budget := 1200.0
	accepted := true

	agg.SetBasics(model.BasicsFields{Name: str("Launch")})
	agg.SetContent(model.ContentFields{Platforms: &[]string{"tiktok"}})
	agg.SetBudget(model.BudgetFields{TotalBudget: &budget})
	agg.SetReview(model.ReviewFields{TermsAccepted: &accepted})

	r := agg.Review()
	assert.Equal(t, "Launch", r.Basics.Name)
	assert.Equal(t, []string{"tiktok"}, r.Content.Platforms)
	assert.Equal(t, 1200.0, r.Budget.TotalBudget)
	assert.True(t, r.TermsAccepted)
}

func TestGettersDefaultMissingFields(t *testing.T) {
	agg := NewAggregator(model.FormData{})

	assert.Equal(t, model.Basics{}, agg.Basics())
	assert.Equal(t, []string{}, agg.Content().Hashtags)
	assert.Zero(t, agg.Budget().MaxCreators)
}

func TestSnapshotIsolation(t *testing.T) {
	agg := NewAggregator(model.FormData{})
	agg.SetBasics(model.BasicsFields{Name: str("A")})

	snap := agg.Snapshot()
	agg.SetBasics(model.BasicsFields{Name: str("B")})
	assert.Equal(t, "A", *snap.Name)

	agg.Reset()
	assert.True(t, agg.Snapshot().IsEmpty())
}

func TestDecodeSection(t *testing.T) {
	partial, err := DecodeSection(SectionBudget, []byte(`{"total_budget": 300, "currency": "EUR"}`))
	require.NoError(t, err)
	assert.Equal(t, 300.0, *partial.TotalBudget)
	assert.Nil(t, partial.Name)

	_, err = DecodeSection(SectionBudget, []byte(`{"name": "wrong section"}`))
	assert.Error(t, err)

	_, err = DecodeSection("pricing", []byte(`{}`))
	assert.ErrorIs(t, err, appErrors.ErrUnknownSection)
}

func TestDecodeForm(t *testing.T) {
	partial, err := DecodeForm([]byte(`{"name": "Launch", "platforms": ["youtube"]}`))
	require.NoError(t, err)
	assert.Equal(t, "Launch", *partial.Name)

	empty, err := DecodeForm(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = DecodeForm([]byte(`{"unknown": 1}`))
	assert.Error(t, err)
}
