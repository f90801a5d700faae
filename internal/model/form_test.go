package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/creatorhub-backend/internal/errors"
)

func ptr[T any](v T) *T { return &v }

func TestMergeKeepsAbsentFields(t *testing.T) {
	var f FormData
	f.Merge(FormData{BasicsFields: BasicsFields{Name: ptr("Summer Launch")}})
	f.Merge(FormData{BasicsFields: BasicsFields{Description: ptr("Beach wear")}})

	assert.Equal(t, "Summer Launch", *f.Name)
	assert.Equal(t, "Beach wear", *f.Description)
}

func TestMergeOverwritesPresentFields(t *testing.T) {
	var f FormData
	f.Merge(FormData{BudgetFields: BudgetFields{TotalBudget: ptr(100.0), Currency: ptr("USD")}})
	f.Merge(FormData{BudgetFields: BudgetFields{TotalBudget: ptr(250.0)}})

	assert.Equal(t, 250.0, *f.TotalBudget)
	assert.Equal(t, "USD", *f.Currency)
}

func TestMergeCopiesLists(t *testing.T) {
	platforms := []string{"instagram"}
	var f FormData
	f.Merge(FormData{ContentFields: ContentFields{Platforms: &platforms}})
	platforms[0] = "tiktok"

	assert.Equal(t, []string{"instagram"}, *f.Platforms)
}

func TestSectionViewsAreDefaulted(t *testing.T) {
	var f FormData

	b := f.Basics()
	assert.Equal(t, "", b.Name)

	c := f.Content()
	assert.NotNil(t, c.Platforms)
	assert.Empty(t, c.Platforms)
	assert.NotNil(t, c.CreatorIDs)

	assert.Zero(t, f.Budget().TotalBudget)
	assert.False(t, f.Review().TermsAccepted)
}

func TestJSONFlattensSections(t *testing.T) {
	raw := `{"name":"Launch","platforms":["tiktok"],"total_budget":500,"terms_accepted":true}`

	var f FormData
	require.NoError(t, json.Unmarshal([]byte(raw), &f))
	assert.Equal(t, "Launch", *f.Name)
	assert.Equal(t, []string{"tiktok"}, *f.Platforms)
	assert.Nil(t, f.Description)

	out, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestValidateReportsFieldKeys(t *testing.T) {
	var f FormData
	err := f.Validate()
	require.Error(t, err)

	var ve *appErrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "required", ve.Fields["basics.name"])
	assert.Equal(t, "gt", ve.Fields["budget.total_budget"])
	assert.Equal(t, "required", ve.Fields["terms_accepted"])
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	f := FormData{
		BasicsFields:  BasicsFields{Name: ptr("Launch"), StartDate: ptr("2026-06-01")},
		ContentFields: ContentFields{Platforms: &[]string{"instagram"}, ContentTypes: &[]string{"reel"}, Hashtags: &[]string{"#summer"}},
		BudgetFields:  BudgetFields{TotalBudget: ptr(1000.0), Currency: ptr("USD"), PaymentModel: ptr("fixed")},
		ReviewFields:  ReviewFields{TermsAccepted: ptr(true)},
	}
	assert.NoError(t, f.Validate())
}

func TestCloneIsIndependent(t *testing.T) {
	f := FormData{BasicsFields: BasicsFields{Name: ptr("A")}}
	c := f.Clone()
	*c.Name = "B"
	assert.Equal(t, "A", *f.Name)
	assert.True(t, FormData{}.IsEmpty())
	assert.False(t, f.IsEmpty())
}

func TestNoticeText(t *testing.T) {
	n := Notice{Title: "Step 2 Complete", Message: "Talent Matchmaking saved successfully"}
	assert.Equal(t, "Step 2 Complete — Talent Matchmaking saved successfully", n.Text())
}
