// internal/model/form.go
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/unclebandit/creatorhub-backend/internal/errors"
)

// BasicsFields is the optional-field shape of the basics section.
// A nil field means "not present" and is left untouched on merge.
type BasicsFields struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Objective   *string `json:"objective,omitempty"`
	Category    *string `json:"category,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

type ContentFields struct {
	Platforms    *[]string `json:"platforms,omitempty"`
	ContentTypes *[]string `json:"content_types,omitempty"`
	Deliverables *[]string `json:"deliverables,omitempty"`
	Guidelines   *string   `json:"guidelines,omitempty"`
	Hashtags     *[]string `json:"hashtags,omitempty"`
	CreatorIDs   *[]string `json:"creator_ids,omitempty"`
}

type BudgetFields struct {
	TotalBudget  *float64 `json:"total_budget,omitempty"`
	Currency     *string  `json:"currency,omitempty"`
	PaymentModel *string  `json:"payment_model,omitempty"`
	MaxCreators  *int     `json:"max_creators,omitempty"`
}

type ReviewFields struct {
	TermsAccepted *bool   `json:"terms_accepted,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// FormData is the sparse campaign form held across wizard steps.
// The embedded sections flatten into a single JSON object.
type FormData struct {
	BasicsFields
	ContentFields
	BudgetFields
	ReviewFields
}

// Merge copies every present field of src into f. Absent fields keep their value.
func (f *FormData) Merge(src FormData) {
	mergeValue(&f.Name, src.Name)
	mergeValue(&f.Description, src.Description)
	mergeValue(&f.Objective, src.Objective)
	mergeValue(&f.Category, src.Category)
	mergeValue(&f.StartDate, src.StartDate)
	mergeValue(&f.EndDate, src.EndDate)

	mergeList(&f.Platforms, src.Platforms)
	mergeList(&f.ContentTypes, src.ContentTypes)
	mergeList(&f.Deliverables, src.Deliverables)
	mergeValue(&f.Guidelines, src.Guidelines)
	mergeList(&f.Hashtags, src.Hashtags)
	mergeList(&f.CreatorIDs, src.CreatorIDs)

	mergeValue(&f.TotalBudget, src.TotalBudget)
	mergeValue(&f.Currency, src.Currency)
	mergeValue(&f.PaymentModel, src.PaymentModel)
	mergeValue(&f.MaxCreators, src.MaxCreators)

	mergeValue(&f.TermsAccepted, src.TermsAccepted)
	mergeValue(&f.Notes, src.Notes)
}

// Clone returns a deep copy.
func (f FormData) Clone() FormData {
	var out FormData
	out.Merge(f)
	return out
}

func (f FormData) IsEmpty() bool {
	return reflect.ValueOf(f).IsZero()
}

func mergeValue[T any](dst **T, src *T) {
	if src == nil {
		return
	}
	v := *src
	*dst = &v
}

func mergeList(dst **[]string, src *[]string) {
	if src == nil {
		return
	}
	v := append([]string{}, (*src)...)
	*dst = &v
}

// Section views. Every field is present; missing input becomes "", 0 or an empty list.

type Basics struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
	Objective   string `json:"objective" validate:"omitempty,oneof=awareness engagement conversions ugc"`
	Category    string `json:"category"`
	StartDate   string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type Content struct {
	Platforms    []string `json:"platforms" validate:"min=1,dive,required"`
	ContentTypes []string `json:"content_types" validate:"min=1,dive,required"`
	Deliverables []string `json:"deliverables"`
	Guidelines   string   `json:"guidelines" validate:"max=5000"`
	Hashtags     []string `json:"hashtags" validate:"dive,startswith=#"`
	CreatorIDs   []string `json:"creator_ids"`
}

type Budget struct {
	TotalBudget  float64 `json:"total_budget" validate:"gt=0"`
	Currency     string  `json:"currency" validate:"omitempty,len=3"`
	PaymentModel string  `json:"payment_model" validate:"omitempty,oneof=fixed per_post commission"`
	MaxCreators  int     `json:"max_creators" validate:"gte=0"`
}

type Review struct {
	Basics        Basics  `json:"basics"`
	Content       Content `json:"content"`
	Budget        Budget  `json:"budget"`
	TermsAccepted bool    `json:"terms_accepted" validate:"required"`
	Notes         string  `json:"notes"`
}

func (f FormData) Basics() Basics {
	return Basics{
		Name:        deref(f.Name),
		Description: deref(f.Description),
		Objective:   deref(f.Objective),
		Category:    deref(f.Category),
		StartDate:   deref(f.StartDate),
		EndDate:     deref(f.EndDate),
	}
}

func (f FormData) Content() Content {
	return Content{
		Platforms:    derefList(f.Platforms),
		ContentTypes: derefList(f.ContentTypes),
		Deliverables: derefList(f.Deliverables),
		Guidelines:   deref(f.Guidelines),
		Hashtags:     derefList(f.Hashtags),
		CreatorIDs:   derefList(f.CreatorIDs),
	}
}

func (f FormData) Budget() Budget {
	return Budget{
		TotalBudget:  deref(f.TotalBudget),
		Currency:     deref(f.Currency),
		PaymentModel: deref(f.PaymentModel),
		MaxCreators:  deref(f.MaxCreators),
	}
}

func (f FormData) Review() Review {
	return Review{
		Basics:        f.Basics(),
		Content:       f.Content(),
		Budget:        f.Budget(),
		TermsAccepted: deref(f.TermsAccepted),
		Notes:         deref(f.Notes),
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func derefList(p *[]string) []string {
	if p == nil {
		return []string{}
	}
	return append([]string{}, (*p)...)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks every section of the form. It is meant for final submission;
// intermediate saves accept partial data.
func (f FormData) Validate() error {
	// Review embeds the other three sections, so one pass covers the whole form.
	err := validate.Struct(f.Review())
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		// Drop the root struct name so keys read "basics.name", "terms_accepted", ...
		key := fe.Namespace()
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		fields[key] = fe.Tag()
	}
	return &appErrors.ValidationError{Fields: fields}
}
