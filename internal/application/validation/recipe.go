package validation

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"saukstas/internal/domain/model"
)

// RecipeInput is a cleaned recipe form. Text fields are HTML escaped. Length
// bounds count visible characters, so stored text can be longer than the bound.
type RecipeInput struct {
	Title       string
	Intro       string
	Categories  []string
	Tags        []string
	Ingredients []string
	Steps       []string
	PrepTime    int
	CookTime    int
	Servings    int
	Notes       string
	Status      model.RecipeStatus
}

type recipeFields struct {
	Title       string   `form:"title" validate:"min=3,max=200"`
	Intro       string   `form:"intro" validate:"max=500"`
	Tags        []string `form:"tags" validate:"max=20,dive,max=50"`
	Ingredients []string `form:"ingredients" validate:"min=1,dive,max=1000"`
	Steps       []string `form:"steps" validate:"min=1,dive,max=1000"`
	PrepTime    int      `form:"prep_time" validate:"min=0,max=10000"`
	CookTime    int      `form:"cook_time" validate:"min=0,max=10000"`
	Servings    int      `form:"servings" validate:"min=1,max=1000"`
	Notes       string   `form:"notes" validate:"max=5000"`
	Status      string   `form:"status" validate:"oneof=draft published"`
}

// Recipe validates a recipe form.
func Recipe(f Form) (RecipeInput, error) {
	var errs Errors

	fields := recipeFields{
		Title:       plainText(f.Get("title")),
		Intro:       plainText(f.Get("intro")),
		Tags:        uniq(plainList(f.All("tags"))),
		Ingredients: plainList(f.All("ingredients")),
		Steps:       plainList(f.All("steps")),
		Notes:       plainText(f.Get("notes")),
		Status:      strings.TrimSpace(f.Get("status")),
	}
	if fields.Status == "" {
		fields.Status = string(model.StatusDraft)
	}

	var err error
	if fields.PrepTime, err = intField(f, "prep_time", 0); err != nil {
		errs = append(errs, err.Error())
	}
	if fields.CookTime, err = intField(f, "cook_time", 0); err != nil {
		errs = append(errs, err.Error())
	}
	if fields.Servings, err = intField(f, "servings", 1); err != nil {
		errs = append(errs, err.Error())
	}

	categories := uniq(plainList(f.All("categories")))
	for _, c := range categories {
		if !model.IsCategory(c) {
			errs = append(errs, fmt.Sprintf("unknown category %q", c))
		}
	}

	errs = append(errs, check(fields)...)
	if err := errs.orNil(); err != nil {
		return RecipeInput{}, err
	}

	return RecipeInput{
		Title:       html.EscapeString(fields.Title),
		Intro:       html.EscapeString(fields.Intro),
		Categories:  categories,
		Tags:        escapeList(fields.Tags),
		Ingredients: escapeList(fields.Ingredients),
		Steps:       escapeList(fields.Steps),
		PrepTime:    fields.PrepTime,
		CookTime:    fields.CookTime,
		Servings:    fields.Servings,
		Notes:       html.EscapeString(fields.Notes),
		Status:      model.RecipeStatus(fields.Status),
	}, nil
}

// Apply copies the cleaned fields onto r.
func (in RecipeInput) Apply(r *model.Recipe) {
	r.Title = in.Title
	r.Intro = in.Intro
	r.Categories = in.Categories
	r.Tags = in.Tags
	r.Ingredients = in.Ingredients
	r.Steps = in.Steps
	r.PrepTime = in.PrepTime
	r.CookTime = in.CookTime
	r.Servings = in.Servings
	r.Notes = in.Notes
	r.Status = in.Status
}

// RecipeForm renders a stored recipe back into form shape, for partial updates.
func RecipeForm(r *model.Recipe) Form {
	return Form{
		"title":       {r.Title},
		"intro":       {r.Intro},
		"categories":  append([]string{}, r.Categories...),
		"tags":        append([]string{}, r.Tags...),
		"ingredients": append([]string{}, r.Ingredients...),
		"steps":       append([]string{}, r.Steps...),
		"prep_time":   {strconv.Itoa(r.PrepTime)},
		"cook_time":   {strconv.Itoa(r.CookTime)},
		"servings":    {strconv.Itoa(r.Servings)},
		"notes":       {r.Notes},
		"status":      {string(r.Status)},
	}
}

func intField(f Form, key string, def int) (int, error) {
	raw := strings.TrimSpace(f.Get(key))
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", key)
	}

	return n, nil
}
