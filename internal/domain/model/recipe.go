package model

import "time"

type RecipeStatus string

const (
	StatusDraft     RecipeStatus = "draft"
	StatusPublished RecipeStatus = "published"
)

func (s RecipeStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

type Recipe struct {
	ID          string       `bson:"_id" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Intro       string       `bson:"intro" json:"intro"`
	Categories  []string     `bson:"categories" json:"categories"`
	Tags        []string     `bson:"tags" json:"tags"`
	Ingredients []string     `bson:"ingredients" json:"ingredients"`
	Steps       []string     `bson:"steps" json:"steps"`
	PrepTime    int          `bson:"prep_time" json:"prep_time"`
	CookTime    int          `bson:"cook_time" json:"cook_time"`
	Servings    int          `bson:"servings" json:"servings"`
	Notes       string       `bson:"notes" json:"notes"`
	Status      RecipeStatus `bson:"status" json:"status"`
	Image       string       `bson:"image,omitempty" json:"image,omitempty"`
	ImageURL    string       `bson:"-" json:"image_url,omitempty"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time   `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Categories is the fixed classification list. Order matches the admin form.
var Categories = []string{
	"Gėrimai ir kokteiliai",
	"Desertai",
	"Sriubos",
	"Užkandžiai",
	"Varškė",
	"Kiaušiniai",
	"Daržovės",
	"Bulvės",
	"Mėsa",
	"Žuvis ir jūros gėrybės",
	"Kruopos ir grūdai",
	"Be glitimo",
	"Be laktozės",
	"Gamta lėkštėje",
	"Iš močiutės virtuvės",
}

func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}

	return false
}
