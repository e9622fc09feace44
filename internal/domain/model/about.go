package model

import "time"

type AboutPage struct {
	Title           string         `bson:"title" json:"title"`
	Subtitle        string         `bson:"subtitle" json:"subtitle"`
	Intro           string         `bson:"intro" json:"intro"`
	Sections        []AboutSection `bson:"sections" json:"sections"`
	Social          SocialLinks    `bson:"social" json:"social"`
	Image           string         `bson:"image,omitempty" json:"image,omitempty"`
	ImageURL        string         `bson:"-" json:"image_url,omitempty"`
	SidebarImage    string         `bson:"sidebar_image,omitempty" json:"sidebar_image,omitempty"`
	SidebarImageURL string         `bson:"-" json:"sidebar_image_url,omitempty"`
	UpdatedAt       *time.Time     `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type AboutSection struct {
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"`
}

type SocialLinks struct {
	Email     string `bson:"email" json:"email"`
	Instagram string `bson:"instagram" json:"instagram"`
	Facebook  string `bson:"facebook" json:"facebook"`
	Pinterest string `bson:"pinterest" json:"pinterest"`
}

// DefaultAboutPage is served until an admin saves the page for the first time.
func DefaultAboutPage() AboutPage {
	return AboutPage{
		Title:    "Apie Mane",
		Subtitle: "Kelionė į širdį per maistą, pilną gamtos dovanų, švelnumo ir paprastumo",
		Intro: "Sveiki, esu Lidija – keliaujanti miško takeliais, pievomis ir laukais, " +
			"kur kiekvienas žolės stiebelis, vėjo dvelksmas ar laukinė uoga tampa įkvėpimu naujam skoniui.",
		Sections: []AboutSection{
			{
				Title:   "Mano istorija",
				Content: "Viskas prasidėjo mažoje kaimo virtuvėje, kur mano močiutė ruošdavo kvapnius patiekalus iš paprastų ingredientų.",
			},
			{
				Title: "Mano filosofija",
				Content: "Tikiu, kad maistas yra daugiau nei tik kuras mūsų kūnui – tai būdas sujungti žmones, " +
					"išsaugoti tradicijas ir kurti naujus prisiminimus.",
			},
		},
		Social: SocialLinks{
			Email:     "info@saukstas-meiles.lt",
			Instagram: "#",
			Facebook:  "#",
			Pinterest: "#",
		},
	}
}
