package model

import "time"

type MediaCategory string

const (
	MediaRecipes MediaCategory = "recipes"
	MediaAbout   MediaCategory = "about"
)

func (c MediaCategory) Valid() bool {
	return c == MediaRecipes || c == MediaAbout
}

type MediaObject struct {
	Path         string        `json:"path"`
	Filename     string        `json:"filename"`
	Category     MediaCategory `json:"category"`
	URL          string        `json:"url"`
	Size         int64         `json:"size"`
	ContentType  string        `json:"content_type,omitempty"`
	LastModified time.Time     `json:"last_modified"`
}
