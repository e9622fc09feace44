package dto

import "saukstas/internal/domain/model"

type ListMeta struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"has_more"`
	Pages   int64 `json:"pages,omitempty"`
}

type RecipePage struct {
	Items []model.Recipe
	Meta  ListMeta
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type StoredFile struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	URL      string `json:"url"`
}
