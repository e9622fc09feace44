package dto

import "time"

type DashboardStats struct {
	Recipes        RecipeTotals   `json:"recipes"`
	Comments       CommentTotals  `json:"comments"`
	Media          MediaTotals    `json:"media"`
	Subscribers    int64          `json:"subscribers"`
	RecentRecipes  []RecentRecipe `json:"recent_recipes"`
	RecentComments []CommentView  `json:"recent_comments"`
}

type RecipeTotals struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
}

type CommentTotals struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
}

type MediaTotals struct {
	Total int64 `json:"total"`
}

type RecentRecipe struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentView struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	Content     string    `json:"content"`
	RecipeID    string    `json:"recipe_id"`
	RecipeTitle string    `json:"recipe_title"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type SendResult struct {
	Sent  int `json:"sent"`
	Total int `json:"total"`
}
