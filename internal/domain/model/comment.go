package model

import "time"

type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
)

const DefaultCommentAuthor = "Anonimas"

type Comment struct {
	ID        string        `bson:"_id" json:"id"`
	RecipeID  string        `bson:"recipe_id" json:"recipe_id"`
	Author    string        `bson:"author" json:"author"`
	Email     string        `bson:"email,omitempty" json:"-"`
	Content   string        `bson:"content" json:"content"`
	Status    CommentStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}
