package validation

import (
	"html"

	"saukstas/internal/domain/model"
)

type CommentInput struct {
	Author  string
	Email   string
	Content string
}

type commentFields struct {
	Author  string `form:"author" validate:"max=100"`
	Content string `form:"content" validate:"required,max=1000"`
}

// Comment validates a public comment. A missing author becomes the anonymous
// default, an invalid email is dropped.
func Comment(f Form) (CommentInput, error) {
	fields := commentFields{
		Author:  plainText(f.Get("author")),
		Content: plainText(f.Get("content")),
	}
	if fields.Author == "" {
		fields.Author = model.DefaultCommentAuthor
	}

	if errs := check(fields); errs != nil {
		return CommentInput{}, errs
	}

	email, _ := optionalEmail(f.Get("email"))

	return CommentInput{
		Author:  html.EscapeString(fields.Author),
		Email:   email,
		Content: html.EscapeString(fields.Content),
	}, nil
}
