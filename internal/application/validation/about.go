package validation

import (
	"html"

	"saukstas/internal/domain/model"
)

type aboutFields struct {
	Title    string          `form:"title" validate:"max=200"`
	Subtitle string          `form:"subtitle" validate:"max=300"`
	Intro    string          `form:"intro" validate:"max=2000"`
	Sections []aboutSection  `form:"sections" validate:"max=20,dive"`
	Social   aboutSocialLink `form:"social"`
}

type aboutSection struct {
	Title   string `form:"title" validate:"max=200"`
	Content string `form:"content" validate:"max=5000"`
}

type aboutSocialLink struct {
	Instagram string `form:"instagram" validate:"max=300"`
	Facebook  string `form:"facebook" validate:"max=300"`
	Pinterest string `form:"pinterest" validate:"max=300"`
}

// About validates the text of an about page. Image references are carried over untouched.
func About(in model.AboutPage) (model.AboutPage, error) {
	fields := aboutFields{
		Title:    plainText(in.Title),
		Subtitle: plainText(in.Subtitle),
		Intro:    plainText(in.Intro),
		Social: aboutSocialLink{
			Instagram: plainText(in.Social.Instagram),
			Facebook:  plainText(in.Social.Facebook),
			Pinterest: plainText(in.Social.Pinterest),
		},
	}
	for _, s := range in.Sections {
		sec := aboutSection{Title: plainText(s.Title), Content: plainText(s.Content)}
		if sec.Title == "" && sec.Content == "" {
			continue
		}
		fields.Sections = append(fields.Sections, sec)
	}

	if errs := check(fields); errs != nil {
		return model.AboutPage{}, errs
	}

	out := in
	out.Title = html.EscapeString(fields.Title)
	out.Subtitle = html.EscapeString(fields.Subtitle)
	out.Intro = html.EscapeString(fields.Intro)
	out.Sections = make([]model.AboutSection, 0, len(fields.Sections))
	for _, s := range fields.Sections {
		out.Sections = append(out.Sections, model.AboutSection{
			Title:   html.EscapeString(s.Title),
			Content: html.EscapeString(s.Content),
		})
	}
	out.Social.Email, _ = optionalEmail(in.Social.Email)
	out.Social.Instagram = html.EscapeString(fields.Social.Instagram)
	out.Social.Facebook = html.EscapeString(fields.Social.Facebook)
	out.Social.Pinterest = html.EscapeString(fields.Social.Pinterest)

	return out, nil
}
