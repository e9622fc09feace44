package usecase

import (
	"html"
	"html/template"
)

// Stored text is already HTML escaped, so it enters the templates as template.HTML.

type layoutData struct {
	Subject        template.HTML
	Body           template.HTML
	SiteURL        string
	UnsubscribeURL string
}

type recipeData struct {
	Title          template.HTML
	Intro          template.HTML
	ImageURL       string
	RecipeURL      string
	UnsubscribeURL string
}

func htmlText(escaped string) string {
	return html.UnescapeString(escaped)
}

const mailStyle = `
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { text-align: center; padding: 20px 0; border-bottom: 2px solid #eee8e0; }
.logo { font-family: 'Playfair Display', serif; font-size: 24px; color: #7f4937; }
.title { font-size: 24px; color: #7f4937; margin: 20px 0; text-align: center; }
.image { width: 100%; max-height: 300px; object-fit: cover; border-radius: 5px; margin: 20px 0; }
.intro { font-style: italic; color: #7f4937; margin-bottom: 20px; padding-left: 15px; border-left: 3px solid #7f4937; }
.cta { display: inline-block; background-color: #7f4937; color: white; text-decoration: none; padding: 10px 20px; border-radius: 4px; margin: 20px 0; }
.footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #eee8e0; text-align: center; font-size: 12px; color: #7a7a7a; }
.unsubscribe { color: #7f4937; text-decoration: underline; }
`

const footer = `
<div class="footer">
  <p>Šaukštas Meilės - naminiai lietuviški receptai su meile</p>
  <p><a href="{{.UnsubscribeURL}}" class="unsubscribe">Atsisakyti naujienlaiškio prenumeratos</a></p>
</div>`

var layoutTemplate = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Subject}}</title>
<style>` + mailStyle + `</style>
</head>
<body>
<div class="container">
  <div class="header"><a href="{{.SiteURL}}" class="logo">Šaukštas Meilės</a></div>
  <h1 class="title">{{.Subject}}</h1>
  <div class="content">{{.Body}}</div>
` + footer + `
</div>
</body>
</html>`))

var recipeTemplate = template.Must(template.New("recipe").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Naujas receptas: {{.Title}}</title>
<style>` + mailStyle + `</style>
</head>
<body>
<div class="container">
  <div class="header"><div class="logo">Šaukštas Meilės</div></div>
  <h1 class="title">{{.Title}}</h1>
  {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}" class="image">{{end}}
  {{if .Intro}}<div class="intro">{{.Intro}}</div>{{end}}
  <div style="text-align: center;"><a href="{{.RecipeURL}}" class="cta">Skaityti visą receptą</a></div>
` + footer + `
</div>
</body>
</html>`))
