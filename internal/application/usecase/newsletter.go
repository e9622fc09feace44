package usecase

import (
	"bytes"
	"context"
	"html/template"
	"net/url"
	"strings"
	"time"

	"saukstas/internal/application/validation"
	"saukstas/internal/domain/dto"
	"saukstas/internal/domain/repository/database"
	"saukstas/internal/domain/repository/mailer"
	"saukstas/pkg/logger"
)

type NewsletterConfig struct {
	SiteURL   string
	SendDelay time.Duration
}

// Dispatcher mails every active subscriber one at a time with a fixed pause
// between sends. A failed send is logged and counted, never fatal.
type Dispatcher struct {
	subscribers database.SubscriberRepository
	recipes     database.RecipeRepository
	sender      mailer.Sender
	tokens      *Tokens
	media       *MediaStore
	cfg         NewsletterConfig
	sleep       func(ctx context.Context, d time.Duration)
}

func NewDispatcher(subscribers database.SubscriberRepository, recipes database.RecipeRepository,
	sender mailer.Sender, tokens *Tokens, media *MediaStore, cfg NewsletterConfig,
) *Dispatcher {
	return &Dispatcher{
		subscribers: subscribers,
		recipes:     recipes,
		sender:      sender,
		tokens:      tokens,
		media:       media,
		cfg:         cfg,
		sleep:       sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Send mails subject and body to all active subscribers. The batch keeps
// running when the caller's context is cancelled.
func (d *Dispatcher) Send(ctx context.Context, subject, htmlBody string) (dto.SendResult, error) {
	subject = strings.TrimSpace(validation.Text(subject))
	body := validation.RichHTML(htmlBody)

	var errs validation.Errors
	if subject == "" {
		errs = append(errs, "subject is required")
	} else if len([]rune(subject)) > 200 {
		errs = append(errs, "subject must be at most 200 characters")
	}
	if body == "" {
		errs = append(errs, "content is required")
	}
	if len(errs) > 0 {
		return dto.SendResult{}, errs
	}

	ctx = context.WithoutCancel(ctx)

	subs, err := d.subscribers.List(ctx, true)
	if err != nil {
		return dto.SendResult{}, upstream("failed to list subscribers", err)
	}

	result := dto.SendResult{Total: len(subs)}
	for i, sub := range subs {
		if i > 0 {
			d.sleep(ctx, d.cfg.SendDelay)
		}

		out, err := d.render(layoutTemplate, layoutData{
			Subject:        template.HTML(subject),
			Body:           template.HTML(body),
			SiteURL:        d.cfg.SiteURL,
			UnsubscribeURL: d.unsubscribeURL(sub.Email),
		})
		if err == nil {
			err = d.sender.Send(ctx, mailer.Message{To: sub.Email, Subject: htmlText(subject), HTML: out})
		}
		if err != nil {
			logger.Error("newsletter send failed", "email", sub.Email, "err", err)

			continue
		}
		result.Sent++
	}

	logger.Info("newsletter sent", "sent", result.Sent, "total", result.Total)

	return result, nil
}

// SendTest mails the new-recipe announcement for recipeID to a single address.
func (d *Dispatcher) SendTest(ctx context.Context, rawEmail, recipeID string) error {
	email, err := validation.Email(rawEmail)
	if err != nil {
		return err
	}

	r, err := d.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return lookup("recipe", err)
	}

	recipeURL := strings.TrimRight(d.cfg.SiteURL, "/") + "/recipe/" + url.PathEscape(r.ID)
	out, err := d.render(recipeTemplate, recipeData{
		Title:          template.HTML(r.Title),
		Intro:          template.HTML(r.Intro),
		ImageURL:       d.media.URL(r.Image),
		RecipeURL:      recipeURL,
		UnsubscribeURL: d.unsubscribeURL(email),
	})
	if err != nil {
		return upstream("failed to render newsletter", err)
	}

	subject := "Naujas receptas: " + htmlText(r.Title)
	if err := d.sender.Send(ctx, mailer.Message{To: email, Subject: subject, HTML: out}); err != nil {
		return upstream("failed to send test newsletter", err, "email", email)
	}

	return nil
}

func (d *Dispatcher) unsubscribeURL(email string) string {
	token, err := d.tokens.IssueUnsubscribe(email)
	if err != nil {
		logger.Error("failed to sign unsubscribe link", "err", err)
	}

	q := url.Values{}
	q.Set("email", email)
	q.Set("token", token)

	return strings.TrimRight(d.cfg.SiteURL, "/") + "/unsubscribe?" + q.Encode()
}

func (d *Dispatcher) render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
