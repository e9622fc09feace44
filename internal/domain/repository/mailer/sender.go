package mailer

import (
	"context"
	"errors"
)

var ErrDisabled = errors.New("outbound mail is not configured")

type Message struct {
	To      string
	Subject string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}
