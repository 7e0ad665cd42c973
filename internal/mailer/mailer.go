package mailer

import "context"

// Message is one composed notification: subject, reply-to, and both body
// representations (HTML preferred, plain text fallback).
type Message struct {
	Subject string
	ReplyTo string
	HTML    string
	Text    string
}

// Sender hands a composed message to the delivery provider. Implementations
// attempt delivery exactly once; retry policy belongs to the caller's caller.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
