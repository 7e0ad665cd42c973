package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/southerntents/quote-backend/internal/mailer"
	"github.com/southerntents/quote-backend/pkg/config"
	pkgerrors "github.com/southerntents/quote-backend/pkg/errors"
	"github.com/southerntents/quote-backend/pkg/metrics"
)

// Service turns one form submission into an accept/reject decision and, on
// accept, exactly one outbound notification email.
type Service interface {
	Submit(ctx context.Context, sub *Submission) (*Totals, error)
}

type service struct {
	renderer *Renderer
	sender   mailer.Sender
	loc      *time.Location
	clock    func() time.Time
	metrics  *metrics.QuoteMetrics
}

// ServiceParams wires the submit pipeline's collaborators.
type ServiceParams struct {
	Sender  mailer.Sender
	Quote   config.QuoteConfig
	Metrics *metrics.QuoteMetrics
	// Clock overrides time.Now, letting tests pin the rendered timestamp.
	Clock func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Sender == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "mail sender required")
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}
	return &service{
		renderer: NewRenderer(params.Quote),
		sender:   params.Sender,
		loc:      params.Quote.Location(),
		clock:    clock,
		metrics:  params.Metrics,
	}, nil
}

// Submit runs the full pipeline: validate, price, render, dispatch. Pricing
// cannot fail; validation and dispatch short-circuit with typed errors the
// HTTP layer maps to 400 and 500.
func (s *service) Submit(ctx context.Context, sub *Submission) (*Totals, error) {
	if sub == nil {
		s.metrics.IncSubmission("rejected")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, MsgMissingFields)
	}
	if err := sub.Validate(); err != nil {
		s.metrics.IncSubmission("rejected")
		return nil, err
	}

	totals := PriceItems(sub)

	submittedAt := s.clock().In(s.loc)
	html, text, err := s.renderer.Render(sub, totals, submittedAt)
	if err != nil {
		s.metrics.IncSubmission("failed")
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render quote email")
	}

	msg := mailer.Message{
		Subject: fmt.Sprintf("New Quote Request from %s - Event on %s", sub.Name, sub.EventDate),
		ReplyTo: sub.Email,
		HTML:    html,
		Text:    text,
	}

	start := time.Now()
	err = s.sender.Send(ctx, msg)
	s.metrics.ObserveDispatch(time.Since(start))
	if err != nil {
		s.metrics.IncSubmission("dispatch_failed")
		return nil, pkgerrors.Wrap(pkgerrors.CodeDispatch, err, "send quote email")
	}

	s.metrics.IncSubmission("accepted")
	return &totals, nil
}
