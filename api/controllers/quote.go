package controllers

import (
	"net/http"

	"github.com/southerntents/quote-backend/api/responses"
	"github.com/southerntents/quote-backend/api/validators"
	"github.com/southerntents/quote-backend/internal/quote"
	pkgerrors "github.com/southerntents/quote-backend/pkg/errors"
	"github.com/southerntents/quote-backend/pkg/logger"
)

// QuoteSubmit handles the public quote form POST: decode, then hand the whole
// pipeline to the quote service. Every outcome is a {success, message} body.
func QuoteSubmit(svc quote.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		var sub quote.Submission
		if err := validators.DecodeJSONBody(r, &sub); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if _, err := svc.Submit(ctx, &sub); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote.MsgSubmitted)
	}
}

// QuotePreflight answers OPTIONS probes that are not CORS preflights (those
// are short-circuited by the CORS middleware before reaching the router).
// Either way the reply is an empty 200 with no processing.
func QuotePreflight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}
