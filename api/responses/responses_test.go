package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/southerntents/quote-backend/pkg/errors"
)

func TestWriteSuccessShape(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, "Quote request submitted successfully! We will contact you within 48 hours.")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body Result
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success true")
	}
}

func TestWriteErrorUsesValidationMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "Invalid email address")
	WriteError(context.Background(), nil, rec, err)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body Result
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success {
		t.Fatal("expected success false")
	}
	if body.Message != "Invalid email address" {
		t.Fatalf("validation message should pass through, got %q", body.Message)
	}
}

func TestWriteErrorHidesDispatchDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	cause := errors.New("smtp: 535 bad credentials for quotes@example.com")
	err := pkgerrors.Wrap(pkgerrors.CodeDispatch, cause, "send quote email")
	WriteError(context.Background(), nil, rec, err)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body Result
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "An error occurred while processing your request. Please try again or contact us directly." {
		t.Fatalf("dispatch failures must surface the generic message, got %q", body.Message)
	}
}

func TestWriteErrorUntypedFallsBackToInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for untyped error, got %d", rec.Code)
	}
}
