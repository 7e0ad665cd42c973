package quote

import (
	"encoding/json"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/southerntents/quote-backend/pkg/errors"
)

// Messages returned verbatim to the submitting form.
const (
	MsgMissingFields = "Missing required fields: name, email, phone, or date"
	MsgInvalidEmail  = "Invalid email address"
	MsgSubmitted     = "Quote request submitted successfully! We will contact you within 48 hours."
)

// Submission is one inbound quote form payload. The form serializes item
// quantities as top-level fields keyed by catalog key, so the payload has no
// closed schema; unknown keys are collected as candidate quantities.
type Submission struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,quote_email"`
	Phone     string `json:"phone" validate:"required"`
	EventDate string `json:"event-date" validate:"required"`
	Location  string `json:"location"`
	Guests    string `json:"guests"`
	Message   string `json:"message"`

	// Quantities maps catalog key to the raw submitted quantity string.
	Quantities map[string]string `json:"-"`
}

// UnmarshalJSON pulls the fixed fields out of the payload and keeps every
// remaining top-level field as a raw quantity string.
func (s *Submission) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	take := func(key string) string {
		raw, ok := fields[key]
		if !ok {
			return ""
		}
		delete(fields, key)
		return rawToString(raw)
	}

	s.Name = take("name")
	s.Email = take("email")
	s.Phone = take("phone")
	s.EventDate = take("event-date")
	s.Location = take("location")
	s.Guests = take("guests")
	s.Message = take("message")

	s.Quantities = make(map[string]string, len(fields))
	for key, raw := range fields {
		s.Quantities[key] = rawToString(raw)
	}
	return nil
}

// rawToString tolerates both `"2"` and `2`: form posts send strings, but
// hand-rolled clients send numbers.
func rawToString(raw json.RawMessage) string {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return strings.Trim(string(raw), `"`)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	if err := v.RegisterValidation("quote_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate applies the submission rules in order: required contact fields
// first, then email syntax. Quantity fields are never validated here; bad
// values are silently skipped during pricing.
func (s *Submission) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid submission")
	}
	for _, fieldErr := range errs {
		if fieldErr.Tag() == "required" {
			return pkgerrors.New(pkgerrors.CodeValidation, MsgMissingFields)
		}
	}
	for _, fieldErr := range errs {
		if fieldErr.Tag() == "quote_email" {
			return pkgerrors.New(pkgerrors.CodeValidation, MsgInvalidEmail)
		}
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid submission")
}
