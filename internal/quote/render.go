package quote

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/southerntents/quote-backend/pkg/config"
)

const quoteHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f8f6f2;">
  <div style="max-width: 700px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; overflow: hidden;">

    <div style="background: linear-gradient(135deg, #c9a86a 0%, #ddbf8a 100%); padding: 40px 30px; text-align: center;">
      <img src="{{.LogoURL}}" alt="{{.BusinessName}} Logo" style="max-width: 200px; height: auto; margin: 0 auto 20px auto; display: block;">
      <h1 style="margin: 0; color: #ffffff; font-size: 32px; font-weight: 700;">New Quote Request</h1>
      <p style="margin: 10px 0 0 0; color: #faf8f3; font-size: 16px;">{{.BusinessName}}</p>
    </div>

    <div style="padding: 30px; border-bottom: 2px solid #e8e4dc;">
      <h2 style="margin: 0 0 20px 0; color: #5d622a; font-size: 24px;">Customer Information</h2>
      <div style="margin-bottom: 15px;">
        <strong style="color: #6d6760; display: inline-block; width: 150px;">Name:</strong>
        <span style="color: #2d2d2d;">{{.Name}}</span>
      </div>
      <div style="margin-bottom: 15px;">
        <strong style="color: #6d6760; display: inline-block; width: 150px;">Email:</strong>
        <a href="mailto:{{.Email}}" style="color: #c9a86a; text-decoration: none;">{{.Email}}</a>
      </div>
      <div style="margin-bottom: 15px;">
        <strong style="color: #6d6760; display: inline-block; width: 150px;">Phone:</strong>
        <a href="tel:{{.Phone}}" style="color: #c9a86a; text-decoration: none;">{{.Phone}}</a>
      </div>
      <div style="margin-bottom: 15px;">
        <strong style="color: #6d6760; display: inline-block; width: 150px;">Event Date:</strong>
        <span style="color: #2d2d2d;">{{.EventDate}}</span>
      </div>
      <div style="margin-bottom: 15px;">
        <strong style="color: #6d6760; display: inline-block; width: 150px;">Event Location:</strong>
        <span style="color: #2d2d2d;">{{.Location}}</span>
      </div>
      <div style="margin-bottom: 0;">
        <strong style="color: #6d6760; display: inline-block; width: 150px;">Guest Count:</strong>
        <span style="color: #2d2d2d;">{{.Guests}}</span>
      </div>
    </div>
{{if .HasItems}}
    <div style="padding: 30px; border-bottom: 2px solid #e8e4dc;">
      <h2 style="margin: 0 0 20px 0; color: #5d622a; font-size: 24px;">Requested Items</h2>
      <table style="width: 100%; border-collapse: collapse;">
        <thead>
          <tr style="background-color: #f0ece5;">
            <th style="padding: 12px; text-align: left; color: #5d622a;">Item</th>
            <th style="padding: 12px; text-align: center; color: #5d622a;">Quantity</th>
            <th style="padding: 12px; text-align: right; color: #5d622a;">Unit Price</th>
            <th style="padding: 12px; text-align: right; color: #5d622a;">Line Total</th>
          </tr>
        </thead>
        <tbody>
{{range .Items}}          <tr>
            <td style="padding: 12px; border-bottom: 1px solid #e8e4dc;">{{.Name}}</td>
            <td style="padding: 12px; border-bottom: 1px solid #e8e4dc; text-align: center;">{{.Quantity}}</td>
            <td style="padding: 12px; border-bottom: 1px solid #e8e4dc; text-align: right;">{{.PriceLabel}}</td>
            <td style="padding: 12px; border-bottom: 1px solid #e8e4dc; text-align: right; font-weight: 600;">{{.LineTotal}}</td>
          </tr>
{{end}}        </tbody>
        <tfoot>
          <tr style="background-color: #f0ece5;">
            <td colspan="3" style="padding: 15px; text-align: right; color: #5d622a; font-weight: 700; font-size: 18px;">SUBTOTAL:</td>
            <td style="padding: 15px; text-align: right; color: #5d622a; font-weight: 700; font-size: 18px;">{{.Subtotal}}</td>
          </tr>
        </tfoot>
      </table>
      <div style="margin-top: 20px; padding: 20px; background-color: #fff8f0; border-left: 4px solid #c9a86a; border-radius: 4px;">
        <p style="margin: 0 0 10px 0; color: #5d622a; font-weight: 700; font-size: 14px;">INTERNAL PRICING NOTES:</p>
        <ul style="margin: 0; padding-left: 20px; color: #6d6760; font-size: 13px; line-height: 1.8;">
          <li><strong>Subtotal shown is base pricing only</strong></li>
          <li><strong>Additional fees may apply:</strong> setup, delivery, labor, mileage, etc.</li>
          <li><strong>Tax is NOT calculated</strong> in this subtotal</li>
          <li><strong>Final quote must be provided to customer</strong> after reviewing all details</li>
        </ul>
      </div>
    </div>
{{end}}{{if .Message}}
    <div style="padding: 30px; border-bottom: 2px solid #e8e4dc;">
      <h2 style="margin: 0 0 20px 0; color: #5d622a; font-size: 24px;">Special Requests</h2>
      <p style="margin: 0; color: #2d2d2d; line-height: 1.6; white-space: pre-wrap;">{{.Message}}</p>
    </div>
{{end}}
    <div style="padding: 30px; background-color: #faf8f3; text-align: center;">
      <p style="margin: 0 0 10px 0; color: #6d6760; font-size: 14px;">
        This quote request was submitted on {{.SubmittedDate}} at {{.SubmittedTime}}
      </p>
      <p style="margin: 0; color: #978e82; font-size: 12px;">
        {{.BusinessName}} | {{.BusinessCity}}
      </p>
    </div>

  </div>
</body>
</html>
`

const quoteTextTemplate = `NEW QUOTE REQUEST
{{.BusinessName}}

CUSTOMER INFORMATION
---------------------
Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Event Date: {{.EventDate}}
Location: {{.Location}}
Guest Count: {{.Guests}}
{{if .HasItems}}
REQUESTED ITEMS
---------------
{{range .Items}}{{.Name}} - Qty: {{.Quantity}} - {{.PriceLabel}} - Line Total: {{.LineTotal}}
{{end}}
SUBTOTAL: {{.Subtotal}}

*** INTERNAL PRICING NOTES ***
- Subtotal shown is base pricing only
- Additional fees may apply: setup, delivery, labor, mileage, etc.
- Tax is NOT calculated in this subtotal
- Final quote must be provided to customer after reviewing all details
{{end}}{{if .Message}}
SPECIAL REQUESTS
----------------
{{.Message}}
{{end}}
---
Submitted: {{.SubmittedAt}}
`

var (
	htmlTmpl = htmltemplate.Must(htmltemplate.New("quote_html").Parse(quoteHTMLTemplate))
	textTmpl = texttemplate.Must(texttemplate.New("quote_text").Parse(quoteTextTemplate))
)

type itemView struct {
	Name       string
	Quantity   int
	PriceLabel string
	LineTotal  string
}

type emailView struct {
	BusinessName  string
	BusinessCity  string
	LogoURL       string
	Name          string
	Email         string
	Phone         string
	EventDate     string
	Location      string
	Guests        string
	HasItems      bool
	Items         []itemView
	Subtotal      string
	Message       string
	SubmittedDate string
	SubmittedTime string
	SubmittedAt   string
}

// Renderer produces the HTML and plain-text bodies of a quote notification.
// Both carry identical facts; only formatting differs.
type Renderer struct {
	business config.QuoteConfig
}

func NewRenderer(business config.QuoteConfig) *Renderer {
	return &Renderer{business: business}
}

// Render builds both bodies from one view so they cannot drift. Output is
// deterministic for a fixed submission and timestamp.
func (r *Renderer) Render(sub *Submission, totals Totals, submittedAt time.Time) (html string, text string, err error) {
	view := r.buildView(sub, totals, submittedAt)

	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, view); err != nil {
		return "", "", fmt.Errorf("render html body: %w", err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, view); err != nil {
		return "", "", fmt.Errorf("render text body: %w", err)
	}
	return htmlBuf.String(), textBuf.String(), nil
}

func (r *Renderer) buildView(sub *Submission, totals Totals, submittedAt time.Time) emailView {
	items := make([]itemView, 0, len(totals.Items))
	for _, item := range totals.Items {
		items = append(items, itemView{
			Name:       item.Name,
			Quantity:   item.Quantity,
			PriceLabel: item.PriceLabel,
			LineTotal:  "$" + item.LineTotal.StringFixed(2),
		})
	}

	return emailView{
		BusinessName:  r.business.BusinessName,
		BusinessCity:  r.business.BusinessCity,
		LogoURL:       r.business.LogoURL,
		Name:          orNA(sub.Name),
		Email:         orNA(sub.Email),
		Phone:         orNA(sub.Phone),
		EventDate:     orNA(sub.EventDate),
		Location:      orNA(sub.Location),
		Guests:        orNA(sub.Guests),
		HasItems:      len(items) > 0,
		Items:         items,
		Subtotal:      "$" + totals.Subtotal.StringFixed(2),
		Message:       sub.Message,
		SubmittedDate: submittedAt.Format("Monday, January 2, 2006"),
		SubmittedTime: submittedAt.Format("3:04:05 PM"),
		SubmittedAt:   submittedAt.Format("1/2/2006, 3:04:05 PM"),
	}
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
