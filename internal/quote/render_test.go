package quote

import (
	"strings"
	"testing"
	"time"

	"github.com/southerntents/quote-backend/pkg/config"
)

func fixedClock() time.Time {
	return time.Date(2025, time.June, 1, 14, 30, 5, 0, time.UTC)
}

func testBusiness() config.QuoteConfig {
	return config.QuoteConfig{
		Recipient:    "Southerntentsevents@gmail.com",
		BusinessName: "Southern Tents & Events",
		BusinessCity: "Senoia, GA",
		LogoURL:      "https://southerntentsandevents.com/images/logo-white.png",
		TimezoneName: "UTC",
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	renderer := NewRenderer(testBusiness())
	sub := &Submission{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "555-1234",
		EventDate: "2025-06-01",
		Message:   "Backyard wedding",
		Quantities: map[string]string{
			"tent-20x20-canopy": "1",
			"chair-crossback":   "10",
		},
	}
	totals := PriceItems(sub)

	html1, text1, err := renderer.Render(sub, totals, fixedClock())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html2, text2, err := renderer.Render(sub, totals, fixedClock())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if html1 != html2 {
		t.Fatal("html bodies differ across identical renders")
	}
	if text1 != text2 {
		t.Fatal("text bodies differ across identical renders")
	}
}

func TestRenderBothBodiesCarrySameFacts(t *testing.T) {
	renderer := NewRenderer(testBusiness())
	sub := &Submission{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "555-1234",
		EventDate: "2025-06-01",
		Location:  "Senoia, GA",
		Guests:    "120",
		Message:   "Need setup by noon",
		Quantities: map[string]string{
			"tent-20x20-canopy": "2",
		},
	}
	totals := PriceItems(sub)

	html, text, err := renderer.Render(sub, totals, fixedClock())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	facts := []string{
		"Jane Doe",
		"jane@example.com",
		"555-1234",
		"2025-06-01",
		"Senoia, GA",
		"120",
		"Need setup by noon",
		"20x20 All Purpose Canopy",
		"$600.00",
		"$300.00",
		"Sunday, June 1, 2025",
	}
	for _, fact := range facts {
		if !strings.Contains(html, fact) {
			t.Fatalf("html body missing %q", fact)
		}
	}
	// Same facts in the text body, modulo the date formatting split.
	for _, fact := range facts[:len(facts)-1] {
		if !strings.Contains(text, fact) {
			t.Fatalf("text body missing %q", fact)
		}
	}
	if !strings.Contains(text, "6/1/2025, 2:30:05 PM") {
		t.Fatalf("text body missing submitted timestamp:\n%s", text)
	}
}

func TestRenderOmitsItemTableWhenEmpty(t *testing.T) {
	renderer := NewRenderer(testBusiness())
	sub := &Submission{Name: "Jane", Email: "jane@example.com", Phone: "555", EventDate: "2025-06-01"}

	html, text, err := renderer.Render(sub, PriceItems(sub), fixedClock())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "Requested Items") || strings.Contains(text, "REQUESTED ITEMS") {
		t.Fatal("item section rendered for empty quote")
	}
	if strings.Contains(html, "Special Requests") || strings.Contains(text, "SPECIAL REQUESTS") {
		t.Fatal("special requests rendered without a message")
	}
}

func TestRenderFillsMissingOptionalFields(t *testing.T) {
	renderer := NewRenderer(testBusiness())
	sub := &Submission{Name: "Jane", Email: "jane@example.com", Phone: "555", EventDate: "2025-06-01"}

	_, text, err := renderer.Render(sub, PriceItems(sub), fixedClock())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(text, "Location: N/A") {
		t.Fatalf("expected N/A location, got:\n%s", text)
	}
	if !strings.Contains(text, "Guest Count: N/A") {
		t.Fatalf("expected N/A guest count, got:\n%s", text)
	}
}

func TestRenderEscapesHTMLInCustomerInput(t *testing.T) {
	renderer := NewRenderer(testBusiness())
	sub := &Submission{
		Name:      `<script>alert("x")</script>`,
		Email:     "jane@example.com",
		Phone:     "555",
		EventDate: "2025-06-01",
	}

	html, _, err := renderer.Render(sub, PriceItems(sub), fixedClock())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatal("customer input must be escaped in the html body")
	}
}
