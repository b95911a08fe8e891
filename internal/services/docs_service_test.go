package services

import (
	"errors"
	"strings"
	"testing"

	"holidays/internal/domain/models"
)

func brochurePackage() models.HolidayPackage {
	return models.HolidayPackage{
		ID:           42,
		Title:        "Vietnam Explorer",
		Category:     models.CategoryInternational,
		StartingCity: "Delhi",
		Nights:       6,
		Days:         7,
		OfferPrice:   68500,
		CardImage:    "packages/cards/vietnam.jpg",
		Destinations: []models.PackageDestination{
			{Name: "Hanoi", Nights: 3},
			{Name: "Ha Long Bay", Nights: 3},
		},
		Highlights: []models.LineItem{{Text: "Overnight cruise"}},
		Inclusions: []models.LineItem{{Text: "Daily breakfast"}},
		Exclusions: []models.LineItem{{Text: "Visa fees"}},
		Itinerary: []models.ItineraryDay{
			{DayNumber: 1, Title: "Arrival in Hanoi", Description: "Airport pickup and check-in."},
			{DayNumber: 2, Title: "City tour"},
		},
	}
}

func TestSummaryIdempotent(t *testing.T) {
	svc := DocsService{}
	p := brochurePackage()

	first := svc.Summary(p)
	second := svc.Summary(p)
	if first != second {
		t.Fatalf("summary is not deterministic")
	}

	for _, want := range []string{"Vietnam Explorer", "6 Nights / 7 Days", "68,500", "Hanoi (3N)", "Day 2: City tour", "hello@goimomiholidays.com"} {
		if !strings.Contains(first, want) {
			t.Fatalf("summary missing %q:\n%s", want, first)
		}
	}
}

func TestWhatsAppLink(t *testing.T) {
	svc := DocsService{}
	link := svc.WhatsAppLink(brochurePackage(), "+91 98450 00000")

	if !strings.HasPrefix(link, "https://wa.me/919845000000?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if !strings.Contains(link, "Vietnam") {
		t.Fatalf("link should carry the summary text: %s", link)
	}
}

func TestBrochureGenerates(t *testing.T) {
	svc := DocsService{}
	data, filename, err := svc.Brochure(brochurePackage())
	if err != nil {
		t.Fatalf("brochure: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty PDF output")
	}
	if filename != "PACKAGE_42_Vietnam_Explorer.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestBrochureSurvivesImageFailure(t *testing.T) {
	svc := DocsService{
		ImageLoader: func(string) ([]byte, error) { return nil, errors.New("image host down") },
	}
	data, _, err := svc.Brochure(brochurePackage())
	if err != nil {
		t.Fatalf("image failure must not abort generation: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected text-only brochure")
	}
}

func TestBrochureSurvivesUndecodableImage(t *testing.T) {
	svc := DocsService{
		ImageLoader: func(string) ([]byte, error) { return []byte("definitely not a jpeg"), nil },
	}
	data, _, err := svc.Brochure(brochurePackage())
	if err != nil {
		t.Fatalf("bad image bytes must not abort generation: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected text-only brochure")
	}
}

func TestBrochurePaginatesLongItinerary(t *testing.T) {
	p := brochurePackage()
	p.Itinerary = nil
	for i := 1; i <= 40; i++ {
		p.Itinerary = append(p.Itinerary, models.ItineraryDay{
			DayNumber:   i,
			Title:       "Full day of sightseeing",
			Description: strings.Repeat("Temples, markets and a long scenic drive. ", 6),
		})
	}

	svc := DocsService{}
	data, _, err := svc.Brochure(p)
	if err != nil {
		t.Fatalf("brochure: %v", err)
	}
	if len(data) < 4000 {
		t.Fatalf("long itinerary should produce a multi-page document, got %d bytes", len(data))
	}
}
