package services

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"holidays/internal/domain/models"
	"holidays/internal/utils"

	"github.com/phpdave11/gofpdf"
)

const (
	companyName    = "Goimomi Holidays"
	companyTagline = "Crafted journeys, honest prices"
	contactBlock   = "Goimomi Holidays | +91 98450 00000 | hello@goimomiholidays.com"
)

// DocsService turns a package record into shareable artifacts: a plaintext
// summary (clipboard, WhatsApp, email body) and a brochure PDF. Both are
// pure transforms of the record; the same input always yields the same
// bytes.
type DocsService struct {
	RequestID string

	// ImageLoader fetches the card image for the brochure. A nil loader or
	// a failing load degrades the PDF to text-only, it never aborts it.
	ImageLoader func(path string) ([]byte, error)
}

// Summary renders the fixed-format text block for a package.
func (s DocsService) Summary(p models.HolidayPackage) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s*\n", safe(p.Title, "Holiday Package"))
	fmt.Fprintf(&b, "%d Nights / %d Days | %s\n", p.Nights, p.Days, safe(p.StartingCity, "Flexible start"))
	fmt.Fprintf(&b, "Price: Rs %s per person\n", formatAmount(p.OfferPrice))

	if len(p.Destinations) > 0 {
		parts := make([]string, 0, len(p.Destinations))
		for _, d := range p.Destinations {
			parts = append(parts, fmt.Sprintf("%s (%dN)", d.Name, d.Nights))
		}
		fmt.Fprintf(&b, "Route: %s\n", strings.Join(parts, " - "))
	}

	writeBullets(&b, "Highlights", p.Highlights)
	writeBullets(&b, "Inclusions", p.Inclusions)
	writeBullets(&b, "Exclusions", p.Exclusions)

	if len(p.Itinerary) > 0 {
		b.WriteString("\nItinerary:\n")
		for _, day := range p.Itinerary {
			fmt.Fprintf(&b, "Day %d: %s\n", day.DayNumber, day.Title)
		}
	}

	b.WriteString("\n")
	b.WriteString(contactBlock)
	b.WriteString("\n")
	return b.String()
}

// WhatsAppLink builds the share URL carrying the summary text.
func (s DocsService) WhatsAppLink(p models.HolidayPackage, phone string) string {
	phone = strings.NewReplacer("+", "", " ", "", "-", "").Replace(phone)
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(s.Summary(p))
}

// Brochure renders the paginated PDF for a package and returns the bytes
// plus a download filename.
func (s DocsService) Brochure(p models.HolidayPackage) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_brochure", fmt.Sprintf("package_id=%d", p.ID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(safe(p.Title, "Holiday Package"), false)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// Letterhead
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 9, companyName)
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, companyTagline)
	pdf.Ln(10)

	// Title block
	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 8, safe(p.Title, "Holiday Package"), "", "", false)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("%d Nights / %d Days | From %s | Rs %s per person",
		p.Nights, p.Days, safe(p.StartingCity, "-"), formatAmount(p.OfferPrice)))
	pdf.Ln(10)

	s.addCardImage(pdf, p)

	section(pdf, "Destinations")
	if len(p.Destinations) == 0 {
		bullet(pdf, "To be planned with you")
	}
	for _, d := range p.Destinations {
		bullet(pdf, fmt.Sprintf("%s - %d nights", d.Name, d.Nights))
	}

	if len(p.Highlights) > 0 {
		section(pdf, "Highlights")
		for _, h := range p.Highlights {
			bullet(pdf, h.Text)
		}
	}

	if len(p.Itinerary) > 0 {
		section(pdf, "Itinerary")
		for _, day := range p.Itinerary {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, 6, fmt.Sprintf("Day %d - %s", day.DayNumber, day.Title), "", "", false)
			if strings.TrimSpace(day.Description) != "" {
				pdf.SetFont("Helvetica", "", 10)
				pdf.MultiCell(0, 5, day.Description, "", "", false)
			}
			pdf.Ln(2)
		}
	}

	if len(p.Inclusions) > 0 {
		section(pdf, "Inclusions")
		for _, item := range p.Inclusions {
			bullet(pdf, item.Text)
		}
	}

	if len(p.Exclusions) > 0 {
		section(pdf, "Exclusions")
		for _, item := range p.Exclusions {
			bullet(pdf, item.Text)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, contactBlock, "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("PACKAGE_%d_%s.pdf", p.ID, utils.SafeFilenamePart(p.Title))
	return buf.Bytes(), filename, nil
}

// addCardImage embeds the card image when it can be fetched and decoded.
// Any failure leaves the brochure text-only.
func (s DocsService) addCardImage(pdf *gofpdf.Fpdf, p models.HolidayPackage) {
	if s.ImageLoader == nil || strings.TrimSpace(p.CardImage) == "" {
		return
	}
	data, err := s.ImageLoader(p.CardImage)
	if err != nil || len(data) == 0 {
		utils.LogEvent(s.RequestID, "docs", "image_skipped", fmt.Sprintf("package_id=%d err=%v", p.ID, err))
		return
	}

	name := fmt.Sprintf("card-%d", p.ID)
	opts := gofpdf.ImageOptions{ImageType: imageType(p.CardImage), ReadDpi: true}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if pdf.Err() {
		// Undecodable image: clear the error and keep going without it.
		utils.LogEvent(s.RequestID, "docs", "image_skipped", fmt.Sprintf("package_id=%d err=%v", p.ID, pdf.Error()))
		pdf.ClearError()
		return
	}

	pdf.ImageOptions(name, pdf.GetX(), pdf.GetY(), 120, 0, true, opts, 0, "")
	pdf.Ln(4)
}

func writeBullets(b *strings.Builder, title string, items []models.LineItem) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it.Text)
	}
}

func section(pdf *gofpdf.Fpdf, title string) {
	// Start the section on a fresh page when too little room is left.
	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	if pdf.GetY() > pageH-bottom-30 {
		pdf.AddPage()
	}
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
}

func bullet(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, "- "+text, "", "", false)
}

func imageType(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "PNG"
	case strings.HasSuffix(lower, ".gif"):
		return "GIF"
	default:
		return "JPG"
	}
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func formatAmount(v int64) string {
	if v <= 0 {
		return "0"
	}
	s := fmt.Sprintf("%d", v)
	var out []byte
	n := len(s)
	for i := 0; i < n; i++ {
		out = append(out, s[i])
		pos := n - i - 1
		if pos > 0 && pos%3 == 0 {
			out = append(out, ',')
		}
	}
	return string(out)
}
