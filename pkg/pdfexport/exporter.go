// Package pdfexport serializes an itinerary into a downloadable PDF.
package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

const productName = "WanderAI"

// Render produces the itinerary document: a title line, a budget subtitle and
// the raw itinerary text word-wrapped below the header. Page overflow is left
// to gofpdf's default flow.
func Render(destination string, days int, budget, itinerary string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 10, tr(fmt.Sprintf("%s - %d Day Itinerary", destination, days)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Budget: %s | Generated by %s", budget, productName)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, tr(itinerary), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
