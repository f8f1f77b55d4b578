// Package brochure renders a printable tour program: header, schedule,
// day-by-day itinerary, price terms, and a QR code pointing back at the tour
// page.
package brochure

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"voyara/db"
	"voyara/models"
	"voyara/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

func siteBaseURL() string {
	if v := os.Getenv("SITE_BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

// GET /api/tours/:tourId/brochure.pdf
func TourBrochure(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	tourId := ps.ByName("tourId")

	var tour models.Tour
	if err := db.ToursCollection.FindOne(ctx, bson.M{"tourId": tourId}).Decode(&tour); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}
	tour.Normalize()

	pdfBytes, err := Build(&tour)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=tour-"+tourId+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// Build renders the brochure for one tour.
func Build(tour *models.Tour) ([]byte, error) {
	qrPNG, err := qrcode.Encode(siteBaseURL()+"/tours/"+tour.TourID, qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1251") // Cyrillic content
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, tr(tour.Title))
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("%s, %s", tour.Country, tour.Continent)))
	pdf.Ln(8)
	if tour.Route != "" {
		pdf.Cell(0, 8, tr(tour.Route))
		pdf.Ln(8)
	}
	if tour.Duration != "" {
		pdf.Cell(0, 8, tr(tour.Duration))
		pdf.Ln(8)
	}
	if tour.Price != "" {
		pdf.Cell(0, 8, tr("Цена: "+tour.Price))
		pdf.Ln(8)
	}
	if len(tour.Dates) > 0 {
		pdf.Cell(0, 8, tr("Дати: "+joinDisplayDates(tour.Dates)))
		pdf.Ln(8)
	}
	pdf.Ln(4)

	if len(tour.Itinerary) > 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 10, tr("Програма"))
		pdf.Ln(10)
		for _, day := range tour.Itinerary {
			pdf.SetFont("Arial", "B", 11)
			pdf.Cell(0, 7, tr(fmt.Sprintf("Ден %d: %s", day.Day, day.Title)))
			pdf.Ln(7)
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, tr(day.Content), "", "L", false)
			pdf.Ln(2)
		}
	}

	writeList := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 10, tr(title))
		pdf.Ln(9)
		pdf.SetFont("Arial", "", 10)
		for _, line := range lines {
			pdf.MultiCell(0, 5, tr("- "+line), "", "L", false)
		}
		pdf.Ln(3)
	}
	writeList("Цената включва", tour.Included)
	writeList("Цената не включва", tour.NotIncluded)
	writeList("Необходими документи", tour.Documents)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 10, 35, 35, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func joinDisplayDates(isoDates []string) string {
	out := ""
	for i, d := range isoDates {
		if i > 0 {
			out += ", "
		}
		if t, err := time.Parse(models.ISODate, d); err == nil {
			out += t.Format(models.DisplayDate)
		} else {
			out += d
		}
	}
	return out
}
