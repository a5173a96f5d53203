package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"flightfare/internal/domain/models"
	"flightfare/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// QuoteService renders a predicted fare as a one-page PDF quote.
type QuoteService struct {
	RequestID string
	Now       func() time.Time
}

func (s QuoteService) GenerateQuote(req models.PredictionRequest, res models.PredictionResult) ([]byte, string, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	utils.LogEvent(s.RequestID, "quote", "generate_quote", fmt.Sprintf("route=%s-%s price=%d", req.Source, req.Destination, res.Price))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Fare Estimate", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FARE ESTIMATE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Airline        : %s", req.Airline),
		fmt.Sprintf("Route          : %s -> %s", req.Source, req.Destination),
		fmt.Sprintf("Journey date   : %s", utils.FormatDate(req.JourneyDate)),
		fmt.Sprintf("Departure      : %s", formatTimeOfDay(req.DepartureTime)),
		fmt.Sprintf("Arrival        : %s", formatTimeOfDay(req.ArrivalTime)),
		fmt.Sprintf("Duration       : %dh %dm", res.DurationHours, res.DurationMinutes),
		fmt.Sprintf("Stops          : %s", req.TotalStops),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Predicted fare: "+utils.FormatINR(res.Price))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	note := "Estimate generated " + now.Format("2006-01-02 15:04")
	if strings.TrimSpace(res.ModelVersion) != "" {
		note += " by model " + res.ModelVersion
	}
	pdf.MultiCell(0, 6, note+". Actual fares depend on availability at booking time.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("FARE_%s_%s_%s.pdf",
		utils.SafeFilenamePart(req.Source), utils.SafeFilenamePart(req.Destination), req.JourneyDate.Format("20060102"))
	return buf.Bytes(), filename, nil
}
