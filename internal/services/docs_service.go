package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/domain/models"
	"wanderlust-backend/internal/repositories"
	"wanderlust-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking vouchers and invoices as PDFs. Documents are
// scoped to the booking's owner like every other user-facing read.
type DocsService struct {
	DB        *sql.DB
	Bookings  repositories.BookingRepository
	RequestID string
	Loader    func(ctx context.Context, userID, bookingID int64) (models.BookingDetail, error)
}

func (s DocsService) GenerateVoucher(ctx context.Context, userID, bookingID int64) ([]byte, string, error) {
	detail, err := s.load(ctx, userID, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("booking_id=%d", bookingID))
	return buildVoucherPDF(detail)
}

func (s DocsService) GenerateInvoice(ctx context.Context, userID, bookingID int64) ([]byte, string, error) {
	detail, err := s.load(ctx, userID, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(detail)
}

func (s DocsService) load(ctx context.Context, userID, bookingID int64) (models.BookingDetail, error) {
	if s.Loader != nil {
		return s.Loader(ctx, userID, bookingID)
	}
	detail, err := s.Bookings.FindDetailForUser(ctx, s.DB, bookingID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookingDetail{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.BookingDetail{}, wrapInternal(err)
	}
	return detail, nil
}

func buildVoucherPDF(d models.BookingDetail) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Code : WDL-%d", d.ID),
		fmt.Sprintf("Hotel        : %s", safe(d.HotelName, "-")),
		fmt.Sprintf("Address      : %s", safe(d.HotelAddress, "-")),
		fmt.Sprintf("Check-in     : %s", safe(d.CheckInDate, "-")),
		fmt.Sprintf("Check-out    : %s", safe(d.CheckOutDate, "-")),
		fmt.Sprintf("Guests       : %d", d.GuestCount),
		fmt.Sprintf("Status       : %s", string(d.Status)),
	}
	if d.SpecialRequests != "" {
		lines = append(lines, fmt.Sprintf("Requests     : %s", d.SpecialRequests))
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this voucher together with a valid ID at check-in. One voucher covers one room.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%d_%s.pdf", d.ID, safeFilenamePart(d.HotelName))
	return buf.Bytes(), filename, nil
}

func buildInvoicePDF(d models.BookingDetail) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%d", d.ID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+time.Now().UTC().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	desc := fmt.Sprintf("Stay at %s (%s to %s), %d guest(s)",
		safe(d.HotelName, "-"), safe(d.CheckInDate, "-"), safe(d.CheckOutDate, "-"), d.GuestCount)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatMoney(d.TotalPrice))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This invoice covers one room for the dates listed above.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%d_%s.pdf", d.ID, safeFilenamePart(d.HotelName))
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "booking"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	return replacer.Replace(s)
}
