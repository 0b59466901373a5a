package export

import (
	"fmt"
	"io"

	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName  = "Bookings"
	dateLayout = "2006-01-02"
)

var header = []any{"Booking ID", "Car", "Location", "Renter", "Email", "Pickup", "Return", "Days", "Status", "Price"}

// WriteBookingsXLSX writes one row per booking plus a confirmed revenue total.
func WriteBookingsXLSX(w io.Writer, bookings []*domain.Booking) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	}); err == nil {
		_ = f.SetCellStyle(sheetName, "A1", "J1", style)
	}

	var revenue float64
	for i, b := range bookings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}

		row := bookingRow(b)
		if err = f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}

		if b.Status == domain.BookingStatusConfirmed {
			revenue += b.Price
		}
	}

	totalRow := len(bookings) + 3
	if err := f.SetCellValue(sheetName, fmt.Sprintf("I%d", totalRow), "Confirmed revenue"); err != nil {
		return fmt.Errorf("write total label: %w", err)
	}
	if err := f.SetCellValue(sheetName, fmt.Sprintf("J%d", totalRow), revenue); err != nil {
		return fmt.Errorf("write total: %w", err)
	}

	_ = f.SetColWidth(sheetName, "A", "A", 38)
	_ = f.SetColWidth(sheetName, "B", "J", 16)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}

	return nil
}

func bookingRow(b *domain.Booking) []any {
	var car, location, renter, email string
	if b.Car != nil {
		car = b.Car.Brand + " " + b.Car.Model
		location = b.Car.Location
	}
	if b.User != nil {
		renter = b.User.Name
		email = b.User.Email
	}

	return []any{
		b.ID,
		car,
		location,
		renter,
		email,
		b.PickupDate.Format(dateLayout),
		b.ReturnDate.Format(dateLayout),
		domain.RentalDays(b.PickupDate, b.ReturnDate),
		string(b.Status),
		b.Price,
	}
}
