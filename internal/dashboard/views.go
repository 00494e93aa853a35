package dashboard

import (
	"time"

	"github.com/Frenkieli/car-dispatch/internal/board"
	"github.com/Frenkieli/car-dispatch/internal/models"
)

// Row is one display row of the board: the record subset the table shows
// plus the derived urgency and its display label.
type Row struct {
	ID           string `json:"id"`
	Time         string `json:"time"`
	Type         string `json:"type"`
	CarNumber    string `json:"carNumber"`
	DriverName   string `json:"driverName"`
	DriverPhone  string `json:"driverPhone"`
	FlightNumber string `json:"flightNumber"`
	Address      string `json:"address"`
	Passengers   int    `json:"passengers"`
	Luggage      int    `json:"luggage"`
	Status       string `json:"status"`      // stored status: pending or confirmed
	Urgency      string `json:"urgency"`     // derived: normal, approaching, overdue, confirmed
	StatusLabel  string `json:"statusLabel"` // display text for the status column
}

// buildRows derives display rows from the record collection at one instant.
func buildRows(records []models.DispatchRecord, now time.Time) []Row {
	rows := make([]Row, len(records))
	for i, rec := range records {
		urgency := board.Classify(rec, now)
		rows[i] = Row{
			ID:           rec.ID,
			Time:         rec.Time,
			Type:         rec.Type,
			CarNumber:    rec.CarNumber,
			DriverName:   rec.DriverName,
			DriverPhone:  rec.DriverPhone,
			FlightNumber: rec.FlightNumber,
			Address:      rec.Address,
			Passengers:   rec.Passengers,
			Luggage:      rec.Luggage,
			Status:       rec.Status,
			Urgency:      string(urgency),
			StatusLabel:  statusLabel(urgency),
		}
	}
	return rows
}

// statusLabel renders the status column text. Approaching rows still read as
// pending; only the row color distinguishes them.
func statusLabel(urgency board.Urgency) string {
	switch urgency {
	case board.UrgencyConfirmed:
		return "已確認"
	case board.UrgencyOverdue:
		return "已超時"
	default:
		return "待確認"
	}
}
