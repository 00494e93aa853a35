package models

import "time"

// Status values a record can be persisted with. The board additionally
// derives an "overdue" display label from the clock, but that label is never
// written back to a record — a pending record stays pending no matter how
// late it is.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

// DispatchRecord is one scheduled vehicle pickup or dropoff job.
type DispatchRecord struct {
	Time           string     `json:"time"` // scheduled time of day, "HH:MM"
	Type           string     `json:"type"`
	ID             string     `json:"id"` // sole lookup key; uploads may contain duplicates
	CarNumber      string     `json:"carNumber"`
	DriverName     string     `json:"driverName"`
	DriverPhone    string     `json:"driverPhone"`
	CarType        string     `json:"carType"`
	FlightNumber   string     `json:"flightNumber"`
	FlightTime     string     `json:"flightTime"`
	Terminal       string     `json:"terminal"`
	Address        string     `json:"address"`
	PassengerName  string     `json:"passengerName"`
	PassengerPhone string     `json:"passengerPhone"`
	CustomerType   string     `json:"customerType"`
	ProjectName    string     `json:"projectName"`
	Passengers     int        `json:"passengers"`
	Luggage        int        `json:"luggage"`
	Status         string     `json:"status"`
	ConfirmedAt    *time.Time `json:"confirmedAt,omitempty"` // set iff Status is confirmed
}

// DispatchState is one board snapshot: records in upload order plus the time
// of the last mutation.
type DispatchState struct {
	Records     []DispatchRecord `json:"records"`
	LastUpdated time.Time        `json:"lastUpdated"`
}

// Snapshot is the durable storage slot backing a DispatchState. One row per
// slot key; the record sequence is stored as a JSON array so a snapshot is
// written and replaced atomically as a single row.
type Snapshot struct {
	Key         string `gorm:"primaryKey;size:64"`
	Records     string `gorm:"type:mediumtext"` // JSON array of DispatchRecord
	LastUpdated time.Time
	UpdatedAt   time.Time
}
