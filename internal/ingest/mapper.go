// Package ingest turns uploaded spreadsheets into dispatch records.
//
// The column headers are the opaque keys used by the upstream dispatch
// spreadsheets; they are matched verbatim. Missing columns degrade to zero
// values, never to an error: a bad row must not block the rest of the upload.
package ingest

import (
	"strconv"
	"strings"

	"github.com/Frenkieli/car-dispatch/internal/models"
)

// Column headers recognized in the source spreadsheets.
const (
	colTime           = "時間"
	colType           = "接送種類"
	colID             = "編號"
	colCarNumber      = "服務車號"
	colDriverName     = "駕駛姓名"
	colDriverPhone    = "駕駛電話"
	colCarType        = "車款"
	colFlightNumber   = "航班編號"
	colFlightTime     = "航班時間"
	colTerminal       = "航站"
	colAddress        = "接送地址"
	colPassengerName  = "貴賓姓名"
	colPassengerPhone = "行動電話"
	colCustomerType   = "客戶別"
	colProjectName    = "專案名稱"
	colPassengers     = "搭乘人數"
	colLuggage        = "行李件數"
)

// MapRow converts one header-to-cell mapping into a dispatch record. Missing
// text cells become empty strings, count cells are parsed best-effort and
// default to 0. Every mapped record starts pending with no confirmation time.
func MapRow(row map[string]string) models.DispatchRecord {
	return models.DispatchRecord{
		Time:           row[colTime],
		Type:           row[colType],
		ID:             row[colID],
		CarNumber:      row[colCarNumber],
		DriverName:     row[colDriverName],
		DriverPhone:    row[colDriverPhone],
		CarType:        row[colCarType],
		FlightNumber:   row[colFlightNumber],
		FlightTime:     row[colFlightTime],
		Terminal:       row[colTerminal],
		Address:        row[colAddress],
		PassengerName:  row[colPassengerName],
		PassengerPhone: row[colPassengerPhone],
		CustomerType:   row[colCustomerType],
		ProjectName:    row[colProjectName],
		Passengers:     parseCount(row[colPassengers]),
		Luggage:        parseCount(row[colLuggage]),
		Status:         models.StatusPending,
	}
}

// MapRows converts a row sequence, preserving order.
func MapRows(rows []map[string]string) []models.DispatchRecord {
	records := make([]models.DispatchRecord, len(rows))
	for i, row := range rows {
		records[i] = MapRow(row)
	}
	return records
}

// parseCount parses a non-negative integer cell. Anything unparseable or
// negative yields 0.
func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
