// Package dto defines the HTTP response shapes for the calendar feature.
package dto

// HolidayResponse is the JSON representation of one calendar entry.
type HolidayResponse struct {
	Exchange string `json:"exchange"`
	Date     string `json:"date"`
	Hours    string `json:"hours"`
	Day      string `json:"day"`
}
