package models

import "time"

// Capture - выполненная спутниковая съемка
type Capture struct {
	ID          string    `json:"captureId"`
	Location    Location  `json:"location"`
	CaptureDate time.Time `json:"captureDate"`
	Resolution  string    `json:"resolution"`
}
