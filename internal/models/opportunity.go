package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Confidence - уровень уверенности прогноза съемки
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Valid сообщает, входит ли значение в перечисление (с учетом регистра)
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return true
	}
	return false
}

func (c *Confidence) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("confidence must be a string: %w", err)
	}
	if !Confidence(s).Valid() {
		return fmt.Errorf("unknown confidence %q", s)
	}
	*c = Confidence(s)
	return nil
}

// Opportunity - прогноз будущей съемки
type Opportunity struct {
	ID                   string     `json:"opportunityId"`
	EstimatedCaptureDate time.Time  `json:"estimatedCaptureDate"`
	Confidence           Confidence `json:"confidence"`
	Location             *Location  `json:"location,omitempty"`
}

// LocationOrDefault возвращает координаты прогноза, для записи без координат - (0, 0)
func (o *Opportunity) LocationOrDefault() Location {
	if o.Location == nil {
		return Location{}
	}
	return *o.Location
}
