package v1

import "time"

// AreaQueryRequest DTO параметров поиска по радиусу
// @Description DTO параметров поиска по радиусу
type AreaQueryRequest struct {
	Lat      *float64 `form:"lat" validate:"required"`
	Lon      *float64 `form:"lon" validate:"required"`
	RadiusKm *float64 `form:"radius_km"`
}

// LocationResponse DTO координат
// @Description DTO координат
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CaptureResponse DTO для ответа с информацией о съемке
// @Description DTO для ответа с информацией о съемке
type CaptureResponse struct {
	CaptureID   string           `json:"captureId"`
	Location    LocationResponse `json:"location"`
	CaptureDate time.Time        `json:"captureDate"`
	Resolution  string           `json:"resolution"`
}

// GeometryResponse DTO геометрии точки, coordinates - [lon, lat]
// @Description DTO геометрии точки, coordinates - [lon, lat]
type GeometryResponse struct {
	Type        string    `json:"type" example:"Point"`
	Coordinates []float64 `json:"coordinates"`
}

// FeaturePropertiesResponse DTO свойств объекта архива
// @Description DTO свойств объекта архива
type FeaturePropertiesResponse struct {
	CaptureID   string    `json:"captureId"`
	CaptureDate time.Time `json:"captureDate"`
	Resolution  string    `json:"resolution"`
}

// FeatureResponse DTO объекта архива
// @Description DTO объекта архива
type FeatureResponse struct {
	Type       string                    `json:"type" example:"Feature"`
	Geometry   GeometryResponse          `json:"geometry"`
	Properties FeaturePropertiesResponse `json:"properties"`
}

// FeatureCollectionResponse DTO для ответа архива
// @Description DTO для ответа архива
type FeatureCollectionResponse struct {
	Type     string             `json:"type" example:"FeatureCollection"`
	Features []*FeatureResponse `json:"features"`
}

// OpportunityResponse DTO для ответа с прогнозом съемки
// @Description DTO для ответа с прогнозом съемки
type OpportunityResponse struct {
	OpportunityID        string            `json:"opportunityId"`
	EstimatedCaptureDate time.Time         `json:"estimatedCaptureDate"`
	Confidence           string            `json:"confidence" enums:"Low,Medium,High"`
	Location             *LocationResponse `json:"location,omitempty"`
}

// ErrorResponse DTO ошибки
// @Description DTO ошибки
type ErrorResponse struct {
	Error string `json:"error"`
}
