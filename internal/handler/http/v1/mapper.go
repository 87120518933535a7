package v1

import "github.com/shenikar/imagery_catalog/internal/models"

// RequestToAreaQuery преобразует провалидированный запрос в доменную модель.
// Отсутствующий radius_km заменяется на defaultRadiusKm.
func RequestToAreaQuery(req AreaQueryRequest, defaultRadiusKm float64) models.AreaQuery {
	radius := defaultRadiusKm
	if req.RadiusKm != nil {
		radius = *req.RadiusKm
	}
	return models.AreaQuery{
		Lat:      *req.Lat,
		Lon:      *req.Lon,
		RadiusKm: radius,
	}
}

func modelToLocationResponse(l models.Location) LocationResponse {
	return LocationResponse{Lat: l.Lat, Lon: l.Lon}
}

// ModelsToCaptureResponses преобразует слайс моделей в слайс DTO
func ModelsToCaptureResponses(captures []*models.Capture) []*CaptureResponse {
	responses := make([]*CaptureResponse, len(captures))
	for i, c := range captures {
		responses[i] = &CaptureResponse{
			CaptureID:   c.ID,
			Location:    modelToLocationResponse(c.Location),
			CaptureDate: c.CaptureDate.UTC(),
			Resolution:  c.Resolution,
		}
	}
	return responses
}

// ModelToFeatureCollectionResponse преобразует FeatureCollection в DTO, порядок координат [lon, lat] сохраняется
func ModelToFeatureCollectionResponse(fc *models.FeatureCollection) *FeatureCollectionResponse {
	features := make([]*FeatureResponse, len(fc.Features))
	for i, f := range fc.Features {
		features[i] = &FeatureResponse{
			Type: f.Type,
			Geometry: GeometryResponse{
				Type:        f.Geometry.Type,
				Coordinates: append([]float64(nil), f.Geometry.Coordinates...),
			},
			Properties: FeaturePropertiesResponse{
				CaptureID:   f.Properties.CaptureID,
				CaptureDate: f.Properties.CaptureDate.UTC(),
				Resolution:  f.Properties.Resolution,
			},
		}
	}
	return &FeatureCollectionResponse{
		Type:     fc.Type,
		Features: features,
	}
}

// ModelsToOpportunityResponses преобразует слайс моделей в слайс DTO
func ModelsToOpportunityResponses(opportunities []*models.Opportunity) []*OpportunityResponse {
	responses := make([]*OpportunityResponse, len(opportunities))
	for i, o := range opportunities {
		resp := &OpportunityResponse{
			OpportunityID:        o.ID,
			EstimatedCaptureDate: o.EstimatedCaptureDate.UTC(),
			Confidence:           string(o.Confidence),
		}
		if o.Location != nil {
			loc := modelToLocationResponse(*o.Location)
			resp.Location = &loc
		}
		responses[i] = resp
	}
	return responses
}
