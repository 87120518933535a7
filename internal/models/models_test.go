package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureFromCapture_LonLatOrder(t *testing.T) {
	capture := &Capture{
		ID:          "CAP12348",
		Location:    Location{Lat: 40.7128, Lon: -74.0060},
		CaptureDate: time.Date(2023, 11, 5, 14, 45, 0, 0, time.UTC),
		Resolution:  "20m",
	}

	feature := FeatureFromCapture(capture)

	assert.Equal(t, FeatureType, feature.Type)
	assert.Equal(t, PointGeometryType, feature.Geometry.Type)
	assert.Equal(t, []float64{-74.0060, 40.7128}, feature.Geometry.Coordinates)
	assert.Equal(t, capture.Location, feature.Location())
	assert.Equal(t, "CAP12348", feature.Properties.CaptureID)
	assert.Equal(t, "20m", feature.Properties.Resolution)
}

func TestArchiveFeature_LocationWithoutCoordinates(t *testing.T) {
	feature := &ArchiveFeature{Geometry: FeatureGeometry{Type: PointGeometryType}}
	assert.Equal(t, Location{}, feature.Location())
}

func TestNewFeatureCollection_EmptyIsArray(t *testing.T) {
	body, err := json.Marshal(NewFeatureCollection(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(body))
}

func TestConfidence_Unmarshal(t *testing.T) {
	var c Confidence
	require.NoError(t, json.Unmarshal([]byte(`"Medium"`), &c))
	assert.Equal(t, ConfidenceMedium, c)

	assert.Error(t, json.Unmarshal([]byte(`"medium"`), &c))
	assert.Error(t, json.Unmarshal([]byte(`"Certain"`), &c))
	assert.Error(t, json.Unmarshal([]byte(`3`), &c))
}

func TestOpportunity_LocationOrDefault(t *testing.T) {
	withLocation := &Opportunity{ID: "OP1", Location: &Location{Lat: 1.5, Lon: -2.5}}
	assert.Equal(t, Location{Lat: 1.5, Lon: -2.5}, withLocation.LocationOrDefault())

	without := &Opportunity{ID: "OP2"}
	assert.Equal(t, Location{}, without.LocationOrDefault())
}

func TestOpportunity_JSON(t *testing.T) {
	op := &Opportunity{
		ID:                   "OP12349",
		EstimatedCaptureDate: time.Date(2023, 12, 15, 18, 0, 0, 0, time.UTC),
		Confidence:           ConfidenceLow,
	}

	body, err := json.Marshal(op)
	require.NoError(t, err)
	assert.JSONEq(t, `{"opportunityId":"OP12349","estimatedCaptureDate":"2023-12-15T18:00:00Z","confidence":"Low"}`, string(body))
}
