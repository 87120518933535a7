package models

import "time"

const (
	FeatureType           = "Feature"
	FeatureCollectionType = "FeatureCollection"
	PointGeometryType     = "Point"
)

// ArchiveFeature - съемка в формате GeoJSON-объекта
type ArchiveFeature struct {
	Type       string            `json:"type"`
	Geometry   FeatureGeometry   `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// FeatureGeometry - геометрия объекта. Coordinates хранятся в порядке [lon, lat].
type FeatureGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type FeatureProperties struct {
	CaptureID   string    `json:"captureId"`
	CaptureDate time.Time `json:"captureDate"`
	Resolution  string    `json:"resolution"`
}

// FeatureCollection - набор объектов архива
type FeatureCollection struct {
	Type     string            `json:"type"`
	Features []*ArchiveFeature `json:"features"`
}

// NewFeatureCollection оборачивает объекты в FeatureCollection
func NewFeatureCollection(features []*ArchiveFeature) *FeatureCollection {
	if features == nil {
		features = make([]*ArchiveFeature, 0)
	}
	return &FeatureCollection{Type: FeatureCollectionType, Features: features}
}

// FeatureFromCapture строит объект архива из съемки
func FeatureFromCapture(c *Capture) *ArchiveFeature {
	return &ArchiveFeature{
		Type: FeatureType,
		Geometry: FeatureGeometry{
			Type:        PointGeometryType,
			Coordinates: []float64{c.Location.Lon, c.Location.Lat},
		},
		Properties: FeatureProperties{
			CaptureID:   c.ID,
			CaptureDate: c.CaptureDate,
			Resolution:  c.Resolution,
		},
	}
}

// Location возвращает координаты объекта. Геометрия без двух координат считается точкой (0, 0).
func (f *ArchiveFeature) Location() Location {
	if len(f.Geometry.Coordinates) < 2 {
		return Location{}
	}
	return Location{Lat: f.Geometry.Coordinates[1], Lon: f.Geometry.Coordinates[0]}
}
