package models

import "github.com/shenikar/imagery_catalog/pkg/geo"

// Location - координаты точки съемки
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Point преобразует Location в точку для геовычислений
func (l Location) Point() geo.Point {
	return geo.Point{Lat: l.Lat, Lon: l.Lon}
}
