package models

import "github.com/shenikar/imagery_catalog/pkg/geo"

// AreaQuery - параметры поиска по радиусу вокруг точки
type AreaQuery struct {
	Lat      float64
	Lon      float64
	RadiusKm float64
}

// Center возвращает центр области поиска
func (q AreaQuery) Center() geo.Point {
	return geo.Point{Lat: q.Lat, Lon: q.Lon}
}
