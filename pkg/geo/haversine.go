package geo

import "math"

// EarthRadiusKm - средний радиус Земли в километрах
const EarthRadiusKm = 6371.0

// Point - точка на поверхности Земли в градусах
type Point struct {
	Lat float64
	Lon float64
}

// Distance возвращает расстояние по большой окружности между двумя точками в километрах (формула гаверсинуса).
// Диапазон координат не проверяется.
func Distance(a, b Point) float64 {
	phi1, phi2 := toRad(a.Lat), toRad(b.Lat)
	lambda1, lambda2 := toRad(a.Lon), toRad(b.Lon)

	dPhi := phi2 - phi1
	dLambda := lambda2 - lambda1

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	// h выходит за [0, 1] из-за округления или координат вне диапазона
	h = math.Max(0, math.Min(h, 1))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
