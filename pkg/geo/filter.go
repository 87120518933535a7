package geo

// Within возвращает элементы, расстояние от которых до center не превышает radiusKm.
// Граница включительная, порядок исходного среза сохраняется, сам срез не изменяется.
func Within[T any](items []T, locate func(T) Point, center Point, radiusKm float64) []T {
	result := make([]T, 0)
	for _, item := range items {
		if Distance(center, locate(item)) <= radiusKm {
			result = append(result, item)
		}
	}
	return result
}
