package utils

type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}
