package predict

// Confidence buckets a positive-class probability by its distance from 0.5.
// Probabilities near either end of [0,1] are confident calls in both
// directions; the band around 0.5 is not.
func Confidence(p float64) string {
	switch {
	case p >= 0.8 || p <= 0.2:
		return "High"
	case p >= 0.6 || p <= 0.4:
		return "Medium"
	default:
		return "Low"
	}
}
