package geo

import "math"

// earthRadiusM radius bumi rata-rata dalam meter (WGS-84).
const earthRadiusM = 6371000.0

// DistanceM menghitung jarak haversine antara dua koordinat dalam meter.
func DistanceM(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusM * c
}

// WithinRadius true jika titik (lat, lng) berada dalam radius meter dari titik pusat.
func WithinRadius(centerLat, centerLng, lat, lng, radiusM float64) bool {
	return DistanceM(centerLat, centerLng, lat, lng) <= radiusM
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}
