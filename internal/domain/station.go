package domain

// Station describes a geodetic station for tropospheric mapping.
type Station struct {
	ID           string   `json:"station_id"`
	Name         string   `json:"name,omitempty"`
	LatitudeDeg  float64  `json:"latitude_deg"`
	LongitudeDeg float64  `json:"longitude_deg"`
	HeightM      float64  `json:"height_m"`
	TemperatureK *float64 `json:"temperature_k,omitempty"` // Mean surface temperature, if known.
}
