package domain

// WeatherType is the condition bucket a WMO weather code falls into
type WeatherType string

const (
	WeatherSunny  WeatherType = "sunny"
	WeatherCloudy WeatherType = "cloudy"
	WeatherRainy  WeatherType = "rainy"
	WeatherSnowy  WeatherType = "snowy"
	// WeatherClear is used for codes outside every known range; it renders as sunny.
	WeatherClear WeatherType = "clear"
)

// Theme holds the CSS values a page uses for one weather type
type Theme struct {
	Name       string `json:"name"`
	Gradient   string `json:"gradient"`
	CardBg     string `json:"card_bg"`
	TextColor  string `json:"text_color"`
	TextShadow string `json:"text_shadow"`
	IconColor  string `json:"icon_color"`
	Overlay    string `json:"overlay"`
}

// Location is a resolved geocoding hit
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Admin1    string  `json:"admin1,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
}

// CurrentConditions mirrors the "current" block of the forecast API.
// Pointer fields are nil when the upstream omitted them.
type CurrentConditions struct {
	Time        string   `json:"time,omitempty"`
	Temperature *float64 `json:"temperature_2m,omitempty"`
	WeatherCode *int     `json:"weather_code,omitempty"`
	IsDay       *int     `json:"is_day,omitempty"`
	Humidity    *float64 `json:"relative_humidity_2m,omitempty"`
	WindSpeed   *float64 `json:"wind_speed_10m,omitempty"`
}

// DailySeries mirrors the "daily" block of the forecast API (parallel arrays)
type DailySeries struct {
	Time        []string  `json:"time"`
	WeatherCode []int     `json:"weather_code"`
	TempMax     []float64 `json:"temperature_2m_max"`
	TempMin     []float64 `json:"temperature_2m_min"`
}

// Forecast is the raw forecast for one coordinate pair
type Forecast struct {
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Timezone  string            `json:"timezone"`
	Current   CurrentConditions `json:"current"`
	Daily     DailySeries       `json:"daily"`
}
