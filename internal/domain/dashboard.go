package domain

import "time"

// ForecastDay is one row of the 7-day strip
type ForecastDay struct {
	Day  string `json:"day"`
	High int    `json:"high"`
	Low  int    `json:"low"`
	Icon string `json:"icon"`
	Type string `json:"type"`
}

// DashboardData is the display-ready view model for a single location
type DashboardData struct {
	Location    string        `json:"location"`
	City        string        `json:"city"`
	CurrentTemp int           `json:"current_temp"`
	WeatherIcon string        `json:"weather_icon"`
	WeatherType string        `json:"weather_type"`
	Humidity    string        `json:"humidity"`
	WindSpeed   string        `json:"wind_speed"`
	HighTemp    int           `json:"high_temp"`
	LowTemp     int           `json:"low_temp"`
	Forecast    []ForecastDay `json:"forecast"`
}

// DashboardResponse is what the dashboard page is rendered from.
// Data is nil and Error is set when the lookup failed.
type DashboardResponse struct {
	Data  *DashboardData `json:"data"`
	Theme Theme          `json:"theme"`
	Error *string        `json:"error"`
}

// ThemeSample is one row of the theme debug table
type ThemeSample struct {
	Code  int    `json:"code"`
	Name  string `json:"name"`
	Theme Theme  `json:"theme"`
	Icon  string `json:"icon"`
}

// Lookup records a successful dashboard request
type Lookup struct {
	ID          string    `json:"id"`
	Location    string    `json:"location"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	WeatherCode int       `json:"weather_code"`
	WeatherType string    `json:"weather_type"`
	Temperature float64   `json:"temperature"`
	Timestamp   time.Time `json:"timestamp"`
}
