package service

import "github.com/weatherdash/backend/internal/domain"

var themes = map[domain.WeatherType]domain.Theme{
	domain.WeatherSunny: {
		Name:       "Sunny",
		Gradient:   "linear-gradient(135deg, #667eea 0%, #764ba2 50%, #f093fb 100%)",
		CardBg:     "rgba(255, 255, 255, 0.25)",
		TextColor:  "#ffffff",
		TextShadow: "0 2px 10px rgba(0, 0, 0, 0.1)",
		IconColor:  "#ffd700",
		Overlay:    "radial-gradient(circle at 30% 20%, rgba(255, 200, 0, 0.4) 0%, transparent 50%)",
	},
	domain.WeatherCloudy: {
		Name:       "Cloudy",
		Gradient:   "linear-gradient(135deg, #3a4b5c 0%, #607d8b 50%, #7f8c8d 100%)",
		CardBg:     "rgba(255, 255, 255, 0.15)",
		TextColor:  "#ffffff",
		TextShadow: "0 2px 10px rgba(0, 0, 0, 0.2)",
		IconColor:  "#b0bec5",
		Overlay:    "radial-gradient(circle at 70% 30%, rgba(100, 100, 100, 0.3) 0%, transparent 40%)",
	},
	domain.WeatherRainy: {
		Name:       "Rainy",
		Gradient:   "linear-gradient(135deg, #1a237e 0%, #311b92 50%, #4a148c 100%)",
		CardBg:     "rgba(255, 255, 255, 0.1)",
		TextColor:  "#ffffff",
		TextShadow: "0 2px 15px rgba(0, 0, 0, 0.3)",
		IconColor:  "#7c4dff",
		Overlay:    "radial-gradient(circle at 50% 50%, rgba(60, 20, 100, 0.4) 0%, transparent 60%)",
	},
	domain.WeatherSnowy: {
		Name:       "Snowy",
		Gradient:   "linear-gradient(135deg, #cfd9df 0%, #e2ebf0 50%, #ece9e6 100%)",
		CardBg:     "rgba(255, 255, 255, 0.6)",
		TextColor:  "#2c3e50",
		TextShadow: "0 2px 8px rgba(0, 0, 0, 0.1)",
		IconColor:  "#607d8b",
		Overlay:    "radial-gradient(circle at 40% 60%, rgba(255, 255, 255, 0.5) 0%, transparent 50%)",
	},
}

// ClassifyWeatherCode buckets a WMO weather code into a weather type
func ClassifyWeatherCode(code int) domain.WeatherType {
	switch {
	case code >= 0 && code <= 3:
		return domain.WeatherSunny
	case code >= 45 && code <= 48:
		return domain.WeatherCloudy
	case code >= 51 && code <= 67:
		return domain.WeatherRainy
	case code >= 71 && code <= 77:
		return domain.WeatherSnowy
	case code >= 80 && code <= 82:
		return domain.WeatherRainy
	case code >= 85 && code <= 86:
		return domain.WeatherSnowy
	case code >= 95 && code <= 99:
		return domain.WeatherRainy
	default:
		return domain.WeatherClear
	}
}

// GetWeatherTheme returns the page theme for a weather code.
// isDay is accepted for callers that track it; no night themes exist yet.
func GetWeatherTheme(code int, isDay bool) domain.Theme {
	_ = isDay
	if t, ok := themes[ClassifyWeatherCode(code)]; ok {
		return t
	}
	return themes[domain.WeatherSunny]
}

// GetWeatherIcon returns the emoji shown next to a weather code
func GetWeatherIcon(code int) string {
	switch {
	case code >= 0 && code <= 3:
		return "☀️"
	case code >= 45 && code <= 48:
		return "☁️"
	case code >= 51 && code <= 67:
		return "🌧️"
	case code >= 71 && code <= 77:
		return "❄️"
	case code >= 80 && code <= 82:
		return "🌦️"
	case code >= 85 && code <= 86:
		return "🌨️"
	case code >= 95 && code <= 99:
		return "⛈️"
	}
	return "☀️"
}

// DescribeWeatherCode returns the WMO interpretation of a code
// (https://open-meteo.com/en/docs)
func DescribeWeatherCode(code int) string {
	if desc, ok := wmoDescriptions[code]; ok {
		return desc
	}
	return "unknown"
}

var wmoDescriptions = map[int]string{
	0:  "clear sky",
	1:  "mainly clear",
	2:  "partly cloudy",
	3:  "overcast",
	45: "foggy",
	48: "depositing rime fog",
	51: "light drizzle",
	53: "moderate drizzle",
	55: "dense drizzle",
	56: "light freezing drizzle",
	57: "dense freezing drizzle",
	61: "slight rain",
	63: "moderate rain",
	65: "heavy rain",
	66: "light freezing rain",
	67: "heavy freezing rain",
	71: "slight snow fall",
	73: "moderate snow fall",
	75: "heavy snow fall",
	77: "snow grains",
	80: "slight rain showers",
	81: "moderate rain showers",
	82: "violent rain showers",
	85: "slight snow showers",
	86: "heavy snow showers",
	95: "thunderstorm",
	96: "thunderstorm with slight hail",
	99: "thunderstorm with heavy hail",
}

var sampleCodes = []struct {
	code int
	name string
}{
	{0, "Clear sky"},
	{1, "Mainly clear"},
	{45, "Foggy"},
	{48, "Depositing rime fog"},
	{51, "Light drizzle"},
	{61, "Slight rain"},
	{65, "Heavy rain"},
	{71, "Slight snow fall"},
	{77, "Snow grains"},
}

// ThemeSamples returns the fixed table used to eyeball every theme
func ThemeSamples() []domain.ThemeSample {
	out := make([]domain.ThemeSample, 0, len(sampleCodes))
	for _, s := range sampleCodes {
		out = append(out, domain.ThemeSample{
			Code:  s.code,
			Name:  s.name,
			Theme: GetWeatherTheme(s.code, true),
			Icon:  GetWeatherIcon(s.code),
		})
	}
	return out
}
