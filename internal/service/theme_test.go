package service

import (
	"testing"

	"github.com/weatherdash/backend/internal/domain"
)

func TestClassifyWeatherCode(t *testing.T) {
	tests := []struct {
		code int
		want domain.WeatherType
	}{
		{0, domain.WeatherSunny},
		{3, domain.WeatherSunny},
		{4, domain.WeatherClear},
		{44, domain.WeatherClear},
		{45, domain.WeatherCloudy},
		{48, domain.WeatherCloudy},
		{49, domain.WeatherClear},
		{51, domain.WeatherRainy},
		{67, domain.WeatherRainy},
		{68, domain.WeatherClear},
		{71, domain.WeatherSnowy},
		{77, domain.WeatherSnowy},
		{80, domain.WeatherRainy},
		{82, domain.WeatherRainy},
		{85, domain.WeatherSnowy},
		{86, domain.WeatherSnowy},
		{95, domain.WeatherRainy},
		{99, domain.WeatherRainy},
		{100, domain.WeatherClear},
		{-1, domain.WeatherClear},
	}
	for _, tt := range tests {
		if got := ClassifyWeatherCode(tt.code); got != tt.want {
			t.Errorf("ClassifyWeatherCode(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestGetWeatherThemeNames(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Sunny"},
		{45, "Cloudy"},
		{61, "Rainy"},
		{81, "Rainy"},
		{96, "Rainy"},
		{73, "Snowy"},
		{86, "Snowy"},
		{10, "Sunny"},
		{150, "Sunny"},
	}
	for _, tt := range tests {
		if got := GetWeatherTheme(tt.code, true).Name; got != tt.want {
			t.Errorf("GetWeatherTheme(%d).Name = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestGetWeatherThemeIgnoresIsDay(t *testing.T) {
	for _, code := range []int{0, 45, 61, 71} {
		if GetWeatherTheme(code, true) != GetWeatherTheme(code, false) {
			t.Errorf("theme for code %d differs between day and night", code)
		}
	}
}

func TestSnowyThemeUsesDarkText(t *testing.T) {
	theme := GetWeatherTheme(71, true)
	if theme.TextColor != "#2c3e50" {
		t.Fatalf("expected dark text on snowy theme, got %s", theme.TextColor)
	}
	if theme.CardBg != "rgba(255, 255, 255, 0.6)" {
		t.Fatalf("unexpected snowy card background %s", theme.CardBg)
	}
}

func TestGetWeatherIcon(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "☀️"},
		{2, "☀️"},
		{45, "☁️"},
		{55, "🌧️"},
		{75, "❄️"},
		{80, "🌦️"},
		{85, "🌨️"},
		{95, "⛈️"},
		{20, "☀️"},
		{120, "☀️"},
	}
	for _, tt := range tests {
		if got := GetWeatherIcon(tt.code); got != tt.want {
			t.Errorf("GetWeatherIcon(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestDescribeWeatherCode(t *testing.T) {
	if got := DescribeWeatherCode(63); got != "moderate rain" {
		t.Fatalf("expected moderate rain, got %q", got)
	}
	if got := DescribeWeatherCode(42); got != "unknown" {
		t.Fatalf("expected unknown, got %q", got)
	}
}

func TestThemeSamples(t *testing.T) {
	samples := ThemeSamples()
	if len(samples) != 9 {
		t.Fatalf("expected 9 samples, got %d", len(samples))
	}
	want := map[int]string{0: "Sunny", 1: "Sunny", 45: "Cloudy", 48: "Cloudy", 51: "Rainy", 61: "Rainy", 65: "Rainy", 71: "Snowy", 77: "Snowy"}
	for _, s := range samples {
		if s.Theme.Name != want[s.Code] {
			t.Errorf("sample %d (%s): theme %q, want %q", s.Code, s.Name, s.Theme.Name, want[s.Code])
		}
		if s.Icon != GetWeatherIcon(s.Code) {
			t.Errorf("sample %d: icon mismatch", s.Code)
		}
	}
}
