package tool

// WeatherConfig configures the OpenWeatherMap-backed weather tool.
// APIKey falls back to OPENWEATHER_API_KEY.
type WeatherConfig struct {
	APIKey  string `json:"apiKey,omitempty"`
	BaseURL string `json:"baseUrl,omitempty"`
}

// FlightConfig configures the OpenSky-backed flight tool.
type FlightConfig struct {
	BaseURL string `json:"baseUrl,omitempty"`
}

// WebToolsConfig groups web-related tool settings.
type WebToolsConfig struct {
	Weather        WeatherConfig `json:"weather"`
	Flight         FlightConfig  `json:"flight"`
	TimeoutSeconds int           `json:"timeout"`
}

func DefaultWebToolsConfig() WebToolsConfig {
	return WebToolsConfig{TimeoutSeconds: 15}
}
