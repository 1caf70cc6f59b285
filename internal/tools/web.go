package tools

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

const (
	webUserAgent          = "toolbridge/1.0"
	maxResponseBytes      = 8 << 20
	defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultFlightBaseURL  = "https://opensky-network.org/api"
)

// validateURL checks that url is http(s) with a valid domain.
func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("only http/https allowed, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing domain in URL")
	}
	return nil
}

// getJSON issues a GET and returns the body for gjson queries.
func getJSON(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, redactURL(err, "")
	}
	req.Header.Set("User-Agent", webUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, redactURL(err, req.URL.Host)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON response")
	}
	return body, nil
}

// redactURL drops the request URL from err. Query strings may carry API keys
// and tool errors are shown to the model.
func redactURL(err error, host string) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	if host == "" {
		return fmt.Errorf("%s request failed: %w", ue.Op, ue.Err)
	}
	return fmt.Errorf("%s %s failed: %w", ue.Op, host, ue.Err)
}

func newWeatherTool(env Env) schema.ToolDescriptor {
	type weather struct {
		City        string  `json:"city"`
		Country     string  `json:"country"`
		Temperature float64 `json:"temperature"`
		Description string  `json:"description"`
		Humidity    float64 `json:"humidity"`
		Pressure    float64 `json:"pressure"`
		WindSpeed   float64 `json:"windSpeed"`
		FetchedAt   string  `json:"fetchedAt"`
	}
	type weatherError struct {
		Error string `json:"error"`
		City  string `json:"city,omitempty"`
	}
	base := env.WeatherBaseURL
	if base == "" {
		base = defaultWeatherBaseURL
	}
	return schema.ToolDescriptor{
		Name:        string(ToolWeather),
		Title:       "Get Weather",
		Description: "Gets weather information for a city (uses OpenWeatherMap - requires API key in env var OPENWEATHER_API_KEY).",
		Params: []schema.Param{
			schema.StringParam{Name: "city", Description: "The city name to get weather information for"},
		},
		Handler: func(ctx context.Context, args schema.Args) schema.ToolResult {
			city, ok := requiredString(args, "city")
			if !ok {
				return schema.JSONError(weatherError{Error: "city is required"})
			}
			if env.WeatherAPIKey == "" {
				return schema.JSONError(weatherError{Error: "OPENWEATHER_API_KEY environment variable not set"})
			}
			q := url.Values{}
			q.Set("q", city)
			q.Set("appid", env.WeatherAPIKey)
			q.Set("units", "metric")

			body, err := getJSON(ctx, env.httpClient(), strings.TrimRight(base, "/")+"/weather?"+q.Encode())
			if err != nil {
				return schema.JSONError(weatherError{Error: "Weather API error: " + err.Error(), City: city})
			}
			doc := gjson.ParseBytes(body)
			return schema.JSONContent(weather{
				City:        doc.Get("name").String(),
				Country:     doc.Get("sys.country").String(),
				Temperature: doc.Get("main.temp").Float(),
				Description: doc.Get("weather.0.description").String(),
				Humidity:    doc.Get("main.humidity").Float(),
				Pressure:    doc.Get("main.pressure").Float(),
				WindSpeed:   doc.Get("wind.speed").Float(),
				FetchedAt:   env.now().UTC().Format(time.RFC3339),
			})
		},
	}
}

func newFlightInfoTool(env Env) schema.ToolDescriptor {
	type flight struct {
		Source        string `json:"source"`
		ICAO24        string `json:"icao24"`
		Callsign      string `json:"callsign"`
		OriginCountry string `json:"origin_country"`
		Longitude     any    `json:"longitude"`
		Latitude      any    `json:"latitude"`
		Altitude      any    `json:"altitude"`
		OnGround      bool   `json:"on_ground"`
		Velocity      any    `json:"velocity"`
		FetchedAt     string `json:"fetchedAt"`
	}
	type flightError struct {
		Error   string `json:"error"`
		Queried string `json:"queried,omitempty"`
	}
	base := env.FlightBaseURL
	if base == "" {
		base = defaultFlightBaseURL
	}
	return schema.ToolDescriptor{
		Name:        string(ToolFlightInfo),
		Title:       "Flight Info Tool",
		Description: "Gets real-time flight info from OpenSky by callsign or icao24. Returns JSON.",
		Params: []schema.Param{
			schema.StringParam{Name: "idOrCallsign", Description: "The flight callsign or ICAO24 identifier (e.g., 'UAL123' or '4b1234')"},
		},
		Handler: func(ctx context.Context, args schema.Args) schema.ToolResult {
			query, ok := requiredString(args, "idOrCallsign")
			if !ok {
				return schema.JSONError(flightError{Error: "idOrCallsign cannot be empty"})
			}
			body, err := getJSON(ctx, env.httpClient(), strings.TrimRight(base, "/")+"/states/all")
			if err != nil {
				return schema.JSONError(flightError{Error: err.Error(), Queried: query})
			}
			states := gjson.GetBytes(body, "states")
			if !states.IsArray() {
				return schema.JSONError(flightError{Error: "No flight data available"})
			}

			want := normalizeFlightID(query)
			var found *flight
			states.ForEach(func(_, st gjson.Result) bool {
				icao := st.Get("0").String()
				callsign := strings.TrimSpace(st.Get("1").String())
				if strings.ToLower(icao) != want && (callsign == "" || normalizeFlightID(callsign) != want) {
					return true
				}
				found = &flight{
					Source:        "opensky",
					ICAO24:        icao,
					Callsign:      callsign,
					OriginCountry: st.Get("2").String(),
					Longitude:     st.Get("5").Value(),
					Latitude:      st.Get("6").Value(),
					Altitude:      st.Get("7").Value(),
					OnGround:      st.Get("8").Bool(),
					Velocity:      st.Get("9").Value(),
					FetchedAt:     env.now().UTC().Format(time.RFC3339),
				}
				return false
			})
			if found == nil {
				return schema.JSONError(flightError{Error: "flight not found", Queried: query})
			}
			return schema.JSONContent(found)
		},
	}
}

func normalizeFlightID(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

func newOpenWebsiteTool(env Env) schema.ToolDescriptor {
	open := env.OpenURL
	if open == nil {
		open = openInBrowser
	}
	return schema.ToolDescriptor{
		Name:        string(ToolOpenWebsite),
		Title:       "Browser Tool",
		Description: "Opens a website in the default browser. Accepts URLs like 'chatgpt.com' or 'www.chatgpt.com'.",
		Params: []schema.Param{
			schema.StringParam{Name: "url", Description: "The website URL to open (e.g., 'chatgpt.com', 'www.google.com', or 'https://example.com')"},
		},
		Handler: func(ctx context.Context, args schema.Args) schema.ToolResult {
			raw, ok := requiredString(args, "url")
			if !ok {
				return schema.ErrorResult("Error: URL cannot be empty")
			}
			target := normalizeWebsiteURL(raw)
			if err := validateURL(target); err != nil {
				return schema.ErrorResult("Error launching website: %v", err)
			}
			if err := open(ctx, target); err != nil {
				return schema.ErrorResult("Error launching website: %v", err)
			}
			return schema.TextContent("Website launched: " + target)
		},
	}
}

// normalizeWebsiteURL adds https:// when no scheme is given.
func normalizeWebsiteURL(raw string) string {
	u := strings.TrimSpace(raw)
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}
	return u
}

func openInBrowser(ctx context.Context, target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", target)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", target)
	}
	return cmd.Run()
}
