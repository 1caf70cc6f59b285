package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

var fixedNow = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }

func TestWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Oslo", r.URL.Query().Get("q"))
		assert.Equal(t, "k", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		_, _ = w.Write([]byte(`{"name":"Oslo","sys":{"country":"NO"},"main":{"temp":3.5,"humidity":80,"pressure":1012},"weather":[{"description":"light snow"}],"wind":{"speed":4.1}}`))
	}))
	defer srv.Close()

	env := Env{WeatherAPIKey: "k", WeatherBaseURL: srv.URL, Now: fixedNow}
	out, isErr := call(t, newWeatherTool(env), schema.Args{"city": "Oslo"})
	require.False(t, isErr, out)

	m := decodeJSON(t, out)
	assert.Equal(t, "Oslo", m["city"])
	assert.Equal(t, "NO", m["country"])
	assert.Equal(t, 3.5, m["temperature"])
	assert.Equal(t, "light snow", m["description"])
	assert.Equal(t, 4.1, m["windSpeed"])
	assert.Equal(t, "2024-03-01T10:00:00Z", m["fetchedAt"])
}

func TestWeather_Errors(t *testing.T) {
	out, isErr := call(t, newWeatherTool(Env{}), schema.Args{"city": "Oslo"})
	require.True(t, isErr)
	assert.Contains(t, out, "OPENWEATHER_API_KEY")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	out, isErr = call(t, newWeatherTool(Env{WeatherAPIKey: "bad", WeatherBaseURL: srv.URL}), schema.Args{"city": "Oslo"})
	require.True(t, isErr)
	assert.Contains(t, out, "401")
}

func TestWeather_TransportErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	out, isErr := call(t, newWeatherTool(Env{WeatherAPIKey: "SECRET123", WeatherBaseURL: base}), schema.Args{"city": "Oslo"})
	require.True(t, isErr)
	assert.Contains(t, out, "Weather API error")
	assert.NotContains(t, out, "SECRET123")
	assert.NotContains(t, out, "appid")
}

func TestFlightInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/states/all", r.URL.Path)
		_, _ = w.Write([]byte(`{"time":1,"states":[
			["abc123","DLH4   ","Germany",1,1,8.5,50.1,11000,false,240.5],
			["4b1234","UAL123  ","United States",1,1,-87.9,41.9,null,true,0]
		]}`))
	}))
	defer srv.Close()

	env := Env{FlightBaseURL: srv.URL, Now: fixedNow}

	out, isErr := call(t, newFlightInfoTool(env), schema.Args{"idOrCallsign": "ual 123"})
	require.False(t, isErr, out)
	m := decodeJSON(t, out)
	assert.Equal(t, "opensky", m["source"])
	assert.Equal(t, "4b1234", m["icao24"])
	assert.Equal(t, "UAL123", m["callsign"])
	assert.Equal(t, "United States", m["origin_country"])
	assert.Nil(t, m["altitude"])
	assert.Equal(t, true, m["on_ground"])

	out, isErr = call(t, newFlightInfoTool(env), schema.Args{"idOrCallsign": "ABC123"})
	require.False(t, isErr, out)
	assert.Equal(t, "DLH4", decodeJSON(t, out)["callsign"])

	out, isErr = call(t, newFlightInfoTool(env), schema.Args{"idOrCallsign": "zzz"})
	require.True(t, isErr)
	assert.Equal(t, "flight not found", decodeJSON(t, out)["error"])
}

func TestOpenWebsite(t *testing.T) {
	var opened string
	env := Env{OpenURL: func(_ context.Context, u string) error {
		opened = u
		return nil
	}}

	out, isErr := call(t, newOpenWebsiteTool(env), schema.Args{"url": "example.com"})
	require.False(t, isErr, out)
	assert.Equal(t, "https://example.com", opened)
	assert.Equal(t, "Website launched: https://example.com", out)

	_, isErr = call(t, newOpenWebsiteTool(env), schema.Args{"url": "  "})
	assert.True(t, isErr)
}
