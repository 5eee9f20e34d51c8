package weather

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"upb/internal/core"
	"upb/internal/netclient"
)

const (
	defaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"
)

// Коды погоды WMO, используемые forecast API.
var conditions = map[int]string{
	0:  "clear sky",
	1:  "mainly clear",
	2:  "partly cloudy",
	3:  "overcast",
	45: "fog",
	48: "depositing rime fog",
	51: "light drizzle",
	53: "drizzle",
	55: "dense drizzle",
	61: "slight rain",
	63: "rain",
	65: "heavy rain",
	71: "slight snow",
	73: "snow",
	75: "heavy snow",
	80: "rain showers",
	81: "moderate rain showers",
	82: "violent rain showers",
	95: "thunderstorm",
	96: "thunderstorm with hail",
	99: "thunderstorm with heavy hail",
}

// Module запрашивает погоду в два шага: геокодирование места, затем прогноз.
type Module struct {
	Client      *netclient.Client
	GeocodeURL  string
	ForecastURL string
}

func (m *Module) Name() string  { return "weather" }
func (m *Module) Usage() string { return "weather <place>" }

func (m *Module) Init(ctx context.Context) error {
	if m.GeocodeURL == "" {
		m.GeocodeURL = defaultGeocodeURL
	}
	if m.ForecastURL == "" {
		m.ForecastURL = defaultForecastURL
	}
	return nil
}

func (m *Module) Execute(ctx context.Context, args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, core.NewUsageError(m)
	}
	place := strings.Join(args, " ")

	q := url.Values{}
	q.Set("name", place)
	q.Set("count", "1")
	geo, err := m.Client.FetchRecord(ctx, m.GeocodeURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}
	results := geo.List("results")
	if len(results) == 0 {
		return nil, fmt.Errorf("place %q not found", place)
	}
	loc, ok := results[0].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("place %q not found", place)
	}
	locRec := netclient.Record(loc)
	lat, latOK := locRec.Num("latitude")
	lon, lonOK := locRec.Num("longitude")
	if !latOK || !lonOK {
		return nil, fmt.Errorf("geocoder returned no coordinates for %q", place)
	}

	fq := url.Values{}
	fq.Set("latitude", fmt.Sprintf("%.4f", lat))
	fq.Set("longitude", fmt.Sprintf("%.4f", lon))
	fq.Set("current_weather", "true")
	forecast, err := m.Client.FetchRecord(ctx, m.ForecastURL+"?"+fq.Encode())
	if err != nil {
		return nil, err
	}
	current := forecast.Rec("current_weather")

	name := locRec.Str("name")
	if country := locRec.Str("country"); country != core.Placeholder {
		name += ", " + country
	}
	condition := core.Placeholder
	if code, ok := current.Num("weathercode"); ok {
		if text, known := conditions[int(code)]; known {
			condition = text
		}
	}
	return []string{
		"Weather in " + name,
		fmt.Sprintf("temperature: %s C", current.NumStr("temperature")),
		"condition: " + condition,
		fmt.Sprintf("wind: %s km/h", current.NumStr("windspeed")),
	}, nil
}
