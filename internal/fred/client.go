package fred

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"EconTrack/internal/model"
)

// DefaultBaseURL is the public FRED API endpoint.
const DefaultBaseURL = "https://api.stlouisfed.org"

// Client fetches series observations and metadata from the FRED REST API.
// Every request carries the api_key and file_type=json parameters.
type Client struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewClient creates a FRED client with optional proxy support.
func NewClient(apiKey, proxyURL string) *Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// SeriesInfo is the metadata subset attached to indicator rows.
type SeriesInfo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Frequency string `json:"frequency"`
	Units     string `json:"units"`
}

// Series fetches observations for the closed interval [start, end]. A zero
// start or end leaves that bound off, which returns the full series. Dates
// the provider has no value for come back with a nil Value.
func (c *Client) Series(seriesID string, start, end time.Time) ([]model.Observation, error) {
	q := url.Values{}
	q.Set("series_id", seriesID)
	if !start.IsZero() {
		q.Set("observation_start", start.Format(model.DateFormat))
	}
	if !end.IsZero() {
		q.Set("observation_end", end.Format(model.DateFormat))
	}
	body, err := c.get("/fred/series/observations", q)
	if err != nil {
		return nil, fmt.Errorf("series %s: %w", seriesID, err)
	}
	defer body.Close()
	obs, err := parseObservations(body)
	if err != nil {
		return nil, fmt.Errorf("series %s: %w", seriesID, err)
	}
	return obs, nil
}

// Info fetches series metadata (title, frequency, units).
func (c *Client) Info(seriesID string) (SeriesInfo, error) {
	q := url.Values{}
	q.Set("series_id", seriesID)
	body, err := c.get("/fred/series", q)
	if err != nil {
		return SeriesInfo{}, fmt.Errorf("series info %s: %w", seriesID, err)
	}
	defer body.Close()
	info, err := parseInfo(body)
	if err != nil {
		return SeriesInfo{}, fmt.Errorf("series info %s: %w", seriesID, err)
	}
	return info, nil
}

// fredError is the JSON shape FRED returns for non-200 responses.
type fredError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

func (c *Client) get(path string, q url.Values) (io.ReadCloser, error) {
	q.Set("api_key", c.APIKey)
	q.Set("file_type", "json")

	req, err := http.NewRequest("GET", c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fred fetch: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		var fe fredError
		if json.Unmarshal(body, &fe) == nil && fe.Message != "" {
			return nil, fmt.Errorf("fred: %s (status %d)", fe.Message, resp.StatusCode)
		}
		return nil, fmt.Errorf("fred: status %d, body: %s", resp.StatusCode, string(body))
	}
	return resp.Body, nil
}

// parseObservations decodes the /fred/series/observations payload. FRED marks
// missing observations with a "." value; those rows keep a nil Value.
func parseObservations(r io.Reader) ([]model.Observation, error) {
	var payload struct {
		Observations []struct {
			Date  string `json:"date"`
			Value string `json:"value"`
		} `json:"observations"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode observations: %w", err)
	}
	obs := make([]model.Observation, 0, len(payload.Observations))
	for _, o := range payload.Observations {
		date, err := time.Parse(model.DateFormat, o.Date)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", o.Date, err)
		}
		row := model.Observation{Date: date}
		if o.Value != "" && o.Value != "." {
			v, err := strconv.ParseFloat(o.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("parse value %q at %s: %w", o.Value, o.Date, err)
			}
			row.Value = model.Float(v)
		}
		obs = append(obs, row)
	}
	return obs, nil
}

// parseInfo decodes the /fred/series payload. The provider wraps the single
// result in a list keyed "seriess".
func parseInfo(r io.Reader) (SeriesInfo, error) {
	var payload struct {
		Seriess []SeriesInfo `json:"seriess"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return SeriesInfo{}, fmt.Errorf("decode series info: %w", err)
	}
	if len(payload.Seriess) == 0 {
		return SeriesInfo{}, errors.New("empty series info")
	}
	return payload.Seriess[0], nil
}
