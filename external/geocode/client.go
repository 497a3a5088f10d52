package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// QueryResult is one candidate match from the geocoding service. The service
// returns coordinates as strings.
type QueryResult struct {
	PlaceID     int     `json:"place_id"`
	Latitude    float64 `json:"lat,string"`
	Longitude   float64 `json:"lon,string"`
	DisplayName string  `json:"display_name"`
	Class       string  `json:"class"`
	Type        string  `json:"type"`
}

// Client queries the forward-geocoding service (geocode.maps.co compatible).
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
	limiter  *rate.Limiter
}

func New(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		// the free tier throttles aggressively; stay under one request a second
		limiter: rate.NewLimiter(rate.Limit(1), 1),
	}
}

// Search issues a forward-geocoding lookup and returns the ordered candidate
// list as-is. Ranking among candidates is the caller's concern.
func (g *Client) Search(ctx context.Context, query string) ([]QueryResult, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.URL{
		Path: "search",
		RawQuery: url.Values{
			"q":       []string{query},
			"api_key": []string{g.apiKey},
		}.Encode(),
	}

	reqString := fmt.Sprintf("%s/%s", g.endpoint, q.String())
	log.WithField("prefix", "geocode").WithField("q", query).Debug("request to geocoding service")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqString, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		dumpBytes, _ := httputil.DumpResponse(resp, true)
		log.WithField("prefix", "geocode").WithField("resp", string(dumpBytes)).Error("error response from geocoding service")
		return nil, fmt.Errorf("fail to query address")
	}

	var result []QueryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result, nil
}
