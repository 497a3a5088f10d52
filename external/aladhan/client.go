package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// Timings is the nested timings object of a timing-service response. The
// service capitalizes prayer names; remapping to canonical lowercase keys
// happens in the prayer package.
type Timings struct {
	Fajr    string `json:"Fajr"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings Timings `json:"timings"`
	} `json:"data"`
}

// Client queries the aladhan.com prayer timing API.
type Client struct {
	endpoint string
	client   *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// DateString renders t the way the timing API expects: D-M-YYYY, no zero
// padding, in t's own calendar.
func DateString(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Day(), int(t.Month()), t.Year())
}

// GetTimings fetches the five daily prayer times for one coordinate, date
// and calculation-method index.
func (a *Client) GetTimings(ctx context.Context, lat, lng float64, date time.Time, methodIndex int) (*Timings, error) {
	query := url.Values{
		"latitude":  []string{strconv.FormatFloat(lat, 'f', -1, 64)},
		"longitude": []string{strconv.FormatFloat(lng, 'f', -1, 64)},
		"method":    []string{strconv.Itoa(methodIndex)},
	}

	reqString := fmt.Sprintf("%s/v1/timings/%s?%s", a.endpoint, DateString(date), query.Encode())
	log.WithField("prefix", "aladhan").WithField("req", reqString).Debug("request to timing service")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqString, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		dumpBytes, _ := httputil.DumpResponse(resp, true)
		log.WithField("prefix", "aladhan").WithField("resp", string(dumpBytes)).Error("error response from timing service")
		return nil, fmt.Errorf("fail to fetch prayer times: %s", resp.Status)
	}

	var body timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	return &body.Data.Timings, nil
}
