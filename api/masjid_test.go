package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mud-ali/DIHacks2025/consts"
	"github.com/mud-ali/DIHacks2025/geo"
)

func TestRankMasjidDistancesHandler(t *testing.T) {
	s := newTestServer()

	body := `{"userLatitude":40.7128,"userLongitude":-74.006,
		"masajid":[{"id":"a","latitude":40.73,"longitude":-73.99},{"id":"b","latitude":40.75}]}`

	req := httptest.NewRequest(http.MethodPost, "/masjid/distances", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var ranked []geo.RankedMasjid
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ranked))
	assert.Len(t, ranked, 2)
	assert.NotNil(t, ranked[0].Distance)
	assert.Nil(t, ranked[1].Distance)
	assert.NotEmpty(t, ranked[1].Error)
}

func TestRankMasjidDistancesMissingOrigin(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/masjid/distances",
		strings.NewReader(`{"masajid":[{"id":"a","latitude":1,"longitude":1}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required as numbers")
}

func TestRankMasjidDistancesEmptyBatch(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/masjid/distances",
		strings.NewReader(`{"userLatitude":1,"userLongitude":1,"masajid":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot be empty")
}

func TestListCalculationMethods(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/calculationmethods", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Methods []string `json:"methods"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, consts.SupportedCalculationMethods, body.Methods)
	assert.Equal(t, "Islamic Society of North America", body.Methods[2])
}

func TestListServices(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "funeral")
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Status: up", w.Body.String())
}

func TestParseGeoPosition(t *testing.T) {
	lat, lng, err := parseGeoPosition("40.7128;-74.006")
	assert.NoError(t, err)
	assert.Equal(t, 40.7128, lat)
	assert.Equal(t, -74.006, lng)

	_, _, err = parseGeoPosition("40.7128")
	assert.Error(t, err)

	_, _, err = parseGeoPosition("91;0")
	assert.Error(t, err)

	_, _, err = parseGeoPosition("abc;def")
	assert.Error(t, err)
}
