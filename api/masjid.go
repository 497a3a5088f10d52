package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mud-ali/DIHacks2025/geo"
	"github.com/mud-ali/DIHacks2025/schema"
	"github.com/mud-ali/DIHacks2025/store"
)

type masjidParams struct {
	Name              string              `json:"name"`
	Address           string              `json:"address"`
	Latitude          *float64            `json:"latitude"`
	Longitude         *float64            `json:"longitude"`
	CalculationMethod *string             `json:"calculationMethod"`
	Description       *string             `json:"description"`
	Phone             *string             `json:"phone"`
	Email             *string             `json:"email"`
	Services          []string            `json:"services"`
	PrayerTimes       *schema.PrayerTimes `json:"prayerTimes"`
}

// createMasjid registers a new center: resolve the coordinate, enrich with
// prayer times, validate, persist, and grant the requester admin rights over
// the new record.
func (s *Server) createMasjid(c *gin.Context) {
	var body masjidParams
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	loc, err := geo.ResolveCoordinate(c.Request.Context(), body.Latitude, body.Longitude, body.Address)
	if err != nil {
		switch err {
		case geo.ErrAddressRequired:
			abortWithEncoding(c, http.StatusBadRequest, "Address is required if coordinates are not provided.")
		case geo.ErrLocationNotFound:
			abortWithEncoding(c, http.StatusBadRequest, "Unable to geocode address.")
		default:
			abortWithEncoding(c, http.StatusBadRequest, "Unable to geocode address.", err)
		}
		return
	}

	method := ""
	if body.CalculationMethod != nil {
		method = *body.CalculationMethod
	}

	// best-effort: an unreachable timing service yields an empty schedule
	prayerTimes := s.prayerFetcher.Fetch(c.Request.Context(), loc, time.Now(), method)

	masjid := &schema.Masjid{
		Name:              body.Name,
		Address:           body.Address,
		Latitude:          loc.Latitude,
		Longitude:         loc.Longitude,
		CalculationMethod: method,
		Services:          body.Services,
		PrayerTimes:       prayerTimes,
	}
	if body.Description != nil {
		masjid.Description = *body.Description
	}
	if body.Phone != nil {
		masjid.Phone = *body.Phone
	}
	if body.Email != nil {
		masjid.Email = *body.Email
	}
	if masjid.Services == nil {
		masjid.Services = []string{}
	}

	if details := masjid.Validate(); len(details) > 0 {
		messages := make([]string, 0, len(details))
		for _, d := range details {
			messages = append(messages, d.Message)
		}
		abortWithValidation(c, http.StatusBadRequest, messages)
		return
	}

	created, err := s.mongoStore.CreateMasjid(masjid)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if claims, ok := currentUser(c); ok {
		if userID, err := primitive.ObjectIDFromHex(claims.UserID); err == nil {
			if err := s.mongoStore.GrantMasjidAdmin(userID, created.ID); err != nil {
				abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
				return
			}
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Masjid created successfully",
		"data":    created,
	})
}

// listMasjid returns all masajid. With a near=lat;lng query the list comes
// back proximity-ordered with kilometer distances attached.
func (s *Server) listMasjid(c *gin.Context) {
	var query struct {
		Near  string `form:"near"`
		Sort  string `form:"sort"`
		Limit int64  `form:"limit,default=100"`
	}

	if err := c.BindQuery(&query); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var masajid []schema.Masjid
	var err error

	if query.Near != "" {
		lat, lng, parseErr := parseGeoPosition(query.Near)
		if parseErr != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, parseErr)
			return
		}
		masajid, err = s.mongoStore.NearbyMasjid(schema.Location{Latitude: lat, Longitude: lng}, query.Limit)
	} else {
		masajid, err = s.mongoStore.ListMasjid()
	}

	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, "Failed to fetch masajid data", err)
		return
	}

	switch geo.SortKey(query.Sort) {
	case geo.SortByName, geo.SortByAddress, geo.SortByDistance:
		masajid = geo.SortMasajid(masajid, geo.SortKey(query.Sort))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(masajid),
		"data":    masajid,
	})
}

func (s *Server) getMasjid(c *gin.Context) {
	masjidID, err := primitive.ObjectIDFromHex(c.Param("masjidID"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorMasjidNotFound)
		return
	}

	masjid, err := s.mongoStore.GetMasjid(masjidID)
	if err != nil {
		switch err {
		case store.ErrMasjidNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorMasjidNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, "Failed to fetch masajid data", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   1,
		"data":    []schema.Masjid{*masjid},
	})
}

// updateMasjid applies a partial update. Only admins of the record may edit
// it; the token's admin list is authoritative.
func (s *Server) updateMasjid(c *gin.Context) {
	masjidID, err := primitive.ObjectIDFromHex(c.Param("masjidID"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorMasjidNotFound)
		return
	}

	claims, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	administers := false
	for _, hex := range claims.Admin {
		if hex == masjidID.Hex() {
			administers = true
			break
		}
	}
	if !administers {
		abortWithEncoding(c, http.StatusForbidden, "You do not administer this masjid")
		return
	}

	var body masjidParams
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	update := bson.M{}
	candidate := schema.Masjid{Name: "update", Address: "update", Services: []string{}}

	if body.Name != "" {
		update["name"] = body.Name
		candidate.Name = body.Name
	}
	if body.Address != "" {
		update["address"] = body.Address
		candidate.Address = body.Address
	}
	if body.Latitude != nil {
		update["latitude"] = *body.Latitude
		candidate.Latitude = *body.Latitude
	}
	if body.Longitude != nil {
		update["longitude"] = *body.Longitude
		candidate.Longitude = *body.Longitude
	}
	if body.CalculationMethod != nil {
		update["calculation_method"] = *body.CalculationMethod
		candidate.CalculationMethod = *body.CalculationMethod
	}
	if body.Description != nil {
		update["description"] = *body.Description
	}
	if body.Phone != nil {
		update["phone"] = *body.Phone
		candidate.Phone = *body.Phone
	}
	if body.Email != nil {
		update["email"] = *body.Email
		candidate.Email = *body.Email
	}
	if body.Services != nil {
		update["services"] = body.Services
	}
	if body.PrayerTimes != nil {
		update["prayer_times"] = *body.PrayerTimes
		candidate.PrayerTimes = *body.PrayerTimes
	}

	if details := candidate.Validate(); len(details) > 0 {
		messages := make([]string, 0, len(details))
		for _, d := range details {
			messages = append(messages, d.Message)
		}
		abortWithValidation(c, http.StatusBadRequest, messages)
		return
	}

	updated, err := s.mongoStore.UpdateMasjid(masjidID, update)
	if err != nil {
		switch err {
		case store.ErrMasjidNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorMasjidNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Masjid updated successfully",
		"data":    updated,
	})
}

// rankMasjidDistances computes mile distances from the caller's position to
// each submitted coordinate stub. Per-entity failures are reported inline
// and do not abort the batch.
func (s *Server) rankMasjidDistances(c *gin.Context) {
	var params struct {
		UserLatitude  *float64         `json:"userLatitude"`
		UserLongitude *float64         `json:"userLongitude"`
		Masajid       []geo.MasjidStub `json:"masajid"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.UserLatitude == nil || params.UserLongitude == nil {
		abortWithEncoding(c, http.StatusBadRequest, "User latitude and longitude are required as numbers")
		return
	}

	origin := schema.Location{
		Latitude:  *params.UserLatitude,
		Longitude: *params.UserLongitude,
	}

	ranked, err := geo.RankDistances(origin, params.Masajid)
	if err != nil {
		switch err {
		case geo.ErrInvalidOrigin:
			abortWithEncoding(c, http.StatusBadRequest, "User latitude and longitude are required as numbers")
		case geo.ErrEmptyBatch:
			abortWithEncoding(c, http.StatusBadRequest, "Masajid array is required and cannot be empty")
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, ranked)
}
