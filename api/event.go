package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mud-ali/DIHacks2025/schema"
)

// createEvent registers a community event.
func (s *Server) createEvent(c *gin.Context) {
	var params struct {
		Name        string    `json:"name"`
		Location    string    `json:"location"`
		StartTime   time.Time `json:"startTime"`
		EndTime     time.Time `json:"endTime"`
		Description string    `json:"description"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	event := &schema.Event{
		Name:        params.Name,
		Location:    params.Location,
		StartTime:   params.StartTime,
		EndTime:     params.EndTime,
		Description: params.Description,
	}

	if details := event.Validate(); len(details) > 0 {
		messages := make([]string, 0, len(details))
		for _, d := range details {
			messages = append(messages, d.Message)
		}
		abortWithValidation(c, http.StatusBadRequest, messages)
		return
	}

	created, err := s.mongoStore.CreateEvent(event)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Event created successfully",
		"data":    created,
	})
}

func (s *Server) listEvents(c *gin.Context) {
	events, err := s.mongoStore.ListEvents()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(events),
		"data":    events,
	})
}
