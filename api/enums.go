package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mud-ali/DIHacks2025/consts"
)

// listCalculationMethods returns the closed list of prayer-time calculation
// conventions, in index order.
func (s *Server) listCalculationMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"methods": consts.SupportedCalculationMethods,
	})
}

func (s *Server) listServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services": consts.SupportedServices,
	})
}
