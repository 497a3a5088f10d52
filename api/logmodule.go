package api

import (
	"net/http/httputil"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// DumpRequest is a middleware to dump incoming http requests if trace mode
// is enabled.
func (s *Server) DumpRequest(c *gin.Context) {
	if s.traceMode {
		dump, err := httputil.DumpRequest(c.Request, false)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": "gin",
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}).Error("fail to dump request")
		}

		log.WithFields(log.Fields{
			"prefix": "gin",
			"req":    string(dump),
		}).Debug("incoming request")
	}

	c.Next()
}
