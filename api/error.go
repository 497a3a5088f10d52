package api

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Error messages the frontend matches on. Auth failures deliberately do not
// distinguish malformed from expired tokens.
const (
	errorInvalidParameters  = "Invalid request parameters"
	errorInternalServer     = "Internal server error"
	errorMasjidNotFound     = "Masjid not found"
	errorUserNotFound       = "User not found"
	errorValidationFailed   = "Validation failed"
	errorTokenRequired      = "Access token required"
	errorTokenInvalid       = "Invalid or expired token"
	errorInvalidCredentials = "Invalid email or password"
	errorEmailTaken         = "User with this email already exists"
	errorSignupFields       = "Name, email, and password are required"
	errorLoginFields        = "Email and password are required"
)

// abortWithEncoding writes the standard error envelope and logs the
// underlying errors.
func abortWithEncoding(c *gin.Context, code int, message string, errs ...error) {
	for _, err := range errs {
		log.WithField("prefix", "api").WithError(err).Error(message)
	}

	c.AbortWithStatusJSON(code, gin.H{
		"success": false,
		"error":   message,
	})
}

// abortWithValidation reports persistence-validation failures as one message
// per violated rule.
func abortWithValidation(c *gin.Context, code int, details []string) {
	c.AbortWithStatusJSON(code, gin.H{
		"success": false,
		"error":   errorValidationFailed,
		"details": details,
	})
}
