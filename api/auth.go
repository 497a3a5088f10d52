package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/mud-ali/DIHacks2025/schema"
	"github.com/mud-ali/DIHacks2025/store"
)

type userResponse struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Admin []string `json:"admin"`
}

func newUserResponse(user *schema.User) userResponse {
	return userResponse{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Admin: user.AdminHexIDs(),
	}
}

// signup registers an owner account and signs them in.
func (s *Server) signup(c *gin.Context) {
	var params struct {
		Name     string   `json:"name"`
		Email    string   `json:"email"`
		Password string   `json:"password"`
		Admin    []string `json:"admin"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Name == "" || params.Email == "" || params.Password == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorSignupFields)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	admin := make([]primitive.ObjectID, 0, len(params.Admin))
	for _, hex := range params.Admin {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		admin = append(admin, id)
	}

	user := &schema.User{
		Name:         params.Name,
		Email:        params.Email,
		Admin:        admin,
		PasswordHash: string(hash),
	}

	if details := user.Validate(); len(details) > 0 {
		messages := make([]string, 0, len(details))
		for _, d := range details {
			messages = append(messages, d.Message)
		}
		abortWithValidation(c, http.StatusBadRequest, messages)
		return
	}

	created, err := s.mongoStore.CreateUser(user)
	if err != nil {
		switch err {
		case store.ErrEmailTaken:
			abortWithEncoding(c, http.StatusConflict, errorEmailTaken)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	token, err := s.GenerateToken(created)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"user":    newUserResponse(created),
		"token":   token,
	})
}

// login exchanges credentials for an access token.
func (s *Server) login(c *gin.Context) {
	var params struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Email == "" || params.Password == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorLoginFields)
		return
	}

	user, err := s.mongoStore.GetUserByEmail(params.Email)
	if err != nil || user.PasswordHash == "" {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(params.Password)); err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials)
		return
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    newUserResponse(user),
		"token":   token,
	})
}

// verify confirms a token is still valid and returns fresh account data,
// used by clients for auto sign-in.
func (s *Server) verify(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		abortWithEncoding(c, http.StatusForbidden, errorTokenInvalid, err)
		return
	}

	user, err := s.mongoStore.GetUserByID(userID)
	if err != nil {
		switch err {
		case store.ErrUserNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Token is valid",
		"user":    newUserResponse(user),
	})
}
