package schema

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserCollection = "user"
)

// User is a registered owner/admin account. Admin holds the ids of the
// masajid this user may edit.
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name         string               `bson:"name" json:"name"`
	Email        string               `bson:"email" json:"email"`
	Admin        []primitive.ObjectID `bson:"admin" json:"admin"`
	PasswordHash string               `bson:"password_hash" json:"-"`
	CreatedAt    int64                `bson:"created_at" json:"-"`
}

// AdminHexIDs returns the administered masjid ids as hex strings, the form
// embedded in access tokens.
func (u *User) AdminHexIDs() []string {
	ids := make([]string, 0, len(u.Admin))
	for _, id := range u.Admin {
		ids = append(ids, id.Hex())
	}
	return ids
}

// Administers reports whether the user may edit the given masjid.
func (u *User) Administers(masjidID primitive.ObjectID) bool {
	for _, id := range u.Admin {
		if id == masjidID {
			return true
		}
	}
	return false
}

func (u *User) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(u.Email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email is required"})
	} else if !ValidEmail(u.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email address"})
	}

	return errs
}
