package models

import "go.mongodb.org/mongo-driver/bson"

// User is a registered account. The password is stored as a bcrypt hash and is
// never serialized in responses.
type User struct {
	Base     `bson:",inline"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"`
	Name     string `bson:"name" json:"name"`
}

// CreateUserDTO is the input for registration.
type CreateUserDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UpdateUserDTO is a partial update; nil fields are left untouched.
type UpdateUserDTO struct {
	Email *string `json:"email,omitempty"`
	Name  *string `json:"name,omitempty"`
}

// Fields returns the set of fields present in the partial update.
func (d UpdateUserDTO) Fields() bson.M {
	m := bson.M{}
	if d.Email != nil {
		m["email"] = *d.Email
	}
	if d.Name != nil {
		m["name"] = *d.Name
	}
	return m
}
