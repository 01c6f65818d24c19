package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Weight is a single body-weight entry, optionally with height, a progress
// photo URL and free-form notes.
type Weight struct {
	Base      `bson:",inline"`
	UserID    string   `bson:"userId" json:"userId"`
	Weight    float64  `bson:"weight" json:"weight"`
	Height    *float64 `bson:"height,omitempty" json:"height,omitempty"`
	BodyPhoto string   `bson:"bodyPhoto,omitempty" json:"bodyPhoto,omitempty"`
	Date      FlexTime `bson:"date" json:"date"`
	Notes     string   `bson:"notes,omitempty" json:"notes,omitempty"`
}

// CreateWeightDTO is the input for a new weight entry.
type CreateWeightDTO struct {
	UserID    string    `json:"userId"`
	Weight    float64   `json:"weight"`
	Height    *float64  `json:"height,omitempty"`
	BodyPhoto string    `json:"bodyPhoto,omitempty"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes,omitempty"`
}

// UpdateWeightDTO is a partial update; nil fields are left untouched.
type UpdateWeightDTO struct {
	Weight    *float64   `json:"weight,omitempty"`
	Height    *float64   `json:"height,omitempty"`
	BodyPhoto *string    `json:"bodyPhoto,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// Fields returns the set of fields present in the partial update.
func (d UpdateWeightDTO) Fields() bson.M {
	m := bson.M{}
	if d.Weight != nil {
		m["weight"] = *d.Weight
	}
	if d.Height != nil {
		m["height"] = *d.Height
	}
	if d.BodyPhoto != nil {
		m["bodyPhoto"] = *d.BodyPhoto
	}
	if d.Date != nil {
		m["date"] = *d.Date
	}
	if d.Notes != nil {
		m["notes"] = *d.Notes
	}
	return m
}
