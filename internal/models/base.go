package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Entity is implemented by every persisted model. The repository layer uses it
// to attach generated identifiers and creation timestamps.
type Entity interface {
	SetID(id primitive.ObjectID)
	StampNew(now time.Time)
}

// Base carries the fields shared by all persisted entities.
type Base struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt FlexTime           `bson:"createdAt" json:"createdAt"`
	UpdatedAt FlexTime           `bson:"updatedAt" json:"updatedAt"`
}

// SetID records the store-generated identifier.
func (b *Base) SetID(id primitive.ObjectID) { b.ID = id }

// StampNew sets createdAt and updatedAt to the same instant at creation time.
func (b *Base) StampNew(now time.Time) {
	b.CreatedAt = FlexTime{now}
	b.UpdatedAt = FlexTime{now}
}

// FlexTime is a time.Time that tolerates documents where date fields were
// written as strings instead of BSON datetimes. Older records in the store
// carry RFC 3339 strings; both forms decode to the same value.
type FlexTime struct {
	time.Time
}

// NewFlexTime wraps t.
func NewFlexTime(t time.Time) FlexTime { return FlexTime{t} }

// MarshalBSONValue always writes a proper BSON datetime.
func (t FlexTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.Time)
}

// UnmarshalBSONValue accepts BSON datetimes, RFC 3339 strings, plain
// "2006-01-02" strings and null.
func (t *FlexTime) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	switch bt {
	case bson.TypeDateTime:
		ms, _, ok := bsoncore.ReadDateTime(data)
		if !ok {
			return fmt.Errorf("models: corrupt BSON datetime")
		}
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	case bson.TypeString:
		s, _, ok := bsoncore.ReadString(data)
		if !ok {
			return fmt.Errorf("models: corrupt BSON string")
		}
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", s)
			if err != nil {
				return fmt.Errorf("models: cannot parse %q as a date", s)
			}
		}
		t.Time = parsed.UTC()
		return nil
	case bson.TypeNull:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("models: cannot decode BSON type %s into a date", bt)
	}
}
