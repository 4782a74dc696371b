package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Show struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Image string             `bson:"image" json:"image"`
	Type  string             `bson:"type" json:"type"`
	Date  time.Time          `bson:"date" json:"date"`
}

// ShowPayload is the create/patch request body.
type ShowPayload struct {
	Name  string `bson:"name" json:"name"`
	Image string `bson:"image" json:"image"`
	Type  string `bson:"type" json:"type"`
}
