package domain

import "time"

// Category groups movies. Names are unique, backed by an index on the store.
type Category struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
