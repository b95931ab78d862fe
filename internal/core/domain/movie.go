package domain

import "time"

// Classification is the age-rating tag attached to a movie.
type Classification string

const (
	ClassificationATP    Classification = "atp"
	ClassificationPlus7  Classification = "+7"
	ClassificationPlus13 Classification = "+13"
	ClassificationPlus16 Classification = "+16"
	ClassificationPlus18 Classification = "+18"
)

var validClassifications = map[Classification]struct{}{
	ClassificationATP:    {},
	ClassificationPlus7:  {},
	ClassificationPlus13: {},
	ClassificationPlus16: {},
	ClassificationPlus18: {},
}

// Valid reports whether c is a known classification tag.
func (c Classification) Valid() bool {
	_, ok := validClassifications[c]
	return ok
}

// Movie is a catalog entry belonging to exactly one category.
type Movie struct {
	ID              string         `json:"id" bson:"_id,omitempty"`
	Name            string         `json:"name" bson:"name"`
	Description     string         `json:"description" bson:"description"`
	DurationMinutes int            `json:"duration_minutes" bson:"duration_minutes"`
	Classification  Classification `json:"classification" bson:"classification"`
	ImageURL        string         `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CategoryID      string         `json:"category_id" bson:"category_id"`
	CreatedAt       time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" bson:"updated_at"`
}
