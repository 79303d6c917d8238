package domain

import "time"

// Absence records a worker's absence from a shift, optionally with a
// replacement. Only the shape is modelled; no workflow drives it yet.
type Absence struct {
	ID                string        `json:"id" bson:"_id"`
	ShiftID           string        `json:"shift_id" bson:"shift_id"`
	Reason            string        `json:"reason" bson:"reason"`
	ReplacementUserID *string       `json:"replacement_user_id" bson:"replacement_user_id"`
	Status            RequestStatus `json:"status" bson:"status"`
	CreatedAt         time.Time     `json:"created_at" bson:"created_at"`
}
