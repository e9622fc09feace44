package model

import "time"

type Subscriber struct {
	ID             string     `bson:"_id" json:"id"`
	Email          string     `bson:"email" json:"email"`
	Active         bool       `bson:"active" json:"active"`
	SubscribedAt   time.Time  `bson:"subscribed_at" json:"subscribed_at"`
	UnsubscribedAt *time.Time `bson:"unsubscribed_at,omitempty" json:"unsubscribed_at,omitempty"`
}
