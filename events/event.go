// Package events defines the immutable event payload records published
// by account microservices when account state changes. The library only
// defines the field shapes; serialization and transport belong to the
// hosting service's producer.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Metadata carries the fields common to every event: a unique event id
// and the creation timestamp. Payload records embed it rather than
// subclassing a base event.
type Metadata struct {
	EventID   uuid.UUID `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

func newMetadata() Metadata {
	return Metadata{
		EventID:   uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}
