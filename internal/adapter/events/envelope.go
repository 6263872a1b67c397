package events

import (
	"encoding/json"

	"crowdfund/internal/core/domain"
)

// Envelope is the wire form of every published event.
type Envelope struct {
	Type     string         `json:"type"`
	Campaign domain.Address `json:"campaign"`
	Data     domain.Event   `json:"data"`
}

func encode(e domain.Event) ([]byte, error) {
	return json.Marshal(Envelope{Type: e.Type(), Campaign: e.Campaign(), Data: e})
}
