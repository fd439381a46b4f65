package artist

import (
	"encoding/json"
)

type Suggestion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Profile is the upstream artist object, field for field, with a topTracks
// field added.
type Profile map[string]json.RawMessage
