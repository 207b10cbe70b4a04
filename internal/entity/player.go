package entity

// PlayerState is a read-only view of one player in a game snapshot.
type PlayerState struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	Skipping bool   `json:"skipping,omitempty"`
}
