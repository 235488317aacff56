package http

// EventDTO is the wire shape of one appointment served by an events endpoint.
type EventDTO struct {
	Summary string `json:"summary"`
	Start   string `json:"start"`
}
