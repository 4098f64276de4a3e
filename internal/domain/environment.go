package domain

// Environment represents a reservable shared amenity of the condominium,
// such as the party room or the barbecue area.
type Environment struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Capacity    int      `json:"capacity"`
	Description string   `json:"description"`
	Available   bool     `json:"available"`
	Rules       []string `json:"rules"`
	Items       []string `json:"items,omitempty"`
}
