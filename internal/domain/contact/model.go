package contact

// Contact is one contact card owned by exactly one user. OwnerEmail is set
// once at creation from the verified caller identity and never updated.
type Contact struct {
	ID          int    `json:"id"`
	OwnerEmail  string `json:"-"`
	Name        string `json:"name"`
	Affiliation string `json:"affiliation"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Fields holds the mutable content of a card. Updates are full-replace:
// every field is written on every call, absent payload fields arrive here as
// empty strings and overwrite the stored values.
type Fields struct {
	Name        string
	Affiliation string
	Description string
	Image       string
}
