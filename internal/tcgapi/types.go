package tcgapi

// SetImages holds the image references attached to a set.
type SetImages struct {
	Symbol *string `json:"symbol"`
	Logo   *string `json:"logo"`
}

// SetDTO is a catalog set as returned by the external API.
type SetDTO struct {
	ID           string    `json:"id"`
	Name         *string   `json:"name"`
	Series       *string   `json:"series"`
	PrintedTotal *int      `json:"printedTotal"`
	Total        *int      `json:"total"`
	ReleaseDate  *string   `json:"releaseDate"`
	Images       SetImages `json:"images"`
}

// CardImages holds the image references attached to a card.
type CardImages struct {
	Small *string `json:"small"`
	Large *string `json:"large"`
}

// CardDTO is a catalog card as returned by the external API.
type CardDTO struct {
	ID        string     `json:"id"`
	Name      *string    `json:"name"`
	Number    *string    `json:"number"`
	Rarity    *string    `json:"rarity"`
	Supertype *string    `json:"supertype"`
	Subtypes  []string   `json:"subtypes"`
	Images    CardImages `json:"images"`
}

// page is the envelope every collection endpoint responds with.
type page[T any] struct {
	Data []T `json:"data"`
}
