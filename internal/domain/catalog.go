package domain

// Set represents a release group of trading cards. The identifier is
// assigned by the external catalog and is never generated locally.
type Set struct {
	ID           string  `json:"id" db:"id"`
	Name         *string `json:"name" db:"name"`
	Series       *string `json:"series" db:"series"`
	PrintedTotal *int    `json:"printed_total" db:"printed_total"`
	Total        *int    `json:"total" db:"total"`
	ReleaseDate  *string `json:"release_date" db:"release_date"`
	LogoURL      *string `json:"logo_url" db:"logo_url"`
	SymbolURL    *string `json:"symbol_url" db:"symbol_url"`
}

// Card represents a single collectible item belonging to exactly one Set.
// Number is a string because in-set numbers may be non-numeric (e.g. "H1").
type Card struct {
	ID            string  `json:"id" db:"id"`
	SetID         string  `json:"set_id" db:"set_id"`
	Name          *string `json:"name" db:"name"`
	Number        *string `json:"number" db:"number"`
	Rarity        *string `json:"rarity" db:"rarity"`
	Supertype     *string `json:"supertype" db:"supertype"`
	Subtype       *string `json:"subtype" db:"subtype"`
	SmallImageURL *string `json:"small_image_url" db:"small_image_url"`
	LargeImageURL *string `json:"large_image_url" db:"large_image_url"`
}
