package catalog

import (
	"github.com/cardvault/catalogsync/internal/domain"
	"github.com/cardvault/catalogsync/internal/tcgapi"
)

// setFromDTO maps an external set one-to-one onto the local record.
func setFromDTO(dto tcgapi.SetDTO) domain.Set {
	return domain.Set{
		ID:           dto.ID,
		Name:         dto.Name,
		Series:       dto.Series,
		PrintedTotal: dto.PrintedTotal,
		Total:        dto.Total,
		ReleaseDate:  dto.ReleaseDate,
		LogoURL:      dto.Images.Logo,
		SymbolURL:    dto.Images.Symbol,
	}
}

// cardFromDTO maps an external card onto the local record. The owning set
// comes from the surrounding per-set loop, not from the card payload.
// Subtype is the first element of the subtypes list, or null when the list
// is empty or absent.
func cardFromDTO(setID string, dto tcgapi.CardDTO) domain.Card {
	var subtype *string
	if len(dto.Subtypes) > 0 {
		subtype = &dto.Subtypes[0]
	}

	return domain.Card{
		ID:            dto.ID,
		SetID:         setID,
		Name:          dto.Name,
		Number:        dto.Number,
		Rarity:        dto.Rarity,
		Supertype:     dto.Supertype,
		Subtype:       subtype,
		SmallImageURL: dto.Images.Small,
		LargeImageURL: dto.Images.Large,
	}
}
