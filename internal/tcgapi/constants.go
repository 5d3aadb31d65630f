package tcgapi

// DefaultPageSize is the fixed page size used against the catalog API.
const DefaultPageSize = 250

// DefaultBaseURL is the public catalog endpoint.
const DefaultBaseURL = "https://api.pokemontcg.io/v2"

// HTTP header names
const (
	HeaderAPIKey = "X-Api-Key"
)

// Resource names used in paths, errors and metrics
const (
	ResourceSets  = "sets"
	ResourceCards = "cards"
)

// Log messages
const (
	LogMsgPageFetched  = "Catalog page fetched"
	LogMsgPageRetrying = "Catalog page fetch retrying"
)
