package types

// DropRecord is one normalized "this item can be obtained here" fact.
// Every field is free text recovered from the wiki page; empty string means
// the page did not carry that detail, never nil.
type DropRecord struct {
	SourceName      string `json:"source-name"`
	LocationLabel   string `json:"location-label"`
	LevelLabel      string `json:"level-label"`
	CoordinateLabel string `json:"coordinate-label"`
}

// PurchaseRecord is one normalized "this item is purchasable here" fact.
type PurchaseRecord struct {
	VendorName      string `json:"vendor-name"`
	LocationLabel   string `json:"location-label"`
	CoordinateLabel string `json:"coordinate-label"`
	Price           string `json:"price"`
	CurrencyName    string `json:"currency-name"`
}

// LootResult holds everything one lookup learned about a single item.
//
// DropLocations keeps within-extractor order only; when extractors run
// concurrently the interleaving across extractors is unspecified.
type LootResult struct {
	SubjectName       string           `json:"subject-name"`
	DropLocations     []DropRecord     `json:"drop-locations"`
	PurchaseLocations []PurchaseRecord `json:"purchase-locations"`
}

// NewLootResult returns an empty result for subjectName. Both slices are
// allocated so a result always marshals to [] rather than null.
func NewLootResult(subjectName string) *LootResult {
	return &LootResult{
		SubjectName:       subjectName,
		DropLocations:     []DropRecord{},
		PurchaseLocations: []PurchaseRecord{},
	}
}

// StoredLootData is the on-disk shape of the local result cache: a single
// versioned JSON blob keyed by subject name. A version bump discards old
// blobs wholesale rather than migrating them.
type StoredLootData struct {
	Version         string                `json:"version"`
	Entries         map[string]LootResult `json:"entries"`
	NormalizedNames map[uint32]string     `json:"normalized-names"`
}
