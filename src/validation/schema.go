package validation

import (
	"regexp"

	"github.com/Oudwins/zog"
)

// KnownSyntheticSources are the source names extractors synthesize when
// there is no monster to name. Monster, vendor and gathering-node names are
// free text and cannot be enumerated.
var KnownSyntheticSources = []string{"Duty", "Treasure Map", "Desynthesis"}

// coordinateLabelRegex matches the balanced "(x,y)" label format. The empty
// string is the other legal value (no coordinates recovered).
var coordinateLabelRegex = regexp.MustCompile(`^\(\d+(\.\d+)?,\d+(\.\d+)?\)$`)

// isValidCoordinateLabel checks a coordinate label: empty, or "(x,y)" with
// unsigned decimal components. A partially filled label is never valid.
func isValidCoordinateLabel(val *string, ctx zog.Ctx) bool {
	if val == nil || *val == "" {
		return true
	}
	return coordinateLabelRegex.MatchString(*val)
}

// DropRecordSchema validates a DropRecord structure (PascalCase field names)
var DropRecordSchema = zog.Struct(zog.Schema{
	"SourceName":      zog.String().Required().Min(1, zog.Message("source-name must be a non-empty string")),
	"LocationLabel":   zog.String().Optional(),
	"LevelLabel":      zog.String().Optional(),
	"CoordinateLabel": zog.String().Optional().TestFunc(isValidCoordinateLabel, zog.Message("coordinate-label must be empty or formatted as (x,y)")),
})

// PurchaseRecordSchema validates a PurchaseRecord structure
var PurchaseRecordSchema = zog.Struct(zog.Schema{
	"VendorName":      zog.String().Required().Min(1, zog.Message("vendor-name must be a non-empty string")),
	"LocationLabel":   zog.String().Optional(),
	"CoordinateLabel": zog.String().Optional().TestFunc(isValidCoordinateLabel, zog.Message("coordinate-label must be empty or formatted as (x,y)")),
	"Price":           zog.String().Optional(),
	"CurrencyName":    zog.String().Optional(),
})

// LootResultSchema validates a LootResult structure
var LootResultSchema = zog.Struct(zog.Schema{
	"SubjectName":       zog.String().Required().Min(1, zog.Message("subject-name must be a non-empty string")),
	"DropLocations":     zog.Slice(DropRecordSchema).Required(zog.Message("drop-locations is required")),
	"PurchaseLocations": zog.Slice(PurchaseRecordSchema).Required(zog.Message("purchase-locations is required")),
})
