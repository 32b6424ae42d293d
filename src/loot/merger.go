package loot

import (
	"sort"

	"github.com/loot-scout/loot-scout-go/src/types"
)

// Merger combines freshly scraped results with previously stored ones. The
// wiki is the richer source so fresh records win; stored records only fill
// in sources the fresh scrape did not see. This is a pure value transform,
// mirroring the fetch-then-supplement flow of the lookup command.
type Merger struct{}

// NewMerger creates a new merger.
func NewMerger() *Merger {
	return &Merger{}
}

// NeedsSupplement reports whether a fresh result is thin enough to be worth
// topping up from the store: no drop locations at all, or drop records that
// lost their location to a malformed row.
func (m *Merger) NeedsSupplement(result *types.LootResult) bool {
	if len(result.DropLocations) == 0 {
		return true
	}
	for _, drop := range result.DropLocations {
		if drop.LocationLabel == "" {
			return true
		}
	}
	return false
}

// MergeResults returns fresh supplemented with any stored records whose
// source/location pair the fresh result lacks. Within each list, fresh
// records keep their order and stored fills append after.
func (m *Merger) MergeResults(fresh, stored *types.LootResult) *types.LootResult {
	merged := types.NewLootResult(fresh.SubjectName)
	merged.DropLocations = append(merged.DropLocations, fresh.DropLocations...)
	merged.PurchaseLocations = append(merged.PurchaseLocations, fresh.PurchaseLocations...)

	if stored == nil {
		return merged
	}

	seenDrops := make(map[string]bool, len(fresh.DropLocations))
	for _, drop := range fresh.DropLocations {
		seenDrops[dropKey(drop)] = true
	}
	for _, drop := range stored.DropLocations {
		if !seenDrops[dropKey(drop)] {
			seenDrops[dropKey(drop)] = true
			merged.DropLocations = append(merged.DropLocations, drop)
		}
	}

	seenPurchases := make(map[string]bool, len(fresh.PurchaseLocations))
	for _, purchase := range fresh.PurchaseLocations {
		seenPurchases[purchaseKey(purchase)] = true
	}
	for _, purchase := range stored.PurchaseLocations {
		if !seenPurchases[purchaseKey(purchase)] {
			seenPurchases[purchaseKey(purchase)] = true
			merged.PurchaseLocations = append(merged.PurchaseLocations, purchase)
		}
	}

	return merged
}

// SortResult orders a result's lists for stable, deterministic output. The
// parser itself deliberately does not sort (and cannot, across concurrent
// extractors); exports do.
func (m *Merger) SortResult(result *types.LootResult) {
	sort.SliceStable(result.DropLocations, func(i, j int) bool {
		a, b := result.DropLocations[i], result.DropLocations[j]
		if a.SourceName != b.SourceName {
			return a.SourceName < b.SourceName
		}
		return a.LocationLabel < b.LocationLabel
	})
	sort.SliceStable(result.PurchaseLocations, func(i, j int) bool {
		a, b := result.PurchaseLocations[i], result.PurchaseLocations[j]
		if a.VendorName != b.VendorName {
			return a.VendorName < b.VendorName
		}
		return a.LocationLabel < b.LocationLabel
	})
}

func dropKey(drop types.DropRecord) string {
	return drop.SourceName + "\x00" + drop.LocationLabel
}

func purchaseKey(purchase types.PurchaseRecord) string {
	return purchase.VendorName + "\x00" + purchase.LocationLabel + "\x00" + purchase.CurrencyName
}
