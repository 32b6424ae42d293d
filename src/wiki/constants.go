package wiki

const (
	Host = "https://ffxiv.consolegameswiki.com"

	// Article pages live under /wiki/<Page_Name> with spaces as underscores.
	ArticlePath = "/wiki/"
)

// itemNameAliases maps in-game item names to the wiki page titles that
// differ from them. The wiki disambiguates a handful of items from the
// identically named crafting concept by appending "(Item)".
var itemNameAliases = map[string]string{
	"Blue Cheese": "Blue Cheese (Item)",
	"Gelatin":     "Gelatin (Item)",
	"Leather":     "Leather (Item)",
	"Morel":       "Morel (Item)",
}

// ResolvePageName applies the alias table to an item's display name,
// returning the name the wiki page is actually titled with.
func ResolvePageName(subjectName string) string {
	if fixed, ok := itemNameAliases[subjectName]; ok {
		return fixed
	}
	return subjectName
}

// Synthetic source names used by extractors that have no monster to name.
const (
	dutySource        = "Duty"
	treasureMapSource = "Treasure Map"
	desynthesisSource = "Desynthesis"

	aetherialReductionLocation = "Aetherial Reduction"
	crafterClassPrefix         = "Crafter Class: "
)
