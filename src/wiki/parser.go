package wiki

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/loot-scout/loot-scout-go/src/types"
)

// Parser derives normalized loot records from one wiki article page. The
// page's sections come in several loosely related shapes (duty lists, monster
// tables, recipe boxes, three incompatible gathering layouts, ...) and each
// shape gets its own extractor. Extractors are pure functions of the parsed
// content node: no shared state, no I/O, safe to run concurrently.
type Parser struct{}

// NewParser creates a new parser.
func NewParser() *Parser {
	return &Parser{}
}

// dropExtractor converts one section shape into zero or more drop records.
// A section that is absent or no longer matches the expected markup yields
// zero records, never an error.
type dropExtractor func(body *goquery.Selection) []types.DropRecord

// Parse runs every extractor against the document and returns the aggregated
// result. It never fails: a page with no recognized sections, or no content
// node at all, produces a result with empty slices so the caller always has
// something to render or cache.
func (p *Parser) Parse(ctx context.Context, doc *goquery.Document, subjectName string) *types.LootResult {
	result := types.NewLootResult(subjectName)
	if ctx.Err() != nil {
		return result
	}

	content := contentNode(doc)
	if content == nil {
		slog.Warn("wiki page has no content node", "subject", subjectName)
		return result
	}

	extractors := []dropExtractor{
		p.dutyDrops,
		p.monsterTableDrops,
		p.recipeDrops,
		p.treasureHuntDrops,
		p.desynthesisDrops,
		p.gatheringDrops,
		p.gatheringRoleDrops,
	}

	dropCh := make(chan []types.DropRecord, len(extractors))
	purchaseCh := make(chan []types.PurchaseRecord, 1)

	var wg sync.WaitGroup
	for _, extract := range extractors {
		wg.Add(1)
		go func(extract dropExtractor) {
			defer wg.Done()
			dropCh <- safeDrops(extract, content)
		}(extract)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		purchaseCh <- safePurchases(p.vendorPurchases, content)
	}()

	wg.Wait()
	close(dropCh)
	close(purchaseCh)

	if ctx.Err() != nil {
		return types.NewLootResult(subjectName)
	}

	for drops := range dropCh {
		result.DropLocations = append(result.DropLocations, drops...)
	}
	for purchases := range purchaseCh {
		result.PurchaseLocations = append(result.PurchaseLocations, purchases...)
	}

	return result
}

// contentNode locates the article's main content. The wiki's markup wrapper
// changed between page templates, so two selector paths are tried.
func contentNode(doc *goquery.Document) *goquery.Selection {
	content := doc.Find("div#bodyContent div.mw-content-ltr div.mw-parser-output").First()
	if content.Length() == 0 {
		content = doc.Find("div#bodyContent div.mw-parser-output").First()
	}
	if content.Length() == 0 {
		return nil
	}
	return content
}

// safeDrops contains a panic inside one extractor. A wiki template change
// that breaks a single section must not take the other sections with it.
func safeDrops(extract dropExtractor, body *goquery.Selection) (records []types.DropRecord) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("drop extractor failed", "panic", r)
			records = nil
		}
	}()
	return extract(body)
}

func safePurchases(extract func(*goquery.Selection) []types.PurchaseRecord, body *goquery.Selection) (records []types.PurchaseRecord) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("purchase extractor failed", "panic", r)
			records = nil
		}
	}()
	return extract(body)
}

// dutyDrops handles the "Duties" section: a plain list where every item is a
// duty the item drops in. No level, no coordinates.
func (p *Parser) dutyDrops(body *goquery.Selection) []types.DropRecord {
	heading := findHeading(body, "h3", "Duties")
	if heading == nil {
		return nil
	}

	var records []types.DropRecord
	body.Find("ul").First().Find("li").Each(func(_ int, item *goquery.Selection) {
		records = append(records, types.DropRecord{
			SourceName:    dutySource,
			LocationLabel: strings.TrimSpace(stripEntityArtifacts(item.Text())),
		})
	})
	return records
}

// monsterTableDrops handles the tabular monster-drop layout (table.item).
// Columns run [name, level, ..., location+coordinates in one cell]; the last
// cell is split at the first "(" to separate the place name from the
// coordinate tail, while coordinates are re-extracted from the whole cell
// text because some rows carry more than one parenthesized group.
func (p *Parser) monsterTableDrops(body *goquery.Selection) []types.DropRecord {
	rows := body.Find("table.item tbody tr")
	if rows.Length() == 0 {
		return nil
	}

	var records []types.DropRecord
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		last := lastCellText(cells)
		records = append(records, types.DropRecord{
			SourceName:      cellText(cells, 0),
			LocationLabel:   strings.TrimRight(strings.SplitN(last, "(", 2)[0], " \t"),
			LevelLabel:      cellText(cells, 1),
			CoordinateLabel: FormatCoordinates(last),
		})
	})
	return records
}

// vendorPurchases handles the NPC vendor table. The section is only trusted
// when a purchase/acquisition heading is present alongside the table.npc,
// because bare npc tables also appear in quest-reward sections.
func (p *Parser) vendorPurchases(body *goquery.Selection) []types.PurchaseRecord {
	if findHeading(body, "h3", "Purchase", "Purchased", "Purchased_From") == nil &&
		findHeading(body, "h2", "Acquisition") == nil {
		return nil
	}

	rows := body.Find("table.npc tbody tr")
	if rows.Length() == 0 {
		return nil
	}

	var records []types.PurchaseRecord
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		locText := cellText(cells, 1)

		currency := ""
		if cells.Length() > 2 {
			currency, _ = cells.Eq(2).Find("span a").First().Attr("title")
		}

		records = append(records, types.PurchaseRecord{
			VendorName:      cellText(cells, 0),
			LocationLabel:   strings.TrimRight(strings.SplitN(locText, "(", 2)[0], " \t"),
			CoordinateLabel: FormatCoordinates(locText),
			Price:           stripEntityArtifacts(cellText(cells, 2)),
			CurrencyName:    currency,
		})
	})
	return records
}

// recipeDrops handles the crafting recipe box: one synthetic record naming
// the crafter class that can make the item. Crafting has no spatial
// component, so location and coordinates stay empty.
func (p *Parser) recipeDrops(body *goquery.Selection) []types.DropRecord {
	box := body.Find("div.recipe-box").First()
	if box.Length() == 0 {
		return nil
	}

	terms := box.Find("div.wrapper dd")
	return []types.DropRecord{{
		SourceName: crafterClassPrefix + strings.TrimSpace(terms.Eq(2).Find("a").Eq(1).Text()),
		LevelLabel: strings.TrimSpace(terms.Eq(3).Text()),
	}}
}

// treasureHuntDrops handles the "Treasure Hunt" section: a list of treasure
// maps whose last anchor names the map.
func (p *Parser) treasureHuntDrops(body *goquery.Selection) []types.DropRecord {
	return p.anchorListDrops(body, treasureMapSource, "Treasure_Hunt")
}

// desynthesisDrops handles the "Desynthesis" section. Same list shape as
// treasure hunts. The list is located by sibling traversal from the matched
// heading, not by grabbing the first list in the body: pages routinely carry
// several lists and only the one under the heading belongs to this section.
func (p *Parser) desynthesisDrops(body *goquery.Selection) []types.DropRecord {
	return p.anchorListDrops(body, desynthesisSource, "Desynthesis", "_Desynthesis")
}

// anchorListDrops emits one record per list item under the matched heading,
// labelled with the text of the item's last anchor.
func (p *Parser) anchorListDrops(body *goquery.Selection, sourceName string, ids ...string) []types.DropRecord {
	section := findSectionBody(body, "h3", ids...)
	if section == nil {
		return nil
	}

	var records []types.DropRecord
	section.Find("li").Each(func(_ int, item *goquery.Selection) {
		records = append(records, types.DropRecord{
			SourceName:    sourceName,
			LocationLabel: item.Find("a").Last().Text(),
		})
	})
	return records
}

// gatheringDrops handles the "Gathering"/"Gathered" section, which comes in
// three shapes: an aetherial-reduction list, a regular gathering-node list,
// and a lone gathered-item block when the section has no list at all.
func (p *Parser) gatheringDrops(body *goquery.Selection) []types.DropRecord {
	heading := findHeading(body, "h3", "Gathering", "Gathered")
	if heading == nil {
		return nil
	}
	section := sectionBody(heading)
	if section == nil {
		return nil
	}

	items := section.Find("li")
	if items.Length() > 0 {
		if strings.Contains(items.First().Text(), "Reduction") {
			return p.aetherialReductionDrops(items.Slice(1, items.Length()))
		}
		return p.gatheringListDrops(items)
	}

	if goquery.NodeName(section) == "table" {
		return nil
	}
	return p.gatheredBlockDrop(section, body)
}

// aetherialReductionDrops treats every remaining list item as a material
// obtained by reducing the item named in its last anchor.
func (p *Parser) aetherialReductionDrops(items *goquery.Selection) []types.DropRecord {
	var records []types.DropRecord
	items.Each(func(_ int, item *goquery.Selection) {
		records = append(records, types.DropRecord{
			SourceName:    item.Find("a").Last().Text(),
			LocationLabel: aetherialReductionLocation,
		})
	})
	return records
}

// gatheringListDrops handles the common gathering shape: one list item per
// node, anchors running [resource, zone, ..., spot], with coordinates in the
// bare text after the last anchor and the level in the item's leading text.
func (p *Parser) gatheringListDrops(items *goquery.Selection) []types.DropRecord {
	var records []types.DropRecord
	items.Each(func(_ int, item *goquery.Selection) {
		anchors := item.Find("a")
		if anchors.Length() == 0 {
			return
		}

		zone := gatheringZoneLabel(anchors)
		if zone == "" {
			zone, _ = ExtractTrailingParenthesizedLabel(followingText(anchors.First()))
		}

		level, _ := ExtractFirstInteger(firstChildText(item))
		records = append(records, types.DropRecord{
			SourceName:      anchors.First().Text(),
			LocationLabel:   zone + "-" + anchors.Last().Text(),
			LevelLabel:      level,
			CoordinateLabel: FormatCoordinates(followingText(anchors.Last())),
		})
	})
	return records
}

// gatheredBlockDrop handles the listless variant: the sibling node itself
// describes a single gatherable spot. The node's time window lives somewhere
// in the section's surrounding text, so it is scanned from the whole body.
func (p *Parser) gatheredBlockDrop(section, body *goquery.Selection) []types.DropRecord {
	anchors := section.Find("a")
	if anchors.Length() == 0 {
		return nil
	}

	zone := ""
	if anchors.Length() > 1 {
		zone = gatheringZoneLabel(anchors)
	}
	gatherTime, _ := ExtractTimeOfDay(body.Text())
	level, _ := ExtractFirstInteger(firstChildText(section))

	return []types.DropRecord{{
		SourceName:      anchors.First().Text(),
		LocationLabel:   zone + "-" + anchors.Last().Text() + "-" + gatherTime,
		LevelLabel:      level,
		CoordinateLabel: FormatCoordinates(followingText(anchors.Last())),
	}}
}

// gatheringZoneLabel picks the first anchor that names a place rather than a
// resource: resource anchors carry node-kind words ("patch", "tree",
// "mining", ...) and are skipped.
func gatheringZoneLabel(anchors *goquery.Selection) string {
	zone := ""
	anchors.EachWithBreak(func(_ int, anchor *goquery.Selection) bool {
		if !LooksLikeLocationToken(anchor.Text()) {
			zone = anchor.Text()
			return false
		}
		return true
	})
	return zone
}

// gatheringRoleDrops handles the gathering-role table: per row, the resource
// name is the second child of column 0, the place is named by column 1's
// anchors, the level leads column 2 and coordinates close out the row.
func (p *Parser) gatheringRoleDrops(body *goquery.Selection) []types.DropRecord {
	table := body.Find("table.gathering-role").First()
	if table.Length() == 0 {
		return nil
	}

	rows := table.Find("tbody tr")
	if rows.Length() == 0 {
		return nil
	}

	var records []types.DropRecord
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")

		location := ""
		if cells.Length() > 1 {
			anchors := cells.Eq(1).Find("a")
			if anchors.Length() >= 2 {
				location = anchors.Eq(0).Text() + " - " + anchors.Eq(1).Text()
			} else {
				location = anchors.First().Text()
			}
		}

		level := ""
		if cells.Length() > 2 {
			level = strings.TrimSpace(flattenText(childText(cells.Eq(2), 0)))
		}

		records = append(records, types.DropRecord{
			SourceName:      strings.TrimSpace(flattenText(childText(cells.Eq(0), 1))),
			LocationLabel:   location,
			LevelLabel:      level,
			CoordinateLabel: FormatCoordinates(lastCellText(cells)),
		})
	})
	return records
}
