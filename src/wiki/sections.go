package wiki

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// The wiki is inconsistent about whether a section heading exposes a stable
// span id, so locators try an id match first and fall back to case-
// insensitive heading-text containment.

// findHeading returns the first heading of the given tag ("h2", "h3") under
// body whose anchor span id is one of ids, or whose text contains one of
// ids case-insensitively. Returns nil when no heading qualifies.
func findHeading(body *goquery.Selection, tag string, ids ...string) *goquery.Selection {
	var found *goquery.Selection

	body.Find(tag).EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		for _, id := range ids {
			if heading.Find("span#" + id).Length() > 0 {
				found = heading
				return false
			}
		}
		return true
	})
	if found != nil {
		return found
	}

	body.Find(tag).EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		text := strings.ToLower(heading.Text())
		for _, id := range ids {
			if strings.Contains(text, strings.ToLower(strings.ReplaceAll(id, "_", " "))) {
				found = heading
				return false
			}
		}
		return true
	})
	return found
}

// sectionBody returns the content node structurally following a heading: the
// next element sibling. What that node means (a list, a lone descriptive
// node, a table) is the extractor's problem; absence is the caller's.
func sectionBody(heading *goquery.Selection) *goquery.Selection {
	if heading == nil {
		return nil
	}
	next := heading.Next()
	if next.Length() == 0 {
		return nil
	}
	return next
}

// findSectionBody combines the two: the content node after the first heading
// matching any of ids, or nil when the section is absent.
func findSectionBody(body *goquery.Selection, tag string, ids ...string) *goquery.Selection {
	return sectionBody(findHeading(body, tag, ids...))
}

// followingText returns the text of the raw sibling nodes immediately after
// sel's first node, up to the next element. Coordinates and gathering times
// live in these bare text nodes right after the last anchor.
func followingText(sel *goquery.Selection) string {
	if sel == nil || len(sel.Nodes) == 0 {
		return ""
	}
	var sb strings.Builder
	for node := sel.Nodes[0].NextSibling; node != nil; node = node.NextSibling {
		if node.Type == html.ElementNode {
			break
		}
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
	}
	return sb.String()
}

// firstChildText returns the rendered text of sel's first child node, element
// or not. Gathering list items start with a bare "Level NN" text node.
func firstChildText(sel *goquery.Selection) string {
	if sel == nil || len(sel.Nodes) == 0 {
		return ""
	}
	child := sel.Nodes[0].FirstChild
	if child == nil {
		return ""
	}
	return nodeText(child)
}

// childText returns the rendered text of sel's nth child node, or "".
func childText(sel *goquery.Selection, n int) string {
	if sel == nil || len(sel.Nodes) == 0 || n < 0 {
		return ""
	}
	child := sel.Nodes[0].FirstChild
	for i := 0; child != nil && i < n; i++ {
		child = child.NextSibling
	}
	if child == nil {
		return ""
	}
	return nodeText(child)
}

// nodeText renders the text content of a raw html node and its descendants.
func nodeText(node *html.Node) string {
	if node.Type == html.TextNode {
		return node.Data
	}
	var sb strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		sb.WriteString(nodeText(child))
	}
	return sb.String()
}

// cellText returns the flattened text of the nth cell, or "" when the row is
// short. Keeps row failures local: a missing cell costs one field, not the
// record.
func cellText(cells *goquery.Selection, n int) string {
	if n < 0 || n >= cells.Length() {
		return ""
	}
	return flattenText(cells.Eq(n).Text())
}

// lastCellText returns the flattened text of the final cell in the row.
func lastCellText(cells *goquery.Selection) string {
	return cellText(cells, cells.Length()-1)
}
