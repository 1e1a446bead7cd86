// Package parser extracts structured food items and logging intent from
// model replies. The summary-line grammar and the intent marker are part
// of the prompt contract; both are matched here and nowhere else.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"nutrichat/internal/model"
)

// LogIntentMarker is the phrase the model emits to signal confirmed intent.
// Matching is a case-insensitive substring check over the whole reply.
const LogIntentMarker = "user wants to log the meal"

// summaryLine matches one food summary line at the start of a line:
//
//	<name> (<qty/size>), <N> g protein, <N> g carbs, <N> g fat, <N> cals
//
// Trailing content after "cals" is ignored. Lines missing any macro or the
// calorie field do not match and are treated as conversational text.
var summaryLine = regexp.MustCompile(
	`(?i)^(.*?)\s*\(\s*([^)]+)\s*\),\s*(\d+)\s*g protein,\s*(\d+)\s*g carbs,\s*(\d+)\s*g fat,\s*(\d+)\s*cals`,
)

// ParseSummaryLines scans a model reply line by line and returns every food
// item whose line matches the summary grammar. Non-matching lines are
// skipped; a reply with no matching lines yields an empty slice.
func ParseSummaryLines(reply string) []model.FoodItem {
	var items []model.FoodItem
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := summaryLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if qty := strings.TrimSpace(m[2]); qty != "" {
			name = name + " (" + qty + ")"
		}
		items = append(items, model.FoodItem{
			Food:     name,
			Protein:  mustInt(m[3]),
			Carbs:    mustInt(m[4]),
			Fat:      mustInt(m[5]),
			Calories: mustInt(m[6]),
		})
	}
	return items
}

// DetectLogIntent reports whether the reply contains the intent marker.
func DetectLogIntent(reply string) bool {
	return strings.Contains(strings.ToLower(reply), LogIntentMarker)
}

// mustInt converts a digit-only capture group. The pattern guarantees the
// input is \d+, so conversion cannot fail short of overflow.
func mustInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
