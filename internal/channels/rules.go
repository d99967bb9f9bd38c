package channels

import (
	"slices"
	"strings"

	"listone/internal/textutil"
)

// Rule pairs a predicate over a lowercased display name with the category
// it assigns.
type Rule struct {
	Category Category
	Match    func(lowered string) bool
}

// rules is the classification ladder. Evaluation stops at the first match,
// so the order is significant: "sky calcio" has to be seen before the
// generic "sky " prefix, and "rai" outranks everything else.
var rules = []Rule{
	{Rai, containsAny("rai")},
	{Mediaset, containsAny("mediaset", "canale 5", "italia 1", "rete 4")},
	{Discovery, containsAny(
		"discovery",
		"dmax",
		"real time",
		"top crime",
		"food network",
		"crime+ investigation",
		"nove",
		"hgtv",
	)},
	{SkyCinema, containsAny("sky cinema")},
	{SkySport, func(n string) bool {
		return strings.Contains(n, "sky sport") && !strings.Contains(n, "sky calcio")
	}},
	{SkyCalcio, containsAny("sky calcio")},
	{SkyEntertainment, func(n string) bool { return strings.HasPrefix(n, "sky ") }},
	{Dazn, containsAny("dazn")},
}

// Rules returns a copy of the classification ladder in evaluation order.
func Rules() []Rule {
	return slices.Clone(rules)
}

// Fallback is assigned when no rule matches.
const Fallback = Events

// Classify returns the category for a display name.
func Classify(displayName string) Category {
	lowered := textutil.Lower(displayName)
	for _, rule := range rules {
		if rule.Match(lowered) {
			return rule.Category
		}
	}
	return Fallback
}

func containsAny(tokens ...string) func(string) bool {
	return func(n string) bool {
		for _, token := range tokens {
			if strings.Contains(n, token) {
				return true
			}
		}
		return false
	}
}
