package channels

import (
	"fmt"
	"slices"
	"strings"
)

// Category identifies the group a channel is filed under.
type Category string

const (
	Rai              Category = "RAI"
	Mediaset         Category = "MEDIASET"
	Discovery        Category = "DISCOVERY"
	SkyEntertainment Category = "SKY_ENTERTAINMENT"
	SkyCinema        Category = "SKY_CINEMA"
	SkySport         Category = "SKY_SPORT"
	SkyCalcio        Category = "SKY_CALCIO"
	Dazn             Category = "DAZN"
	Events           Category = "EVENTS"
)

// order lists every category in output priority order. A category's rank is
// its index in this slice.
var order = []Category{
	Rai,
	Mediaset,
	Discovery,
	SkyEntertainment,
	SkyCinema,
	SkySport,
	SkyCalcio,
	Dazn,
	Events,
}

// Order returns every category in output priority order. The slice is a
// copy; changing it does not affect ranking.
func Order() []Category {
	return slices.Clone(order)
}

var labels = map[Category]string{
	Rai:              "Rai",
	Mediaset:         "Mediaset",
	Discovery:        "Discovery",
	SkyEntertainment: "Sky Intrattenimento",
	SkyCinema:        "Sky Cinema",
	SkySport:         "Sky Sport",
	SkyCalcio:        "Sky Calcio",
	Dazn:             "DAZN",
	Events:           "Eventi",
}

func (c Category) String() string {
	return string(c)
}

// Label returns the human-facing name used in summaries.
func (c Category) Label() string {
	if label, ok := labels[c]; ok {
		return label
	}
	return string(c)
}

// Rank returns the position of c in Order(). Unknown categories rank after
// every known one.
func (c Category) Rank() int {
	for i, candidate := range order {
		if candidate == c {
			return i
		}
	}
	return len(order)
}

// ParseCategory resolves a category tag case-insensitively. Hyphens and
// spaces are accepted in place of underscores.
func ParseCategory(value string) (Category, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	for _, c := range order {
		if string(c) == normalized {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", value)
}
