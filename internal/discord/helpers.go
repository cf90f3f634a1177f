package discord

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// cropDisplayName turns a crop type id like "golden_hops" into a
// human-readable "Golden Hops" for embeds.
func cropDisplayName(cropType string) string {
	return titleCaser.String(strings.ReplaceAll(cropType, "_", " "))
}

// resourceDisplayName renders a resource type id for embeds
func resourceDisplayName(resourceType string) string {
	return titleCaser.String(strings.ReplaceAll(resourceType, "_", " "))
}
