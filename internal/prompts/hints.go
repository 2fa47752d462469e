package prompts

import "strings"

// UnknownHint is rendered in place of a request hint the caller did not supply.
const UnknownHint = "undefined"

// RequestHints is best-effort geographic metadata about where a request
// came from. Nil fields are unknown; an empty string is rendered as-is.
type RequestHints struct {
	Latitude  *string
	Longitude *string
	City      *string
	Country   *string
}

// RequestPrompt renders hints as the fixed "origin of request" block that
// follows the persona in every system prompt. Values are not validated.
func RequestPrompt(hints RequestHints) string {
	var sb strings.Builder
	sb.WriteString(requestOriginHeader + "\n")
	writeHint(&sb, "lat", hints.Latitude)
	writeHint(&sb, "lon", hints.Longitude)
	writeHint(&sb, "city", hints.City)
	writeHint(&sb, "country", hints.Country)
	return sb.String()
}

func writeHint(sb *strings.Builder, label string, value *string) {
	sb.WriteString("- " + label + ": ")
	if value == nil {
		sb.WriteString(UnknownHint)
	} else {
		sb.WriteString(*value)
	}
	sb.WriteString("\n")
}
