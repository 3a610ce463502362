package weekplan

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	shareHeader = "Hey coach! Here's how I'm planning my weekly macros:\n\n"
	shareFooter = "\nLet me know if you want me to make any adjustments!"

	whatsAppBaseURL = "https://wa.me/?text="
)

// ShareText renders the week as a message for a coach, one line per day:
//
//	M: 1940 cals / 150P / 60F / 200C
func ShareText(w Week) string {
	var b strings.Builder
	b.WriteString(shareHeader)
	for _, d := range w.Days {
		fmt.Fprintf(&b, "%s: %d cals / %dP / %dF / %dC\n", d.Label, d.TotalCalories, d.ProteinG, d.FatG, d.CarbsG)
	}
	b.WriteString(shareFooter)
	return b.String()
}

// WhatsAppURL returns a wa.me link that opens a chat prefilled with text.
// Spaces are sent as %20, matching how browsers encode URI components.
func WhatsAppURL(text string) string {
	return whatsAppBaseURL + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
