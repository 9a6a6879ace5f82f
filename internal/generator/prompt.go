package generator

import "strings"

// Tones lists the style hints the API accepts. An empty tone is valid and
// simply omits the tone clause from the prompt.
var Tones = []string{"formal", "casual", "friendly", "professional", "persuasive"}

// BuildPrompt combines the instruction preamble, an optional tone clause and
// the verbatim original email into the single text blob sent to the provider.
func BuildPrompt(emailContent, tone string) string {
	var b strings.Builder
	b.WriteString("Generate a professional email reply for the following email content. ")
	b.WriteString("Don't include a subject, just keep the body.")
	if tone != "" {
		b.WriteString(" Keep the tone ")
		b.WriteString(tone)
		b.WriteString(" to write the email.")
	}
	b.WriteString("\nOriginal Email:\n")
	b.WriteString(emailContent)
	return b.String()
}
