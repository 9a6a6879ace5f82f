package main

import "emailwriter/internal/generator"

type generateRequest struct {
	EmailContent string `json:"emailContent"`
	Tone         string `json:"tone"`
}

// toneChoices is the picker's cycle: the empty first entry means "no tone",
// which omits the tone clause from the prompt.
var toneChoices = append([]string{""}, generator.Tones...)

func toneLabel(tone string) string {
	if tone == "" {
		return "(none)"
	}
	return tone
}
