package gemini

import "encoding/json"

// noCandidatesReply is returned when the provider answered successfully but
// the body carries no candidates. Kept verbatim for compatibility.
const noCandidatesReply = "No response from Gemini."

const extractErrPrefix = "Error Processing message : "

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// ExtractReply pulls the first candidate's text out of a raw provider body.
// It never fails: shape anomalies degrade into fallback strings, so a
// successful round trip always yields some text for the caller.
func ExtractReply(raw []byte) string {
	var resp generateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return extractErrPrefix + err.Error()
	}
	if len(resp.Candidates) == 0 {
		return noCandidatesReply
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return extractErrPrefix + "candidate has no content parts"
	}
	return parts[0].Text
}
