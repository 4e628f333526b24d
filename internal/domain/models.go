package domain

// Insight is the structured legal analysis returned by the language model.
// The prompt requests a fixed schema (key_details, analysis,
// actionable_checklist, scraped_text) but the shape is ultimately
// model-controlled, so it stays a dynamic document rather than a rigid
// struct. Downstream consumers depend on the exact key names.
type Insight map[string]any

const scrapedTextKey = "scraped_text"

// HasScrapedText reports whether the model echoed the extracted text back
// under the scraped_text key.
func (i Insight) HasScrapedText() bool {
	_, ok := i[scrapedTextKey]
	return ok
}

// SetScrapedText backfills the full extracted text into the insight.
func (i Insight) SetScrapedText(text string) {
	i[scrapedTextKey] = text
}

// HasError reports whether the insight itself carries an error key.
func (i Insight) HasError() bool {
	_, ok := i["error"]
	return ok
}

// ErrorPayload is a success-shaped failure: the pipeline completed but the
// result is an error description rather than an insight. It is returned to
// the client with a 200 status, never raised as a Go error.
type ErrorPayload struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ChatAnswer wraps the assistant's free-text reply to a document question.
type ChatAnswer struct {
	Answer string `json:"answer"`
}
