package models

// NoteSection is one named section of a trade's notes document.
type NoteSection struct {
	Text     string   `json:"text"`
	Mistakes []string `json:"mistakes"`
}

// NotesDocument is the structured notes attached to a trade: four
// sections covering the lifecycle of the position. Older trades may
// carry a plain string instead; those decode to the zero document.
type NotesDocument struct {
	PreTrade    NoteSection `json:"preTrade"`
	DuringTrade NoteSection `json:"duringTrade"`
	PostTrade   NoteSection `json:"postTrade"`
	Improvement NoteSection `json:"improvement"`
}

// AllMistakes returns the union of all four sections' mistake tags in
// document order. Duplicates are preserved.
func (d *NotesDocument) AllMistakes() []string {
	var tags []string
	for _, s := range []NoteSection{d.PreTrade, d.DuringTrade, d.PostTrade, d.Improvement} {
		tags = append(tags, s.Mistakes...)
	}
	return tags
}
