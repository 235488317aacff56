package model

// ChecklistItem is one generated sub-task.
type ChecklistItem struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// ChecklistEntry is the generated checklist for one appointment.
type ChecklistEntry struct {
	IntroText string          `json:"intro_text"`
	Items     []ChecklistItem `json:"items"`
}

// Clone returns a deep copy so callers never share the item slice.
func (e ChecklistEntry) Clone() ChecklistEntry {
	items := make([]ChecklistItem, len(e.Items))
	copy(items, e.Items)
	return ChecklistEntry{IntroText: e.IntroText, Items: items}
}
