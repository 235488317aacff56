package checklist

import (
	"strings"

	"adhd-planner/internal/model"
)

// Delimiter separates checklist items in a model reply. BuildPrompt asks for it
// and Parse splits on it, so both must agree.
const Delimiter = "•"

// Parse splits a free-form reply on Delimiter. The first fragment becomes the
// intro text, every later non-blank fragment becomes an unchecked item.
// A reply with no usable fragment after the first yields ErrNoItems.
func Parse(raw string) (model.ChecklistEntry, error) {
	fragments := strings.Split(raw, Delimiter)

	entry := model.ChecklistEntry{
		IntroText: strings.TrimSpace(fragments[0]),
		Items:     make([]model.ChecklistItem, 0, len(fragments)-1),
	}
	for _, f := range fragments[1:] {
		text := strings.TrimSpace(f)
		if text == "" {
			continue
		}
		entry.Items = append(entry.Items, model.ChecklistItem{Text: text})
	}

	if len(entry.Items) == 0 {
		return model.ChecklistEntry{}, ErrNoItems
	}
	return entry, nil
}
