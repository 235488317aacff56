package checklist

import "fmt"

const promptTemplate = "Make a list of items that is as short as possible for the following task: %s given it is %s. " +
	"Only give bullet points. Make sure it is appropriate for people who have ADHD and break it down into small tasks. " +
	"Format it as follows and use emojis to better visualize each item: " +
	Delimiter + " Item 1\n" + Delimiter + " Item 2\n" + Delimiter + " Item 3"

// BuildPrompt embeds the appointment summary and today's date into the generation prompt.
func BuildPrompt(summary, currentDate string) string {
	return fmt.Sprintf(promptTemplate, summary, currentDate)
}
