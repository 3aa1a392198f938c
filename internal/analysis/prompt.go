// Package analysis builds the generative-analysis requests for a
// formatted transcript and assembles the follow-up email draft.
package analysis

import (
	"fmt"

	"github.com/coopnet/meeting-insights/internal/utils"
)

// Kind selects which analysis a prompt requests.
type Kind string

const (
	KindSummary     Kind = "summary"
	KindActionItems Kind = "actions"
)

// Label is the human-readable form used in degraded outputs.
func (k Kind) Label() string {
	switch k {
	case KindSummary:
		return "summary"
	case KindActionItems:
		return "action items"
	default:
		return string(k)
	}
}

const summaryTemplate = `Analyze the following meeting transcript and generate a concise summary covering the key discussion points, decisions made, and overall outcomes. Structure the summary clearly.

Transcript:
---
%s
---

Summary:`

const actionItemsTemplate = `Analyze the following meeting transcript and extract all specific action items. For each item, identify the task description, the person assigned (owner) based on the speaker names in the transcript, and the deadline if mentioned. If an owner isn't clearly stated but implied by context (e.g., "I will send..."), assign it to the speaker who said it. List the action items clearly, one per line, preferably in the format: '[Task] - [Owner Name] - [Deadline (if specified)]'. If no action items are found, state that clearly.

Transcript:
---
%s
---

Action Items:`

// Prompt embeds the transcript verbatim into the instructional template
// for the given kind. Unknown kinds fail fast.
func Prompt(kind Kind, transcriptText string) (string, error) {
	switch kind {
	case KindSummary:
		return fmt.Sprintf(summaryTemplate, transcriptText), nil
	case KindActionItems:
		return fmt.Sprintf(actionItemsTemplate, transcriptText), nil
	default:
		return "", utils.E(utils.CodeInvalidArgument, "analysis.Prompt",
			fmt.Sprintf("unknown analysis kind %q", kind), nil)
	}
}

// ErrorText is the placeholder substituted for one analysis output when
// its generation request fails. The other output is unaffected.
func ErrorText(kind Kind, err error) string {
	return fmt.Sprintf("Error generating %s: %v", kind.Label(), err)
}
