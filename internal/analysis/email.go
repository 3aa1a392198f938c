package analysis

import (
	"fmt"
	"strings"

	"github.com/coopnet/meeting-insights/internal/models"
)

// EmailSubject is fixed; the draft is a template, not a composition UI.
const EmailSubject = "Meeting Summary and Action Items"

const emailBodyTemplate = `Hi Team,

Here's a summary and the action items from our recent meeting:

**Summary:**
%s

**Action Items:**
%s


Best regards,
Meeting Insights Assistant
`

// ComposeEmail builds the draft email from the two analysis outputs and
// the speaker identities. Recipients are the non-empty emails in tag
// order; identities without an email are skipped, never rendered as an
// empty entry. Total over its inputs.
func ComposeEmail(summary, actionItems string, tags []int, identities map[int]models.SpeakerIdentity) models.EmailDraft {
	var recipients []string
	for _, tag := range tags {
		if id, ok := identities[tag]; ok && id.Email != "" {
			recipients = append(recipients, id.Email)
		}
	}
	return models.EmailDraft{
		Subject:    EmailSubject,
		Body:       fmt.Sprintf(emailBodyTemplate, summary, actionItems),
		Recipients: strings.Join(recipients, ", "),
	}
}
