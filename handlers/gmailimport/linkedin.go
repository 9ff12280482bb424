package gmailimport

import (
	"strings"
)

const linkedInSender = "jobs-noreply@linkedin.com"

const appliedMarker = "your application was sent to "

// ParseLinkedInMessage extracts the company and, when possible, the job
// title from a LinkedIn "application sent" notification. The subject
// reads "<name>, your application was sent to <company>" and the
// snippet usually starts with "<title> · <company> · <location>".
func ParseLinkedInMessage(subject, snippet string) (title, company string, ok bool) {
	lower := strings.ToLower(subject)
	idx := strings.Index(lower, appliedMarker)
	if idx < 0 {
		return "", "", false
	}

	company = strings.TrimSpace(subject[idx+len(appliedMarker):])
	company = strings.TrimSuffix(company, "!")
	company = strings.TrimSuffix(company, ".")
	if company == "" {
		return "", "", false
	}

	title = "Imported from LinkedIn"
	if parts := strings.Split(snippet, "·"); len(parts) > 1 {
		if candidate := strings.TrimSpace(parts[0]); candidate != "" {
			title = candidate
		}
	}

	return title, company, true
}
