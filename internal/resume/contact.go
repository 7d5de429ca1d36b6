package resume

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	nameRe  = regexp.MustCompile(`(?i)^name\s*[:\-]\s*(.+)$`)
)

// nameSkipWords disqualify a header line from being the candidate name.
var nameSkipWords = []string{
	"resume", "curriculum", "vitae", "profile", "summary", "objective",
	"experience", "education", "skills", "contact", "address", "phone",
	"email", "linkedin", "github", "http", "www",
}

func extractEmail(text string) string {
	return emailRe.FindString(text)
}

func extractPhone(text string) string {
	return strings.TrimSpace(phoneRe.FindString(text))
}

// extractName picks the candidate name from the header block: an explicit
// "Name:" label wins, then the first plausible short line, then the local
// part of the email address.
func extractName(header []string, email string) string {
	for _, line := range header {
		if m := nameRe.FindStringSubmatch(line); m != nil {
			if name := strings.TrimSpace(m[1]); plausibleName(name) {
				return name
			}
		}
	}
	limit := len(header)
	if limit > 10 {
		limit = 10
	}
	for _, line := range header[:limit] {
		if plausibleName(line) {
			return line
		}
	}
	if at := strings.Index(email, "@"); at > 0 {
		return nameFromLocalPart(email[:at])
	}
	return ""
}

// plausibleName accepts 2-4 capitalized alphabetic words that do not
// look like a document header or contact detail.
func plausibleName(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range nameSkipWords {
		if strings.Contains(lower, word) {
			return false
		}
	}
	if strings.ContainsAny(line, "@/\\") {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		for i, r := range w {
			if i == 0 && !unicode.IsUpper(r) {
				return false
			}
			if !unicode.IsLetter(r) && r != '.' && r != '\'' && r != '-' {
				return false
			}
		}
	}
	return true
}

func nameFromLocalPart(local string) string {
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || unicode.IsDigit(r)
	})
	for i, p := range parts {
		parts[i] = titleCase(p)
	}
	return strings.Join(parts, " ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
