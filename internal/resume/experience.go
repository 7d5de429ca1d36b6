package resume

import (
	"regexp"
	"strings"

	"screening-backend/internal/vocab"
)

var companyRe = regexp.MustCompile(`(?i)\b(?:inc|llc|ltd|corp|corporation|company|gmbh|plc|technologies|technology|solutions|systems|labs|group|consulting|software|bank|university)\b\.?`)

const maxDescriptionLines = 3

// parseExperience reads employment entries out of the experience section.
// Each recognized date range starts an entry; the title and organization
// come from the same line or the nearest preceding undated lines, and the
// following plain lines become the description.
func parseExperience(lines []string, v *vocab.Vocabulary) []Experience {
	var entries []Experience
	var cur *Experience
	var block []string

	closeEntry := func(titleNeeded bool) (titleLines []string) {
		if cur == nil {
			return nil
		}
		desc := block
		if titleNeeded {
			desc, titleLines = peelTitleLines(block)
		}
		if len(desc) > maxDescriptionLines {
			desc = desc[:maxDescriptionLines]
		}
		cur.Description = strings.Join(desc, "\n")
		entries = append(entries, *cur)
		cur = nil
		return titleLines
	}

	for _, line := range lines {
		dr, ok := findDateRange(line)
		if !ok {
			block = append(block, line)
			continue
		}
		remainder := cleanRemainder(line[:dr.pos] + " " + line[dr.endPos:])
		titleLines := closeEntry(remainder == "")
		if remainder == "" && titleLines == nil {
			_, titleLines = peelTitleLines(block)
		}

		entry := Experience{Start: dr.start, End: dr.end, Current: dr.current}
		if !entry.Current && !entry.End.IsZero() && entry.End.Before(entry.Start) {
			// Inconsistent chronology; keep the entry but drop the dates.
			entry.Start, entry.End = YearMonth{}, YearMonth{}
		}
		if remainder != "" {
			entry.Title, entry.Organization = splitTitleOrg(remainder, v)
		} else {
			entry.Title, entry.Organization = titleOrgFromLines(titleLines, v)
		}
		cur = &entry
		block = nil
	}
	closeEntry(false)
	return entries
}

// peelTitleLines takes up to the last two non-bullet lines off the block
// to serve as the next entry's title and organization.
func peelTitleLines(block []string) (desc, title []string) {
	cut := len(block)
	for cut > 0 && len(block)-cut < 2 && !isBullet(block[cut-1]) {
		cut--
	}
	return block[:cut], block[cut:]
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") ||
		strings.HasPrefix(line, "*") || strings.HasPrefix(line, "·")
}

// cleanRemainder strips leftover separators after the date range has been
// cut out of the line.
func cleanRemainder(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "|,;-–—()"))
}

// splitTitleOrg splits a combined "Title at Company" or "Title, Company"
// line into its parts.
func splitTitleOrg(line string, v *vocab.Vocabulary) (title, org string) {
	for _, sep := range []string{" at ", " @ "} {
		if idx := strings.Index(strings.ToLower(line), sep); idx > 0 {
			return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(sep):])
		}
	}
	for _, sep := range []string{",", "|", " - ", " – "} {
		left, right, found := strings.Cut(line, sep)
		if !found {
			continue
		}
		left, right = strings.TrimSpace(left), strings.TrimSpace(right)
		if left == "" || right == "" {
			continue
		}
		if v.IsJobTitleLine(right) && !v.IsJobTitleLine(left) {
			return right, left
		}
		return left, right
	}
	if companyRe.MatchString(line) && !v.IsJobTitleLine(line) {
		return "", strings.TrimSpace(line)
	}
	return strings.TrimSpace(line), ""
}

// titleOrgFromLines assigns a separate title line and organization line.
func titleOrgFromLines(lines []string, v *vocab.Vocabulary) (title, org string) {
	switch len(lines) {
	case 0:
		return "", ""
	case 1:
		return splitTitleOrg(lines[0], v)
	default:
		a, b := lines[len(lines)-2], lines[len(lines)-1]
		if v.IsJobTitleLine(b) && !v.IsJobTitleLine(a) {
			return b, a
		}
		return a, b
	}
}
