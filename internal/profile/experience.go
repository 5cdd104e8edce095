package profile

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const maxExperienceYears = 50

const monthPattern = `(?:(\d{1,2})/|(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?`

var (
	rangeRe = regexp.MustCompile(`(?i)` + monthPattern + `((?:19|20)\d{2})\s*(?:-|to|until)\s*` +
		monthPattern + `((?:19|20)\d{2}|present|current|now|date|today)\b`)
	statedYearsRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*(?:years?|yrs?)\b(\s+old)?`)
	monthNames    = map[string]int{
		"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
		"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
	}
)

type span struct {
	start, end int // months since year 0
}

// dateSpans finds every resolvable date range in text.
func dateSpans(text string, now time.Time) []span {
	var spans []span
	for _, m := range rangeRe.FindAllStringSubmatch(text, -1) {
		start, ok := monthIndex(m[3], m[1], m[2], now)
		if !ok {
			continue
		}
		end, ok := monthIndex(m[6], m[4], m[5], now)
		if !ok || end < start {
			continue
		}
		if current := now.Year()*12 + int(now.Month()) - 1; start > current {
			continue
		}
		spans = append(spans, span{start: start, end: end})
	}
	return spans
}

func monthIndex(year, numMonth, nameMonth string, now time.Time) (int, bool) {
	switch strings.ToLower(year) {
	case "present", "current", "now", "date", "today":
		return now.Year()*12 + int(now.Month()) - 1, true
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return 0, false
	}

	month := 1
	if numMonth != "" {
		if n, err := strconv.Atoi(numMonth); err == nil && n >= 1 && n <= 12 {
			month = n
		}
	} else if nameMonth != "" {
		if n, ok := monthNames[strings.ToLower(nameMonth[:3])]; ok {
			month = n
		}
	}
	return y*12 + month - 1, true
}

// mergedMonths sums the spans after merging overlaps.
func mergedMonths(spans []span) int {
	if len(spans) == 0 {
		return 0
	}
	sorted := append([]span(nil), spans...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start < sorted[j].start })

	total := 0
	cur := sorted[0]
	for _, s := range sorted[1:] {
		if s.start <= cur.end {
			if s.end > cur.end {
				cur.end = s.end
			}
			continue
		}
		total += cur.end - cur.start
		cur = s
	}
	return total + cur.end - cur.start
}

// statedYears returns the largest "N years" figure that is not an age.
func statedYears(text string) int {
	best := 0
	for _, m := range statedYearsRe.FindAllStringSubmatch(text, -1) {
		if m[2] != "" {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > best {
			best = n
		}
	}
	return best
}

// experienceYears combines summed date ranges with explicitly stated years.
func experienceYears(text string, now time.Time) int {
	years := mergedMonths(dateSpans(text, now)) / 12
	if stated := statedYears(text); stated > years {
		years = stated
	}
	if years > maxExperienceYears {
		years = maxExperienceYears
	}
	return years
}

// workHistory builds entries from lines that carry a date range.
func workHistory(lines []string) []WorkEntry {
	var entries []WorkEntry
	for i, line := range lines {
		loc := rangeRe.FindStringIndex(line)
		if loc == nil {
			continue
		}

		period := strings.TrimSpace(line[loc[0]:loc[1]])
		head := strings.Trim(strings.TrimSpace(line[:loc[0]]), "-|,:()")
		if head == "" {
			head = strings.Trim(strings.TrimSpace(line[loc[1]:]), "-|,:()")
		}
		if head == "" && i > 0 {
			head = strings.TrimPrefix(lines[i-1], "- ")
		}

		title, company := splitTitle(head)
		if title == "" {
			continue
		}
		entries = append(entries, WorkEntry{Title: title, Company: company, Period: period})
	}
	return entries
}

func splitTitle(head string) (string, string) {
	head = strings.TrimSpace(head)
	for _, sep := range []string{" at ", ", ", " | ", " - "} {
		if idx := strings.Index(head, sep); idx > 0 {
			return strings.TrimSpace(head[:idx]), strings.Trim(strings.TrimSpace(head[idx+len(sep):]), "-|,")
		}
	}
	return head, ""
}
