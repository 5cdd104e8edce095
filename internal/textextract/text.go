package textextract

import (
	"sort"
	"strings"
	"unicode"
)

var replacer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\t", " ",
	"\u00a0", " ",
	"–", "-",
	"—", "-",
	"•", "\n- ",
	"●", "\n- ",
	"▪", "\n- ",
	"‣", "\n- ",
	"⁃", "\n- ",
	"’", "'",
	"“", "\"",
	"”", "\"",
)

// Normalize unifies newlines, bullets, dashes and whitespace. Blank lines are
// collapsed so each remaining line carries content.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = replacer.Replace(text)

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "o ") {
			line = "- " + strings.TrimSpace(line[2:])
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

// Lower returns the normalized text in lower case.
func Lower(text string) string {
	return strings.ToLower(Normalize(text))
}

// Sentences splits text into trimmed sentences and list items.
func Sentences(text string) []string {
	text = Normalize(text)
	if text == "" {
		return nil
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "- "))
		start := 0
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c != '.' && c != ';' && c != '!' && c != '?' {
				continue
			}
			// keep decimals and names like node.js intact
			if c == '.' && i+1 < len(line) && line[i+1] != ' ' {
				continue
			}
			if s := strings.TrimSpace(line[start:i]); s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
		if s := strings.TrimSpace(line[start:]); s != "" {
			out = append(out, s)
		}
	}

	return out
}

// Tokens lowercases text and splits it into words, keeping characters that
// appear in technology names such as c++, c# and node.js.
func Tokens(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#' && r != '.'
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".")
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// ContainsPhrase reports whether phrase occurs in text on word boundaries.
// Both arguments are expected in lower case.
func ContainsPhrase(text, phrase string) bool {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" || text == "" {
		return false
	}

	offset := 0
	for {
		idx := strings.Index(text[offset:], phrase)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(phrase)
		if boundary(text, start-1) && boundary(text, end) {
			return true
		}
		offset = start + 1
	}
}

// boundary reports whether position i of s is outside a word.
func boundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := rune(s[i])
	if c >= 0x80 {
		return false
	}
	if c == '.' {
		// a trailing full stop ends a word, "node.js" does not
		return i+1 >= len(s) || s[i+1] == ' ' || s[i+1] == '\n'
	}
	return !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '+' && c != '#'
}

// RemovePhrase blanks every word-bounded occurrence of phrase with spaces,
// keeping offsets intact. Both arguments are expected in lower case.
func RemovePhrase(text, phrase string) string {
	if phrase == "" {
		return text
	}

	var b strings.Builder
	offset := 0
	for {
		idx := strings.Index(text[offset:], phrase)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(phrase)
		if boundary(text, start-1) && boundary(text, end) {
			b.WriteString(text[offset:start])
			b.WriteString(strings.Repeat(" ", len(phrase)))
		} else {
			b.WriteString(text[offset : start+1])
			end = start + 1
		}
		offset = end
	}
	b.WriteString(text[offset:])
	return b.String()
}

// FindPhrases returns the phrases found in text on word boundaries, in the
// order they were supplied. Text must be lower case.
func FindPhrases(text string, phrases []string) []string {
	var found []string
	for _, p := range phrases {
		if ContainsPhrase(text, p) {
			found = append(found, p)
		}
	}
	return found
}

// KeywordCount is a keyword with its number of occurrences.
type KeywordCount struct {
	Word  string
	Count int
}

// RankKeywords returns up to limit words ranked by frequency, ties broken
// alphabetically. Stop words, numbers and words shorter than three runes are
// skipped.
func RankKeywords(text string, stop map[string]struct{}, limit int) []KeywordCount {
	counts := make(map[string]int)
	for _, tok := range Tokens(text) {
		if len([]rune(tok)) < 3 || isNumber(tok) {
			continue
		}
		if _, skip := stop[tok]; skip {
			continue
		}
		counts[tok]++
	}

	ranked := make([]KeywordCount, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, KeywordCount{Word: w, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != '+' {
			return false
		}
	}
	return true
}
