package pagescope

import (
	"context"
	"encoding/json"
	"strconv"
	"unicode/utf8"
)

// TextItem is an extracted text bounded to a maximum length. An elided
// item carries no text, only the original length, so a length-constrained
// consumer still learns how much content was left out.
type TextItem struct {
	Text   string
	Length int
	Elided bool
}

// String returns the text, or the decimal length for elided items.
func (t TextItem) String() string {
	if t.Elided {
		return strconv.Itoa(t.Length)
	}
	return t.Text
}

// MarshalJSON encodes elided items as a number and others as a string.
func (t TextItem) MarshalJSON() ([]byte, error) {
	if t.Elided {
		return json.Marshal(t.Length)
	}
	return json.Marshal(t.Text)
}

// MarshalYAML encodes elided items as a number and others as a string.
func (t TextItem) MarshalYAML() (any, error) {
	if t.Elided {
		return t.Length, nil
	}
	return t.Text, nil
}

// HandleTextLen bounds every text to maxLen runes. Longer texts are cut to
// their first maxLen runes when truncate is set, or replaced by an elided
// item holding their rune length otherwise. Shorter texts pass unchanged.
// The result has the same length and order as texts.
func HandleTextLen(texts []string, maxLen int, truncate bool) []TextItem {
	items := make([]TextItem, len(texts))
	for i, text := range texts {
		n := utf8.RuneCountInString(text)
		switch {
		case n <= maxLen:
			items[i] = TextItem{Text: text, Length: n}
		case truncate:
			cut := truncateRunes(text, maxLen)
			items[i] = TextItem{Text: cut, Length: utf8.RuneCountInString(cut)}
		default:
			items[i] = TextItem{Length: n, Elided: true}
		}
	}
	return items
}

// ClipTokens is the token-denominated form of HandleTextLen: maxTokens is
// a budget in the counter's tokens and elided items hold a token count.
// Truncation keeps the longest rune prefix that fits the budget.
func ClipTokens(ctx context.Context, counter TokenCounter, texts []string, maxTokens int, truncate bool) ([]TextItem, error) {
	items := make([]TextItem, len(texts))
	for i, text := range texts {
		n, err := counter.CountTokens(ctx, text)
		if err != nil {
			return nil, err
		}
		switch {
		case n <= maxTokens:
			items[i] = TextItem{Text: text, Length: n}
		case truncate:
			prefix, count, err := tokenPrefix(ctx, counter, text, maxTokens)
			if err != nil {
				return nil, err
			}
			items[i] = TextItem{Text: prefix, Length: count}
		default:
			items[i] = TextItem{Length: n, Elided: true}
		}
	}
	return items, nil
}

// tokenPrefix binary searches the longest rune prefix of text whose token
// count fits maxTokens.
func tokenPrefix(ctx context.Context, counter TokenCounter, text string, maxTokens int) (string, int, error) {
	runes := []rune(text)
	lo, hi := 0, len(runes)
	best, bestCount := "", 0
	for lo <= hi {
		mid := (lo + hi) / 2
		prefix := string(runes[:mid])
		n, err := counter.CountTokens(ctx, prefix)
		if err != nil {
			return "", 0, err
		}
		if n <= maxTokens {
			best, bestCount = prefix, n
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best, bestCount, nil
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
