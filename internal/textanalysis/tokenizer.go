package textanalysis

import (
	"iter"
)

// Tokenizer splits text into lowercase ASCII word tokens, dropping stop words.
type Tokenizer struct {
	stopWords StopWords
}

// NewTokenizer creates a tokenizer. A nil set means DefaultStopWords.
func NewTokenizer(stopWords StopWords) *Tokenizer {
	if stopWords == nil {
		stopWords = DefaultStopWords()
	}
	return &Tokenizer{stopWords: stopWords}
}

// Tokens yields every maximal run of [A-Za-z0-9_] in text, lower-cased, in
// source order. Stop words are skipped; duplicates are kept. Non-ASCII bytes
// separate words.
func (t *Tokenizer) Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i := 0; i <= len(text); i++ {
			if i < len(text) && isWordByte(text[i]) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start < 0 {
				continue
			}
			word := lowerASCII(text[start:i])
			start = -1
			if t.stopWords.Contains(word) {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}

// Tokenize collects Tokens into a slice.
func (t *Tokenizer) Tokenize(text string) []string {
	var out []string
	for tok := range t.Tokens(text) {
		out = append(out, tok)
	}
	return out
}

func isWordByte(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

func lowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
