package textanalysis

// defaultStopWords is the fixed English stop-word list applied by the
// tokenizer. Duplicates in the list are harmless.
var defaultStopWords = []string{
	"the", "and", "a", "i", "of", "to", "in", "for", "on", "at", "with", "as", "by", "an", "this", "that", "which",
	"it", "be", "are", "were", "was", "have", "has", "had", "not", "but", "or", "so", "from", "because", "about",
	"he", "you", "his", "her", "they", "them", "we", "us", "our", "my", "me", "she", "their", "there", "what", "when",
	"where", "who", "whom", "why", "how", "is", "if", "all", "any", "can", "will", "would", "could", "should", "shall",
	"do", "does", "did", "done", "no", "yes", "up", "down", "out", "over", "under", "again", "further", "then",
	"once", "here", "such", "only", "own", "same", "than", "too", "very", "most", "more", "other", "some", "few", "many",
	"s", "t", "him", "into", "its", "those", "these", "both", "each", "another", "much", "little",
	"said",
}

// StopWords is a set of words excluded from tokenization.
type StopWords map[string]struct{}

// DefaultStopWords returns a fresh copy of the built-in English stop words.
func DefaultStopWords() StopWords {
	return NewStopWords(defaultStopWords...)
}

// NewStopWords builds a set from words.
func NewStopWords(words ...string) StopWords {
	s := make(StopWords, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is a stop word.
func (s StopWords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}
