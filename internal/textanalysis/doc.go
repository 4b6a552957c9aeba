// Package textanalysis turns free text into ranked word frequencies.
//
// Tokenizer yields lowercase ASCII words with stop words removed, and
// FrequencyTable counts them. Rank orders by descending count; ties keep
// first-seen order, so output is deterministic for a given input.
//
//	tok := textanalysis.NewTokenizer(nil)
//	ft := textanalysis.Aggregate(tok.Tokens(text))
//	for _, wc := range ft.Rank() {
//	    fmt.Println(wc.Word, wc.Count)
//	}
package textanalysis
