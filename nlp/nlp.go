// Package nlp provides the lightweight summarization and keyword scoring
// applied to extracted article text. The heuristics are deliberately
// simple and fully deterministic: leading-sentence extraction for the
// summary, frequency scoring over stopword-filtered terms for keywords.
package nlp

import (
	"sort"
	"strings"
	"unicode"
)

// minKeywordLen filters out short function words the stopword list misses.
const minKeywordLen = 4

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		about above after again against also among because been before being
		below between both could does doing down during each from further
		have having here hers herself himself into itself more most other
		ours ourselves over same should some such than that their theirs
		them themselves then there these they this those through under
		until very were what when where which while whom will with would
		your yours yourself yourselves`) {
		stopwords[w] = struct{}{}
	}
}

// Summarize returns the leading maxSentences sentences of text joined by
// single spaces. Returns an empty string for empty input, never nil-like
// placeholder text.
func Summarize(text string, maxSentences int) string {
	sentences := Sentences(text)
	if len(sentences) > maxSentences {
		sentences = sentences[:maxSentences]
	}
	return strings.Join(sentences, " ")
}

// Sentences splits text into trimmed sentences on terminal punctuation.
// The split is naive about abbreviations, which is acceptable for a
// leading-sentence summary.
func Sentences(text string) []string {
	var out []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(b.String()); s != "" {
				out = append(out, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		out = append(out, s)
	}
	return out
}

// Keywords returns up to max distinct keywords for the text. Seed terms
// (source-declared tags) rank first; the remainder are the most frequent
// stopword-filtered terms, ties broken alphabetically so the result is
// deterministic.
func Keywords(text string, seed []string, max int) []string {
	out := make([]string, 0, max)
	seen := map[string]struct{}{}

	for _, s := range seed {
		w := strings.ToLower(strings.TrimSpace(s))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) == max {
			return out
		}
	}

	counts := map[string]int{}
	for _, w := range tokenize(text) {
		counts[w]++
	}
	terms := make([]string, 0, len(counts))
	for w := range counts {
		terms = append(terms, w)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	for _, w := range terms {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) == max {
			break
		}
	}
	return out
}

// tokenize lowercases text and yields candidate keyword terms.
func tokenize(text string) []string {
	var out []string
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if len(w) < minKeywordLen {
			continue
		}
		if _, ok := stopwords[w]; ok {
			continue
		}
		out = append(out, w)
	}
	return out
}
