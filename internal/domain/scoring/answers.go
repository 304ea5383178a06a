package scoring

import (
	"sort"
	"strconv"
	"strings"
)

// BuildAnswerVector assembles the canonical answer vector from answers
// collected per topic during a conversation plus structured answers keyed
// "<topic>_q<N>" (for example "social_anxiety_q3", N is 1-based).
//
// Topics are matched case-insensitively against questionnaire display names.
// A structured answer overwrites item N-1 of its topic; a key without a
// usable item number is appended. Item numbers past the questionnaire's item
// count and appends beyond it are dropped, as are topics with no place in
// the vector. Each topic is padded to its item count and topics are laid out
// in answer-vector order.
func BuildAnswerVector(collected map[string][]int, structured map[string]int) []int {
	topics := make(map[Questionnaire][]int, len(indexMap))
	for name, answers := range collected {
		q, ok := ParseDisplayName(name)
		if !ok {
			continue
		}
		rng, ok := IndexRangeFor(q)
		if !ok {
			continue
		}
		topics[q] = appendCapped(topics[q], rng.ItemCount, answers...)
	}

	// Stable key order so appended answers land deterministically.
	keys := make([]string, 0, len(structured))
	for k := range structured {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		topic, item := splitQuestionID(key)
		q, ok := ParseDisplayName(topic)
		if !ok {
			continue
		}
		rng, ok := IndexRangeFor(q)
		if !ok || item >= rng.ItemCount {
			continue
		}
		answer := structured[key]
		if item < 0 {
			topics[q] = appendCapped(topics[q], rng.ItemCount, answer)
			continue
		}
		for len(topics[q]) <= item {
			topics[q] = append(topics[q], 0)
		}
		topics[q][item] = answer
	}

	out := make([]int, 0, TotalItems)
	for _, e := range indexMap {
		out = append(out, fit(topics[e.questionnaire], e.rng.ItemCount)...)
	}
	return NormalizeAnswerVector(out)
}

// appendCapped appends answers to v until it holds n items.
func appendCapped(v []int, n int, answers ...int) []int {
	if room := n - len(v); room < len(answers) {
		if room <= 0 {
			return v
		}
		answers = answers[:room]
	}
	return append(v, answers...)
}

// NormalizeAnswerVector returns a copy of v with unanswered items set to 0,
// truncated or zero-padded to TotalItems.
func NormalizeAnswerVector(v []int) []int {
	return fit(v, TotalItems)
}

func fit(v []int, n int) []int {
	out := make([]int, n)
	for i := 0; i < n && i < len(v); i++ {
		if v[i] != Unanswered {
			out[i] = v[i]
		}
	}
	return out
}

// splitQuestionID turns "binge_eating_q12" into ("Binge Eating", 11). The item
// index is -1 when the id carries no question number.
func splitQuestionID(id string) (string, int) {
	topic, num := id, ""
	if i := strings.LastIndex(id, "_q"); i >= 0 {
		topic, num = id[:i], id[i+2:]
	}
	words := strings.Split(topic, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	topic = strings.Join(words, " ")

	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return topic, -1
	}
	return topic, n - 1
}
