package scoring

type indexEntry struct {
	questionnaire Questionnaire
	rng           IndexRange
}

// indexMap lays out the 201-item answer vector. Order matters: it is the
// order questionnaires are scored and the order the answer vector builder
// concatenates topics.
var indexMap = []indexEntry{
	{Depression, IndexRange{Start: 0, End: 14, ItemCount: 15}},
	{ADHD, IndexRange{Start: 15, End: 32, ItemCount: 18}},
	{AlcoholUse, IndexRange{Start: 33, End: 42, ItemCount: 10}},
	{BingeEating, IndexRange{Start: 43, End: 58, ItemCount: 16}},
	{DrugIssues, IndexRange{Start: 59, End: 68, ItemCount: 10}},
	{Anxiety, IndexRange{Start: 69, End: 75, ItemCount: 7}},
	{Insomnia, IndexRange{Start: 76, End: 82, ItemCount: 7}},
	{Burnout, IndexRange{Start: 83, End: 104, ItemCount: 22}},
	{Bipolar, IndexRange{Start: 105, End: 119, ItemCount: 15}},
	{OCD, IndexRange{Start: 120, End: 137, ItemCount: 18}},
	{PTSD, IndexRange{Start: 138, End: 157, ItemCount: 20}},
	{Panic, IndexRange{Start: 158, End: 164, ItemCount: 7}},
	{DepressionSecondary, IndexRange{Start: 165, End: 173, ItemCount: 9}},
	{Stress, IndexRange{Start: 174, End: 183, ItemCount: 10}},
	{SocialAnxiety, IndexRange{Start: 184, End: 200, ItemCount: 17}},
}

// IndexRangeFor returns where q lives in the answer vector. Phobia has no
// range: it is scored only when answered on its own.
func IndexRangeFor(q Questionnaire) (IndexRange, bool) {
	for _, e := range indexMap {
		if e.questionnaire == q {
			return e.rng, true
		}
	}
	return IndexRange{}, false
}

// Indexed returns the questionnaires present in the answer vector, in layout order.
func Indexed() []Questionnaire {
	out := make([]Questionnaire, len(indexMap))
	for i, e := range indexMap {
		out[i] = e.questionnaire
	}
	return out
}
