package scoring

import "fmt"

// Rule selects how a dimension aggregates answers into a score.
type Rule int

const (
	// RulePositionalSum adds the selected option's position within its
	// question (plus the instrument's OptionBase). Questions in the
	// instrument's Reverse set contribute len(options) - position instead.
	RulePositionalSum Rule = iota
	// RuleWeightedSum adds the explicit score weight carried by the
	// selected option.
	RuleWeightedSum
	// RuleWeightedMean is RuleWeightedSum divided by the number of
	// questions in the dimension.
	RuleWeightedMean
	// RuleComposite sums the scores of the dimensions named in ComposedOf.
	// The constituents' question sets must be disjoint.
	RuleComposite
)

// Band is one contiguous score range with its categorical result.
// Upper nil means the band is open above. When UpperExclusive is set the
// match test is lower <= s < upper instead of lower <= s <= upper; the
// convention differs between instruments and must be preserved per table.
type Band struct {
	Lower          float64
	Upper          *float64
	UpperExclusive bool
	Label          string
	Narrative      string
	Color          string
}

// Dimension is a named sub-score of an instrument: which question positions
// feed it, how they aggregate, and the band table that classifies the score.
// Primary dimensions are surfaced as headline results.
type Dimension struct {
	Code       string
	Name       string
	Questions  []int // 1-based order indices; nil means every question
	Rule       Rule
	ComposedOf []string // dimension codes, RuleComposite only
	Bands      []Band
	Primary    bool
}

// LetterPair is one MBTI-style preference axis: questions From..To decide
// between First and Second by comparing tallies of the two option weights.
// A tie resolves to Second, matching the original instrument's comparison
// direction.
type LetterPair struct {
	First        byte
	Second       byte
	FirstWeight  int
	SecondWeight int
	From, To     int // inclusive 1-based question range
}

// TypeProfile is the display profile for one categorical type code.
type TypeProfile struct {
	Name      string
	Narrative string
}

// Instrument is the complete declarative scoring specification for one
// questionnaire. The engine consumes these tables; no instrument has
// hand-written scoring code.
type Instrument struct {
	Key           string
	Title         string
	QuestionCount int
	// OptionBase is the contribution of the first option under
	// RulePositionalSum (0 or 1 depending on the instrument's convention).
	OptionBase int
	// Reverse lists 1-based question positions whose positional
	// contribution is inverted.
	Reverse []int
	// NeedsWeights marks instruments whose rules read option score
	// weights, requiring the question set fetched with include_scores.
	NeedsWeights bool
	Dimensions   []Dimension

	// Letter-tally instruments (MBTI) only.
	Pairs        []LetterPair
	Types        map[string]TypeProfile
	LetterScores map[byte]int // type letter -> encoded score component

	// Explain, when set, yields a per-answer explanation keyed by the
	// question's order index and the selected option's weight (ljsi).
	Explain func(order, score int) string
}

// Validate checks structural soundness of the spec itself: composite
// dimensions must reference existing, question-disjoint constituents.
func (ins *Instrument) Validate() error {
	byCode := make(map[string]*Dimension, len(ins.Dimensions))
	for i := range ins.Dimensions {
		d := &ins.Dimensions[i]
		if _, dup := byCode[d.Code]; dup {
			return fmt.Errorf("instrument %s: duplicate dimension %q", ins.Key, d.Code)
		}
		byCode[d.Code] = d
	}
	for _, d := range ins.Dimensions {
		if d.Rule != RuleComposite {
			continue
		}
		seen := make(map[int]string)
		for _, code := range d.ComposedOf {
			part, ok := byCode[code]
			if !ok {
				return fmt.Errorf("instrument %s: composite %q references unknown dimension %q", ins.Key, d.Code, code)
			}
			if part.Rule == RuleComposite {
				return fmt.Errorf("instrument %s: composite %q nests composite %q", ins.Key, d.Code, code)
			}
			for _, q := range part.questionSet(ins.QuestionCount) {
				if prev, clash := seen[q]; clash {
					return fmt.Errorf("instrument %s: composite %q constituents %q and %q overlap at question %d", ins.Key, d.Code, prev, code, q)
				}
				seen[q] = code
			}
		}
	}
	return nil
}

// questionSet expands nil to the full 1..n range.
func (d *Dimension) questionSet(total int) []int {
	if d.Questions != nil {
		return d.Questions
	}
	all := make([]int, total)
	for i := range all {
		all[i] = i + 1
	}
	return all
}

func (d *Dimension) contains(orderIndex int, total int) bool {
	if d.Questions == nil {
		return orderIndex >= 1 && orderIndex <= total
	}
	for _, q := range d.Questions {
		if q == orderIndex {
			return true
		}
	}
	return false
}

func (ins *Instrument) isReverse(orderIndex int) bool {
	for _, q := range ins.Reverse {
		if q == orderIndex {
			return true
		}
	}
	return false
}

func upper(v float64) *float64 { return &v }
