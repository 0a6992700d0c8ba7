package scoring

import (
	"errors"
	"fmt"
	"strings"

	"mindscale/internal/model"
)

var (
	ErrAnswerCount     = errors.New("answer count does not match question count")
	ErrDuplicateAnswer = errors.New("duplicate answer for question")
	ErrUnknownQuestion = errors.New("answer references unknown question")
	ErrOptionMismatch  = errors.New("selected option does not belong to question")
	ErrMissingWeights  = errors.New("instrument requires option weights; fetch with include_scores")
)

// answered is one resolved answer keyed by the question's order index.
type answered struct {
	question  *model.Question
	option    *model.Option
	optionIdx int
}

// Score runs the instrument spec against a complete answer set. Every answer
// must reference a question of the test and an option of that question;
// violations are hard errors, never defaulted.
func Score(ins *Instrument, test *model.Test, answers []model.UserAnswer) (*Result, error) {
	if len(answers) != len(test.Questions) {
		return nil, fmt.Errorf("%w: got %d answers for %d questions", ErrAnswerCount, len(answers), len(test.Questions))
	}

	byOrder := make(map[int]answered, len(answers))
	seen := make(map[string]bool, len(answers))
	for _, a := range answers {
		if seen[a.QuestionID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAnswer, a.QuestionID)
		}
		seen[a.QuestionID] = true
		q := test.QuestionByID(a.QuestionID)
		if q == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, a.QuestionID)
		}
		opt := q.OptionByID(a.SelectedOptionID)
		if opt == nil {
			return nil, fmt.Errorf("%w: option %s, question %s", ErrOptionMismatch, a.SelectedOptionID, a.QuestionID)
		}
		idx := 0
		for i := range q.Options {
			if q.Options[i].ID == opt.ID {
				idx = i
				break
			}
		}
		byOrder[q.OrderIndex] = answered{question: q, option: opt, optionIdx: idx}
	}

	if ins.NeedsWeights {
		if err := checkWeights(test); err != nil {
			return nil, err
		}
	}

	if len(ins.Pairs) > 0 {
		return scoreLetters(ins, byOrder)
	}

	res := &Result{InstrumentKey: ins.Key}
	scores := make(map[string]float64, len(ins.Dimensions))

	// Leaf dimensions first; composites read the leaves.
	for _, d := range ins.Dimensions {
		if d.Rule == RuleComposite {
			continue
		}
		scores[d.Code] = scoreLeaf(ins, &d, byOrder)
	}
	for _, d := range ins.Dimensions {
		if d.Rule != RuleComposite {
			continue
		}
		var sum float64
		for _, code := range d.ComposedOf {
			sum += scores[code]
		}
		scores[d.Code] = sum
	}

	for _, d := range ins.Dimensions {
		s := scores[d.Code]
		band, ok := classify(d.Bands, s)
		if !ok {
			res.Anomalies = append(res.Anomalies, Anomaly{Dimension: d.Code, Score: s})
		}
		res.Dimensions = append(res.Dimensions, DimensionResult{
			Code:      d.Code,
			Name:      d.Name,
			Score:     s,
			Label:     band.Label,
			Narrative: band.Narrative,
			Color:     band.Color,
			Primary:   d.Primary,
		})
		if d.Primary && res.Label == "" {
			res.Label = band.Label
			res.Narrative = band.Narrative
			res.TotalScore = int(s)
		}
	}

	if ins.Explain != nil {
		res.Details = buildDetails(ins, byOrder)
	}
	return res, nil
}

func scoreLeaf(ins *Instrument, d *Dimension, byOrder map[int]answered) float64 {
	var sum float64
	count := 0
	for order, ans := range byOrder {
		if !d.contains(order, ins.QuestionCount) {
			continue
		}
		count++
		switch d.Rule {
		case RulePositionalSum:
			n := len(ans.question.Options)
			if ins.isReverse(order) {
				sum += float64(ins.OptionBase + n - 1 - ans.optionIdx)
			} else {
				sum += float64(ins.OptionBase + ans.optionIdx)
			}
		case RuleWeightedSum, RuleWeightedMean:
			sum += float64(ans.option.Score)
		}
	}
	if d.Rule == RuleWeightedMean && count > 0 {
		return sum / float64(count)
	}
	return sum
}

func scoreLetters(ins *Instrument, byOrder map[int]answered) (*Result, error) {
	res := &Result{InstrumentKey: ins.Key}
	var code strings.Builder
	total := 0
	for _, p := range ins.Pairs {
		first, second := 0, 0
		for q := p.From; q <= p.To; q++ {
			ans, ok := byOrder[q]
			if !ok {
				return nil, fmt.Errorf("%w: missing answer at position %d", ErrAnswerCount, q)
			}
			switch ans.option.Score {
			case p.FirstWeight:
				first++
			case p.SecondWeight:
				second++
			default:
				return nil, fmt.Errorf("%w: unexpected weight %d at position %d", ErrMissingWeights, ans.option.Score, q)
			}
		}
		// Ties resolve to the second letter of the pair.
		letter := p.Second
		if first > second {
			letter = p.First
		}
		code.WriteByte(letter)
		total += ins.LetterScores[letter]
	}
	res.TypeCode = code.String()
	res.TotalScore = total
	if prof, ok := ins.Types[res.TypeCode]; ok {
		res.Label = prof.Name
		res.Narrative = prof.Narrative
	} else {
		res.Label = res.TypeCode
	}
	return res, nil
}

func buildDetails(ins *Instrument, byOrder map[int]answered) []AnswerDetail {
	details := make([]AnswerDetail, 0, len(byOrder))
	for order := 1; order <= ins.QuestionCount; order++ {
		ans, ok := byOrder[order]
		if !ok {
			continue
		}
		details = append(details, AnswerDetail{
			Question:    ans.question.Text,
			Answer:      ans.option.Text,
			Score:       ans.option.Score,
			Explanation: ins.Explain(order, ans.option.Score),
		})
	}
	return details
}

// checkWeights rejects a question set fetched without scores. A stripped
// test serializes every option weight as zero, which no weighted instrument
// legitimately uses across a whole question.
func checkWeights(test *model.Test) error {
	for i := range test.Questions {
		any := false
		for _, opt := range test.Questions[i].Options {
			if opt.Score != 0 {
				any = true
				break
			}
		}
		if !any {
			return fmt.Errorf("%w: question %s has no weighted options", ErrMissingWeights, test.Questions[i].ID)
		}
	}
	return nil
}
