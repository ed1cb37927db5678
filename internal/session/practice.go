package session

import "github.com/abhisek/learnsense/internal/analysis"

// Practice walks through a response's practice problems one at a time.
type Practice struct {
	problems []analysis.PracticeProblem

	current  int
	selected int
	answered bool
	hint     bool
	correct  int
}

// NewPractice creates a walk over problems. Problems are assumed valid.
func NewPractice(problems []analysis.PracticeProblem) *Practice {
	return &Practice{problems: problems}
}

// Total is the number of problems.
func (p *Practice) Total() int { return len(p.problems) }

// Index is the zero-based position of the current problem.
func (p *Practice) Index() int { return p.current }

// Done reports whether every problem has been answered and passed.
func (p *Practice) Done() bool { return p.current >= len(p.problems) }

// Current returns the problem being shown, or false when done.
func (p *Practice) Current() (analysis.PracticeProblem, bool) {
	if p.Done() {
		return analysis.PracticeProblem{}, false
	}
	return p.problems[p.current], true
}

// Selected is the highlighted option.
func (p *Practice) Selected() int { return p.selected }

// Answered reports whether the current problem has been answered.
func (p *Practice) Answered() bool { return p.answered }

// HintShown reports whether the hint is visible for the current problem.
func (p *Practice) HintShown() bool { return p.hint }

// Score returns correct answers so far.
func (p *Practice) Score() int { return p.correct }

// Select highlights option i. Ignored once answered or out of range.
func (p *Practice) Select(i int) {
	if p.answered || i < 0 || i >= analysis.OptionCount {
		return
	}
	p.selected = i
}

// Move shifts the highlight by delta, wrapping.
func (p *Practice) Move(delta int) {
	if p.answered {
		return
	}
	n := analysis.OptionCount
	p.selected = ((p.selected+delta)%n + n) % n
}

// ShowHint reveals the hint before the problem is answered.
func (p *Practice) ShowHint() {
	if !p.answered && !p.Done() {
		p.hint = true
	}
}

// Answer locks in the highlighted option and reports whether it was right.
// A second call for the same problem changes nothing.
func (p *Practice) Answer() (correct bool, ok bool) {
	prob, exists := p.Current()
	if !exists || p.answered {
		return false, false
	}
	p.answered = true
	correct = p.selected == prob.CorrectOptionIndex
	if correct {
		p.correct++
	}
	return correct, true
}

// AnsweredCorrectly reports the outcome for the current answered problem.
func (p *Practice) AnsweredCorrectly() bool {
	prob, ok := p.Current()
	return ok && p.answered && p.selected == prob.CorrectOptionIndex
}

// Next advances past an answered problem.
func (p *Practice) Next() bool {
	if !p.answered || p.Done() {
		return false
	}
	p.current++
	p.selected = 0
	p.answered = false
	p.hint = false
	return true
}
