package scripted

import "github.com/aretw0/screenflow/pkg/domain"

// Option configures a scripted screen.
type Option func(*base)

// FinishAfter makes the screen report finished on its n-th poll of IsFinished.
// Zero (the default) means the screen only finishes when told to.
func FinishAfter(polls int) Option {
	return func(b *base) {
		b.finishAfter = polls
	}
}

type base struct {
	name        string
	finished    bool
	finishAfter int
	polls       int
	resets      int
	disposals   int
}

func newBase(name string, opts []Option) base {
	b := base{name: name}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Name returns the name the screen was created with.
func (b *base) Name() string { return b.name }

// IsFinished reports completion, counting polls for FinishAfter.
func (b *base) IsFinished() bool {
	b.polls++
	if !b.finished && b.finishAfter > 0 && b.polls >= b.finishAfter {
		b.finished = true
	}
	return b.finished
}

// Reset clears completion and the poll counter.
func (b *base) Reset() {
	b.resets++
	b.finished = false
	b.polls = 0
}

// Dispose records the disposal.
func (b *base) Dispose() { b.disposals++ }

// Resets returns how many times Reset was called.
func (b *base) Resets() int { return b.resets }

// Disposals returns how many times Dispose was called.
func (b *base) Disposals() int { return b.disposals }

// Polls returns the number of IsFinished calls since creation or the last Reset.
func (b *base) Polls() int { return b.polls }

// Transition is a scripted transition screen.
type Transition struct {
	base
}

var _ domain.TransitionScreen = (*Transition)(nil)

// NewTransition creates an unfinished transition screen.
func NewTransition(name string, opts ...Option) *Transition {
	return &Transition{base: newBase(name, opts)}
}

// Finish marks the screen as completed.
func (t *Transition) Finish() { t.finished = true }

// Choice is a scripted choice screen.
type Choice struct {
	base
	choice int
	script []int
}

var _ domain.ChoiceScreen = (*Choice)(nil)

// NewChoice creates an unfinished choice screen.
func NewChoice(name string, opts ...Option) *Choice {
	return &Choice{base: newBase(name, opts), choice: domain.NoChoice}
}

// Script queues choices consumed one per completion when the screen finishes
// through FinishAfter.
func (c *Choice) Script(choices ...int) *Choice {
	c.script = append(c.script, choices...)
	return c
}

// Choose selects a successor index and marks the screen as completed.
func (c *Choice) Choose(choice int) {
	c.choice = choice
	c.finished = true
}

// IsFinished reports completion. A screen finishing through FinishAfter takes its
// choice from the script.
func (c *Choice) IsFinished() bool {
	wasFinished := c.finished
	finished := c.base.IsFinished()
	if finished && !wasFinished && c.choice == domain.NoChoice && len(c.script) > 0 {
		c.choice, c.script = c.script[0], c.script[1:]
	}
	return finished
}

// Choice returns the selected index, or domain.NoChoice while unfinished.
func (c *Choice) Choice() int {
	if !c.finished {
		return domain.NoChoice
	}
	return c.choice
}

// Reset clears completion and the selected index.
func (c *Choice) Reset() {
	c.base.Reset()
	c.choice = domain.NoChoice
}
