package scripted

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/screenflow/pkg/domain"
)

// ErrScriptExhausted stops a walk that reached a choice screen with no choices left.
var ErrScriptExhausted = errors.New("no scripted choice left")

// Driver is the part of a controller a walk needs.
type Driver interface {
	CurrentName() string
	CurrentScreen() (domain.Screen, error)
	Advance(ctx context.Context) (bool, error)
	Inspect() domain.Graph
}

// Step records one successful advance.
type Step struct {
	From   string
	To     string
	Choice int
	// Reset is true when the destination had been active before and was reset on entry.
	Reset bool
}

// Walk drives d by finishing each scripted screen in turn, feeding choice screens
// from choices, until maxSteps advances happened or the graph offers no successor.
// Reaching a screen without any outgoing edge ends the walk without error. A choice
// index that its screen does not route while other indices are wired is reported
// as domain.ErrNoSuccessor.
func Walk(ctx context.Context, d Driver, choices []int, maxSteps int) ([]Step, error) {
	var steps []Step
	seen := make(map[string]int)
	for len(steps) < maxSteps {
		if err := ctx.Err(); err != nil {
			return steps, err
		}

		from := d.CurrentName()
		screen, err := d.CurrentScreen()
		if err != nil {
			return steps, err
		}

		seen[from] = resets(screen)

		choice := domain.NoChoice
		switch s := screen.(type) {
		case *Choice:
			if !s.IsFinished() {
				if len(choices) == 0 {
					return steps, fmt.Errorf("walk at %q: %w", from, ErrScriptExhausted)
				}
				s.Choose(choices[0])
				choices = choices[1:]
			}
			choice = s.Choice()
		case *Transition:
			s.Finish()
		default:
			return steps, fmt.Errorf("walk at %q: screen %T is not scripted", from, screen)
		}

		moved, err := d.Advance(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrNoSuccessor) && !hasEdges(d, from) {
				return steps, nil
			}
			return steps, err
		}
		if !moved {
			return steps, fmt.Errorf("walk at %q: finished screen did not advance", from)
		}

		next, err := d.CurrentScreen()
		if err != nil {
			return steps, err
		}
		to := d.CurrentName()
		steps = append(steps, Step{
			From:   from,
			To:     to,
			Choice: choice,
			Reset:  resets(next) > seen[to],
		})
		seen[to] = resets(next)
	}
	return steps, nil
}

func resets(s domain.Screen) int {
	if rc, ok := s.(interface{ Resets() int }); ok {
		return rc.Resets()
	}
	return 0
}

func hasEdges(d Driver, name string) bool {
	node, ok := d.Inspect().Lookup(name)
	return ok && len(node.Edges) > 0
}
