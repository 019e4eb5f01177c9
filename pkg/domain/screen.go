package domain

import "fmt"

// NoChoice is returned by ChoiceScreen.Choice while the screen has not finished.
const NoChoice = -1

// Screen is the capability set the controller consumes from every screen.
// Rendering and input handling belong to the host and are not part of it.
type Screen interface {
	// IsFinished reports whether the screen has completed.
	// Once true it is expected to stay true until Reset is called.
	IsFinished() bool

	// Reset returns the screen to its initial, unfinished state.
	Reset()

	// Dispose releases the resources held by the screen. Called at most once.
	Dispose()
}

// TransitionScreen is a screen followed by exactly one successor.
type TransitionScreen interface {
	Screen
}

// ChoiceScreen is a screen that selects among several successors.
type ChoiceScreen interface {
	Screen

	// Choice returns the non-negative index of the selected successor once the
	// screen has finished, or NoChoice before that.
	Choice() int
}

// TransitionFactory lazily produces a transition screen. It fires at most once per name.
type TransitionFactory func() TransitionScreen

// ChoiceFactory lazily produces a choice screen. It fires at most once per name.
type ChoiceFactory func() ChoiceScreen

// Kind tags which registry a screen belongs to.
type Kind int

const (
	// KindUnknown is the zero value, used for names registered nowhere.
	KindUnknown Kind = iota
	// KindTransition marks a screen with a single successor.
	KindTransition
	// KindChoice marks a screen with successors keyed by choice index.
	KindChoice
)

func (k Kind) String() string {
	switch k {
	case KindTransition:
		return "transition"
	case KindChoice:
		return "choice"
	default:
		return "unknown"
	}
}

// ParseKind converts the textual form used in graph definitions back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "transition":
		return KindTransition, nil
	case "choice":
		return KindChoice, nil
	default:
		return KindUnknown, fmt.Errorf("unknown screen kind %q (expected transition or choice)", s)
	}
}

// MarshalText renders the kind in its textual form.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses the textual form produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
