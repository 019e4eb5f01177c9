// Package validator checks a screen graph for consistency.
package validator

import (
	"fmt"
	"sort"

	"github.com/aretw0/screenflow/pkg/domain"
)

// LinkError reports an edge whose target is registered nowhere, or a start that
// is not registered.
type LinkError struct {
	From   string // Edge origin, empty for the starting screen
	Target string
	Choice int
}

func (e *LinkError) Error() string {
	switch {
	case e.From == "":
		return fmt.Sprintf("starting screen %q is not registered", e.Target)
	case e.Choice != domain.NoChoice:
		return fmt.Sprintf("screen %q (choice %d) leads to unregistered screen %q", e.From, e.Choice, e.Target)
	default:
		return fmt.Sprintf("screen %q leads to unregistered screen %q", e.From, e.Target)
	}
}

// Unwrap lets callers match the error with errors.Is(err, domain.ErrUnknownScreen).
func (e *LinkError) Unwrap() error {
	return domain.ErrUnknownScreen
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// Report is the outcome of a graph validation.
type Report struct {
	// Broken lists dangling edges and an unregistered start. Any entry makes the graph invalid.
	Broken []error
	// DeadEnds lists screens without any outgoing edge. Advancing from them fails with
	// domain.ErrNoSuccessor, which a host may use on purpose to end a flow.
	DeadEnds []string
	// Unreachable lists screens that cannot be reached from the start.
	Unreachable []string
}

// Err returns the broken links as an *AggregateError, or nil for a sound graph.
func (r Report) Err() error {
	if len(r.Broken) == 0 {
		return nil
	}
	return &AggregateError{Errors: r.Broken}
}

// Validate checks every edge target and crawls the graph from its start.
func Validate(g domain.Graph) Report {
	var report Report

	known := make(map[string]domain.Node, len(g.Nodes))
	for _, n := range g.Nodes {
		known[n.Name] = n
	}

	for _, n := range g.Nodes {
		if len(n.Edges) == 0 {
			report.DeadEnds = append(report.DeadEnds, n.Name)
		}
		for _, e := range n.Edges {
			if _, ok := known[e.To]; !ok {
				report.Broken = append(report.Broken, &LinkError{From: e.From, Target: e.To, Choice: e.Choice})
			}
		}
	}

	if g.Start == "" {
		return report
	}
	if _, ok := known[g.Start]; !ok {
		report.Broken = append([]error{&LinkError{Target: g.Start, Choice: domain.NoChoice}}, report.Broken...)
		return report
	}

	visited := make(map[string]bool)
	queue := []string{g.Start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		node, ok := known[current]
		if !ok {
			continue
		}
		for _, e := range node.Edges {
			if !visited[e.To] {
				queue = append(queue, e.To)
			}
		}
	}

	for name := range known {
		if !visited[name] {
			report.Unreachable = append(report.Unreachable, name)
		}
	}
	sort.Strings(report.Unreachable)
	return report
}
