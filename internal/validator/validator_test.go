package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/screenflow/pkg/domain"
)

func node(name string, kind domain.Kind, edges ...domain.Edge) domain.Node {
	return domain.Node{Name: name, Kind: kind, Edges: edges}
}

func next(from, to string) domain.Edge {
	return domain.Edge{From: from, To: to, Choice: domain.NoChoice}
}

func choice(from, to string, k int) domain.Edge {
	return domain.Edge{From: from, To: to, Choice: k}
}

func TestValidate(t *testing.T) {
	// Scenario A: valid graph, loading -> menu -> {play, loading}
	valid := domain.Graph{
		Start: "loading",
		Nodes: []domain.Node{
			node("loading", domain.KindTransition, next("loading", "menu")),
			node("menu", domain.KindChoice, choice("menu", "play", 0), choice("menu", "loading", 1)),
			node("play", domain.KindTransition),
		},
	}

	report := Validate(valid)
	if err := report.Err(); err != nil {
		t.Errorf("Scenario A (Valid) failed: %v", err)
	}
	if len(report.DeadEnds) != 1 || report.DeadEnds[0] != "play" {
		t.Errorf("Scenario A: expected dead end [play], got %v", report.DeadEnds)
	}
	if len(report.Unreachable) != 0 {
		t.Errorf("Scenario A: expected no unreachable screens, got %v", report.Unreachable)
	}

	// Scenario B: broken link, menu (choice 2) -> ghost
	broken := domain.Graph{
		Start: "menu",
		Nodes: []domain.Node{
			node("menu", domain.KindChoice, choice("menu", "ghost", 2)),
		},
	}

	err := Validate(broken).Err()
	if err == nil {
		t.Fatal("Scenario B (Broken Link) expected error, got nil")
	}
	if !errors.Is(err, domain.ErrUnknownScreen) {
		t.Errorf("Scenario B: expected ErrUnknownScreen, got %v", err)
	}
	if !strings.Contains(err.Error(), `"ghost"`) || !strings.Contains(err.Error(), "choice 2") {
		t.Errorf("Scenario B: unexpected message: %v", err)
	}

	// Scenario C: unreachable island
	island := domain.Graph{
		Start: "a",
		Nodes: []domain.Node{
			node("a", domain.KindTransition, next("a", "a")),
			node("b", domain.KindTransition, next("b", "c")),
			node("c", domain.KindTransition),
		},
	}

	report = Validate(island)
	if report.Err() != nil {
		t.Errorf("Scenario C: unexpected error %v", report.Err())
	}
	if strings.Join(report.Unreachable, ",") != "b,c" {
		t.Errorf("Scenario C: expected unreachable [b c], got %v", report.Unreachable)
	}
}

func TestValidate_UnknownStart(t *testing.T) {
	g := domain.Graph{
		Start: "nowhere",
		Nodes: []domain.Node{
			node("a", domain.KindTransition, next("a", "ghost")),
		},
	}

	err := Validate(g).Err()
	var aggr *AggregateError
	if !errors.As(err, &aggr) {
		t.Fatalf("expected *AggregateError, got %T", err)
	}
	if len(aggr.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(aggr.Errors), err)
	}
	if !strings.Contains(aggr.Errors[0].Error(), "starting screen") {
		t.Errorf("expected start error first, got %v", aggr.Errors[0])
	}
	if !strings.HasPrefix(err.Error(), "2 validation errors") {
		t.Errorf("unexpected aggregate message: %q", err.Error())
	}
}
