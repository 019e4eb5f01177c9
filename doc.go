/*
Package screenflow is a screen-graph controller for interactive applications.

It manages a directed graph of named screens, keeps exactly one of them active, and
advances to a successor when the active screen reports completion. Screens come in
two kinds: transition screens, followed by a single successor, and choice screens,
whose successor is picked by the integer they return from Choice.

# Concept

The host owns rendering, input and the frame loop. Once per frame it calls Advance,
then renders whatever CurrentScreen returns. The controller owns the rest: which
screen is active, lazy creation of screens from factories, resetting a screen when
it is entered again, and disposing every screen that was ever active on teardown.

# Key Features

  - Lazy screens: a factory fires the first time its screen is needed, never again.
  - Late binding: edges may name screens registered later; targets resolve on Advance.
  - All-or-nothing Advance: a failed transition leaves the active screen untouched.
  - Observability: lifecycle hooks, slog logging and Prometheus collectors.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/screenflow"
	)

	func main() {
		ctrl, err := screenflow.NewBuilder().
			RegisterTransition("loading", newLoadingScreen()).
			RegisterChoice("menu", newMenuScreen()).
			RegisterTransitionFactory("play", newPlayScreen).
			RegisterTransitionFactory("options", newOptionsScreen).
			SetSuccession("loading", "menu").
			Choice("menu", "play", 0).
			Choice("menu", "options", 1).
			SetSuccession("play", "menu").
			SetSuccession("options", "menu").
			WithStartingScreen("loading").
			Build()
		if err != nil {
			log.Fatal(err)
		}
		defer ctrl.Dispose(context.Background())

		ctx := context.Background()
		for frame := range frames() {
			if _, err := ctrl.Advance(ctx); err != nil {
				log.Fatal(err)
			}
			screen, _ := ctrl.CurrentScreen()
			render(screen, frame)
		}
	}
*/
package screenflow
