package screenflow_test

import (
	"context"
	"fmt"

	"github.com/aretw0/screenflow"
	"github.com/aretw0/screenflow/pkg/adapters/scripted"
	"github.com/aretw0/screenflow/pkg/domain"
)

// Example demonstrates a loading screen leading to a menu with two options.
func Example() {
	loading := scripted.NewTransition("loading")
	menu := scripted.NewChoice("menu")

	ctrl, err := screenflow.NewBuilder().
		RegisterTransition("loading", loading).
		RegisterChoice("menu", menu).
		RegisterTransitionFactory("play", func() domain.TransitionScreen {
			fmt.Println("creating play screen")
			return scripted.NewTransition("play")
		}).
		RegisterTransition("options", scripted.NewTransition("options")).
		SetSuccession("loading", "menu").
		Choice("menu", "play", 0).
		Choice("menu", "options", 1).
		WithStartingScreen("loading").
		Build()
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	ctx := context.Background()

	// Frame 1: still loading.
	moved, _ := ctrl.Advance(ctx)
	fmt.Println(ctrl.CurrentName(), moved)

	// Frame 2: loading done.
	loading.Finish()
	moved, _ = ctrl.Advance(ctx)
	fmt.Println(ctrl.CurrentName(), moved)

	// Frame 3: the player picks "play".
	menu.Choose(0)
	moved, _ = ctrl.Advance(ctx)
	fmt.Println(ctrl.CurrentName(), moved)

	_ = ctrl.Dispose(ctx)

	// Output:
	// loading false
	// menu true
	// creating play screen
	// play true
}

// Example_revisit shows that a screen entered again is reset first.
func Example_revisit() {
	a := scripted.NewTransition("A")
	b := scripted.NewTransition("B")

	ctrl, _ := screenflow.NewBuilder().
		RegisterTransition("A", a).
		RegisterTransition("B", b).
		SetSuccession("A", "B").
		SetSuccession("B", "A").
		WithStartingScreen("A").
		Build()

	ctx := context.Background()
	a.Finish()
	b.Finish()
	_, _ = ctrl.Advance(ctx)
	_, _ = ctrl.Advance(ctx)

	fmt.Println("active:", ctrl.CurrentName())
	fmt.Println("A resets:", a.Resets(), "B resets:", b.Resets())

	_ = ctrl.Dispose(ctx)
	fmt.Println("A disposals:", a.Disposals(), "B disposals:", b.Disposals())

	// Output:
	// active: A
	// A resets: 1 B resets: 0
	// A disposals: 1 B disposals: 1
}
