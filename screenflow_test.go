package screenflow_test

import (
	"context"
	"testing"

	"github.com/aretw0/screenflow"
	"github.com/aretw0/screenflow/pkg/adapters/scripted"
	"github.com/aretw0/screenflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_StartingTransition(t *testing.T) {
	loading := scripted.NewTransition("loading")
	ctrl, err := screenflow.NewBuilder().
		RegisterTransition("loading", loading).
		WithStartingScreen("loading").
		Build()
	require.NoError(t, err)

	current, err := ctrl.CurrentScreen()
	require.NoError(t, err)
	assert.Same(t, loading, current)

	moved, err := ctrl.Advance(context.Background())
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, "loading", ctrl.CurrentName())
}

func TestScenario_TransitionAdvance(t *testing.T) {
	loading := scripted.NewTransition("loading")
	menu := scripted.NewChoice("menu")
	ctrl, err := screenflow.NewBuilder().
		RegisterTransition("loading", loading).
		RegisterChoice("menu", menu).
		SetSuccession("loading", "menu").
		WithStartingScreen("loading").
		Build()
	require.NoError(t, err)

	loading.Finish()
	moved, err := ctrl.Advance(context.Background())
	require.NoError(t, err)
	assert.True(t, moved)

	current, err := ctrl.CurrentScreen()
	require.NoError(t, err)
	assert.Same(t, menu, current)
	assert.Equal(t, 0, menu.Resets())
}

func TestScenario_ChoiceFanOut(t *testing.T) {
	menu := scripted.NewChoice("menu")
	ctrl, err := screenflow.NewBuilder().
		RegisterChoice("menu", menu).
		RegisterTransition("play", scripted.NewTransition("play")).
		RegisterTransition("options", scripted.NewTransition("options")).
		Choice("menu", "play", 0).
		Choice("menu", "options", 1).
		WithStartingScreen("menu").
		Build()
	require.NoError(t, err)

	menu.Choose(1)
	moved, err := ctrl.Advance(context.Background())
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "options", ctrl.CurrentName())
}

func TestScenario_RevisitResetsAndDisposeSweep(t *testing.T) {
	a := scripted.NewTransition("A")
	b := scripted.NewTransition("B")
	bystander := scripted.NewTransition("C")
	ctrl, err := screenflow.NewBuilder().
		RegisterTransition("A", a).
		RegisterTransition("B", b).
		RegisterTransition("C", bystander).
		SetSuccession("A", "B").
		SetSuccession("B", "A").
		WithStartingScreen("A").
		Build()
	require.NoError(t, err)
	ctx := context.Background()

	a.Finish()
	b.Finish()

	moved, err := ctrl.Advance(ctx)
	require.NoError(t, err)
	require.True(t, moved)
	assert.Equal(t, "B", ctrl.CurrentName())
	assert.Equal(t, 0, b.Resets())

	moved, err = ctrl.Advance(ctx)
	require.NoError(t, err)
	require.True(t, moved)
	assert.Equal(t, "A", ctrl.CurrentName())
	assert.Equal(t, 1, a.Resets())

	require.NoError(t, ctrl.Dispose(ctx))
	assert.Equal(t, 1, a.Disposals())
	assert.Equal(t, 1, b.Disposals())
	assert.Equal(t, 0, bystander.Disposals())
}

func TestScenario_LazyMaterialization(t *testing.T) {
	start := scripted.NewTransition("start")
	big := scripted.NewTransition("big")
	fired := 0

	ctrl, err := screenflow.NewBuilder().
		RegisterTransition("start", start).
		RegisterTransitionFactory("big", func() domain.TransitionScreen {
			fired++
			return big
		}).
		SetSuccession("start", "big").
		SetSuccession("big", "start").
		WithStartingScreen("start").
		Build()
	require.NoError(t, err)
	assert.Equal(t, 0, fired)
	ctx := context.Background()

	start.Finish()
	_, err = ctrl.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)

	big.Finish()
	_, err = ctrl.Advance(ctx)
	require.NoError(t, err)
	start.Finish()
	_, err = ctrl.Advance(ctx)
	require.NoError(t, err)

	assert.Equal(t, "big", ctrl.CurrentName())
	assert.Equal(t, 1, fired)
}

func TestScenario_FailedAdvancePreservesState(t *testing.T) {
	a := scripted.NewTransition("A")
	ctrl, err := screenflow.NewBuilder().
		RegisterTransition("A", a).
		SetSuccession("A", "ghost").
		WithStartingScreen("A").
		Build()
	require.NoError(t, err)

	a.Finish()
	moved, err := ctrl.Advance(context.Background())
	assert.False(t, moved)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	current, err := ctrl.CurrentScreen()
	require.NoError(t, err)
	assert.Same(t, a, current)
}

func TestNew_UnknownStartingScreen(t *testing.T) {
	b := screenflow.NewBuilder().RegisterTransition("A", scripted.NewTransition("A"))
	g := b.Inspect()
	require.Len(t, g.Nodes, 1)

	_, err := screenflow.NewBuilder().WithStartingScreen("nowhere").Build()
	assert.ErrorIs(t, err, domain.ErrUnknownStartingScreen)
}

func TestController_Options(t *testing.T) {
	idle := scripted.NewTransition("idle")
	var entered []string

	ctrl, err := screenflow.NewBuilder().
		RegisterTransition("A", scripted.NewTransition("A")).
		RegisterTransition("idle", idle).
		WithStartingScreen("A").
		Build(
			screenflow.WithID("ctrl-42"),
			screenflow.WithDisposeRegistered(),
			screenflow.WithLifecycleHooks(domain.LifecycleHooks{
				OnScreenEnter: func(ctx context.Context, e *domain.ScreenEvent) {
					entered = append(entered, e.ControllerID+":"+e.Screen)
				},
			}),
		)
	require.NoError(t, err)

	assert.Equal(t, "ctrl-42", ctrl.ID())
	assert.Equal(t, []string{"ctrl-42:A"}, entered)
	assert.Equal(t, []string{"A"}, ctrl.Used())
	assert.Equal(t, domain.KindTransition, ctrl.CurrentKind())

	require.NoError(t, ctrl.Dispose(context.Background()))
	assert.Equal(t, 1, idle.Disposals())
}
