package registry_test

import (
	"testing"

	"github.com/aretw0/screenflow/pkg/adapters/scripted"
	"github.com/aretw0/screenflow/pkg/domain"
	"github.com/aretw0/screenflow/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionRegistry_Has(t *testing.T) {
	r := registry.NewTransitionRegistry()
	r.Add("loading", scripted.NewTransition("loading"))
	r.AddFactory("lazy", func() domain.TransitionScreen { return scripted.NewTransition("lazy") })

	assert.True(t, r.Has("loading"))
	assert.True(t, r.Has("lazy"))
	assert.False(t, r.Has("missing"))
	assert.False(t, r.Has(""))
}

func TestTransitionRegistry_GetMaterializesOnce(t *testing.T) {
	r := registry.NewTransitionRegistry()
	calls := 0
	r.AddFactory("big", func() domain.TransitionScreen {
		calls++
		return scripted.NewTransition("big")
	})

	assert.False(t, r.Materialized("big"))

	first, err := r.Get("big")
	require.NoError(t, err)
	second, err := r.Get("big")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.True(t, r.Materialized("big"))
	assert.Contains(t, r.Instances(), "big")
}

func TestTransitionRegistry_GetUnknown(t *testing.T) {
	r := registry.NewTransitionRegistry()

	_, err := r.Get("ghost")
	assert.ErrorIs(t, err, domain.ErrUnknownScreen)

	var screenErr *domain.ScreenError
	require.ErrorAs(t, err, &screenErr)
	assert.Equal(t, "ghost", screenErr.Name)
}

func TestTransitionRegistry_NilFactoryProduct(t *testing.T) {
	r := registry.NewTransitionRegistry()
	r.AddFactory("broken", func() domain.TransitionScreen { return nil })

	_, err := r.Get("broken")
	assert.ErrorIs(t, err, domain.ErrNilScreen)
	assert.True(t, r.Has("broken"))
	assert.False(t, r.Materialized("broken"))
}

func TestTransitionRegistry_LastWriteWins(t *testing.T) {
	r := registry.NewTransitionRegistry()
	first := scripted.NewTransition("first")
	second := scripted.NewTransition("second")

	r.Add("screen", first)
	r.Add("screen", second)
	got, err := r.Get("screen")
	require.NoError(t, err)
	assert.Same(t, second, got)

	// A factory replaces the instance and vice versa.
	third := scripted.NewTransition("third")
	r.AddFactory("screen", func() domain.TransitionScreen { return third })
	assert.False(t, r.Materialized("screen"))
	got, err = r.Get("screen")
	require.NoError(t, err)
	assert.Same(t, third, got)

	r.AddFactory("other", func() domain.TransitionScreen {
		t.Fatal("factory must not fire")
		return nil
	})
	r.Add("other", first)
	got, err = r.Get("other")
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestTransitionRegistry_Successors(t *testing.T) {
	r := registry.NewTransitionRegistry()
	r.Add("loading", scripted.NewTransition("loading"))

	_, err := r.SuccessorOf("loading")
	assert.ErrorIs(t, err, domain.ErrNoSuccessor)

	// The successor does not have to exist yet.
	require.NoError(t, r.SetSuccessor("loading", "menu"))
	next, err := r.SuccessorOf("loading")
	require.NoError(t, err)
	assert.Equal(t, "menu", next)

	err = r.SetSuccessor("ghost", "menu")
	assert.ErrorIs(t, err, domain.ErrUnknownScreen)

	assert.Equal(t, []domain.Edge{{From: "loading", To: "menu", Choice: domain.NoChoice}}, r.Edges())
}

func TestTransitionRegistry_Names(t *testing.T) {
	r := registry.NewTransitionRegistry()
	r.Add("b", scripted.NewTransition("b"))
	r.AddFactory("a", func() domain.TransitionScreen { return scripted.NewTransition("a") })
	r.Add("c", scripted.NewTransition("c"))

	assert.Equal(t, []string{"a", "b", "c"}, r.Names())
}

func TestChoiceRegistry_GetMaterializesOnce(t *testing.T) {
	r := registry.NewChoiceRegistry()
	calls := 0
	r.AddFactory("menu", func() domain.ChoiceScreen {
		calls++
		return scripted.NewChoice("menu")
	})

	first, err := r.Get("menu")
	require.NoError(t, err)
	second, err := r.Get("menu")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestChoiceRegistry_Choices(t *testing.T) {
	r := registry.NewChoiceRegistry()
	r.Add("menu", scripted.NewChoice("menu"))

	require.NoError(t, r.SetChoice("menu", 1, "options"))
	require.NoError(t, r.SetChoice("menu", 0, "play"))

	next, err := r.SuccessorOf("menu", 0)
	require.NoError(t, err)
	assert.Equal(t, "play", next)

	next, err = r.SuccessorOf("menu", 1)
	require.NoError(t, err)
	assert.Equal(t, "options", next)

	// Other choices of the same screen do not satisfy an unset pair.
	_, err = r.SuccessorOf("menu", 2)
	assert.ErrorIs(t, err, domain.ErrNoSuccessor)

	err = r.SetChoice("ghost", 0, "play")
	assert.ErrorIs(t, err, domain.ErrUnknownScreen)

	assert.Equal(t, []domain.Edge{
		{From: "menu", To: "play", Choice: 0},
		{From: "menu", To: "options", Choice: 1},
	}, r.Edges())
}

func TestChoiceRegistry_Has(t *testing.T) {
	r := registry.NewChoiceRegistry()
	r.AddFactory("menu", func() domain.ChoiceScreen { return scripted.NewChoice("menu") })

	assert.True(t, r.Has("menu"))
	assert.False(t, r.Has(""))
	assert.False(t, r.Has("play"))
}

func TestDescribe(t *testing.T) {
	tr := registry.NewTransitionRegistry()
	cr := registry.NewChoiceRegistry()
	tr.Add("loading", scripted.NewTransition("loading"))
	tr.AddFactory("play", func() domain.TransitionScreen { return scripted.NewTransition("play") })
	cr.Add("menu", scripted.NewChoice("menu"))
	require.NoError(t, tr.SetSuccessor("loading", "menu"))
	require.NoError(t, cr.SetChoice("menu", 0, "play"))

	g := registry.Describe(tr, cr, "loading")
	assert.Equal(t, "loading", g.Start)

	names := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"loading", "menu", "play"}, names)

	play, ok := g.Lookup("play")
	require.True(t, ok)
	assert.False(t, play.Materialized)
	assert.Len(t, g.Edges(), 2)
}
