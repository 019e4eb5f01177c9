package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/screenflow/internal/validator"
	"github.com/aretw0/screenflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeMarkdown(t *testing.T) {
	g := domain.Graph{Start: "menu", Nodes: []domain.Node{
		{Name: "menu", Kind: domain.KindChoice, Materialized: true, Edges: []domain.Edge{
			{From: "menu", To: "play", Choice: 0},
			{From: "menu", To: "ghost", Choice: 1},
		}},
		{Name: "orphan", Kind: domain.KindTransition},
		{Name: "play", Kind: domain.KindTransition, Materialized: true},
	}}

	md := DescribeMarkdown(g, validator.Validate(g))

	assert.Contains(t, md, "Starting screen: `menu`")
	assert.Contains(t, md, "| menu | choice | yes | 0 → play, 1 → ghost |")
	assert.Contains(t, md, "| orphan | transition | lazy | - |")
	assert.Contains(t, md, "**broken**")
	assert.Contains(t, md, "dead end: `play`")
	assert.Contains(t, md, "unreachable: `orphan`")
}

func TestDescribeMarkdown_Clean(t *testing.T) {
	g := domain.Graph{Start: "a", Nodes: []domain.Node{
		{Name: "a", Kind: domain.KindTransition, Materialized: true, Edges: []domain.Edge{
			{From: "a", To: "a", Choice: domain.NoChoice},
		}},
	}}
	assert.Contains(t, DescribeMarkdown(g, validator.Validate(g)), "No problems found.")
}

func TestNewRenderer_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))

	render := NewRenderer(&buf)
	out, err := render("# Title")
	require.NoError(t, err)
	assert.Equal(t, "# Title", out)
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|___/")
	assert.NotEmpty(t, Status(&buf, true, "ok"))
}
