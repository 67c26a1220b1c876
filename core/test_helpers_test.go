// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/core"
)

// Node ids of the four-node scenario A(0) B(1) C(2) D(3).
const (
	NodeA core.NodeID = iota
	NodeB
	NodeC
	NodeD
	NodeE
)

// buildScenario returns A–B=10 Good, B–C=10 Poor, A–C=5 Good, C–D=1 Good.
func buildScenario(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id, name := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(core.NodeID(id), name))
	}
	require.NoError(t, g.AddEdge(NodeA, NodeB, 10, core.Good))
	require.NoError(t, g.AddEdge(NodeB, NodeC, 10, core.Poor))
	require.NoError(t, g.AddEdge(NodeA, NodeC, 5, core.Good))
	require.NoError(t, g.AddEdge(NodeC, NodeD, 1, core.Good))

	return g
}

// capturingLogger returns a logger writing text records into the returned buffer.
func capturingLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
