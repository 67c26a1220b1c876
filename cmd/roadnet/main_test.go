// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/dataset"
	"github.com/katalvlaran/roadnet/flow"
	"github.com/katalvlaran/roadnet/internal/config"
	"github.com/katalvlaran/roadnet/internal/view"
	"github.com/katalvlaran/roadnet/prim_kruskal"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestNodesCommand(t *testing.T) {
	out, _, err := run(t, "nodes")
	require.NoError(t, err)
	assert.Contains(t, out, "Municipalities (10)")
	assert.Contains(t, out, "Paz de Ariporo")
}

func TestRouteByNameAndID(t *testing.T) {
	out, _, err := run(t, "route", "yopal", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Route Yopal -> Monterrey (raw km)")
	assert.Contains(t, out, "Cost: 118.00")

	out, _, err = run(t, "route", "Yopal", "Monterrey", "--penalized")
	require.NoError(t, err)
	assert.Contains(t, out, "Cost: 133.00")

	_, _, err = run(t, "route", "Yopal", "Bogota")
	assert.ErrorIs(t, err, errUnknownNode)
	_, _, err = run(t, "bfs", "42")
	assert.ErrorIs(t, err, errUnknownNode)
}

func TestJSONOutput(t *testing.T) {
	out, _, err := run(t, "--json", "compare", "0", "6")
	require.NoError(t, err)

	var cmp view.Comparison
	require.NoError(t, json.Unmarshal([]byte(out), &cmp))
	assert.Equal(t, "Monterrey", cmp.To.Name)
	assert.InDelta(t, 15.0, cmp.DetourKM, 1e-9)
}

func TestConfigPenaltiesApply(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "roadnet.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("penalties: {Good: 1, Fair: 1, Poor: 1}\n"), 0o600))

	out, _, err := run(t, "--config", cfgPath, "--json", "route", "0", "6", "--penalized")
	require.NoError(t, err)
	var rt view.Route
	require.NoError(t, json.Unmarshal([]byte(out), &rt))
	assert.Equal(t, 118.0, rt.Cost, "unit multipliers make penalized equal raw")
}

func TestGenerateFeedsDataset(t *testing.T) {
	out, _, err := run(t, "generate", "--shape", "path", "--n", "4", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "name: N3")

	path := filepath.Join(t.TempDir(), "path.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))

	crit, _, err := run(t, "--dataset", path, "critical")
	require.NoError(t, err)
	assert.Contains(t, crit, "N1 (1)")
	assert.Contains(t, crit, "N2 -- N3")

	_, _, err = run(t, "generate", "--shape", "hexagon")
	assert.Error(t, err)
	_, _, err = run(t, "generate", "--km-min", "50", "--km-max", "10")
	assert.Error(t, err)
}

func TestDemo(t *testing.T) {
	out, _, err := run(t, "demo")
	require.NoError(t, err)
	for _, want := range []string{
		"Part A", "Adjacency matrix", "BFS from Yopal", "DFS from Yopal",
		"Connected: yes", "Shortest routes from Yopal (penalized)",
		"Comparison: Hato Corozal -> Villanueva", "Aguazul -- Tauramena",
		"Maintenance backbone (kruskal, penalized)", "Redundancy: Yopal -> Orocue",
	} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, len(dataset.DemoRoutes), strings.Count(out, "Comparison:"))
	assert.Equal(t, len(dataset.DemoRoutes), strings.Count(out, "Redundancy:"))
}

func TestLogLevelFlag(t *testing.T) {
	_, logs, err := run(t, "--log-level", "debug", "connected")
	require.NoError(t, err)
	assert.Contains(t, logs, "network loaded")

	_, _, err = run(t, "--log-level", "chatty", "connected")
	assert.Error(t, err)
}

func TestBackboneCommand(t *testing.T) {
	out, _, err := run(t, "backbone", "--method", "prim", "--root", "Trinidad")
	require.NoError(t, err)
	assert.Contains(t, out, "Maintenance backbone (prim, raw km)")
	assert.Contains(t, out, "Cost: 428.00")

	_, _, err = run(t, "backbone", "--method", "boruvka")
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestRedundancyCommand(t *testing.T) {
	out, logs, err := run(t, "--log-level", "debug", "redundancy", "Yopal", "Orocue", "--method", "dinic")
	require.NoError(t, err)
	assert.Contains(t, out, "Redundancy: Yopal -> Orocue (dinic)")
	assert.Contains(t, out, "Independent routes: 2")
	assert.Contains(t, out, "Paz de Ariporo")
	assert.Contains(t, logs, "augmenting path")

	_, _, err = run(t, "redundancy", "Yopal", "Yopal")
	assert.ErrorIs(t, err, flow.ErrSameEndpoints)
}
