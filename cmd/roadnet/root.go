// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dataset"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/internal/config"
	"github.com/katalvlaran/roadnet/internal/render"
)

var errUnknownNode = errors.New("unknown municipality")

// app is the state shared by every subcommand, resolved once per run.
type app struct {
	out, errOut io.Writer

	configPath string
	datasetArg string
	logLevel   string
	asJSON     bool

	cfg       *config.Config
	logger    *slog.Logger
	penalties core.Penalties
	graph     *core.Graph
	render    *render.Renderer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "roadnet",
		Short: "Road network analysis: traversals, shortest routes and critical points",
		Long: `roadnet loads a municipal road network (the built-in Casanare sample or a
YAML dataset) and answers connectivity and shortest-route questions about it.
Road conditions (Good, Fair, Poor) can penalize distances so that routes
prefer better roads.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $"+config.EnvConfigPath+")")
	pf.StringVar(&a.datasetArg, "dataset", "", "YAML network file (default: built-in Casanare sample)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.asJSON, "json", false, "print JSON instead of tables")

	root.AddCommand(
		a.nodesCmd(),
		a.adjacencyCmd(),
		a.matrixCmd(),
		a.bfsCmd(),
		a.dfsCmd(),
		a.routeCmd(),
		a.routesCmd(),
		a.compareCmd(),
		a.connectedCmd(),
		a.criticalCmd(),
		a.hubCmd(),
		a.backboneCmd(),
		a.redundancyCmd(),
		a.demoCmd(),
		a.serveCmd(),
		a.generateCmd(),
	)

	return root
}

// setup loads configuration, builds the logger and, when needGraph is set,
// loads the network.
func (a *app) setup(needGraph bool) error {
	cfg, src, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.datasetArg != "" {
		cfg.Dataset = a.datasetArg
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(a.errOut, cfg.Log.Format, level)
	if src != "" {
		a.logger.Debug("config loaded", slog.String("path", src))
	}
	if a.penalties, err = cfg.PenaltyTable(); err != nil {
		return err
	}
	a.render = render.New(a.out, a.asJSON)

	if !needGraph {
		return nil
	}
	if cfg.Dataset == "" {
		a.graph, err = dataset.Casanare(core.WithLogger(a.logger))
	} else {
		a.graph, err = dataset.LoadFile(cfg.Dataset, core.WithLogger(a.logger))
	}
	if err != nil {
		return err
	}
	a.logger.Debug("network loaded",
		slog.String("dataset", datasetLabel(cfg.Dataset)),
		slog.Int("nodes", a.graph.NodeCount()),
		slog.Int("roads", a.graph.EdgeCount()),
	)

	return nil
}

func datasetLabel(path string) string {
	if path == "" {
		return "casanare (built-in)"
	}

	return path
}

func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// withGraph adapts a run function into a cobra RunE that loads the network first.
func (a *app) withGraph(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.setup(true); err != nil {
			return err
		}

		return run(cmd, args)
	}
}

// node resolves a municipality given as an id or a case-insensitive name.
func (a *app) node(arg string) (core.NodeID, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		id := core.NodeID(n)
		if !a.graph.HasNode(id) {
			return core.NoNode, fmt.Errorf("%w: id %d", errUnknownNode, n)
		}
		return id, nil
	}
	for _, n := range a.graph.Nodes() {
		if strings.EqualFold(n.Name, arg) {
			return n.ID, nil
		}
	}

	return core.NoNode, fmt.Errorf("%w: %q", errUnknownNode, arg)
}

// weightOpts selects raw kilometres or the configured penalty table.
func (a *app) weightOpts(penalized bool) []dijkstra.Option {
	if !penalized {
		return nil
	}

	return []dijkstra.Option{dijkstra.WithPenalties(a.penalties)}
}
