// Command sociograph ranks the entities of a socio-technical network by
// structural criticality: it builds a graph from a built-in model or a YAML
// model file, computes normalised betweenness centrality and renders the
// ranking.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/dd0wney/sociograph/pkg/centrality"
	"github.com/dd0wney/sociograph/pkg/dataset"
	"github.com/dd0wney/sociograph/pkg/graph"
	"github.com/dd0wney/sociograph/pkg/logging"
	"github.com/dd0wney/sociograph/pkg/metrics"
	"github.com/dd0wney/sociograph/pkg/models"
	"github.com/dd0wney/sociograph/pkg/report"
)

func main() {
	modelName := flag.String("model", "steves-utility", "Built-in model: steves-utility or steves-utility-no-steve")
	file := flag.String("file", "", "YAML model file (overrides -model)")
	workers := flag.Int("workers", 0, "Worker count (0 = one per CPU)")
	topN := flag.Int("top", 15, "Rows to show in the ranking table (0 = all)")
	jsonOut := flag.String("json", "", "Write the full summary to a JSON file")
	emitGo := flag.Bool("emit-go", false, "Emit the result as a Go map literal for cross-implementation tests")
	removal := flag.Bool("removal", false, "Compare against the same model with its top invisible node removed (built-in models only)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(*logLevel))
	runID := uuid.New().String()
	log := logger.With(logging.RunID(runID), logging.Component("cli"))

	g, name, err := loadModel(*modelName, *file)
	if err != nil {
		log.Error("failed to build model", logging.Error(err))
		os.Exit(1)
	}
	log.Info("model built",
		logging.Model(name),
		logging.Int("nodes", g.NodeCount()),
		logging.Int("edges", g.EdgeCount()))

	opts := centrality.Options{
		Workers: *workers,
		Logger:  log,
		Metrics: metrics.Default(),
	}

	timer := logging.StartTimer(log, "betweenness centrality computed", logging.Model(name))
	result, err := centrality.Compute(context.Background(), g, opts)
	if err != nil {
		timer.EndError(err)
		os.Exit(1)
	}
	timer.End()

	summary := report.Summarize(g, result, name, runID)
	fmt.Println(summary.RenderTable(*topN))

	if *emitGo {
		fmt.Println(report.GoLiteral(g, result))
	}

	if *jsonOut != "" {
		if err := report.ExportJSON(summary, *jsonOut); err != nil {
			log.Error("failed to export summary", logging.Error(err))
			os.Exit(1)
		}
		log.Info("summary exported", logging.String("path", *jsonOut))
	}

	if *removal {
		if err := runRemoval(log, summary, opts, runID); err != nil {
			log.Error("removal analysis failed", logging.Error(err))
			os.Exit(1)
		}
	}
}

// loadModel resolves the graph to analyse: a YAML file if given, otherwise a
// built-in model.
func loadModel(modelName, file string) (*graph.Graph, string, error) {
	if file != "" {
		model, err := dataset.Load(file)
		if err != nil {
			return nil, "", err
		}
		g, err := model.Build()
		if err != nil {
			return nil, "", err
		}
		return g, model.Name, nil
	}

	switch modelName {
	case "steves-utility":
		g, err := models.StevesUtility()
		return g, "Steve's Utility", err
	case "steves-utility-no-steve":
		g, err := models.StevesUtilityWithoutSteve()
		return g, "Steve's Utility (without Steve)", err
	default:
		return nil, "", fmt.Errorf("unknown model %q", modelName)
	}
}

// runRemoval recomputes the built-in model without Steve and prints where
// the criticality moved.
func runRemoval(log logging.Logger, before report.Summary, opts centrality.Options, runID string) error {
	g, err := models.StevesUtilityWithoutSteve()
	if err != nil {
		return err
	}

	result, err := centrality.Compute(context.Background(), g, opts)
	if err != nil {
		return err
	}

	after := report.Summarize(g, result, "Steve's Utility (without Steve)", runID)
	changes := report.CompareRemoval(before, after)

	fmt.Println("REMOVAL ANALYSIS: what happens when the top invisible node leaves?")
	fmt.Println()
	fmt.Printf("%-28s %10s %10s %10s\n", "Node", "Before", "After", "Change")
	fmt.Println("-------------------------------------------------------------")
	shown := 0
	for _, c := range changes {
		if shown >= 10 {
			break
		}
		sign := ""
		if c.Delta > 0 {
			sign = "+"
		}
		fmt.Printf("%-28s %10.4f %10.4f %s%9.4f\n", c.ID, c.Before, c.After, sign, c.Delta)
		shown++
	}
	log.Info("removal analysis complete", logging.Count(len(changes)))
	return nil
}
