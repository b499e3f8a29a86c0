// Command ksweep runs a K-Means sweep over a CSV dataset and reports the
// WCSS/silhouette curves used for choosing a cluster count.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	arg "github.com/alexflint/go-arg"
	chart "github.com/wcharczuk/go-chart"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/clustergo"
	"github.com/hupe1980/clustergo/dataset"
	"github.com/hupe1980/clustergo/evaluate"
)

type args struct {
	Input    string   `arg:"positional,required" help:"CSV file with a header row"`
	Features []string `arg:"--feature,separate" help:"feature column to cluster on (repeatable, default: all)"`
	KMin     int      `arg:"--k-min" default:"1" help:"smallest cluster count"`
	KMax     int      `arg:"--k-max" default:"7" help:"largest cluster count"`
	Seed     int64    `arg:"--seed" default:"42" help:"PRNG seed for centroid initialization"`
	MaxIter  int      `arg:"--max-iter" default:"100" help:"iteration cap per run"`
	Out      string   `arg:"--out" help:"write the WCSS/silhouette curves to this PNG file"`
	Parallel bool     `arg:"--parallel" help:"run the sweep's K values in parallel"`
	Verbose  bool     `arg:"--verbose" help:"debug logging"`
}

func main() {
	var a args
	arg.MustParse(&a)

	level := slog.LevelInfo
	if a.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(a, logger); err != nil {
		log.Fatal(err)
	}
}

func run(a args, logger *slog.Logger) error {
	f, err := os.Open(a.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	table, err := dataset.ReadCSV(f, a.Features...)
	if err != nil {
		return fmt.Errorf("load %s: %w", a.Input, err)
	}

	logger.Info("dataset loaded",
		"file", a.Input,
		"rows", len(table.Rows),
		"dropped", table.Dropped,
		"features", table.Columns,
	)

	summaries, err := dataset.Describe(table)
	if err != nil {
		return err
	}
	for _, s := range summaries {
		logger.Info("column summary",
			"column", s.Column,
			"mean", s.Mean,
			"median", s.Median,
			"stddev", s.StdDev,
			"min", s.Min,
			"max", s.Max,
		)
	}

	opts := []clustergo.Option{
		clustergo.WithMaxIterations(a.MaxIter),
		clustergo.WithLogger(logger),
	}

	records, err := sweep(table.Matrix(), a, opts)
	if err != nil {
		return err
	}

	fmt.Printf("%4s  %14s  %12s\n", "k", "wcss", "silhouette")
	for _, rec := range records {
		if rec.SilhouetteOK {
			fmt.Printf("%4d  %14.4f  %12.4f\n", rec.K, rec.WCSS, rec.Silhouette)
		} else {
			fmt.Printf("%4d  %14.4f  %12s\n", rec.K, rec.WCSS, "-")
		}
	}

	if len(records) >= 3 {
		k, err := evaluate.Elbow(records)
		if err != nil {
			return err
		}
		fmt.Printf("\nelbow at k=%d\n", k)
	}

	if a.Out != "" {
		if err := renderChart(records, a.Out); err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		logger.Info("chart written", "file", a.Out)
	}

	return nil
}

// sweep runs the K range either sequentially through evaluate.Sweep or, with
// --parallel, as independent single-K sweeps fanned out via errgroup. Runs
// share nothing but the read-only matrix, so the fan-out is safe.
func sweep(data [][]float64, a args, opts []clustergo.Option) ([]evaluate.Record, error) {
	if !a.Parallel {
		return evaluate.Sweep(data, a.KMin, a.KMax, a.Seed, opts...)
	}

	if a.KMin < 1 || a.KMax < a.KMin {
		return nil, fmt.Errorf("%w: invalid k range [%d, %d]", clustergo.ErrInvalidParameter, a.KMin, a.KMax)
	}

	records := make([]evaluate.Record, a.KMax-a.KMin+1)

	var g errgroup.Group
	for k := a.KMin; k <= a.KMax; k++ {
		k := k
		g.Go(func() error {
			recs, err := evaluate.Sweep(data, k, k, a.Seed, opts...)
			if err != nil {
				return err
			}
			records[k-a.KMin] = recs[0]
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

func renderChart(records []evaluate.Record, path string) error {
	wcss := chart.ContinuousSeries{
		Name: "WCSS",
	}
	for _, rec := range records {
		wcss.XValues = append(wcss.XValues, float64(rec.K))
		wcss.YValues = append(wcss.YValues, rec.WCSS)
	}

	silhouette := chart.ContinuousSeries{
		Name:  "Silhouette",
		YAxis: chart.YAxisSecondary,
	}
	for _, rec := range records {
		if !rec.SilhouetteOK {
			continue
		}
		silhouette.XValues = append(silhouette.XValues, float64(rec.K))
		silhouette.YValues = append(silhouette.YValues, rec.Silhouette)
	}

	graph := chart.Chart{
		Title:      "K-Means model selection",
		TitleStyle: chart.StyleShow(),
		XAxis: chart.XAxis{
			Name:      "k",
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
		},
		YAxis: chart.YAxis{
			Name:      "WCSS",
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
		},
		YAxisSecondary: chart.YAxis{
			Name:      "silhouette",
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
		},
		Series: []chart.Series{wcss, silhouette},
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return graph.Render(chart.PNG, f)
}
