package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/cwbudde/vocalblend/eval"
	"github.com/cwbudde/vocalblend/internal/trackio"
)

type runOptions struct {
	tracksFolder string
	models       []string
	threads      int
}

func run(ctx context.Context, opts runOptions) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	tracks, err := trackio.Discover(opts.tracksFolder)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		return fmt.Errorf("no track folders found in %s", opts.tracksFolder)
	}

	cfg := eval.Config{
		Models:  [2]string{opts.models[0], opts.models[1]},
		Workers: opts.threads,
	}
	search, err := eval.NewSearch(cfg, trackio.New(opts.tracksFolder))
	if err != nil {
		return err
	}

	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(len(tracks)),
		mpb.PrependDecorators(
			decor.Name("Processing tracks: "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
		),
	)

	res, err := search.Run(ctx, tracks, func(string) { bar.Increment() })
	if err != nil {
		bar.Abort(true)
		p.Wait()
		return err
	}
	p.Wait()

	for _, f := range res.Failures {
		logger.Warn("track skipped", "track", f.Track, "error", f.Err)
	}

	fmt.Println(renderPairTable(res))
	fmt.Printf("Best AVG SDR: %.2f with weights %s / %s %s\n",
		res.Best.MeanSDR, opts.models[0], opts.models[1], res.Best.Pair)
	return nil
}

func renderPairTable(res *eval.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"W1", "W2", "Mean SDR", "Tracks"})
	for _, pm := range res.Pairs {
		tw.AppendRow(table.Row{
			fmt.Sprintf("%g", pm.Pair.W1),
			fmt.Sprintf("%g", pm.Pair.W2),
			fmt.Sprintf("%.4f", pm.MeanSDR),
			pm.Tracks,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	return tw.Render()
}
