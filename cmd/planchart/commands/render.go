package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"planchart/internal/config"
	"planchart/internal/logging"
	"planchart/internal/planning"
	"planchart/internal/workbook"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type rangeFlags struct {
	start string
	end   string
	weeks int
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.start, "start", "", "first day of the chart (YYYY-MM-DD); defaults to the document, then the current week")
	cmd.Flags().StringVar(&f.end, "end", "", "exclusive end of the chart (YYYY-MM-DD); defaults to the document, then --weeks after start")
	cmd.Flags().IntVar(&f.weeks, "weeks", 0, "chart length in weeks when no end is given (default PLANCHART_WEEKS)")
}

// options turns the flags into workbook options on top of the configuration.
func (f *rangeFlags) options(c *config.AppConfig) (workbook.Options, error) {
	opts := workbook.Options{
		Weeks:    c.Weeks,
		Location: c.Location,
		Palette:  c.Palette,
	}
	if f.weeks > 0 {
		opts.Weeks = f.weeks
	}

	var err error
	if f.start != "" {
		if opts.Start, err = planning.ParseDate(f.start); err != nil {
			return opts, fmt.Errorf("invalid --start: %w", err)
		}
	}
	if f.end != "" {
		if opts.End, err = planning.ParseDate(f.end); err != nil {
			return opts, fmt.Errorf("invalid --end: %w", err)
		}
	}
	return opts, nil
}

func newRenderCmd() *cobra.Command {
	var (
		rf     rangeFlags
		outDir string
		title  string
		open   bool
	)

	cmd := &cobra.Command{
		Use:   "render <planning-file>...",
		Short: "Render planning documents (.json, .yaml) into xlsx workbooks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := rf.options(cfg)
			if err != nil {
				return err
			}
			opts.Title = title

			if outDir == "" {
				outDir = cfg.OutputDir
			}

			paths, err := renderFiles(cmd.Context(), args, outDir, cfg.Workers, opts)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
				if open {
					if err := browser.OpenFile(p); err != nil {
						log.Warn().Err(err).Str("path", p).Msg("Failed to open workbook")
					}
				}
			}
			return nil
		},
	}

	rf.register(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default OUTPUT_DIR)")
	cmd.Flags().StringVar(&title, "title", "", "workbook title property")
	cmd.Flags().BoolVar(&open, "open", false, "open each workbook after rendering")
	return cmd
}

// renderFiles renders every planning file into outDir, at most workers at a
// time, and returns the workbook paths in input order.
func renderFiles(ctx context.Context, files []string, outDir string, workers int, opts workbook.Options) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	paths, err := outputPaths(outDir, files)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", outDir, err)
	}

	logger := logging.Component("render")
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, err := planning.Load(file)
			if err != nil {
				return err
			}

			started := time.Now()
			res, err := workbook.Save(doc, paths[i], opts)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			logger.Debug().
				Str("workbook", res.ID).
				Str("input", file).
				Str("output", paths[i]).
				Dur("took", time.Since(started)).
				Msg("Rendered")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// outputPaths maps each input to its workbook path. Inputs that would land on
// the same workbook are rejected.
func outputPaths(outDir string, files []string) ([]string, error) {
	paths := make([]string, len(files))
	seen := make(map[string]string, len(files))
	for i, file := range files {
		out := outputPath(outDir, file)
		if other, dup := seen[out]; dup {
			return nil, fmt.Errorf("%s and %s would both render to %s", other, file, out)
		}
		seen[out] = file
		paths[i] = out
	}
	return paths, nil
}

func outputPath(outDir, input string) string {
	base := filepath.Base(input)
	return filepath.Join(outDir, strings.TrimSuffix(base, filepath.Ext(base))+".xlsx")
}
