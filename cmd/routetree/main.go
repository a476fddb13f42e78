// Command routetree reads a global-routing input file, reassembles every
// net's segment set into a validated junction tree, and writes the
// canonical routing output.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/routetree-dev/routetree/parse"
	"github.com/routetree-dev/routetree/topo"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		strict     bool
		sorted     bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "routetree",
		Short: "Rebuild routed nets into canonical junction trees",
		Long: `routetree reads a global-routing input file (grid, layers, cells, nets,
and routed segments), rebuilds each net's geometry into a spanning tree of
junctions, and emits the canonical via and edge lines.

It does not route: the segment sets must come from a router. routetree only
assembles, validates, and re-expresses them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			return run(inputPath, outputPath, strict, sorted, log)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file (default stdin)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&strict, "strict", false, "enforce structural-invariant checks during tree construction")
	cmd.Flags().BoolVar(&sorted, "sorted", true, "sort junctions by position for reproducible output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func run(inputPath, outputPath string, strict, sorted bool, log *slog.Logger) error {
	in := io.Reader(os.Stdin)
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	prob, err := parse.Parse(in, parse.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info("parsed problem",
		"grid", prob.Chip.Dim,
		"layers", len(prob.Chip.Layers),
		"cells", len(prob.Chip.Cells),
		"nets", len(prob.Nets))

	if err := prob.Chip.ApplyBlockages(); err != nil {
		return err
	}

	var opts []topo.Option
	if strict {
		opts = append(opts, topo.WithStrictChecks())
	}
	if sorted {
		opts = append(opts, topo.WithSortedJunctions())
	}

	nets := make([]*topo.Net, 0, len(prob.Nets))
	lines := 0
	for _, spec := range prob.Nets {
		net, err := topo.NewNet(spec.ID, spec.MinLayer, spec.Pins, spec.Segments,
			prob.Chip.PinPosition, opts...)
		if err != nil {
			return fmt.Errorf("net N%d: %w", spec.ID+1, err)
		}
		log.Debug("built net", "name", net.Name(), "junctions", net.Tree.Len())
		nets = append(nets, net)
		lines += net.Lines()
	}

	out := io.Writer(os.Stdout)
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return writeOutput(out, nets, lines)
}

// writeOutput emits the output file: no cell moves, then every net's via
// and edge lines under one total count.
func writeOutput(w io.Writer, nets []*topo.Net, lines int) error {
	if _, err := fmt.Fprintln(w, "NumMovedCellInst 0"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "NumRoutes %d\n", lines); err != nil {
		return err
	}
	for _, net := range nets {
		if _, err := net.WriteTo(w); err != nil {
			return err
		}
	}

	return nil
}
