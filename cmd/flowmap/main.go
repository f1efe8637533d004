package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/probekit/jvm-flow/bytecode"
	"github.com/probekit/jvm-flow/engine"
	"github.com/probekit/jvm-flow/flow"
	"github.com/probekit/jvm-flow/jasm"
)

var version = "0.1.0"

var (
	configPath  string
	workers     int
	noColor     bool
	verbose     bool
	interactive bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "flowmap: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flowmap <file.jasm>...",
		Short: "flowmap analyzes bytecode listings for control-flow label properties",
		Long: `flowmap assembles bytecode listings, computes per-label control
flow properties (jump target, join point, fall-through reachability) and
plans coverage probe insertion points.`,
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if workers > 0 {
				cfg.Workers = workers
			}

			if verbose {
				log, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer log.Sync()
				engine.SetLogger(log)
			}

			if interactive {
				if !term.IsTerminal(int(os.Stdout.Fd())) {
					return fmt.Errorf("interactive mode needs a terminal")
				}
				return runInteractive(args, cfg)
			}

			return analyzeFiles(args, cfg, out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Number of analysis goroutines (overrides config)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Interactive mode with TUI")

	return rootCmd
}

func analyzeFiles(files []string, cfg Config, out, errOut io.Writer) error {
	bodies, err := assembleFiles(files)
	if err != nil {
		return err
	}

	results := engine.AnalyzeAll(bodies, cfg.EngineOptions(), cfg.Workers)

	failed := 0
	for i, res := range results {
		if res.Err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", files[i], res.Err)
			failed++
			continue
		}
		printResult(out, files[i], bodies[i], res)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

func assembleFiles(files []string) ([]*bytecode.MethodBody, error) {
	bodies := make([]*bytecode.MethodBody, len(files))
	for i, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		body, err := jasm.Assemble(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		if body.Name == "" {
			body.Name = strings.TrimSuffix(filepath.Base(file), ".jasm")
		}
		bodies[i] = body
	}
	return bodies, nil
}

func printResult(out io.Writer, file string, body *bytecode.MethodBody, res engine.Result) {
	fmt.Fprintf(out, "%s %s (%s)\n", styleTitle("method"), res.Method, file)

	fmt.Fprintf(out, "  labels:\n")
	for _, insn := range body.Instructions {
		l, ok := insn.Label()
		if !ok {
			continue
		}
		info := res.Flow.Get(l)
		flags := labelFlags(info)
		if flags == "" {
			continue
		}
		fmt.Fprintf(out, "    %-12s %s\n", l.String(), styleFlags(flags))
	}

	fmt.Fprintf(out, "  probes: %d\n", len(res.Probes))
	for _, p := range res.Probes {
		where := ""
		if p.Label != nil {
			where = " -> " + p.Label.String()
		}
		line := ""
		if p.Line > 0 {
			line = fmt.Sprintf(" line %d", p.Line)
		}
		fmt.Fprintf(out, "    #%d %s at insn %d%s%s\n", p.ID, p.Kind, p.InsnIndex, where, line)
	}
}

func labelFlags(info *flow.Info) string {
	var flags []string
	if info.MultiTarget() {
		flags = append(flags, "multitarget")
	} else if info.Target() {
		flags = append(flags, "target")
	}
	if info.Successor() {
		flags = append(flags, "successor")
	}
	if line, ok := info.InvocationLine(); ok {
		flags = append(flags, fmt.Sprintf("calls@%d", line))
	}
	return strings.Join(flags, " ")
}

// sortedLabels returns the defined labels of a body in stream order.
func sortedLabels(body *bytecode.MethodBody) []*bytecode.Label {
	positions := body.LabelPositions()
	labels := make([]*bytecode.Label, 0, len(positions))
	for l := range positions {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		return positions[labels[i]] < positions[labels[j]]
	})
	return labels
}
