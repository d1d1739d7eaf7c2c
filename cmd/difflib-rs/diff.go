package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/cogentcore/difflib/difflib"
	"github.com/cogentcore/difflib/internal/errx"
	"github.com/cogentcore/difflib/internal/watch"
)

var (
	diffContext  int
	diffLabels   []string
	diffLineTerm string
	diffWatch    bool
	diffColor    bool
	diffConfig   string
)

func init() {
	diffCmd.Flags().IntVarP(&diffContext, "context", "n", -1, "lines of equal context around each hunk (config default if unset)")
	diffCmd.Flags().StringArrayVarP(&diffLabels, "label", "L", nil, "use the given label instead of the filename, may be given twice (from, to)")
	diffCmd.Flags().StringVar(&diffLineTerm, "lineterm", "", "line terminator appended to header and hunk-header lines (config default if unset)")
	diffCmd.Flags().BoolVar(&diffWatch, "watch", false, "re-run the diff whenever either file changes")
	diffCmd.Flags().BoolVar(&diffColor, "color", false, "colorize the diff output")
	diffCmd.Flags().StringVar(&diffConfig, "config", "", "path to a difflib-rs.toml config file")
}

var diffCmd = &cobra.Command{
	Use:   "diff <fromfile> <tofile>",
	Short: "print a unified diff of two files",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	fromPath, toPath := args[0], args[1]

	cfg, err := loadConfig(diffConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("context") && diffContext < 0 {
		return fmt.Errorf("--context must not be negative, got %d", diffContext)
	}
	if !cmd.Flags().Changed("context") {
		diffContext = cfg.Context
	}
	if !cmd.Flags().Changed("lineterm") {
		diffLineTerm = cfg.LineTerm
	}
	if !cmd.Flags().Changed("color") {
		diffColor = cfg.Color
	}
	if !cmd.Flags().Changed("watch") {
		diffWatch = cfg.Watch
	}

	fromLabel, toLabel := fromPath, toPath
	if len(diffLabels) > 0 {
		fromLabel = diffLabels[0]
	}
	if len(diffLabels) > 1 {
		toLabel = diffLabels[1]
	}

	render := func() error {
		out, err := renderDiff(fromPath, toPath, fromLabel, toLabel)
		if err != nil {
			return errx.Log(err)
		}
		if diffColor {
			out = colorizeDiff(termenv.ColorProfile(), out)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	if !diffWatch {
		return render()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	return watch.OnChange(ctx, func() {
		if err := render(); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
	}, fromPath, toPath)
}

func renderDiff(fromPath, toPath, fromLabel, toLabel string) (string, error) {
	fromBytes, err := os.ReadFile(fromPath)
	if err != nil {
		return "", err
	}
	toBytes, err := os.ReadFile(toPath)
	if err != nil {
		return "", err
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(fromBytes), true),
		B:        difflib.SplitLines(string(toBytes), true),
		FromFile: fromLabel,
		ToFile:   toLabel,
		Context:  diffContext,
		LineTerm: diffLineTerm,
	}
	return difflib.GetUnifiedDiffString(diff)
}
