// Package main provides the CLI entrypoint for textstat.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/textstat/internal/config"
	"github.com/verte-zerg/textstat/internal/input"
	"github.com/verte-zerg/textstat/internal/model"
	"github.com/verte-zerg/textstat/internal/report"
	"github.com/verte-zerg/textstat/internal/stats"
	"github.com/verte-zerg/textstat/internal/store"
	"github.com/verte-zerg/textstat/internal/viewer"
)

const (
	defaultFormat   = report.FormatText
	defaultEncoding = "utf8"
)

var (
	reportFormat   string
	reportEncoding string
	reportBarMax   int
	reportLongest  int
	reportSave     bool
	reportTUI      bool

	historyLast  int
	historyRunID int64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "textstat [file]",
		Short:         "Word, letter and line statistics for text",
		Long:          "Reads a file (or stdin when no file is given) and prints word, letter and line statistics with two histograms.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReportCmd,
	}

	rootCmd.Flags().StringVar(&reportFormat, "format", defaultFormat, "output format: text, json or yaml")
	rootCmd.Flags().StringVar(&reportEncoding, "encoding", defaultEncoding, "input encoding: "+strings.Join(input.Encodings, ", "))
	rootCmd.Flags().IntVar(&reportBarMax, "bar-max", report.DefaultBarMax, "maximum stars per letter histogram bar")
	rootCmd.Flags().IntVar(&reportLongest, "longest", report.DefaultLongest, "distinct longest words listed in json/yaml output")
	rootCmd.Flags().BoolVar(&reportSave, "save", false, "record the run in the history database")
	rootCmd.Flags().BoolVar(&reportTUI, "tui", false, "browse the report in an interactive viewer")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "format", &reportFormat, fileCfg.Report.Format)
	applyStringConfig(cmd, "encoding", &reportEncoding, fileCfg.Report.Encoding)
	applyIntConfig(cmd, "bar-max", &reportBarMax, fileCfg.Report.BarMax)
	applyIntConfig(cmd, "longest", &reportLongest, fileCfg.Report.Longest)
	applyBoolConfig(cmd, "save", &reportSave, fileCfg.Report.Save)
	applyBoolConfig(cmd, "tui", &reportTUI, fileCfg.Report.TUI)

	cfg := model.Config{
		Format:   strings.ToLower(strings.TrimSpace(reportFormat)),
		Encoding: reportEncoding,
		BarMax:   reportBarMax,
		Longest:  reportLongest,
		Save:     reportSave,
		TUI:      reportTUI,
	}
	if err := validateConfig(&cfg); err != nil {
		return err
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	stdin := cmd.InOrStdin()
	if (path == "" || path == "-") && isTerminal(stdin) {
		_ = cmd.Usage()
		return fmt.Errorf("no input: pass a file or pipe text on stdin")
	}

	src, err := input.Open(path, cfg.Encoding, stdin)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			logErrf("failed to close input: %v\n", cerr)
		}
	}()

	diction, err := stats.Process(src)
	if err != nil {
		return err
	}

	if cfg.Save {
		id, err := saveRun(cmd.Context(), src.Name, cfg.Encoding, diction)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		logErrf("Saved run %d\n", id)
	}

	opts := report.Options{BarMax: cfg.BarMax}
	if cfg.TUI {
		return runViewer(diction, src.Name, opts)
	}
	return writeReport(cmd.OutOrStdout(), diction, cfg, opts)
}

func writeReport(out io.Writer, d *model.Diction, cfg model.Config, opts report.Options) error {
	w := bufio.NewWriter(out)
	var err error
	if cfg.Format == report.FormatText {
		err = report.Render(w, d, opts)
	} else {
		err = report.Export(w, d, cfg.Format, cfg.Longest)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runViewer(d *model.Diction, source string, opts report.Options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("--tui requires a terminal on stdout")
	}
	program := tea.NewProgram(viewer.NewModel(d, source, opts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run viewer: %w", err)
	}
	return nil
}

func saveRun(ctx context.Context, source, encoding string, d *model.Diction) (int64, error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return 0, fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if source != "stdin" {
		if abs, err := filepath.Abs(source); err == nil {
			source = abs
		}
	}
	run := model.RunRecord{
		CreatedAt:   time.Now(),
		Source:      source,
		Encoding:    encoding,
		Chars:       d.Stats.Chars,
		Words:       d.Stats.Words,
		Lines:       d.Stats.Lines,
		UniqueWords: len(d.UniqueWords),
		LongestWord: stats.LongestWord(d.FreqIndex),
	}
	return st.InsertRun(ctx, run, d.FreqIndex)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N runs")
	cmd.Flags().Int64Var(&historyRunID, "run", 0, "print the dictionary of one saved run")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg := model.HistoryConfig{Last: historyLast, RunID: historyRunID}
	if cfg.Last < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	if cfg.RunID > 0 {
		entries, err := st.ListRunWords(ctx, cfg.RunID)
		if err != nil {
			return err
		}
		return report.RenderDictionary(out, entries)
	}
	runs, err := st.ListRuns(ctx, cfg.Last)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	return report.RenderHistory(out, runs)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# textstat configuration
# Uncomment a value to enable it. CLI flags override config values.

[report]
# format = %q           # text, json or yaml
# encoding = %q         # %s
# bar-max = %d             # Maximum stars per letter histogram bar
# longest = %d              # Distinct longest words listed in json/yaml output
# save = false             # Record every run in the history database
# tui = false              # Open the interactive viewer instead of printing
`,
		defaultFormat,
		defaultEncoding,
		strings.Join(input.Encodings, ", "),
		report.DefaultBarMax,
		report.DefaultLongest,
	)
}

func validateConfig(cfg *model.Config) error {
	if !report.ValidFormat(cfg.Format) {
		return fmt.Errorf("--format must be one of text, json, yaml")
	}
	enc, err := input.NormalizeEncoding(cfg.Encoding)
	if err != nil {
		return err
	}
	cfg.Encoding = enc
	if cfg.BarMax < 1 {
		return fmt.Errorf("--bar-max must be > 0")
	}
	if cfg.Longest < 0 {
		return fmt.Errorf("--longest must be >= 0")
	}
	if cfg.TUI && cfg.Format != report.FormatText {
		return fmt.Errorf("--tui cannot be combined with --format %s", cfg.Format)
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
