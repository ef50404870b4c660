// Package main provides the CLI entrypoint for words.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/words/internal/config"
	"github.com/verte-zerg/words/internal/model"
	"github.com/verte-zerg/words/internal/report"
	"github.com/verte-zerg/words/internal/search"
	"github.com/verte-zerg/words/internal/tui"
	"github.com/verte-zerg/words/internal/wordlist"
)

const defaultDict = "en"

var (
	filterDict     string
	filterDictPath string
	filterExclude  string
	filterInclude  string
	filterStrict   bool
	filterColumns  bool

	importName     string
	importLang     string
	importSelector string
	importForce    bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "words PATTERN",
		Short:         "Find five-letter words matching a pattern",
		Long:          "Filter a dictionary down to the five-letter words consistent with PATTERN.\nUse *, _ or ? for unknown positions.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runFilterCmd,
	}

	addQueryFlags(rootCmd)
	rootCmd.Flags().BoolVar(&filterStrict, "strict", false, "fail on malformed dictionary lines instead of skipping them")
	rootCmd.Flags().BoolVar(&filterColumns, "columns", false, "lay matches out in columns when writing to a terminal")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDictCmd())
	rootCmd.AddCommand(newInteractiveCmd())

	return rootCmd
}

// addQueryFlags registers the dictionary and letter constraint flags shared by
// the filter and interactive commands.
func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&filterDict, "dict", defaultDict, "name of an installed dictionary")
	cmd.Flags().StringVar(&filterDictPath, "dict-path", "", "dictionary file path (overrides --dict)")
	cmd.Flags().StringVarP(&filterExclude, "exclude", "e", "", "letters that are not in the answer")
	cmd.Flags().StringVarP(&filterInclude, "include", "i", "", "letters that are somewhere in the answer")
}

func loadFilterConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "dict", &filterDict, fileCfg.Filter.Dict)
	applyStringConfig(cmd, "dict-path", &filterDictPath, fileCfg.Filter.DictPath)
	applyStringConfig(cmd, "exclude", &filterExclude, fileCfg.Filter.Exclude)
	applyStringConfig(cmd, "include", &filterInclude, fileCfg.Filter.Include)
	applyBoolConfig(cmd, "strict", &filterStrict, fileCfg.Filter.Strict)
	applyBoolConfig(cmd, "columns", &filterColumns, fileCfg.Filter.Columns)

	return model.Config{
		Dict:     filterDict,
		DictPath: filterDictPath,
		Exclude:  filterExclude,
		Include:  filterInclude,
		Strict:   filterStrict,
		Columns:  filterColumns,
	}, nil
}

func runFilterCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadFilterConfig(cmd)
	if err != nil {
		return err
	}
	q, err := search.ParseQuery(model.Query{
		Pattern: args[0],
		Exclude: cfg.Exclude,
		Include: cfg.Include,
	})
	if err != nil {
		return err
	}

	dictPath := resolveDictPath(cfg)
	file, err := os.Open(dictPath)
	if err != nil {
		return dictLoadError(cfg.Dict, dictPath, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logErrf("failed to close dictionary: %v\n", cerr)
		}
	}()

	result, summary, err := search.Run(file, q, search.Options{Strict: cfg.Strict})
	if err != nil {
		return fmt.Errorf("failed to filter %s: %w", dictPath, err)
	}
	if summary.Skipped > 0 {
		logErrf("skipped %d malformed dictionary lines\n", summary.Skipped)
	}

	return writeResult(cmd.OutOrStdout(), result.Strings(), cfg.Columns)
}

func writeResult(w io.Writer, words []string, columns bool) error {
	if columns {
		if f, ok := w.(*os.File); ok && report.IsTerminal(f) {
			return report.WriteColumns(w, words, report.TerminalWidth(f))
		}
	}
	if err := report.WriteList(w, words); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newInteractiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive [PATTERN]",
		Short: "Narrow down candidates interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInteractiveCmd,
	}
	addQueryFlags(cmd)
	return cmd
}

func runInteractiveCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadFilterConfig(cmd)
	if err != nil {
		return err
	}
	dictPath := resolveDictPath(cfg)
	words, err := wordlist.LoadWords(dictPath)
	if err != nil {
		return dictLoadError(cfg.Dict, dictPath, err)
	}

	initial := model.Query{Exclude: cfg.Exclude, Include: cfg.Include}
	if len(args) > 0 {
		initial.Pattern = args[0]
	}
	m := tui.NewModel(words, dictPath, initial)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage dictionaries",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List installed dictionaries",
		Args:  cobra.NoArgs,
		RunE:  runDictListCmd,
	})

	importCmd := &cobra.Command{
		Use:   "import SOURCE",
		Short: "Import five-letter words from a file or URL",
		Args:  cobra.ExactArgs(1),
		RunE:  runDictImportCmd,
	}
	importCmd.Flags().StringVar(&importName, "name", defaultDict, "dictionary name")
	importCmd.Flags().StringVar(&importLang, "lang", "en", "character filter: en keeps a-z only, anything else keeps all letters")
	importCmd.Flags().StringVar(&importSelector, "selector", "", "CSS selector for HTML sources (default: body)")
	importCmd.Flags().BoolVar(&importForce, "force", false, "overwrite an existing dictionary")
	cmd.AddCommand(importCmd)
	return cmd
}

func runDictListCmd(cmd *cobra.Command, _ []string) error {
	dir := config.DefaultDictDir()
	dicts, err := wordlist.ListDicts(dir)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read dictionary directory: %w", err)
	}
	if len(dicts) == 0 {
		logErrln("No dictionaries found. Import one with: words dict import <file-or-url>")
		return fmt.Errorf("no dictionaries found")
	}
	rows := make([][]string, 0, len(dicts))
	for _, d := range dicts {
		rows = append(rows, []string{d.Name, strconv.Itoa(d.Words), d.Path})
	}
	for _, line := range report.FormatTable([]string{"Name", "Words", "Path"}, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runDictImportCmd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(importName)
	if name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("--name must be a plain file name")
	}
	outPath := config.DefaultDictPath(name)
	if !importForce {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("dictionary already exists: %s (use --force to overwrite)", outPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat dictionary: %w", err)
		}
	}

	logErrf("Importing %s...\n", args[0])
	words, err := wordlist.Import(context.Background(), args[0], wordlist.ImportOptions{
		Lang:     importLang,
		Selector: importSelector,
	})
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", args[0], err)
	}
	if err := wordlist.WriteWords(outPath, words); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d words to %s\n", len(words), outPath); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
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
	if err := ensureConfigFile(path); err != nil {
		return err
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

func ensureConfigFile(path string) error {
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
	return nil
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
	return fmt.Sprintf(`# words configuration
# Uncomment a value to enable it. CLI flags override config values.

[filter]
# dict = %q               # Installed dictionary name (see: words dict list)
# dict-path = ""          # Dictionary file path, overrides dict
# exclude = ""            # Letters that are not in the answer
# include = ""            # Letters that are somewhere in the answer
# strict = false          # Fail on malformed dictionary lines
# columns = false         # Column layout on terminals
`, defaultDict)
}

func resolveDictPath(cfg model.Config) string {
	if cfg.DictPath != "" {
		return cfg.DictPath
	}
	return config.DefaultDictPath(cfg.Dict)
}

func dictLoadError(name, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load dictionary: %v", err),
		fmt.Sprintf("expected dictionary at: %s", path),
	}
	if errors.Is(err, os.ErrNotExist) {
		lines = append(lines,
			fmt.Sprintf("dictionary %q not found", name),
			"Run: words dict list",
			fmt.Sprintf("Import: words dict import --name %s <file-or-url>", name),
		)
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
