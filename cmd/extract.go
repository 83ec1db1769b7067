package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/nsxbet/redshift-tables/pkg/config"
	"github.com/nsxbet/redshift-tables/pkg/lineage"
)

const stdinPath = "-"

var extractCmd = &cobra.Command{
	Use:   "extract [flags] <sql-file>...",
	Short: "Extract table references from stored procedure sources",
	Long: `Extract the schema-qualified tables referenced by one or more Redshift
stored procedure sources. Use "-" to read from standard input.

Tables are reported as "schema.table". A table whose name is concatenated
from a parameter (FROM schema.' || param) is reported as
"schema.param (by_parameter)".`,
	Example: `  # Tables used by a procedure
  redshift-tables extract load_orders.sql

  # One entry per procedure of a migration file, as JSON
  redshift-tables extract --split-procedures -o json migrations/*.sql

  # Keep the original case and sort the output
  cat proc.sql | redshift-tables extract --preserve-case --sort -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	// Flags for extract command
	extractCmd.Flags().Bool("preserve-case", false, "keep identifiers as written instead of lowercasing them")
	extractCmd.Flags().Bool("sort", false, "sort tables alphabetically instead of by first appearance")
	extractCmd.Flags().Bool("split-procedures", false, "report each CREATE PROCEDURE definition separately")
	extractCmd.Flags().Int("max-input-bytes", 0, "reject sources larger than this many bytes (0 = no limit)")
	extractCmd.Flags().StringP("output", "o", "text", "output format (text, json, yaml)")
	extractCmd.Flags().Bool("fail-on-dynamic", false, "exit with non-zero code if dynamic table references are found")

	// Bind flags to viper under the config file keys of pkg/config
	_ = viper.BindPFlag("preserveCase", extractCmd.Flags().Lookup("preserve-case"))
	_ = viper.BindPFlag("sort", extractCmd.Flags().Lookup("sort"))
	_ = viper.BindPFlag("splitProcedures", extractCmd.Flags().Lookup("split-procedures"))
	_ = viper.BindPFlag("maxInputBytes", extractCmd.Flags().Lookup("max-input-bytes"))
	_ = viper.BindPFlag("output", extractCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("failOnDynamic", extractCmd.Flags().Lookup("fail-on-dynamic"))
}

// sourceReport is the output record for one source, or one procedure of a
// source when procedures are split.
type sourceReport struct {
	Source    string          `json:"source" yaml:"source"`
	Procedure string          `json:"procedure,omitempty" yaml:"procedure,omitempty"`
	Line      int             `json:"line,omitempty" yaml:"line,omitempty"`
	Tables    []string        `json:"tables" yaml:"tables"`
	Summary   lineage.Summary `json:"summary" yaml:"summary"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(viper.GetViper())
	if err != nil {
		return err
	}
	slog.Debug("Starting extract command", "args", args, "config", *cfg)

	outputFormat := viper.GetString("output")
	if err := checkOutputFormat(outputFormat); err != nil {
		return err
	}

	analyzer := lineage.New().WithConfigObject(cfg)
	reports, err := collectReports(cmd.Context(), analyzer, cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	if err := outputResults(cmd.OutOrStdout(), reports, outputFormat); err != nil {
		return err
	}

	if viper.GetBool("failOnDynamic") {
		if n := countDynamic(reports); n > 0 {
			return errors.Errorf("found %d dynamic table reference(s)", n)
		}
	}
	return nil
}

// loadConfiguration decodes the analyzer configuration from v. Changed flags
// win over the environment, which wins over the config file.
func loadConfiguration(v *viper.Viper) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func collectReports(ctx context.Context, analyzer *lineage.Analyzer, stdin io.Reader, paths []string) ([]sourceReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var reports []sourceReport
	for _, path := range paths {
		source, err := readSource(path, stdin)
		if err != nil {
			return nil, err
		}
		slog.Debug("Read source", "path", path, "size", len(source))

		if !analyzer.Config().SplitProcedures {
			result, err := analyzer.Analyze(ctx, source)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to analyze %s", path)
			}
			reports = append(reports, newSourceReport(path, result))
			continue
		}

		results, err := analyzer.AnalyzeProcedures(ctx, source)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to analyze %s", path)
		}
		for _, r := range results {
			report := newSourceReport(path, r.Result)
			report.Procedure = r.Procedure.Name
			report.Line = r.Procedure.Line
			reports = append(reports, report)
		}
	}
	return reports, nil
}

func readSource(path string, stdin io.Reader) (string, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read standard input")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read SQL file: %s", path)
	}
	return string(data), nil
}

func newSourceReport(path string, result *lineage.Result) sourceReport {
	if path == stdinPath {
		path = "<stdin>"
	}
	return sourceReport{
		Source:  path,
		Tables:  result.Tables(),
		Summary: result.Summary,
	}
}

func countDynamic(reports []sourceReport) int {
	n := 0
	for _, report := range reports {
		n += report.Summary.Dynamic
	}
	return n
}

func checkOutputFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	default:
		return errors.Errorf("unsupported output format: %s", format)
	}
}

func outputResults(w io.Writer, reports []sourceReport, format string) error {
	switch format {
	case "json":
		return outputJSON(w, reports)
	case "yaml":
		return outputYAML(w, reports)
	case "text":
		return outputText(w, reports)
	default:
		return errors.Errorf("unsupported output format: %s", format)
	}
}

func outputJSON(w io.Writer, reports []sourceReport) error {
	if reports == nil {
		reports = []sourceReport{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]interface{}{
		"sources": reports,
	})
}

func outputYAML(w io.Writer, reports []sourceReport) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(map[string]interface{}{
		"sources": reports,
	})
}

func outputText(w io.Writer, reports []sourceReport) error {
	total := 0
	for _, report := range reports {
		header := report.Source
		if report.Procedure != "" {
			header = fmt.Sprintf("%s:%d %s", report.Source, report.Line, report.Procedure)
		}
		fmt.Fprintf(w, "%s\n", header)

		if len(report.Tables) == 0 {
			fmt.Fprintln(w, "  (no schema-qualified tables)")
		}
		for _, table := range report.Tables {
			fmt.Fprintf(w, "  %s\n", table)
		}
		fmt.Fprintln(w)
		total += report.Summary.Total
	}

	fmt.Fprintf(w, "Summary: %d table reference(s) in %d source(s), %d dynamic\n",
		total, len(reports), countDynamic(reports))
	return nil
}
