package main

import (
	"fmt"

	"github.com/radhian/credit-timeline/entity"
	"github.com/spf13/cobra"
)

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print every bureau's trends and oldest-vs-newest comparisons",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := loadReport(cmd.Context(), cmd, opts)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report.Summary())
		},
	}
}

func newTrendCmd(opts *rootOptions) *cobra.Command {
	var bureau, kind string

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Print a utilization, late_payment or score trend for one bureau",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := loadReport(cmd.Context(), cmd, opts)
			if err != nil {
				return err
			}

			var result interface{}
			switch kind {
			case "utilization":
				result, err = report.UtilizationTrend(bureau)
			case "late_payment":
				result, err = report.LatePaymentTrend(bureau)
			case "score":
				result, err = report.ScoreProgression(bureau)
			default:
				return fmt.Errorf("unknown trend kind %q", kind)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&bureau, "bureau", "", "bureau name")
	cmd.Flags().StringVar(&kind, "kind", "score", "utilization, late_payment or score")
	return cmd
}

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var bureau, metric, dateA, dateB string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a metric between two report dates (oldest vs newest by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := loadReport(cmd.Context(), cmd, opts)
			if err != nil {
				return err
			}

			var res entity.ComparisonResult
			if dateA == "" && dateB == "" {
				res, err = report.OldestVsNewest(bureau, entity.Metric(metric))
			} else {
				res, err = report.Compare(bureau, dateA, dateB, entity.Metric(metric))
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&bureau, "bureau", "", "bureau name")
	cmd.Flags().StringVar(&metric, "metric", string(entity.MetricScore), "utilization, late_payment or score")
	cmd.Flags().StringVar(&dateA, "date-a", "", "first report date")
	cmd.Flags().StringVar(&dateB, "date-b", "", "second report date")
	return cmd
}

func newSnapshotCmd(opts *rootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Compare all bureaus on one report date",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := loadReport(cmd.Context(), cmd, opts)
			if err != nil {
				return err
			}
			snap, err := report.CompareBureausAtDate(date)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), snap)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "report date")
	return cmd
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	var operator string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Store the records of --file under --customer in the record store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.customer == "" {
				return fmt.Errorf("--customer is required")
			}
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			records, err := readRecords(cmd.InOrStdin(), opts.file)
			if err != nil {
				return err
			}

			uc, closeDB, err := openUsecase(cfg)
			if err != nil {
				return err
			}
			defer closeDB()

			res, err := uc.ImportRecords(opts.customer, records, operator)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&operator, "operator", "", "name recorded as the importer")
	return cmd
}
