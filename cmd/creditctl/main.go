// Command creditctl builds credit timelines from CRM record exports and
// prints query results as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/radhian/credit-timeline/config"
	"github.com/radhian/credit-timeline/controllers"
	"github.com/radhian/credit-timeline/entity"
	"github.com/radhian/credit-timeline/infra/db/dao"
	"github.com/radhian/credit-timeline/usecase/creditreport"
	"github.com/radhian/credit-timeline/usecase/temporal"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	file       string
	customer   string
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "creditctl",
		Short:         "Build per-bureau credit timelines from CRM records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "JSON file with records (array or {\"records\": [...]}), - for stdin")
	root.PersistentFlags().StringVar(&opts.customer, "customer", "", "read records for this customer from the record store")
	root.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv("CONFIG_PATH"), "path to YAML config")

	root.AddCommand(
		newSummaryCmd(opts),
		newTrendCmd(opts),
		newCompareCmd(opts),
		newSnapshotCmd(opts),
		newImportCmd(opts),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	cfg.Log.ApplyLogLevel()
	return cfg, nil
}

// loadReport builds from --file, or from the record store with --customer.
func loadReport(ctx context.Context, cmd *cobra.Command, opts *rootOptions) (*temporal.Report, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	if opts.customer != "" {
		uc, closeDB, err := openUsecase(cfg)
		if err != nil {
			return nil, err
		}
		defer closeDB()
		return uc.BuildReport(ctx, opts.customer)
	}

	records, err := readRecords(cmd.InOrStdin(), opts.file)
	if err != nil {
		return nil, err
	}
	return temporal.BuildSharded(ctx, records, cfg.Engine.ShardSize)
}

func openUsecase(cfg *config.Config) (creditreport.CreditReportUsecase, func(), error) {
	db, err := controllers.OpenDB(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Warnf("[creditctl] Closing database: %v", err)
		}
	}
	return creditreport.NewCreditReportUsecase(dao.NewDaoMethod(db), cfg.Engine.ShardSize), closeDB, nil
}

func readRecords(stdin io.Reader, path string) ([]entity.RawRecord, error) {
	if path == "" {
		return nil, fmt.Errorf("either --file or --customer is required")
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	var records []entity.RawRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var wrapped entity.RecordsRequest
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("records must be a JSON array or an object with a records field: %w", err)
	}
	return wrapped.Records, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
