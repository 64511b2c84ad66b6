package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"xtrading/src/eventmodels"
	"xtrading/src/models"
	"xtrading/src/utils"
)

var importBarsCmd = &cobra.Command{
	Use:   "go run src/cmd/import_bars/main.go --csv-file bars.csv",
	Short: "Validate a CSV of OHLCV bars and print summary statistics",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		if err := utils.InitEnvironmentVariables(goEnv); err != nil {
			log.Warnf("skipping env file: %v", err)
		}

		csvFile, err := cmd.Flags().GetString("csv-file")
		if err != nil {
			log.Fatalf("error getting csv-file: %v", err)
		}

		if err := run(csvFile); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func run(csvFile string) error {
	f, err := os.Open(csvFile)
	if err != nil {
		return fmt.Errorf("error opening file: %v", err)
	}
	defer f.Close()

	var rows []eventmodels.CsvBarDTO
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return fmt.Errorf("error unmarshalling %s: %v", csvFile, err)
	}

	var bars []*models.BarData
	rejected := 0
	for i, dto := range rows {
		bar, err := dto.ToBarData()
		if err != nil {
			log.WithFields(log.Fields{
				"row":  i + 2,
				"date": dto.Date,
			}).Errorf("rejected bar: %v", err)

			rejected += 1
			continue
		}

		bars = append(bars, bar)
	}

	if len(bars) == 0 {
		return fmt.Errorf("no valid bars in %s", csvFile)
	}

	closes := make([]float64, 0, len(bars))
	totalVolume := int64(0)
	for _, bar := range bars {
		closes = append(closes, bar.Close)
		totalVolume += bar.Volume
	}

	meanClose, err := stats.Mean(closes)
	if err != nil {
		return fmt.Errorf("failed to calculate mean close: %v", err)
	}

	minClose, err := stats.Min(closes)
	if err != nil {
		return fmt.Errorf("failed to calculate min close: %v", err)
	}

	maxClose, err := stats.Max(closes)
	if err != nil {
		return fmt.Errorf("failed to calculate max close: %v", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetHeader([]string{"bars", "rejected", "mean close", "min close", "max close", "total volume"})
	table.Append([]string{
		fmt.Sprintf("%d", len(bars)),
		fmt.Sprintf("%d", rejected),
		fmt.Sprintf("%.2f", meanClose),
		fmt.Sprintf("%.2f", minClose),
		fmt.Sprintf("%.2f", maxClose),
		fmt.Sprintf("%d", totalVolume),
	})
	table.Render()

	log.Infof("imported %d bars from %s (%d rejected)", len(bars), csvFile, rejected)

	return nil
}

func main() {
	importBarsCmd.Flags().String("csv-file", "", "Path to a CSV file with date,open,high,low,close,volume columns")
	importBarsCmd.Flags().String("go-env", "development", "The go environment to run the command in")

	importBarsCmd.MarkFlagRequired("csv-file")

	importBarsCmd.Execute()
}
