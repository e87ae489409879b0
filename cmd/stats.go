package cmd

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print download statistics totals",
	Run: func(_ *cobra.Command, _ []string) {
		_, services, cleanup := mustCreateServices()
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		totals, err := services.statistics.DownloadTotals(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to load download totals")
		}

		logrus.WithFields(logrus.Fields{
			"downloads":         totals.Downloads,
			"preview_downloads": totals.PreviewDownloads,
		}).Info("download_totals")
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
