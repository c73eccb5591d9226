package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/api"
)

var serveAddr string

// serveCmd starts the HTTP API exposing the simulator as a JSON service.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		if err := api.Serve(serveAddr); err != nil {
			logrus.Fatalf("API server failed: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address for the HTTP API")

	rootCmd.AddCommand(serveCmd)
}
