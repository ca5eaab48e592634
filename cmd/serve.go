package cmd

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sdcoffey/atlas/env"
	"github.com/sdcoffey/atlas/peer"
	"github.com/sdcoffey/atlas/server/api"
)

var (
	serveAddress string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve listings over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.InitializeEnvironment(); err != nil {
				return err
			}
			restApi := api.NewApi(loadTree())

			go peer.Announce()
			logrus.WithField("address", serveAddress).Info("atlas listening")

			return http.ListenAndServe(serveAddress, restApi)
		},
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "address", ":3000", "listen address")
}
