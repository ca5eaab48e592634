package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sdcoffey/atlas/client/apiclient"
	"github.com/sdcoffey/atlas/client/cli"
	"github.com/sdcoffey/atlas/peer"
)

var (
	shellAddress string

	shellCmd = &cobra.Command{
		Use:   "shell",
		Short: "Browse a served structure interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			address := shellAddress
			if address == "" {
				ip, err := peer.FindServer(3 * time.Second)
				if err != nil {
					return fmt.Errorf("no atlas server found on network: %w", err)
				}
				address = fmt.Sprintf("http://%s:3000", ip)
			}

			return cli.Run(apiclient.ApiClient{Address: address}, os.Stdin, cmd.OutOrStdout())
		},
	}
)

func init() {
	shellCmd.Flags().StringVar(&shellAddress, "address", "", "server address (discovered via multicast when empty)")
}
