package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLocateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Print the manifest path the resolver would use",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLocate(cmd)
		},
	}
	return cmd
}

func runLocate(cmd *cobra.Command) error {
	service := newAppService()
	result, err := service.Locate(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Println(result.ManifestPath)
	return nil
}
