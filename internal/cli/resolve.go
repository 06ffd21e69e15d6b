package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"crate-resolver/internal/app"
	"crate-resolver/internal/types"
)

func newResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <crate-name>",
		Short: "Resolve a canonical crate name to its local identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args[0])
		},
	}
	return cmd
}

func runResolve(cmd *cobra.Command, crateName string) error {
	service := newAppService()
	result, err := service.Resolve(cmd.Context(), app.ResolveRequest{CrateName: crateName})
	if err != nil {
		return err
	}
	if result.Resolution.Kind == types.ResolutionItself {
		fmt.Println("itself")
		return nil
	}
	fmt.Println(result.Resolution.Name)
	return nil
}
