package cli

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type tableOptions struct {
	Format string
}

// tableEntry is the serialized form of one resolution table row.
type tableEntry struct {
	Crate string `yaml:"crate" json:"crate"`
	Kind  string `yaml:"kind" json:"kind"`
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
}

func newTableCommand() *cobra.Command {
	opts := tableOptions{}
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Dump the full canonical-name resolution table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTable(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", "yaml", "Output format: yaml or json")
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func runTable(cmd *cobra.Command, opts tableOptions) error {
	service := newAppService()
	result, err := service.Table(cmd.Context())
	if err != nil {
		return err
	}

	entries := make([]tableEntry, 0, len(result.Crates))
	for crate, resolution := range result.Crates {
		entries = append(entries, tableEntry{
			Crate: crate,
			Kind:  string(resolution.Kind),
			Name:  resolution.Name,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Crate < entries[j].Crate
	})

	switch resolveString(cmd, opts.Format, "format", "format") {
	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("format must be yaml or json")
	}
}
