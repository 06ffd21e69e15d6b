package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"crate-resolver/internal/adapters"
	"crate-resolver/internal/app"
	"crate-resolver/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "CRATE_RESOLVER"

type RootConfig struct {
	ConfigFile      string
	LogLevel        string
	ManifestDir     string
	BuildContext    string
	SecondaryMarker string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "crate-resolver",
		Short:   "Resolve canonical crate names against the active Cargo.toml",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().StringVar(&cfg.ManifestDir, "manifest-dir", "", "Manifest directory (overrides CARGO_MANIFEST_DIR)")
	cmd.PersistentFlags().StringVar(&cfg.BuildContext, "build-context", "", "Build context override: primary or secondary")
	cmd.PersistentFlags().StringVar(&cfg.SecondaryMarker, "secondary-marker", adapters.DefaultSecondaryMarker, "Env variable marking a secondary build artifact")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("manifest_dir", cmd.PersistentFlags().Lookup("manifest-dir"))
	_ = viper.BindPFlag("build_context", cmd.PersistentFlags().Lookup("build-context"))
	_ = viper.BindPFlag("secondary_marker", cmd.PersistentFlags().Lookup("secondary-marker"))

	cmd.AddCommand(newResolveCommand())
	cmd.AddCommand(newTableCommand())
	cmd.AddCommand(newLocateCommand())
	return cmd
}

// newAppService builds the service for one invocation. A manifest-dir
// flag or config value replaces the process-environment lookup entirely.
func newAppService() app.Service {
	if dir := viper.GetString("manifest_dir"); dir != "" {
		return app.NewServiceWith(
			adapters.NewStaticEnvAdapter(dir, types.BuildContext(viper.GetString("build_context"))),
			adapters.NewManifestFileAdapter(),
			adapters.NewTOMLDecoderAdapter(),
		)
	}
	return app.NewServiceWith(
		adapters.NewCargoEnvAdapterWithMarker(viper.GetString("secondary_marker")),
		adapters.NewManifestFileAdapter(),
		adapters.NewTOMLDecoderAdapter(),
	)
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("crate-resolver")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/crate-resolver")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	message := errorMessage(err)
	switch code {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeFailedPrecondition:
		return 3
	case errbuilder.CodeNotFound:
		if strings.HasPrefix(message, "could not find "+adapters.ManifestFilename) {
			return 5
		}
		return 4
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
