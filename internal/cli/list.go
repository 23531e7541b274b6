package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"colcon-ls/internal/app"
	"colcon-ls/internal/types"
)

type listOptions struct {
	BasePaths        []string
	Paths            []string
	NamesOnly        bool
	PathsOnly        bool
	TopologicalOrder bool
	Filter           string
	Exact            bool
	Format           string
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List packages discovered under the base paths",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.BasePaths, "base-paths", nil, "Base paths to recursively crawl for packages")
	cmd.Flags().StringSliceVar(&opts.Paths, "paths", nil, "Paths whose direct children are checked for a package")
	cmd.Flags().BoolVarP(&opts.NamesOnly, "names-only", "n", false, "Output only the name of each package but not the path")
	cmd.Flags().BoolVarP(&opts.PathsOnly, "paths-only", "p", false, "Output only the path of each package but not the name")
	cmd.Flags().BoolVarP(&opts.TopologicalOrder, "topological-order", "t", false, "Not implemented")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "Keep only packages whose name contains this string")
	cmd.Flags().BoolVar(&opts.Exact, "exact", false, "Treat --filter as an exact name match")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputModeLines), "Output format (lines, yaml)")
	cmd.MarkFlagsMutuallyExclusive("names-only", "paths-only")
	_ = viper.BindPFlag("base_paths", cmd.Flags().Lookup("base-paths"))
	_ = viper.BindPFlag("filter", cmd.Flags().Lookup("filter"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	if opts.TopologicalOrder {
		log.Debug().Msg("topological ordering is not implemented, using name order")
	}
	service := app.NewService()
	result, err := service.List(ctx, app.ListRequest{
		BasePaths: resolveStrings(cmd, opts.BasePaths, "base_paths", "base-paths"),
		Paths:     opts.Paths,
		Filter:    resolveString(cmd, opts.Filter, "filter", "filter"),
		Exact:     opts.Exact,
	})
	if err != nil {
		return err
	}
	return service.Output.WriteRecords(result.Records, outputMode(cmd, opts))
}

func outputMode(cmd *cobra.Command, opts listOptions) types.OutputMode {
	switch {
	case opts.NamesOnly:
		return types.OutputModeNames
	case opts.PathsOnly:
		return types.OutputModePaths
	default:
		return types.OutputMode(resolveString(cmd, opts.Format, "format", "format"))
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

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || name == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
