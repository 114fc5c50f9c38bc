package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	twitter "github.com/francois/camel-twitter"
)

func newResolveCmd(v *viper.Viper, dir twitter.Direction) *cobra.Command {
	return &cobra.Command{
		Use:   string(dir) + " [uri]",
		Short: fmt.Sprintf("Print the %s an endpoint URI resolves to", dir),
		Long: fmt.Sprintf(`Print the kind of %s built for the URI.

The URI may also come from the "uri" key of the config file. Unknown or
reserved URIs print the default handler and log a warning; a missing
required property is an error.`, dir),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd, v)
			if err != nil {
				return err
			}
			cfg, err := endpointConfig(v, args)
			if err != nil {
				return err
			}

			r := twitter.New(
				twitter.WithLogger(logger),
				twitter.WithOnFallback(func(_ twitter.Direction, _ string, reason error) {
					if errors.Is(reason, twitter.ErrNotImplemented) {
						fmt.Fprintln(cmd.ErrOrStderr(), "note: category is reserved and has no handler yet")
					}
				}),
			)

			var h twitter.Handler
			if dir == twitter.DirProducer {
				h, err = r.Producer(cfg)
			} else {
				h, err = r.Consumer(cfg)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), h.Kind())
			return nil
		},
	}
}

// endpointConfig builds the endpoint from the positional URI and viper.
func endpointConfig(v *viper.Viper, args []string) (twitter.EndpointConfig, error) {
	uri := v.GetString("uri")
	if len(args) > 0 {
		uri = args[0]
	}

	if raw := v.GetString("props"); raw != "" {
		props, err := twitter.JSONProperties([]byte(raw))
		if err != nil {
			return twitter.EndpointConfig{}, fmt.Errorf("--props: %w", err)
		}
		return twitter.EndpointConfig{URI: uri, Properties: props}, nil
	}

	props := twitter.MapProperties{}
	for _, key := range propertyFlags {
		if v.IsSet(key) {
			props[key] = v.GetString(key)
		}
	}
	return twitter.EndpointConfig{URI: uri, Properties: props}, nil
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List URI categories and sub-categories",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, c := range twitter.Categories() {
				fmt.Fprintln(out, c)
				for _, s := range twitter.SubCategories(c) {
					fmt.Fprintf(out, "  %s/%s\n", c, s)
				}
			}
		},
	}
}
