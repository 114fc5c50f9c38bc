package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	twitter "github.com/francois/camel-twitter"
)

// propertyFlags maps CLI flag names to endpoint property keys.
var propertyFlags = map[string]string{
	"keywords":       twitter.PropKeywords,
	"user":           twitter.PropUser,
	"recipient-user": twitter.PropRecipientUser,
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "twitterresolve",
		Short: "Resolve twitter endpoint URIs into handlers",
		Long: `twitterresolve parses a twitter endpoint URI, checks the endpoint properties
the named handler needs, and prints the handler that would be built.

Properties come from flags, TWITTER_* environment variables, a config file
(--config), or a JSON document (--props), in that order of precedence with
--props replacing the rest.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfigFile(v)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "endpoint properties file (yaml, json, or toml)")
	pf.String("log-level", "warn", "log level: debug, info, warn, or error")
	pf.String("props", "", "endpoint properties as a JSON object")
	pf.String("keywords", "", "search or filter keywords")
	pf.String("user", "", "user for the user timeline")
	pf.String("recipient-user", "", "recipient for direct messages")

	for _, name := range []string{"config", "log-level", "props"} {
		_ = v.BindPFlag(name, pf.Lookup(name))
	}
	for flag, key := range propertyFlags {
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}
	v.SetEnvPrefix("TWITTER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(
		newResolveCmd(v, twitter.DirConsumer),
		newResolveCmd(v, twitter.DirProducer),
		newTypesCmd(),
	)
	return cmd
}

// loadConfigFile reads --config into v, if given.
func loadConfigFile(v *viper.Viper) error {
	path := v.GetString("config")
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

func newLogger(cmd *cobra.Command, v *viper.Viper) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}
