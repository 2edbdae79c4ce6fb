package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/on-the-ground/noisefn/internal/configkeys"
	"github.com/on-the-ground/noisefn/noise"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "noisefn v0.1.0"

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	root := &cobra.Command{
		Use:   "noisefn",
		Short: "Sample composed noise functions",
		Long: `noisefn builds a fixed noise tree (a cached minimum of fractal simplex
noise and Perlin noise) and samples it over a grid.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, configFile)
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-dev", false, "human readable logs")
	_ = v.BindPFlag(configkeys.LogLevel, root.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag(configkeys.LogDevelopment, root.PersistentFlags().Lookup("log-dev"))

	root.AddCommand(newSampleCmd(v))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return root
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(configkeys.NoiseSeed, noise.DefaultSeed)
	v.SetDefault(configkeys.NoiseOctaves, noise.DefaultOctaves)
	v.SetDefault(configkeys.NoiseFrequency, noise.DefaultFrequency)
	v.SetDefault(configkeys.NoiseLacunarity, noise.DefaultLacunarity)
	v.SetDefault(configkeys.NoisePersistence, noise.DefaultPersistence)

	v.SetDefault(configkeys.SamplerWidth, 64)
	v.SetDefault(configkeys.SamplerHeight, 32)
	v.SetDefault(configkeys.SamplerScale, 0.05)
	v.SetDefault(configkeys.SamplerWorkers, 4)

	v.SetDefault(configkeys.LogLevel, "info")
	v.SetDefault(configkeys.LogDevelopment, false)
}

// loadConfig layers defaults, an optional config file and NOISEFN_* env vars.
// Flags bound with BindPFlag take precedence over all of them.
func loadConfig(v *viper.Viper, configFile string) error {
	setDefaults(v)
	v.SetEnvPrefix(configkeys.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		return nil
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
