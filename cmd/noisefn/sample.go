package main

import (
	"fmt"

	"github.com/on-the-ground/noisefn/internal/configkeys"
	"github.com/on-the-ground/noisefn/internal/logging"
	"github.com/on-the-ground/noisefn/sampler"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSampleCmd(v *viper.Viper) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample the demo tree over a grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(v.GetString(configkeys.LogLevel), v.GetBool(configkeys.LogDevelopment))
			if err != nil {
				return err
			}
			defer logging.Sync(logger)

			cfg := sampler.NewConfig(
				v.GetInt(configkeys.SamplerWidth),
				v.GetInt(configkeys.SamplerHeight),
				v.GetFloat64(configkeys.SamplerScale),
				v.GetInt(configkeys.SamplerWorkers),
			)
			report, err := sampler.Sample(cmd.Context(), cfg, treeParamsFrom(v).builder(), logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				data, err := report.YAML()
				if err != nil {
					return fmt.Errorf("marshal report: %w", err)
				}
				_, err = out.Write(data)
				return err
			case "ascii":
				_, err := fmt.Fprint(out, report.ASCII())
				return err
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&format, "format", "yaml", "output format (yaml, ascii)")
	flags.Uint32("seed", 0, "noise seed")
	flags.Int("octaves", 0, "fractal octaves")
	flags.Float64("frequency", 0, "fractal base frequency")
	flags.Float64("lacunarity", 0, "fractal lacunarity")
	flags.Float64("persistence", 0, "fractal persistence")
	flags.Int("width", 0, "grid width")
	flags.Int("height", 0, "grid height")
	flags.Float64("scale", 0, "world units per cell")
	flags.Int("workers", 0, "number of sampling workers")

	for key, flag := range map[string]string{
		configkeys.NoiseSeed:        "seed",
		configkeys.NoiseOctaves:     "octaves",
		configkeys.NoiseFrequency:   "frequency",
		configkeys.NoiseLacunarity:  "lacunarity",
		configkeys.NoisePersistence: "persistence",
		configkeys.SamplerWidth:     "width",
		configkeys.SamplerHeight:    "height",
		configkeys.SamplerScale:     "scale",
		configkeys.SamplerWorkers:   "workers",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
	return cmd
}
