/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tripcut/api"
	"tripcut/params"
)

var cfgFile string
var optVerbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tripcut <input-file>",
	Short: "Split a delimited file of GPS samples into trip geometries",
	Long: `

Reads a delimited-text file (comma, semicolon, or tab) with a header row and
at least latitude, longitude, and time columns, splits the samples into trips,
and writes a GeoJSON FeatureCollection of LineStrings next to the input
(extension swapped for .geojson, override with --output).

A trip boundary is forced wherever consecutive samples are separated by more
than the time gap OR more than the jump distance; either alone is sufficient
evidence. Pairs exactly at a threshold stay in the same trip.

Rows that cannot be normalized (missing fields, non-numeric or out-of-bounds
coordinates, unparseable timestamps) are written to <input>.rejects.log and
skipped; they never abort the run. Trips of a single sample cannot form a
line and are silently dropped.

Flags:

  --gap            Max time between consecutive samples in one trip. (Default is 25m.)
  --jump           Max distance in km between consecutive samples in one trip. (Default is 2.0.)
  -o, --output     Output path. (Default is the input path with a .geojson extension.)
  --stroke-width   Stroke width tagged on every trip feature. (Default is 3.)

Examples:

  tripcut track.csv
  tripcut --gap 10m --jump 0.5 track.csv
  TRIPCUT_JUMP=5.0 tripcut -o /tmp/trips.geojson track.tsv
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)
		cmd.SilenceUsage = true

		config := params.DefaultConfig()
		config.GapInterval = viper.GetDuration("gap")
		config.JumpDistanceKm = viper.GetFloat64("jump")
		config.StrokeWidth = viper.GetFloat64("stroke-width")
		config.OutputPath = viper.GetString("output")

		result, err := api.Segment(args[0], config)
		if err != nil {
			return err
		}
		slog.Info("Wrote trips",
			"input", args[0],
			"output", result.OutputPath,
			"samples", result.Samples,
			"rejects", result.Rejects,
			"trips", result.Trips)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tripcut.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&optVerbose, "verbose", "v", false, "debug logging")

	rootCmd.Flags().Duration("gap", params.DefaultSegmenterConfig.GapInterval,
		"max time between consecutive samples in one trip")
	rootCmd.Flags().Float64("jump", params.DefaultSegmenterConfig.JumpDistanceKm,
		"max distance (km) between consecutive samples in one trip")
	rootCmd.Flags().StringP("output", "o", "",
		"output path (default: input path with .geojson extension)")
	rootCmd.Flags().Float64("stroke-width", params.DefaultExportConfig.StrokeWidth,
		"stroke width for trip features")

	viper.BindPFlag("gap", rootCmd.Flags().Lookup("gap"))
	viper.BindPFlag("jump", rootCmd.Flags().Lookup("jump"))
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("stroke-width", rootCmd.Flags().Lookup("stroke-width"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tripcut")
	}

	viper.SetEnvPrefix("tripcut")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("Using config file", "path", viper.ConfigFileUsed())
	}
}

func setDefaultSlog(cmd *cobra.Command, args []string) {
	level := slog.LevelInfo
	if optVerbose {
		level = slog.LevelDebug
	}
	slog.SetLogLoggerLevel(level)
}
