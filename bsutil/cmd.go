/*
Copyright © 2026 the backscatter authors.
This file is part of backscatter.

backscatter is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

backscatter is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with backscatter.  If not, see <http://www.gnu.org/licenses/>.
*/

package bsutil

import (
	"fmt"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/backscatter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to backscatter.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel sets the logging verbosity: one of panic, fatal, error,
              warning, info or debug.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Calibration",
			usage: `
              Calibration is the name of the cosine-model parameter set
              to use for the bare-soil backscatter. Run 'backscatter calibrations'
              to list the available parameter sets.`,
			shorthand:  "c",
			defaultVal: backscatter.DefaultCalibration,
			flagsets:   []*pflag.FlagSet{cloudCmd.Flags(), soilCmd.Flags()},
		},
		{
			name: "CalibrationFile",
			usage: `
              CalibrationFile is the path to an optional TOML file holding
              additional calibrations, in tables named [Calibration.<name>]
              with keys FrequencyGHz, Polarization, C1, C2, C3 and D.
              It can include environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{cloudCmd.Flags(), soilCmd.Flags(), calibrationsCmd.Flags()},
		},
		{
			name: "Angles.Min",
			usage: `
              Angles.Min is the smallest incidence angle to evaluate, in degrees.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{cloudCmd.Flags(), soilCmd.Flags()},
		},
		{
			name: "Angles.Max",
			usage: `
              Angles.Max is the largest incidence angle to evaluate, in degrees.`,
			defaultVal: 89.0,
			flagsets:   []*pflag.FlagSet{cloudCmd.Flags(), soilCmd.Flags()},
		},
		{
			name: "Angles.N",
			usage: `
              Angles.N is the number of evenly spaced incidence angles between
              Angles.Min and Angles.Max, inclusive.`,
			defaultVal: 89,
			flagsets:   []*pflag.FlagSet{cloudCmd.Flags(), soilCmd.Flags()},
		},
		{
			name: "Angles.Degrees",
			usage: `
              Angles.Degrees is an explicit list of incidence angles in degrees,
              for example '[20, 30, 40]'. If set, it replaces Angles.Min,
              Angles.Max and Angles.N.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{cloudCmd.Flags(), soilCmd.Flags()},
		},
		{
			name: "SMC",
			usage: `
              SMC is the volumetric soil moisture content in percent.`,
			defaultVal: 20.0,
			flagsets:   []*pflag.FlagSet{cloudCmd.Flags(), soilCmd.Flags()},
		},
		{
			name: "Alpha",
			usage: `
              Alpha is the single-scattering albedo of the vegetation layer,
              between 0 and 1.`,
			defaultVal: 0.1,
			flagsets:   []*pflag.FlagSet{cloudCmd.Flags()},
		},
		{
			name: "Tau",
			usage: `
              Tau is the optical depth of the vegetation layer. Zero means
              no vegetation.`,
			defaultVal: 0.1,
			flagsets:   []*pflag.FlagSet{cloudCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path to the desired output file location. The
              format is chosen from the extension: .csv, .xlsx, .png, .svg or .pdf.
              It can include environment variables.`,
			shorthand:  "o",
			defaultVal: "backscatter.csv",
			flagsets:   []*pflag.FlagSet{cloudCmd.Flags(), soilCmd.Flags()},
		},
		{
			name: "PlotWidth",
			usage: `
              PlotWidth is the width of plot output, in inches.`,
			defaultVal: 6.0,
			flagsets:   []*pflag.FlagSet{cloudCmd.Flags(), soilCmd.Flags()},
		},
		{
			name: "PlotHeight",
			usage: `
              PlotHeight is the height of plot output, in inches.`,
			defaultVal: 4.0,
			flagsets:   []*pflag.FlagSet{cloudCmd.Flags(), soilCmd.Flags()},
		},
	}

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
		}
	}
	Cfg = newConfig()
}

// newConfig returns a configuration bound to the command-line flags
// and to environment variables prefixed with BACKSCATTER_.
func newConfig() *viper.Viper {
	cfg := viper.New()

	// Set the prefix for configuration environment variables.
	cfg.SetEnvPrefix("BACKSCATTER")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	for _, option := range options {
		cfg.BindPFlag(option.name, option.flagsets[0].Lookup(option.name))
	}
	return cfg
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(cloudCmd)
	Root.AddCommand(soilCmd)
	Root.AddCommand(calibrationsCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(expandPath(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("bsutil: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "backscatter",
	Short: "Radar backscatter of vegetated soil.",
	Long: `backscatter computes radar backscatter coefficients for vegetation-covered
soil using an empirical cosine-law bare-soil model and a water-cloud model of
the vegetation layer. Use the subcommands specified below to access the
model functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'BACKSCATTER_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of backscatter.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "backscatter v%s\n", backscatter.Version)
	},
	DisableAutoGenTag: true,
}

// cloudCmd is a command that evaluates the water-cloud model.
var cloudCmd = &cobra.Command{
	Use:   "cloud",
	Short: "Calculate vegetated-soil backscatter.",
	Long: `cloud calculates the canopy, volume and soil backscatter of soil
covered by a vegetation layer across a range of incidence angles,
and writes the result to OutputFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(Cfg.GetString("LogLevel"), cmd.OutOrStderr())
		if err != nil {
			return err
		}
		s, err := ScenarioConfig(Cfg)
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		size, err := plotSize(Cfg)
		if err != nil {
			return err
		}
		return Cloud(log, s, outputFile, size)
	},
	DisableAutoGenTag: true,
}

// soilCmd is a command that evaluates the bare-soil model.
var soilCmd = &cobra.Command{
	Use:   "soil",
	Short: "Calculate bare-soil backscatter.",
	Long: `soil calculates the backscatter of bare soil across a range of
incidence angles and writes the result to OutputFile. Alpha and Tau
are not used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(Cfg.GetString("LogLevel"), cmd.OutOrStderr())
		if err != nil {
			return err
		}
		s, err := ScenarioConfig(Cfg)
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		size, err := plotSize(Cfg)
		if err != nil {
			return err
		}
		return BareSoil(log, s, outputFile, size)
	},
	DisableAutoGenTag: true,
}

// calibrationsCmd lists the available calibrations.
var calibrationsCmd = &cobra.Command{
	Use:   "calibrations",
	Short: "List the available calibrations.",
	Long: `calibrations lists the built-in cosine-model calibrations and any
additional calibrations in CalibrationFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cals, err := CalibrationsConfig(Cfg)
		if err != nil {
			return err
		}
		return ListCalibrations(cmd.OutOrStdout(), cals)
	},
	DisableAutoGenTag: true,
}
