/*
Copyright 2025 Trident Authors

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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jplu/urlkit/scheme"
	"github.com/jplu/urlkit/urlapi"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "URLAPI"

// Flag names, also used as viper keys.
const (
	flagDefaultScheme    = "default-scheme"
	flagDefaultPort      = "default-port"
	flagNoDefaultPort    = "no-default-port"
	flagNonSupportScheme = "non-support-scheme"
	flagPathAsIs         = "path-as-is"
	flagDisallowUser     = "disallow-user"
	flagURLDecode        = "urldecode"
	flagSchemes          = "schemes"
	flagLogLevel         = "log-level"
	flagConfig           = "config"
)

// app is the state shared by the subcommands once the root command has
// read its configuration.
type app struct {
	v   *viper.Viper
	cfg *urlapi.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:          "urlapi",
		Short:        "Parse, inspect, edit and resolve URLs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	addOptionFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().String(flagSchemes, "", "Load the scheme directory from a record-jar `file`")
	cmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().String(flagConfig, "", "Read flag values from a config `file`")

	cmd.AddCommand(
		newParseCmd(a),
		newGetCmd(a),
		newSetCmd(a),
		newResolveCmd(a),
		newEscapeCmd(a),
	)
	return cmd
}

func addOptionFlags(fs *pflag.FlagSet) {
	fs.Bool(flagDefaultScheme, false, "Assume "+urlapi.DefaultScheme+" when the URL has no scheme")
	fs.Bool(flagDefaultPort, false, "Report the scheme's default port when none is set")
	fs.Bool(flagNoDefaultPort, false, "Hide a port equal to the scheme's default")
	fs.Bool(flagNonSupportScheme, false, "Accept schemes missing from the scheme directory")
	fs.Bool(flagPathAsIs, false, "Keep \".\" and \"..\" path segments")
	fs.Bool(flagDisallowUser, false, "Refuse URLs carrying a user name")
	fs.Bool(flagURLDecode, false, "Percent-decode the parts that are printed")
}

// setup binds flags, environment and config file into viper, then builds
// the logger and the urlapi configuration.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if file := a.v.GetString(flagConfig); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", file, err)
		}
	}

	level, err := zerolog.ParseLevel(a.v.GetString(flagLogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	a.log = zerolog.New(newConsoleWriter(cmd.ErrOrStderr())).Level(level).With().Timestamp().Logger()

	a.cfg = &urlapi.Config{Logger: &a.log}
	if file := a.v.GetString(flagSchemes); file != "" {
		reg, err := loadSchemes(file)
		if err != nil {
			return err
		}
		a.cfg.Schemes = reg
		a.log.Debug().Str("file", file).Int("schemes", len(reg.Records)).Msg("Loaded scheme directory")
	}
	return nil
}

// newConsoleWriter formats log messages as plain text for the console.
func newConsoleWriter(w io.Writer) *zerolog.ConsoleWriter {
	return &zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i interface{}) string {
			if ll, ok := i.(string); ok {
				return strings.ToUpper(ll)
			}
			return "????"
		},
	}
}

func loadSchemes(file string) (*scheme.Registry, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reg, err := scheme.ParseRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scheme directory %s: %w", file, err)
	}
	return reg, nil
}

// options maps the option flags to urlapi.Options.
func (a *app) options() urlapi.Options {
	return urlapi.Options{
		AssumeDefaultScheme:     a.v.GetBool(flagDefaultScheme),
		SynthesizeDefaultPort:   a.v.GetBool(flagDefaultPort),
		SuppressDefaultPort:     a.v.GetBool(flagNoDefaultPort),
		AllowUnregisteredScheme: a.v.GetBool(flagNonSupportScheme),
		KeepPathAsIs:            a.v.GetBool(flagPathAsIs),
		DisallowUser:            a.v.GetBool(flagDisallowUser),
		URLDecode:               a.v.GetBool(flagURLDecode),
	}
}
