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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jplu/urlkit/urlapi"
	"github.com/spf13/cobra"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

func newParseCmd(a *app) *cobra.Command {
	var asJSON, asYAML, verify bool
	cmd := &cobra.Command{
		Use:   "parse <url>",
		Short: "Parse a URL and print its parts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.options()
			opts.VerifyOnly = verify
			h, err := a.cfg.Parse(args[0], opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if verify {
				fmt.Fprintln(out, "ok")
				return nil
			}
			defer h.Release()

			parts, err := collectParts(h, opts)
			if err != nil {
				return err
			}
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(parts)
			case asYAML:
				enc := yaml.NewEncoder(out)
				defer enc.Close()
				return enc.Encode(parts)
			}
			for _, p := range printedParts {
				if v, ok := parts[p.String()]; ok {
					fmt.Fprintf(out, "%s: %s\n", p, v)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the parts as a JSON object")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the parts as a YAML mapping")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
	cmd.Flags().BoolVar(&verify, "verify", false, "Only check that the URL parses")
	return cmd
}

// printedParts lists the scalar parts followed by the whole URL.
var printedParts = append(urlapi.Parts[:len(urlapi.Parts):len(urlapi.Parts)], urlapi.PartURL)

// collectParts reads every part of h that is set. The missing-part errors
// are expected and skipped.
func collectParts(h *urlapi.Handle, opts urlapi.Options) (map[string]string, error) {
	parts := make(map[string]string, len(printedParts))
	for _, p := range printedParts {
		v, err := h.Get(p, opts)
		switch {
		case err == nil:
			parts[p.String()] = v
		case isMissing(err):
		default:
			return nil, fmt.Errorf("failed to get %s: %w", p, err)
		}
	}
	return parts, nil
}

var missingErrors = []error{
	urlapi.ErrNoScheme, urlapi.ErrNoUser, urlapi.ErrNoPassword, urlapi.ErrNoOptions,
	urlapi.ErrNoHost, urlapi.ErrNoPort, urlapi.ErrNoPath, urlapi.ErrNoQuery, urlapi.ErrNoFragment,
}

func isMissing(err error) bool {
	for _, m := range missingErrors {
		if errors.Is(err, m) {
			return true
		}
	}
	return false
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <url> <part>",
		Short: "Print one part of a URL",
		Long:  "Print one part of a URL. Parts are: url, scheme, user, password, options, host, port, path, query, fragment.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			part, err := urlapi.ParsePart(args[1])
			if err != nil {
				return err
			}
			opts := a.options()
			h, err := a.cfg.Parse(args[0], opts)
			if err != nil {
				return err
			}
			defer h.Release()

			v, err := h.Get(part, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <url> <part>=<value>...",
		Short: "Change parts of a URL and print the result",
		Long: "Change parts of a URL in the order given and print the result. " +
			"Setting url to a relative reference resolves it against the current URL.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.options()
			h, err := a.cfg.Parse(args[0], opts)
			if err != nil {
				return err
			}
			defer h.Release()

			for _, arg := range args[1:] {
				name, value, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("expected <part>=<value>, got %q", arg)
				}
				part, err := urlapi.ParsePart(name)
				if err != nil {
					return err
				}
				if err := h.Set(part, value, opts); err != nil {
					return fmt.Errorf("failed to set %s: %w", part, err)
				}
				a.log.Debug().Stringer("part", part).Str("value", value).Msg("Set part")
			}

			v, err := h.Get(urlapi.PartURL, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <base> <ref>",
		Short: "Resolve a reference against a base URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			joined := urlapi.Resolve(args[0], args[1])
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, joined)

			opts := a.options()
			h, err := a.cfg.Parse(joined, opts)
			if err != nil {
				return err
			}
			defer h.Release()

			v, err := h.Get(urlapi.PartURL, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, v)
			return nil
		},
	}
}

func newEscapeCmd(a *app) *cobra.Command {
	var relative bool
	cmd := &cobra.Command{
		Use:   "escape [string]",
		Short: "Percent-encode a URL or, without argument, standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				a.log.Debug().Msg("Escaping standard input")
				_, err := io.Copy(out, transform.NewReader(cmd.InOrStdin(), urlapi.NewEscaper()))
				return err
			}
			fmt.Fprintln(out, urlapi.Escape(args[0], relative))
			fmt.Fprintln(out, urlapi.EscapedLen(args[0], relative))
			return nil
		},
	}
	cmd.Flags().BoolVar(&relative, "relative", false, "Escape the host part too")
	return cmd
}
