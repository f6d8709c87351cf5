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

package urlapi

import (
	"io"
	"sync"

	"github.com/jplu/urlkit/scheme"
	"github.com/rs/zerolog"
)

// SchemeDirectory maps a scheme name to its registration. Lookups must be
// case-insensitive. *scheme.Registry satisfies it.
type SchemeDirectory interface {
	Lookup(name string) (scheme.Record, bool)
}

// Config holds the collaborators shared by the handles it creates. The zero
// value uses the built-in scheme registry and discards log output. A Config
// must not be copied after first use.
type Config struct {
	// Schemes is consulted to validate schemes and find default ports.
	Schemes SchemeDirectory
	// Logger, when set, receives debug events about rejected URLs.
	Logger *zerolog.Logger
	// LogOutput is used to build a logger when Logger is nil.
	LogOutput io.Writer

	logger      zerolog.Logger
	initLogOnce sync.Once
}

var defaultConfig = &Config{}

// Log returns the logger of the configuration, initializing it lazily.
func (c *Config) Log() *zerolog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	c.initLogOnce.Do(func() {
		if c.LogOutput == nil {
			c.logger = zerolog.Nop()
			return
		}
		c.logger = zerolog.New(c.LogOutput).With().Timestamp().Logger()
	})
	return &c.logger
}

func (c *Config) schemes() SchemeDirectory {
	if c.Schemes != nil {
		return c.Schemes
	}
	return scheme.Builtin()
}

// lookupScheme asks the directory for name. It is called on every use so a
// changed scheme or directory is always honoured.
func (c *Config) lookupScheme(name string) (scheme.Record, bool) {
	if name == "" {
		return scheme.Record{}, false
	}
	return c.schemes().Lookup(name)
}
