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

package scheme

import (
	"bytes"
	_ "embed" // Note the blank import for go:embed
	"errors"
	"sync"
)

//go:embed scheme-registry
var embeddedRegistryData []byte

var (
	builtinOnce     sync.Once
	builtinRegistry *Registry
	errBuiltin      error
)

// NewRegistry parses the embedded scheme registry and returns a fresh
// Registry. Each call parses the data again; use Builtin to share one
// instance.
func NewRegistry() (*Registry, error) {
	if len(embeddedRegistryData) == 0 {
		return nil, errors.New("embedded scheme-registry file is empty or not found")
	}
	return ParseRegistry(bytes.NewReader(embeddedRegistryData))
}

// Builtin returns the shared Registry built from the embedded data. The
// embedded file ships with the package, so a parse failure is a build defect
// and Builtin panics on it.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		builtinRegistry, errBuiltin = NewRegistry()
	})
	if errBuiltin != nil {
		panic("scheme: " + errBuiltin.Error())
	}
	return builtinRegistry
}
