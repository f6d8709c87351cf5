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

// Package scheme provides the directory of URL schemes known to the urlapi
// parser, together with the default port of each scheme.
//
// The built-in directory is embedded at compile time from a record-jar file
// (the same "Field: value" / "%%" layout used by the IANA registries), so the
// package works without any external files. Custom directories can be loaded
// from any reader with ParseRegistry.
package scheme

import "strings"

// Registry holds the parsed scheme records, keyed by lowercase scheme name.
// A Registry is read-only once built and is safe for concurrent use.
type Registry struct {
	Records  map[string]Record
	FileDate string
}

// Record represents a single scheme entry of the registry.
type Record struct {
	Name        string   `json:"name"`
	Port        int      `json:"port,omitempty"`
	Description []string `json:"description,omitempty"`
	Comments    []string `json:"comments,omitempty"`
}

// HasDefaultPort reports whether the scheme defines a default port.
func (r *Record) HasDefaultPort() bool {
	return r.Port > 0
}

// Lookup returns the record registered for name. Scheme names compare
// case-insensitively, so "HTTP" and "http" find the same record.
func (r *Registry) Lookup(name string) (Record, bool) {
	if r == nil || name == "" {
		return Record{}, false
	}
	rec, ok := r.Records[strings.ToLower(name)]
	return rec, ok
}

// Names returns the registered scheme names in no particular order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Records))
	for name := range r.Records {
		names = append(names, name)
	}
	return names
}
