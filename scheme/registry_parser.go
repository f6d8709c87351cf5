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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	keyValParts = 2
	maxPort     = 0xffff
)

// Errors returned while parsing a registry file.
var (
	ErrMissingScheme   = errors.New("registry record has no Scheme field")
	ErrInvalidPort     = errors.New("registry record has an invalid Port field")
	ErrDuplicateScheme = errors.New("registry record repeats an already registered scheme")
)

// registryParser holds the state for parsing a registry file.
type registryParser struct {
	registry      *Registry
	currentFields map[string][]string
	lastFieldName string
}

// processLine handles a single line from the registry file.
func (p *registryParser) processLine(line string) error {
	if line == "%%" {
		if err := addRecordFromFields(p.registry, p.currentFields); err != nil {
			return err
		}
		p.currentFields = make(map[string][]string)
		p.lastFieldName = ""
		return nil
	}

	if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
		if p.lastFieldName != "" && len(p.currentFields[p.lastFieldName]) > 0 {
			lastIdx := len(p.currentFields[p.lastFieldName]) - 1
			p.currentFields[p.lastFieldName][lastIdx] += " " + strings.TrimSpace(line)
		}
		return nil
	}

	parts := strings.SplitN(line, ":", keyValParts)
	if len(parts) != keyValParts {
		return nil
	}

	fieldName, fieldBody := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if strings.EqualFold(fieldName, "File-Date") && len(p.registry.Records) == 0 {
		p.registry.FileDate = fieldBody
		return nil
	}

	fieldNameLower := strings.ToLower(fieldName)
	p.currentFields[fieldNameLower] = append(p.currentFields[fieldNameLower], fieldBody)
	p.lastFieldName = fieldNameLower
	return nil
}

// ParseRegistry reads a scheme registry in record-jar format from r and
// returns the populated Registry. Records are separated by "%%" lines; each
// record needs a Scheme field and may carry Port, Description and Comments.
func ParseRegistry(r io.Reader) (*Registry, error) {
	scanner := bufio.NewScanner(r)
	p := &registryParser{
		registry: &Registry{
			Records: make(map[string]Record),
		},
		currentFields: make(map[string][]string),
	}

	for scanner.Scan() {
		if err := p.processLine(scanner.Text()); err != nil {
			return nil, err
		}
	}

	if err := addRecordFromFields(p.registry, p.currentFields); err != nil {
		return nil, err
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p.registry, nil
}

// addRecordFromFields builds a record from the collected fields and adds it
// to the registry.
func addRecordFromFields(registry *Registry, fields map[string][]string) error {
	if len(fields) == 0 {
		return nil
	}
	record, err := buildRecord(fields)
	if err != nil {
		return err
	}
	key := strings.ToLower(record.Name)
	if _, exists := registry.Records[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateScheme, record.Name)
	}
	registry.Records[key] = record
	return nil
}

// buildRecord converts the raw fields of one record into a Record.
func buildRecord(fields map[string][]string) (Record, error) {
	name := getFirst(fields, "scheme")
	if name == "" {
		return Record{}, ErrMissingScheme
	}
	record := Record{
		Name:        name,
		Description: fields["description"],
		Comments:    fields["comments"],
	}
	if port := getFirst(fields, "port"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 0 || n > maxPort {
			return Record{}, fmt.Errorf("%w: %q for scheme %q", ErrInvalidPort, port, name)
		}
		record.Port = n
	}
	return record, nil
}

// getFirst returns the first value of a field, or "" if absent.
func getFirst(fields map[string][]string, key string) string {
	if values, ok := fields[key]; ok && len(values) > 0 {
		return values[0]
	}
	return ""
}
