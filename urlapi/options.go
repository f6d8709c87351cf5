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
	"fmt"
	"strings"
)

// DefaultScheme is the scheme assumed when Options.AssumeDefaultScheme is set
// and the URL carries none.
const DefaultScheme = "https"

// Part identifies one component of a URL held by a Handle.
type Part int

// The parts of a URL. PartURL is the composite part: the whole serialized URL.
const (
	PartURL Part = iota
	PartScheme
	PartUser
	PartPassword
	PartOptions
	PartHost
	PartPort
	PartPath
	PartQuery
	PartFragment
)

var partNames = [...]string{
	PartURL:      "url",
	PartScheme:   "scheme",
	PartUser:     "user",
	PartPassword: "password",
	PartOptions:  "options",
	PartHost:     "host",
	PartPort:     "port",
	PartPath:     "path",
	PartQuery:    "query",
	PartFragment: "fragment",
}

// Parts lists the scalar parts in serialization order.
var Parts = []Part{
	PartScheme, PartUser, PartPassword, PartOptions, PartHost,
	PartPort, PartPath, PartQuery, PartFragment,
}

// String returns the lowercase name of the part.
func (p Part) String() string {
	if p < 0 || int(p) >= len(partNames) {
		return fmt.Sprintf("Part(%d)", int(p))
	}
	return partNames[p]
}

// ParsePart returns the Part named name, ignoring case.
func ParsePart(name string) (Part, error) {
	for i, n := range partNames {
		if strings.EqualFold(n, name) {
			return Part(i), nil
		}
	}
	return 0, &kindError{kind: ErrUnknownPart, details: name}
}

// Options is the set of behaviours callers can switch on for Parse, Get and
// Set. The zero value is the strict default. Each flag only affects the
// operations listed in its comment.
type Options struct {
	// AssumeDefaultScheme makes Parse accept a URL without a scheme, using
	// DefaultScheme, and makes Get report DefaultScheme for an unset scheme.
	AssumeDefaultScheme bool
	// SynthesizeDefaultPort makes Get(PartPort) and Get(PartURL) report the
	// scheme's registered default port when no port is stored.
	SynthesizeDefaultPort bool
	// SuppressDefaultPort makes Get(PartPort) and Get(PartURL) act as if no
	// port were stored when the stored port equals the scheme's default.
	SuppressDefaultPort bool
	// AllowUnregisteredScheme skips the scheme directory check on Parse and
	// on Set(PartScheme).
	AllowUnregisteredScheme bool
	// KeepPathAsIs disables dot-segment removal on Parse.
	KeepPathAsIs bool
	// DisallowUser makes Parse fail with ErrUserNotAllowed when the URL
	// embeds a user name.
	DisallowUser bool
	// VerifyOnly makes Parse and Set(PartURL) validate without producing or
	// modifying a Handle.
	VerifyOnly bool
	// URLDecode makes Get percent-decode scalar parts.
	URLDecode bool
}
