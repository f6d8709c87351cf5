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
	"bytes"
	"strings"
)

// RemoveDotSegments implements the "Remove Dot Segments" algorithm from
// RFC 3986, Section 5.2.4. It normalizes a path by resolving "." and ".."
// segments; climbing above the root stops at the root.
func RemoveDotSegments(path string) string {
	in := path
	out := make([]byte, 0, len(path))

	for in != "" {
		switch {
		// Rule 2A: "../" or "./"
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		// Rule 2B: "/./" or "/."
		case strings.HasPrefix(in, "/./"):
			in = in[2:]
		case in == "/.":
			in = "/"
		// Rule 2C: "/../" or "/.."
		case strings.HasPrefix(in, "/../"):
			in = in[3:]
			out = dropLastSegment(out)
		case in == "/..":
			in = "/"
			out = dropLastSegment(out)
		// Rule 2D: "." or ".."
		case in == "." || in == "..":
			in = ""
		// Rule 2E: move the first segment, with its leading '/', to the output.
		default:
			end := len(in)
			if i := strings.IndexByte(in[1:], '/'); i >= 0 {
				end = i + 1
			}
			out = append(out, in[:end]...)
			in = in[end:]
		}
	}

	return string(out)
}

// dropLastSegment removes the last segment and its preceding '/' from out.
func dropLastSegment(out []byte) []byte {
	if i := bytes.LastIndexByte(out, '/'); i >= 0 {
		return out[:i]
	}
	return out[:0]
}
