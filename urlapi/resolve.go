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

import "strings"

// isAbsoluteURL reports whether s starts with a scheme of at most 15 bytes
// followed by "://" and at least one more byte.
func isAbsoluteURL(s string) bool {
	in := newParserInput(s)
	name := in.takeWhile(maxSchemeLen, func(c byte) bool {
		return c != '?' && c != '&' && c != '/' && c != ':'
	})
	rest := in.asStr()
	return name != "" && strings.HasPrefix(rest, "://") && len(rest) > len("://")
}

// Resolve joins the relative reference ref to the absolute URL base the way
// an HTTP redirect is followed. Leading "./" and "../" segments of ref climb
// the base path, never above its root, and spaces and unsafe bytes of ref
// are escaped before it is appended.
func Resolve(base, ref string) string {
	// hostStart is the offset of the host in base.
	hostStart := 0
	if i := strings.Index(base, "//"); i >= 0 {
		hostStart = i + 2
	}

	u := base
	rest := ref
	hostChanged := false
	// sep is the offset after which nothing is left of base to separate
	// from rest, or -1.
	sep := -1

	if !strings.HasPrefix(ref, "/") {
		if i := strings.IndexByte(u[hostStart:], '?'); i >= 0 {
			u = u[:hostStart+i]
		}
		if !strings.HasPrefix(ref, "?") {
			if i := strings.LastIndexByte(u[hostStart:], '/'); i >= 0 {
				u = u[:hostStart+i]
			}
		}
		if i := strings.IndexByte(u[hostStart:], '/'); i >= 0 {
			sep = hostStart + i + 1
		}

		rest = strings.TrimPrefix(rest, "./")
		level := 0
		for strings.HasPrefix(rest, "../") {
			level++
			rest = rest[3:]
		}

		if sep >= 0 {
			for ; level > 0; level-- {
				i := strings.LastIndexByte(u[sep:], '/')
				if i < 0 {
					u = u[:sep]
					break
				}
				u = u[:sep+i]
			}
		}
	} else {
		sep = hostStart
		if strings.HasPrefix(ref, "//") {
			u = u[:hostStart]
			rest = ref[2:]
			hostChanged = true
		} else {
			end := len(u)
			if i := strings.IndexByte(u[hostStart:], '/'); i >= 0 {
				end = hostStart + i
			}
			if i := strings.IndexByte(u[hostStart:], '?'); i >= 0 && hostStart+i < end {
				end = hostStart + i
			}
			u = u[:end]
		}
	}

	var b strings.Builder
	b.Grow(len(u) + 1 + EscapedLen(rest, !hostChanged))
	b.WriteString(u)
	if !strings.HasPrefix(rest, "/") && !strings.HasPrefix(rest, "?") && (sep < 0 || len(u) != sep) {
		b.WriteByte('/')
	}
	b.WriteString(Escape(rest, !hostChanged))
	return b.String()
}
