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

const fileScheme = "file"

// Host names accepted in the authority of a file: URL, with their slash.
var localFileHosts = []string{"localhost/", "127.0.0.1/"}

// startsWithURLDrivePrefix reports whether s starts with a drive letter
// such as "c:" or "c|" followed by a slash, a backslash or the end.
func startsWithURLDrivePrefix(s string) bool {
	if len(s) < 2 || !isASCIILetter(s[0]) || (s[1] != ':' && s[1] != '|') {
		return false
	}
	return len(s) == 2 || s[2] == '/' || s[2] == '\\'
}

// hasDrivePrefix matches both "c:..." and "/c:...".
func hasDrivePrefix(path string) bool {
	return startsWithURLDrivePrefix(path) ||
		(strings.HasPrefix(path, "/") && startsWithURLDrivePrefix(path[1:]))
}

// parseFilePath returns the path-remainder of a file: URL. The authority
// form is only accepted for an empty host, "localhost" or "127.0.0.1".
func parseFilePath(url string) (string, error) {
	path := url[strings.IndexByte(url, ':')+1:]
	if path == "" {
		return "", &kindError{kind: ErrMalformedInput, details: "empty file path"}
	}

	if rest, ok := strings.CutPrefix(path, "//"); ok {
		if !strings.HasPrefix(rest, "/") && !startsWithURLDrivePrefix(rest) {
			local := false
			for _, h := range localFileHosts {
				if hasPrefixFold(rest, h) {
					local = true
					rest = rest[len(h)-1:]
					break
				}
			}
			if !local {
				return "", &kindError{kind: ErrMalformedInput, details: "non-local file host"}
			}
		}
		path = rest
	}

	return adjustDrivePath(path)
}
