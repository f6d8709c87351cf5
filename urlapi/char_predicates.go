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

// isASCIILetter checks if a byte is an ASCII letter.
func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isASCIIDigit checks if a byte is an ASCII digit.
func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isASCIIHexDigit checks if a byte is an ASCII hexadecimal digit.
func isASCIIHexDigit(c byte) bool {
	return isASCIIDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isControl(c byte) bool {
	return c < 0x20 || c == 0x7f
}

// isSpace matches the C locale whitespace set.
func isSpace(c byte) bool {
	return c == ' ' || ('\t' <= c && c <= '\r')
}

// isGraphic checks for printable ASCII other than space.
func isGraphic(c byte) bool {
	return c > ' ' && c < 0x7f
}

// isHostnameChar is the character set of a registered (non-bracketed) host name.
func isHostnameChar(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '-' || c == '.'
}

// isIPv6LiteralChar is the character set allowed between '[' and ']'.
func isIPv6LiteralChar(c byte) bool {
	return isASCIIHexDigit(c) || c == ':' || c == '.'
}

// isHostSegmentChar matches the bytes that can appear before the path:
// everything up to '/', '?' or '#'.
func isHostSegmentChar(c byte) bool {
	return c != '/' && c != '?' && c != '#'
}

// hasPrefixFold is strings.HasPrefix with ASCII case folding.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
