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
	"strconv"
	"strings"
)

// maxIPv6LiteralLen bounds the text accepted between '[' and ']'.
const maxIPv6LiteralLen = 45

// authority is the host segment of a URL once login and port are split off.
type authority struct {
	login   loginDetails
	host    string
	port    string
	portNum int
	hasPort bool
}

// parseAuthority splits "[login@]host[:port]" and validates each piece in
// turn: login first, then the port, then the host name characters.
func parseAuthority(segment string, opts Options) (authority, error) {
	var a authority

	host := segment
	if i := strings.IndexByte(segment, '@'); i >= 0 {
		login, err := splitLogin(segment[:i])
		if err != nil {
			return authority{}, err
		}
		if login.user != "" && opts.DisallowUser {
			return authority{}, &kindError{kind: ErrUserNotAllowed, details: login.user}
		}
		a.login = login
		host = segment[i+1:]
	}

	host, port, err := splitPort(host)
	if err != nil {
		return authority{}, err
	}
	if port != "" {
		n, err := parsePortNumber(port)
		if err != nil {
			return authority{}, err
		}
		a.port = strconv.Itoa(n)
		a.portNum = n
		a.hasPort = true
	}

	if err := checkHostname(host); err != nil {
		return authority{}, err
	}
	a.host = host
	return a, nil
}

// bracketedLiteralEnd returns the offset just past the ']' closing an IPv6
// literal at the start of host, or -1 if host does not start with one.
func bracketedLiteralEnd(host string) int {
	if !strings.HasPrefix(host, "[") {
		return -1
	}
	in := newParserInput(host[1:])
	lit := in.takeWhile(maxIPv6LiteralLen, isIPv6LiteralChar)
	if lit == "" || !in.consume(']') {
		return -1
	}
	return in.position() + 1
}

// splitPort separates the host from a trailing ":port". An empty port text
// means the colon is dropped and no port is set.
func splitPort(host string) (string, string, error) {
	sep := -1
	if strings.HasPrefix(host, "[") {
		end := bracketedLiteralEnd(host)
		if end < 0 {
			return "", "", &kindError{kind: ErrMalformedInput, details: "unmatched IPv6 bracket"}
		}
		if end < len(host) {
			if host[end] != ':' {
				return "", "", &kindError{kind: ErrMalformedInput, char: host[end]}
			}
			sep = end
		}
	} else {
		sep = strings.IndexByte(host, ':')
	}

	if sep < 0 {
		return host, "", nil
	}
	return host[:sep], host[sep+1:], nil
}

// parsePortNumber accepts a decimal port number in the range 1..65535.
func parsePortNumber(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if !isASCIIDigit(s[i]) {
			return 0, &kindError{kind: ErrBadPortNumber, details: s}
		}
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil || n == 0 {
		return 0, &kindError{kind: ErrBadPortNumber, details: s}
	}
	return int(n), nil
}

// checkHostname restricts a bracketed host to IPv6 literal characters and
// any other host to letters, digits, '-' and '.'.
func checkHostname(host string) error {
	valid := isHostnameChar
	text := host
	if strings.HasPrefix(host, "[") {
		valid = isIPv6LiteralChar
		text = strings.TrimSuffix(host[1:], "]")
	}
	for i := 0; i < len(text); i++ {
		if !valid(text[i]) {
			return &kindError{kind: ErrMalformedInput, char: text[i]}
		}
	}
	return nil
}
