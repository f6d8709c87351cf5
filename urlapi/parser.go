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

const (
	maxSchemeLen     = 15
	schemeScanWindow = 16
	maxSchemeSlashes = 3
)

// urlParser holds the state of a single parse. Nothing in it outlives the
// call to run.
type urlParser struct {
	cfg   *Config
	opts  Options
	input *parserInput
}

// parse turns s into its components, or fails without producing any.
func (c *Config) parse(s string, opts Options) (components, error) {
	p := &urlParser{cfg: c, opts: opts, input: newParserInput("")}
	return p.run(s)
}

// hasScheme looks for a ':' before any '/' in the first bytes of url.
func hasScheme(url string) bool {
	for i := 0; i < len(url) && i < schemeScanWindow; i++ {
		switch url[i] {
		case '/':
			return false
		case ':':
			return true
		}
	}
	return false
}

func (p *urlParser) run(url string) (components, error) {
	if i := strings.IndexByte(url, '\n'); i >= 0 {
		url = url[:i]
	}
	if strings.HasPrefix(url, ":") {
		return components{}, &kindError{kind: ErrMalformedInput, char: ':'}
	}

	var (
		c             components
		segment, rest string
		err           error
	)
	isFile := hasScheme(url) && hasPrefixFold(url, fileScheme+":")
	if isFile {
		rest, err = parseFilePath(url)
		if err != nil {
			return components{}, err
		}
		c.scheme = ptr(fileScheme)
	} else {
		var name string
		name, segment, rest, err = p.splitGeneric(url)
		if err != nil {
			return components{}, err
		}
		if !p.opts.AllowUnregisteredScheme {
			if _, ok := p.cfg.lookupScheme(name); !ok {
				return components{}, &kindError{kind: ErrUnsupportedScheme, details: name}
			}
		}
		c.scheme = ptr(name)
	}

	p.splitPathRemainder(&c, Escape(rest, true))

	if isFile {
		return c, nil
	}

	a, err := parseAuthority(segment, p.opts)
	if err != nil {
		return components{}, err
	}
	c.user = nonEmpty(a.login.user)
	c.password = nonEmpty(a.login.password)
	c.options = nonEmpty(a.login.options)
	c.host = ptr(a.host)
	if a.hasPort {
		c.port = ptr(a.port)
		c.portNum = a.portNum
	}
	return c, nil
}

// splitGeneric scans "scheme:" followed by one to three slashes, the host
// segment and the path-remainder. Without a scheme the whole input is taken
// as host and path, provided the default scheme may be assumed.
func (p *urlParser) splitGeneric(url string) (name, segment, rest string, err error) {
	in := p.input
	in.reset(url)

	name = in.takeWhile(maxSchemeLen, func(c byte) bool { return c != '/' && c != ':' })
	if name != "" && in.consume(':') {
		slashes := in.takeWhile(maxSchemeSlashes, func(c byte) bool { return c == '/' })
		if slashes != "" {
			segment = in.takeWhile(0, isHostSegmentChar)
			if segment == "" {
				return "", "", "", &kindError{kind: ErrMalformedInput, details: "no host"}
			}
			return name, segment, in.asStr(), nil
		}
	}

	if !p.opts.AssumeDefaultScheme {
		return "", "", "", &kindError{kind: ErrMalformedInput, details: "no scheme"}
	}
	in.reset(url)
	segment = in.takeWhile(0, isHostSegmentChar)
	if segment == "" {
		return "", "", "", &kindError{kind: ErrMalformedInput, details: "no host"}
	}
	return DefaultScheme, segment, in.asStr(), nil
}

// splitPathRemainder stores path, query and fragment. The fragment is
// looked for after the query marker when there is one.
func (p *urlParser) splitPathRemainder(c *components, rest string) {
	path, query, hasQuery := strings.Cut(rest, "?")
	if hasQuery {
		var fragment string
		query, fragment, _ = strings.Cut(query, "#")
		c.fragment = nonEmpty(fragment)
	} else {
		var fragment string
		path, fragment, _ = strings.Cut(path, "#")
		c.fragment = nonEmpty(fragment)
	}
	c.query = nonEmpty(query)

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if !p.opts.KeepPathAsIs {
		path = RemoveDotSegments(path)
	}
	c.path = ptr(path)
}

func ptr(s string) *string {
	return &s
}

// nonEmpty returns nil for an empty string.
func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
