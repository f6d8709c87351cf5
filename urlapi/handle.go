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

// Package urlapi parses URLs into their components, lets callers read and
// change each component, and writes them back out as a URL string.
//
// The parser accepts the loose forms found in real redirects:
//   - a missing scheme can be replaced by DefaultScheme
//   - one to three slashes are accepted after "scheme:"
//   - a missing path becomes "/" and "." and ".." segments are removed
//   - a colon without a port number is ignored
//
// A Handle holds the components. It is created by Parse (or New for an empty
// one), read with Get, changed with Set and Clear, copied with Clone and
// dropped with Release. Setting PartURL to a relative reference resolves it
// against the current URL, the way a redirect is followed.
//
// Scheme validation and default ports come from a SchemeDirectory, by
// default the embedded registry of package scheme.
package urlapi

import (
	"encoding/json"
	"strconv"
)

// components are the stored parts of a URL. A nil field is unset.
type components struct {
	scheme   *string
	user     *string
	password *string
	options  *string
	host     *string
	port     *string
	path     *string
	query    *string
	fragment *string
	portNum  int
}

// field returns the storage of a scalar part and the error Get reports
// when it is unset.
func (c *components) field(p Part) (**string, error) {
	switch p {
	case PartScheme:
		return &c.scheme, ErrNoScheme
	case PartUser:
		return &c.user, ErrNoUser
	case PartPassword:
		return &c.password, ErrNoPassword
	case PartOptions:
		return &c.options, ErrNoOptions
	case PartHost:
		return &c.host, ErrNoHost
	case PartPort:
		return &c.port, ErrNoPort
	case PartPath:
		return &c.path, ErrNoPath
	case PartQuery:
		return &c.query, ErrNoQuery
	case PartFragment:
		return &c.fragment, ErrNoFragment
	default:
		return nil, &kindError{kind: ErrUnknownPart, details: p.String()}
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func (c *components) clone() components {
	return components{
		scheme:   cloneString(c.scheme),
		user:     cloneString(c.user),
		password: cloneString(c.password),
		options:  cloneString(c.options),
		host:     cloneString(c.host),
		port:     cloneString(c.port),
		path:     cloneString(c.path),
		query:    cloneString(c.query),
		fragment: cloneString(c.fragment),
		portNum:  c.portNum,
	}
}

// Handle holds the parsed components of one URL. The zero value is an
// empty handle using the default configuration. A Handle is not safe for
// concurrent use.
type Handle struct {
	c        components
	cfg      *Config
	released bool
}

// Parse parses url with the default configuration.
func Parse(url string, opts Options) (*Handle, error) {
	return defaultConfig.Parse(url, opts)
}

// New returns an empty handle using the default configuration.
func New() *Handle {
	return defaultConfig.New()
}

// Parse parses url into a new Handle. On failure no handle is returned and
// the error is a *ParseError. With opts.VerifyOnly the URL is only checked
// and Parse returns (nil, nil) on success.
func (c *Config) Parse(url string, opts Options) (*Handle, error) {
	comps, err := c.parse(url, opts)
	if err != nil {
		c.Log().Debug().Err(err).Str("url", url).Msg("rejected URL")
		return nil, newParseError(err)
	}
	if opts.VerifyOnly {
		return nil, nil
	}
	return &Handle{c: comps, cfg: c}, nil
}

// New returns an empty handle bound to c.
func (c *Config) New() *Handle {
	return &Handle{cfg: c}
}

func (h *Handle) config() *Config {
	if h.cfg == nil {
		return defaultConfig
	}
	return h.cfg
}

func (h *Handle) check() error {
	if h == nil || h.released {
		return ErrBadHandle
	}
	return nil
}

// Get returns the value of part. An unset part yields the part's missing
// error, such as ErrNoQuery. PartURL serializes the whole URL and needs a
// host.
func (h *Handle) Get(part Part, opts Options) (string, error) {
	if err := h.check(); err != nil {
		return "", err
	}

	var (
		v   string
		err error
	)
	switch part {
	case PartURL:
		return h.url(opts)
	case PartPort:
		var ok bool
		v, ok = h.effectivePort(h.c.scheme, opts)
		if !ok {
			return "", ErrNoPort
		}
	case PartScheme:
		switch {
		case h.c.scheme != nil:
			v = *h.c.scheme
		case opts.AssumeDefaultScheme:
			v = DefaultScheme
		default:
			return "", ErrNoScheme
		}
	default:
		f, missing := h.c.field(part)
		if f == nil || *f == nil {
			return "", missing
		}
		v = **f
	}

	if opts.URLDecode {
		if v, err = urlDecode(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

// effectivePort applies the default-port options to the stored port. The
// scheme directory is consulted on every call.
func (h *Handle) effectivePort(schemeName *string, opts Options) (string, bool) {
	if h.c.port == nil {
		if !opts.SynthesizeDefaultPort || schemeName == nil {
			return "", false
		}
		rec, ok := h.config().lookupScheme(*schemeName)
		if !ok || !rec.HasDefaultPort() {
			return "", false
		}
		return strconv.Itoa(rec.Port), true
	}

	if opts.SuppressDefaultPort && schemeName != nil {
		rec, ok := h.config().lookupScheme(*schemeName)
		if ok && rec.HasDefaultPort() && rec.Port == h.c.portNum {
			return "", false
		}
	}
	return *h.c.port, true
}

// url serializes the handle as
// scheme "://" [user [":" password] "@"] host [":" port] path ["?" query] ["#" fragment].
func (h *Handle) url(opts Options) (string, error) {
	if h.c.host == nil {
		return "", ErrNoHost
	}

	schemeName := h.c.scheme
	if schemeName == nil {
		if !opts.AssumeDefaultScheme {
			return "", ErrNoScheme
		}
		def := DefaultScheme
		schemeName = &def
	}
	port, hasPort := h.effectivePort(schemeName, opts)

	buf := make([]byte, 0, 64)
	buf = append(buf, *schemeName...)
	buf = append(buf, "://"...)
	if h.c.user != nil {
		buf = append(buf, *h.c.user...)
	}
	if h.c.password != nil {
		buf = append(buf, ':')
		buf = append(buf, *h.c.password...)
	}
	if h.c.user != nil || h.c.password != nil {
		buf = append(buf, '@')
	}
	buf = append(buf, *h.c.host...)
	if hasPort {
		buf = append(buf, ':')
		buf = append(buf, port...)
	}
	if h.c.path != nil {
		buf = append(buf, *h.c.path...)
	} else {
		buf = append(buf, '/')
	}
	if h.c.query != nil {
		buf = append(buf, '?')
		buf = append(buf, *h.c.query...)
	}
	if h.c.fragment != nil {
		buf = append(buf, '#')
		buf = append(buf, *h.c.fragment...)
	}
	return string(buf), nil
}

// Set replaces the value of part. A scheme must be known to the scheme
// directory unless opts.AllowUnregisteredScheme is set, and a port must be
// a decimal number in 1..65535.
//
// Setting PartURL to an absolute URL parses it; any other value is
// resolved against the current URL first. Either way the handle is only
// changed if the new URL parses.
func (h *Handle) Set(part Part, value string, opts Options) error {
	if err := h.check(); err != nil {
		return err
	}

	switch part {
	case PartURL:
		return h.setURL(value, opts)
	case PartScheme:
		if !opts.AllowUnregisteredScheme {
			if _, ok := h.config().lookupScheme(value); !ok {
				return &kindError{kind: ErrUnsupportedScheme, details: value}
			}
		}
	case PartPort:
		n, err := parsePortNumber(value)
		if err != nil {
			return err
		}
		h.c.port = ptr(value)
		h.c.portNum = n
		return nil
	}

	f, err := h.c.field(part)
	if f == nil {
		return err
	}
	*f = ptr(value)
	return nil
}

func (h *Handle) setURL(value string, opts Options) error {
	target := value
	if !isAbsoluteURL(value) {
		base, err := h.url(opts)
		if err != nil {
			return err
		}
		target = Resolve(base, value)
	}

	cfg := h.config()
	next, err := cfg.parse(target, opts)
	if err != nil {
		cfg.Log().Debug().Err(err).Str("url", target).Msg("rejected URL")
		return newParseError(err)
	}
	if opts.VerifyOnly {
		return nil
	}
	h.c = next
	return nil
}

// Clear unsets part. Clearing PartURL unsets every part.
func (h *Handle) Clear(part Part) error {
	if err := h.check(); err != nil {
		return err
	}
	if part == PartURL {
		h.c = components{}
		return nil
	}
	f, err := h.c.field(part)
	if f == nil {
		return err
	}
	*f = nil
	if part == PartPort {
		h.c.portNum = 0
	}
	return nil
}

// Clone returns an independent copy of the handle.
func (h *Handle) Clone() (*Handle, error) {
	if err := h.check(); err != nil {
		return nil, err
	}
	return &Handle{c: h.c.clone(), cfg: h.cfg}, nil
}

// Release drops every component. Any later use of the handle fails with
// ErrBadHandle. Releasing a nil handle does nothing.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.c = components{}
	h.released = true
}

// String returns the serialized URL, or "" when the handle has no host or
// no scheme.
func (h *Handle) String() string {
	s, err := h.Get(PartURL, Options{})
	if err != nil {
		return ""
	}
	return s
}

// MarshalJSON implements the json.Marshaler interface, encoding the handle
// as its URL string.
func (h *Handle) MarshalJSON() ([]byte, error) {
	s, err := h.Get(PartURL, Options{})
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a
// JSON string and parses it with default options.
func (h *Handle) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	cfg := h.config()
	comps, err := cfg.parse(s, Options{})
	if err != nil {
		return newParseError(err)
	}
	h.c = comps
	h.cfg = cfg
	h.released = false
	return nil
}
