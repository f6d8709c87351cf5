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
	"strings"

	"golang.org/x/text/transform"
)

const hexDigits = "0123456789abcdef"

// byteClass is how one input byte is written by the escaper.
type byteClass int

const (
	classVerbatim byteClass = iota
	classPercent
	classPlus
)

// width returns the number of output bytes produced for the class.
func (c byteClass) width() int {
	if c == classPercent {
		return 3
	}
	return 1
}

// put writes the encoding of b for the class into dst and returns the
// number of bytes written. dst must have room for width() bytes.
func (c byteClass) put(dst []byte, b byte) int {
	switch c {
	case classPercent:
		dst[0] = '%'
		dst[1] = hexDigits[b>>4]
		dst[2] = hexDigits[b&0x0f]
		return 3
	case classPlus:
		dst[0] = '+'
	default:
		dst[0] = b
	}
	return 1
}

// needsEscaping decides, independently of the encoding, whether a byte must
// be percent-encoded. In practice this selects the bytes above 0x7f.
func needsEscaping(c byte) bool {
	return !(isControl(c) || isSpace(c) || isGraphic(c))
}

// classify is the single decision shared by EscapedLen and Escape. Bytes of
// the host are kept as they are so name resolution sees the real host name.
// Spaces become "%20" before the first '?' and '+' after it.
func classify(c byte, inHost, inQuery bool) byteClass {
	switch {
	case inHost:
		return classVerbatim
	case c == ' ' && inQuery:
		return classPlus
	case c == ' ', needsEscaping(c):
		return classPercent
	}
	return classVerbatim
}

// hostSeparator returns the offset of the end of the host in url: the first
// '/' after "//" (or after the start when there is no "//"), or the first
// '?' if that comes earlier.
func hostSeparator(url string) int {
	start := 0
	if i := strings.Index(url, "//"); i >= 0 {
		start = i + 2
	}
	end := len(url)
	if i := strings.IndexByte(url[start:], '/'); i >= 0 {
		end = start + i
	}
	if i := strings.IndexByte(url[start:], '?'); i >= 0 && start+i < end {
		end = start + i
	}
	return end
}

func hostEnd(url string, relative bool) int {
	if relative {
		return 0
	}
	return hostSeparator(url)
}

// EscapedLen returns the length Escape(url, relative) will have.
// When relative is false the host part of url is left unescaped.
func EscapedLen(url string, relative bool) int {
	end := hostEnd(url, relative)
	n := 0
	inQuery := false
	for i := 0; i < len(url); i++ {
		c := url[i]
		n += classify(c, i < end, inQuery).width()
		if i >= end && c == '?' {
			inQuery = true
		}
	}
	return n
}

// Escape returns url with unsafe bytes percent-encoded and spaces replaced,
// "%20" to the left of the first '?' and '+' to the right of it. When
// relative is false the host part of url is copied unescaped.
func Escape(url string, relative bool) string {
	e := &escaper{hostEnd: hostEnd(url, relative)}
	// The escaper never fails: ErrShortDst is handled by transform.String.
	out, _, _ := transform.String(e, url)
	return out
}

// NewEscaper returns a Transformer applying the Escape rules to a stream
// that holds a relative reference, so that no host is skipped.
func NewEscaper() transform.Transformer {
	return &escaper{}
}

// escaper implements transform.Transformer over the classify rules. pos
// counts bytes consumed since the last Reset.
type escaper struct {
	hostEnd int
	pos     int
	inQuery bool
}

// Transform implements transform.Transformer.
func (e *escaper) Transform(dst, src []byte, _ bool) (int, int, error) {
	nDst, nSrc := 0, 0
	for nSrc < len(src) {
		c := src[nSrc]
		inHost := e.pos < e.hostEnd
		class := classify(c, inHost, e.inQuery)
		if nDst+class.width() > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += class.put(dst[nDst:], c)
		if !inHost && c == '?' {
			e.inQuery = true
		}
		e.pos++
		nSrc++
	}
	return nDst, nSrc, nil
}

// Reset implements transform.Transformer.
func (e *escaper) Reset() {
	e.pos = 0
	e.inQuery = false
}
