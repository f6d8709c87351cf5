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

// parserInput is a byte cursor over the input string, allowing for peeking,
// advancing, and position tracking.
type parserInput struct {
	originalString string
	pos            int
}

// newParserInput creates a new parserInput wrapping the given string.
func newParserInput(s string) *parserInput {
	return &parserInput{originalString: s}
}

// next reads and returns the next byte from the input, advancing the position.
func (p *parserInput) next() (byte, bool) {
	c, ok := p.peek()
	if ok {
		p.pos++
	}
	return c, ok
}

// peek returns the next byte from the input without advancing the position.
func (p *parserInput) peek() (byte, bool) {
	if p.pos >= len(p.originalString) {
		return 0, false
	}
	return p.originalString[p.pos], true
}

// startsWith checks if the remaining input starts with the given byte.
func (p *parserInput) startsWith(c byte) bool {
	pc, ok := p.peek()
	return ok && pc == c
}

// consume advances past c if it is the next byte.
func (p *parserInput) consume(c byte) bool {
	if !p.startsWith(c) {
		return false
	}
	p.pos++
	return true
}

// takeWhile consumes and returns the longest run of bytes matching valid,
// stopping after limit bytes when limit is positive.
func (p *parserInput) takeWhile(limit int, valid func(byte) bool) string {
	start := p.pos
	for p.pos < len(p.originalString) && valid(p.originalString[p.pos]) {
		if limit > 0 && p.pos-start == limit {
			break
		}
		p.pos++
	}
	return p.originalString[start:p.pos]
}

// position returns the current read position in bytes from the start of the original string.
func (p *parserInput) position() int {
	return p.pos
}

// asStr returns the unread portion of the input string.
func (p *parserInput) asStr() string {
	return p.originalString[p.pos:]
}

// reset re-initializes the input with a new string.
func (p *parserInput) reset(s string) {
	p.originalString = s
	p.pos = 0
}
