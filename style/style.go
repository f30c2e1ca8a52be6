package style

import (
	"slices"
	"strings"
)

/*
BSD 3-Clause License

Copyright (c) 2020–24, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Style is a set of attributes with at most one attribute per family.
// Styles are immutable, comparable values; the zero Style is the empty style.
//
// Two styles are equal if and only if they hold the same attributes.
type Style struct {
	attrs [familyCount]Attr
	mask  uint16
}

// Empty returns the style without any attributes.
func Empty() Style {
	return Style{}
}

// ResetAllStyle returns the style holding only the reset-all attribute.
func ResetAllStyle() Style {
	return Empty().Accept(ResetAll)
}

// New creates a style from a list of attributes. Attributes are accepted in
// order, the last attribute of a family wins.
func New(attrs ...Attr) Style {
	return Empty().Accept(attrs...)
}

// Accept returns a copy of s with attributes added. An attribute replaces any
// attribute of the same family. Accepting reset-all clears all the attributes
// accepted before it. Invalid attributes are ignored.
func (s Style) Accept(attrs ...Attr) Style {
	for _, a := range attrs {
		if !a.IsValid() || a.family >= familyCount {
			continue
		}
		if a.family == FamilyAll {
			s = Style{}
		}
		s.attrs[a.family] = a
		s.mask |= 1 << a.family
	}
	return s
}

// AcceptByName looks up attributes by name (see LookupByName) and accepts
// them. Unknown names are skipped; they are returned as a second result.
func (s Style) AcceptByName(names ...string) (Style, []string) {
	var unknown []string
	for _, name := range names {
		a, ok := LookupByName(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		s = s.Accept(a)
	}
	return s, unknown
}

// Apply returns a copy of s with every applying attribute of other accepted.
// Resets of other are ignored.
func (s Style) Apply(other Style) Style {
	for f := FamilyAll; f < familyCount; f++ {
		if a, ok := other.Get(f); ok && a.op == Apply {
			s = s.Accept(a)
		}
	}
	return s
}

// Merge folds other over s, the way styles cascade from a parent holder to
// its children: applying attributes replace, resets remove their family, and
// reset-all clears everything. The result never contains resets if s did not.
func (s Style) Merge(other Style) Style {
	for f := FamilyAll; f < familyCount; f++ {
		a, ok := other.Get(f)
		if !ok {
			continue
		}
		switch {
		case f == FamilyAll:
			s = Style{}
		case a.op == Reset:
			s = s.without(f)
		default:
			s.attrs[f] = a
			s.mask |= 1 << f
		}
	}
	return s
}

func (s Style) without(f Family) Style {
	s.attrs[f] = Attr{}
	s.mask &^= 1 << f
	return s
}

// Get returns the attribute of family f, if present.
func (s Style) Get(f Family) (Attr, bool) {
	if f >= familyCount || s.mask&(1<<f) == 0 {
		return Attr{}, false
	}
	return s.attrs[f], true
}

// Has is true if s holds an attribute of family f.
func (s Style) Has(f Family) bool {
	_, ok := s.Get(f)
	return ok
}

// IsEmpty is true for the style without attributes.
func (s Style) IsEmpty() bool {
	return s.mask == 0
}

// Len returns the number of attributes in s.
func (s Style) Len() int {
	n := 0
	for m := s.mask; m != 0; m &= m - 1 {
		n++
	}
	return n
}

// Attrs returns the attributes of s in family order.
func (s Style) Attrs() []Attr {
	attrs := make([]Attr, 0, s.Len())
	for f := FamilyAll; f < familyCount; f++ {
		if a, ok := s.Get(f); ok {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

// Equal is true if s and other hold the same attributes.
func (s Style) Equal(other Style) bool {
	return s == other
}

// Close returns the style which undoes s: the canonical reset of every family
// s applies.
func (s Style) Close() Style {
	return Diff(Empty(), s)
}

// Diff returns the minimal style switching a terminal from style before to
// style after:
//
//   - every attribute of after which differs from the attribute of the same
//     family in before (or is missing there) is included as is,
//   - every family applied in before but absent in after gets its
//     canonical reset.
//
// Bold and dim share their reset code, so a reset of one re-applies the other
// if after keeps it.
//
// Families carried forward unchanged produce nothing, thus Diff(a, a) is empty.
func Diff(after, before Style) Style {
	var d Style
	for f := FamilyAll; f < familyCount; f++ {
		a, inAfter := after.Get(f)
		b, inBefore := before.Get(f)
		switch {
		case inAfter && (!inBefore || a != b):
			d.attrs[f] = a
			d.mask |= 1 << f
		case !inAfter && inBefore && b.op == Apply:
			if r, ok := ResetOf(f); ok {
				d.attrs[f] = r
				d.mask |= 1 << f
			}
		}
	}
	// SGR 22 resets bold and dim alike
	if d.resets(FamilyBold) || d.resets(FamilyDim) {
		for _, f := range [...]Family{FamilyBold, FamilyDim} {
			if a, ok := after.Get(f); ok && a.op == Apply && !d.Has(f) {
				d.attrs[f] = a
				d.mask |= 1 << f
			}
		}
	}
	return d
}

func (s Style) resets(f Family) bool {
	a, ok := s.Get(f)
	return ok && a.op == Reset
}

// Codes returns the SGR parameters of s, joined by ';'. A reset of dim goes
// before an applied bold, as both share SGR 22.
func (s Style) Codes() string {
	var codes []string
	boldAt := -1
	for f := FamilyAll; f < familyCount; f++ {
		a, ok := s.Get(f)
		if !ok {
			continue
		}
		if f == FamilyDim && a.op == Reset && boldAt >= 0 {
			codes = slices.Insert(codes, boldAt, a.CodeSeq())
			continue
		}
		if f == FamilyBold && a.op == Apply {
			boldAt = len(codes)
		}
		codes = append(codes, a.CodeSeq())
	}
	return strings.Join(codes, ";")
}

// Render returns the escape sequence for s, or "" for the empty style.
func (s Style) Render() string {
	if s.IsEmpty() {
		return ""
	}
	return "\x1b[" + s.Codes() + "m"
}

// Dump returns a human readable form of s, e.g. "ansi-style<bold,fg(red)>".
func (s Style) Dump() string {
	if s.IsEmpty() {
		return "ansi-style-empty"
	}
	var sb strings.Builder
	sb.WriteString("ansi-style<")
	for i, a := range s.Attrs() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(a.name)
	}
	sb.WriteByte('>')
	return sb.String()
}

func (s Style) String() string {
	return s.Dump()
}
