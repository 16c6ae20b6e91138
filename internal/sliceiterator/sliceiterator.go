// This file is part of go-commandline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - single forward cursor over a token list.
//
// The iterator holds its own copy of the tokens so the list it walks can't
// change during a parse.
package sliceiterator

// Iterator - iterator data
type Iterator struct {
	data []string
	idx  int
}

// New - builds a string Iterator over a copy of s.
func New(s []string) *Iterator {
	data := make([]string, len(s))
	copy(data, s)
	return &Iterator{data: data, idx: -1}
}

// Index - return current index.
func (a *Iterator) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// ExistsNext - tells if there is more data to be read.
func (a *Iterator) ExistsNext() bool {
	return a.idx+1 < len(a.data)
}

// Value - returns value at current index or an empty string if the cursor is
// before the start or past the end of the list.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}

// IsFirst - Tells if the current element is the first one of the list.
func (a *Iterator) IsFirst() bool {
	return a.idx == 0 && len(a.data) > 0
}
