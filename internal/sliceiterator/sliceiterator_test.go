// This file is part of go-commandline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package sliceiterator

import (
	"testing"
)

func TestIterator(t *testing.T) {
	data := []string{"-a", "A", "-b", "B"}
	i := New(data)
	if i.Index() != -1 {
		t.Errorf("wrong initial index: %d\n", i.Index())
	}
	if i.IsFirst() {
		t.Errorf("first before moving\n")
	}
	if i.Value() != "" {
		t.Errorf("wrong value before moving: %s\n", i.Value())
	}
	for i.Next() {
		if i.Index() == 0 {
			if !i.IsFirst() {
				t.Errorf("first not marked properly\n")
			}
			if i.Value() != "-a" {
				t.Errorf("wrong value: %s\n", i.Value())
			}
		}
		if i.Index() < len(data)-1 && !i.ExistsNext() {
			t.Errorf("wrong ExistsNext: idx %d, size %d", i.Index(), len(data))
		}
		if i.Index() == 2 {
			if i.IsFirst() {
				t.Errorf("wrong first at idx %d\n", i.Index())
			}
			if i.Value() != "-b" {
				t.Errorf("wrong value: %s\n", i.Value())
			}
		}
	}
	if i.ExistsNext() {
		t.Errorf("wrong ExistsNext: idx %d, size %d", i.Index(), len(data))
	}
	if i.Next() {
		t.Errorf("Next after end\n")
	}
	if i.Index() != len(data) {
		t.Errorf("wrong final index: %d\n", i.Index())
	}
	if i.Value() != "" {
		t.Errorf("wrong value after end: %s\n", i.Value())
	}
}

func TestIteratorCopiesInput(t *testing.T) {
	data := []string{"-a", "A"}
	i := New(data)
	data[0] = "changed"
	i.Next()
	if i.Value() != "-a" {
		t.Errorf("iterator aliased its input: %s\n", i.Value())
	}
}

func TestIteratorEmpty(t *testing.T) {
	i := New(nil)
	if i.Next() {
		t.Errorf("Next on empty list\n")
	}
	if i.IsFirst() {
		t.Errorf("first on empty list\n")
	}
	if i.ExistsNext() {
		t.Errorf("ExistsNext on empty list\n")
	}
}
