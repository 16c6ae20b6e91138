// This file is part of go-commandline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - internal help handling code.
package help

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-commandline/text"
)

// Padding - Indentation of every help section body.
var Padding = 4

// lineLength - Width at which the synopsis wraps.
var lineLength = 80

// Entry - Help view of a declared option.
type Entry struct {
	Tags        []string // Tags with their leading dashes
	ArgCount    int      // Number of arguments the option expects
	Required    bool
	Description string
}

// synopsis - "-o|--output <arg>"
func (e Entry) synopsis() string {
	return strings.Join(e.Tags, "|") + strings.Repeat(" <arg>", e.ArgCount)
}

// Name - Returns the NAME section.
func Name(scriptName, description string) string {
	out := scriptName
	if description != "" {
		description = strings.ReplaceAll(description, "\n", "\n"+strings.Repeat(" ", Padding*2))
		out += fmt.Sprintf(" - %s", description)
	}
	return fmt.Sprintf("%s:\n%s%s\n", text.HelpNameHeader, strings.Repeat(" ", Padding), out)
}

// split - Splits entries into required and optional ones, keeping declaration order.
func split(entries []Entry) ([]Entry, []Entry) {
	required := []Entry{}
	normal := []Entry{}
	for _, e := range entries {
		if e.Required {
			required = append(required, e)
		} else {
			normal = append(normal, e)
		}
	}
	return required, normal
}

// Synopsis - Returns the SYNOPSIS section.
// Required options are listed first, optional ones are wrapped in [].
func Synopsis(scriptName string, entries []Entry) string {
	scriptName = strings.Repeat(" ", Padding) + scriptName
	required, normal := split(entries)
	syns := []string{}
	for _, e := range required {
		syns = append(syns, e.synopsis())
	}
	for _, e := range normal {
		syns = append(syns, "["+e.synopsis()+"]")
	}
	var out string
	line := scriptName
	for _, syn := range syns {
		if len(line)+len(syn)+1 > lineLength {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(scriptName)), syn)
		} else {
			line += fmt.Sprintf(" %s", syn)
		}
	}
	out += line
	return fmt.Sprintf("%s:\n%s\n", text.HelpSynopsisHeader, out)
}

// longestStringLen - Given a slice of strings it returns the length of the longest string in the slice
func longestStringLen(s []string) int {
	i := 0
	for _, e := range s {
		if len(e) > i {
			i = len(e)
		}
	}
	return i
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}

// OptionList - Return a formatted list of options and their descriptions.
func OptionList(entries []Entry) string {
	syns := []string{}
	for _, e := range entries {
		syns = append(syns, e.synopsis())
	}
	factor := longestStringLen(syns) + 4
	padding := strings.Repeat(" ", Padding)

	helpString := func(e Entry) string {
		if e.Description == "" {
			return padding + e.synopsis() + "\n\n"
		}
		description := strings.ReplaceAll(e.Description, "\n", "\n"+padding+strings.Repeat(" ", factor))
		return padding + pad(e.synopsis(), factor) + description + "\n\n"
	}

	required, normal := split(entries)
	out := ""
	if len(required) > 0 {
		out += fmt.Sprintf("%s:\n", text.HelpRequiredOptionsHeader)
		for _, e := range required {
			out += helpString(e)
		}
	}
	if len(normal) > 0 {
		out += fmt.Sprintf("%s:\n", text.HelpOptionsHeader)
		for _, e := range normal {
			out += helpString(e)
		}
	}
	return out
}
