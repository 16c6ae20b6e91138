// This file is part of go-commandline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package commandline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// FS - Filesystem used by the file predicates.
// Replace it with `afero.NewMemMapFs()` or a `afero.NewBasePathFs` to sandbox the checks.
var FS afero.Fs = afero.NewOsFs()

// Marker - Leading character of every option tag.
// Short tags use it once (-o), long tags twice (--option).
const Marker = "-"

// integer or decimal: 12, 12.34 or .34
var isNumericRegex = regexp.MustCompile(`^(\d+(\.\d+)?|\.\d+)$`)

type optionKind int

const (
	regularOption optionKind = iota
	helpOption
)

// Option - A declared command line option and the state captured for it by the last parse.
type Option struct {
	shortTag    string // stored with its marker, empty when unset
	longTag     string // stored with its marker, empty when unset
	description string
	argCount    int
	required    bool
	found       bool
	arguments   []string
	kind        optionKind
}

// NewOption - Returns an option with the given short tag, without the leading '-'.
func NewOption(shortTag string) *Option {
	opt := &Option{arguments: []string{}}
	return opt.SetShortTag(shortTag)
}

// SetShortTag - Sets the short tag, '-' will be added to the beginning of the name.
// An empty name removes the short tag.
func (opt *Option) SetShortTag(name string) *Option {
	opt.shortTag = tag(Marker, name)
	return opt
}

// SetLongTag - Sets the long tag, '--' will be added to the beginning of the name.
// The long tag becomes the option's Name.
func (opt *Option) SetLongTag(name string) *Option {
	opt.longTag = tag(Marker+Marker, name)
	return opt
}

func tag(prefix, name string) string {
	if name == "" {
		return ""
	}
	return prefix + name
}

// SetDescription - Updates the Description.
func (opt *Option) SetDescription(s string) *Option {
	opt.description = s
	return opt
}

// SetExpectedArgumentCount - Number of arguments that follow the option.
// The default count is 0, a flag.
//
// It will *panic* on a negative count.
// This is not an error because the programmer has to fix this!
func (opt *Option) SetExpectedArgumentCount(n int) *Option {
	if n < 0 {
		panic(fmt.Sprintf("Option '%s' expected argument count should be >= 0, got %d", opt.Name(), n))
	}
	opt.argCount = n
	return opt
}

// SetRequired - Marks the option as required, or optional again.
func (opt *Option) SetRequired(required bool) *Option {
	opt.required = required
	return opt
}

// ShortTag - Short tag without its leading '-'.
func (opt *Option) ShortTag() string {
	return strings.TrimPrefix(opt.shortTag, Marker)
}

// LongTag - Long tag without its leading '--'.
func (opt *Option) LongTag() string {
	return strings.TrimPrefix(opt.longTag, Marker+Marker)
}

// Name - Display name of the option: the long tag when set, otherwise the short tag.
func (opt *Option) Name() string {
	if opt.longTag != "" {
		return opt.LongTag()
	}
	return opt.ShortTag()
}

// Tags - The tags of the option with their markers, short tag first.
func (opt *Option) Tags() []string {
	tags := []string{}
	if opt.shortTag != "" {
		tags = append(tags, opt.shortTag)
	}
	if opt.longTag != "" {
		tags = append(tags, opt.longTag)
	}
	return tags
}

// Description - Option description used for help.
func (opt *Option) Description() string {
	return opt.description
}

// ExpectedArgumentCount - Number of arguments that follow the option.
func (opt *Option) ExpectedArgumentCount() int {
	return opt.argCount
}

// IsRequired - Indicates if the option is required.
func (opt *Option) IsRequired() bool {
	return opt.required
}

// IsFound - Indicates if the option was passed on the command line with all its arguments.
func (opt *Option) IsFound() bool {
	return opt.found
}

// IsHelp - Indicates if this is the help option created by CommandLine.CreateHelp.
func (opt *Option) IsHelp() bool {
	return opt.kind == helpOption
}

// HasTag - Indicates if the given token is exactly the option's short ('-o') or long ('--option') tag.
func (opt *Option) HasTag(token string) bool {
	if token == "" {
		return false
	}
	return token == opt.shortTag || token == opt.longTag
}

// Arguments - Copy of the arguments captured for the option, in order.
func (opt *Option) Arguments() []string {
	out := make([]string, len(opt.arguments))
	copy(out, opt.arguments)
	return out
}

// ArgumentAt - Returns the captured argument at index i.
// The bool is false when there is no such argument.
func (opt *Option) ArgumentAt(i int) (string, bool) {
	if i < 0 || i >= len(opt.arguments) {
		return "", false
	}
	return opt.arguments[i], true
}

// IsFile - Indicates if the first argument is an existing path in FS.
//
// Check IsFound before calling it, an option without arguments is never a file.
func (opt *Option) IsFile() bool {
	a, ok := opt.ArgumentAt(0)
	if !ok {
		return false
	}
	return exists(a)
}

// AreFiles - Indicates if every argument is an existing path in FS.
// An option without arguments has no files.
func (opt *Option) AreFiles() bool {
	if len(opt.arguments) == 0 {
		return false
	}
	for _, a := range opt.arguments {
		if !exists(a) {
			return false
		}
	}
	return true
}

func exists(path string) bool {
	ok, err := afero.Exists(FS, path)
	if err != nil {
		Logger.Printf("stat %s: %s\n", path, err)
		return false
	}
	return ok
}

// IsNumeric - Indicates if the first argument is an unsigned integer or decimal number.
// Accepted forms are '12', '12.34' and '.34', a trailing dot ('1.') is rejected.
//
// Check IsFound before calling it, an option without arguments is never numeric.
func (opt *Option) IsNumeric() bool {
	a, ok := opt.ArgumentAt(0)
	if !ok {
		return false
	}
	return isNumericRegex.MatchString(a)
}

// AreAllNumeric - Indicates if every argument is numeric, see IsNumeric.
// An option without arguments has no numbers.
func (opt *Option) AreAllNumeric() bool {
	if len(opt.arguments) == 0 {
		return false
	}
	for _, a := range opt.arguments {
		if !isNumericRegex.MatchString(a) {
			return false
		}
	}
	return true
}

func (opt *Option) addArgument(a string) {
	opt.arguments = append(opt.arguments, a)
}

func (opt *Option) setFound(found bool) {
	opt.found = found
}

// reset - Clears the state captured by a previous parse.
func (opt *Option) reset() {
	opt.found = false
	opt.arguments = []string{}
}

// missing - Indicates if the option should fail required option validation.
func (opt *Option) missing() bool {
	switch opt.kind {
	case helpOption:
		return false
	default:
		return opt.required && !opt.found
	}
}

// String - Debug dump of every field of the option.
func (opt *Option) String() string {
	var b strings.Builder
	field := func(name, value string) {
		b.WriteString(name + ":")
		if value != "" {
			b.WriteString(" " + value)
		}
		b.WriteString("\n")
	}
	b.WriteString("Option\n")
	field("Short name", opt.shortTag)
	field("Long name", opt.longTag)
	field("Argument count", strconv.Itoa(opt.argCount))
	field("Required", strconv.FormatBool(opt.required))
	field("Help", strconv.FormatBool(opt.IsHelp()))
	field("Found", strconv.FormatBool(opt.found))
	field("Description", opt.description)
	quoted := []string{}
	for _, a := range opt.arguments {
		quoted = append(quoted, strconv.Quote(a))
	}
	if len(quoted) == 0 {
		quoted = append(quoted, "No arguments provided.")
	}
	field("Arguments", strings.Join(quoted, " "))
	b.WriteString("\n")
	return b.String()
}
