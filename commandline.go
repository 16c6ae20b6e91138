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
	"io"
	"log"
	"strings"

	"github.com/DavidGamba/go-commandline/internal/help"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// CommandLine - main object, holds the declared options in declaration order.
type CommandLine struct {
	options []*Option
	help    *Option
}

// New returns an empty CommandLine.
// This is the starting point when using go-commandline.
// For example:
//
//	cl := commandline.New()
func New() *CommandLine {
	return &CommandLine{options: []*Option{}}
}

// AddOption - Declares an option.
// Options are matched, validated and listed in the order they are added.
//
// It will *panic* if the option has no tags or if one of its tags is already in use.
// This is not an error because the programmer has to fix this!
func (cl *CommandLine) AddOption(opt *Option) *CommandLine {
	cl.checkTags(opt)
	for _, o := range cl.options {
		if o == opt {
			return cl
		}
	}
	cl.options = append(cl.options, opt)
	return cl
}

// checkTags - panics if the option has no tags or shares a tag with another declared option.
func (cl *CommandLine) checkTags(opt *Option) {
	tags := opt.Tags()
	if len(tags) == 0 {
		panic("Option needs a short or a long tag")
	}
	for _, t := range tags {
		for _, o := range cl.options {
			if o != opt && o.HasTag(t) {
				panic(fmt.Sprintf("Option tag '%s' is already defined in option '%s'", t, o.Name()))
			}
		}
	}
}

// CreateHelp - Declares the help option, '-h' and '--help', with the given help text.
// The option is returned so its short tag can be changed.
// When help is found, required options are not enforced.
//
// Calling it again updates the help text of the existing help option.
func (cl *CommandLine) CreateHelp(description string) *Option {
	if cl.help == nil {
		h := NewOption("h").SetLongTag("help")
		h.kind = helpOption
		cl.AddOption(h)
		cl.help = h
	}
	return cl.help.SetDescription(description)
}

// NeedHelp - Indicates if the help option was passed on the command line.
func (cl *CommandLine) NeedHelp() bool {
	return cl.help != nil && cl.help.found
}

// Help - Returns the help text given to CreateHelp.
func (cl *CommandLine) Help() string {
	if cl.help == nil {
		return ""
	}
	return cl.help.description
}

// Parse - Matches the cli args against the declared options and validates required options.
//
// The state of a previous Parse is cleared first.
// Errors are of type *ParseError and match ErrorParsing with errors.Is.
//
// Tags are checked again before parsing, it will *panic* if a tag was changed
// after AddOption into one already in use.
func (cl *CommandLine) Parse(args []string) error {
	for _, opt := range cl.options {
		cl.checkTags(opt)
		opt.reset()
	}

	err := NewParser(args, cl.options).Parse()
	if err != nil {
		return err
	}

	if cl.NeedHelp() {
		return nil
	}
	for _, opt := range cl.options {
		if opt.missing() {
			return &ParseError{Kind: ErrorMissingRequired, Option: opt.Name()}
		}
	}
	return nil
}

// Option - Returns the first declared option with the given tag, for example '-o' or '--option'.
func (cl *CommandLine) Option(tag string) (*Option, bool) {
	for _, opt := range cl.options {
		if opt.HasTag(tag) {
			return opt, true
		}
	}
	return nil, false
}

// OptionValue - Returns the first argument of the option with the given tag.
// The bool is false when no option has the tag or the option has no arguments.
func (cl *CommandLine) OptionValue(tag string) (string, bool) {
	opt, ok := cl.Option(tag)
	if !ok {
		return "", false
	}
	return opt.ArgumentAt(0)
}

// Options - Returns a copy of the list of declared options.
func (cl *CommandLine) Options() []*Option {
	out := make([]*Option, len(cl.options))
	copy(out, cl.options)
	return out
}

// Arguments - Returns the arguments captured by every option, in option declaration order.
func (cl *CommandLine) Arguments() []string {
	return arguments(cl.options)
}

// Usage - Returns the automated help: name, synopsis and option list.
// The description is the help text given to CreateHelp.
func (cl *CommandLine) Usage(programName string) string {
	entries := []help.Entry{}
	for _, opt := range cl.options {
		description := opt.description
		if opt.IsHelp() {
			description = "Show help."
		}
		entries = append(entries, help.Entry{
			Tags:        opt.Tags(),
			ArgCount:    opt.argCount,
			Required:    opt.required && !opt.IsHelp(),
			Description: description,
		})
	}
	out := help.Name(programName, cl.Help())
	out += "\n" + help.Synopsis(programName, entries)
	if list := help.OptionList(entries); list != "" {
		out += "\n" + list
	}
	return out
}

// String - Debug dump of every declared option.
func (cl *CommandLine) String() string {
	var b strings.Builder
	for _, opt := range cl.options {
		b.WriteString(opt.String())
	}
	b.WriteString("\n")
	return b.String()
}
