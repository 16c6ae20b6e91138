// This file is part of go-commandline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package commandline

import (
	"strings"

	"github.com/DavidGamba/go-commandline/internal/sliceiterator"
)

// Parser - Matches a list of cli args against a list of options.
//
// The Parser owns the options only while Parse runs: it is the single writer
// of their found state and arguments, and once Parse returns they are safe to
// read.
type Parser struct {
	args    []string
	options []*Option
}

// NewParser - Returns a Parser for the given cli args and options.
// The args are copied, the options are updated in place by Parse.
func NewParser(args []string, options []*Option) *Parser {
	a := make([]string, len(args))
	copy(a, args)
	return &Parser{args: a, options: options}
}

func isTag(s string) bool {
	return strings.HasPrefix(s, Marker)
}

// Parse - Walks the cli args and stores the arguments in their matching options.
//
// Every top level arg must start with '-'. The first option not yet found
// that has the arg as one of its tags gets the following
// ExpectedArgumentCount args, none of which can start with '-'. Tags that
// don't match any option are skipped.
//
// On error, options matched before the failing arg keep their state.
func (p *Parser) Parse() error {
	iterator := sliceiterator.New(p.args)

ARGS_LOOP:
	for iterator.Next() {
		arg := iterator.Value()
		Logger.Printf("arg %d: %s\n", iterator.Index(), arg)

		if !isTag(arg) {
			return &ParseError{Kind: ErrorNotAnOption, Token: arg, First: iterator.IsFirst()}
		}

		for _, opt := range p.options {
			if opt.found || !opt.HasTag(arg) {
				continue
			}
			Logger.Printf("match: %s, expects %d\n", opt.Name(), opt.argCount)
			for i := 0; i < opt.argCount; i++ {
				if !iterator.ExistsNext() {
					return &ParseError{Kind: ErrorMissingArgument, Option: opt.Name(), Given: i, Expected: opt.argCount}
				}
				iterator.Next()
				value := iterator.Value()
				if isTag(value) {
					return &ParseError{Kind: ErrorUnexpectedOption, Option: opt.Name(), Token: value}
				}
				opt.addArgument(value)
			}
			opt.setFound(true)
			continue ARGS_LOOP
		}
		Logger.Printf("unknown option: %s\n", arg)
	}
	return nil
}

// Options - Returns the options the Parser works on.
func (p *Parser) Options() []*Option {
	return p.options
}

// Arguments - Returns the arguments captured by every option, in option declaration order.
func (p *Parser) Arguments() []string {
	return arguments(p.options)
}

func arguments(options []*Option) []string {
	out := []string{}
	for _, opt := range options {
		out = append(out, opt.arguments...)
	}
	return out
}
