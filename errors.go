// This file is part of go-commandline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package commandline

import (
	"errors"
	"fmt"

	"github.com/DavidGamba/go-commandline/text"
)

// ErrorParsing - Indicates that there was an error with cli args parsing.
// Every error returned by Parse matches it with errors.Is.
var ErrorParsing = errors.New("parsing error")

// ErrorNotAnOption - A top level token doesn't start with the option marker.
var ErrorNotAnOption = errors.New("not an option")

// ErrorMissingArgument - The token list ended before the option got all its arguments.
var ErrorMissingArgument = errors.New("missing argument")

// ErrorUnexpectedOption - A token consumed as an argument looks like an option.
var ErrorUnexpectedOption = errors.New("unexpected option")

// ErrorMissingRequired - A required option wasn't found.
var ErrorMissingRequired = errors.New("missing required option")

// ParseError - Detailed parsing failure.
//
// Use errors.As to retrieve it and errors.Is against the Error* sentinels to
// check its kind.
type ParseError struct {
	Kind     error  // One of the Error* sentinels
	Option   string // Name of the option involved, if any
	Token    string // Offending token, if any
	Given    int    // Arguments obtained before failing (ErrorMissingArgument)
	Expected int    // Arguments the option expects (ErrorMissingArgument)
	First    bool   // The offending token was the first one (ErrorNotAnOption)
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrorNotAnOption:
		if e.First {
			return fmt.Sprintf(text.ErrorMissingOption, e.Token)
		}
		return fmt.Sprintf(text.ErrorTooManyArguments, e.Token)
	case ErrorMissingArgument:
		return fmt.Sprintf(text.ErrorMissingArgument, e.Option, e.Given, e.Expected)
	case ErrorUnexpectedOption:
		return fmt.Sprintf(text.ErrorArgumentWithDash, e.Option, e.Token)
	case ErrorMissingRequired:
		return fmt.Sprintf(text.ErrorMissingRequiredOption, e.Option)
	}
	return ErrorParsing.Error()
}

// Unwrap - Exposes both the kind sentinel and ErrorParsing to errors.Is.
func (e *ParseError) Unwrap() []error {
	return []error{e.Kind, ErrorParsing}
}
