// This file is part of go-commandline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// The variables can be overridden to customize the messages.
package text

// ErrorMissingOption holds the text for a first token that isn't an option.
// It has a string placeholder '%s' for the token.
var ErrorMissingOption = "Missing command line option, got '%s'"

// ErrorTooManyArguments holds the text for a stray token left after an option consumed all its arguments.
// It has a string placeholder '%s' for the stray token.
var ErrorTooManyArguments = "Too many arguments for option, unexpected '%s'"

// ErrorMissingArgument holds the text for an option that ran out of arguments.
// It has a string placeholder '%s' for the name of the option and two '%d' for the given and expected counts.
var ErrorMissingArgument = "Missing argument for option '%s'. Given %d, expected %d"

// ErrorArgumentWithDash holds the text for an argument value that looks like an option (starts with '-').
// It has a string placeholder '%s' for the name of the option and a '%s' for the offending value.
var ErrorArgumentWithDash = "Missing argument for option '%s', got option '%s' instead"

// ErrorMissingRequiredOption holds the text for a required option that wasn't passed.
// It has a string placeholder '%s' for the name of the option.
var ErrorMissingRequiredOption = "Missing required option '%s'"

// HelpNameHeader holds the header text for the command name
var HelpNameHeader = "NAME"

// HelpSynopsisHeader holds the header text for the synopsis
var HelpSynopsisHeader = "SYNOPSIS"

// HelpRequiredOptionsHeader holds the header text for the required parameters
var HelpRequiredOptionsHeader = "REQUIRED PARAMETERS"

// HelpOptionsHeader holds the header text for the option list
var HelpOptionsHeader = "OPTIONS"
