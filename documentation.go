// This file is part of go-commandline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package commandline - Strict, flat command line option parser.

Every option declares how many arguments follow it. Parsing walks the given
slice of strings once: each top level string must be an option tag and
each matched option takes exactly its declared number of arguments.

# Features

• Short (`-o`) and long (`--option`) tags for the same option.

• Fixed number of arguments per option, `0` for flags.

• Required options, validated after parsing.

• A help option (`-h`, `--help`) that skips the required option validation.

• `IsFile`, `AreFiles`, `IsNumeric` and `AreAllNumeric` argument checks.

• Simple synopsis and option list automated help.

# Usage

	cl := commandline.New()
	cl.CreateHelp("Copies a file")

	src := commandline.NewOption("s").SetLongTag("source").
		SetExpectedArgumentCount(1).SetRequired(true)
	cl.AddOption(src)

	err := cl.Parse(os.Args[1:])
	if cl.NeedHelp() {
		fmt.Fprint(os.Stderr, cl.Usage(filepath.Base(os.Args[0])))
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	source, _ := cl.OptionValue("--source")

# Rules

• A string that doesn't start with '-' where an option is expected is an error.

• A matched option takes the following strings as its arguments, none of
them can start with '-'.

• Tags that don't match any option are ignored.

• Each option is matched at most once per parse, a repeated tag is
ignored and its arguments become stray strings.

Not supported: bundling (`-abc`), `--option=value`, subcommands and
environment variables.

# Panic

The library will panic if the programmer declares an option without tags,
the same tag twice or a negative argument count.
Tags are checked again by Parse, so a tag changed after AddOption can't
shadow another option.
*/
package commandline
