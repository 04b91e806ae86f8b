// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

type metadata struct {
	kind    avl.KeyKind
	json    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "build a balanced tree from KEY arguments and display it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "strings, s",
			Usage: " keys are strings instead of integers",
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: " output JSON",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "traverse",
			Usage:     "list the keys in one of the depth first orders",
			ArgsUsage: "KEY...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "in",
					Usage: " traversal `ORDER` [in|pre|post]",
				},
			},
			Action: runTraverse,
		},
		{
			Name:      "search",
			Usage:     "search for a key",
			ArgsUsage: "KEY...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*`KEY` to search for",
				},
			},
			Action: runSearch,
		},
		{
			Name:      "remove",
			Usage:     "remove keys and list the remainder in order",
			ArgsUsage: "KEY...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "key, k",
					Usage: "*`KEY` to remove (repeatable)",
				},
			},
			Action: runRemove,
		},
		{
			Name:      "print",
			Usage:     "draw the tree",
			ArgsUsage: "KEY...",
			Action:    runPrint,
		},
		{
			Name:      "check",
			Usage:     "verify the tree invariants",
			ArgsUsage: "KEY...",
			Action:    runCheck,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		kind := avl.IntegerKeys
		if c.GlobalBool("strings") {
			kind = avl.StringKeys
		}
		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				kind:    kind,
				json:    c.GlobalBool("json"),
				verbose: c.GlobalBool("verbose"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	return app
}
