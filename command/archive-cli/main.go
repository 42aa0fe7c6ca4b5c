// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "archive-cli"
	app.Usage = "build and inspect archive transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "payload",
			Usage:     "build and validate a transaction payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "ref, r",
					Value: "",
					Usage: "*reference `ADDRESS` (at least 64 characters)",
				},
				cli.StringFlag{
					Name:  "action, a",
					Value: "create",
					Usage: " `ACTION` [create|replace]",
				},
				cli.StringFlag{
					Name:  "content, c",
					Value: "",
					Usage: "*content `HASH`",
				},
				cli.StringFlag{
					Name:  "dip, d",
					Value: "",
					Usage: "*dip `HASH`",
				},
			},
			Action: runPayload,
		},
		{
			Name:      "address",
			Usage:     "derive the state address of a reference",
			ArgsUsage: "REFERENCE",
			Action:    runAddress,
		},
		{
			Name:      "decode",
			Usage:     "decode a hex state value",
			ArgsUsage: "HEX",
			Action:    runDecode,
		},
		{
			Name:      "encode",
			Usage:     "encode a record as a hex state value",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "content, c",
					Value: "",
					Usage: "*content `HASH`",
				},
				cli.StringFlag{
					Name:  "dip, d",
					Value: "",
					Usage: "*dip `HASH`",
				},
			},
			Action: runEncode,
		},
		{
			Name:  "version",
			Usage: "display archive-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
