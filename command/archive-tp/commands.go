// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/archivetp/archiverecord"
	"github.com/bitmark-inc/archivetp/handler"
	"github.com/bitmark-inc/archivetp/storage"
)

// setup command handler
//
// commands that need neither the configuration file nor the database
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "namespace", "ns":
		family := handler.NewFamily()
		fmt.Printf("family: %s  version: %s  namespace: %s\n", family.Name, family.Version, family.Namespace)

	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] --config-file=FILE [--define=KEY=VALUE] [[command|help] arguments...]\n"+
			"supported commands:\n"+
			"  help                  (h)      - display this message\n"+
			"  version               (v)      - display version string\n"+
			"  namespace             (ns)     - display family name, version and state namespace\n"+
			"  apply FILE...                  - apply each line of FILE (\"-\" for stdin) as one transaction\n"+
			"  dump                           - print every stored archive record\n"+
			"  digest                         - print the SHA3-256 digest of all stored records\n",
			program)

	default:
		return false
	}
	return true
}

// data command handler
//
// the database is open for these commands
func processDataCommand(log *logger.L, arguments []string, store *storage.Store) bool {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "apply":
		if 0 == len(arguments) {
			exitwithstatus.Message("apply: missing file argument")
		}

		h := handler.New(logger.New("archive"))
		total := replayStats{}
		for _, name := range arguments {
			stats, err := applyFile(log, h, store, name)
			total.add(stats)
			if nil != err {
				fmt.Printf("%s: %s\n", name, err)
				fmt.Printf("accepted: %d  rejected: %d  failed: %d\n", total.accepted, total.rejected, total.failed)
				exitwithstatus.Exit(1)
			}
		}
		fmt.Printf("accepted: %d  rejected: %d  failed: %d\n", total.accepted, total.rejected, total.failed)

	case "dump":
		err := store.Records(func(address string, value []byte) bool {
			record, err := archiverecord.Packed(value).Unpack()
			if nil != err {
				fmt.Printf("%s  error: %s\n", address, err)
			} else {
				fmt.Printf("%s  content: %s  dip: %s\n", address, record.ContentHash, record.DipHash)
			}
			return true
		})
		if nil != err {
			exitwithstatus.Message("dump error: %s", err)
		}

	case "digest":
		d, err := store.Digest()
		if nil != err {
			exitwithstatus.Message("digest error: %s", err)
		}
		fmt.Printf("%s\n", d)

	default:
		return false
	}
	return true
}

// --define=KEY=VALUE options to configuration variables
func parseDefinitions(definitions []string) (map[string]string, error) {
	variables := make(map[string]string)
	for _, d := range definitions {
		s := strings.SplitN(d, "=", 2)
		if 2 != len(s) || "" == s[0] {
			return nil, fmt.Errorf("invalid definition: %q", d)
		}
		variables[s[0]] = s[1]
	}
	return variables, nil
}

func openInput(name string) (*os.File, error) {
	if "-" == name {
		return os.Stdin, nil
	}
	return os.Open(name)
}
