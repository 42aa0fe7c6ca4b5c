// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/archivetp/archiverecord"
	"github.com/bitmark-inc/archivetp/handler"
	"github.com/bitmark-inc/archivetp/payload"
)

func runPayload(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	in := &payload.Input{
		RefAddress:  c.String("ref"),
		Action:      c.String("action"),
		ContentHash: c.String("content"),
		DipHash:     c.String("dip"),
	}

	// check what the processor would see
	body := in.Format()
	parsed, err := payload.Parse(body)
	if nil != err {
		return err
	}
	if _, err := parsed.Validate(); nil != err {
		return err
	}
	stateAddress, err := handler.NewFamily().Namespace.Make(parsed.RefAddress)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "address: %s\n", stateAddress)
	}

	out := struct {
		Payload string `json:"payload"`
		Address string `json:"address"`
	}{
		Payload: string(body),
		Address: stateAddress,
	}
	return printJson(m.w, out)
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 1 != c.NArg() {
		return ErrRequiredReference
	}

	stateAddress, err := handler.NewFamily().Namespace.Make(c.Args().Get(0))
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%s\n", stateAddress)
	return nil
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 1 != c.NArg() {
		return ErrRequiredHexValue
	}

	value, err := hex.DecodeString(c.Args().Get(0))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "decoding %d bytes\n", len(value))
	}

	record, err := archiverecord.Packed(value).Unpack()
	if nil != err {
		return err
	}
	if nil == record {
		return ErrEmptyValue
	}

	return printJson(m.w, record)
}

func runEncode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	record := &archiverecord.Record{
		ContentHash: c.String("content"),
		DipHash:     c.String("dip"),
	}

	packed, err := record.Pack()
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%x\n", packed)
	return nil
}
