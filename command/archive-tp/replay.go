// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/archivetp/fault"
	"github.com/bitmark-inc/archivetp/handler"
	"github.com/bitmark-inc/archivetp/state"
)

// longest accepted transaction line
const maximumLineLength = 1024 * 1024

// a store that holds the writes of one transaction at a time
type batchStore interface {
	state.Access
	Begin() error
	Commit() error
	Abort()
}

type replayStats struct {
	accepted int
	rejected int
	failed   int
}

func (s *replayStats) add(other replayStats) {
	s.accepted += other.accepted
	s.rejected += other.rejected
	s.failed += other.failed
}

func applyFile(log *logger.L, h *handler.Handler, store batchStore, name string) (replayStats, error) {
	f, err := openInput(name)
	if nil != err {
		return replayStats{}, err
	}
	defer f.Close()

	return replay(log, h, store, name, f)
}

// apply each non-blank line as a transaction
//
// a rejected transaction leaves state unchanged and replay continues,
// an internal error stops the replay
func replay(log *logger.L, h *handler.Handler, store batchStore, name string, r io.Reader) (replayStats, error) {
	stats := replayStats{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maximumLineLength)

	n := 0
	for scanner.Scan() {
		n += 1
		line := scanner.Bytes()
		if 0 == len(line) {
			continue
		}

		request := &handler.Request{
			Payload:   append([]byte{}, line...),
			Signature: fmt.Sprintf("%s:%d", name, n),
		}

		if err := store.Begin(); nil != err {
			return stats, err
		}

		err := h.Apply(request, store)
		switch {
		case nil == err:
			if err := store.Commit(); nil != err {
				fault.Criticalf("%s: commit error: %s", request.Signature, err)
				return stats, err
			}
			stats.accepted += 1

		case fault.IsErrInvalidTransaction(err):
			store.Abort()
			log.Infof("%s: rejected: %s", request.Signature, err)
			stats.rejected += 1

		default:
			store.Abort()
			log.Errorf("%s: failed: %s", request.Signature, err)
			stats.failed += 1
			return stats, err
		}
	}
	return stats, scanner.Err()
}
