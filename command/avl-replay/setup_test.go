// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"
)

// create a temporary data directory with logging started
func setupTestDirectory(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "avl-replay")
	require.NoError(t, err, "temp dir")

	logDirectory := filepath.Join(dir, "log")
	require.NoError(t, os.Mkdir(logDirectory, 0700))

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	require.NoError(t, logger.Initialise(logging), "logger")

	return dir, func() {
		logger.Finalise()
		os.RemoveAll(dir)
	}
}

func writeConfiguration(t *testing.T, dir string, content string) string {
	fileName := filepath.Join(dir, "replay.conf")
	err := ioutil.WriteFile(fileName, []byte(content), 0600)
	require.NoError(t, err, "write configuration")
	return fileName
}
