// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-replay.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// a new map each time since the parsed levels are merged into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		"main":            "info",
		"replay":          "info",
		logger.DefaultTag: "critical",
	}
}

// step operations
const (
	opInsert   = "insert"
	opRemove   = "remove"
	opSearch   = "search"
	opTraverse = "traverse"
	opPrint    = "print"
)

// configuration errors
var (
	ErrInvalidDataDirectory = fault.InvalidError("invalid data directory")
	ErrInvalidFileName      = fault.InvalidError("log file must be a plain name")
	ErrInvalidOperation     = fault.InvalidError("invalid operation")
	ErrMissingKeys          = fault.InvalidError("operation requires keys")
)

// Step - one operation of the replay script
type Step struct {
	Op    string   `gluamapper:"op" json:"op"`
	Keys  []string `gluamapper:"keys" json:"keys"`
	Order string   `gluamapper:"order" json:"order"`
}

// Configuration - the replay script
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	KeyType       string               `gluamapper:"key_type" json:"key_type"`
	Check         bool                 `gluamapper:"check" json:"check"`
	Steps         []Step               `gluamapper:"steps" json:"steps"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		KeyType:       string(avl.IntegerKeys),
		Check:         true,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.KeyType = strings.ToLower(options.KeyType)
	switch avl.KeyKind(options.KeyType) {
	case avl.IntegerKeys, avl.StringKeys:
	default:
		return nil, fmt.Errorf("%w: %q", avl.ErrInvalidKeyKind, options.KeyType)
	}

	if err := validateSteps(avl.KeyKind(options.KeyType), options.Steps); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDataDirectory, options.DataDirectory)
	}
	options.DataDirectory = filepath.Clean(ensureAbsolute(dataDirectory, options.DataDirectory))

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidDataDirectory, options.DataDirectory)
	}

	// log file must be a simple name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFileName, options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// check operations and keys before anything is run
func validateSteps(kind avl.KeyKind, steps []Step) error {
	for i, step := range steps {
		switch step.Op {
		case opInsert, opRemove, opSearch:
			if 0 == len(step.Keys) {
				return fmt.Errorf("step: %d: %w: %q", i+1, ErrMissingKeys, step.Op)
			}
			if _, err := avl.ParseKeys(kind, step.Keys); nil != err {
				return fmt.Errorf("step: %d: %w", i+1, err)
			}
		case opTraverse:
			if _, err := avl.ParseOrder(traverseOrder(step)); nil != err {
				return fmt.Errorf("step: %d: %w: %q", i+1, err, step.Order)
			}
		case opPrint:
		default:
			return fmt.Errorf("step: %d: %w: %q", i+1, ErrInvalidOperation, step.Op)
		}
	}
	return nil
}

// in-order when unspecified
func traverseOrder(step Step) string {
	if "" == step.Order {
		return "in"
	}
	return step.Order
}

// make a path absolute by prefixing a base directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
