// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPrompt   = "avl"
	defaultDumpFile = "tree.dump"
	defaultDotFile  = "tree.dot"

	defaultLogDirectory = "log"
	defaultLogFile      = "avltree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - the shell settings
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Prompt        string               `gluamapper:"prompt" json:"prompt"`
	DumpFile      string               `gluamapper:"dump_file" json:"dump_file"`
	DotFile       string               `gluamapper:"dot_file" json:"dot_file"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// DefaultConfiguration - the settings before any file is applied
func DefaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Prompt:        defaultPrompt,
		DumpFile:      defaultDumpFile,
		DotFile:       defaultDotFile,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// GetConfiguration - read and parse the configuration file, expand
// relative paths and fill in defaults
func GetConfiguration(fileName string) (*Configuration, error) {

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	options := DefaultConfiguration()
	if err = ParseConfigurationFile(fileName, options); nil != err {
		return nil, err
	}

	if "" == options.DataDirectory {
		return nil, fault.ErrRequiredDataDirectory
	}
	if "." == options.DataDirectory {
		options.DataDirectory = filepath.Dir(fileName)
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// fail if the directory does not exist
	fileInfo, err := os.Stat(options.DataDirectory)
	if nil != err {
		return nil, err
	}
	if !fileInfo.IsDir() {
		return nil, fault.ErrConfigDirPath
	}

	// force all relevant items to be relative to the data directory
	options.DumpFile = ensureAbsolute(options.DataDirectory, options.DumpFile)
	options.DotFile = ensureAbsolute(options.DataDirectory, options.DotFile)
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)

	if nil == options.Logging.Levels {
		options.Logging.Levels = map[string]string{
			logger.DefaultTag: "critical",
		}
	}

	return options, nil
}

// internal: make a path absolute relative to the data directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
