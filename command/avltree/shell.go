// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// command patterns: a word or its abbreviation, case insensitive
var (
	insertPattern  = regexp.MustCompile(`(?i)^\s*(?:i|insert)\s+(-?\d+)\s*$`)
	updatePattern  = regexp.MustCompile(`(?i)^\s*(?:u|update)\s+(-?\d+)\s*$`)
	removePattern  = regexp.MustCompile(`(?i)^\s*(?:r|remove)\s+(-?\d+)\s*$`)
	findPattern    = regexp.MustCompile(`(?i)^\s*(?:f|find)\s+(-?\d+)\s*$`)
	minPattern     = regexp.MustCompile(`(?i)^\s*min\s*$`)
	maxPattern     = regexp.MustCompile(`(?i)^\s*max\s*$`)
	popPattern     = regexp.MustCompile(`(?i)^\s*pop\s*$`)
	popleftPattern = regexp.MustCompile(`(?i)^\s*popleft\s*$`)
	printPattern   = regexp.MustCompile(`(?i)^\s*(?:p|print)\s*(in|level|tree|dot)?\s*$`)
	savePattern    = regexp.MustCompile(`(?i)^\s*(?:s|save)(?:\s+(\S+))?\s*$`)
	clearPattern   = regexp.MustCompile(`(?i)^\s*(?:c|clear)\s*$`)
	helpPattern    = regexp.MustCompile(`(?i)^\s*(?:h|help)\s*$`)
	quitPattern    = regexp.MustCompile(`(?i)^\s*(?:q|e|quit|exit)\s*$`)
)

// interactive shell state
type shell struct {
	tree *avl.Tree
	conf *configuration.Configuration
	log  *logger.L
	in   io.Reader
	out  io.Writer
	err  io.Writer
}

func newShell(conf *configuration.Configuration, log *logger.L, in io.Reader, out io.Writer, errOut io.Writer) *shell {
	return &shell{
		tree: avl.New(),
		conf: conf,
		log:  log,
		in:   in,
		out:  out,
		err:  errOut,
	}
}

// run - the interactive loop
// returns on the quit command or at end of input
func (s *shell) run() {
	fmt.Fprintf(s.out, "Interactive AVL Tree\n\n")
	s.help()
	fmt.Fprintf(s.out, "\nHave fun!\n")

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprintf(s.out, "%s (%d)> ", s.conf.Prompt, s.tree.Count())
		if !scanner.Scan() {
			break
		}
		if !s.dispatch(scanner.Text()) {
			break
		}
	}

	total, free := avl.PoolStatistics()
	s.log.Infof("node pool: total: %d  free: %d", total, free)
}

// command summary
func (s *shell) help() {
	fmt.Fprintf(s.out, "i|insert N                     => Inserts N into the tree\n")
	fmt.Fprintf(s.out, "u|update N                     => Inserts N or overwrites it\n")
	fmt.Fprintf(s.out, "r|remove N                     => Removes N from the tree\n")
	fmt.Fprintf(s.out, "f|find N                       => Looks up N in the tree\n")
	fmt.Fprintf(s.out, "min|max                        => Shows the extreme items\n")
	fmt.Fprintf(s.out, "pop|popleft                    => Extracts the extreme items\n")
	fmt.Fprintf(s.out, "p|print [(in|level|tree|dot)]  => Prints out the tree\n")
	fmt.Fprintf(s.out, "s|save [FILE]                  => Saves a binary snapshot\n")
	fmt.Fprintf(s.out, "c|clear                        => Clears the tree\n")
	fmt.Fprintf(s.out, "h|help                         => Shows this summary\n")
	fmt.Fprintf(s.out, "q|e|quit|exit                  => Quits\n")
}

// dispatch - run a single command line
// returns false on the quit command
func (s *shell) dispatch(line string) bool {

	if quitPattern.MatchString(line) {
		return false
	}

	if m := insertPattern.FindStringSubmatch(line); nil != m {
		if n, ok := s.number(m[1]); ok {
			if err := s.tree.Insert(n); nil != err {
				s.fail(err)
			} else {
				s.log.Infof("insert: %d", n)
			}
		}
		return true
	}

	if m := updatePattern.FindStringSubmatch(line); nil != m {
		if n, ok := s.number(m[1]); ok {
			s.tree.Update(n)
			s.log.Infof("update: %d", n)
		}
		return true
	}

	if m := removePattern.FindStringSubmatch(line); nil != m {
		if n, ok := s.number(m[1]); ok {
			if _, err := s.tree.Delete(n); nil != err {
				s.fail(err)
			} else {
				s.log.Infof("remove: %d", n)
			}
		}
		return true
	}

	if m := findPattern.FindStringSubmatch(line); nil != m {
		if n, ok := s.number(m[1]); ok {
			item := s.tree.Search(n)
			if nil == item {
				s.fail(fault.ErrItemNotFound)
			} else {
				fmt.Fprintf(s.out, "%v\n", item)
			}
		}
		return true
	}

	if minPattern.MatchString(line) {
		s.show(s.tree.First())
		return true
	}

	if maxPattern.MatchString(line) {
		s.show(s.tree.Last())
		return true
	}

	if popPattern.MatchString(line) {
		s.show(s.tree.Pop())
		return true
	}

	if popleftPattern.MatchString(line) {
		s.show(s.tree.PopLeft())
		return true
	}

	if m := printPattern.FindStringSubmatch(line); nil != m {
		s.print(strings.ToLower(m[1]))
		return true
	}

	if m := savePattern.FindStringSubmatch(line); nil != m {
		s.save(m[1])
		return true
	}

	if clearPattern.MatchString(line) {
		s.tree.Clear()
		s.log.Info("clear")
		return true
	}

	if helpPattern.MatchString(line) {
		s.help()
		return true
	}

	s.fail(fault.ErrInvalidCommand)
	return true
}

// internal: print one traversal of the tree
func (s *shell) print(mode string) {
	if "" == mode {
		mode = "in"
	}
	switch mode {

	case "in":
		it := s.tree.InOrder()
		for it.HasNext() {
			item, err := it.Next()
			if nil != err {
				s.fail(err)
				return
			}
			fmt.Fprintf(s.out, "%v ", item)
		}
		fmt.Fprintln(s.out)

	case "level":
		it := s.tree.LevelOrder()
		currentLevel := 0
		for it.HasNext() {
			depth, item, err := it.Next()
			if nil != err {
				s.fail(err)
				return
			}
			if depth != currentLevel {
				fmt.Fprintln(s.out)
				currentLevel = depth
			}
			fmt.Fprintf(s.out, "%v ", item)
		}
		fmt.Fprintln(s.out)

	case "tree":
		depth := s.tree.Print(s.out, false)
		s.log.Infof("printed tree of depth: %d", depth)

	case "dot":
		if err := s.tree.DumpDot(s.out, "n"); nil != err {
			s.fail(err)
		}

	default:
		s.fail(fault.ErrInvalidCommand)
	}
}

// internal: binary snapshot to a file
func (s *shell) save(fileName string) {
	if "" == fileName {
		fileName = s.conf.DumpFile
	}
	f, err := os.Create(fileName)
	if nil != err {
		s.fail(err)
		return
	}
	defer f.Close()

	if err := s.tree.Dump(f); nil != err {
		s.fail(err)
		return
	}
	s.log.Infof("saved %d items to: %q", s.tree.Count(), fileName)
	fmt.Fprintf(s.out, "saved: %s\n", fileName)
}

// internal: report an extraction or extreme lookup
func (s *shell) show(item avl.Item, err error) {
	if nil != err {
		s.fail(err)
		return
	}
	fmt.Fprintf(s.out, "%v\n", item)
}

// internal: parse a decimal item
func (s *shell) number(text string) (intItem, bool) {
	n, err := strconv.ParseInt(text, 10, 64)
	if nil != err {
		s.fail(err)
		return 0, false
	}
	return intItem(n), true
}

// internal: report a recoverable error
func (s *shell) fail(err error) {
	fmt.Fprintf(s.err, "Err: %s\n", err)
	s.log.Warnf("error: %s", err)
}
