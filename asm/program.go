package asm

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Statement is one assembled word with its source location.
type Statement struct {
	LineNo int
	Addr   int
	Source string
	Word   uint32
}

// Program is an assembled listing: the memory image plus the symbol
// table and per-word source locations.
type Program struct {
	Statements []Statement
	Symbol     map[string]int
}

// Binary returns the memory image, one word per statement, starting
// at address zero.
func (prog *Program) Binary() (words []uint32) {
	for _, st := range prog.Statements {
		words = append(words, st.Word)
	}
	return
}

// Debug returns the statement assembled at addr, if any.
func (prog *Program) Debug(addr uint32) (st *Statement) {
	for n := range prog.Statements {
		if uint32(prog.Statements[n].Addr) == addr {
			st = &prog.Statements[n]
			break
		}
	}
	return
}

// Words iterates the (address, word) pairs of the image.
func (prog *Program) Words() iter.Seq2[uint32, uint32] {
	return func(yield func(addr, word uint32) bool) {
		for _, st := range prog.Statements {
			if !yield(uint32(st.Addr), st.Word) {
				return
			}
		}
	}
}

// Symbols iterates the symbol table in name order, as name and
// value strings.
func (prog *Program) Symbols() iter.Seq2[string, string] {
	return func(yield func(name, value string) bool) {
		names := make([]string, 0, len(prog.Symbol))
		for name := range prog.Symbol {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			if !yield(name, fmt.Sprintf("%v", prog.Symbol[name])) {
				return
			}
		}
	}
}

// Save writes the program as object code, one decimal word per line
// with the source as a trailing comment.
func (prog *Program) Save(out io.Writer) (err error) {
	for _, st := range prog.Statements {
		_, err = fmt.Fprintf(out, "%11d   # %3d: %s\n", int32(st.Word), st.Addr, st.Source)
		if err != nil {
			return
		}
	}
	return
}

// LoadObject reads object code as written by Save: one word per
// line, decimal or 0x-prefixed, with # comments ignored.
func LoadObject(in io.Reader) (prog *Program, err error) {
	prog = &Program{Symbol: map[string]int{}}

	scanner := bufio.NewScanner(in)
	var lineno int
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(strings.Split(scanner.Text(), "#")[0])
		if line == "" {
			continue
		}

		v64, nerr := strconv.ParseInt(line, 0, 64)
		if nerr != nil || v64 < -(int64(1)<<31) || v64 > (int64(1)<<32)-1 {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrParseNumber(line)}
			prog = nil
			return
		}

		prog.Statements = append(prog.Statements, Statement{
			LineNo: lineno,
			Addr:   len(prog.Statements),
			Source: line,
			Word:   uint32(v64),
		})
	}
	err = scanner.Err()
	if err != nil {
		prog = nil
	}

	return
}
