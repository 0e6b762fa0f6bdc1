package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"github.com/duckmachine/duckvm/instr"
	"github.com/duckmachine/duckvm/memory"
)

// Predefined system equates.
var sysEquate = map[string]string{
	"LINENO":      "0",
	"ADDR_INPUT":  fmt.Sprintf("%v", memory.ADDR_INPUT),
	"ADDR_OUTPUT": fmt.Sprintf("%v", memory.ADDR_OUTPUT),
}

// statement is one parsed source line that generates a word.
type statement struct {
	lineNo int
	addr   int
	source string

	data  bool
	value string // DATA value, resolved in pass two.

	in     instr.Instruction
	offset string // Symbolic offset, resolved in pass two.
}

// Assembler is a two-pass assembler for duck machine assembly.
// Pass one parses lines and collects labels; pass two resolves
// symbols and encodes instruction words.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Label  map[string]int    // Map of labels to addresses.
	Equate map[string]string // Map of equates.

	predefine map[string]string
	stmts     []statement
}

// Predefine defines a new equate or redefines an existing equate
// before parsing begins.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// opMap maps opcode names.
var opMap = map[string]instr.OpCode{
	"HALT":  instr.HALT,
	"LOAD":  instr.LOAD,
	"STORE": instr.STORE,
	"ADD":   instr.ADD,
	"SUB":   instr.SUB,
	"MUL":   instr.MUL,
	"DIV":   instr.DIV,
}

// parseCond parses a predicate suffix. An empty suffix is ALWAYS.
func parseCond(word string) (cond instr.CondFlag, err error) {
	switch word {
	case "", "ALWAYS":
		cond = instr.ALWAYS
	case "NEVER":
		cond = instr.NEVER
	default:
		for _, r := range word {
			switch r {
			case 'M':
				cond |= instr.M
			case 'Z':
				cond |= instr.Z
			case 'P':
				cond |= instr.P
			case 'V':
				cond |= instr.V
			default:
				err = ErrCondInvalid
				return
			}
		}
	}
	return
}

var regRE = regexp.MustCompile(`^r(\d{1,2})$`)

// parseReg parses a register name, r0..r15 or the pc alias.
func parseReg(word string) (reg int, err error) {
	if word == "pc" {
		reg = 15
		return
	}
	m := regRE.FindStringSubmatch(word)
	if m == nil {
		err = ErrRegisterInvalid
		return
	}
	reg, _ = strconv.Atoi(m[1])
	if reg > 15 {
		err = ErrRegisterInvalid
	}
	return
}

var (
	labelRE   = regexp.MustCompile(`^(\w+):\s*(.*)$`)
	instrRE   = regexp.MustCompile(`^([A-Za-z]+)(?:/(\w+))?(?:\s+(\S.*))?$`)
	operandRE = regexp.MustCompile(`^(\w+),(\w+),(\w+)(?:\[([^\]]+)\])?$`)
	exprRE    = regexp.MustCompile(`\$\([^\$]*\)`)
)

// Parse parses an input stream into an assembled Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	asm.stmts = asm.stmts[:0]
	asm.Label = make(map[string]int, 16)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	// Pass one: parse lines, collect labels and statements.
	for scanner.Scan() {
		text := scanner.Text()
		lineno++

		if asm.Verbose {
			log.Printf("asm: %v: %v", lineno, text)
		}

		line = strings.TrimSpace(strings.Split(text, "#")[0])
		err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// Pass two: resolve symbols and encode.
	prog = &Program{Symbol: maps.Clone(asm.Label)}
	for _, st := range asm.stmts {
		var word uint32
		word, err = asm.encode(&st)
		if err != nil {
			lineno = st.lineNo
			line = st.source
			return
		}
		prog.Statements = append(prog.Statements, Statement{
			LineNo: st.lineNo,
			Addr:   st.addr,
			Source: st.source,
			Word:   word,
		})
	}

	return
}

// parseLine parses a single comment-stripped line.
func (asm *Assembler) parseLine(line string, lineno int) (err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations.
	line = exprRE.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.exprEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	if line == "" {
		return
	}

	// .equ NAME VALUE
	if strings.HasPrefix(line, ".equ") {
		words := strings.Fields(line)
		if len(words) != 3 {
			return ErrEquateSyntax
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			return ErrEquateDuplicate
		}
		asm.Equate[words[1]] = words[2]
		return
	}

	// label:
	if m := labelRE.FindStringSubmatch(line); m != nil {
		label := m[1]
		_, ok := asm.Label[label]
		if ok {
			return ErrLabelDuplicate
		}
		asm.Label[label] = len(asm.stmts)
		line = strings.TrimSpace(m[2])
		if line == "" {
			return
		}
	}

	st := statement{lineNo: lineno, addr: len(asm.stmts), source: line}

	m := instrRE.FindStringSubmatch(line)
	if m == nil {
		return ErrOpcodeInvalid
	}
	name, condStr := m[1], m[2]
	rest := strings.ReplaceAll(strings.TrimSpace(m[3]), " ", "")

	if name == "DATA" {
		if condStr != "" || rest == "" {
			return ErrOperandSyntax
		}
		st.data = true
		st.value = rest
		asm.stmts = append(asm.stmts, st)
		return
	}

	// Pseudo-instruction expansion.
	switch name {
	case "HALT":
		if rest == "" {
			rest = "r0,r0,r0"
		}
	case "NOP":
		if rest != "" {
			return ErrOperandSyntax
		}
		name, rest = "ADD", "r0,r0,r0"
	case "MOVE":
		ops := strings.Split(rest, ",")
		if len(ops) != 2 {
			return ErrOperandSyntax
		}
		name, rest = "ADD", fmt.Sprintf("%v,%v,r0", ops[0], ops[1])
	case "JUMP":
		if rest == "" || strings.Contains(rest, ",") {
			return ErrOperandSyntax
		}
		name, rest = "ADD", fmt.Sprintf("r15,r0,r0[%v]", rest)
	}

	op, ok := opMap[name]
	if !ok {
		return ErrOpcodeInvalid
	}

	om := operandRE.FindStringSubmatch(rest)
	if om == nil {
		return ErrOperandSyntax
	}

	st.in.Op = op
	st.in.Cond, err = parseCond(condStr)
	if err != nil {
		return
	}
	st.in.RegTarget, err = parseReg(om[1])
	if err != nil {
		return
	}
	st.in.RegSrc1, err = parseReg(om[2])
	if err != nil {
		return
	}
	st.in.RegSrc2, err = parseReg(om[3])
	if err != nil {
		return
	}
	st.offset = om[4]

	asm.stmts = append(asm.stmts, st)
	return
}

// resolveValue resolves a number, label, or equate into a value.
func (asm *Assembler) resolveValue(word string) (value int64, err error) {
	return asm.resolve(word, 0)
}

func (asm *Assembler) resolve(word string, depth int) (value int64, err error) {
	if depth > 8 {
		err = ErrParseNumber(word)
		return
	}

	if addr, ok := asm.Label[word]; ok {
		value = int64(addr)
		return
	}
	if equ, ok := asm.Equate[word]; ok && equ != word {
		return asm.resolve(equ, depth+1)
	}

	value, nerr := strconv.ParseInt(word, 0, 64)
	if nerr != nil {
		if len(word) > 0 && (word[0] >= 'A' && word[0] <= 'Z' || word[0] >= 'a' && word[0] <= 'z' || word[0] == '_') {
			err = ErrLabelMissing(word)
		} else {
			err = ErrParseNumber(word)
		}
	}
	return
}

// encode resolves a statement's symbols and encodes its word.
func (asm *Assembler) encode(st *statement) (word uint32, err error) {
	if st.data {
		var v int64
		v, err = asm.resolveValue(st.value)
		if err != nil {
			return
		}
		if v < -(int64(1)<<31) || v > (int64(1)<<32)-1 {
			err = ErrValueRange
			return
		}
		word = uint32(v)
		return
	}

	if st.offset != "" {
		var v int64
		v, err = asm.resolveValue(st.offset)
		if err != nil {
			return
		}
		limit := int64(1) << (instr.OFFSET_BITS - 1)
		if v < -limit || v >= limit {
			err = ErrOffsetRange
			return
		}
		st.in.Offset = int32(v)
	}

	word = st.in.Encode()
	return
}
