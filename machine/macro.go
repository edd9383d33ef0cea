// Copyright 2023, Alexandre Martos <contact@amartos.fr>

package machine

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/amartos/BFG/arena"
)

// Macro represents a macro definition in extended source text.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":       "0",
	"CELL_MAX":     fmt.Sprintf("%v", arena.CELL_MAX),
	"STRICT_LIMIT": fmt.Sprintf("%v", arena.STRICT_LIMIT),
}

// Expander is a single pass macro expander turning extended source
// text into plain source text. Extended source adds equates, macros,
// character quotes, compile-time $() expressions and instruction
// repetitions on top of the plain language; the expanded output
// contains instructions and comments only.
type Expander struct {
	Verbose bool     // If set, verbosely logs the expander actions.
	Text    []string // Lines of expanded plain source text.

	predefine map[string]string   // Predefines
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.
}

// Predefine defines a new equate or redefines an existing equate.
func (e *Expander) Predefine(equ string, value string) {
	if e.predefine == nil {
		e.predefine = map[string]string{equ: value}
	} else {
		e.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (e *Expander) valueOf(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil || v64 < 0 {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)

	return
}

// parenEval does expand-time $(...) evaluations
func (e *Expander) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range e.Equate {
		var val int
		val, err = e.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be instruction
			// sequences or something else.
			continue
		}
		pred[key] = starlark.MakeInt(val)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// expandWord expands a repetition word, a run of instruction symbols
// with a repeat count attached, into the repeated run. Other words
// pass through unchanged; the plain language treats them as comments.
func (e *Expander) expandWord(word string) (out string, err error) {
	out = word

	re := regexp.MustCompile(`^([><+\-.,\[\]]+)\*(\S+)$`)
	found := re.FindStringSubmatch(word)
	if found == nil {
		return
	}

	count, err := e.valueOf(found[2])
	if err != nil {
		return
	}

	out = strings.Repeat(found[1], count)

	return
}

// parseLine expands a single line into plain source text.
func (e *Expander) parseLine(line string, lineno int) (err error) {
	// Set line number.
	e.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := e.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words := slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := e.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		e.Equate[words[1]] = words[2]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := e.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	// .macro processing
	macro, ok := e.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(e.Equate)
		for n, arg := range macro.Args {
			e.Equate[arg] = args[n]
		}
		defer func() { e.Equate = old_equate }()

		for n, body := range macro.Lines {
			lineno := macro.LineNo + n

			err = e.parseLine(body, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: body, Err: err}
				return
			}
		}

		return
	}

	for n, word := range words {
		words[n], err = e.expandWord(word)
		if err != nil {
			return
		}
	}

	e.Text = append(e.Text, strings.Join(words, " "))

	return
}

// Expand expands an input stream of extended source text into plain
// source text.
func (e *Expander) Expand(input io.Reader) (text string, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	e.Text = e.Text[:0]
	if e.Macro == nil {
		e.Macro = make(map[string](*Macro))
	}
	clear(e.Macro)
	e.Equate = maps.Clone(sysEquate)
	for attr, val := range e.predefine {
		e.Equate[attr] = val
	}

	for scanner.Scan() {
		raw := scanner.Text()
		lineno += 1

		if e.Verbose {
			log.Printf("%v: %v\n", lineno, raw)
		}

		line, _, _ = strings.Cut(raw, COMMENT)
		line = strings.TrimSpace(line)
		all_words := strings.Split(line, " ")

		var words []string
		for _, single := range all_words {
			if len(single) > 0 {
				words = append(words, single)
			}
		}

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := e.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			e.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		err = e.parseLine(line, lineno)
		if err != nil {
			return
		}
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	text = strings.Join(e.Text, "\n")

	return
}
