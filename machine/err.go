package machine

import (
	"errors"

	"github.com/amartos/BFG/translate"
)

var f = translate.From

var (
	// Load errors
	ErrDanglingOpen  = errors.New(f("dangling '['"))
	ErrDanglingClose = errors.New(f("dangling ']'"))

	// Machine errors
	ErrPointer = errors.New(f("negative data pointer"))

	// Expander errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrMacroSyntax     = errors.New(f(".macro syntax"))
	ErrMacroNesting    = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate  = errors.New(f(".macro duplicated"))
	ErrMacroLonely     = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm = errors.New(f(".endm without .macro"))
)

// ErrProgram locates a load error in the instruction sequence.
type ErrProgram struct {
	Pos int
	Err error
}

func (err *ErrProgram) Error() string {
	return f("instruction #%d %v", err.Pos, err.Err)
}

func (err *ErrProgram) Unwrap() error {
	return err.Err
}

// ErrRuntime locates a fault in the executed program.
type ErrRuntime struct {
	Pc  int
	Op  Op
	Ptr int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("instruction #%d ('%v') ptr %d %v", err.Pc, err.Op, err.Ptr, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrSyntax locates an expansion error in the extended source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err *ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err *ErrMacro) Unwrap() error {
	return err.Err
}
