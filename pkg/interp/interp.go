// Package interp chains the four pipeline stages — tokenize, parse,
// compile, run — and tags any failure with the stage that produced it.
package interp

import (
	"io"

	"github.com/agenthands/mica/pkg/compiler/emitter"
	"github.com/agenthands/mica/pkg/compiler/lexer"
	"github.com/agenthands/mica/pkg/compiler/parser"
	"github.com/agenthands/mica/pkg/vm"
)

// Stage identifies the pipeline stage a failure came from.
type Stage string

const (
	StageTokenize Stage = "tokenize"
	StageParse    Stage = "parse"
	StageCompile  Stage = "compile"
	StageRun      Stage = "run"
)

// Error wraps a stage failure. The underlying error is one of the kinds in
// pkg/core/diag, unchanged.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return string(e.Stage) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Run executes src end to end, writing print output to out. The first
// stage failure aborts the pipeline; later stages never see malformed
// input from an earlier one.
func Run(src []byte, out io.Writer) error {
	bc, err := Compile(src)
	if err != nil {
		return err
	}
	if err := vm.New(out).Run(bc); err != nil {
		return &Error{Stage: StageRun, Err: err}
	}
	return nil
}

// Compile runs the front half of the pipeline: source text to bytecode.
func Compile(src []byte) (*vm.Bytecode, error) {
	tokens, err := lexer.Tokenize(string(src))
	if err != nil {
		return nil, &Error{Stage: StageTokenize, Err: err}
	}

	stmts, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return nil, &Error{Stage: StageParse, Err: err}
	}

	bc, err := emitter.NewEmitter().Emit(stmts)
	if err != nil {
		return nil, &Error{Stage: StageCompile, Err: err}
	}
	return bc, nil
}
