// Package emitter lowers the AST into the flat instruction sequence the VM
// executes. Lowering is a pure function of the tree: constants and names
// are interned in first-seen order, so identical ASTs always produce
// byte-identical bytecode.
package emitter

import (
	"fmt"

	"github.com/agenthands/mica/pkg/compiler/ast"
	"github.com/agenthands/mica/pkg/core/value"
	"github.com/agenthands/mica/pkg/vm"
)

// Packed-field capacities. Real programs never approach these; hitting one
// is the only way Emit can fail.
const (
	maxPoolSize = 1 << 24
	maxNames    = 1 << 16
	maxArgc     = 1 << 8
)

type Emitter struct {
	instructions []uint32
	constants    []value.Value
	names        []string
	nameIndex    map[string]uint32
}

func NewEmitter() *Emitter {
	return &Emitter{nameIndex: make(map[string]uint32)}
}

// Emit lowers the statement sequence into bytecode. Expression lowering is
// postorder (operands before operators), so every expression leaves
// exactly one net value on the stack and every statement is stack-neutral.
func (e *Emitter) Emit(stmts []ast.Stmt) (*vm.Bytecode, error) {
	for _, stmt := range stmts {
		if err := e.emitStmt(stmt); err != nil {
			return nil, err
		}
	}
	return &vm.Bytecode{
		Instructions: e.instructions,
		Constants:    e.constants,
		Names:        e.names,
	}, nil
}

func (e *Emitter) emitStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Let:
		if err := e.emitExpr(s.Value); err != nil {
			return err
		}
		idx, err := e.internName(s.Name)
		if err != nil {
			return err
		}
		e.emitOp(vm.OP_STORE_VAR, idx)
		return nil

	case *ast.ExprStmt:
		// A call at statement position is inherently side-effecting and
		// stack-neutral; any other bare expression discards its value.
		if call, ok := s.Expr.(*ast.Call); ok {
			return e.emitCall(call)
		}
		if err := e.emitExpr(s.Expr); err != nil {
			return err
		}
		e.emitOp(vm.OP_POP, 0)
		return nil

	default:
		return fmt.Errorf("emitter: unknown statement %T", stmt)
	}
}

func (e *Emitter) emitExpr(expr ast.Expr) error {
	switch x := expr.(type) {
	case *ast.NoneLit:
		e.emitOp(vm.OP_PUSH_NONE, 0)
	case *ast.IntLit:
		idx, err := e.addConstant(value.Int(x.Value))
		if err != nil {
			return err
		}
		e.emitOp(vm.OP_PUSH_INT, idx)
	case *ast.FloatLit:
		idx, err := e.addConstant(value.Float(x.Value))
		if err != nil {
			return err
		}
		e.emitOp(vm.OP_PUSH_FLOAT, idx)
	case *ast.StringLit:
		idx, err := e.addConstant(value.Str(x.Value))
		if err != nil {
			return err
		}
		e.emitOp(vm.OP_PUSH_STR, idx)
	case *ast.VarRef:
		idx, err := e.internName(x.Name)
		if err != nil {
			return err
		}
		e.emitOp(vm.OP_LOAD_VAR, idx)
	case *ast.Binary:
		if err := e.emitExpr(x.Left); err != nil {
			return err
		}
		if err := e.emitExpr(x.Right); err != nil {
			return err
		}
		e.emitOp(binaryOpcode(x.Op), 0)
	case *ast.Call:
		return e.emitCall(x)
	default:
		return fmt.Errorf("emitter: unknown expression %T", expr)
	}
	return nil
}

// emitCall lowers arguments left-to-right, then the call itself. The call
// instruction consumes all argc values and pushes nothing back.
func (e *Emitter) emitCall(call *ast.Call) error {
	if len(call.Args) >= maxArgc {
		return fmt.Errorf("emitter: call to %s has too many arguments (%d)", call.Name, len(call.Args))
	}
	for _, arg := range call.Args {
		if err := e.emitExpr(arg); err != nil {
			return err
		}
	}
	idx, err := e.internName(call.Name)
	if err != nil {
		return err
	}
	e.instructions = append(e.instructions, vm.EncodeCall(idx, uint32(len(call.Args))))
	return nil
}

func (e *Emitter) emitOp(op uint8, arg uint32) {
	e.instructions = append(e.instructions, vm.Encode(op, arg))
}

// addConstant returns the pool index for v, reusing an existing slot when
// an identical constant was already interned.
func (e *Emitter) addConstant(v value.Value) (uint32, error) {
	for i, c := range e.constants {
		if c == v {
			return uint32(i), nil
		}
	}
	if len(e.constants) >= maxPoolSize {
		return 0, fmt.Errorf("emitter: constant pool exhausted")
	}
	e.constants = append(e.constants, v)
	return uint32(len(e.constants) - 1), nil
}

func (e *Emitter) internName(name string) (uint32, error) {
	if idx, ok := e.nameIndex[name]; ok {
		return idx, nil
	}
	if len(e.names) >= maxNames {
		return 0, fmt.Errorf("emitter: name table exhausted")
	}
	idx := uint32(len(e.names))
	e.names = append(e.names, name)
	e.nameIndex[name] = idx
	return idx, nil
}

func binaryOpcode(op ast.BinOp) uint8 {
	switch op {
	case ast.OpAdd:
		return vm.OP_ADD
	case ast.OpSub:
		return vm.OP_SUB
	case ast.OpMul:
		return vm.OP_MUL
	case ast.OpDiv:
		return vm.OP_DIV
	case ast.OpIntDiv:
		return vm.OP_INTDIV
	default:
		return vm.OP_MOD
	}
}
