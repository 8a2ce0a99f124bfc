package vm

import (
	"fmt"
	"io"

	"github.com/agenthands/mica/pkg/core/diag"
	"github.com/agenthands/mica/pkg/core/value"
)

// Machine executes one bytecode program against an operand stack and a
// flat global variable table. Both are owned exclusively by the machine;
// separate machines share nothing, so instances are independently testable.
type Machine struct {
	stack   []value.Value
	globals map[string]value.Value
	out     io.Writer
}

// New returns a machine whose print output goes to out.
func New(out io.Writer) *Machine {
	return &Machine{
		globals: make(map[string]value.Value),
		out:     out,
	}
}

// Run executes the program in a single linear pass. The first runtime
// error aborts execution; on success the operand stack is empty again
// (well-formed lowering is stack-balanced by construction).
func (m *Machine) Run(bc *Bytecode) error {
	for _, instr := range bc.Instructions {
		op := uint8(instr >> 24)
		arg := instr & 0x00FFFFFF

		switch op {
		case OP_PUSH_NONE:
			m.push(value.None())

		case OP_PUSH_INT, OP_PUSH_FLOAT, OP_PUSH_STR:
			m.push(bc.Constants[arg])

		case OP_LOAD_VAR:
			name := bc.Names[arg]
			v, ok := m.globals[name]
			if !ok {
				return &diag.UndefinedVariable{Name: name}
			}
			m.push(v)

		case OP_STORE_VAR:
			v, err := m.pop("store variable")
			if err != nil {
				return err
			}
			m.globals[bc.Names[arg]] = v

		case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_INTDIV, OP_MOD:
			if err := m.arithmetic(op); err != nil {
				return err
			}

		case OP_CALL_BUILTIN:
			name := bc.Names[arg>>8]
			argc := int(arg & 0xFF)
			if err := m.callBuiltin(name, argc); err != nil {
				return err
			}

		case OP_POP:
			if _, err := m.pop("Pop"); err != nil {
				return err
			}

		default:
			// Unreachable for emitter output; a corrupt stream is an
			// implementation bug, not a language error.
			return fmt.Errorf("vm: illegal opcode 0x%02x", op)
		}
	}
	return nil
}

// callBuiltin dispatches a call instruction. print is the only builtin: it
// pops argc values, restores their source order, and writes each on its
// own line.
func (m *Machine) callBuiltin(name string, argc int) error {
	if name != "print" {
		return &diag.UnknownBuiltin{Name: name}
	}

	args := make([]value.Value, argc)
	for i := argc - 1; i >= 0; i-- {
		v, err := m.pop("print")
		if err != nil {
			return err
		}
		args[i] = v
	}
	for _, v := range args {
		fmt.Fprintln(m.out, v.Format())
	}
	return nil
}

// arithmetic pops the right operand then the left (right was pushed last)
// and pushes the result of the coercion matrix in arith.go.
func (m *Machine) arithmetic(op uint8) error {
	name := opName(op)

	right, err := m.pop(name)
	if err != nil {
		return err
	}
	left, err := m.pop(name)
	if err != nil {
		return err
	}

	// Zero divisors are rejected before type dispatch so the check applies
	// uniformly across numeric type pairs.
	if op == OP_DIV || op == OP_INTDIV || op == OP_MOD {
		if right.IsZero() {
			return &diag.DivisionByZero{Operation: name}
		}
	}

	result, err := apply(left, right, op)
	if err != nil {
		return err
	}
	m.push(result)
	return nil
}

func (m *Machine) push(v value.Value) {
	m.stack = append(m.stack, v)
}

func (m *Machine) pop(operation string) (value.Value, error) {
	if len(m.stack) == 0 {
		return value.Value{}, &diag.StackUnderflow{Operation: operation}
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}

// StackSize reports the current operand-stack depth. After a successful
// Run of emitter output it is always zero.
func (m *Machine) StackSize() int {
	return len(m.stack)
}

// Global looks up a variable in the global table.
func (m *Machine) Global(name string) (value.Value, bool) {
	v, ok := m.globals[name]
	return v, ok
}
