package vm

import (
	"fmt"
	"strings"

	"github.com/agenthands/mica/pkg/core/value"
)

// Bytecode represents the compiled output of a program: a flat instruction
// sequence plus the constant pool and interned name table it refers to.
type Bytecode struct {
	Instructions []uint32
	Constants    []value.Value
	Names        []string
}

// Encode packs an opcode and its 24-bit argument into one instruction word.
func Encode(op uint8, arg uint32) uint32 {
	return (uint32(op) << 24) | (arg & 0x00FFFFFF)
}

// EncodeCall packs a builtin call: name-table index in the upper 16 bits of
// the argument, argument count in the lower 8.
func EncodeCall(nameIdx, argc uint32) uint32 {
	return Encode(OP_CALL_BUILTIN, (nameIdx<<8)|(argc&0xFF))
}

// String disassembles the bytecode, one instruction per line.
func (bc *Bytecode) String() string {
	var b strings.Builder
	for i, instr := range bc.Instructions {
		op := uint8(instr >> 24)
		arg := instr & 0x00FFFFFF
		fmt.Fprintf(&b, "%04d  ", i)

		switch op {
		case OP_PUSH_NONE:
			b.WriteString("PUSH_NONE")
		case OP_PUSH_INT, OP_PUSH_FLOAT, OP_PUSH_STR:
			name := map[uint8]string{
				OP_PUSH_INT:   "PUSH_INT",
				OP_PUSH_FLOAT: "PUSH_FLOAT",
				OP_PUSH_STR:   "PUSH_STR",
			}[op]
			fmt.Fprintf(&b, "%-12s %d", name, arg)
			if int(arg) < len(bc.Constants) {
				fmt.Fprintf(&b, "  ; %s", bc.Constants[arg].Format())
			}
		case OP_LOAD_VAR, OP_STORE_VAR:
			name := "LOAD_VAR"
			if op == OP_STORE_VAR {
				name = "STORE_VAR"
			}
			fmt.Fprintf(&b, "%-12s %d", name, arg)
			if int(arg) < len(bc.Names) {
				fmt.Fprintf(&b, "  ; %s", bc.Names[arg])
			}
		case OP_ADD:
			b.WriteString("ADD")
		case OP_SUB:
			b.WriteString("SUB")
		case OP_MUL:
			b.WriteString("MUL")
		case OP_DIV:
			b.WriteString("DIV")
		case OP_INTDIV:
			b.WriteString("INTDIV")
		case OP_MOD:
			b.WriteString("MOD")
		case OP_CALL_BUILTIN:
			nameIdx := arg >> 8
			argc := arg & 0xFF
			fmt.Fprintf(&b, "%-12s %d %d", "CALL_BUILTIN", nameIdx, argc)
			if int(nameIdx) < len(bc.Names) {
				fmt.Fprintf(&b, "  ; %s/%d", bc.Names[nameIdx], argc)
			}
		case OP_POP:
			b.WriteString("POP")
		default:
			fmt.Fprintf(&b, "DATA 0x%08x", instr)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
