package vm

// Opcodes. Instructions are uint32 words: opcode in the top byte, a 24-bit
// argument below. Push opcodes index the constant pool, variable opcodes
// index the name table, and OP_CALL_BUILTIN packs a name index and an
// argument count (see EncodeCall). There are no jump opcodes: the source
// language has no control flow, so every program is a straight line.
const (
	OP_PUSH_NONE  uint8 = 0x00
	OP_PUSH_INT   uint8 = 0x01
	OP_PUSH_FLOAT uint8 = 0x02
	OP_PUSH_STR   uint8 = 0x03
	OP_LOAD_VAR   uint8 = 0x04
	OP_STORE_VAR  uint8 = 0x05

	OP_ADD    uint8 = 0x10
	OP_SUB    uint8 = 0x11
	OP_MUL    uint8 = 0x12
	OP_DIV    uint8 = 0x13
	OP_INTDIV uint8 = 0x14
	OP_MOD    uint8 = 0x15

	OP_CALL_BUILTIN uint8 = 0x20
	OP_POP          uint8 = 0x21
)

// opName returns the operation name carried by arithmetic diagnostics.
func opName(op uint8) string {
	switch op {
	case OP_ADD:
		return "add"
	case OP_SUB:
		return "subtract"
	case OP_MUL:
		return "multiply"
	case OP_DIV:
		return "divide"
	case OP_INTDIV:
		return "integer-divide"
	case OP_MOD:
		return "mod"
	default:
		return "unknown"
	}
}
