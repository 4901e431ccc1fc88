package spirv

// Operand is a typed SPIR-V instruction operand. SPIR-V operands are a
// closed, finite alphabet of kinds; Operand is a sum type over exactly the
// kinds this package's parser, reflector, and disassembler need to
// distinguish, modeled as a Go interface per one-value-per-kind rather than
// a single "any" field, so a caller pattern-matches with a type switch
// instead of re-deriving the kind from context.
type Operand interface {
	operand()
}

// IDRef is a reference to another instruction's result id.
type IDRef uint32

func (IDRef) operand() {}

// LiteralInt32 is a 32-bit integer literal operand (array lengths, member
// indices, decoration arguments, execution-mode arguments).
type LiteralInt32 uint32

func (LiteralInt32) operand() {}

// LiteralInt64 is a 64-bit integer literal operand, used by OpConstant
// when the constant's type is a 64-bit integer.
type LiteralInt64 uint64

func (LiteralInt64) operand() {}

// LiteralString is a null-terminated, word-padded UTF-8 string operand
// (OpName, OpMemberName, OpEntryPoint, OpString, ...).
type LiteralString string

func (LiteralString) operand() {}

// StorageClassOperand carries a StorageClass value (OpTypePointer operand 0,
// OpVariable operand 0).
type StorageClassOperand StorageClass

func (StorageClassOperand) operand() {}

// DecorationOperand carries a Decoration value (OpDecorate/OpMemberDecorate).
type DecorationOperand Decoration

func (DecorationOperand) operand() {}

// DimOperand carries a Dim value (OpTypeImage operand 1).
type DimOperand Dim

func (DimOperand) operand() {}

// ExecutionModeOperand carries an ExecutionMode value (OpExecutionMode operand 1).
type ExecutionModeOperand ExecutionMode

func (ExecutionModeOperand) operand() {}

// ExecutionModelOperand carries an ExecutionModel value (OpEntryPoint operand 0).
type ExecutionModelOperand ExecutionModel

func (ExecutionModelOperand) operand() {}
