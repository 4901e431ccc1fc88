package spirv

// Header carries the SPIR-V module header fields. Parse always sets a
// Module's Header (input too short for a header is a ParseError); only a
// Module built by hand can leave it nil.
type Header struct {
	Version   Version
	Generator uint32
	Bound     uint32
	Schema    uint32
}

// Instruction is a single SPIR-V instruction: an opcode, an optional result
// id, an optional result type id, and its ordered operands. ResultID and
// ResultType are carried out of Operands (mirroring how the binary encoding
// itself treats them) rather than as Operand entries, since every consumer
// needs to test for their presence separately from the variable-length
// operand list.
type Instruction struct {
	Opcode     Opcode
	ResultID   *uint32
	ResultType *uint32
	Operands   []Operand
}

// Module is the in-memory instruction graph a SPIR-V binary parses into.
// It is immutable after Parse returns; reflection never mutates it.
type Module struct {
	Header *Header

	// TypesGlobalValues holds OpType*, OpConstant*, and module-scope
	// OpVariable instructions, in source order.
	TypesGlobalValues []Instruction

	// Annotations holds OpDecorate / OpMemberDecorate instructions.
	Annotations []Instruction

	// DebugNames holds OpName / OpMemberName instructions.
	DebugNames []Instruction

	// GlobalInstructions holds OpEntryPoint / OpExecutionMode instructions.
	GlobalInstructions []Instruction
}
