package spirv

import "encoding/binary"

// headerWords is the number of 32-bit words in the fixed SPIR-V header:
// magic, version, generator, bound, schema.
const headerWords = 5

// Parse decodes a raw SPIR-V binary (little-endian 32-bit words, magic
// number at word 0) into a Module. It walks the instruction stream the way
// a disassembler does — using each instruction's own word count to find the
// next one — but, unlike a disassembler, only retains instructions the
// reflector's three layers (accessor, classifier, enumerator) ever look at:
// OpType*/OpConstant*/module-scope OpVariable, OpDecorate/OpMemberDecorate,
// OpName/OpMemberName, and OpEntryPoint/OpExecutionMode. Function bodies are
// walked (so the stream stays in sync) but never stored.
func Parse(code []byte) (*Module, error) {
	if len(code)%4 != 0 {
		return nil, newParseError("length %d is not a multiple of 4", len(code))
	}
	if len(code) < headerWords*4 {
		return nil, newParseError("input too short for a SPIR-V header (%d bytes)", len(code))
	}

	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}

	if words[0] != MagicNumber {
		return nil, newParseError("invalid magic number 0x%08X", words[0])
	}

	m := &Module{
		Header: &Header{
			Version: Version{
				Major: uint8((words[1] >> 16) & 0xFF),
				Minor: uint8((words[1] >> 8) & 0xFF),
			},
			Generator: words[2],
			Bound:     words[3],
			Schema:    words[4],
		},
	}

	inFunction := false
	offset := headerWords
	for offset < len(words) {
		word := words[offset]
		opcode := Opcode(word & 0xFFFF)
		wordCount := int(word >> 16)
		if wordCount == 0 || offset+wordCount > len(words) {
			return nil, newParseError("invalid word count %d at word offset %d", wordCount, offset)
		}
		ops := words[offset+1 : offset+wordCount]

		switch opcode {
		case OpFunction:
			inFunction = true
		case OpFunctionEnd:
			inFunction = false
		case OpName, OpMemberName:
			m.DebugNames = append(m.DebugNames, decodeDebugName(opcode, ops))
		case OpDecorate, OpMemberDecorate:
			m.Annotations = append(m.Annotations, decodeAnnotation(opcode, ops))
		case OpEntryPoint, OpExecutionMode:
			m.GlobalInstructions = append(m.GlobalInstructions, decodeGlobalInst(opcode, ops))
		default:
			if !inFunction {
				if instr, ok := decodeTypeGlobalValue(opcode, ops); ok {
					m.TypesGlobalValues = append(m.TypesGlobalValues, instr)
				}
			}
		}

		offset += wordCount
	}

	return m, nil
}

// decodeString reads a null-terminated, word-padded UTF-8 string starting
// at words[0], returning the string and the number of words it occupied.
func decodeString(words []uint32) (string, int) {
	buf := make([]byte, 0, len(words)*4)
	consumed := 0
	for _, w := range words {
		b := [4]byte{byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24)}
		consumed++
		terminated := false
		for _, c := range b {
			if c == 0 {
				terminated = true
				break
			}
			buf = append(buf, c)
		}
		if terminated {
			break
		}
	}
	return string(buf), consumed
}

func decodeDebugName(opcode Opcode, ops []uint32) Instruction {
	switch opcode {
	case OpMemberName:
		name, _ := decodeString(ops[2:])
		return Instruction{
			Opcode: opcode,
			Operands: []Operand{
				IDRef(ops[0]),
				LiteralInt32(ops[1]),
				LiteralString(name),
			},
		}
	default: // OpName
		name, _ := decodeString(ops[1:])
		return Instruction{
			Opcode: opcode,
			Operands: []Operand{
				IDRef(ops[0]),
				LiteralString(name),
			},
		}
	}
}

func decodeAnnotation(opcode Opcode, ops []uint32) Instruction {
	switch opcode {
	case OpMemberDecorate:
		operands := []Operand{
			IDRef(ops[0]),
			LiteralInt32(ops[1]),
			DecorationOperand(ops[2]),
		}
		for _, w := range ops[3:] {
			operands = append(operands, LiteralInt32(w))
		}
		return Instruction{Opcode: opcode, Operands: operands}
	default: // OpDecorate
		operands := []Operand{
			IDRef(ops[0]),
			DecorationOperand(ops[1]),
		}
		for _, w := range ops[2:] {
			operands = append(operands, LiteralInt32(w))
		}
		return Instruction{Opcode: opcode, Operands: operands}
	}
}

func decodeGlobalInst(opcode Opcode, ops []uint32) Instruction {
	switch opcode {
	case OpEntryPoint:
		name, consumed := decodeString(ops[2:])
		operands := []Operand{
			ExecutionModelOperand(ops[0]),
			IDRef(ops[1]),
			LiteralString(name),
		}
		for _, w := range ops[2+consumed:] {
			operands = append(operands, IDRef(w))
		}
		return Instruction{Opcode: opcode, Operands: operands}
	default: // OpExecutionMode
		operands := []Operand{
			IDRef(ops[0]),
			ExecutionModeOperand(ops[1]),
		}
		for _, w := range ops[2:] {
			operands = append(operands, LiteralInt32(w))
		}
		return Instruction{Opcode: opcode, Operands: operands}
	}
}

// decodeTypeGlobalValue decodes an OpType*, OpConstant*, or module-scope
// OpVariable instruction. ok is false for opcodes this package does not
// retain in TypesGlobalValues.
func decodeTypeGlobalValue(opcode Opcode, ops []uint32) (Instruction, bool) {
	switch opcode {
	case OpTypeVoid, OpTypeBool, OpTypeSampler, OpTypeAccelerationStructureKHR:
		id := ops[0]
		return Instruction{Opcode: opcode, ResultID: &id}, true

	case OpTypeInt:
		id := ops[0]
		return Instruction{Opcode: opcode, ResultID: &id, Operands: []Operand{
			LiteralInt32(ops[1]), LiteralInt32(ops[2]),
		}}, true

	case OpTypeFloat:
		id := ops[0]
		return Instruction{Opcode: opcode, ResultID: &id, Operands: []Operand{
			LiteralInt32(ops[1]),
		}}, true

	case OpTypeVector, OpTypeMatrix:
		id := ops[0]
		return Instruction{Opcode: opcode, ResultID: &id, Operands: []Operand{
			IDRef(ops[1]), LiteralInt32(ops[2]),
		}}, true

	case OpTypeImage:
		id := ops[0]
		operands := []Operand{
			IDRef(ops[1]),
			DimOperand(ops[2]),
			LiteralInt32(ops[3]),
			LiteralInt32(ops[4]),
			LiteralInt32(ops[5]),
			LiteralInt32(ops[6]),
			LiteralInt32(ops[7]),
		}
		if len(ops) > 8 {
			operands = append(operands, LiteralInt32(ops[8]))
		}
		return Instruction{Opcode: opcode, ResultID: &id, Operands: operands}, true

	case OpTypeSampledImage:
		id := ops[0]
		return Instruction{Opcode: opcode, ResultID: &id, Operands: []Operand{IDRef(ops[1])}}, true

	case OpTypeArray:
		id := ops[0]
		return Instruction{Opcode: opcode, ResultID: &id, Operands: []Operand{
			IDRef(ops[1]), IDRef(ops[2]),
		}}, true

	case OpTypeRuntimeArray:
		id := ops[0]
		return Instruction{Opcode: opcode, ResultID: &id, Operands: []Operand{IDRef(ops[1])}}, true

	case OpTypeStruct:
		id := ops[0]
		operands := make([]Operand, 0, len(ops)-1)
		for _, w := range ops[1:] {
			operands = append(operands, IDRef(w))
		}
		return Instruction{Opcode: opcode, ResultID: &id, Operands: operands}, true

	case OpTypePointer:
		id := ops[0]
		return Instruction{Opcode: opcode, ResultID: &id, Operands: []Operand{
			StorageClassOperand(ops[1]), IDRef(ops[2]),
		}}, true

	case OpTypeFunction:
		id := ops[0]
		operands := make([]Operand, 0, len(ops)-1)
		for _, w := range ops[1:] {
			operands = append(operands, IDRef(w))
		}
		return Instruction{Opcode: opcode, ResultID: &id, Operands: operands}, true

	case OpConstantTrue, OpConstantFalse, OpConstantNull:
		rt, id := ops[0], ops[1]
		return Instruction{Opcode: opcode, ResultType: &rt, ResultID: &id}, true

	case OpConstant:
		rt, id := ops[0], ops[1]
		value := ops[2:]
		var operand Operand
		if len(value) >= 2 {
			operand = LiteralInt64(uint64(value[0]) | uint64(value[1])<<32)
		} else {
			operand = LiteralInt32(value[0])
		}
		return Instruction{Opcode: opcode, ResultType: &rt, ResultID: &id, Operands: []Operand{operand}}, true

	case OpConstantComposite:
		rt, id := ops[0], ops[1]
		operands := make([]Operand, 0, len(ops)-2)
		for _, w := range ops[2:] {
			operands = append(operands, IDRef(w))
		}
		return Instruction{Opcode: opcode, ResultType: &rt, ResultID: &id, Operands: operands}, true

	case OpConstantSampler:
		rt, id := ops[0], ops[1]
		operands := make([]Operand, 0, len(ops)-2)
		for _, w := range ops[2:] {
			operands = append(operands, LiteralInt32(w))
		}
		return Instruction{Opcode: opcode, ResultType: &rt, ResultID: &id, Operands: operands}, true

	case OpVariable:
		rt, id := ops[0], ops[1]
		operands := []Operand{StorageClassOperand(ops[2])}
		if len(ops) > 3 {
			operands = append(operands, IDRef(ops[3]))
		}
		return Instruction{Opcode: opcode, ResultType: &rt, ResultID: &id, Operands: operands}, true

	default:
		return Instruction{}, false
	}
}
