package reflection

import "github.com/gogpu/spirvreflect/spirv"

// findAssignmentFor returns the first instruction in instrs whose ResultID
// equals id. Lookup is a linear scan: each top-level reflection call only
// ever resolves a handful of ids, so no index is built over instrs.
func findAssignmentFor(instrs []spirv.Instruction, id uint32) (spirv.Instruction, error) {
	for _, instr := range instrs {
		if instr.ResultID != nil && *instr.ResultID == id {
			return instr, nil
		}
	}
	return spirv.Instruction{}, newErr(ErrUnassignedResultID, "id %%%d has no defining instruction", id)
}

// findAnnotationsForID returns, in source order, every annotation in anns
// whose operand 0 is IDRef(id).
func findAnnotationsForID(anns []spirv.Instruction, id uint32) ([]spirv.Instruction, error) {
	var out []spirv.Instruction
	for _, instr := range anns {
		target, err := operandIDRef(instr, 0)
		if err != nil {
			return nil, err
		}
		if uint32(target) == id {
			out = append(out, instr)
		}
	}
	return out, nil
}

// operandAt returns the operand at position i, or an error identifying
// whether i was out of range or occupied by a different operand kind.
func operandAt(instr spirv.Instruction, i int) (spirv.Operand, error) {
	if i < 0 || i >= len(instr.Operands) {
		return nil, newErrInstr(ErrOperandIndex, instr,
			"operand %d out of range (len %d)", i, len(instr.Operands))
	}
	return instr.Operands[i], nil
}

// The accessors below are the value-returning half of spec's borrow/value
// pair (see operandRef* in this file for the reference-returning half).
// Only LiteralString has a pointer-returning form; every other operand kind
// is read through its value accessor alone.

func operandIDRef(instr spirv.Instruction, i int) (spirv.IDRef, error) {
	op, err := operandAt(instr, i)
	if err != nil {
		return 0, err
	}
	v, ok := op.(spirv.IDRef)
	if !ok {
		return 0, newErrInstr(ErrOperand, instr, "operand %d is not IDRef", i)
	}
	return v, nil
}

func operandLiteralInt32(instr spirv.Instruction, i int) (spirv.LiteralInt32, error) {
	op, err := operandAt(instr, i)
	if err != nil {
		return 0, err
	}
	v, ok := op.(spirv.LiteralInt32)
	if !ok {
		return 0, newErrInstr(ErrOperand, instr, "operand %d is not LiteralInt32", i)
	}
	return v, nil
}

func operandLiteralInt64(instr spirv.Instruction, i int) (spirv.LiteralInt64, error) {
	op, err := operandAt(instr, i)
	if err != nil {
		return 0, err
	}
	v, ok := op.(spirv.LiteralInt64)
	if !ok {
		return 0, newErrInstr(ErrOperand, instr, "operand %d is not LiteralInt64", i)
	}
	return v, nil
}

func operandLiteralString(instr spirv.Instruction, i int) (spirv.LiteralString, error) {
	op, err := operandAt(instr, i)
	if err != nil {
		return "", err
	}
	v, ok := op.(spirv.LiteralString)
	if !ok {
		return "", newErrInstr(ErrOperand, instr, "operand %d is not LiteralString", i)
	}
	return v, nil
}

// operandRefLiteralString is the pointer-returning counterpart to
// operandLiteralString: it returns a pointer to a copy of the operand's
// string value (the string's bytes are shared, not duplicated), with the
// same error semantics as the value form.
func operandRefLiteralString(instr spirv.Instruction, i int) (*spirv.LiteralString, error) {
	op, err := operandAt(instr, i)
	if err != nil {
		return nil, err
	}
	v, ok := op.(spirv.LiteralString)
	if !ok {
		return nil, newErrInstr(ErrOperand, instr, "operand %d is not LiteralString", i)
	}
	return &v, nil
}

func operandDecoration(instr spirv.Instruction, i int) (spirv.DecorationOperand, error) {
	op, err := operandAt(instr, i)
	if err != nil {
		return 0, err
	}
	v, ok := op.(spirv.DecorationOperand)
	if !ok {
		return 0, newErrInstr(ErrOperand, instr, "operand %d is not Decoration", i)
	}
	return v, nil
}

func operandStorageClass(instr spirv.Instruction, i int) (spirv.StorageClassOperand, error) {
	op, err := operandAt(instr, i)
	if err != nil {
		return 0, err
	}
	v, ok := op.(spirv.StorageClassOperand)
	if !ok {
		return 0, newErrInstr(ErrOperand, instr, "operand %d is not StorageClass", i)
	}
	return v, nil
}

func operandDim(instr spirv.Instruction, i int) (spirv.DimOperand, error) {
	op, err := operandAt(instr, i)
	if err != nil {
		return 0, err
	}
	v, ok := op.(spirv.DimOperand)
	if !ok {
		return 0, newErrInstr(ErrOperand, instr, "operand %d is not Dim", i)
	}
	return v, nil
}

func operandExecutionMode(instr spirv.Instruction, i int) (spirv.ExecutionModeOperand, error) {
	op, err := operandAt(instr, i)
	if err != nil {
		return 0, err
	}
	v, ok := op.(spirv.ExecutionModeOperand)
	if !ok {
		return 0, newErrInstr(ErrOperand, instr, "operand %d is not ExecutionMode", i)
	}
	return v, nil
}

func resultType(instr spirv.Instruction) (uint32, error) {
	if instr.ResultType == nil {
		return 0, newErrInstr(ErrVariableWithoutReturnType, instr, "instruction has no result type")
	}
	return *instr.ResultType, nil
}
