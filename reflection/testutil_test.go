package reflection

import "github.com/gogpu/spirvreflect/spirv"

// idp returns a pointer to v, for building Instruction.ResultID/ResultType
// fields inline in test fixtures.
func idp(v uint32) *uint32 {
	return &v
}

func header(major, minor uint8) *spirv.Header {
	return &spirv.Header{Version: spirv.Version{Major: major, Minor: minor}}
}

func opName(target uint32, name string) spirv.Instruction {
	return spirv.Instruction{
		Opcode:   spirv.OpName,
		Operands: []spirv.Operand{spirv.IDRef(target), spirv.LiteralString(name)},
	}
}

func opDecorate(target uint32, dec spirv.Decoration, args ...uint32) spirv.Instruction {
	ops := []spirv.Operand{spirv.IDRef(target), spirv.DecorationOperand(dec)}
	for _, a := range args {
		ops = append(ops, spirv.LiteralInt32(a))
	}
	return spirv.Instruction{Opcode: spirv.OpDecorate, Operands: ops}
}

func opMemberDecorate(target uint32, member uint32, dec spirv.Decoration, args ...uint32) spirv.Instruction {
	ops := []spirv.Operand{spirv.IDRef(target), spirv.LiteralInt32(member), spirv.DecorationOperand(dec)}
	for _, a := range args {
		ops = append(ops, spirv.LiteralInt32(a))
	}
	return spirv.Instruction{Opcode: spirv.OpMemberDecorate, Operands: ops}
}

func typeInt(id uint32, width uint32, signed uint32) spirv.Instruction {
	return spirv.Instruction{Opcode: spirv.OpTypeInt, ResultID: idp(id), Operands: []spirv.Operand{
		spirv.LiteralInt32(width), spirv.LiteralInt32(signed),
	}}
}

func typeFloat(id uint32, width uint32) spirv.Instruction {
	return spirv.Instruction{Opcode: spirv.OpTypeFloat, ResultID: idp(id), Operands: []spirv.Operand{
		spirv.LiteralInt32(width),
	}}
}

func typeVector(id, compType, count uint32) spirv.Instruction {
	return spirv.Instruction{Opcode: spirv.OpTypeVector, ResultID: idp(id), Operands: []spirv.Operand{
		spirv.IDRef(compType), spirv.LiteralInt32(count),
	}}
}

func typePointer(id uint32, sc spirv.StorageClass, pointee uint32) spirv.Instruction {
	return spirv.Instruction{Opcode: spirv.OpTypePointer, ResultID: idp(id), Operands: []spirv.Operand{
		spirv.StorageClassOperand(sc), spirv.IDRef(pointee),
	}}
}

func typeStruct(id uint32, members ...uint32) spirv.Instruction {
	ops := make([]spirv.Operand, len(members))
	for i, m := range members {
		ops[i] = spirv.IDRef(m)
	}
	return spirv.Instruction{Opcode: spirv.OpTypeStruct, ResultID: idp(id), Operands: ops}
}

func typeArray(id, elemType, lengthConst uint32) spirv.Instruction {
	return spirv.Instruction{Opcode: spirv.OpTypeArray, ResultID: idp(id), Operands: []spirv.Operand{
		spirv.IDRef(elemType), spirv.IDRef(lengthConst),
	}}
}

func typeRuntimeArray(id, elemType uint32) spirv.Instruction {
	return spirv.Instruction{Opcode: spirv.OpTypeRuntimeArray, ResultID: idp(id), Operands: []spirv.Operand{
		spirv.IDRef(elemType),
	}}
}

func typeImage(id, sampledType uint32, dim spirv.Dim, sampled uint32) spirv.Instruction {
	return spirv.Instruction{Opcode: spirv.OpTypeImage, ResultID: idp(id), Operands: []spirv.Operand{
		spirv.IDRef(sampledType),
		spirv.DimOperand(dim),
		spirv.LiteralInt32(0), // depth
		spirv.LiteralInt32(0), // arrayed
		spirv.LiteralInt32(0), // ms
		spirv.LiteralInt32(sampled),
		spirv.LiteralInt32(0), // format
	}}
}

func typeSampledImage(id, imgType uint32) spirv.Instruction {
	return spirv.Instruction{Opcode: spirv.OpTypeSampledImage, ResultID: idp(id), Operands: []spirv.Operand{
		spirv.IDRef(imgType),
	}}
}

func typeSampler(id uint32) spirv.Instruction {
	return spirv.Instruction{Opcode: spirv.OpTypeSampler, ResultID: idp(id)}
}

func constant32(id, resultType, value uint32) spirv.Instruction {
	return spirv.Instruction{Opcode: spirv.OpConstant, ResultID: idp(id), ResultType: idp(resultType),
		Operands: []spirv.Operand{spirv.LiteralInt32(value)}}
}

func variable(id, resultType uint32, sc spirv.StorageClass) spirv.Instruction {
	return spirv.Instruction{Opcode: spirv.OpVariable, ResultID: idp(id), ResultType: idp(resultType),
		Operands: []spirv.Operand{spirv.StorageClassOperand(sc)}}
}

func executionMode(entryPoint uint32, mode spirv.ExecutionMode, args ...uint32) spirv.Instruction {
	ops := []spirv.Operand{spirv.IDRef(entryPoint), spirv.ExecutionModeOperand(mode)}
	for _, a := range args {
		ops = append(ops, spirv.LiteralInt32(a))
	}
	return spirv.Instruction{Opcode: spirv.OpExecutionMode, Operands: ops}
}
