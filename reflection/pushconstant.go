package reflection

import "github.com/gogpu/spirvreflect/spirv"

// GetPushConstantRange implements spec.md §4.4. It returns (nil, nil) when
// the shader declares no push constants, and a TooManyPushConstants error
// when it declares more than one.
func GetPushConstantRange(m *spirv.Module) (*PushConstantInfo, error) {
	c := newClassifier(m)

	var pcVar *spirv.Instruction
	for i := range m.TypesGlobalValues {
		instr := m.TypesGlobalValues[i]
		if instr.Opcode != spirv.OpVariable {
			continue
		}
		sc, err := operandStorageClass(instr, 0)
		if err != nil {
			return nil, err
		}
		if spirv.StorageClass(sc) != spirv.StorageClassPushConstant {
			continue
		}
		if pcVar != nil {
			return nil, newErrInstr(ErrTooManyPushConstants, instr, "more than one PushConstant variable")
		}
		pcVar = &m.TypesGlobalValues[i]
	}
	if pcVar == nil {
		return nil, nil
	}

	rt, err := resultType(*pcVar)
	if err != nil {
		return nil, err
	}
	typeInstr, err := c.findType(rt)
	if err != nil {
		return nil, err
	}
	if typeInstr.Opcode == spirv.OpTypePointer {
		ptrClass, err := operandStorageClass(typeInstr, 0)
		if err != nil {
			return nil, err
		}
		if spirv.StorageClass(ptrClass) != spirv.StorageClassPushConstant {
			return nil, newErrInstr(ErrUnknownStorageClass, typeInstr, "push constant pointer storage class mismatch")
		}
		pointee, err := operandIDRef(typeInstr, 1)
		if err != nil {
			return nil, err
		}
		typeInstr, err = c.findType(uint32(pointee))
		if err != nil {
			return nil, err
		}
	}

	size, err := c.sizeOf(typeInstr)
	if err != nil {
		return nil, err
	}
	return &PushConstantInfo{Offset: 0, Size: size}, nil
}
