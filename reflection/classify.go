package reflection

import "github.com/gogpu/spirvreflect/spirv"

// classifier holds the slices classify needs to resolve ids against —
// the module's types/constants/variables and their annotations — without
// threading a *spirv.Module through every recursive call.
type classifier struct {
	types *OrderedUint32Map[spirv.Instruction]
	anns  []spirv.Instruction
	hdr   *spirv.Header
}

func newClassifier(m *spirv.Module) *classifier {
	types := newUint32Map[spirv.Instruction]()
	for _, instr := range m.TypesGlobalValues {
		if instr.ResultID != nil {
			types.set(*instr.ResultID, instr)
		}
	}
	return &classifier{types: types, anns: m.Annotations, hdr: m.Header}
}

func (c *classifier) findType(id uint32) (spirv.Instruction, error) {
	instr, ok := c.types.Get(id)
	if !ok {
		return spirv.Instruction{}, newErr(ErrUnassignedResultID, "id %%%d has no defining type instruction", id)
	}
	return instr, nil
}

// classify is the recursive type classifier of spec.md §4.2: given a
// type-declaring instruction and the storage class of the variable that
// referenced it, it produces a DescriptorInfo (with Name left empty — the
// binding enumerator fills that in once it has the debug-name table).
func (c *classifier) classify(typeInstr spirv.Instruction, storageClass spirv.StorageClass) (DescriptorInfo, error) {
	switch typeInstr.Opcode {
	case spirv.OpTypePointer:
		ptrClass, err := operandStorageClass(typeInstr, 0)
		if err != nil {
			return DescriptorInfo{}, err
		}
		if spirv.StorageClass(ptrClass) != storageClass {
			return DescriptorInfo{}, newErrInstr(ErrUnknownStorageClass, typeInstr,
				"pointer storage class %d does not match variable storage class %d", ptrClass, storageClass)
		}
		pointee, err := operandIDRef(typeInstr, 1)
		if err != nil {
			return DescriptorInfo{}, err
		}
		pointeeInstr, err := c.findType(uint32(pointee))
		if err != nil {
			return DescriptorInfo{}, err
		}
		return c.classify(pointeeInstr, storageClass)

	case spirv.OpTypeArray:
		count, err := c.arrayLength(typeInstr)
		if err != nil {
			return DescriptorInfo{}, err
		}
		if count < 1 {
			return DescriptorInfo{}, newErrInstr(ErrUnhandledTypeInstruction, typeInstr, "array length %d is not >= 1", count)
		}
		elemTypeID, err := operandIDRef(typeInstr, 0)
		if err != nil {
			return DescriptorInfo{}, err
		}
		elemInstr, err := c.findType(uint32(elemTypeID))
		if err != nil {
			return DescriptorInfo{}, err
		}
		info, err := c.classify(elemInstr, storageClass)
		if err != nil {
			return DescriptorInfo{}, err
		}
		info.BindingCount = BindingStaticSized{N: count}
		return info, nil

	case spirv.OpTypeRuntimeArray:
		elemTypeID, err := operandIDRef(typeInstr, 0)
		if err != nil {
			return DescriptorInfo{}, err
		}
		elemInstr, err := c.findType(uint32(elemTypeID))
		if err != nil {
			return DescriptorInfo{}, err
		}
		info, err := c.classify(elemInstr, storageClass)
		if err != nil {
			return DescriptorInfo{}, err
		}
		info.BindingCount = BindingUnbounded{}
		return info, nil

	case spirv.OpTypeSampledImage:
		imgTypeID, err := operandIDRef(typeInstr, 0)
		if err != nil {
			return DescriptorInfo{}, err
		}
		imgInstr, err := c.findType(uint32(imgTypeID))
		if err != nil {
			return DescriptorInfo{}, err
		}
		if imgInstr.Opcode != spirv.OpTypeImage {
			return DescriptorInfo{}, newErrInstr(ErrUnhandledTypeInstruction, imgInstr, "sampled image operand is not TypeImage")
		}
		dim, err := operandDim(imgInstr, 1)
		if err != nil {
			return DescriptorInfo{}, err
		}
		if spirv.Dim(dim) == spirv.DimSubpassData {
			return DescriptorInfo{}, newErrInstr(ErrUnhandledTypeInstruction, imgInstr, "subpass data is invalid under TypeSampledImage")
		}
		info, err := c.classify(imgInstr, storageClass)
		if err != nil {
			return DescriptorInfo{}, err
		}
		if spirv.Dim(dim) != spirv.DimBuffer {
			info.Type = DescriptorTypeCombinedImageSampler
		}
		return DescriptorInfo{Type: info.Type, BindingCount: BindingOne{}}, nil

	case spirv.OpTypeSampler:
		return DescriptorInfo{Type: DescriptorTypeSampler, BindingCount: BindingOne{}}, nil

	case spirv.OpTypeImage:
		dim, err := operandDim(typeInstr, 1)
		if err != nil {
			return DescriptorInfo{}, err
		}
		sampled, err := operandLiteralInt32(typeInstr, 5)
		if err != nil {
			return DescriptorInfo{}, err
		}
		ty, err := classifyImage(typeInstr, spirv.Dim(dim), uint32(sampled))
		if err != nil {
			return DescriptorInfo{}, err
		}
		return DescriptorInfo{Type: ty, BindingCount: BindingOne{}}, nil

	case spirv.OpTypeStruct:
		ty, err := c.classifyStruct(typeInstr, storageClass)
		if err != nil {
			return DescriptorInfo{}, err
		}
		return DescriptorInfo{Type: ty, BindingCount: BindingOne{}}, nil

	case spirv.OpTypeAccelerationStructureKHR:
		return DescriptorInfo{Type: DescriptorTypeAccelerationStructureKHR, BindingCount: BindingOne{}}, nil

	default:
		return DescriptorInfo{}, newErrInstr(ErrUnhandledTypeInstruction, typeInstr, "opcode %d is not a supported resource type", typeInstr.Opcode)
	}
}

func classifyImage(instr spirv.Instruction, dim spirv.Dim, sampled uint32) (DescriptorType, error) {
	switch {
	case dim == spirv.DimBuffer && sampled == 1:
		return DescriptorTypeUniformTexelBuffer, nil
	case dim == spirv.DimBuffer && sampled == 2:
		return DescriptorTypeStorageTexelBuffer, nil
	case dim == spirv.DimSubpassData:
		return DescriptorTypeInputAttachment, nil
	case sampled == 1:
		return DescriptorTypeSampledImage, nil
	case sampled == 2:
		return DescriptorTypeStorageImage, nil
	default:
		return 0, newErrInstr(ErrImageSampledFieldUnknown, instr, "sampled literal %d is neither 1 nor 2", sampled)
	}
}

// arrayLength resolves a TypeArray's length operand (operand 1) to its
// defining OpConstant and reads its literal value, failing with
// UnexpectedIntWidth for any width other than 32 or 64.
func (c *classifier) arrayLength(typeInstr spirv.Instruction) (uint32, error) {
	lengthID, err := operandIDRef(typeInstr, 1)
	if err != nil {
		return 0, err
	}
	constInstr, err := c.findType(uint32(lengthID))
	if err != nil {
		return 0, err
	}
	rt, err := resultType(constInstr)
	if err != nil {
		return 0, err
	}
	intTypeInstr, err := c.findType(rt)
	if err != nil {
		return 0, err
	}
	if intTypeInstr.Opcode != spirv.OpTypeInt {
		return 0, newErrInstr(ErrUnhandledTypeInstruction, intTypeInstr, "array length constant's type is not TypeInt")
	}
	width, err := operandLiteralInt32(intTypeInstr, 0)
	if err != nil {
		return 0, err
	}
	switch width {
	case 32:
		v, err := operandLiteralInt32(constInstr, 0)
		if err != nil {
			return 0, err
		}
		return uint32(v), nil
	case 64:
		v, err := operandLiteralInt64(constInstr, 0)
		if err != nil {
			return 0, err
		}
		if uint64(v) > 0xFFFFFFFF {
			return 0, newErrInstr(ErrTryFromInt, constInstr, "array length %d does not fit in 32 bits", uint64(v))
		}
		return uint32(v), nil
	default:
		return 0, newErrInstr(ErrUnexpectedIntWidth, intTypeInstr, "int width %d is not 32 or 64", width)
	}
}

// classifyStruct implements spec.md §4.2.1's version-sensitive dispatch.
func (c *classifier) classifyStruct(typeInstr spirv.Instruction, storageClass spirv.StorageClass) (DescriptorType, error) {
	if c.hdr == nil {
		return 0, newErr(ErrMissingHeader, "module has no header; cannot test SPIR-V version for struct classification")
	}

	resultID := uint32(0)
	if typeInstr.ResultID != nil {
		resultID = *typeInstr.ResultID
	}
	hasBlock, hasBufferBlock := false, false
	for _, ann := range c.anns {
		target, err := operandIDRef(ann, 0)
		if err != nil {
			return 0, err
		}
		if uint32(target) != resultID {
			continue
		}
		if ann.Opcode != spirv.OpDecorate {
			continue
		}
		dec, err := operandDecoration(ann, 1)
		if err != nil {
			return 0, err
		}
		switch spirv.Decoration(dec) {
		case spirv.DecorationBlock:
			hasBlock = true
		case spirv.DecorationBufferBlock:
			hasBufferBlock = true
		}
	}

	v13 := spirv.Version1_3
	version := c.hdr.Version

	// The ≤1.3 and ≥1.3 guards overlap at exactly 1.3; BufferBlock is
	// checked first so a module at exactly 1.3 with BufferBlock present
	// still resolves to STORAGE_BUFFER (see SPEC_FULL.md's open-question
	// resolution).
	if !version.After(v13) && hasBufferBlock {
		return DescriptorTypeStorageBuffer, nil
	}
	if version.After(v13) || version == v13 {
		if hasBufferBlock {
			return 0, newErrInstr(ErrUnknownStruct, typeInstr, "BufferBlock is obsolete from SPIR-V 1.3")
		}
		if !hasBlock {
			return 0, newErrInstr(ErrUnknownStruct, typeInstr, "struct has neither Block nor BufferBlock decoration")
		}
		switch storageClass {
		case spirv.StorageClassUniform, spirv.StorageClassUniformConstant:
			return DescriptorTypeUniformBuffer, nil
		case spirv.StorageClassStorageBuffer:
			return DescriptorTypeStorageBuffer, nil
		default:
			return 0, newErrInstr(ErrUnknownStorageClass, typeInstr, "storage class %d is not valid for a resource block", storageClass)
		}
	}
	if hasBlock {
		return DescriptorTypeUniformBuffer, nil
	}
	return 0, newErrInstr(ErrUnknownStruct, typeInstr, "struct has neither Block nor BufferBlock decoration")
}

// sizeOf implements spec.md §4.2.2's recursive struct byte-size
// calculation, used only for push-constant sizing.
func (c *classifier) sizeOf(typeInstr spirv.Instruction) (uint32, error) {
	switch typeInstr.Opcode {
	case spirv.OpTypeInt, spirv.OpTypeFloat:
		width, err := operandLiteralInt32(typeInstr, 0)
		if err != nil {
			return 0, err
		}
		return uint32(width) / 8, nil

	case spirv.OpTypeVector, spirv.OpTypeMatrix:
		compTypeID, err := operandIDRef(typeInstr, 0)
		if err != nil {
			return 0, err
		}
		compCount, err := operandLiteralInt32(typeInstr, 1)
		if err != nil {
			return 0, err
		}
		compInstr, err := c.findType(uint32(compTypeID))
		if err != nil {
			return 0, err
		}
		compSize, err := c.sizeOf(compInstr)
		if err != nil {
			return 0, err
		}
		return compSize * uint32(compCount), nil

	case spirv.OpTypeArray:
		elemTypeID, err := operandIDRef(typeInstr, 0)
		if err != nil {
			return 0, err
		}
		elemInstr, err := c.findType(uint32(elemTypeID))
		if err != nil {
			return 0, err
		}
		elemSize, err := c.sizeOf(elemInstr)
		if err != nil {
			return 0, err
		}
		count, err := c.arrayLength(typeInstr)
		if err != nil {
			return 0, err
		}
		return elemSize * count, nil

	case spirv.OpTypeStruct:
		if len(typeInstr.Operands) == 0 {
			return 0, nil
		}
		resultID := uint32(0)
		if typeInstr.ResultID != nil {
			resultID = *typeInstr.ResultID
		}
		maxOffset := uint32(0)
		lastMemberIdx := -1
		for _, ann := range c.anns {
			if ann.Opcode != spirv.OpMemberDecorate {
				continue
			}
			target, err := operandIDRef(ann, 0)
			if err != nil {
				return 0, err
			}
			if uint32(target) != resultID {
				continue
			}
			dec, err := operandDecoration(ann, 2)
			if err != nil {
				return 0, err
			}
			if spirv.Decoration(dec) != spirv.DecorationOffset {
				continue
			}
			memberIdx, err := operandLiteralInt32(ann, 1)
			if err != nil {
				return 0, err
			}
			offset, err := operandLiteralInt32(ann, 3)
			if err != nil {
				return 0, err
			}
			if uint32(offset) >= maxOffset {
				maxOffset = uint32(offset)
				lastMemberIdx = int(memberIdx)
			}
		}
		if lastMemberIdx < 0 || lastMemberIdx >= len(typeInstr.Operands) {
			lastMemberIdx = len(typeInstr.Operands) - 1
		}
		lastMemberTypeID, ok := typeInstr.Operands[lastMemberIdx].(spirv.IDRef)
		if !ok {
			return 0, newErrInstr(ErrOperand, typeInstr, "struct member %d is not IDRef", lastMemberIdx)
		}
		lastMemberInstr, err := c.findType(uint32(lastMemberTypeID))
		if err != nil {
			return 0, err
		}
		lastSize, err := c.sizeOf(lastMemberInstr)
		if err != nil {
			return 0, err
		}
		return maxOffset + lastSize, nil

	default:
		return 0, nil
	}
}
