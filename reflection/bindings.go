package reflection

import "github.com/gogpu/spirvreflect/spirv"

// uniformStorageClasses lists the storage classes GetDescriptorSets
// considers resource-bound variables.
var uniformStorageClasses = map[spirv.StorageClass]bool{
	spirv.StorageClassUniform:         true,
	spirv.StorageClassUniformConstant: true,
	spirv.StorageClassStorageBuffer:   true,
}

// GetDescriptorSets implements spec.md §4.3: it enumerates every
// module-scope OpVariable in a resource storage class, classifies its
// type, and joins the result against DescriptorSet/Binding decorations
// and debug names.
//
// Duplicate (set, binding) insertions and duplicate DescriptorSet/Binding
// decorations on the same variable are programmer errors on an
// already-compiled shader — per spec.md §7 these are abort-class
// assertions, so this function panics rather than returning an error for
// them.
func GetDescriptorSets(m *spirv.Module) (*OrderedUint32Map[*OrderedUint32Map[DescriptorInfo]], error) {
	c := newClassifier(m)
	names := buildNameTable(m.DebugNames)

	sets := newUint32Map[*OrderedUint32Map[DescriptorInfo]]()

	for _, instr := range m.TypesGlobalValues {
		if instr.Opcode != spirv.OpVariable {
			continue
		}
		sc, err := operandStorageClass(instr, 0)
		if err != nil {
			return nil, err
		}
		if !uniformStorageClasses[spirv.StorageClass(sc)] {
			continue
		}
		if instr.ResultID == nil {
			return nil, newErrInstr(ErrMissingResultID, instr, "OpVariable has no result id")
		}
		varID := *instr.ResultID

		set, binding, err := findSetBinding(m.Annotations, varID)
		if err != nil {
			return nil, err
		}

		rt, err := resultType(instr)
		if err != nil {
			return nil, err
		}
		ptrInstr, err := c.findType(rt)
		if err != nil {
			return nil, err
		}
		info, err := c.classify(ptrInstr, spirv.StorageClass(sc))
		if err != nil {
			return nil, err
		}

		if name, ok := names[varID]; ok {
			if name == "$Globals" {
				return nil, newErrInstr(ErrBindingGlobalParameterBuffer, instr, "variable %%%d is a global-parameter buffer", varID)
			}
			info.Name = name
		}

		bindingMap, ok := sets.Get(set)
		if !ok {
			bindingMap = newUint32Map[DescriptorInfo]()
			sets.set(set, bindingMap)
		}
		if bindingMap.Has(binding) {
			panic("spirvreflect: duplicate (set, binding) slot")
		}
		bindingMap.set(binding, info)
	}

	return sets, nil
}

func buildNameTable(debugNames []spirv.Instruction) map[uint32]string {
	names := make(map[uint32]string)
	for _, instr := range debugNames {
		if instr.Opcode != spirv.OpName {
			continue
		}
		id, err := operandIDRef(instr, 0)
		if err != nil {
			continue
		}
		name, err := operandLiteralString(instr, 1)
		if err != nil {
			continue
		}
		names[uint32(id)] = string(name)
	}
	return names
}

// findSetBinding folds the annotations targeting varID into a (set,
// binding) pair. A qualifying annotation has at least 3 operands with
// operand 1 a Decoration and operand 2 a LiteralInt32; DescriptorSet sets
// the set index, Binding sets the binding index. Each may be set at most
// once per variable — a second sighting panics, since a well-formed
// already-compiled shader cannot produce one.
func findSetBinding(anns []spirv.Instruction, varID uint32) (set, binding uint32, err error) {
	haveSet, haveBinding := false, false
	for _, ann := range anns {
		if ann.Opcode != spirv.OpDecorate || len(ann.Operands) < 3 {
			continue
		}
		target, terr := operandIDRef(ann, 0)
		if terr != nil {
			return 0, 0, terr
		}
		if uint32(target) != varID {
			continue
		}
		dec, decOK := ann.Operands[1].(spirv.DecorationOperand)
		v, valOK := ann.Operands[2].(spirv.LiteralInt32)
		if !decOK || !valOK {
			continue
		}
		switch spirv.Decoration(dec) {
		case spirv.DecorationDescriptorSet:
			if haveSet {
				panic("spirvreflect: duplicate DescriptorSet decoration on variable")
			}
			set = uint32(v)
			haveSet = true
		case spirv.DecorationBinding:
			if haveBinding {
				panic("spirvreflect: duplicate Binding decoration on variable")
			}
			binding = uint32(v)
			haveBinding = true
		}
	}
	if !haveSet {
		return 0, 0, newErr(ErrMissingSetDecoration, "variable %%%d has no DescriptorSet decoration", varID)
	}
	if !haveBinding {
		return 0, 0, newErr(ErrMissingBindingDecoration, "variable %%%d has no Binding decoration", varID)
	}
	return set, binding, nil
}
