package spirv

import (
	"fmt"
	"strings"
)

// Disassemble renders a Module as a readable, spvasm-flavored text dump.
// Unlike a full disassembler it only has the instructions Parse retained —
// debug names, annotations, types/constants/global variables, and entry
// point/execution mode instructions — so function bodies never appear.
// This is a debugging convenience, not part of the reflection core's
// contract (see package reflection).
func Disassemble(m *Module) string {
	var b strings.Builder

	b.WriteString("; SPIR-V\n")
	if m.Header != nil {
		fmt.Fprintf(&b, "; Version: %d.%d\n", m.Header.Version.Major, m.Header.Version.Minor)
		fmt.Fprintf(&b, "; Generator: 0x%08X\n", m.Header.Generator)
		fmt.Fprintf(&b, "; Bound: %d\n", m.Header.Bound)
		fmt.Fprintf(&b, "; Schema: %d\n", m.Header.Schema)
	} else {
		b.WriteString("; (no header)\n")
	}
	b.WriteString("\n")

	for _, instr := range m.GlobalInstructions {
		writeInstruction(&b, instr)
	}
	for _, instr := range m.DebugNames {
		writeInstruction(&b, instr)
	}
	for _, instr := range m.Annotations {
		writeInstruction(&b, instr)
	}
	for _, instr := range m.TypesGlobalValues {
		writeInstruction(&b, instr)
	}

	return b.String()
}

func writeInstruction(b *strings.Builder, instr Instruction) {
	if instr.ResultID != nil {
		fmt.Fprintf(b, "%%%d = %s", *instr.ResultID, opcodeName(instr.Opcode))
	} else {
		fmt.Fprintf(b, "      %s", opcodeName(instr.Opcode))
	}
	if instr.ResultType != nil {
		fmt.Fprintf(b, " %%%d", *instr.ResultType)
	}
	for _, op := range instr.Operands {
		fmt.Fprintf(b, " %s", operandText(op))
	}
	b.WriteString("\n")
}

func operandText(op Operand) string {
	switch v := op.(type) {
	case IDRef:
		return fmt.Sprintf("%%%d", uint32(v))
	case LiteralInt32:
		return fmt.Sprintf("%d", uint32(v))
	case LiteralInt64:
		return fmt.Sprintf("%d", uint64(v))
	case LiteralString:
		return fmt.Sprintf("%q", string(v))
	case StorageClassOperand:
		return storageClassName(StorageClass(v))
	case DecorationOperand:
		return decorationName(Decoration(v))
	case DimOperand:
		return dimName(Dim(v))
	case ExecutionModeOperand:
		return executionModeName(ExecutionMode(v))
	case ExecutionModelOperand:
		return executionModelName(ExecutionModel(v))
	default:
		return "?"
	}
}

var opcodeNames = map[Opcode]string{
	OpName: "OpName", OpMemberName: "OpMemberName", OpString: "OpString",
	OpEntryPoint: "OpEntryPoint", OpExecutionMode: "OpExecutionMode",
	OpTypeVoid: "OpTypeVoid", OpTypeBool: "OpTypeBool", OpTypeInt: "OpTypeInt",
	OpTypeFloat: "OpTypeFloat", OpTypeVector: "OpTypeVector", OpTypeMatrix: "OpTypeMatrix",
	OpTypeImage: "OpTypeImage", OpTypeSampler: "OpTypeSampler",
	OpTypeSampledImage: "OpTypeSampledImage", OpTypeArray: "OpTypeArray",
	OpTypeRuntimeArray: "OpTypeRuntimeArray", OpTypeStruct: "OpTypeStruct",
	OpTypeOpaque: "OpTypeOpaque", OpTypePointer: "OpTypePointer",
	OpTypeFunction: "OpTypeFunction", OpConstantTrue: "OpConstantTrue",
	OpConstantFalse: "OpConstantFalse", OpConstant: "OpConstant",
	OpConstantComposite: "OpConstantComposite", OpConstantSampler: "OpConstantSampler",
	OpConstantNull: "OpConstantNull", OpVariable: "OpVariable",
	OpDecorate: "OpDecorate", OpMemberDecorate: "OpMemberDecorate",
	OpTypeAccelerationStructureKHR: "OpTypeAccelerationStructureKHR",
}

func opcodeName(op Opcode) string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op%d", op)
}

var decorationNames = map[Decoration]string{
	DecorationBlock: "Block", DecorationBufferBlock: "BufferBlock",
	DecorationArrayStride: "ArrayStride", DecorationMatrixStride: "MatrixStride",
	DecorationBuiltIn: "BuiltIn", DecorationLocation: "Location",
	DecorationBinding: "Binding", DecorationDescriptorSet: "DescriptorSet",
	DecorationOffset: "Offset", DecorationColMajor: "ColMajor",
	DecorationRowMajor: "RowMajor",
}

func decorationName(d Decoration) string {
	if name, ok := decorationNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Decoration(%d)", uint32(d))
}

var storageClassNames = map[StorageClass]string{
	StorageClassUniformConstant: "UniformConstant", StorageClassInput: "Input",
	StorageClassUniform: "Uniform", StorageClassOutput: "Output",
	StorageClassWorkgroup: "Workgroup", StorageClassPrivate: "Private",
	StorageClassFunction: "Function", StorageClassPushConstant: "PushConstant",
	StorageClassStorageBuffer: "StorageBuffer", StorageClassImage: "Image",
}

func storageClassName(s StorageClass) string {
	if name, ok := storageClassNames[s]; ok {
		return name
	}
	return fmt.Sprintf("StorageClass(%d)", uint32(s))
}

var dimNames = map[Dim]string{
	Dim1D: "1D", Dim2D: "2D", Dim3D: "3D", DimCube: "Cube",
	DimRect: "Rect", DimBuffer: "Buffer", DimSubpassData: "SubpassData",
}

func dimName(d Dim) string {
	if name, ok := dimNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Dim(%d)", uint32(d))
}

var executionModeNames = map[ExecutionMode]string{
	ExecutionModeLocalSize: "LocalSize", ExecutionModeLocalSizeHint: "LocalSizeHint",
	ExecutionModeLocalSizeID: "LocalSizeId", ExecutionModeLocalSizeHintID: "LocalSizeHintId",
	ExecutionModeOriginUpperLeft: "OriginUpperLeft", ExecutionModeOriginLowerLeft: "OriginLowerLeft",
	ExecutionModeEarlyFragmentTests: "EarlyFragmentTests", ExecutionModeDepthReplacing: "DepthReplacing",
}

func executionModeName(e ExecutionMode) string {
	if name, ok := executionModeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("ExecutionMode(%d)", uint32(e))
}

var executionModelNames = map[ExecutionModel]string{
	ExecutionModelVertex: "Vertex", ExecutionModelFragment: "Fragment",
	ExecutionModelGLCompute: "GLCompute", ExecutionModelKernel: "Kernel",
	ExecutionModelGeometry: "Geometry", ExecutionModelTessellationControl: "TessellationControl",
	ExecutionModelTessellationEvaluation: "TessellationEvaluation",
}

func executionModelName(e ExecutionModel) string {
	if name, ok := executionModelNames[e]; ok {
		return name
	}
	return fmt.Sprintf("ExecutionModel(%d)", uint32(e))
}
