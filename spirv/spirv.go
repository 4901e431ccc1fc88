package spirv

// Version represents a SPIR-V version.
type Version struct {
	Major uint8
	Minor uint8
}

// Common SPIR-V versions.
var (
	Version1_0 = Version{1, 0}
	Version1_3 = Version{1, 3}
	Version1_4 = Version{1, 4}
	Version1_5 = Version{1, 5}
	Version1_6 = Version{1, 6}
)

// Before reports whether v is strictly earlier than other.
func (v Version) Before(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}

// After reports whether v is strictly later than other.
func (v Version) After(other Version) bool {
	return other.Before(v)
}

// MagicNumber is the SPIR-V magic number, little-endian per the Khronos
// binary spec, expected at word 0 of every module.
const MagicNumber = 0x07230203

// Opcode represents a SPIR-V opcode.
type Opcode uint16

// Opcodes the reflector's instruction-graph accessor, type classifier, and
// disassembler need to recognize. Anything else is skipped over during
// parsing (its word count is still respected so the stream stays in sync)
// but its operands are never decoded.
const (
	OpNop                          Opcode = 0
	OpSourceContinued              Opcode = 2
	OpSource                       Opcode = 3
	OpSourceExtension              Opcode = 4
	OpName                         Opcode = 5
	OpMemberName                   Opcode = 6
	OpString                       Opcode = 7
	OpExtension                    Opcode = 10
	OpExtInstImport                Opcode = 11
	OpExtInst                      Opcode = 12
	OpMemoryModel                  Opcode = 14
	OpEntryPoint                   Opcode = 15
	OpExecutionMode                Opcode = 16
	OpCapability                   Opcode = 17
	OpTypeVoid                     Opcode = 19
	OpTypeBool                     Opcode = 20
	OpTypeInt                      Opcode = 21
	OpTypeFloat                    Opcode = 22
	OpTypeVector                   Opcode = 23
	OpTypeMatrix                   Opcode = 24
	OpTypeImage                    Opcode = 25
	OpTypeSampler                  Opcode = 26
	OpTypeSampledImage             Opcode = 27
	OpTypeArray                    Opcode = 28
	OpTypeRuntimeArray             Opcode = 29
	OpTypeStruct                   Opcode = 30
	OpTypeOpaque                   Opcode = 31
	OpTypePointer                  Opcode = 32
	OpTypeFunction                 Opcode = 33
	OpConstantTrue                 Opcode = 41
	OpConstantFalse                Opcode = 42
	OpConstant                     Opcode = 43
	OpConstantComposite            Opcode = 44
	OpConstantSampler              Opcode = 45
	OpConstantNull                 Opcode = 46
	OpFunction                     Opcode = 54
	OpFunctionParameter            Opcode = 55
	OpFunctionEnd                  Opcode = 56
	OpFunctionCall                 Opcode = 57
	OpVariable                     Opcode = 59
	OpDecorate                     Opcode = 71
	OpMemberDecorate               Opcode = 72
	OpTypeAccelerationStructureKHR Opcode = 5341
)

// Decoration represents a SPIR-V decoration (OpDecorate/OpMemberDecorate operand).
type Decoration uint32

const (
	DecorationRelaxedPrecision Decoration = 0
	DecorationSpecId           Decoration = 1
	DecorationBlock            Decoration = 2
	DecorationBufferBlock      Decoration = 3
	DecorationRowMajor         Decoration = 4
	DecorationColMajor         Decoration = 5
	DecorationArrayStride      Decoration = 6
	DecorationMatrixStride     Decoration = 7
	DecorationGLSLShared       Decoration = 8
	DecorationGLSLPacked       Decoration = 9
	DecorationCPacked          Decoration = 10
	DecorationBuiltIn          Decoration = 11
	DecorationNoPerspective    Decoration = 13
	DecorationFlat             Decoration = 14
	DecorationPatch            Decoration = 15
	DecorationCentroid         Decoration = 16
	DecorationSample           Decoration = 17
	DecorationInvariant        Decoration = 18
	DecorationRestrict         Decoration = 19
	DecorationAliased          Decoration = 20
	DecorationVolatile         Decoration = 21
	DecorationConstant         Decoration = 22
	DecorationCoherent         Decoration = 23
	DecorationNonWritable      Decoration = 24
	DecorationNonReadable      Decoration = 25
	DecorationUniform          Decoration = 26
	DecorationLocation         Decoration = 30
	DecorationComponent        Decoration = 31
	DecorationIndex            Decoration = 32
	DecorationBinding          Decoration = 33
	DecorationDescriptorSet    Decoration = 34
	DecorationOffset           Decoration = 35
	DecorationXfbBuffer        Decoration = 36
	DecorationXfbStride        Decoration = 37
	DecorationNoContraction    Decoration = 42
	DecorationAlignment        Decoration = 44
)

// ExecutionModel represents a SPIR-V execution model (OpEntryPoint operand 0).
type ExecutionModel uint32

const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
)

// ExecutionMode represents a SPIR-V execution mode (OpExecutionMode operand 1).
type ExecutionMode uint32

const (
	ExecutionModeInvocations        ExecutionMode = 0
	ExecutionModeOriginUpperLeft    ExecutionMode = 7
	ExecutionModeOriginLowerLeft    ExecutionMode = 8
	ExecutionModeEarlyFragmentTests ExecutionMode = 9
	ExecutionModeDepthReplacing     ExecutionMode = 12
	ExecutionModeLocalSize          ExecutionMode = 17
	ExecutionModeLocalSizeHint      ExecutionMode = 18
	ExecutionModeLocalSizeID        ExecutionMode = 38
	ExecutionModeLocalSizeHintID    ExecutionMode = 39
)

// StorageClass represents a SPIR-V storage class.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassCrossWorkgroup  StorageClass = 5
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassGeneric         StorageClass = 8
	StorageClassPushConstant    StorageClass = 9
	StorageClassAtomicCounter   StorageClass = 10
	StorageClassImage           StorageClass = 11
	StorageClassStorageBuffer   StorageClass = 12
)

// Dim represents SPIR-V image dimensionality (OpTypeImage operand 1).
type Dim uint32

const (
	Dim1D          Dim = 0
	Dim2D          Dim = 1
	Dim3D          Dim = 2
	DimCube        Dim = 3
	DimRect        Dim = 4
	DimBuffer      Dim = 5
	DimSubpassData Dim = 6
)

// AddressingModel represents a SPIR-V addressing model.
type AddressingModel uint32

const (
	AddressingModelLogical    AddressingModel = 0
	AddressingModelPhysical32 AddressingModel = 1
	AddressingModelPhysical64 AddressingModel = 2
)

// MemoryModel represents a SPIR-V memory model.
type MemoryModel uint32

const (
	MemoryModelSimple  MemoryModel = 0
	MemoryModelGLSL450 MemoryModel = 1
	MemoryModelOpenCL  MemoryModel = 2
	MemoryModelVulkan  MemoryModel = 3
)
