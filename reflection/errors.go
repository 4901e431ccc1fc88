package reflection

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/gogpu/spirvreflect/spirv"
)

// ErrorKind categorizes reflection failures.
type ErrorKind uint8

const (
	// ErrParse indicates the underlying binary parse failed.
	ErrParse ErrorKind = iota

	// ErrMissingHeader indicates the module lacks the header needed to
	// test the SPIR-V version.
	ErrMissingHeader

	// ErrUnassignedResultID indicates a referenced id has no defining
	// instruction in the expected section.
	ErrUnassignedResultID

	// ErrOperand indicates an operand exists at the given index but is
	// the wrong variant.
	ErrOperand

	// ErrOperandIndex indicates an operand index is out of range.
	ErrOperandIndex

	// ErrMissingResultID indicates an instruction that must define a
	// result id does not.
	ErrMissingResultID

	// ErrVariableWithoutReturnType indicates an OpVariable lacks a
	// result type.
	ErrVariableWithoutReturnType

	// ErrMissingSetDecoration indicates a uniform variable has no
	// DescriptorSet decoration.
	ErrMissingSetDecoration

	// ErrMissingBindingDecoration indicates a uniform variable has no
	// Binding decoration.
	ErrMissingBindingDecoration

	// ErrUnknownStorageClass indicates a struct-typed variable uses a
	// storage class the classifier does not recognize.
	ErrUnknownStorageClass

	// ErrUnknownStruct indicates a struct lacks the decoration its
	// module version requires to be treated as a resource block.
	ErrUnknownStruct

	// ErrImageSampledFieldUnknown indicates OpTypeImage's sampled
	// literal is neither 1 nor 2.
	ErrImageSampledFieldUnknown

	// ErrUnhandledTypeInstruction indicates the type opcode is outside
	// the set the classifier supports.
	ErrUnhandledTypeInstruction

	// ErrUnexpectedIntWidth indicates a TypeInt used as an array length
	// has a width other than 32 or 64.
	ErrUnexpectedIntWidth

	// ErrBindingGlobalParameterBuffer indicates a variable named
	// "$Globals" was encountered.
	ErrBindingGlobalParameterBuffer

	// ErrTooManyPushConstants indicates more than one PushConstant
	// variable exists.
	ErrTooManyPushConstants

	// ErrTryFromInt indicates a 64-bit array length did not fit into
	// the platform's size type.
	ErrTryFromInt
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrParse:
		return "ParseError"
	case ErrMissingHeader:
		return "MissingHeader"
	case ErrUnassignedResultID:
		return "UnassignedResultId"
	case ErrOperand:
		return "OperandError"
	case ErrOperandIndex:
		return "OperandIndexError"
	case ErrMissingResultID:
		return "MissingResultId"
	case ErrVariableWithoutReturnType:
		return "VariableWithoutReturnType"
	case ErrMissingSetDecoration:
		return "MissingSetDecoration"
	case ErrMissingBindingDecoration:
		return "MissingBindingDecoration"
	case ErrUnknownStorageClass:
		return "UnknownStorageClass"
	case ErrUnknownStruct:
		return "UnknownStruct"
	case ErrImageSampledFieldUnknown:
		return "ImageSampledFieldUnknown"
	case ErrUnhandledTypeInstruction:
		return "UnhandledTypeInstruction"
	case ErrUnexpectedIntWidth:
		return "UnexpectedIntWidth"
	case ErrBindingGlobalParameterBuffer:
		return "BindingGlobalParameterBuffer"
	case ErrTooManyPushConstants:
		return "TooManyPushConstants"
	case ErrTryFromInt:
		return "TryFromIntError"
	default:
		return "Unknown"
	}
}

// ReflectError is the single tagged error type every reflection operation
// returns on failure. Instr carries the offending instruction by value
// (never by reference into the module) since the error may outlive the
// module it was built against.
type ReflectError struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides human-readable detail.
	Message string

	// Instr is the offending instruction, when the error kind names one.
	Instr *spirv.Instruction
}

// Error implements the error interface.
func (e *ReflectError) Error() string {
	if e.Instr != nil {
		return fmt.Sprintf("reflection %s (opcode %d): %s", e.Kind, e.Instr.Opcode, e.Message)
	}
	return fmt.Sprintf("reflection %s: %s", e.Kind, e.Message)
}

// newErr builds a ReflectError without an associated instruction, wrapped
// with errors.WithStack so callers further up get a stack trace attached
// at the point of failure rather than at the point of return.
func newErr(kind ErrorKind, format string, args ...any) error {
	return errors.WithStack(&ReflectError{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// newErrInstr builds a ReflectError carrying a copy of instr.
func newErrInstr(kind ErrorKind, instr spirv.Instruction, format string, args ...any) error {
	return errors.WithStack(&ReflectError{Kind: kind, Message: fmt.Sprintf(format, args...), Instr: &instr})
}
