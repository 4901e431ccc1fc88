package reflection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/spirvreflect/spirv"
)

func TestFindAssignmentFor(t *testing.T) {
	instrs := []spirv.Instruction{
		typeFloat(1, 32),
		typeInt(2, 32, 0),
	}
	instr, err := findAssignmentFor(instrs, 2)
	require.NoError(t, err)
	assert.Equal(t, spirv.OpTypeInt, instr.Opcode)

	_, err = findAssignmentFor(instrs, 99)
	require.Error(t, err)
	var re *ReflectError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, ErrUnassignedResultID, re.Kind)
}

func TestFindAnnotationsForID(t *testing.T) {
	anns := []spirv.Instruction{
		opDecorate(1, spirv.DecorationDescriptorSet, 0),
		opDecorate(2, spirv.DecorationBinding, 1),
		opDecorate(1, spirv.DecorationBinding, 3),
	}
	found, err := findAnnotationsForID(anns, 1)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, spirv.DecorationDescriptorSet, spirv.Decoration(found[0].Operands[1].(spirv.DecorationOperand)))
	assert.Equal(t, spirv.DecorationBinding, spirv.Decoration(found[1].Operands[1].(spirv.DecorationOperand)))
}

func TestOperandAccessorsErrors(t *testing.T) {
	instr := typeInt(1, 32, 0)

	_, err := operandLiteralInt32(instr, 5)
	require.Error(t, err)
	var re *ReflectError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, ErrOperandIndex, re.Kind)

	_, err = operandIDRef(instr, 0)
	require.Error(t, err)
	require.ErrorAs(t, err, &re)
	assert.Equal(t, ErrOperand, re.Kind)
}

func TestResultTypeMissing(t *testing.T) {
	instr := spirv.Instruction{Opcode: spirv.OpVariable, ResultID: idp(1)}
	_, err := resultType(instr)
	require.Error(t, err)
	var re *ReflectError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, ErrVariableWithoutReturnType, re.Kind)
}
