package spirv

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordBuilder assembles a little-endian SPIR-V byte stream word by word,
// grounded on the header layout cmd/spvdis/main.go reads raw.
type wordBuilder struct {
	words []uint32
}

func (b *wordBuilder) header(major, minor uint8, generator, bound, schema uint32) *wordBuilder {
	b.words = append(b.words,
		MagicNumber,
		uint32(major)<<16|uint32(minor)<<8,
		generator,
		bound,
		schema,
	)
	return b
}

func (b *wordBuilder) instr(opcode Opcode, operands ...uint32) *wordBuilder {
	wordCount := uint32(len(operands) + 1)
	b.words = append(b.words, wordCount<<16|uint32(opcode))
	b.words = append(b.words, operands...)
	return b
}

func (b *wordBuilder) str(s string) []uint32 {
	buf := []byte(s)
	buf = append(buf, 0)
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}
	words := make([]uint32, len(buf)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return words
}

func (b *wordBuilder) bytes() []byte {
	out := make([]byte, len(b.words)*4)
	for i, w := range b.words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

func TestParseHeader(t *testing.T) {
	b := (&wordBuilder{}).header(1, 5, 0x10, 100, 0)
	m, err := Parse(b.bytes())
	require.NoError(t, err)
	require.NotNil(t, m.Header)
	assert.Equal(t, Version{1, 5}, m.Header.Version)
	assert.Equal(t, uint32(0x10), m.Header.Generator)
	assert.Equal(t, uint32(100), m.Header.Bound)
}

func TestParseRejectsBadMagic(t *testing.T) {
	b := &wordBuilder{}
	b.words = []uint32{0xDEADBEEF, 0x00010500, 0, 10, 0}
	_, err := Parse(b.bytes())
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParseRejectsShortInput(t *testing.T) {
	_, err := Parse([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestParseTypeInstructions(t *testing.T) {
	b := (&wordBuilder{}).header(1, 5, 0, 10, 0)
	b.instr(OpTypeVoid, 1)
	b.instr(OpTypeInt, 2, 32, 1)
	b.instr(OpTypeFloat, 3, 32)
	b.instr(OpTypeVector, 4, 3, 4)

	m, err := Parse(b.bytes())
	require.NoError(t, err)
	require.Len(t, m.TypesGlobalValues, 4)
	assert.Equal(t, OpTypeVoid, m.TypesGlobalValues[0].Opcode)
	assert.Equal(t, uint32(1), *m.TypesGlobalValues[0].ResultID)
	assert.Equal(t, OpTypeInt, m.TypesGlobalValues[1].Opcode)
	assert.Equal(t, LiteralInt32(32), m.TypesGlobalValues[1].Operands[0])
	assert.Equal(t, LiteralInt32(1), m.TypesGlobalValues[1].Operands[1])
}

func TestParseDebugNamesAndAnnotations(t *testing.T) {
	b := (&wordBuilder{}).header(1, 5, 0, 10, 0)
	nameWords := b.str("uniformBlock")
	b.instr(OpName, append([]uint32{5}, nameWords...)...)
	b.instr(OpDecorate, 5, uint32(DecorationDescriptorSet), 0)
	b.instr(OpDecorate, 5, uint32(DecorationBinding), 1)

	m, err := Parse(b.bytes())
	require.NoError(t, err)
	require.Len(t, m.DebugNames, 1)
	assert.Equal(t, IDRef(5), m.DebugNames[0].Operands[0])
	assert.Equal(t, LiteralString("uniformBlock"), m.DebugNames[0].Operands[1])

	require.Len(t, m.Annotations, 2)
	assert.Equal(t, DecorationOperand(DecorationDescriptorSet), m.Annotations[0].Operands[1])
	assert.Equal(t, LiteralInt32(0), m.Annotations[0].Operands[2])
}

func TestParseSkipsFunctionBodyVariables(t *testing.T) {
	b := (&wordBuilder{}).header(1, 5, 0, 10, 0)
	b.instr(OpTypeVoid, 1)
	b.instr(OpVariable, 1, 2, uint32(StorageClassUniformConstant))
	b.instr(OpFunction, 1, 3, 0, 1)
	b.instr(OpVariable, 1, 4, uint32(StorageClassFunction))
	b.instr(OpFunctionEnd)

	m, err := Parse(b.bytes())
	require.NoError(t, err)
	var variableCount int
	for _, instr := range m.TypesGlobalValues {
		if instr.Opcode == OpVariable {
			variableCount++
		}
	}
	assert.Equal(t, 1, variableCount)
}

func TestParseEntryPointAndExecutionMode(t *testing.T) {
	b := (&wordBuilder{}).header(1, 5, 0, 10, 0)
	nameWords := b.str("main")
	b.instr(OpEntryPoint, append([]uint32{uint32(ExecutionModelGLCompute), 1}, nameWords...)...)
	b.instr(OpExecutionMode, 1, uint32(ExecutionModeLocalSize), 8, 8, 1)

	m, err := Parse(b.bytes())
	require.NoError(t, err)
	require.Len(t, m.GlobalInstructions, 2)
	assert.Equal(t, ExecutionModelOperand(ExecutionModelGLCompute), m.GlobalInstructions[0].Operands[0])
	assert.Equal(t, LiteralString("main"), m.GlobalInstructions[0].Operands[2])
	assert.Equal(t, ExecutionModeOperand(ExecutionModeLocalSize), m.GlobalInstructions[1].Operands[1])
	assert.Equal(t, LiteralInt32(8), m.GlobalInstructions[1].Operands[2])
}
