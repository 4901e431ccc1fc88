package reflection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/spirvreflect/spirv"
)

func TestGetDescriptorSetsBasic(t *testing.T) {
	m := &spirv.Module{
		Header: header(1, 5),
		TypesGlobalValues: []spirv.Instruction{
			typeFloat(1, 32),
			typeVector(2, 1, 4),
			typeStruct(3, 2),
			typePointer(4, spirv.StorageClassUniform, 3),
			variable(10, 4, spirv.StorageClassUniform),

			typeImage(20, 1, spirv.Dim2D, 2),
			typePointer(21, spirv.StorageClassUniformConstant, 20),
			variable(22, 21, spirv.StorageClassUniformConstant),
		},
		Annotations: []spirv.Instruction{
			opDecorate(3, spirv.DecorationBlock),
			opDecorate(10, spirv.DecorationDescriptorSet, 0),
			opDecorate(10, spirv.DecorationBinding, 0),
			opDecorate(22, spirv.DecorationDescriptorSet, 1),
			opDecorate(22, spirv.DecorationBinding, 0),
		},
		DebugNames: []spirv.Instruction{
			opName(10, "uniformBlock"),
			opName(22, "g_wimage2d"),
		},
	}

	sets, err := GetDescriptorSets(m)
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 1}, sets.Keys())

	set0 := sets.ValueByKey(0)
	info, ok := set0.Get(0)
	require.True(t, ok)
	assert.Equal(t, "uniformBlock", info.Name)
	assert.Equal(t, DescriptorTypeUniformBuffer, info.Type)
	assert.Equal(t, BindingOne{}, info.BindingCount)

	set1 := sets.ValueByKey(1)
	info, ok = set1.Get(0)
	require.True(t, ok)
	assert.Equal(t, "g_wimage2d", info.Name)
	assert.Equal(t, DescriptorTypeStorageImage, info.Type)
}

func TestGetDescriptorSetsRejectsGlobals(t *testing.T) {
	m := &spirv.Module{
		Header: header(1, 5),
		TypesGlobalValues: []spirv.Instruction{
			typeFloat(1, 32),
			typeStruct(2, 1),
			typePointer(3, spirv.StorageClassUniform, 2),
			variable(10, 3, spirv.StorageClassUniform),
		},
		Annotations: []spirv.Instruction{
			opDecorate(2, spirv.DecorationBlock),
			opDecorate(10, spirv.DecorationDescriptorSet, 0),
			opDecorate(10, spirv.DecorationBinding, 0),
		},
		DebugNames: []spirv.Instruction{
			opName(10, "$Globals"),
		},
	}

	_, err := GetDescriptorSets(m)
	require.Error(t, err)
	var re *ReflectError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, ErrBindingGlobalParameterBuffer, re.Kind)
}

func TestGetDescriptorSetsMissingSetDecoration(t *testing.T) {
	m := &spirv.Module{
		Header: header(1, 5),
		TypesGlobalValues: []spirv.Instruction{
			typeFloat(1, 32),
			typeStruct(2, 1),
			typePointer(3, spirv.StorageClassUniform, 2),
			variable(10, 3, spirv.StorageClassUniform),
		},
		Annotations: []spirv.Instruction{
			opDecorate(2, spirv.DecorationBlock),
			opDecorate(10, spirv.DecorationBinding, 0),
		},
	}

	_, err := GetDescriptorSets(m)
	require.Error(t, err)
	var re *ReflectError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, ErrMissingSetDecoration, re.Kind)
}

func TestGetDescriptorSetsDuplicateBindingPanics(t *testing.T) {
	m := &spirv.Module{
		Header: header(1, 5),
		TypesGlobalValues: []spirv.Instruction{
			typeFloat(1, 32),
			typeStruct(2, 1),
			typePointer(3, spirv.StorageClassUniform, 2),
			variable(10, 3, spirv.StorageClassUniform),
			variable(11, 3, spirv.StorageClassUniform),
		},
		Annotations: []spirv.Instruction{
			opDecorate(2, spirv.DecorationBlock),
			opDecorate(10, spirv.DecorationDescriptorSet, 0),
			opDecorate(10, spirv.DecorationBinding, 0),
			opDecorate(11, spirv.DecorationDescriptorSet, 0),
			opDecorate(11, spirv.DecorationBinding, 0),
		},
	}

	assert.Panics(t, func() {
		_, _ = GetDescriptorSets(m)
	})
}

func TestGetDescriptorSetsArrayBinding(t *testing.T) {
	m := &spirv.Module{
		Header: header(1, 5),
		TypesGlobalValues: []spirv.Instruction{
			typeFloat(1, 32),
			typeImage(2, 1, spirv.Dim2D, 2),
			typeInt(3, 32, 0),
			constant32(4, 3, 10),
			typeArray(5, 2, 4),
			typePointer(6, spirv.StorageClassUniformConstant, 5),
			variable(10, 6, spirv.StorageClassUniformConstant),

			typeRuntimeArray(20, 2),
			typePointer(21, spirv.StorageClassUniformConstant, 20),
			variable(22, 21, spirv.StorageClassUniformConstant),
		},
		Annotations: []spirv.Instruction{
			opDecorate(10, spirv.DecorationDescriptorSet, 3),
			opDecorate(10, spirv.DecorationBinding, 0),
			opDecorate(22, spirv.DecorationDescriptorSet, 4),
			opDecorate(22, spirv.DecorationBinding, 0),
		},
		DebugNames: []spirv.Instruction{
			opName(10, "g_multiple_rwimage2d"),
			opName(22, "g_bindless_rwimage2d"),
		},
	}

	sets, err := GetDescriptorSets(m)
	require.NoError(t, err)

	info, ok := sets.ValueByKey(3).Get(0)
	require.True(t, ok)
	assert.Equal(t, BindingStaticSized{N: 10}, info.BindingCount)

	info, ok = sets.ValueByKey(4).Get(0)
	require.True(t, ok)
	assert.Equal(t, BindingUnbounded{}, info.BindingCount)
}
