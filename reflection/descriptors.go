package reflection

import "fmt"

// DescriptorType is an opaque 32-bit value bit-compatible with Vulkan's
// VkDescriptorType. Values the classifier never produces (anything not
// named below) still round-trip through DescriptorInfo; only their String
// form degrades to "(UNDEFINED)".
type DescriptorType uint32

const (
	DescriptorTypeSampler                  DescriptorType = 0
	DescriptorTypeCombinedImageSampler     DescriptorType = 1
	DescriptorTypeSampledImage             DescriptorType = 2
	DescriptorTypeStorageImage             DescriptorType = 3
	DescriptorTypeUniformTexelBuffer       DescriptorType = 4
	DescriptorTypeStorageTexelBuffer       DescriptorType = 5
	DescriptorTypeUniformBuffer            DescriptorType = 6
	DescriptorTypeStorageBuffer            DescriptorType = 7
	DescriptorTypeUniformBufferDynamic     DescriptorType = 8
	DescriptorTypeStorageBufferDynamic     DescriptorType = 9
	DescriptorTypeInputAttachment          DescriptorType = 10
	DescriptorTypeInlineUniformBlockEXT    DescriptorType = 1_000_138_000
	DescriptorTypeAccelerationStructureKHR DescriptorType = 1_000_150_000
	DescriptorTypeAccelerationStructureNV  DescriptorType = 1_000_165_000
)

// String renders the Vulkan-style descriptor type name, or "(UNDEFINED)"
// for a value that is not one of the named constants above.
func (t DescriptorType) String() string {
	switch t {
	case DescriptorTypeSampler:
		return "SAMPLER"
	case DescriptorTypeCombinedImageSampler:
		return "COMBINED_IMAGE_SAMPLER"
	case DescriptorTypeSampledImage:
		return "SAMPLED_IMAGE"
	case DescriptorTypeStorageImage:
		return "STORAGE_IMAGE"
	case DescriptorTypeUniformTexelBuffer:
		return "UNIFORM_TEXEL_BUFFER"
	case DescriptorTypeStorageTexelBuffer:
		return "STORAGE_TEXEL_BUFFER"
	case DescriptorTypeUniformBuffer:
		return "UNIFORM_BUFFER"
	case DescriptorTypeStorageBuffer:
		return "STORAGE_BUFFER"
	case DescriptorTypeUniformBufferDynamic:
		return "UNIFORM_BUFFER_DYNAMIC"
	case DescriptorTypeStorageBufferDynamic:
		return "STORAGE_BUFFER_DYNAMIC"
	case DescriptorTypeInputAttachment:
		return "INPUT_ATTACHMENT"
	case DescriptorTypeInlineUniformBlockEXT:
		return "INLINE_UNIFORM_BLOCK_EXT"
	case DescriptorTypeAccelerationStructureKHR:
		return "ACCELERATION_STRUCTURE_KHR"
	case DescriptorTypeAccelerationStructureNV:
		return "ACCELERATION_STRUCTURE_NV"
	default:
		return "(UNDEFINED)"
	}
}

// BindingCount is the arity a descriptor binding was declared with,
// modeled as a closed sum type the way package ir models TypeInner: one
// concrete type per variant, each carrying exactly the data that variant
// needs, matched with a type switch rather than a discriminant field.
//
// A BindingCount of Unbounded reflects how the binding's *type* was
// declared (a TypeRuntimeArray node in the module), not how the shader's
// executable code indexes it. The original rspirv-reflect crate this
// package's semantics trace back to called the concept "is_bindless" and
// derived it from usage analysis of indexing expressions; this reflector
// never walks function bodies, so Unbounded here is a declaration-level
// fact, not a usage-level one. In every shader corpus observed the two
// coincide, but a caller relying on Unbounded as a proxy for "truly
// bindless at runtime" should keep this distinction in mind.
type BindingCount interface {
	bindingCount()
}

// BindingOne is the arity of an ordinary, non-array binding.
type BindingOne struct{}

func (BindingOne) bindingCount() {}

// BindingStaticSized is the arity of a TypeArray binding with a constant,
// non-zero element count.
type BindingStaticSized struct {
	N uint32
}

func (BindingStaticSized) bindingCount() {}

// BindingUnbounded is the arity of a TypeRuntimeArray binding.
type BindingUnbounded struct{}

func (BindingUnbounded) bindingCount() {}

func bindingCountString(bc BindingCount) string {
	switch v := bc.(type) {
	case BindingOne:
		return "One"
	case BindingStaticSized:
		return fmt.Sprintf("StaticSized(%d)", v.N)
	case BindingUnbounded:
		return "Unbounded"
	default:
		return "?"
	}
}

// DescriptorInfo describes a single resource binding: its Vulkan-style
// descriptor type, its arity, and its debug name (empty when the module
// carries no OpName for the variable).
type DescriptorInfo struct {
	Type         DescriptorType
	BindingCount BindingCount
	Name         string
}

func (d DescriptorInfo) String() string {
	name := d.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("%s: %s %s", name, d.Type, bindingCountString(d.BindingCount))
}

// PushConstantInfo describes the shader's single push-constant range.
// Offset is always 0 in this revision — spec.md reserves the field for a
// future multi-range model but the classifier never computes a non-zero
// value.
type PushConstantInfo struct {
	Offset uint32
	Size   uint32
}

// WorkgroupSize is a compute shader's declared local workgroup size.
type WorkgroupSize struct {
	X, Y, Z uint32
}
