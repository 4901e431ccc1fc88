// Package spirvreflect provides reflection over compiled SPIR-V shader
// binaries: the resource bindings a shader consumes (organized by
// descriptor set and binding index), its push-constant range, and its
// declared compute workgroup size.
//
// The package is a thin façade over two subpackages, the same division
// of labor as github.com/gogpu/naga's root package over its own
// subpackages: spirv holds the instruction-graph data model, binary
// parser, and debug disassembler; reflection holds the actual
// engineering — the recursive type classifier and the enumerators built
// on it.
//
// Example usage:
//
//	refl, err := spirvreflect.NewFromSPIRV(spirvBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sets, err := refl.GetDescriptorSets()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, setIdx := range sets.Keys() {
//	    bindings := sets.ValueByKey(setIdx)
//	    for _, bindingIdx := range bindings.Keys() {
//	        info := bindings.ValueByKey(bindingIdx)
//	        fmt.Printf("set=%d binding=%d %s\n", setIdx, bindingIdx, info)
//	    }
//	}
package spirvreflect

import (
	"github.com/gogpu/spirvreflect/reflection"
	"github.com/gogpu/spirvreflect/spirv"
)

// Reflection wraps a parsed SPIR-V module and exposes the reflection
// operations over it. It is immutable and safe to call concurrently from
// multiple goroutines.
type Reflection struct {
	module *spirv.Module
}

// NewFromSPIRV parses a raw SPIR-V binary and wraps the result.
func NewFromSPIRV(code []byte) (*Reflection, error) {
	m, err := spirv.Parse(code)
	if err != nil {
		return nil, err
	}
	return New(m), nil
}

// New wraps an already-parsed Module.
func New(m *spirv.Module) *Reflection {
	return &Reflection{module: m}
}

// DescriptorSetMap is the ordered, two-level map GetDescriptorSets
// returns: set index to binding index to DescriptorInfo, both levels
// iterating in ascending numeric key order.
type DescriptorSetMap = reflection.OrderedUint32Map[*reflection.OrderedUint32Map[reflection.DescriptorInfo]]

// GetDescriptorSets enumerates every resource binding the shader
// declares, joined against its DescriptorSet/Binding decorations and
// debug name.
func (r *Reflection) GetDescriptorSets() (*DescriptorSetMap, error) {
	return reflection.GetDescriptorSets(r.module)
}

// GetPushConstantRange returns the shader's single push-constant range,
// or nil if it declares none.
func (r *Reflection) GetPushConstantRange() (*reflection.PushConstantInfo, error) {
	return reflection.GetPushConstantRange(r.module)
}

// GetComputeGroupSize returns the shader's declared compute workgroup
// size, or nil if it declares none.
func (r *Reflection) GetComputeGroupSize() *reflection.WorkgroupSize {
	return reflection.GetComputeGroupSize(r.module)
}

// Disassemble returns a textual dump of the wrapped module, delegated to
// the spirv package's disassembler. This is a debugging convenience, not
// part of the reflection core's contract.
func (r *Reflection) Disassemble() string {
	return spirv.Disassemble(r.module)
}
