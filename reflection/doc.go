// Package reflection implements the SPIR-V resource-binding reflection
// core: the recursive type classifier, the instruction-graph accessor it
// runs on, and the three top-level enumerators (descriptor sets, push
// constant range, compute workgroup size) built on top of them.
//
// The core is a pure, read-only analysis over an already-parsed
// spirv.Module. It does not log, does not retry, and does not partially
// succeed: every operation either returns a complete result or an error
// wrapping a *ReflectError that names the failure kind and, where one
// applies, the offending instruction. The one exception is
// GetDescriptorSets, which panics on a duplicate (set, binding) slot or a
// duplicate DescriptorSet/Binding decoration.
//
// # References
//
//   - Khronos SPIR-V specification: https://registry.khronos.org/SPIR-V/
//   - Vulkan VkDescriptorType: https://registry.khronos.org/vulkan/specs/latest/man/html/VkDescriptorType.html
package reflection
