package reflection

import "github.com/gogpu/spirvreflect/spirv"

// GetComputeGroupSize implements spec.md §4.5: it scans global
// instructions for the first OpExecutionMode whose operands match
// ExecutionMode(LocalSize|LocalSizeHint), x, y, z and returns that triple.
// Malformed execution-mode instructions are silently skipped, not
// reported as errors — any other instruction shape simply isn't a
// workgroup-size declaration.
func GetComputeGroupSize(m *spirv.Module) *WorkgroupSize {
	for _, instr := range m.GlobalInstructions {
		if instr.Opcode != spirv.OpExecutionMode {
			continue
		}
		if len(instr.Operands) < 5 {
			continue
		}
		mode, ok := instr.Operands[1].(spirv.ExecutionModeOperand)
		if !ok {
			continue
		}
		if spirv.ExecutionMode(mode) != spirv.ExecutionModeLocalSize && spirv.ExecutionMode(mode) != spirv.ExecutionModeLocalSizeHint {
			continue
		}
		x, ok1 := instr.Operands[2].(spirv.LiteralInt32)
		y, ok2 := instr.Operands[3].(spirv.LiteralInt32)
		z, ok3 := instr.Operands[4].(spirv.LiteralInt32)
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		return &WorkgroupSize{X: uint32(x), Y: uint32(y), Z: uint32(z)}
	}
	return nil
}
