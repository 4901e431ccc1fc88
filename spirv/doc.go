// Package spirv models the instruction graph of an already-parsed SPIR-V
// module, and knows how to produce one from a raw binary.
//
// This package plays the "external collaborator" role a reflection library
// keeps at arm's length: the wire format, binary parser, and disassembler
// are not part of the reflection algorithm itself (see package reflection),
// they just supply the typed instruction graph it walks.
//
// # Structure
//
// A Module holds five things the reflector needs:
//   - Header: the SPIR-V version, used to resolve the Block/BufferBlock
//     struct-classification overlap at version 1.3.
//   - TypesGlobalValues: OpType*, OpConstant*, and module-scope OpVariable
//     instructions, in source order.
//   - Annotations: OpDecorate / OpMemberDecorate instructions.
//   - DebugNames: OpName / OpMemberName instructions.
//   - GlobalInstructions: OpEntryPoint / OpExecutionMode instructions.
//
// Function bodies are intentionally not retained; reflection never needs
// to look inside a function to classify a resource or size a struct.
//
// # Parsing
//
//	module, err := spirv.Parse(code)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(spirv.Disassemble(module))
//
// # References
//
// SPIR-V Specification: https://registry.khronos.org/SPIR-V/specs/unified1/SPIRV.html
package spirv
