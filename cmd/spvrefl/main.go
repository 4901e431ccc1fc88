// Command spvrefl prints reflection data for a compiled SPIR-V binary.
//
// Usage:
//
//	spvrefl [options] <input.spv>
//
// Examples:
//
//	spvrefl shader.spv             # Print descriptor sets, push constants, workgroup size
//	spvrefl -disasm shader.spv     # Also print a textual disassembly
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gogpu/spirvreflect"
)

var (
	disasm      = flag.Bool("disasm", false, "also print a textual disassembly")
	versionFlag = flag.Bool("version", false, "print version")
)

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "dev"
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("spvrefl version %s\n", version())
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	inputPath := args[0]
	code, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	refl, err := spirvreflect.NewFromSPIRV(code)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		os.Exit(1)
	}

	if err := printReflection(refl); err != nil {
		fmt.Fprintf(os.Stderr, "Reflection error: %v\n", err)
		os.Exit(1)
	}

	if *disasm {
		fmt.Println()
		fmt.Println(refl.Disassemble())
	}
}

func printReflection(refl *spirvreflect.Reflection) error {
	sets, err := refl.GetDescriptorSets()
	if err != nil {
		return err
	}
	for _, setIdx := range sets.Keys() {
		bindings := sets.ValueByKey(setIdx)
		for _, bindingIdx := range bindings.Keys() {
			info := bindings.ValueByKey(bindingIdx)
			fmt.Printf("set=%d binding=%d %s\n", setIdx, bindingIdx, info)
		}
	}

	pc, err := refl.GetPushConstantRange()
	if err != nil {
		return err
	}
	if pc != nil {
		fmt.Printf("push_constant: offset=%d size=%d\n", pc.Offset, pc.Size)
	}

	if wg := refl.GetComputeGroupSize(); wg != nil {
		fmt.Printf("workgroup_size: (%d, %d, %d)\n", wg.X, wg.Y, wg.Z)
	}

	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: spvrefl [options] <input.spv>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  spvrefl shader.spv           Print descriptor sets, push constants, workgroup size\n")
	fmt.Fprintf(os.Stderr, "  spvrefl -disasm shader.spv   Also print a textual disassembly\n")
}
