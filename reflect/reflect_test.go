// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package reflect

import (
	"encoding/binary"
	"testing"

	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/vk"
)

// instr builds one SPIR-V instruction word stream: the opcode/word-count
// header word followed by its operand words.
func instr(opcode uint32, operands ...uint32) []uint32 {
	wordCount := uint32(len(operands) + 1)
	out := make([]uint32, 0, wordCount)
	out = append(out, (wordCount<<16)|opcode)
	out = append(out, operands...)
	return out
}

// literalWords packs a null-terminated string into SPIR-V literal words.
func literalWords(s string) []uint32 {
	b := append([]byte(s), 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}
	return words
}

// assembleModule builds a minimal well-formed SPIR-V binary (little-endian)
// out of a flat instruction stream, for exercising the word-walk in index()
// and RejectMultiDimArrays without a real compiler.
func assembleModule(instructions ...[]uint32) []byte {
	words := []uint32{magicNumber, 0x00010300, 0, 100, 0} // header: magic, version, generator, bound, schema
	for _, ins := range instructions {
		words = append(words, ins...)
	}
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return buf
}

func TestParseRejectsShortOrInvalidBytecode(t *testing.T) {
	if _, err := Parse(vk.ShaderStageVertex, []byte{1, 2, 3}); err == nil {
		t.Error("expected an error for bytecode shorter than a SPIR-V header")
	}
	garbage := make([]byte, 24)
	if _, err := Parse(vk.ShaderStageVertex, garbage); err == nil {
		t.Error("expected an error for bytecode missing the SPIR-V magic number")
	}
}

func TestParseAndBindingsDerivesUniformBuffer(t *testing.T) {
	// %1 = a scalar/struct type stood in for the pointee type
	// %2 = OpTypePointer Uniform %1
	// %3 = OpVariable %2 Uniform, decorated set=0 binding=1
	spirv := assembleModule(
		instr(opDecorate, 3, decorationDescriptorSet, 0),
		instr(opDecorate, 3, decorationBinding, 1),
		instr(opTypePointer, 2, storageClassUniform, 1),
		instr(opVariable, 2, 3, storageClassUniform),
	)

	m, err := Parse(vk.ShaderStageFragment, spirv)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	bindings := m.Bindings()
	if len(bindings) != 1 {
		t.Fatalf("got %d bindings, want 1", len(bindings))
	}
	b := bindings[0]
	if b.Set != 0 || b.Binding != 1 {
		t.Errorf("binding = set %d binding %d, want set 0 binding 1", b.Set, b.Binding)
	}
	if b.Kind != gfxtypes.BindingUniformBuffer {
		t.Errorf("Kind = %v, want BindingUniformBuffer", b.Kind)
	}
	if b.Stage != vk.ShaderStageFragment {
		t.Errorf("Stage = %v, want ShaderStageFragment", b.Stage)
	}
}

func TestPushConstantMembers(t *testing.T) {
	// %2 = OpTypePointer PushConstant %1 (struct type %1 holds the members)
	nameOperands := append([]uint32{1, 0}, literalWords("mvp")...)
	spirv := assembleModule(
		instr(opMemberName, nameOperands...),
		instr(opMemberDecorate, 1, 0, decorationOffset, 0),
		instr(opTypePointer, 2, storageClassPushConstant, 1),
	)

	m, err := Parse(vk.ShaderStageVertex, spirv)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	members := m.PushConstantMembers()
	if len(members) != 1 {
		t.Fatalf("got %d push-constant members, want 1", len(members))
	}
	if members[0].Name != "mvp" || members[0].Offset != 0 {
		t.Errorf("member = %+v, want {Name:mvp Offset:0}", members[0])
	}
}

func TestUnionBindingsMergesStageMasks(t *testing.T) {
	vert := assembleModule(
		instr(opDecorate, 3, decorationDescriptorSet, 0),
		instr(opDecorate, 3, decorationBinding, 0),
		instr(opTypePointer, 2, storageClassUniform, 1),
		instr(opVariable, 2, 3, storageClassUniform),
	)
	frag := assembleModule(
		instr(opDecorate, 3, decorationDescriptorSet, 0),
		instr(opDecorate, 3, decorationBinding, 0),
		instr(opTypePointer, 2, storageClassUniform, 1),
		instr(opVariable, 2, 3, storageClassUniform),
	)
	vm, err := Parse(vk.ShaderStageVertex, vert)
	if err != nil {
		t.Fatal(err)
	}
	fm, err := Parse(vk.ShaderStageFragment, frag)
	if err != nil {
		t.Fatal(err)
	}

	merged, err := UnionBindings([]*Module{vm, fm})
	if err != nil {
		t.Fatalf("UnionBindings() error = %v", err)
	}
	if len(merged) != 1 {
		t.Fatalf("got %d merged bindings, want 1", len(merged))
	}
	wantStages := vk.ShaderStageVertex | vk.ShaderStageFragment
	if merged[0].Stages != wantStages {
		t.Errorf("Stages = %v, want %v", merged[0].Stages, wantStages)
	}
}

func TestUnionBindingsFailsOnKindDisagreement(t *testing.T) {
	asUniform := assembleModule(
		instr(opDecorate, 3, decorationDescriptorSet, 0),
		instr(opDecorate, 3, decorationBinding, 0),
		instr(opTypePointer, 2, storageClassUniform, 1),
		instr(opVariable, 2, 3, storageClassUniform),
	)
	asStorage := assembleModule(
		instr(opDecorate, 3, decorationDescriptorSet, 0),
		instr(opDecorate, 3, decorationBinding, 0),
		instr(opTypePointer, 2, storageClassStorageBuffer, 1),
		instr(opVariable, 2, 3, storageClassStorageBuffer),
	)
	vm, err := Parse(vk.ShaderStageVertex, asUniform)
	if err != nil {
		t.Fatal(err)
	}
	fm, err := Parse(vk.ShaderStageFragment, asStorage)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := UnionBindings([]*Module{vm, fm}); err == nil {
		t.Error("expected UnionBindings to fail when stages disagree on a binding's kind")
	}
}

func TestRejectMultiDimArraysAllowsSingleDimension(t *testing.T) {
	spirv := assembleModule(instr(opTypeArray, 2, 100, 4))
	m, err := Parse(vk.ShaderStageCompute, spirv)
	if err != nil {
		t.Fatal(err)
	}
	if err := RejectMultiDimArrays(m); err != nil {
		t.Errorf("RejectMultiDimArrays() = %v, want nil for a single-dimension array", err)
	}
}

func TestRejectMultiDimArraysCatchesNesting(t *testing.T) {
	spirv := assembleModule(
		instr(opTypeArray, 3, 99, 4), // inner array %3, element %99
		instr(opTypeArray, 2, 3, 8),  // outer array %2, element %3 (itself an array)
	)
	m, err := Parse(vk.ShaderStageCompute, spirv)
	if err != nil {
		t.Fatal(err)
	}
	if err := RejectMultiDimArrays(m); err == nil {
		t.Error("expected RejectMultiDimArrays to reject a nested array type")
	}
}
