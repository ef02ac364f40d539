// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

// Package reflect derives descriptor-set layouts, push-constant ranges, and
// named-uniform tables from compiled SPIR-V bytecode, the way
// VulkanShaderConfig is populated by hand in the teacher's renderer but here
// read directly off the module's OpDecorate/OpVariable/OpTypeStruct
// instructions instead of an external author-supplied config.
//
// This parses the SPIR-V binary container and instruction stream directly
// against the standard library only: the one candidate ecosystem library in
// the retrieval pack, github.com/gogpu/naga, only has its MSL backend
// present, and its go.mod is pinned through an unresolvable "replace
// ../naga" local path, so it cannot be fetched. See DESIGN.md.
package reflect

import (
	"encoding/binary"
	"fmt"

	"github.com/solstice-engine/gpucore/errs"
	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/vk"
)

const (
	magicNumber    = 0x07230203
	opTypeStruct   = 30
	opTypePointer  = 32
	opVariable     = 59
	opDecorate     = 71
	opMemberDecorate = 72
	opName         = 5
	opMemberName   = 6
	opEntryPoint   = 15
	opTypeArray    = 28
	opTypeRuntimeArray = 29
	opConstant     = 43

	decorationBinding      = 33
	decorationDescriptorSet = 34
	decorationOffset       = 35

	storageClassUniformConstant = 0
	storageClassUniform         = 2
	storageClassPushConstant    = 9
	storageClassStorageBuffer   = 12
)

// Module is one stage's reflected bytecode.
type Module struct {
	Stage  vk.ShaderStageFlags
	Words  []uint32

	bindings       map[uint32]*bindingInfo // keyed by result-id of the pointer variable
	memberNames    map[uint32]map[uint32]string
	memberOffsets  map[uint32]map[uint32]uint32
	names          map[uint32]string
	typeOfVariable map[uint32]uint32 // var id -> pointee type id
	decoratedSet   map[uint32]uint32
	decoratedBind  map[uint32]uint32
	pushConstTypes map[uint32]bool
	storageClassOf map[uint32]uint32
}

type bindingInfo struct {
	set, binding uint32
	typeID       uint32
	storageClass uint32
}

// Parse reads a SPIR-V binary module and indexes the decorations and
// variables reflection needs. It does not validate the module beyond the
// magic number; malformed bytecode yields an incomplete, not panicking,
// Module.
func Parse(stage vk.ShaderStageFlags, spirv []byte) (*Module, error) {
	if len(spirv) < 20 || len(spirv)%4 != 0 {
		return nil, fmt.Errorf("reflect: bytecode length %d is not a valid SPIR-V module", len(spirv))
	}
	words := make([]uint32, len(spirv)/4)
	if binary.LittleEndian.Uint32(spirv[0:4]) == magicNumber {
		for i := range words {
			words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
		}
	} else if binary.BigEndian.Uint32(spirv[0:4]) == magicNumber {
		for i := range words {
			words[i] = binary.BigEndian.Uint32(spirv[i*4:])
		}
	} else {
		return nil, fmt.Errorf("reflect: missing SPIR-V magic number")
	}

	m := &Module{
		Stage:          stage,
		Words:          words,
		bindings:       make(map[uint32]*bindingInfo),
		memberNames:    make(map[uint32]map[uint32]string),
		memberOffsets:  make(map[uint32]map[uint32]uint32),
		names:          make(map[uint32]string),
		typeOfVariable: make(map[uint32]uint32),
		decoratedSet:   make(map[uint32]uint32),
		decoratedBind:  make(map[uint32]uint32),
		pushConstTypes: make(map[uint32]bool),
		storageClassOf: make(map[uint32]uint32),
	}
	m.index()
	return m, nil
}

func (m *Module) index() {
	w := m.Words
	i := 5 // skip header: magic, version, generator, bound, schema
	for i < len(w) {
		inst := w[i]
		wordCount := inst >> 16
		opcode := inst & 0xFFFF
		if wordCount == 0 || i+int(wordCount) > len(w) {
			break
		}
		ops := w[i+1 : i+int(wordCount)]

		switch opcode {
		case opDecorate:
			target, decoration := ops[0], ops[1]
			switch decoration {
			case decorationDescriptorSet:
				m.decoratedSet[target] = ops[2]
			case decorationBinding:
				m.decoratedBind[target] = ops[2]
			}
		case opMemberDecorate:
			target, member, decoration := ops[0], ops[1], ops[2]
			if decoration == decorationOffset {
				if m.memberOffsets[target] == nil {
					m.memberOffsets[target] = make(map[uint32]uint32)
				}
				m.memberOffsets[target][member] = ops[3]
			}
		case opName:
			m.names[ops[0]] = parseLiteralString(ops[1:])
		case opMemberName:
			target, member := ops[0], ops[1]
			if m.memberNames[target] == nil {
				m.memberNames[target] = make(map[uint32]string)
			}
			m.memberNames[target][member] = parseLiteralString(ops[2:])
		case opTypePointer:
			resultID, storageClass, pointeeType := ops[0], ops[1], ops[2]
			m.typeOfVariable[resultID] = pointeeType
			m.storageClassOf[resultID] = storageClass
			if storageClass == storageClassPushConstant {
				m.pushConstTypes[pointeeType] = true
			}
		case opVariable:
			// %result = OpVariable %pointerType storageClass
			pointerTypeID, resultID, storageClass := ops[0], ops[1], ops[2]
			pointeeType, known := m.typeOfVariable[pointerTypeID]
			if !known {
				continue
			}
			if storageClass == storageClassUniformConstant ||
				storageClass == storageClassUniform ||
				storageClass == storageClassStorageBuffer {
				m.bindings[resultID] = &bindingInfo{
					set:          m.decoratedSet[resultID],
					binding:      m.decoratedBind[resultID],
					typeID:       pointeeType,
					storageClass: storageClass,
				}
			}
		}
		i += int(wordCount)
	}
}

func parseLiteralString(words []uint32) string {
	buf := make([]byte, 0, len(words)*4)
	for _, w := range words {
		for shift := 0; shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				return string(buf)
			}
			buf = append(buf, b)
		}
	}
	return string(buf)
}

// ResourceBinding is one descriptor-set-layout slot derived from a single
// stage's reflection, before the union pass across stages.
type ResourceBinding struct {
	Set, Binding uint32
	Stage        vk.ShaderStageFlags
	Kind         gfxtypes.BindingKind
}

// Bindings returns every descriptor-set binding this module declares.
func (m *Module) Bindings() []ResourceBinding {
	out := make([]ResourceBinding, 0, len(m.bindings))
	for _, b := range m.bindings {
		out = append(out, ResourceBinding{
			Set:     b.set,
			Binding: b.binding,
			Stage:   m.Stage,
			Kind:    kindFor(b.storageClass),
		})
	}
	return out
}

func kindFor(storageClass uint32) gfxtypes.BindingKind {
	switch storageClass {
	case storageClassUniform:
		return gfxtypes.BindingUniformBuffer
	case storageClassStorageBuffer:
		return gfxtypes.BindingStorageBuffer
	default:
		return gfxtypes.BindingSampledTexture
	}
}

// PushConstantMembers returns the named, offset-and-sized members of this
// stage's push-constant block, if any.
func (m *Module) PushConstantMembers() []gfxtypes.NamedUniform {
	var out []gfxtypes.NamedUniform
	for typeID := range m.pushConstTypes {
		names := m.memberNames[typeID]
		offsets := m.memberOffsets[typeID]
		for member, off := range offsets {
			out = append(out, gfxtypes.NamedUniform{
				Name:   names[member],
				Offset: off,
			})
		}
	}
	return out
}

// UnionBindings merges per-stage bindings into one descriptor-set-layout
// plan, combining the stage masks of bindings that agree on (set, binding,
// kind) and failing with errs.ErrFatalShader when two stages disagree on
// the resource kind at the same slot.
func UnionBindings(modules []*Module) ([]gfxtypes.ShaderBinding, error) {
	type key struct{ set, binding uint32 }
	merged := make(map[key]*gfxtypes.ShaderBinding)
	order := make([]key, 0)

	for _, m := range modules {
		for _, b := range m.Bindings() {
			k := key{b.Set, b.Binding}
			if existing, ok := merged[k]; ok {
				if existing.Kind != b.Kind {
					return nil, errs.Shader(
						fmt.Sprintf("set=%d binding=%d", b.Set, b.Binding),
						fmt.Errorf("stage %d declares kind %d, earlier stage declared kind %d", b.Stage, b.Kind, existing.Kind),
					)
				}
				existing.Stages |= b.Stage
				continue
			}
			sb := &gfxtypes.ShaderBinding{Kind: b.Kind, Set: b.Set, Binding: b.Binding, Stages: b.Stage}
			merged[k] = sb
			order = append(order, k)
		}
	}

	out := make([]gfxtypes.ShaderBinding, 0, len(order))
	for _, k := range order {
		out = append(out, *merged[k])
	}
	return out, nil
}

// UnionPushConstants merges per-stage push-constant member layouts into one
// range list plus a named-uniform table, failing fast with
// errs.ErrFatalShader when two stages give a same-named member different
// offsets (§4.C). The list holds one range per stage, running from that
// stage's lowest member offset to its highest plus 4 bytes; the ranges are
// not merged into one, and the stages' total sizes are not compared.
func UnionPushConstants(modules []*Module) ([]gfxtypes.PushConstantRange, []gfxtypes.NamedUniform, error) {
	type span struct {
		offset, size uint32
		stages       vk.ShaderStageFlags
	}
	named := make(map[string]gfxtypes.NamedUniform)
	var spans []span

	for _, m := range modules {
		members := m.PushConstantMembers()
		if len(members) == 0 {
			continue
		}
		var lo, hi uint32 = ^uint32(0), 0
		for _, u := range members {
			if existing, ok := named[u.Name]; ok && existing.Offset != u.Offset {
				return nil, nil, errs.Shader(u.Name,
					fmt.Errorf("push-constant member offset disagreement: %d vs %d", existing.Offset, u.Offset))
			}
			named[u.Name] = u
			if u.Offset < lo {
				lo = u.Offset
			}
			if u.Offset > hi {
				hi = u.Offset
			}
		}
		spans = append(spans, span{offset: lo, size: hi - lo + 4, stages: m.Stage})
	}

	ranges := make([]gfxtypes.PushConstantRange, 0, len(spans))
	for _, s := range spans {
		ranges = append(ranges, gfxtypes.PushConstantRange{Offset: s.offset, Size: s.size, Stages: s.stages})
	}
	uniforms := make([]gfxtypes.NamedUniform, 0, len(named))
	for _, u := range named {
		uniforms = append(uniforms, u)
	}
	return ranges, uniforms, nil
}

// RejectMultiDimArrays reports an error if any OpTypeArray in the module
// nests inside another OpTypeArray/OpTypeRuntimeArray, since the backend's
// binding model (§3) supports only a single array dimension per binding.
func RejectMultiDimArrays(m *Module) error {
	w := m.Words
	arrayElementType := make(map[uint32]uint32)
	i := 5
	for i < len(w) {
		inst := w[i]
		wordCount := inst >> 16
		opcode := inst & 0xFFFF
		if wordCount == 0 || i+int(wordCount) > len(w) {
			break
		}
		ops := w[i+1 : i+int(wordCount)]
		if opcode == opTypeArray || opcode == opTypeRuntimeArray {
			resultID, elementType := ops[0], ops[1]
			arrayElementType[resultID] = elementType
		}
		i += int(wordCount)
	}
	for arr, elem := range arrayElementType {
		if _, nested := arrayElementType[elem]; nested {
			return errs.Shader(fmt.Sprintf("type %%%d", arr), fmt.Errorf("multi-dimensional array bindings are not supported"))
		}
	}
	return nil
}
