// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"unsafe"

	"github.com/solstice-engine/gpucore/errs"
	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/vk"
)

// CreateBindingSet implements §4.E: one pool sized exactly for this set's
// own bindings, a layout with the update-after-bind flags the
// sampled-texture-array bindings need, one allocated set, and every
// descriptor written once up front.
func (d *Device) CreateBindingSet(desc gfxtypes.BindingSetDescriptor) (*gfxtypes.BindingSet, error) {
	poolSizes := gfxtypes.PoolSizes(desc.Bindings)
	pool, res := d.cmds.CreateDescriptorPool(d.handle, &vk.DescriptorPoolCreateInfo{
		SType:     vk.StructureTypeDescriptorPoolCreateInfo,
		Flags:     vk.DescriptorPoolCreateUpdateAfterBind,
		MaxSets:   1,
		PoolSizes: poolSizes,
	})
	if res != vk.Success {
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkCreateDescriptorPool: %s", res))
	}

	vkBindings := make([]vk.DescriptorSetLayoutBinding, len(desc.Bindings))
	bindingFlags := make([]vk.DescriptorBindingFlags, len(desc.Bindings))
	for i, b := range desc.Bindings {
		count := b.Count
		if count == 0 {
			count = 1
		}
		vkBindings[i] = vk.DescriptorSetLayoutBinding{
			Binding:         b.Binding,
			DescriptorType:  b.DescriptorType(),
			DescriptorCount: count,
			StageFlags:      b.Stages,
		}
		if b.IsUpdateAfterBind() {
			bindingFlags[i] = vk.DescriptorBindingUpdateAfterBind | vk.DescriptorBindingPartiallyBound | vk.DescriptorBindingVariableDescriptorCount
		}
	}

	flagsInfo := vk.DescriptorSetLayoutBindingFlagsCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutBindingFlagsCreateInfo,
		BindingFlags: bindingFlags,
	}
	layout, res := d.cmds.CreateDescriptorSetLayout(d.handle, &vk.DescriptorSetLayoutCreateInfo{
		SType:    vk.StructureTypeDescriptorSetLayoutCreateInfo,
		PNext:    uintptr(unsafe.Pointer(&flagsInfo)),
		Flags:    vk.DescriptorSetLayoutCreateUpdateAfterBindPool,
		Bindings: vkBindings,
	})
	if res != vk.Success {
		d.cmds.DestroyDescriptorPool(d.handle, pool)
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkCreateDescriptorSetLayout: %s", res))
	}

	sets, res := d.cmds.AllocateDescriptorSets(d.handle, &vk.DescriptorSetAllocateInfo{
		SType:          vk.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool: pool,
		SetLayouts:     []vk.DescriptorSetLayout{layout},
	})
	if res != vk.Success || len(sets) == 0 {
		d.cmds.DestroyDescriptorSetLayout(d.handle, layout)
		d.cmds.DestroyDescriptorPool(d.handle, pool)
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkAllocateDescriptorSets: %s", res))
	}
	set := sets[0]

	writes := make([]vk.WriteDescriptorSet, 0, len(desc.Bindings))
	for _, b := range desc.Bindings {
		writes = append(writes, writeFor(set, b))
	}
	d.cmds.UpdateDescriptorSets(d.handle, writes)

	bs := &gfxtypes.BindingSet{Pool: pool, Layout: layout, Set: set, Descriptor: desc}
	d.setDebugName(uint64(set), objectTypeDescriptorSet, desc.DebugName)
	return bs, nil
}

// padTextures repeats the first element into every slot beyond len(arr),
// up to count, per §4.E's "never left undefined" rule.
func padTextures(arr []*gfxtypes.Texture, count uint32) []*gfxtypes.Texture {
	if uint32(len(arr)) >= count || len(arr) == 0 {
		return arr
	}
	out := make([]*gfxtypes.Texture, count)
	copy(out, arr)
	for i := len(arr); i < int(count); i++ {
		out[i] = arr[0]
	}
	return out
}

func padBuffers(arr []*gfxtypes.Buffer, count uint32) []*gfxtypes.Buffer {
	if uint32(len(arr)) >= count || len(arr) == 0 {
		return arr
	}
	out := make([]*gfxtypes.Buffer, count)
	copy(out, arr)
	for i := len(arr); i < int(count); i++ {
		out[i] = arr[0]
	}
	return out
}

func writeFor(set vk.DescriptorSet, b gfxtypes.ShaderBinding) vk.WriteDescriptorSet {
	w := vk.WriteDescriptorSet{
		SType:          vk.StructureTypeWriteDescriptorSet,
		DstSet:         set,
		DstBinding:     b.Binding,
		DescriptorType: b.DescriptorType(),
	}
	count := b.Count
	if count == 0 {
		count = 1
	}
	switch b.Kind {
	case gfxtypes.BindingUniformBuffer, gfxtypes.BindingStorageBuffer:
		w.BufferInfo = []vk.DescriptorBufferInfo{{Buffer: b.Buffer.Handle, Offset: 0, Range: vk.WholeSize}}
		w.DescriptorCount = 1
	case gfxtypes.BindingStorageBufferArray:
		bufs := padBuffers(b.BufferArray, count)
		infos := make([]vk.DescriptorBufferInfo, len(bufs))
		for i, buf := range bufs {
			infos[i] = vk.DescriptorBufferInfo{Buffer: buf.Handle, Offset: 0, Range: vk.WholeSize}
		}
		w.BufferInfo = infos
		w.DescriptorCount = uint32(len(infos))
	case gfxtypes.BindingSampledTexture:
		w.ImageInfo = []vk.DescriptorImageInfo{{ImageView: b.Texture.View, ImageLayout: vk.ImageLayoutShaderReadOnlyOptimal}}
		w.DescriptorCount = 1
	case gfxtypes.BindingSampledTextureArray:
		texs := padTextures(b.TextureArray, count)
		infos := make([]vk.DescriptorImageInfo, len(texs))
		for i, t := range texs {
			infos[i] = vk.DescriptorImageInfo{ImageView: t.View, ImageLayout: vk.ImageLayoutShaderReadOnlyOptimal}
		}
		w.ImageInfo = infos
		w.DescriptorCount = uint32(len(infos))
	case gfxtypes.BindingStorageTexture:
		w.ImageInfo = []vk.DescriptorImageInfo{{ImageView: b.Texture.View, ImageLayout: vk.ImageLayoutGeneral}}
		w.DescriptorCount = 1
	case gfxtypes.BindingAccelerationStructure:
		asInfo := vk.WriteDescriptorSetAccelerationStructureKHR{
			SType:                      vk.StructureTypeWriteDescriptorSetAccelerationStructureKHR,
			AccelerationStructureCount: 1,
			AccelerationStructures:     []vk.AccelerationStructure{b.AccelStruct.Handle},
		}
		w.PNext = uintptr(unsafe.Pointer(&asInfo))
		w.DescriptorCount = 1
	}
	return w
}

// UpdateTextures rewrites a subset of an array binding using the
// update-after-bind guarantee (§4.E); it is a logic violation to call this
// against any binding that is not a sampled-texture array.
func (d *Device) UpdateTextures(bs *gfxtypes.BindingSet, bindingIndex uint32, updates []*gfxtypes.Texture) error {
	var target *gfxtypes.ShaderBinding
	for i := range bs.Descriptor.Bindings {
		if bs.Descriptor.Bindings[i].Binding == bindingIndex {
			target = &bs.Descriptor.Bindings[i]
			break
		}
	}
	if target == nil || target.Kind != gfxtypes.BindingSampledTextureArray {
		return errs.Logic(fmt.Sprintf("UpdateTextures: binding %d is not a sampled-texture array", bindingIndex))
	}
	infos := make([]vk.DescriptorImageInfo, len(updates))
	for i, t := range updates {
		infos[i] = vk.DescriptorImageInfo{ImageView: t.View, ImageLayout: vk.ImageLayoutShaderReadOnlyOptimal}
	}
	d.cmds.UpdateDescriptorSets(d.handle, []vk.WriteDescriptorSet{{
		SType:           vk.StructureTypeWriteDescriptorSet,
		DstSet:          bs.Set,
		DstBinding:      bindingIndex,
		DescriptorType:  target.DescriptorType(),
		ImageInfo:       infos,
		DescriptorCount: uint32(len(infos)),
	}})
	copy(target.TextureArray, updates)
	return nil
}

// DestroyBindingSet enqueues deferred deletes for the pool and layout; the
// set itself is freed implicitly with its pool (§4.E: one pool per set).
func (d *Device) DestroyBindingSet(bs *gfxtypes.BindingSet) {
	if bs.Destroyed {
		return
	}
	bs.Destroyed = true
	d.scheduler.enqueueDelete(deleteRequest{kind: deleteKindDescriptorPool, handle: uint64(bs.Pool)})
	d.scheduler.enqueueDelete(deleteRequest{kind: deleteKindDescriptorSetLayout, handle: uint64(bs.Layout)})
}
