// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"

	"github.com/solstice-engine/gpucore/errs"
	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/vk"
)

// CreateSampler implements §4.B's standalone sampler factory; mip-lod
// bounds cover the whole practical range since neither the descriptor nor
// the spec ties a sampler's lod range to any one texture's mip count.
func (d *Device) CreateSampler(desc gfxtypes.SamplerDescriptor) (*gfxtypes.Sampler, error) {
	maxLod := desc.MaxLod
	if maxLod == 0 {
		maxLod = vkLodClamp
	}
	handle, res := d.cmds.CreateSampler(d.handle, &vk.SamplerCreateInfo{
		SType:            vk.StructureTypeSamplerCreateInfo,
		MagFilter:        desc.Filters.MagFilter,
		MinFilter:        desc.Filters.MinFilter,
		MipmapMode:       desc.Filters.MipmapMode,
		AddressModeU:     desc.Filters.WrapU,
		AddressModeV:     desc.Filters.WrapV,
		AddressModeW:     desc.Filters.WrapW,
		MaxAnisotropy:    desc.MaxAnisotropy,
		AnisotropyEnable: desc.MaxAnisotropy > 1,
		CompareEnable:    desc.CompareEnable,
		CompareOp:        desc.CompareOp,
		MinLod:           desc.MinLod,
		MaxLod:           maxLod,
	})
	if res != vk.Success {
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkCreateSampler: %s", res))
	}
	s := &gfxtypes.Sampler{Handle: handle, Descriptor: desc}
	d.setDebugName(uint64(handle), objectTypeSampler, desc.DebugName)
	return s, nil
}

// vkLodClamp is VK_LOD_CLAMP_NONE, used so every sampler can address any
// texture's full mip chain regardless of level count.
const vkLodClamp float32 = 1000.0

func (d *Device) DestroySampler(s *gfxtypes.Sampler) {
	if s.Destroyed {
		return
	}
	s.Destroyed = true
	d.scheduler.enqueueDelete(deleteRequest{kind: deleteKindSampler, handle: uint64(s.Handle)})
}
