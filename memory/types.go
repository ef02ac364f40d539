// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

// Package memory selects Vulkan memory types and suballocates
// VkDeviceMemory blocks for the backend package.
package memory

import "github.com/solstice-engine/gpucore/vk"

// UsageFlags specifies intended memory usage; the selector uses it to pick
// device-local vs host-visible memory types.
type UsageFlags uint32

const (
	UsageFastDeviceAccess UsageFlags = 1 << iota
	UsageHostAccess
	UsageUpload
	UsageDownload
	UsageTransient
)

// AllocationRequest describes a memory allocation request derived from a
// VkMemoryRequirements query plus the caller's intended usage.
type AllocationRequest struct {
	Size           uint64
	Alignment      uint64
	Usage          UsageFlags
	MemoryTypeBits uint32
}

// Block is a suballocated region of a VkDeviceMemory allocation.
type Block struct {
	Memory          vk.DeviceMemory
	Offset          uint64
	Size            uint64
	memoryTypeIndex uint32
	dedicated       bool
	MappedPtr       uintptr
}

func (b *Block) IsDedicated() bool        { return b.dedicated }
func (b *Block) MemoryTypeIndex() uint32  { return b.memoryTypeIndex }

type MemoryType struct {
	PropertyFlags vk.MemoryPropertyFlags
	HeapIndex     uint32
}

type MemoryHeap struct {
	Size  uint64
	Flags vk.MemoryHeapFlags
}

// DeviceMemoryProperties mirrors VkPhysicalDeviceMemoryProperties after
// unpacking the fixed-size C arrays into slices.
type DeviceMemoryProperties struct {
	MemoryTypes []MemoryType
	MemoryHeaps []MemoryHeap
}

// FromVk converts the raw Vulkan query result.
func FromVk(props *vk.PhysicalDeviceMemoryProperties) DeviceMemoryProperties {
	out := DeviceMemoryProperties{
		MemoryTypes: make([]MemoryType, props.MemoryTypeCount),
		MemoryHeaps: make([]MemoryHeap, props.MemoryHeapCount),
	}
	for i := uint32(0); i < props.MemoryTypeCount; i++ {
		out.MemoryTypes[i] = MemoryType{
			PropertyFlags: props.MemoryTypes[i].PropertyFlags,
			HeapIndex:     props.MemoryTypes[i].HeapIndex,
		}
	}
	for i := uint32(0); i < props.MemoryHeapCount; i++ {
		out.MemoryHeaps[i] = MemoryHeap{
			Size:  props.MemoryHeaps[i].Size,
			Flags: props.MemoryHeaps[i].Flags,
		}
	}
	return out
}

const knownMemoryFlags = vk.MemoryPropertyDeviceLocal |
	vk.MemoryPropertyHostVisible |
	vk.MemoryPropertyHostCoherent |
	vk.MemoryPropertyHostCached |
	vk.MemoryPropertyLazilyAllocated

// TypeSelector picks the best Vulkan memory type for a request.
type TypeSelector struct {
	properties DeviceMemoryProperties
	validTypes uint32
}

func NewTypeSelector(props DeviceMemoryProperties) *TypeSelector {
	var valid uint32
	for i, mt := range props.MemoryTypes {
		if mt.PropertyFlags & ^vk.MemoryPropertyFlags(knownMemoryFlags) == 0 {
			valid |= 1 << uint(i)
		}
	}
	return &TypeSelector{properties: props, validTypes: valid}
}

// Select returns the memory type index best matching req, falling back from
// preferred+required flags to required-only.
func (s *TypeSelector) Select(req AllocationRequest) (uint32, bool) {
	required, preferred := s.flagsFor(req.Usage)
	if idx, ok := s.find(req.MemoryTypeBits, required|preferred); ok {
		return idx, true
	}
	return s.find(req.MemoryTypeBits, required)
}

func (s *TypeSelector) find(typeBits uint32, flags vk.MemoryPropertyFlags) (uint32, bool) {
	for i, mt := range s.properties.MemoryTypes {
		mask := uint32(1) << uint(i)
		if typeBits&mask == 0 || s.validTypes&mask == 0 {
			continue
		}
		if mt.PropertyFlags&flags == flags {
			return uint32(i), true
		}
	}
	return 0, false
}

func (s *TypeSelector) flagsFor(usage UsageFlags) (required, preferred vk.MemoryPropertyFlags) {
	switch {
	case usage&(UsageHostAccess|UsageUpload|UsageDownload) != 0:
		required |= vk.MemoryPropertyHostVisible
		if usage&UsageUpload != 0 {
			preferred |= vk.MemoryPropertyHostCoherent
		}
		if usage&UsageDownload != 0 {
			preferred |= vk.MemoryPropertyHostCached
		}
	case usage&UsageFastDeviceAccess != 0:
		preferred |= vk.MemoryPropertyDeviceLocal
	}
	if usage&UsageTransient != 0 {
		preferred |= vk.MemoryPropertyLazilyAllocated
	}
	return required, preferred
}

func (s *TypeSelector) IsDeviceLocal(typeIndex uint32) bool {
	return s.flagAt(typeIndex, vk.MemoryPropertyDeviceLocal)
}

func (s *TypeSelector) IsHostVisible(typeIndex uint32) bool {
	return s.flagAt(typeIndex, vk.MemoryPropertyHostVisible)
}

func (s *TypeSelector) flagAt(typeIndex uint32, flag vk.MemoryPropertyFlags) bool {
	if int(typeIndex) >= len(s.properties.MemoryTypes) {
		return false
	}
	return s.properties.MemoryTypes[typeIndex].PropertyFlags&flag != 0
}

func (s *TypeSelector) HeapSize(heapIndex uint32) uint64 {
	if int(heapIndex) >= len(s.properties.MemoryHeaps) {
		return 0
	}
	return s.properties.MemoryHeaps[heapIndex].Size
}
