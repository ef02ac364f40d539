// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package vk

// All Vulkan handles, dispatchable or not, are carried as 64-bit opaque
// values. goffi marshals them as UInt64TypeDescriptor arguments regardless
// of the handle's real pointer width, matching how the loader resolves
// every entry point through vkGet{Instance,Device}ProcAddr.
type (
	Instance               uint64
	PhysicalDevice         uint64
	Device                 uint64
	Queue                  uint64
	CommandPool            uint64
	CommandBuffer          uint64
	DeviceMemory           uint64
	Buffer                 uint64
	BufferView             uint64
	Image                  uint64
	ImageView              uint64
	ShaderModule           uint64
	Sampler                uint64
	DescriptorSetLayout    uint64
	DescriptorPool         uint64
	DescriptorSet          uint64
	PipelineLayout         uint64
	PipelineCache          uint64
	Pipeline               uint64
	RenderPass             uint64
	Framebuffer            uint64
	Fence                  uint64
	Semaphore              uint64
	Event                  uint64
	QueryPool              uint64
	SurfaceKHR             uint64
	SwapchainKHR           uint64
	DebugUtilsMessengerEXT uint64
	AccelerationStructure  uint64
)

// QueueFamilyIgnored marks a barrier that performs no queue family
// ownership transfer.
const QueueFamilyIgnored uint32 = 0xFFFFFFFF

// WholeSize indicates "the remainder of the resource" in size/range fields.
const WholeSize uint64 = 0xFFFFFFFFFFFFFFFF

// RemainingMipLevels / RemainingArrayLayers mark a subresource range that
// runs to the end of the resource.
const (
	RemainingMipLevels   uint32 = 0xFFFFFFFF
	RemainingArrayLayers uint32 = 0xFFFFFFFF
)

const NullHandle = 0
