// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

// Package backend implements the graphics backend core: device
// initialisation, the resource factory, shader-reflected pipeline
// assembly, the automatic-barrier command list, and the per-frame
// scheduler, all built directly on the vk package's thin Vulkan surface.
package backend

import (
	"fmt"
	"sort"

	"github.com/solstice-engine/gpucore/errs"
	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/memory"
	"github.com/solstice-engine/gpucore/vk"
)

// requiredDeviceExtensions are folded into every device regardless of what the
// caller asked for; the core cannot function without them.
var requiredDeviceExtensions = []string{
	"VK_KHR_swapchain",
	"VK_KHR_imageless_framebuffer",
	"VK_KHR_synchronization2",
	"VK_KHR_maintenance4",
}

// optionalExtensionsFor maps a capability to the device extensions it
// needs. OpenDevice enables every requested capability, required or
// optional, and requests its extensions without first checking that the
// adapter supports them; an unsupported extension makes vkCreateDevice fail
// with errs.ErrFatalCreate rather than leaving the capability disabled.
var optionalExtensionsFor = map[gfxtypes.Capability][]string{
	gfxtypes.CapabilityRayTracing: {
		"VK_KHR_acceleration_structure",
		"VK_KHR_ray_tracing_pipeline",
		"VK_KHR_deferred_host_operations",
		"VK_KHR_buffer_device_address",
		"VK_KHR_ray_query",
	},
	gfxtypes.CapabilityMeshShading:         {"VK_EXT_mesh_shader"},
	gfxtypes.CapabilityShader16BitFloat:    {"VK_KHR_16bit_storage"},
	gfxtypes.CapabilityShaderBarycentrics:  {"VK_KHR_fragment_shader_barycentric"},
	gfxtypes.CapabilityBufferDeviceAddress: {"VK_KHR_buffer_device_address"},
	gfxtypes.CapabilityDescriptorIndexing:  {"VK_EXT_descriptor_indexing"},
	gfxtypes.CapabilityTimelineSemaphore:   {"VK_KHR_timeline_semaphore"},
}

// Options configure instance and device creation.
type Options struct {
	ApplicationName string
	DebugMode       bool
	Surface         vk.SurfaceKHR
	Capabilities    gfxtypes.CapabilityRequest
	PipelineCachePath string
}

// Adapter is one enumerated physical device, ranked for selection.
type Adapter struct {
	PhysicalDevice vk.PhysicalDevice
	Properties     *vk.PhysicalDeviceProperties
	MemoryProps    memory.DeviceMemoryProperties
	QueueFamilies  []vk.QueueFamilyProperties
}

const deviceTypeDiscreteGPU = 2

// EnumerateAdapters lists physical devices, discrete GPUs sorted first.
func EnumerateAdapters(cmds *vk.Commands, instance vk.Instance) ([]Adapter, error) {
	pds, res := cmds.EnumeratePhysicalDevices(instance)
	if res != vk.Success {
		return nil, errs.Create("vkEnumeratePhysicalDevices", fmt.Errorf("result %s", res))
	}
	if len(pds) == 0 {
		return nil, errs.Capability("adapter enumeration", fmt.Errorf("no Vulkan-capable physical devices found"))
	}

	adapters := make([]Adapter, len(pds))
	for i, pd := range pds {
		props := cmds.GetPhysicalDeviceProperties(pd)
		memProps := memory.FromVk(cmds.GetPhysicalDeviceMemoryProperties(pd))
		families := cmds.GetPhysicalDeviceQueueFamilyProperties(pd)
		adapters[i] = Adapter{PhysicalDevice: pd, Properties: props, MemoryProps: memProps, QueueFamilies: families}
	}
	sort.SliceStable(adapters, func(i, j int) bool {
		iDiscrete := adapters[i].Properties.DeviceType == deviceTypeDiscreteGPU
		jDiscrete := adapters[j].Properties.DeviceType == deviceTypeDiscreteGPU
		return iDiscrete && !jDiscrete
	})
	return adapters, nil
}

const graphicsQueueBit = 1 << 0
const computeQueueBit = 1 << 1

// queueFamilyIndex returns the first family advertising every bit in want.
func queueFamilyIndex(families []vk.QueueFamilyProperties, want uint32) (uint32, bool) {
	for i, f := range families {
		if f.QueueFlags&want == want {
			return uint32(i), true
		}
	}
	return 0, false
}

// CreateInstance opens a Vulkan instance, enabling validation and
// portability extensions only in debug mode.
func CreateInstance(opts Options) (*vk.Commands, vk.Instance, error) {
	if err := vk.Init(); err != nil {
		return nil, 0, errs.Create("vk.Init", err)
	}
	cmds := &vk.Commands{}
	if err := cmds.LoadGlobal(); err != nil {
		return nil, 0, errs.Create("LoadGlobal", err)
	}

	extensions := []string{"VK_KHR_surface"}
	layers := []string(nil)
	if opts.DebugMode {
		extensions = append(extensions, "VK_EXT_debug_utils", "VK_KHR_portability_enumeration")
		layers = append(layers, "VK_LAYER_KHRONOS_validation")
	}

	appInfo := vk.ApplicationInfo{
		SType:            vk.StructureTypeApplicationInfo,
		PApplicationName: opts.ApplicationName,
		PEngineName:      "solstice",
		APIVersion:       (1 << 22) | (3 << 12), // VK_API_VERSION_1_3
	}
	info := vk.InstanceCreateInfo{
		SType:                 vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:      &appInfo,
		EnabledLayerNames:     layers,
		EnabledExtensionNames: extensions,
	}
	instance, res := cmds.CreateInstance(&info)
	if res != vk.Success {
		return nil, 0, errs.Create("vkCreateInstance", fmt.Errorf("result %s", res))
	}
	if err := cmds.LoadInstance(instance); err != nil {
		return nil, 0, errs.Create("LoadInstance", err)
	}
	return cmds, instance, nil
}

// OpenDevice negotiates capabilities against adapter and creates the
// logical device, queues, allocator and pipeline cache described in §4.A.
func OpenDevice(cmds *vk.Commands, instance vk.Instance, adapter Adapter, opts Options) (*Device, error) {
	families := adapter.QueueFamilies
	graphicsFamily, ok := queueFamilyIndex(families, graphicsQueueBit)
	if !ok {
		return nil, errs.Capability("queue families", fmt.Errorf("adapter %s exposes no graphics queue family", adapter.Properties.DeviceName))
	}
	computeFamily, ok := queueFamilyIndex(families, computeQueueBit)
	if !ok {
		computeFamily = graphicsFamily
	}
	// Presentation support is not independently queryable through this
	// package's Vulkan surface (no vkGetPhysicalDeviceSurfaceSupportKHR
	// wrapper exists in vk/calls.go); the graphics family is assumed
	// present-capable, true of every desktop driver this core targets.
	// See DESIGN.md.
	presentFamily := graphicsFamily

	caps := gfxtypes.NewCapabilitySet()
	extensions := append([]string(nil), requiredDeviceExtensions...)
	for _, c := range opts.Capabilities.Required {
		ext, known := optionalExtensionsFor[c]
		if !known {
			caps.Enable(c)
			continue
		}
		extensions = append(extensions, ext...)
		caps.Enable(c)
	}
	for _, c := range opts.Capabilities.Optional {
		if ext, known := optionalExtensionsFor[c]; known {
			extensions = append(extensions, ext...)
		}
		caps.Enable(c)
	}

	families32 := map[uint32]bool{graphicsFamily: true, computeFamily: true, presentFamily: true}
	queueInfos := make([]vk.DeviceQueueCreateInfo, 0, len(families32))
	for fam := range families32 {
		queueInfos = append(queueInfos, vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: fam,
			QueuePriorities:  []float32{1.0},
		})
	}
	sort.Slice(queueInfos, func(i, j int) bool { return queueInfos[i].QueueFamilyIndex < queueInfos[j].QueueFamilyIndex })

	deviceInfo := vk.DeviceCreateInfo{
		SType:                 vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfos:      queueInfos,
		EnabledExtensionNames: extensions,
	}
	device, res := cmds.CreateDevice(adapter.PhysicalDevice, &deviceInfo)
	if res != vk.Success {
		return nil, errs.Create("vkCreateDevice", fmt.Errorf("result %s", res))
	}
	if err := cmds.LoadDevice(device); err != nil {
		return nil, errs.Create("LoadDevice", err)
	}

	graphicsQueue := cmds.GetDeviceQueue(device, graphicsFamily, 0)
	computeQueue := cmds.GetDeviceQueue(device, computeFamily, 0)
	presentQueue := cmds.GetDeviceQueue(device, presentFamily, 0)

	allocator := memory.NewAllocator(cmds, device, adapter.MemoryProps, memory.DefaultConfig())
	selector := allocator.Selector()

	pipelineCacheData := loadPipelineCacheBlob(opts.PipelineCachePath)
	pipelineCache, res := cmds.CreatePipelineCache(device, pipelineCacheData)
	if res != vk.Success {
		return nil, errs.Create("vkCreatePipelineCache", fmt.Errorf("result %s", res))
	}

	framePool, res := cmds.CreateCommandPool(device, &vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            commandPoolResetCommandBuffer,
		QueueFamilyIndex: graphicsFamily,
	})
	if res != vk.Success {
		return nil, errs.Create("vkCreateCommandPool(frame)", fmt.Errorf("result %s", res))
	}
	transientPool, res := cmds.CreateCommandPool(device, &vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            commandPoolTransient,
		QueueFamilyIndex: graphicsFamily,
	})
	if res != vk.Success {
		return nil, errs.Create("vkCreateCommandPool(transient)", fmt.Errorf("result %s", res))
	}

	emptySetLayout, res := cmds.CreateDescriptorSetLayout(device, &vk.DescriptorSetLayoutCreateInfo{
		SType: vk.StructureTypeDescriptorSetLayoutCreateInfo,
	})
	if res != vk.Success {
		return nil, errs.Create("vkCreateDescriptorSetLayout(empty stub)", fmt.Errorf("result %s", res))
	}

	d := &Device{
		cmds:           cmds,
		instance:       instance,
		physicalDevice: adapter.PhysicalDevice,
		handle:         device,
		graphicsFamily: graphicsFamily,
		computeFamily:  computeFamily,
		presentFamily:  presentFamily,
		graphicsQueue:  graphicsQueue,
		computeQueue:   computeQueue,
		presentQueue:   presentQueue,
		allocator:      allocator,
		selector:       selector,
		pipelineCache:            pipelineCache,
		pipelineCachePath:        opts.PipelineCachePath,
		pipelineCacheLoadedBytes: len(pipelineCacheData),
		framePool:      framePool,
		transientPool:  transientPool,
		emptySetLayout: emptySetLayout,
		capabilities:   caps,
		debugMode:      opts.DebugMode,
		resizableBAR:   detectResizableBAR(selector, adapter.MemoryProps),
	}
	d.initScheduler()
	return d, nil
}

// detectResizableBAR locates a memory type that is both device-local and
// host-visible, residing in the largest device-local heap (§4.A).
func detectResizableBAR(selector *memory.TypeSelector, props memory.DeviceMemoryProperties) bool {
	var largestDeviceLocalHeap uint64
	for _, h := range props.MemoryHeaps {
		if h.Flags&vk.MemoryHeapDeviceLocal != 0 && h.Size > largestDeviceLocalHeap {
			largestDeviceLocalHeap = h.Size
		}
	}
	for i := range props.MemoryTypes {
		idx := uint32(i)
		if selector.IsDeviceLocal(idx) && selector.IsHostVisible(idx) && selector.HeapSize(props.MemoryTypes[i].HeapIndex) == largestDeviceLocalHeap {
			return true
		}
	}
	return false
}

const (
	commandPoolResetCommandBuffer uint32 = 1 << 1
	commandPoolTransient          uint32 = 1 << 0
)
