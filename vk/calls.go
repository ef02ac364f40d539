// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// argKind enumerates the small set of goffi argument shapes this backend's
// entry points need. Functions sharing a (ret, args...) shape share one
// prepared types.CallInterface instead of each being given its own named
// global, unlike upstream's signatures.go — the function set here is small
// enough that a shape-keyed cache stays easy to audit.
type argKind byte

const (
	kPtr argKind = iota
	kU64
	kU32
	kI32
	kF32
	kVoid
)

func descriptorFor(k argKind) *types.TypeDescriptor {
	switch k {
	case kPtr:
		return types.PointerTypeDescriptor
	case kU64:
		return types.UInt64TypeDescriptor
	case kU32:
		return types.UInt32TypeDescriptor
	case kI32:
		return types.SInt32TypeDescriptor
	case kF32:
		return types.FloatTypeDescriptor
	default:
		return types.VoidTypeDescriptor
	}
}

var (
	sigMu    sync.Mutex
	sigCache = map[string]*types.CallInterface{}
)

func cifFor(ret argKind, args ...argKind) (*types.CallInterface, error) {
	key := make([]byte, 0, len(args)+1)
	key = append(key, byte(ret))
	for _, a := range args {
		key = append(key, byte(a))
	}
	k := string(key)

	sigMu.Lock()
	defer sigMu.Unlock()
	if c, ok := sigCache[k]; ok {
		return c, nil
	}

	descs := make([]*types.TypeDescriptor, len(args))
	for i, a := range args {
		descs[i] = descriptorFor(a)
	}
	c := &types.CallInterface{}
	if err := ffi.PrepareCallInterface(c, types.DefaultCall, descriptorFor(ret), descs); err != nil {
		return nil, err
	}
	sigCache[k] = c
	return c, nil
}

// callResult invokes fn with the given argument shape/values and returns
// the Vulkan VkResult, or ErrorInitializationFailed if fn was never
// resolved (extension absent) or the CallInterface failed to prepare.
func callResult(fn unsafe.Pointer, kinds []argKind, args []unsafe.Pointer) Result {
	if fn == nil {
		return ErrorInitializationFailed
	}
	c, err := cifFor(kI32, kinds...)
	if err != nil {
		return ErrorInitializationFailed
	}
	var ret int32
	_ = ffi.CallFunction(c, fn, unsafe.Pointer(&ret), args)
	return Result(ret)
}

// callVoid invokes a void-returning Vulkan command.
func callVoid(fn unsafe.Pointer, kinds []argKind, args []unsafe.Pointer) {
	if fn == nil {
		return
	}
	c, err := cifFor(kVoid, kinds...)
	if err != nil {
		return
	}
	_ = ffi.CallFunction(c, fn, nil, args)
}

func cstr(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// --- Global / instance lifecycle -------------------------------------------

func (c *Commands) CreateInstance(info *InstanceCreateInfo) (Instance, Result) {
	var instance Instance
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{
		unsafe.Pointer(&infoPtr),
		unsafe.Pointer(new(unsafe.Pointer)),
		unsafe.Pointer(&instance),
	}
	res := callResult(c.createInstance, []argKind{kPtr, kPtr, kPtr}, args)
	return instance, res
}

func (c *Commands) DestroyInstance(instance Instance) {
	args := []unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyInstance, []argKind{kU64, kPtr}, args)
}

func (c *Commands) EnumeratePhysicalDevices(instance Instance) ([]PhysicalDevice, Result) {
	var count uint32
	args := []unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&count), unsafe.Pointer(new(unsafe.Pointer))}
	if r := callResult(c.enumeratePhysicalDevices, []argKind{kU64, kPtr, kPtr}, args); r != Success {
		return nil, r
	}
	if count == 0 {
		return nil, Success
	}
	devices := make([]PhysicalDevice, count)
	devPtr := unsafe.Pointer(&devices[0])
	args = []unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&count), unsafe.Pointer(&devPtr)}
	r := callResult(c.enumeratePhysicalDevices, []argKind{kU64, kPtr, kPtr}, args)
	return devices, r
}

func (c *Commands) GetPhysicalDeviceProperties(pd PhysicalDevice) *PhysicalDeviceProperties {
	props := &PhysicalDeviceProperties{}
	args := []unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&props)}
	callVoid(c.getPhysicalDeviceProperties, []argKind{kU64, kPtr}, args)
	return props
}

func (c *Commands) GetPhysicalDeviceMemoryProperties(pd PhysicalDevice) *PhysicalDeviceMemoryProperties {
	props := &PhysicalDeviceMemoryProperties{}
	args := []unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&props)}
	callVoid(c.getPhysicalDeviceMemoryProperties, []argKind{kU64, kPtr}, args)
	return props
}

func (c *Commands) GetPhysicalDeviceQueueFamilyProperties(pd PhysicalDevice) []QueueFamilyProperties {
	var count uint32
	args := []unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&count), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.getPhysicalDeviceQueueFamilyProperties, []argKind{kU64, kPtr, kPtr}, args)
	if count == 0 {
		return nil
	}
	families := make([]QueueFamilyProperties, count)
	fPtr := unsafe.Pointer(&families[0])
	args = []unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&count), unsafe.Pointer(&fPtr)}
	callVoid(c.getPhysicalDeviceQueueFamilyProperties, []argKind{kU64, kPtr, kPtr}, args)
	return families
}

func (c *Commands) CreateDevice(pd PhysicalDevice, info *DeviceCreateInfo) (Device, Result) {
	var device Device
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{
		unsafe.Pointer(&pd),
		unsafe.Pointer(&infoPtr),
		unsafe.Pointer(new(unsafe.Pointer)),
		unsafe.Pointer(&device),
	}
	res := callResult(c.createDevice, []argKind{kU64, kPtr, kPtr, kPtr}, args)
	return device, res
}

func (c *Commands) DestroyDevice(device Device) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyDevice, []argKind{kU64, kPtr}, args)
}

func (c *Commands) GetDeviceQueue(device Device, familyIndex, queueIndex uint32) Queue {
	var queue Queue
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&familyIndex), unsafe.Pointer(&queueIndex), unsafe.Pointer(&queue)}
	callVoid(c.getDeviceQueue, []argKind{kU64, kU32, kU32, kPtr}, args)
	return queue
}

func (c *Commands) DeviceWaitIdle(device Device) Result {
	args := []unsafe.Pointer{unsafe.Pointer(&device)}
	return callResult(c.deviceWaitIdle, []argKind{kU64}, args)
}

func (c *Commands) QueueWaitIdle(queue Queue) Result {
	args := []unsafe.Pointer{unsafe.Pointer(&queue)}
	return callResult(c.queueWaitIdle, []argKind{kU64}, args)
}

func (c *Commands) QueueSubmit(queue Queue, submits []SubmitInfo, fence Fence) Result {
	count := uint32(len(submits))
	var submitsPtr unsafe.Pointer
	if count > 0 {
		submitsPtr = unsafe.Pointer(&submits[0])
	}
	args := []unsafe.Pointer{unsafe.Pointer(&queue), unsafe.Pointer(&count), unsafe.Pointer(&submitsPtr), unsafe.Pointer(&fence)}
	return callResult(c.queueSubmit, []argKind{kU64, kU32, kPtr, kU64}, args)
}

func (c *Commands) QueuePresentKHR(queue Queue, info *PresentInfoKHR) Result {
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&queue), unsafe.Pointer(&infoPtr)}
	return callResult(c.queuePresentKHR, []argKind{kU64, kPtr}, args)
}

// --- Resources ---------------------------------------------------------

func (c *Commands) CreateBuffer(device Device, info *BufferCreateInfo) (Buffer, Result) {
	var buf Buffer
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&buf)}
	return buf, callResult(c.createBuffer, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroyBuffer(device Device, buf Buffer) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buf), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyBuffer, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) GetBufferMemoryRequirements(device Device, buf Buffer) *MemoryRequirements {
	req := &MemoryRequirements{}
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buf), unsafe.Pointer(&req)}
	callVoid(c.getBufferMemoryRequirements, []argKind{kU64, kU64, kPtr}, args)
	return req
}

func (c *Commands) BindBufferMemory(device Device, buf Buffer, mem DeviceMemory, offset uint64) Result {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buf), unsafe.Pointer(&mem), unsafe.Pointer(&offset)}
	return callResult(c.bindBufferMemory, []argKind{kU64, kU64, kU64, kU64}, args)
}

func (c *Commands) GetBufferDeviceAddress(device Device, info *BufferDeviceAddressInfo) uint64 {
	var addr uint64
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(&addr)}
	callVoid(c.getBufferDeviceAddress, []argKind{kU64, kPtr, kPtr}, args)
	return addr
}

func (c *Commands) CreateImage(device Device, info *ImageCreateInfo) (Image, Result) {
	var img Image
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&img)}
	return img, callResult(c.createImage, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroyImage(device Device, img Image) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&img), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyImage, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) GetImageMemoryRequirements(device Device, img Image) *MemoryRequirements {
	req := &MemoryRequirements{}
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&img), unsafe.Pointer(&req)}
	callVoid(c.getImageMemoryRequirements, []argKind{kU64, kU64, kPtr}, args)
	return req
}

func (c *Commands) BindImageMemory(device Device, img Image, mem DeviceMemory, offset uint64) Result {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&img), unsafe.Pointer(&mem), unsafe.Pointer(&offset)}
	return callResult(c.bindImageMemory, []argKind{kU64, kU64, kU64, kU64}, args)
}

func (c *Commands) CreateImageView(device Device, info *ImageViewCreateInfo) (ImageView, Result) {
	var view ImageView
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&view)}
	return view, callResult(c.createImageView, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroyImageView(device Device, view ImageView) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&view), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyImageView, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) CreateSampler(device Device, info *SamplerCreateInfo) (Sampler, Result) {
	var s Sampler
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&s)}
	return s, callResult(c.createSampler, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroySampler(device Device, s Sampler) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&s), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroySampler, []argKind{kU64, kU64, kPtr}, args)
}

// --- Memory --------------------------------------------------------------

func (c *Commands) AllocateMemory(device Device, info *MemoryAllocateInfo) (DeviceMemory, Result) {
	var mem DeviceMemory
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&mem)}
	return mem, callResult(c.allocateMemory, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) FreeMemory(device Device, mem DeviceMemory) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&mem), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.freeMemory, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) MapMemory(device Device, mem DeviceMemory, offset, size uint64) (unsafe.Pointer, Result) {
	var data unsafe.Pointer
	var flags uint32
	args := []unsafe.Pointer{
		unsafe.Pointer(&device), unsafe.Pointer(&mem), unsafe.Pointer(&offset),
		unsafe.Pointer(&size), unsafe.Pointer(&flags), unsafe.Pointer(&data),
	}
	return data, callResult(c.mapMemory, []argKind{kU64, kU64, kU64, kU64, kU32, kPtr}, args)
}

func (c *Commands) UnmapMemory(device Device, mem DeviceMemory) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&mem)}
	callVoid(c.unmapMemory, []argKind{kU64, kU64}, args)
}

// --- Shaders / descriptors / pipelines ------------------------------------

func (c *Commands) CreateShaderModule(device Device, code []byte) (ShaderModule, Result) {
	info := ShaderModuleCreateInfo{
		SType:    StructureTypeShaderModuleCreateInfo,
		CodeSize: uint64(len(code)),
		PCode:    code,
	}
	var codePtr unsafe.Pointer
	if len(code) > 0 {
		codePtr = unsafe.Pointer(&code[0])
	}
	_ = info
	var module ShaderModule
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&codePtr),
		unsafe.Pointer(new(unsafe.Pointer)),
		unsafe.Pointer(&module),
	}
	return module, callResult(c.createShaderModule, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroyShaderModule(device Device, m ShaderModule) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&m), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyShaderModule, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) CreateDescriptorSetLayout(device Device, info *DescriptorSetLayoutCreateInfo) (DescriptorSetLayout, Result) {
	var layout DescriptorSetLayout
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&layout)}
	return layout, callResult(c.createDescriptorSetLayout, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroyDescriptorSetLayout(device Device, layout DescriptorSetLayout) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&layout), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyDescriptorSetLayout, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) CreateDescriptorPool(device Device, info *DescriptorPoolCreateInfo) (DescriptorPool, Result) {
	var pool DescriptorPool
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&pool)}
	return pool, callResult(c.createDescriptorPool, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroyDescriptorPool(device Device, pool DescriptorPool) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyDescriptorPool, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) AllocateDescriptorSets(device Device, info *DescriptorSetAllocateInfo) ([]DescriptorSet, Result) {
	count := uint32(len(info.SetLayouts))
	sets := make([]DescriptorSet, count)
	infoPtr := unsafe.Pointer(info)
	var setsPtr unsafe.Pointer
	if count > 0 {
		setsPtr = unsafe.Pointer(&sets[0])
	}
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(&setsPtr)}
	return sets, callResult(c.allocateDescriptorSets, []argKind{kU64, kPtr, kPtr}, args)
}

func (c *Commands) UpdateDescriptorSets(device Device, writes []WriteDescriptorSet) {
	count := uint32(len(writes))
	var writesPtr unsafe.Pointer
	if count > 0 {
		writesPtr = unsafe.Pointer(&writes[0])
	}
	zero := uint32(0)
	args := []unsafe.Pointer{
		unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&writesPtr),
		unsafe.Pointer(&zero), unsafe.Pointer(new(unsafe.Pointer)),
	}
	callVoid(c.updateDescriptorSets, []argKind{kU64, kU32, kPtr, kU32, kPtr}, args)
}

func (c *Commands) CreatePipelineLayout(device Device, info *PipelineLayoutCreateInfo) (PipelineLayout, Result) {
	var layout PipelineLayout
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&layout)}
	return layout, callResult(c.createPipelineLayout, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroyPipelineLayout(device Device, layout PipelineLayout) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&layout), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyPipelineLayout, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) CreateGraphicsPipelines(device Device, cache PipelineCache, infos []GraphicsPipelineCreateInfo) ([]Pipeline, Result) {
	count := uint32(len(infos))
	pipelines := make([]Pipeline, count)
	var infosPtr, pipelinesPtr unsafe.Pointer
	if count > 0 {
		infosPtr = unsafe.Pointer(&infos[0])
		pipelinesPtr = unsafe.Pointer(&pipelines[0])
	}
	args := []unsafe.Pointer{
		unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&count),
		unsafe.Pointer(&infosPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&pipelinesPtr),
	}
	return pipelines, callResult(c.createGraphicsPipelines, []argKind{kU64, kU64, kU32, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) CreateComputePipelines(device Device, cache PipelineCache, infos []ComputePipelineCreateInfo) ([]Pipeline, Result) {
	count := uint32(len(infos))
	pipelines := make([]Pipeline, count)
	var infosPtr, pipelinesPtr unsafe.Pointer
	if count > 0 {
		infosPtr = unsafe.Pointer(&infos[0])
		pipelinesPtr = unsafe.Pointer(&pipelines[0])
	}
	args := []unsafe.Pointer{
		unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&count),
		unsafe.Pointer(&infosPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&pipelinesPtr),
	}
	return pipelines, callResult(c.createComputePipelines, []argKind{kU64, kU64, kU32, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) CreateRayTracingPipelinesKHR(device Device, cache PipelineCache, infos []RayTracingPipelineCreateInfoKHR) ([]Pipeline, Result) {
	count := uint32(len(infos))
	pipelines := make([]Pipeline, count)
	var infosPtr, pipelinesPtr unsafe.Pointer
	if count > 0 {
		infosPtr = unsafe.Pointer(&infos[0])
		pipelinesPtr = unsafe.Pointer(&pipelines[0])
	}
	var deferredOp uint64
	args := []unsafe.Pointer{
		unsafe.Pointer(&device), unsafe.Pointer(&deferredOp), unsafe.Pointer(&cache), unsafe.Pointer(&count),
		unsafe.Pointer(&infosPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&pipelinesPtr),
	}
	return pipelines, callResult(c.createRayTracingPipelinesKHR, []argKind{kU64, kU64, kU64, kU32, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroyPipeline(device Device, p Pipeline) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&p), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyPipeline, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) CreatePipelineCache(device Device, initialData []byte) (PipelineCache, Result) {
	size := uint64(len(initialData))
	var dataPtr unsafe.Pointer
	if size > 0 {
		dataPtr = unsafe.Pointer(&initialData[0])
	}
	info := struct {
		SType     StructureType
		PNext     uintptr
		Flags     uint32
		Size      uint64
		InitialData unsafe.Pointer
	}{StructureTypePipelineCacheCreateInfo, 0, 0, size, dataPtr}
	var cache PipelineCache
	infoPtr := unsafe.Pointer(&info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&cache)}
	return cache, callResult(c.createPipelineCache, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroyPipelineCache(device Device, cache PipelineCache) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyPipelineCache, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) GetPipelineCacheData(device Device, cache PipelineCache) []byte {
	var size uint64
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&size), unsafe.Pointer(new(unsafe.Pointer))}
	if callResult(c.getPipelineCacheData, []argKind{kU64, kU64, kPtr, kPtr}, args) != Success || size == 0 {
		return nil
	}
	data := make([]byte, size)
	dataPtr := unsafe.Pointer(&data[0])
	args = []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&size), unsafe.Pointer(&dataPtr)}
	callResult(c.getPipelineCacheData, []argKind{kU64, kU64, kPtr, kPtr}, args)
	return data
}

// --- Render passes / framebuffers -----------------------------------------

func (c *Commands) CreateRenderPass(device Device, info *RenderPassCreateInfo) (RenderPass, Result) {
	var rp RenderPass
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&rp)}
	return rp, callResult(c.createRenderPass, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroyRenderPass(device Device, rp RenderPass) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&rp), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyRenderPass, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) CreateFramebuffer(device Device, info *FramebufferCreateInfo) (Framebuffer, Result) {
	var fb Framebuffer
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&fb)}
	return fb, callResult(c.createFramebuffer, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroyFramebuffer(device Device, fb Framebuffer) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&fb), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyFramebuffer, []argKind{kU64, kU64, kPtr}, args)
}

// --- Command pools / buffers -----------------------------------------------

func (c *Commands) CreateCommandPool(device Device, info *CommandPoolCreateInfo) (CommandPool, Result) {
	var pool CommandPool
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&pool)}
	return pool, callResult(c.createCommandPool, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroyCommandPool(device Device, pool CommandPool) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyCommandPool, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) ResetCommandPool(device Device, pool CommandPool) Result {
	var flags uint32
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&flags)}
	return callResult(c.resetCommandPool, []argKind{kU64, kU64, kU32}, args)
}

func (c *Commands) AllocateCommandBuffers(device Device, info *CommandBufferAllocateInfo) ([]CommandBuffer, Result) {
	bufs := make([]CommandBuffer, info.CommandBufferCount)
	infoPtr := unsafe.Pointer(info)
	var bufsPtr unsafe.Pointer
	if len(bufs) > 0 {
		bufsPtr = unsafe.Pointer(&bufs[0])
	}
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(&bufsPtr)}
	return bufs, callResult(c.allocateCommandBuffers, []argKind{kU64, kPtr, kPtr}, args)
}

func (c *Commands) FreeCommandBuffers(device Device, pool CommandPool, bufs []CommandBuffer) {
	count := uint32(len(bufs))
	var bufsPtr unsafe.Pointer
	if count > 0 {
		bufsPtr = unsafe.Pointer(&bufs[0])
	}
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&count), unsafe.Pointer(&bufsPtr)}
	callVoid(c.freeCommandBuffers, []argKind{kU64, kU64, kU32, kPtr}, args)
}

func (c *Commands) BeginCommandBuffer(cb CommandBuffer, info *CommandBufferBeginInfo) Result {
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&infoPtr)}
	return callResult(c.beginCommandBuffer, []argKind{kU64, kPtr}, args)
}

func (c *Commands) EndCommandBuffer(cb CommandBuffer) Result {
	args := []unsafe.Pointer{unsafe.Pointer(&cb)}
	return callResult(c.endCommandBuffer, []argKind{kU64}, args)
}

func (c *Commands) ResetCommandBuffer(cb CommandBuffer) Result {
	var flags uint32
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&flags)}
	return callResult(c.resetCommandBuffer, []argKind{kU64, kU32}, args)
}

// --- Command recording -----------------------------------------------------

func (c *Commands) CmdPipelineBarrier(cb CommandBuffer, srcStage, dstStage PipelineStageFlags, memBarriers []MemoryBarrier, bufBarriers []BufferMemoryBarrier, imgBarriers []ImageMemoryBarrier) {
	var dep uint32
	mc, bc, ic := uint32(len(memBarriers)), uint32(len(bufBarriers)), uint32(len(imgBarriers))
	var mp, bp, ip unsafe.Pointer
	if mc > 0 {
		mp = unsafe.Pointer(&memBarriers[0])
	}
	if bc > 0 {
		bp = unsafe.Pointer(&bufBarriers[0])
	}
	if ic > 0 {
		ip = unsafe.Pointer(&imgBarriers[0])
	}
	args := []unsafe.Pointer{
		unsafe.Pointer(&cb), unsafe.Pointer(&srcStage), unsafe.Pointer(&dstStage), unsafe.Pointer(&dep),
		unsafe.Pointer(&mc), unsafe.Pointer(&mp),
		unsafe.Pointer(&bc), unsafe.Pointer(&bp),
		unsafe.Pointer(&ic), unsafe.Pointer(&ip),
	}
	callVoid(c.cmdPipelineBarrier, []argKind{kU64, kU32, kU32, kU32, kU32, kPtr, kU32, kPtr, kU32, kPtr}, args)
}

func (c *Commands) CmdCopyBuffer(cb CommandBuffer, src, dst Buffer, regions []BufferCopy) {
	count := uint32(len(regions))
	var rp unsafe.Pointer
	if count > 0 {
		rp = unsafe.Pointer(&regions[0])
	}
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&src), unsafe.Pointer(&dst), unsafe.Pointer(&count), unsafe.Pointer(&rp)}
	callVoid(c.cmdCopyBuffer, []argKind{kU64, kU64, kU64, kU32, kPtr}, args)
}

func (c *Commands) CmdCopyBufferToImage(cb CommandBuffer, src Buffer, dst Image, layout ImageLayout, regions []BufferImageCopy) {
	count := uint32(len(regions))
	var rp unsafe.Pointer
	if count > 0 {
		rp = unsafe.Pointer(&regions[0])
	}
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&src), unsafe.Pointer(&dst), unsafe.Pointer(&layout), unsafe.Pointer(&count), unsafe.Pointer(&rp)}
	callVoid(c.cmdCopyBufferToImage, []argKind{kU64, kU64, kU64, kU32, kU32, kPtr}, args)
}

func (c *Commands) CmdBlitImage(cb CommandBuffer, src Image, srcLayout ImageLayout, dst Image, dstLayout ImageLayout, regions []ImageBlit, filter Filter) {
	count := uint32(len(regions))
	var rp unsafe.Pointer
	if count > 0 {
		rp = unsafe.Pointer(&regions[0])
	}
	args := []unsafe.Pointer{
		unsafe.Pointer(&cb), unsafe.Pointer(&src), unsafe.Pointer(&srcLayout),
		unsafe.Pointer(&dst), unsafe.Pointer(&dstLayout), unsafe.Pointer(&count), unsafe.Pointer(&rp), unsafe.Pointer(&filter),
	}
	callVoid(c.cmdBlitImage, []argKind{kU64, kU64, kU32, kU64, kU32, kU32, kPtr, kU32}, args)
}

func (c *Commands) CmdClearColorImage(cb CommandBuffer, image Image, layout ImageLayout, color *ClearColorValue, ranges []ImageSubresourceRange) {
	count := uint32(len(ranges))
	var rp unsafe.Pointer
	if count > 0 {
		rp = unsafe.Pointer(&ranges[0])
	}
	args := []unsafe.Pointer{
		unsafe.Pointer(&cb), unsafe.Pointer(&image), unsafe.Pointer(&layout),
		unsafe.Pointer(color), unsafe.Pointer(&count), unsafe.Pointer(&rp),
	}
	callVoid(c.cmdClearColorImage, []argKind{kU64, kU64, kU32, kPtr, kU32, kPtr}, args)
}

func (c *Commands) CmdClearDepthStencilImage(cb CommandBuffer, image Image, layout ImageLayout, value *ClearDepthStencilValue, ranges []ImageSubresourceRange) {
	count := uint32(len(ranges))
	var rp unsafe.Pointer
	if count > 0 {
		rp = unsafe.Pointer(&ranges[0])
	}
	args := []unsafe.Pointer{
		unsafe.Pointer(&cb), unsafe.Pointer(&image), unsafe.Pointer(&layout),
		unsafe.Pointer(value), unsafe.Pointer(&count), unsafe.Pointer(&rp),
	}
	callVoid(c.cmdClearDepthStencilImage, []argKind{kU64, kU64, kU32, kPtr, kU32, kPtr}, args)
}

func (c *Commands) CmdBeginRenderPass(cb CommandBuffer, info *RenderPassBeginInfo, contents uint32) {
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&infoPtr), unsafe.Pointer(&contents)}
	callVoid(c.cmdBeginRenderPass, []argKind{kU64, kPtr, kU32}, args)
}

func (c *Commands) CmdEndRenderPass(cb CommandBuffer) {
	args := []unsafe.Pointer{unsafe.Pointer(&cb)}
	callVoid(c.cmdEndRenderPass, []argKind{kU64}, args)
}

func (c *Commands) CmdBindPipeline(cb CommandBuffer, bindPoint PipelineBindPoint, p Pipeline) {
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&bindPoint), unsafe.Pointer(&p)}
	callVoid(c.cmdBindPipeline, []argKind{kU64, kU32, kU64}, args)
}

func (c *Commands) CmdBindDescriptorSets(cb CommandBuffer, bindPoint PipelineBindPoint, layout PipelineLayout, firstSet uint32, sets []DescriptorSet, dynamicOffsets []uint32) {
	count := uint32(len(sets))
	var sp unsafe.Pointer
	if count > 0 {
		sp = unsafe.Pointer(&sets[0])
	}
	doCount := uint32(len(dynamicOffsets))
	var dop unsafe.Pointer
	if doCount > 0 {
		dop = unsafe.Pointer(&dynamicOffsets[0])
	}
	args := []unsafe.Pointer{
		unsafe.Pointer(&cb), unsafe.Pointer(&bindPoint), unsafe.Pointer(&layout), unsafe.Pointer(&firstSet),
		unsafe.Pointer(&count), unsafe.Pointer(&sp), unsafe.Pointer(&doCount), unsafe.Pointer(&dop),
	}
	callVoid(c.cmdBindDescriptorSets, []argKind{kU64, kU32, kU64, kU32, kU32, kPtr, kU32, kPtr}, args)
}

func (c *Commands) CmdBindVertexBuffers(cb CommandBuffer, firstBinding uint32, buffers []Buffer, offsets []uint64) {
	count := uint32(len(buffers))
	var bp, op unsafe.Pointer
	if count > 0 {
		bp = unsafe.Pointer(&buffers[0])
		op = unsafe.Pointer(&offsets[0])
	}
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&firstBinding), unsafe.Pointer(&count), unsafe.Pointer(&bp), unsafe.Pointer(&op)}
	callVoid(c.cmdBindVertexBuffers, []argKind{kU64, kU32, kU32, kPtr, kPtr}, args)
}

func (c *Commands) CmdBindIndexBuffer(cb CommandBuffer, buf Buffer, offset uint64, indexType IndexType) {
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&buf), unsafe.Pointer(&offset), unsafe.Pointer(&indexType)}
	callVoid(c.cmdBindIndexBuffer, []argKind{kU64, kU64, kU64, kU32}, args)
}

func (c *Commands) CmdPushConstants(cb CommandBuffer, layout PipelineLayout, stages ShaderStageFlags, offset, size uint32, data unsafe.Pointer) {
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&layout), unsafe.Pointer(&stages), unsafe.Pointer(&offset), unsafe.Pointer(&size), unsafe.Pointer(&data)}
	callVoid(c.cmdPushConstants, []argKind{kU64, kU64, kU32, kU32, kU32, kPtr}, args)
}

func (c *Commands) CmdSetViewport(cb CommandBuffer, viewports []Viewport) {
	first := uint32(0)
	count := uint32(len(viewports))
	var vp unsafe.Pointer
	if count > 0 {
		vp = unsafe.Pointer(&viewports[0])
	}
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&first), unsafe.Pointer(&count), unsafe.Pointer(&vp)}
	callVoid(c.cmdSetViewport, []argKind{kU64, kU32, kU32, kPtr}, args)
}

func (c *Commands) CmdSetScissor(cb CommandBuffer, scissors []Rect2D) {
	first := uint32(0)
	count := uint32(len(scissors))
	var sp unsafe.Pointer
	if count > 0 {
		sp = unsafe.Pointer(&scissors[0])
	}
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&first), unsafe.Pointer(&count), unsafe.Pointer(&sp)}
	callVoid(c.cmdSetScissor, []argKind{kU64, kU32, kU32, kPtr}, args)
}

func (c *Commands) CmdDraw(cb CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&vertexCount), unsafe.Pointer(&instanceCount), unsafe.Pointer(&firstVertex), unsafe.Pointer(&firstInstance)}
	callVoid(c.cmdDraw, []argKind{kU64, kU32, kU32, kU32, kU32}, args)
}

func (c *Commands) CmdDrawIndexed(cb CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	args := []unsafe.Pointer{
		unsafe.Pointer(&cb), unsafe.Pointer(&indexCount), unsafe.Pointer(&instanceCount),
		unsafe.Pointer(&firstIndex), unsafe.Pointer(&vertexOffset), unsafe.Pointer(&firstInstance),
	}
	callVoid(c.cmdDrawIndexed, []argKind{kU64, kU32, kU32, kU32, kI32, kU32}, args)
}

func (c *Commands) CmdDrawIndexedIndirect(cb CommandBuffer, buf Buffer, offset uint64, drawCount, stride uint32) {
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&buf), unsafe.Pointer(&offset), unsafe.Pointer(&drawCount), unsafe.Pointer(&stride)}
	callVoid(c.cmdDrawIndexedIndirect, []argKind{kU64, kU64, kU64, kU32, kU32}, args)
}

func (c *Commands) CmdDispatch(cb CommandBuffer, x, y, z uint32) {
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z)}
	callVoid(c.cmdDispatch, []argKind{kU64, kU32, kU32, kU32}, args)
}

func (c *Commands) CmdDispatchIndirect(cb CommandBuffer, buf Buffer, offset uint64) {
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&buf), unsafe.Pointer(&offset)}
	callVoid(c.cmdDispatchIndirect, []argKind{kU64, kU64, kU64}, args)
}

func (c *Commands) CmdTraceRaysKHR(cb CommandBuffer, raygen, miss, hit, callable *StridedDeviceAddressRegionKHR, width, height, depth uint32) {
	args := []unsafe.Pointer{
		unsafe.Pointer(&cb), unsafe.Pointer(&raygen), unsafe.Pointer(&miss), unsafe.Pointer(&hit), unsafe.Pointer(&callable),
		unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&depth),
	}
	callVoid(c.cmdTraceRaysKHR, []argKind{kU64, kPtr, kPtr, kPtr, kPtr, kU32, kU32, kU32}, args)
}

func (c *Commands) CmdWriteTimestamp(cb CommandBuffer, stage PipelineStageFlags, pool QueryPool, query uint32) {
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&stage), unsafe.Pointer(&pool), unsafe.Pointer(&query)}
	callVoid(c.cmdWriteTimestamp, []argKind{kU64, kU32, kU64, kU32}, args)
}

func (c *Commands) CmdResetQueryPool(cb CommandBuffer, pool QueryPool, first, count uint32) {
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&pool), unsafe.Pointer(&first), unsafe.Pointer(&count)}
	callVoid(c.cmdResetQueryPool, []argKind{kU64, kU64, kU32, kU32}, args)
}

func (c *Commands) CmdBeginDebugUtilsLabelEXT(cb CommandBuffer, label *DebugUtilsLabelEXT) {
	labelPtr := unsafe.Pointer(label)
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&labelPtr)}
	callVoid(c.cmdBeginDebugUtilsLabelEXT, []argKind{kU64, kPtr}, args)
}

func (c *Commands) CmdEndDebugUtilsLabelEXT(cb CommandBuffer) {
	args := []unsafe.Pointer{unsafe.Pointer(&cb)}
	callVoid(c.cmdEndDebugUtilsLabelEXT, []argKind{kU64}, args)
}

func (c *Commands) SetDebugUtilsObjectNameEXT(device Device, info *DebugUtilsObjectNameInfoEXT) {
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr)}
	callVoid(c.setDebugUtilsObjectNameEXT, []argKind{kU64, kPtr}, args)
}

// --- Queries, fences, semaphores --------------------------------------------

func (c *Commands) CreateQueryPool(device Device, queryType QueryType, count uint32) (QueryPool, Result) {
	info := struct {
		SType      StructureType
		PNext      uintptr
		Flags      uint32
		QueryType  QueryType
		QueryCount uint32
		PipelineStatistics uint32
	}{StructureTypeQueryPoolCreateInfo, 0, 0, queryType, count, 0}
	var pool QueryPool
	infoPtr := unsafe.Pointer(&info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&pool)}
	return pool, callResult(c.createQueryPool, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroyQueryPool(device Device, pool QueryPool) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyQueryPool, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) GetQueryPoolResults(device Device, pool QueryPool, first, count uint32, data []byte, stride uint64, flags QueryResultFlags) Result {
	size := uint64(len(data))
	var dp unsafe.Pointer
	if size > 0 {
		dp = unsafe.Pointer(&data[0])
	}
	args := []unsafe.Pointer{
		unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&first), unsafe.Pointer(&count),
		unsafe.Pointer(&size), unsafe.Pointer(&dp), unsafe.Pointer(&stride), unsafe.Pointer(&flags),
	}
	return callResult(c.getQueryPoolResults, []argKind{kU64, kU64, kU32, kU32, kU64, kPtr, kU64, kU32}, args)
}

func (c *Commands) CreateFence(device Device, signaled bool) (Fence, Result) {
	var flags uint32
	if signaled {
		flags = 1
	}
	info := FenceCreateInfo{SType: StructureTypeFenceCreateInfo, Flags: flags}
	var fence Fence
	infoPtr := unsafe.Pointer(&info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&fence)}
	return fence, callResult(c.createFence, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroyFence(device Device, f Fence) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&f), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyFence, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) ResetFences(device Device, fences []Fence) Result {
	count := uint32(len(fences))
	var fp unsafe.Pointer
	if count > 0 {
		fp = unsafe.Pointer(&fences[0])
	}
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&fp)}
	return callResult(c.resetFences, []argKind{kU64, kU32, kPtr}, args)
}

func (c *Commands) WaitForFences(device Device, fences []Fence, waitAll bool, timeout uint64) Result {
	count := uint32(len(fences))
	var fp unsafe.Pointer
	if count > 0 {
		fp = unsafe.Pointer(&fences[0])
	}
	var all uint32
	if waitAll {
		all = 1
	}
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&fp), unsafe.Pointer(&all), unsafe.Pointer(&timeout)}
	return callResult(c.waitForFences, []argKind{kU64, kU32, kPtr, kU32, kU64}, args)
}

func (c *Commands) GetFenceStatus(device Device, f Fence) Result {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&f)}
	return callResult(c.getFenceStatus, []argKind{kU64, kU64}, args)
}

func (c *Commands) CreateSemaphore(device Device) (Semaphore, Result) {
	info := SemaphoreCreateInfo{SType: StructureTypeSemaphoreCreateInfo}
	var sem Semaphore
	infoPtr := unsafe.Pointer(&info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&sem)}
	return sem, callResult(c.createSemaphore, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroySemaphore(device Device, s Semaphore) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&s), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroySemaphore, []argKind{kU64, kU64, kPtr}, args)
}

// --- Acceleration structures -----------------------------------------------

func (c *Commands) CreateAccelerationStructureKHR(device Device, info *AccelerationStructureCreateInfoKHR) (AccelerationStructure, Result) {
	var as AccelerationStructure
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&as)}
	return as, callResult(c.createAccelerationStructureKHR, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroyAccelerationStructureKHR(device Device, as AccelerationStructure) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&as), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroyAccelerationStructureKHR, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) GetAccelerationStructureBuildSizesKHR(device Device, buildType uint32, info *AccelerationStructureBuildGeometryInfoKHR, maxPrimitiveCounts []uint32) *AccelerationStructureBuildSizesInfoKHR {
	sizes := &AccelerationStructureBuildSizesInfoKHR{SType: StructureTypeAccelerationStructureBuildSizesInfoKHR}
	infoPtr := unsafe.Pointer(info)
	var countsPtr unsafe.Pointer
	if len(maxPrimitiveCounts) > 0 {
		countsPtr = unsafe.Pointer(&maxPrimitiveCounts[0])
	}
	sizesPtr := unsafe.Pointer(sizes)
	args := []unsafe.Pointer{
		unsafe.Pointer(&device), unsafe.Pointer(&buildType), unsafe.Pointer(&infoPtr),
		unsafe.Pointer(&countsPtr), unsafe.Pointer(&sizesPtr),
	}
	callVoid(c.getAccelerationStructureBuildSizesKHR, []argKind{kU64, kU32, kPtr, kPtr, kPtr}, args)
	return sizes
}

func (c *Commands) GetAccelerationStructureDeviceAddressKHR(device Device, as AccelerationStructure) uint64 {
	info := struct {
		SType                 StructureType
		PNext                 uintptr
		AccelerationStructure AccelerationStructure
	}{1000150017, 0, as}
	var addr uint64
	infoPtr := unsafe.Pointer(&info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(&addr)}
	callVoid(c.getAccelerationStructureDeviceAddressKHR, []argKind{kU64, kPtr, kPtr}, args)
	return addr
}

func (c *Commands) CmdBuildAccelerationStructuresKHR(cb CommandBuffer, infos []AccelerationStructureBuildGeometryInfoKHR, rangeInfos [][]AccelerationStructureBuildRangeInfoKHR) {
	count := uint32(len(infos))
	var infosPtr unsafe.Pointer
	if count > 0 {
		infosPtr = unsafe.Pointer(&infos[0])
	}
	ranges := make([]*AccelerationStructureBuildRangeInfoKHR, len(rangeInfos))
	for i, r := range rangeInfos {
		if len(r) > 0 {
			ranges[i] = &r[0]
		}
	}
	var rangesPtr unsafe.Pointer
	if len(ranges) > 0 {
		rangesPtr = unsafe.Pointer(&ranges[0])
	}
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&count), unsafe.Pointer(&infosPtr), unsafe.Pointer(&rangesPtr)}
	callVoid(c.cmdBuildAccelerationStructuresKHR, []argKind{kU64, kU32, kPtr, kPtr}, args)
}

func (c *Commands) CmdWriteAccelerationStructuresPropertiesKHR(cb CommandBuffer, structures []AccelerationStructure, queryType uint32, pool QueryPool, first uint32) {
	count := uint32(len(structures))
	var sp unsafe.Pointer
	if count > 0 {
		sp = unsafe.Pointer(&structures[0])
	}
	args := []unsafe.Pointer{
		unsafe.Pointer(&cb), unsafe.Pointer(&count), unsafe.Pointer(&sp),
		unsafe.Pointer(&queryType), unsafe.Pointer(&pool), unsafe.Pointer(&first),
	}
	callVoid(c.cmdWriteAccelerationStructuresPropertiesKHR, []argKind{kU64, kU32, kPtr, kU32, kU64, kU32}, args)
}

func (c *Commands) CmdCopyAccelerationStructureKHR(cb CommandBuffer, src, dst AccelerationStructure, mode uint32) {
	info := struct {
		SType StructureType
		PNext uintptr
		Src   AccelerationStructure
		Dst   AccelerationStructure
		Mode  uint32
	}{1000150009, 0, src, dst, mode}
	infoPtr := unsafe.Pointer(&info)
	args := []unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&infoPtr)}
	callVoid(c.cmdCopyAccelerationStructureKHR, []argKind{kU64, kPtr}, args)
}

func (c *Commands) GetRayTracingShaderGroupHandlesKHR(device Device, pipeline Pipeline, first, count uint32, dataSize uint64) ([]byte, Result) {
	data := make([]byte, dataSize)
	var dp unsafe.Pointer
	if dataSize > 0 {
		dp = unsafe.Pointer(&data[0])
	}
	args := []unsafe.Pointer{
		unsafe.Pointer(&device), unsafe.Pointer(&pipeline), unsafe.Pointer(&first),
		unsafe.Pointer(&count), unsafe.Pointer(&dataSize), unsafe.Pointer(&dp),
	}
	return data, callResult(c.getRayTracingShaderGroupHandlesKHR, []argKind{kU64, kU64, kU32, kU32, kU64, kPtr}, args)
}

// --- Swapchain / surface ----------------------------------------------------

func (c *Commands) GetPhysicalDeviceSurfaceCapabilitiesKHR(pd PhysicalDevice, surface SurfaceKHR) (*SurfaceCapabilitiesKHR, Result) {
	caps := &SurfaceCapabilitiesKHR{}
	args := []unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&surface), unsafe.Pointer(&caps)}
	return caps, callResult(c.getPhysicalDeviceSurfaceCapabilitiesKHR, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) GetPhysicalDeviceSurfaceFormatsKHR(pd PhysicalDevice, surface SurfaceKHR) ([]SurfaceFormatKHR, Result) {
	var count uint32
	args := []unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&surface), unsafe.Pointer(&count), unsafe.Pointer(new(unsafe.Pointer))}
	if r := callResult(c.getPhysicalDeviceSurfaceFormatsKHR, []argKind{kU64, kU64, kPtr, kPtr}, args); r != Success || count == 0 {
		return nil, r
	}
	formats := make([]SurfaceFormatKHR, count)
	fp := unsafe.Pointer(&formats[0])
	args = []unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&surface), unsafe.Pointer(&count), unsafe.Pointer(&fp)}
	r := callResult(c.getPhysicalDeviceSurfaceFormatsKHR, []argKind{kU64, kU64, kPtr, kPtr}, args)
	return formats, r
}

func (c *Commands) GetPhysicalDeviceSurfacePresentModesKHR(pd PhysicalDevice, surface SurfaceKHR) ([]PresentModeKHR, Result) {
	var count uint32
	args := []unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&surface), unsafe.Pointer(&count), unsafe.Pointer(new(unsafe.Pointer))}
	if r := callResult(c.getPhysicalDeviceSurfacePresentModesKHR, []argKind{kU64, kU64, kPtr, kPtr}, args); r != Success || count == 0 {
		return nil, r
	}
	modes := make([]PresentModeKHR, count)
	mp := unsafe.Pointer(&modes[0])
	args = []unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&surface), unsafe.Pointer(&count), unsafe.Pointer(&mp)}
	r := callResult(c.getPhysicalDeviceSurfacePresentModesKHR, []argKind{kU64, kU64, kPtr, kPtr}, args)
	return modes, r
}

func (c *Commands) CreateSwapchainKHR(device Device, info *SwapchainCreateInfoKHR) (SwapchainKHR, Result) {
	var sc SwapchainKHR
	infoPtr := unsafe.Pointer(info)
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&infoPtr), unsafe.Pointer(new(unsafe.Pointer)), unsafe.Pointer(&sc)}
	return sc, callResult(c.createSwapchainKHR, []argKind{kU64, kPtr, kPtr, kPtr}, args)
}

func (c *Commands) DestroySwapchainKHR(device Device, sc SwapchainKHR) {
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&sc), unsafe.Pointer(new(unsafe.Pointer))}
	callVoid(c.destroySwapchainKHR, []argKind{kU64, kU64, kPtr}, args)
}

func (c *Commands) GetSwapchainImagesKHR(device Device, sc SwapchainKHR) ([]Image, Result) {
	var count uint32
	args := []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&sc), unsafe.Pointer(&count), unsafe.Pointer(new(unsafe.Pointer))}
	if r := callResult(c.getSwapchainImagesKHR, []argKind{kU64, kU64, kPtr, kPtr}, args); r != Success || count == 0 {
		return nil, r
	}
	images := make([]Image, count)
	ip := unsafe.Pointer(&images[0])
	args = []unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&sc), unsafe.Pointer(&count), unsafe.Pointer(&ip)}
	r := callResult(c.getSwapchainImagesKHR, []argKind{kU64, kU64, kPtr, kPtr}, args)
	return images, r
}

func (c *Commands) AcquireNextImageKHR(device Device, sc SwapchainKHR, timeout uint64, semaphore Semaphore, fence Fence) (uint32, Result) {
	var index uint32
	args := []unsafe.Pointer{
		unsafe.Pointer(&device), unsafe.Pointer(&sc), unsafe.Pointer(&timeout),
		unsafe.Pointer(&semaphore), unsafe.Pointer(&fence), unsafe.Pointer(&index),
	}
	return index, callResult(c.acquireNextImageKHR, []argKind{kU64, kU64, kU64, kU64, kU64, kPtr}, args)
}
