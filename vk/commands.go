// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"fmt"
	"unsafe"
)

// Commands holds the subset of Vulkan entry points this backend resolves
// dynamically through vkGet{Instance,Device}ProcAddr. Fields are populated
// in three passes (LoadGlobal, LoadInstance, LoadDevice) mirroring the
// three points at which new entry points become resolvable.
type Commands struct {
	// Global
	createInstance           unsafe.Pointer
	enumerateInstanceVersion unsafe.Pointer

	// Instance-level
	destroyInstance                             unsafe.Pointer
	enumeratePhysicalDevices                    unsafe.Pointer
	getPhysicalDeviceProperties                 unsafe.Pointer
	getPhysicalDeviceProperties2                unsafe.Pointer
	getPhysicalDeviceFeatures2                  unsafe.Pointer
	getPhysicalDeviceMemoryProperties           unsafe.Pointer
	getPhysicalDeviceQueueFamilyProperties      unsafe.Pointer
	enumerateDeviceExtensionProperties          unsafe.Pointer
	createDevice                                unsafe.Pointer
	destroySurfaceKHR                           unsafe.Pointer
	getPhysicalDeviceSurfaceCapabilitiesKHR     unsafe.Pointer
	getPhysicalDeviceSurfaceFormatsKHR          unsafe.Pointer
	getPhysicalDeviceSurfacePresentModesKHR     unsafe.Pointer
	getPhysicalDeviceSurfaceSupportKHR          unsafe.Pointer
	createDebugUtilsMessengerEXT                unsafe.Pointer
	destroyDebugUtilsMessengerEXT               unsafe.Pointer

	// Device-level
	destroyDevice                          unsafe.Pointer
	getDeviceQueue                         unsafe.Pointer
	deviceWaitIdle                         unsafe.Pointer
	queueWaitIdle                          unsafe.Pointer
	queueSubmit                            unsafe.Pointer
	queuePresentKHR                        unsafe.Pointer

	createBuffer            unsafe.Pointer
	destroyBuffer           unsafe.Pointer
	getBufferMemoryRequirements unsafe.Pointer
	bindBufferMemory        unsafe.Pointer
	getBufferDeviceAddress  unsafe.Pointer

	createImage              unsafe.Pointer
	destroyImage             unsafe.Pointer
	getImageMemoryRequirements unsafe.Pointer
	bindImageMemory          unsafe.Pointer
	createImageView          unsafe.Pointer
	destroyImageView         unsafe.Pointer

	createSampler  unsafe.Pointer
	destroySampler unsafe.Pointer

	allocateMemory unsafe.Pointer
	freeMemory     unsafe.Pointer
	mapMemory      unsafe.Pointer
	unmapMemory    unsafe.Pointer
	flushMappedMemoryRanges unsafe.Pointer

	createShaderModule  unsafe.Pointer
	destroyShaderModule unsafe.Pointer

	createDescriptorSetLayout  unsafe.Pointer
	destroyDescriptorSetLayout unsafe.Pointer
	createDescriptorPool       unsafe.Pointer
	destroyDescriptorPool      unsafe.Pointer
	resetDescriptorPool        unsafe.Pointer
	allocateDescriptorSets     unsafe.Pointer
	freeDescriptorSets         unsafe.Pointer
	updateDescriptorSets       unsafe.Pointer

	createPipelineLayout      unsafe.Pointer
	destroyPipelineLayout     unsafe.Pointer
	createGraphicsPipelines   unsafe.Pointer
	createComputePipelines    unsafe.Pointer
	createRayTracingPipelinesKHR unsafe.Pointer
	destroyPipeline           unsafe.Pointer
	createPipelineCache       unsafe.Pointer
	destroyPipelineCache      unsafe.Pointer
	getPipelineCacheData      unsafe.Pointer
	getRayTracingShaderGroupHandlesKHR unsafe.Pointer

	createRenderPass  unsafe.Pointer
	destroyRenderPass unsafe.Pointer
	createFramebuffer unsafe.Pointer
	destroyFramebuffer unsafe.Pointer

	createCommandPool     unsafe.Pointer
	destroyCommandPool    unsafe.Pointer
	resetCommandPool      unsafe.Pointer
	allocateCommandBuffers unsafe.Pointer
	freeCommandBuffers    unsafe.Pointer
	beginCommandBuffer    unsafe.Pointer
	endCommandBuffer      unsafe.Pointer
	resetCommandBuffer    unsafe.Pointer

	cmdPipelineBarrier     unsafe.Pointer
	cmdCopyBuffer          unsafe.Pointer
	cmdCopyBufferToImage   unsafe.Pointer
	cmdCopyImageToBuffer   unsafe.Pointer
	cmdBlitImage           unsafe.Pointer
	cmdClearColorImage     unsafe.Pointer
	cmdClearDepthStencilImage unsafe.Pointer
	cmdBeginRenderPass     unsafe.Pointer
	cmdEndRenderPass       unsafe.Pointer
	cmdBindPipeline        unsafe.Pointer
	cmdBindDescriptorSets  unsafe.Pointer
	cmdBindVertexBuffers   unsafe.Pointer
	cmdBindIndexBuffer     unsafe.Pointer
	cmdPushConstants       unsafe.Pointer
	cmdSetViewport         unsafe.Pointer
	cmdSetScissor          unsafe.Pointer
	cmdDraw                unsafe.Pointer
	cmdDrawIndexed         unsafe.Pointer
	cmdDrawIndexedIndirect unsafe.Pointer
	cmdDispatch            unsafe.Pointer
	cmdDispatchIndirect    unsafe.Pointer
	cmdTraceRaysKHR        unsafe.Pointer
	cmdWriteTimestamp      unsafe.Pointer
	cmdResetQueryPool      unsafe.Pointer
	cmdCopyQueryPoolResults unsafe.Pointer
	cmdBeginDebugUtilsLabelEXT unsafe.Pointer
	cmdEndDebugUtilsLabelEXT   unsafe.Pointer
	setDebugUtilsObjectNameEXT unsafe.Pointer

	createQueryPool  unsafe.Pointer
	destroyQueryPool unsafe.Pointer
	getQueryPoolResults unsafe.Pointer

	createFence    unsafe.Pointer
	destroyFence   unsafe.Pointer
	resetFences    unsafe.Pointer
	waitForFences  unsafe.Pointer
	getFenceStatus unsafe.Pointer

	createSemaphore  unsafe.Pointer
	destroySemaphore unsafe.Pointer

	createAccelerationStructureKHR            unsafe.Pointer
	destroyAccelerationStructureKHR           unsafe.Pointer
	getAccelerationStructureBuildSizesKHR     unsafe.Pointer
	getAccelerationStructureDeviceAddressKHR  unsafe.Pointer
	cmdBuildAccelerationStructuresKHR         unsafe.Pointer
	cmdWriteAccelerationStructuresPropertiesKHR unsafe.Pointer
	cmdCopyAccelerationStructureKHR           unsafe.Pointer

	createSwapchainKHR      unsafe.Pointer
	destroySwapchainKHR     unsafe.Pointer
	getSwapchainImagesKHR   unsafe.Pointer
	acquireNextImageKHR     unsafe.Pointer
}

// NewCommands returns a zeroed Commands table; no entry point is resolved
// until LoadGlobal/LoadInstance/LoadDevice are called.
func NewCommands() *Commands {
	return &Commands{}
}

// LoadGlobal resolves the entry points available before any instance
// exists. Init must have already succeeded.
func (c *Commands) LoadGlobal() error {
	c.createInstance = GetInstanceProcAddr(0, "vkCreateInstance")
	c.enumerateInstanceVersion = GetInstanceProcAddr(0, "vkEnumerateInstanceVersion")
	if c.createInstance == nil {
		return fmt.Errorf("vk: vkCreateInstance not resolvable")
	}
	return nil
}

// LoadInstance resolves every instance-level (and WSI/debug-utils
// extension) entry point against instance.
func (c *Commands) LoadInstance(instance Instance) error {
	SetDeviceProcAddr(instance)
	get := func(name string) unsafe.Pointer { return GetInstanceProcAddr(instance, name) }

	c.destroyInstance = get("vkDestroyInstance")
	c.enumeratePhysicalDevices = get("vkEnumeratePhysicalDevices")
	c.getPhysicalDeviceProperties = get("vkGetPhysicalDeviceProperties")
	c.getPhysicalDeviceProperties2 = get("vkGetPhysicalDeviceProperties2")
	c.getPhysicalDeviceFeatures2 = get("vkGetPhysicalDeviceFeatures2")
	c.getPhysicalDeviceMemoryProperties = get("vkGetPhysicalDeviceMemoryProperties")
	c.getPhysicalDeviceQueueFamilyProperties = get("vkGetPhysicalDeviceQueueFamilyProperties")
	c.enumerateDeviceExtensionProperties = get("vkEnumerateDeviceExtensionProperties")
	c.createDevice = get("vkCreateDevice")
	c.destroySurfaceKHR = get("vkDestroySurfaceKHR")
	c.getPhysicalDeviceSurfaceCapabilitiesKHR = get("vkGetPhysicalDeviceSurfaceCapabilitiesKHR")
	c.getPhysicalDeviceSurfaceFormatsKHR = get("vkGetPhysicalDeviceSurfaceFormatsKHR")
	c.getPhysicalDeviceSurfacePresentModesKHR = get("vkGetPhysicalDeviceSurfacePresentModesKHR")
	c.getPhysicalDeviceSurfaceSupportKHR = get("vkGetPhysicalDeviceSurfaceSupportKHR")
	c.createDebugUtilsMessengerEXT = get("vkCreateDebugUtilsMessengerEXT")
	c.destroyDebugUtilsMessengerEXT = get("vkDestroyDebugUtilsMessengerEXT")

	if c.enumeratePhysicalDevices == nil || c.createDevice == nil {
		return fmt.Errorf("vk: required instance functions missing")
	}
	return nil
}

// LoadDevice resolves every device-level entry point directly against
// device, bypassing the instance dispatch trampoline for the hot path.
func (c *Commands) LoadDevice(device Device) error {
	get := func(name string) unsafe.Pointer { return GetDeviceProcAddr(device, name) }

	c.destroyDevice = get("vkDestroyDevice")
	c.getDeviceQueue = get("vkGetDeviceQueue")
	c.deviceWaitIdle = get("vkDeviceWaitIdle")
	c.queueWaitIdle = get("vkQueueWaitIdle")
	c.queueSubmit = get("vkQueueSubmit")
	c.queuePresentKHR = get("vkQueuePresentKHR")

	c.createBuffer = get("vkCreateBuffer")
	c.destroyBuffer = get("vkDestroyBuffer")
	c.getBufferMemoryRequirements = get("vkGetBufferMemoryRequirements")
	c.bindBufferMemory = get("vkBindBufferMemory")
	c.getBufferDeviceAddress = get("vkGetBufferDeviceAddress")

	c.createImage = get("vkCreateImage")
	c.destroyImage = get("vkDestroyImage")
	c.getImageMemoryRequirements = get("vkGetImageMemoryRequirements")
	c.bindImageMemory = get("vkBindImageMemory")
	c.createImageView = get("vkCreateImageView")
	c.destroyImageView = get("vkDestroyImageView")

	c.createSampler = get("vkCreateSampler")
	c.destroySampler = get("vkDestroySampler")

	c.allocateMemory = get("vkAllocateMemory")
	c.freeMemory = get("vkFreeMemory")
	c.mapMemory = get("vkMapMemory")
	c.unmapMemory = get("vkUnmapMemory")
	c.flushMappedMemoryRanges = get("vkFlushMappedMemoryRanges")

	c.createShaderModule = get("vkCreateShaderModule")
	c.destroyShaderModule = get("vkDestroyShaderModule")

	c.createDescriptorSetLayout = get("vkCreateDescriptorSetLayout")
	c.destroyDescriptorSetLayout = get("vkDestroyDescriptorSetLayout")
	c.createDescriptorPool = get("vkCreateDescriptorPool")
	c.destroyDescriptorPool = get("vkDestroyDescriptorPool")
	c.resetDescriptorPool = get("vkResetDescriptorPool")
	c.allocateDescriptorSets = get("vkAllocateDescriptorSets")
	c.freeDescriptorSets = get("vkFreeDescriptorSets")
	c.updateDescriptorSets = get("vkUpdateDescriptorSets")

	c.createPipelineLayout = get("vkCreatePipelineLayout")
	c.destroyPipelineLayout = get("vkDestroyPipelineLayout")
	c.createGraphicsPipelines = get("vkCreateGraphicsPipelines")
	c.createComputePipelines = get("vkCreateComputePipelines")
	c.createRayTracingPipelinesKHR = get("vkCreateRayTracingPipelinesKHR")
	c.destroyPipeline = get("vkDestroyPipeline")
	c.createPipelineCache = get("vkCreatePipelineCache")
	c.destroyPipelineCache = get("vkDestroyPipelineCache")
	c.getPipelineCacheData = get("vkGetPipelineCacheData")
	c.getRayTracingShaderGroupHandlesKHR = get("vkGetRayTracingShaderGroupHandlesKHR")

	c.createRenderPass = get("vkCreateRenderPass")
	c.destroyRenderPass = get("vkDestroyRenderPass")
	c.createFramebuffer = get("vkCreateFramebuffer")
	c.destroyFramebuffer = get("vkDestroyFramebuffer")

	c.createCommandPool = get("vkCreateCommandPool")
	c.destroyCommandPool = get("vkDestroyCommandPool")
	c.resetCommandPool = get("vkResetCommandPool")
	c.allocateCommandBuffers = get("vkAllocateCommandBuffers")
	c.freeCommandBuffers = get("vkFreeCommandBuffers")
	c.beginCommandBuffer = get("vkBeginCommandBuffer")
	c.endCommandBuffer = get("vkEndCommandBuffer")
	c.resetCommandBuffer = get("vkResetCommandBuffer")

	c.cmdPipelineBarrier = get("vkCmdPipelineBarrier")
	c.cmdCopyBuffer = get("vkCmdCopyBuffer")
	c.cmdCopyBufferToImage = get("vkCmdCopyBufferToImage")
	c.cmdCopyImageToBuffer = get("vkCmdCopyImageToBuffer")
	c.cmdBlitImage = get("vkCmdBlitImage")
	c.cmdClearColorImage = get("vkCmdClearColorImage")
	c.cmdClearDepthStencilImage = get("vkCmdClearDepthStencilImage")
	c.cmdBeginRenderPass = get("vkCmdBeginRenderPass")
	c.cmdEndRenderPass = get("vkCmdEndRenderPass")
	c.cmdBindPipeline = get("vkCmdBindPipeline")
	c.cmdBindDescriptorSets = get("vkCmdBindDescriptorSets")
	c.cmdBindVertexBuffers = get("vkCmdBindVertexBuffers")
	c.cmdBindIndexBuffer = get("vkCmdBindIndexBuffer")
	c.cmdPushConstants = get("vkCmdPushConstants")
	c.cmdSetViewport = get("vkCmdSetViewport")
	c.cmdSetScissor = get("vkCmdSetScissor")
	c.cmdDraw = get("vkCmdDraw")
	c.cmdDrawIndexed = get("vkCmdDrawIndexed")
	c.cmdDrawIndexedIndirect = get("vkCmdDrawIndexedIndirect")
	c.cmdDispatch = get("vkCmdDispatch")
	c.cmdDispatchIndirect = get("vkCmdDispatchIndirect")
	c.cmdTraceRaysKHR = get("vkCmdTraceRaysKHR")
	c.cmdWriteTimestamp = get("vkCmdWriteTimestamp")
	c.cmdResetQueryPool = get("vkCmdResetQueryPool")
	c.cmdCopyQueryPoolResults = get("vkCmdCopyQueryPoolResults")
	c.cmdBeginDebugUtilsLabelEXT = get("vkCmdBeginDebugUtilsLabelEXT")
	c.cmdEndDebugUtilsLabelEXT = get("vkCmdEndDebugUtilsLabelEXT")
	c.setDebugUtilsObjectNameEXT = get("vkSetDebugUtilsObjectNameEXT")

	c.createQueryPool = get("vkCreateQueryPool")
	c.destroyQueryPool = get("vkDestroyQueryPool")
	c.getQueryPoolResults = get("vkGetQueryPoolResults")

	c.createFence = get("vkCreateFence")
	c.destroyFence = get("vkDestroyFence")
	c.resetFences = get("vkResetFences")
	c.waitForFences = get("vkWaitForFences")
	c.getFenceStatus = get("vkGetFenceStatus")

	c.createSemaphore = get("vkCreateSemaphore")
	c.destroySemaphore = get("vkDestroySemaphore")

	c.createAccelerationStructureKHR = get("vkCreateAccelerationStructureKHR")
	c.destroyAccelerationStructureKHR = get("vkDestroyAccelerationStructureKHR")
	c.getAccelerationStructureBuildSizesKHR = get("vkGetAccelerationStructureBuildSizesKHR")
	c.getAccelerationStructureDeviceAddressKHR = get("vkGetAccelerationStructureDeviceAddressKHR")
	c.cmdBuildAccelerationStructuresKHR = get("vkCmdBuildAccelerationStructuresKHR")
	c.cmdWriteAccelerationStructuresPropertiesKHR = get("vkCmdWriteAccelerationStructuresPropertiesKHR")
	c.cmdCopyAccelerationStructureKHR = get("vkCmdCopyAccelerationStructureKHR")

	c.createSwapchainKHR = get("vkCreateSwapchainKHR")
	c.destroySwapchainKHR = get("vkDestroySwapchainKHR")
	c.getSwapchainImagesKHR = get("vkGetSwapchainImagesKHR")
	c.acquireNextImageKHR = get("vkAcquireNextImageKHR")

	if c.createBuffer == nil || c.createCommandPool == nil || c.queueSubmit == nil {
		return fmt.Errorf("vk: required device functions missing")
	}
	return nil
}

// HasRayTracing reports whether the VK_KHR_ray_tracing_pipeline and
// VK_KHR_acceleration_structure entry points this backend needs were
// resolved; callers use this to gate ray-tracing state objects.
func (c *Commands) HasRayTracing() bool {
	return c.createRayTracingPipelinesKHR != nil &&
		c.createAccelerationStructureKHR != nil &&
		c.cmdBuildAccelerationStructuresKHR != nil
}

// HasSwapchain reports whether VK_KHR_swapchain was resolved.
func (c *Commands) HasSwapchain() bool {
	return c.createSwapchainKHR != nil && c.acquireNextImageKHR != nil
}
