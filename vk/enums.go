// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package vk

// Result mirrors VkResult. Only the values this backend branches on are
// named; anything else is surfaced to callers as a raw negative code.
type Result int32

const (
	Success       Result = 0
	NotReady      Result = 1
	Timeout       Result = 2
	EventSet      Result = 3
	EventReset    Result = 4
	Incomplete    Result = 5
	SuboptimalKHR Result = 1000001003

	ErrorOutOfHostMemory    Result = -1
	ErrorOutOfDeviceMemory  Result = -2
	ErrorInitializationFailed Result = -3
	ErrorDeviceLost         Result = -4
	ErrorMemoryMapFailed    Result = -5
	ErrorLayerNotPresent    Result = -6
	ErrorExtensionNotPresent Result = -7
	ErrorFeatureNotPresent  Result = -8
	ErrorIncompatibleDriver Result = -9
	ErrorOutOfPoolMemory    Result = -1000069000
	ErrorOutOfDateKHR       Result = -1000001004
	ErrorSurfaceLostKHR     Result = -1000000000
	ErrorFragmentedPool     Result = -12
)

func (r Result) String() string {
	switch r {
	case Success:
		return "VK_SUCCESS"
	case NotReady:
		return "VK_NOT_READY"
	case Timeout:
		return "VK_TIMEOUT"
	case SuboptimalKHR:
		return "VK_SUBOPTIMAL_KHR"
	case ErrorOutOfDateKHR:
		return "VK_ERROR_OUT_OF_DATE_KHR"
	case ErrorDeviceLost:
		return "VK_ERROR_DEVICE_LOST"
	case ErrorSurfaceLostKHR:
		return "VK_ERROR_SURFACE_LOST_KHR"
	case ErrorOutOfPoolMemory:
		return "VK_ERROR_OUT_OF_POOL_MEMORY"
	default:
		return "VkResult(" + itoa(int64(r)) + ")"
	}
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// StructureType mirrors VkStructureType for the sType fields this backend
// populates.
type StructureType uint32

const (
	StructureTypeApplicationInfo                      StructureType = 0
	StructureTypeInstanceCreateInfo                    StructureType = 1
	StructureTypeDeviceQueueCreateInfo                 StructureType = 2
	StructureTypeDeviceCreateInfo                      StructureType = 3
	StructureTypeSubmitInfo                            StructureType = 4
	StructureTypeMemoryAllocateInfo                    StructureType = 5
	StructureTypeFenceCreateInfo                       StructureType = 8
	StructureTypeSemaphoreCreateInfo                   StructureType = 9
	StructureTypeBufferCreateInfo                      StructureType = 12
	StructureTypeBufferViewCreateInfo                  StructureType = 13
	StructureTypeImageCreateInfo                       StructureType = 14
	StructureTypeImageViewCreateInfo                   StructureType = 15
	StructureTypeShaderModuleCreateInfo                StructureType = 16
	StructureTypePipelineCacheCreateInfo               StructureType = 17
	StructureTypePipelineShaderStageCreateInfo         StructureType = 18
	StructureTypePipelineVertexInputStateCreateInfo    StructureType = 19
	StructureTypePipelineInputAssemblyStateCreateInfo  StructureType = 20
	StructureTypePipelineViewportStateCreateInfo       StructureType = 22
	StructureTypePipelineRasterizationStateCreateInfo  StructureType = 23
	StructureTypePipelineMultisampleStateCreateInfo    StructureType = 24
	StructureTypePipelineDepthStencilStateCreateInfo   StructureType = 25
	StructureTypePipelineColorBlendStateCreateInfo     StructureType = 26
	StructureTypePipelineDynamicStateCreateInfo        StructureType = 27
	StructureTypeGraphicsPipelineCreateInfo            StructureType = 28
	StructureTypeComputePipelineCreateInfo             StructureType = 29
	StructureTypePipelineLayoutCreateInfo              StructureType = 30
	StructureTypeSamplerCreateInfo                     StructureType = 31
	StructureTypeDescriptorSetLayoutCreateInfo         StructureType = 32
	StructureTypeDescriptorPoolCreateInfo              StructureType = 33
	StructureTypeDescriptorSetAllocateInfo             StructureType = 34
	StructureTypeDescriptorSetLayoutBindingFlagsCreateInfo StructureType = 1000161000
	StructureTypeWriteDescriptorSet                    StructureType = 35
	StructureTypeFramebufferCreateInfo                 StructureType = 37
	StructureTypeRenderPassCreateInfo                  StructureType = 38
	StructureTypeCommandPoolCreateInfo                 StructureType = 39
	StructureTypeCommandBufferAllocateInfo             StructureType = 40
	StructureTypeCommandBufferBeginInfo                StructureType = 42
	StructureTypeRenderPassBeginInfo                   StructureType = 43
	StructureTypeMemoryBarrier                         StructureType = 46
	StructureTypeBufferMemoryBarrier                   StructureType = 44
	StructureTypeImageMemoryBarrier                    StructureType = 45
	StructureTypePhysicalDeviceFeatures2               StructureType = 1000059000
	StructureTypePhysicalDeviceProperties2             StructureType = 1000059001
	StructureTypeSwapchainCreateInfoKHR                StructureType = 1000001000
	StructureTypePresentInfoKHR                        StructureType = 1000001001
	StructureTypeDebugUtilsMessengerCreateInfoEXT      StructureType = 1000128004
	StructureTypeDebugUtilsLabelEXT                    StructureType = 1000128002
	StructureTypeDebugUtilsObjectNameInfoEXT           StructureType = 1000128000
	StructureTypeFramebufferAttachmentsCreateInfo      StructureType = 1000117001
	StructureTypeFramebufferAttachmentImageInfo        StructureType = 1000117000
	StructureTypeRenderPassAttachmentBeginInfo         StructureType = 1000117003
	StructureTypeAccelerationStructureCreateInfoKHR    StructureType = 1000150017
	StructureTypeAccelerationStructureBuildGeometryInfo StructureType = 1000150000
	StructureTypeAccelerationStructureGeometryKHR      StructureType = 1000150006
	StructureTypeAccelerationStructureBuildSizesInfoKHR StructureType = 1000150020
	StructureTypeWriteDescriptorSetAccelerationStructureKHR StructureType = 1000150007
	StructureTypeRayTracingPipelineCreateInfoKHR       StructureType = 1000150015
	StructureTypeRayTracingShaderGroupCreateInfoKHR    StructureType = 1000150017 - 1
	StructureTypeBufferDeviceAddressInfo               StructureType = 1000244001
	StructureTypeQueryPoolCreateInfo                   StructureType = 46 + 1
	StructureTypePhysicalDeviceVulkan12Features        StructureType = 1000257000
	StructureTypePhysicalDeviceVulkan13Features        StructureType = 1000403000
	StructureTypePhysicalDeviceRayTracingPipelineFeaturesKHR StructureType = 1000347000
	StructureTypePhysicalDeviceAccelerationStructureFeaturesKHR StructureType = 1000150013
	StructureTypePhysicalDeviceMeshShaderFeaturesEXT   StructureType = 1000328000
)

// Format mirrors VkFormat, restricted to the formats backend.Texture
// actually creates.
type Format uint32

const (
	FormatUndefined         Format = 0
	FormatR8Unorm           Format = 9
	FormatR8G8B8A8Unorm     Format = 37
	FormatR8G8B8A8Srgb      Format = 43
	FormatB8G8R8A8Unorm     Format = 44
	FormatB8G8R8A8Srgb      Format = 50
	FormatR16G16B16A16Sfloat Format = 97
	FormatR32G32B32A32Sfloat Format = 109
	FormatD32Sfloat         Format = 126
	FormatD24UnormS8Uint    Format = 129
	FormatD32SfloatS8Uint   Format = 130
	FormatBC7UnormBlock     Format = 145
	FormatBC7SrgbBlock      Format = 146
	FormatA2B10G10R10UnormPack32 Format = 64
)

// ColorSpaceKHR mirrors VkColorSpaceKHR.
type ColorSpaceKHR uint32

const (
	ColorSpaceSrgbNonlinearKHR      ColorSpaceKHR = 0
	ColorSpaceHdr10St2084EXT        ColorSpaceKHR = 1000104008
)

// ImageLayout mirrors VkImageLayout.
type ImageLayout uint32

const (
	ImageLayoutUndefined                   ImageLayout = 0
	ImageLayoutGeneral                     ImageLayout = 1
	ImageLayoutColorAttachmentOptimal      ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutDepthStencilReadOnlyOptimal ImageLayout = 4
	ImageLayoutShaderReadOnlyOptimal       ImageLayout = 5
	ImageLayoutTransferSrcOptimal          ImageLayout = 6
	ImageLayoutTransferDstOptimal          ImageLayout = 7
	ImageLayoutPreinitialized              ImageLayout = 8
	ImageLayoutPresentSrcKHR               ImageLayout = 1000001002
)

// ImageType / ImageViewType mirror their Vulkan counterparts.
type ImageType uint32
type ImageViewType uint32

const (
	ImageType1D ImageType = 0
	ImageType2D ImageType = 1
	ImageType3D ImageType = 2
)

const (
	ImageViewType1D         ImageViewType = 0
	ImageViewType2D         ImageViewType = 1
	ImageViewType3D         ImageViewType = 2
	ImageViewTypeCube       ImageViewType = 3
	ImageViewType1DArray    ImageViewType = 4
	ImageViewType2DArray    ImageViewType = 5
	ImageViewTypeCubeArray  ImageViewType = 6
)

// SampleCountFlagBits mirrors VkSampleCountFlagBits.
type SampleCountFlagBits uint32

const (
	SampleCount1  SampleCountFlagBits = 1
	SampleCount2  SampleCountFlagBits = 2
	SampleCount4  SampleCountFlagBits = 4
	SampleCount8  SampleCountFlagBits = 8
	SampleCount16 SampleCountFlagBits = 16
)

// BufferUsageFlags / ImageUsageFlags mirror the respective Vulkan bitmasks.
type BufferUsageFlags uint32
type ImageUsageFlags uint32

const (
	BufferUsageTransferSrc        BufferUsageFlags = 1 << 0
	BufferUsageTransferDst        BufferUsageFlags = 1 << 1
	BufferUsageUniformTexelBuffer BufferUsageFlags = 1 << 2
	BufferUsageStorageTexelBuffer BufferUsageFlags = 1 << 3
	BufferUsageUniformBuffer      BufferUsageFlags = 1 << 4
	BufferUsageStorageBuffer      BufferUsageFlags = 1 << 5
	BufferUsageIndexBuffer        BufferUsageFlags = 1 << 6
	BufferUsageVertexBuffer       BufferUsageFlags = 1 << 7
	BufferUsageIndirectBuffer     BufferUsageFlags = 1 << 8
	BufferUsageShaderDeviceAddress BufferUsageFlags = 1 << 17
	BufferUsageAccelerationStructureBuildInputReadOnly BufferUsageFlags = 1 << 19
	BufferUsageAccelerationStructureStorage             BufferUsageFlags = 1 << 20
	BufferUsageShaderBindingTable BufferUsageFlags = 1 << 21
)

const (
	ImageUsageTransferSrc            ImageUsageFlags = 1 << 0
	ImageUsageTransferDst            ImageUsageFlags = 1 << 1
	ImageUsageSampled                ImageUsageFlags = 1 << 2
	ImageUsageStorage                ImageUsageFlags = 1 << 3
	ImageUsageColorAttachment        ImageUsageFlags = 1 << 4
	ImageUsageDepthStencilAttachment ImageUsageFlags = 1 << 5
	ImageUsageTransientAttachment    ImageUsageFlags = 1 << 6
	ImageUsageInputAttachment        ImageUsageFlags = 1 << 7
)

// MemoryPropertyFlags mirrors VkMemoryPropertyFlagBits.
type MemoryPropertyFlags uint32

const (
	MemoryPropertyDeviceLocal     MemoryPropertyFlags = 1 << 0
	MemoryPropertyHostVisible     MemoryPropertyFlags = 1 << 1
	MemoryPropertyHostCoherent    MemoryPropertyFlags = 1 << 2
	MemoryPropertyHostCached      MemoryPropertyFlags = 1 << 3
	MemoryPropertyLazilyAllocated MemoryPropertyFlags = 1 << 4
)

// MemoryHeapFlags mirrors VkMemoryHeapFlagBits.
type MemoryHeapFlags uint32

const MemoryHeapDeviceLocal MemoryHeapFlags = 1 << 0

// ImageAspectFlags mirrors VkImageAspectFlagBits.
type ImageAspectFlags uint32

const (
	ImageAspectColor   ImageAspectFlags = 1 << 0
	ImageAspectDepth   ImageAspectFlags = 1 << 1
	ImageAspectStencil ImageAspectFlags = 1 << 2
)

// PipelineStageFlags mirrors VkPipelineStageFlagBits.
type PipelineStageFlags uint32

const (
	PipelineStageTopOfPipe           PipelineStageFlags = 1 << 0
	PipelineStageDrawIndirect        PipelineStageFlags = 1 << 1
	PipelineStageVertexInput         PipelineStageFlags = 1 << 2
	PipelineStageVertexShader        PipelineStageFlags = 1 << 3
	PipelineStageFragmentShader      PipelineStageFlags = 1 << 7
	PipelineStageEarlyFragmentTests  PipelineStageFlags = 1 << 8
	PipelineStageLateFragmentTests   PipelineStageFlags = 1 << 9
	PipelineStageColorAttachmentOutput PipelineStageFlags = 1 << 10
	PipelineStageComputeShader       PipelineStageFlags = 1 << 11
	PipelineStageTransfer            PipelineStageFlags = 1 << 12
	PipelineStageBottomOfPipe        PipelineStageFlags = 1 << 13
	PipelineStageAllGraphics         PipelineStageFlags = 1 << 15
	PipelineStageAllCommands         PipelineStageFlags = 1 << 16
	PipelineStageRayTracingShaderKHR PipelineStageFlags = 1 << 21
	PipelineStageAccelerationStructureBuildKHR PipelineStageFlags = 1 << 25
)

// AccessFlags mirrors VkAccessFlagBits.
type AccessFlags uint32

const (
	AccessIndirectCommandRead        AccessFlags = 1 << 0
	AccessIndexRead                  AccessFlags = 1 << 1
	AccessVertexAttributeRead        AccessFlags = 1 << 2
	AccessUniformRead                AccessFlags = 1 << 3
	AccessShaderRead                 AccessFlags = 1 << 5
	AccessShaderWrite                AccessFlags = 1 << 6
	AccessColorAttachmentRead        AccessFlags = 1 << 7
	AccessColorAttachmentWrite       AccessFlags = 1 << 8
	AccessDepthStencilAttachmentRead AccessFlags = 1 << 9
	AccessDepthStencilAttachmentWrite AccessFlags = 1 << 10
	AccessTransferRead               AccessFlags = 1 << 11
	AccessTransferWrite              AccessFlags = 1 << 12
	AccessHostRead                   AccessFlags = 1 << 13
	AccessHostWrite                  AccessFlags = 1 << 14
	AccessMemoryRead                 AccessFlags = 1 << 15
	AccessMemoryWrite                AccessFlags = 1 << 16
	AccessAccelerationStructureReadKHR  AccessFlags = 1 << 21
	AccessAccelerationStructureWriteKHR AccessFlags = 1 << 22
)

// DescriptorType mirrors VkDescriptorType.
type DescriptorType uint32

const (
	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeUniformTexelBuffer   DescriptorType = 4
	DescriptorTypeStorageTexelBuffer   DescriptorType = 5
	DescriptorTypeUniformBuffer        DescriptorType = 6
	DescriptorTypeStorageBuffer        DescriptorType = 7
	DescriptorTypeAccelerationStructureKHR DescriptorType = 1000150000
)

// ShaderStageFlags mirrors VkShaderStageFlagBits.
type ShaderStageFlags uint32

const (
	ShaderStageVertex                 ShaderStageFlags = 1 << 0
	ShaderStageTessellationControl    ShaderStageFlags = 1 << 1
	ShaderStageTessellationEvaluation ShaderStageFlags = 1 << 2
	ShaderStageGeometry               ShaderStageFlags = 1 << 3
	ShaderStageFragment               ShaderStageFlags = 1 << 4
	ShaderStageCompute                ShaderStageFlags = 1 << 5
	ShaderStageAllGraphics            ShaderStageFlags = 0x1F
	ShaderStageRaygenKHR              ShaderStageFlags = 1 << 8
	ShaderStageAnyHitKHR              ShaderStageFlags = 1 << 9
	ShaderStageClosestHitKHR          ShaderStageFlags = 1 << 10
	ShaderStageMissKHR                ShaderStageFlags = 1 << 11
	ShaderStageIntersectionKHR        ShaderStageFlags = 1 << 12
	ShaderStageTaskEXT                ShaderStageFlags = 1 << 19
	ShaderStageMeshEXT                ShaderStageFlags = 1 << 20
)

// PipelineBindPoint mirrors VkPipelineBindPoint.
type PipelineBindPoint uint32

const (
	PipelineBindPointGraphics      PipelineBindPoint = 0
	PipelineBindPointCompute       PipelineBindPoint = 1
	PipelineBindPointRayTracingKHR PipelineBindPoint = 1000165000
)

// Filter / SamplerMipmapMode / SamplerAddressMode mirror their Vulkan
// counterparts.
type Filter uint32
type SamplerMipmapMode uint32
type SamplerAddressMode uint32

const (
	FilterNearest Filter = 0
	FilterLinear  Filter = 1
)

const (
	SamplerMipmapModeNearest SamplerMipmapMode = 0
	SamplerMipmapModeLinear  SamplerMipmapMode = 1
)

const (
	SamplerAddressModeRepeat         SamplerAddressMode = 0
	SamplerAddressModeMirroredRepeat SamplerAddressMode = 1
	SamplerAddressModeClampToEdge    SamplerAddressMode = 2
	SamplerAddressModeClampToBorder  SamplerAddressMode = 3
)

// CompareOp mirrors VkCompareOp.
type CompareOp uint32

const (
	CompareOpNever          CompareOp = 0
	CompareOpLess           CompareOp = 1
	CompareOpEqual          CompareOp = 2
	CompareOpLessOrEqual    CompareOp = 3
	CompareOpGreater        CompareOp = 4
	CompareOpNotEqual       CompareOp = 5
	CompareOpGreaterOrEqual CompareOp = 6
	CompareOpAlways         CompareOp = 7
)

// PolygonMode / CullModeFlags / FrontFace mirror their Vulkan counterparts.
type PolygonMode uint32
type CullModeFlags uint32
type FrontFace uint32

const (
	PolygonModeFill  PolygonMode = 0
	PolygonModeLine  PolygonMode = 1
	PolygonModePoint PolygonMode = 2
)

const (
	CullModeNone         CullModeFlags = 0
	CullModeFront        CullModeFlags = 1 << 0
	CullModeBack         CullModeFlags = 1 << 1
	CullModeFrontAndBack CullModeFlags = 0x3
)

const (
	FrontFaceCounterClockwise FrontFace = 0
	FrontFaceClockwise        FrontFace = 1
)

// PrimitiveTopology mirrors VkPrimitiveTopology.
type PrimitiveTopology uint32

const (
	PrimitiveTopologyPointList     PrimitiveTopology = 0
	PrimitiveTopologyLineList      PrimitiveTopology = 1
	PrimitiveTopologyLineStrip     PrimitiveTopology = 2
	PrimitiveTopologyTriangleList  PrimitiveTopology = 3
	PrimitiveTopologyTriangleStrip PrimitiveTopology = 4
)

// BlendFactor / BlendOp mirror their Vulkan counterparts.
type BlendFactor uint32
type BlendOp uint32

const (
	BlendFactorZero            BlendFactor = 0
	BlendFactorOne             BlendFactor = 1
	BlendFactorSrcColor        BlendFactor = 2
	BlendFactorOneMinusSrcColor BlendFactor = 3
	BlendFactorSrcAlpha        BlendFactor = 6
	BlendFactorOneMinusSrcAlpha BlendFactor = 7
	BlendFactorDstAlpha        BlendFactor = 8
	BlendFactorOneMinusDstAlpha BlendFactor = 9
)

const (
	BlendOpAdd BlendOp = 0
)

// AttachmentLoadOp / AttachmentStoreOp mirror their Vulkan counterparts.
type AttachmentLoadOp uint32
type AttachmentStoreOp uint32

const (
	AttachmentLoadOpLoad     AttachmentLoadOp = 0
	AttachmentLoadOpClear    AttachmentLoadOp = 1
	AttachmentLoadOpDontCare AttachmentLoadOp = 2
)

const (
	AttachmentStoreOpStore    AttachmentStoreOp = 0
	AttachmentStoreOpDontCare AttachmentStoreOp = 1
)

// IndexType mirrors VkIndexType.
type IndexType uint32

const (
	IndexTypeUint16 IndexType = 0
	IndexTypeUint32 IndexType = 1
)

// SharingMode mirrors VkSharingMode.
type SharingMode uint32

const (
	SharingModeExclusive  SharingMode = 0
	SharingModeConcurrent SharingMode = 1
)

// PresentModeKHR mirrors VkPresentModeKHR.
type PresentModeKHR uint32

const (
	PresentModeImmediateKHR   PresentModeKHR = 0
	PresentModeMailboxKHR     PresentModeKHR = 1
	PresentModeFifoKHR        PresentModeKHR = 2
	PresentModeFifoRelaxedKHR PresentModeKHR = 3
)

// CompositeAlphaFlagsKHR mirrors VkCompositeAlphaFlagBitsKHR.
type CompositeAlphaFlagsKHR uint32

const CompositeAlphaOpaqueKHR CompositeAlphaFlagsKHR = 1 << 0

// DescriptorSetLayoutCreateFlags / DescriptorBindingFlags mirror their
// Vulkan counterparts (update-after-bind support).
type DescriptorSetLayoutCreateFlags uint32
type DescriptorBindingFlags uint32
type DescriptorPoolCreateFlags uint32

const (
	DescriptorSetLayoutCreateUpdateAfterBindPool DescriptorSetLayoutCreateFlags = 1 << 1
)

const (
	DescriptorBindingUpdateAfterBind          DescriptorBindingFlags = 1 << 0
	DescriptorBindingPartiallyBound           DescriptorBindingFlags = 1 << 2
	DescriptorBindingVariableDescriptorCount  DescriptorBindingFlags = 1 << 3
)

const DescriptorPoolCreateUpdateAfterBind DescriptorPoolCreateFlags = 1 << 1
const DescriptorPoolCreateFreeDescriptorSet DescriptorPoolCreateFlags = 1 << 0

// FramebufferCreateFlags mirrors VK_FRAMEBUFFER_CREATE_IMAGELESS_BIT.
type FramebufferCreateFlags uint32

const FramebufferCreateImageless FramebufferCreateFlags = 1 << 0

// QueryType / QueryResultFlags mirror their Vulkan counterparts.
type QueryType uint32
type QueryResultFlags uint32

const (
	QueryTypeTimestamp QueryType = 2
)

const (
	QueryResult64 QueryResultFlags = 1 << 0
	QueryResultWait QueryResultFlags = 1 << 1
)

// GeometryTypeKHR / BuildAccelerationStructureFlagsKHR /
// AccelerationStructureTypeKHR mirror the ray-tracing extension's enums.
type GeometryTypeKHR uint32
type BuildAccelerationStructureFlagsKHR uint32
type AccelerationStructureTypeKHR uint32
type GeometryFlagsKHR uint32

const (
	GeometryTypeTrianglesKHR GeometryTypeKHR = 0
	GeometryTypeAabbsKHR     GeometryTypeKHR = 1
	GeometryTypeInstancesKHR GeometryTypeKHR = 2
)

const (
	BuildAccelerationStructurePreferFastTraceKHR BuildAccelerationStructureFlagsKHR = 1 << 0
	BuildAccelerationStructureAllowUpdateKHR     BuildAccelerationStructureFlagsKHR = 1 << 2
	BuildAccelerationStructureAllowCompactionKHR BuildAccelerationStructureFlagsKHR = 1 << 1
)

const (
	AccelerationStructureTypeBottomLevelKHR AccelerationStructureTypeKHR = 0
	AccelerationStructureTypeTopLevelKHR    AccelerationStructureTypeKHR = 1
)

const GeometryOpaqueKHR GeometryFlagsKHR = 1 << 0

// RayTracingShaderGroupTypeKHR mirrors VkRayTracingShaderGroupTypeKHR.
type RayTracingShaderGroupTypeKHR uint32

const (
	RayTracingShaderGroupTypeGeneralKHR            RayTracingShaderGroupTypeKHR = 0
	RayTracingShaderGroupTypeTrianglesHitGroupKHR  RayTracingShaderGroupTypeKHR = 1
	RayTracingShaderGroupTypeProceduralHitGroupKHR RayTracingShaderGroupTypeKHR = 2
)

const ShaderUnusedKHR uint32 = 0xFFFFFFFF

// DependencyFlags mirrors VkDependencyFlagBits.
type DependencyFlags uint32

// ColorComponentFlags mirrors VkColorComponentFlagBits.
type ColorComponentFlags uint32

const ColorComponentRGBA ColorComponentFlags = 0xF

// DebugUtilsMessageSeverityFlagsEXT / DebugUtilsMessageTypeFlagsEXT mirror
// the debug-utils extension's enums.
type DebugUtilsMessageSeverityFlagsEXT uint32
type DebugUtilsMessageTypeFlagsEXT uint32

const (
	DebugUtilsMessageSeverityWarningEXT DebugUtilsMessageSeverityFlagsEXT = 1 << 8
	DebugUtilsMessageSeverityErrorEXT   DebugUtilsMessageSeverityFlagsEXT = 1 << 12
)

const DebugUtilsMessageTypeGeneralEXT DebugUtilsMessageTypeFlagsEXT = 1 << 0

// SubpassExternal mirrors VK_SUBPASS_EXTERNAL, used in a
// VkSubpassDependency to refer to commands outside the render pass.
const SubpassExternal uint32 = 0xFFFFFFFF
