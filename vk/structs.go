// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package vk

// This file declares the Vulkan structures package backend marshals through
// goffi. Field order matches the C layout only where this package also
// implements the marshaling by hand (see calls.go); callers never pass these
// structs directly to CallFunction, so padding rules are not load-bearing.

type ApplicationInfo struct {
	SType              StructureType
	PNext              uintptr
	PApplicationName   string
	ApplicationVersion uint32
	PEngineName        string
	EngineVersion      uint32
	APIVersion         uint32
}

type InstanceCreateInfo struct {
	SType                   StructureType
	PNext                   uintptr
	PApplicationInfo        *ApplicationInfo
	EnabledLayerNames       []string
	EnabledExtensionNames   []string
}

type DeviceQueueCreateInfo struct {
	SType            StructureType
	PNext            uintptr
	QueueFamilyIndex uint32
	QueuePriorities  []float32
}

type DeviceCreateInfo struct {
	SType                 StructureType
	PNext                 uintptr
	QueueCreateInfos      []DeviceQueueCreateInfo
	EnabledExtensionNames []string
	PEnabledFeatures      uintptr
}

type QueueFamilyProperties struct {
	QueueFlags                  uint32
	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity [3]uint32
}

type PhysicalDeviceLimits struct {
	MaxImageDimension2D              uint32
	MaxImageDimension3D              uint32
	MaxImageArrayLayers              uint32
	MaxUniformBufferRange             uint32
	MaxStorageBufferRange             uint32
	MaxPushConstantsSize              uint32
	MaxBoundDescriptorSets            uint32
	MaxPerStageDescriptorSamplers     uint32
	MaxPerStageDescriptorSampledImages uint32
	MaxPerStageDescriptorStorageImages uint32
	MaxColorAttachments               uint32
	MinUniformBufferOffsetAlignment   uint64
	MinStorageBufferOffsetAlignment   uint64
	TimestampPeriod                   float32
	FramebufferColorSampleCounts      SampleCountFlagBits
	FramebufferDepthSampleCounts      SampleCountFlagBits
}

type PhysicalDeviceProperties struct {
	APIVersion    uint32
	DriverVersion uint32
	VendorID      uint32
	DeviceID      uint32
	DeviceType    uint32
	DeviceName    string
	Limits        PhysicalDeviceLimits
}

type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

type MemoryHeap struct {
	Size  uint64
	Flags MemoryHeapFlags
}

type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [32]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [16]MemoryHeap
}

type PhysicalDeviceFeatures struct {
	SamplerAnisotropy         bool
	ShaderInt64               bool
	FragmentStoresAndAtomics  bool
	MultiDrawIndirect         bool
	DepthClamp                bool
	WideLines                 bool
	ImagelessFramebuffer      bool
	DescriptorIndexing        bool
	TimelineSemaphore         bool
	BufferDeviceAddress       bool
	RayTracingPipeline        bool
	AccelerationStructure     bool
	MeshShader                bool
	DynamicRendering          bool
}

type BufferCreateInfo struct {
	SType       StructureType
	PNext       uintptr
	Flags       uint32
	Size        uint64
	Usage       BufferUsageFlags
	SharingMode SharingMode
}

type MemoryRequirements struct {
	Size           uint64
	Alignment      uint64
	MemoryTypeBits uint32
}

type MemoryAllocateInfo struct {
	SType           StructureType
	PNext           uintptr
	AllocationSize  uint64
	MemoryTypeIndex uint32
}

type ImageCreateInfo struct {
	SType         StructureType
	PNext         uintptr
	Flags         uint32
	ImageType     ImageType
	Format        Format
	Extent        Extent3D
	MipLevels     uint32
	ArrayLayers   uint32
	Samples       SampleCountFlagBits
	Tiling        uint32
	Usage         ImageUsageFlags
	SharingMode   SharingMode
	InitialLayout ImageLayout
}

type Extent3D struct {
	Width, Height, Depth uint32
}

type Extent2D struct {
	Width, Height uint32
}

type Offset3D struct {
	X, Y, Z int32
}

type Offset2D struct {
	X, Y int32
}

type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

type ImageSubresourceRange struct {
	AspectMask     ImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageSubresourceLayers struct {
	AspectMask     ImageAspectFlags
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ComponentMapping struct {
	R, G, B, A uint32
}

type ImageViewCreateInfo struct {
	SType            StructureType
	PNext            uintptr
	Flags            uint32
	Image            Image
	ViewType         ImageViewType
	Format           Format
	Components       ComponentMapping
	SubresourceRange ImageSubresourceRange
}

type SamplerCreateInfo struct {
	SType                   StructureType
	PNext                   uintptr
	MagFilter               Filter
	MinFilter               Filter
	MipmapMode              SamplerMipmapMode
	AddressModeU            SamplerAddressMode
	AddressModeV            SamplerAddressMode
	AddressModeW            SamplerAddressMode
	MipLodBias              float32
	AnisotropyEnable        bool
	MaxAnisotropy           float32
	CompareEnable           bool
	CompareOp               CompareOp
	MinLod                  float32
	MaxLod                  float32
	BorderColor             uint32
	UnnormalizedCoordinates bool
}

type ShaderModuleCreateInfo struct {
	SType    StructureType
	PNext    uintptr
	Flags    uint32
	CodeSize uint64
	PCode    []byte
}

type PipelineShaderStageCreateInfo struct {
	SType  StructureType
	PNext  uintptr
	Flags  uint32
	Stage  ShaderStageFlags
	Module ShaderModule
	PName  string
}

type VertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate uint32
}

type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

type PipelineVertexInputStateCreateInfo struct {
	SType                     StructureType
	PNext                     uintptr
	VertexBindingDescriptions []VertexInputBindingDescription
	VertexAttributeDescriptions []VertexInputAttributeDescription
}

type PipelineInputAssemblyStateCreateInfo struct {
	SType                  StructureType
	PNext                  uintptr
	Topology               PrimitiveTopology
	PrimitiveRestartEnable bool
}

type Viewport struct {
	X, Y, Width, Height, MinDepth, MaxDepth float32
}

type PipelineViewportStateCreateInfo struct {
	SType       StructureType
	PNext       uintptr
	Viewports   []Viewport
	Scissors    []Rect2D
}

type PipelineRasterizationStateCreateInfo struct {
	SType                   StructureType
	PNext                   uintptr
	DepthClampEnable        bool
	RasterizerDiscardEnable bool
	PolygonMode             PolygonMode
	CullMode                CullModeFlags
	FrontFace               FrontFace
	DepthBiasEnable         bool
	DepthBiasConstantFactor float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

type PipelineMultisampleStateCreateInfo struct {
	SType                StructureType
	PNext                uintptr
	RasterizationSamples SampleCountFlagBits
	SampleShadingEnable  bool
	MinSampleShading     float32
}

type StencilOpState struct {
	FailOp, PassOp, DepthFailOp uint32
	CompareOp                   CompareOp
	CompareMask, WriteMask      uint32
	Reference                   uint32
}

type PipelineDepthStencilStateCreateInfo struct {
	SType                 StructureType
	PNext                 uintptr
	DepthTestEnable       bool
	DepthWriteEnable      bool
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable bool
	StencilTestEnable     bool
	Front, Back           StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

type PipelineColorBlendAttachmentState struct {
	BlendEnable         bool
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	ColorWriteMask      ColorComponentFlags
}

type PipelineColorBlendStateCreateInfo struct {
	SType           StructureType
	PNext           uintptr
	LogicOpEnable   bool
	Attachments     []PipelineColorBlendAttachmentState
	BlendConstants  [4]float32
}

type PipelineDynamicStateCreateInfo struct {
	SType            StructureType
	PNext            uintptr
	DynamicStates    []uint32
}

type PushConstantRange struct {
	StageFlags ShaderStageFlags
	Offset     uint32
	Size       uint32
}

type PipelineLayoutCreateInfo struct {
	SType               StructureType
	PNext               uintptr
	SetLayouts          []DescriptorSetLayout
	PushConstantRanges  []PushConstantRange
}

type GraphicsPipelineCreateInfo struct {
	SType               StructureType
	PNext               uintptr
	Stages              []PipelineShaderStageCreateInfo
	VertexInputState    *PipelineVertexInputStateCreateInfo
	InputAssemblyState  *PipelineInputAssemblyStateCreateInfo
	ViewportState       *PipelineViewportStateCreateInfo
	RasterizationState  *PipelineRasterizationStateCreateInfo
	MultisampleState    *PipelineMultisampleStateCreateInfo
	DepthStencilState   *PipelineDepthStencilStateCreateInfo
	ColorBlendState     *PipelineColorBlendStateCreateInfo
	DynamicState        *PipelineDynamicStateCreateInfo
	Layout              PipelineLayout
	RenderPass          RenderPass
	Subpass             uint32
	BasePipelineHandle  Pipeline
}

type ComputePipelineCreateInfo struct {
	SType  StructureType
	PNext  uintptr
	Stage  PipelineShaderStageCreateInfo
	Layout PipelineLayout
}

type RayTracingShaderGroupCreateInfoKHR struct {
	SType              StructureType
	PNext              uintptr
	Type               RayTracingShaderGroupTypeKHR
	GeneralShader      uint32
	ClosestHitShader   uint32
	AnyHitShader       uint32
	IntersectionShader uint32
}

type RayTracingPipelineCreateInfoKHR struct {
	SType             StructureType
	PNext             uintptr
	Stages            []PipelineShaderStageCreateInfo
	Groups            []RayTracingShaderGroupCreateInfoKHR
	MaxPipelineRayRecursionDepth uint32
	Layout            PipelineLayout
}

type DescriptorSetLayoutBinding struct {
	Binding            uint32
	DescriptorType     DescriptorType
	DescriptorCount    uint32
	StageFlags         ShaderStageFlags
}

type DescriptorSetLayoutBindingFlagsCreateInfo struct {
	SType         StructureType
	PNext         uintptr
	BindingFlags  []DescriptorBindingFlags
}

type DescriptorSetLayoutCreateInfo struct {
	SType    StructureType
	PNext    uintptr
	Flags    DescriptorSetLayoutCreateFlags
	Bindings []DescriptorSetLayoutBinding
}

type DescriptorPoolSize struct {
	Type            DescriptorType
	DescriptorCount uint32
}

type DescriptorPoolCreateInfo struct {
	SType       StructureType
	PNext       uintptr
	Flags       DescriptorPoolCreateFlags
	MaxSets     uint32
	PoolSizes   []DescriptorPoolSize
}

type DescriptorSetVariableDescriptorCountAllocateInfo struct {
	SType              StructureType
	PNext              uintptr
	DescriptorCounts   []uint32
}

type DescriptorSetAllocateInfo struct {
	SType              StructureType
	PNext              uintptr
	DescriptorPool     DescriptorPool
	SetLayouts         []DescriptorSetLayout
}

type DescriptorBufferInfo struct {
	Buffer Buffer
	Offset uint64
	Range  uint64
}

type DescriptorImageInfo struct {
	Sampler     Sampler
	ImageView   ImageView
	ImageLayout ImageLayout
}

type WriteDescriptorSet struct {
	SType             StructureType
	PNext             uintptr
	DstSet            DescriptorSet
	DstBinding        uint32
	DstArrayElement   uint32
	DescriptorCount   uint32
	DescriptorType    DescriptorType
	ImageInfo         []DescriptorImageInfo
	BufferInfo        []DescriptorBufferInfo
}

// WriteDescriptorSetAccelerationStructureKHR chains onto WriteDescriptorSet's
// PNext to supply the acceleration-structure handles a
// VK_DESCRIPTOR_TYPE_ACCELERATION_STRUCTURE_KHR write needs; there is no
// ImageInfo/BufferInfo slot for this descriptor type.
type WriteDescriptorSetAccelerationStructureKHR struct {
	SType                      StructureType
	PNext                      uintptr
	AccelerationStructureCount uint32
	AccelerationStructures     []AccelerationStructure
}

type AttachmentDescription struct {
	Format         Format
	Samples        SampleCountFlagBits
	LoadOp         AttachmentLoadOp
	StoreOp        AttachmentStoreOp
	StencilLoadOp  AttachmentLoadOp
	StencilStoreOp AttachmentStoreOp
	InitialLayout  ImageLayout
	FinalLayout    ImageLayout
}

type AttachmentReference struct {
	Attachment uint32
	Layout     ImageLayout
}

type SubpassDescription struct {
	PipelineBindPoint    PipelineBindPoint
	InputAttachments     []AttachmentReference
	ColorAttachments     []AttachmentReference
	DepthStencilAttachment *AttachmentReference
}

type SubpassDependency struct {
	SrcSubpass    uint32
	DstSubpass    uint32
	SrcStageMask  PipelineStageFlags
	DstStageMask  PipelineStageFlags
	SrcAccessMask AccessFlags
	DstAccessMask AccessFlags
}

type RenderPassCreateInfo struct {
	SType        StructureType
	PNext        uintptr
	Attachments  []AttachmentDescription
	Subpasses    []SubpassDescription
	Dependencies []SubpassDependency
}

type FramebufferAttachmentImageInfo struct {
	SType       StructureType
	PNext       uintptr
	Usage       ImageUsageFlags
	Width       uint32
	Height      uint32
	LayerCount  uint32
	ViewFormats []Format
}

type FramebufferAttachmentsCreateInfo struct {
	SType       StructureType
	PNext       uintptr
	Attachments []FramebufferAttachmentImageInfo
}

type FramebufferCreateInfo struct {
	SType       StructureType
	PNext       uintptr
	Flags       FramebufferCreateFlags
	RenderPass  RenderPass
	Attachments []ImageView
	Width       uint32
	Height      uint32
	Layers      uint32
}

type CommandPoolCreateInfo struct {
	SType            StructureType
	PNext            uintptr
	Flags            uint32
	QueueFamilyIndex uint32
}

type CommandBufferAllocateInfo struct {
	SType              StructureType
	PNext              uintptr
	CommandPool        CommandPool
	Level              uint32
	CommandBufferCount uint32
}

type CommandBufferBeginInfo struct {
	SType StructureType
	PNext uintptr
	Flags uint32
}

type SubmitInfo struct {
	SType                StructureType
	PNext                uintptr
	WaitSemaphores       []Semaphore
	WaitDstStageMask     []PipelineStageFlags
	CommandBuffers       []CommandBuffer
	SignalSemaphores     []Semaphore
}

type PresentInfoKHR struct {
	SType          StructureType
	PNext          uintptr
	WaitSemaphores []Semaphore
	Swapchains     []SwapchainKHR
	ImageIndices   []uint32
}

type SurfaceCapabilitiesKHR struct {
	MinImageCount           uint32
	MaxImageCount           uint32
	CurrentExtent           Extent2D
	MinImageExtent          Extent2D
	MaxImageExtent          Extent2D
	MaxImageArrayLayers     uint32
	SupportedCompositeAlpha CompositeAlphaFlagsKHR
	CurrentTransform        uint32
	SupportedTransforms     uint32
	SupportedUsageFlags     ImageUsageFlags
}

type SurfaceFormatKHR struct {
	Format     Format
	ColorSpace ColorSpaceKHR
}

type SwapchainCreateInfoKHR struct {
	SType            StructureType
	PNext            uintptr
	Surface          SurfaceKHR
	MinImageCount    uint32
	ImageFormat      Format
	ImageColorSpace  ColorSpaceKHR
	ImageExtent      Extent2D
	ImageArrayLayers uint32
	ImageUsage       ImageUsageFlags
	PreTransform     uint32
	CompositeAlpha   CompositeAlphaFlagsKHR
	PresentMode      PresentModeKHR
	Clipped          bool
	OldSwapchain     SwapchainKHR
}

type FenceCreateInfo struct {
	SType StructureType
	PNext uintptr
	Flags uint32
}

type SemaphoreCreateInfo struct {
	SType StructureType
	PNext uintptr
	Flags uint32
}

type MemoryBarrier struct {
	SType         StructureType
	PNext         uintptr
	SrcAccessMask AccessFlags
	DstAccessMask AccessFlags
}

type BufferMemoryBarrier struct {
	SType               StructureType
	PNext               uintptr
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Buffer              Buffer
	Offset              uint64
	Size                uint64
}

type ImageMemoryBarrier struct {
	SType               StructureType
	PNext               uintptr
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	OldLayout           ImageLayout
	NewLayout           ImageLayout
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               Image
	SubresourceRange    ImageSubresourceRange
}

type BufferCopy struct {
	SrcOffset, DstOffset, Size uint64
}

type BufferImageCopy struct {
	BufferOffset      uint64
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       Offset3D
	ImageExtent       Extent3D
}

type ImageBlit struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffsets     [2]Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffsets     [2]Offset3D
}

type ClearColorValue struct {
	Float32 [4]float32
}

type ClearDepthStencilValue struct {
	Depth   float32
	Stencil uint32
}

type ClearValue struct {
	Color        ClearColorValue
	DepthStencil ClearDepthStencilValue
}

type RenderPassBeginInfo struct {
	SType       StructureType
	PNext       uintptr
	RenderPass  RenderPass
	Framebuffer Framebuffer
	RenderArea  Rect2D
	ClearValues []ClearValue
}

type RenderPassAttachmentBeginInfo struct {
	SType       StructureType
	PNext       uintptr
	Attachments []ImageView
}

type BufferDeviceAddressInfo struct {
	SType  StructureType
	PNext  uintptr
	Buffer Buffer
}

type AccelerationStructureGeometryTrianglesDataKHR struct {
	VertexFormat  Format
	VertexData    uint64
	VertexStride  uint64
	MaxVertex     uint32
	IndexType     IndexType
	IndexData     uint64
	TransformData uint64
}

type AccelerationStructureGeometryInstancesDataKHR struct {
	ArrayOfPointers bool
	Data            uint64
}

type AccelerationStructureGeometryDataKHR struct {
	Triangles AccelerationStructureGeometryTrianglesDataKHR
	Instances AccelerationStructureGeometryInstancesDataKHR
}

type AccelerationStructureGeometryKHR struct {
	SType        StructureType
	PNext        uintptr
	GeometryType GeometryTypeKHR
	Geometry     AccelerationStructureGeometryDataKHR
	Flags        GeometryFlagsKHR
}

type AccelerationStructureBuildGeometryInfoKHR struct {
	SType                     StructureType
	PNext                     uintptr
	Type                      AccelerationStructureTypeKHR
	Flags                     BuildAccelerationStructureFlagsKHR
	Mode                      uint32
	SrcAccelerationStructure  AccelerationStructure
	DstAccelerationStructure  AccelerationStructure
	Geometries                []AccelerationStructureGeometryKHR
	ScratchData                uint64
}

type AccelerationStructureBuildRangeInfoKHR struct {
	PrimitiveCount  uint32
	PrimitiveOffset uint32
	FirstVertex     uint32
	TransformOffset uint32
}

type AccelerationStructureBuildSizesInfoKHR struct {
	SType                     StructureType
	PNext                     uintptr
	AccelerationStructureSize uint64
	UpdateScratchSize         uint64
	BuildScratchSize          uint64
}

type AccelerationStructureCreateInfoKHR struct {
	SType  StructureType
	PNext  uintptr
	Buffer Buffer
	Offset uint64
	Size   uint64
	Type   AccelerationStructureTypeKHR
}

type AccelerationStructureInstanceKHR struct {
	Transform                     [12]float32
	InstanceCustomIndexAndMask    uint32
	InstanceShaderBindingTableRecordOffsetAndFlags uint32
	AccelerationStructureReference uint64
}

type StridedDeviceAddressRegionKHR struct {
	DeviceAddress uint64
	Stride        uint64
	Size          uint64
}

type DebugUtilsMessengerCreateInfoEXT struct {
	SType           StructureType
	PNext           uintptr
	MessageSeverity DebugUtilsMessageSeverityFlagsEXT
	MessageType     DebugUtilsMessageTypeFlagsEXT
}

type DebugUtilsLabelEXT struct {
	SType      StructureType
	PNext      uintptr
	PLabelName string
	Color      [4]float32
}

type DebugUtilsObjectNameInfoEXT struct {
	SType        StructureType
	PNext        uintptr
	ObjectType   uint32
	ObjectHandle uint64
	PObjectName  string
}
