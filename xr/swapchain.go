package xr

// SwapchainUsageFlags describe how swapchain images will be used
type SwapchainUsageFlags uint64

const (
	SwapchainUsageColorAttachment        SwapchainUsageFlags = 0x00000001
	SwapchainUsageDepthStencilAttachment SwapchainUsageFlags = 0x00000002
	SwapchainUsageUnorderedAccess        SwapchainUsageFlags = 0x00000004
	SwapchainUsageTransferSrc            SwapchainUsageFlags = 0x00000008
	SwapchainUsageTransferDst            SwapchainUsageFlags = 0x00000010
	SwapchainUsageSampled                SwapchainUsageFlags = 0x00000020
)

// SwapchainCreateInfo is the head of the chain handed to the runtime when a swapchain is created.
// Extension wrappers contribute descriptors through its Next field.
type SwapchainCreateInfo struct {
	UsageFlags  SwapchainUsageFlags
	Format      int64
	SampleCount uint32
	Width       uint32
	Height      uint32
	FaceCount   uint32
	ArraySize   uint32
	MipCount    uint32

	NextOptions
}

func (o SwapchainCreateInfo) StructureType() StructureType {
	return TypeSwapchainCreateInfo
}
