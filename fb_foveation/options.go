package fb_foveation

import "github.com/vkngwrapper/xrfoveation/xr"

// SwapchainCreateInfoFoveation is chained into swapchain creation to request a foveation-capable
// swapchain
type SwapchainCreateInfoFoveation struct {
	Flags SwapchainCreateFoveationFlags

	xr.NextOptions
}

func (o SwapchainCreateInfoFoveation) StructureType() xr.StructureType {
	return xr.TypeSwapchainCreateInfoFoveationFB
}

// FoveationProfileCreateInfo is the head of the chain passed to Driver.CreateFoveationProfile
type FoveationProfileCreateInfo struct {
	xr.NextOptions
}

func (o FoveationProfileCreateInfo) StructureType() xr.StructureType {
	return xr.TypeFoveationProfileCreateInfoFB
}

// FoveationLevelProfileCreateInfo configures a fixed foveation level on a new profile
type FoveationLevelProfileCreateInfo struct {
	Level          FoveationLevel
	VerticalOffset float32
	Dynamic        FoveationDynamic

	xr.NextOptions
}

func (o FoveationLevelProfileCreateInfo) StructureType() xr.StructureType {
	return xr.TypeFoveationLevelProfileCreateInfoFB
}

// SwapchainStateFoveation is submitted to a swapchain to make it use Profile
type SwapchainStateFoveation struct {
	Flags   SwapchainStateFoveationFlags
	Profile xr.FoveationProfile

	xr.NextOptions
}

func (o SwapchainStateFoveation) StructureType() xr.StructureType {
	return xr.TypeSwapchainStateFoveationFB
}
