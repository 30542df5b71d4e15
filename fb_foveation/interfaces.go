package fb_foveation

//go:generate mockgen -source interfaces.go -destination mocks_test.go -package fb_foveation

import (
	"github.com/vkngwrapper/xrfoveation/xr"
)

// Driver exposes the runtime entry points of XR_FB_foveation once they have been bound to an
// instance
type Driver interface {
	CreateFoveationProfile(session xr.Session, createInfo FoveationProfileCreateInfo) (xr.FoveationProfile, xr.Result)
	DestroyFoveationProfile(profile xr.FoveationProfile) xr.Result
}

// Runtime is the part of the host's runtime state that profile updates read
type Runtime interface {
	Session() xr.Session
	// ColorSwapchain returns the main color swapchain, or xr.NullSwapchain if it has not been
	// created yet
	ColorSwapchain() xr.Swapchain
	// ResultString returns the runtime's description of a result code
	ResultString(result xr.Result) string
}

// SwapchainUpdater pushes state into an existing swapchain. It is normally provided by
// fb_swapchain_update_state.Extension.
type SwapchainUpdater interface {
	IsEnabled() bool
	// UpdateSwapchain returns the runtime's result. The update counts as failed when either the
	// result is a failure or the error is non-nil.
	UpdateSwapchain(swapchain xr.Swapchain, state xr.Options) (xr.Result, error)
}
