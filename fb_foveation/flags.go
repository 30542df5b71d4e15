package fb_foveation

import (
	"fmt"

	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/xrfoveation/xr"
)

// FoveationLevel is the amount of peripheral shading reduction applied by a foveation profile
type FoveationLevel int32

const (
	FoveationLevelNone   FoveationLevel = 0
	FoveationLevelLow    FoveationLevel = 1
	FoveationLevelMedium FoveationLevel = 2
	FoveationLevelHigh   FoveationLevel = 3

	// defaultFoveationLevel is kept when the configured level is out of range
	defaultFoveationLevel FoveationLevel = FoveationLevelLow
)

var foveationLevelNames = map[FoveationLevel]string{
	FoveationLevelNone:   "FoveationLevelNone",
	FoveationLevelLow:    "FoveationLevelLow",
	FoveationLevelMedium: "FoveationLevelMedium",
	FoveationLevelHigh:   "FoveationLevelHigh",
}

func (l FoveationLevel) String() string {
	name, ok := foveationLevelNames[l]
	if !ok {
		return fmt.Sprintf("FoveationLevel(%d)", int32(l))
	}
	return name
}

// IsValid reports whether the level is one of the four levels the runtime understands
func (l FoveationLevel) IsValid() bool {
	return l >= FoveationLevelNone && l <= FoveationLevelHigh
}

// FoveationDynamic controls whether the runtime may lower the foveation level on its own
// when GPU load allows it
type FoveationDynamic int32

const (
	FoveationDynamicDisabled     FoveationDynamic = 0
	FoveationDynamicLevelEnabled FoveationDynamic = 1
)

func (d FoveationDynamic) String() string {
	switch d {
	case FoveationDynamicDisabled:
		return "FoveationDynamicDisabled"
	case FoveationDynamicLevelEnabled:
		return "FoveationDynamicLevelEnabled"
	default:
		return fmt.Sprintf("FoveationDynamic(%d)", int32(d))
	}
}

// FoveationDynamicFromBool maps the project setting onto the runtime's enum
func FoveationDynamicFromBool(dynamic bool) FoveationDynamic {
	if dynamic {
		return FoveationDynamicLevelEnabled
	}
	return FoveationDynamicDisabled
}

// SwapchainCreateFoveationFlags select the foveation mechanism a swapchain is created with
type SwapchainCreateFoveationFlags int32

var swapchainCreateFoveationFlagsMapping = common.NewFlagStringMapping[SwapchainCreateFoveationFlags]()

func (f SwapchainCreateFoveationFlags) Register(str string) {
	swapchainCreateFoveationFlagsMapping.Register(f, str)
}
func (f SwapchainCreateFoveationFlags) String() string {
	return swapchainCreateFoveationFlagsMapping.FlagsToString(f)
}

const (
	// SwapchainCreateFoveationScaledBin requests tiled, scaled-bin foveation. It is used by
	// OpenGL-family backends.
	SwapchainCreateFoveationScaledBin SwapchainCreateFoveationFlags = 1 << iota
	// SwapchainCreateFoveationFragmentDensityMap requests a fragment density map attachment. It
	// is used by the Vulkan backend.
	SwapchainCreateFoveationFragmentDensityMap
)

// SwapchainStateFoveationFlags are reserved by the runtime and must be 0
type SwapchainStateFoveationFlags int32

// CreateFlags indicate specific extension behaviors to activate or deactivate
type CreateFlags int32

var extensionCreateFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	extensionCreateFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return extensionCreateFlagsMapping.FlagsToString(f)
}

const (
	// ExtensionCreateExternallySynchronized disables the mutex guarding the foveation settings.
	// The consumer must then guarantee that settings are only read and written from one
	// goroutine at a time, normally the render thread.
	ExtensionCreateExternallySynchronized CreateFlags = 1 << iota
)

func init() {
	SwapchainCreateFoveationScaledBin.Register("SwapchainCreateFoveationScaledBin")
	SwapchainCreateFoveationFragmentDensityMap.Register("SwapchainCreateFoveationFragmentDensityMap")

	ExtensionCreateExternallySynchronized.Register("ExtensionCreateExternallySynchronized")
}

// swapchainCreateFlagsForBackend picks the foveation mechanism matching the rendering driver.
// Unrecognized drivers get no flags.
func swapchainCreateFlagsForBackend(backend xr.GraphicsBackend) SwapchainCreateFoveationFlags {
	switch backend {
	case xr.GraphicsBackendOpenGL3:
		return SwapchainCreateFoveationScaledBin
	case xr.GraphicsBackendVulkan:
		return SwapchainCreateFoveationFragmentDensityMap
	default:
		return 0
	}
}
