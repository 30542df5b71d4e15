package xr

// Handles are opaque values owned by the runtime. The zero value of each handle type is
// the runtime's null handle.

type Instance uintptr

type Session uintptr

type Swapchain uintptr

type FoveationProfile uintptr

const (
	NullInstance         Instance         = 0
	NullSession          Session          = 0
	NullSwapchain        Swapchain        = 0
	NullFoveationProfile FoveationProfile = 0
)

// GraphicsBackend is the rendering driver name selected by the host, e.g. "vulkan"
type GraphicsBackend string

const (
	GraphicsBackendOpenGL3 GraphicsBackend = "opengl3"
	GraphicsBackendVulkan  GraphicsBackend = "vulkan"
)

func (b GraphicsBackend) String() string {
	return string(b)
}
