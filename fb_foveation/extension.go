// Package fb_foveation wraps XR_FB_foveation, XR_FB_foveation_configuration and
// XR_FB_foveation_vulkan. It requests a foveation-capable swapchain and keeps the swapchain's
// foveation profile in sync with the current level and dynamic-mode settings.
package fb_foveation

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/xrfoveation/config"
	"github.com/vkngwrapper/xrfoveation/internal/utils"
	"github.com/vkngwrapper/xrfoveation/renderthread"
	"github.com/vkngwrapper/xrfoveation/xr"
	"golang.org/x/exp/slog"
)

const (
	ExtensionName              string = "XR_FB_foveation"
	ConfigurationExtensionName string = "XR_FB_foveation_configuration"
	VulkanExtensionName        string = "XR_FB_foveation_vulkan"
)

// Loader binds a Driver to a newly-created instance
type Loader func(instance xr.Instance) (Driver, error)

// RenderThread is the designated rendering thread. It is satisfied by *renderthread.Thread.
type RenderThread interface {
	IsCurrent(ctx context.Context) bool
	Post(ctx context.Context, task renderthread.Task) error
}

// Dependencies are the objects owned by the host that the extension holds references to. The
// extension must not outlive them.
type Dependencies struct {
	// Runtime is required
	Runtime Runtime
	// RenderThread is required
	RenderThread RenderThread
	// SwapchainUpdater may be nil, in which case the extension is never enabled
	SwapchainUpdater SwapchainUpdater
	// Loader may be nil, in which case no profile can ever be created
	Loader Loader
}

// CreateOptions contains optional settings when creating the extension
type CreateOptions struct {
	Flags CreateFlags
}

type Extension struct {
	logger  *slog.Logger
	backend xr.GraphicsBackend

	runtime          Runtime
	renderThread     RenderThread
	swapchainUpdater SwapchainUpdater
	loader           Loader

	// settingsMutex also guards appliedProfile
	settingsMutex    utils.OptionalRWMutex
	foveationLevel   FoveationLevel
	foveationDynamic FoveationDynamic

	foveationActive     bool
	configurationActive bool
	vulkanActive        bool
	driver              Driver

	swapchainCreateInfo SwapchainCreateInfoFoveation

	appliedProfile *FoveationLevelProfileCreateInfo
}

// New creates the extension for the given rendering backend.
//
// settings - The project settings for the initial level and dynamic mode. A level outside of
// [FoveationLevelNone, FoveationLevelHigh] is ignored and FoveationLevelLow is used.
//
// deps - The host objects the extension works against
func New(logger *slog.Logger, backend xr.GraphicsBackend, settings config.FoveationSettings, deps Dependencies, options CreateOptions) (*Extension, error) {
	if logger == nil {
		return nil, errors.New("fb_foveation.New requires a logger")
	}
	if deps.Runtime == nil {
		return nil, errors.New("fb_foveation.Dependencies.Runtime was not provided")
	}
	if deps.RenderThread == nil {
		return nil, errors.New("fb_foveation.Dependencies.RenderThread was not provided")
	}

	extension := &Extension{
		logger:           logger,
		backend:          backend,
		runtime:          deps.Runtime,
		renderThread:     deps.RenderThread,
		swapchainUpdater: deps.SwapchainUpdater,
		loader:           deps.Loader,

		settingsMutex: utils.OptionalRWMutex{
			UseMutex: options.Flags&ExtensionCreateExternallySynchronized == 0,
		},
		foveationLevel:   defaultFoveationLevel,
		foveationDynamic: FoveationDynamicFromBool(settings.FoveationDynamic),

		swapchainCreateInfo: SwapchainCreateInfoFoveation{
			Flags: swapchainCreateFlagsForBackend(backend),
		},
	}

	level := FoveationLevel(settings.FoveationLevel)
	if int(level) == settings.FoveationLevel && level.IsValid() {
		extension.foveationLevel = level
	} else {
		logger.Warn("ignoring out of range foveation level",
			slog.Int("FoveationLevel", settings.FoveationLevel),
			slog.String("Default", defaultFoveationLevel.String()))
	}

	if extension.swapchainCreateInfo.Flags == 0 {
		logger.Warn("no foveation mechanism is known for the rendering backend", slog.String("Backend", backend.String()))
	}

	return extension, nil
}

// Backend returns the rendering backend the extension was created for
func (e *Extension) Backend() xr.GraphicsBackend {
	return e.backend
}

// RequestedExtensions returns the slots the host fills during instance negotiation.
// XR_FB_foveation_vulkan is only requested for the Vulkan backend.
func (e *Extension) RequestedExtensions() map[string]*bool {
	requested := map[string]*bool{
		ExtensionName:              &e.foveationActive,
		ConfigurationExtensionName: &e.configurationActive,
	}

	if e.backend == xr.GraphicsBackendVulkan {
		requested[VulkanExtensionName] = &e.vulkanActive
	}

	return requested
}

// OnInstanceCreated binds the runtime entry points when XR_FB_foveation was negotiated
func (e *Extension) OnInstanceCreated(instance xr.Instance) {
	e.logger.Debug("Extension::OnInstanceCreated")

	if !e.foveationActive {
		return
	}

	if e.loader == nil {
		e.logger.Warn("XR_FB_foveation is active but no entry point loader was provided")
		return
	}

	driver, err := e.loader(instance)
	if err != nil {
		e.logger.Error("unable to bind XR_FB_foveation entry points", slog.Any("error", err))
		return
	}

	e.driver = driver
}

// OnInstanceDestroyed disables the extension until the next instance negotiation
func (e *Extension) OnInstanceDestroyed() {
	e.logger.Debug("Extension::OnInstanceDestroyed")

	e.foveationActive = false
	e.configurationActive = false
	e.driver = nil

	e.settingsMutex.Lock()
	e.appliedProfile = nil
	e.settingsMutex.Unlock()
}

// IsEnabled reports whether swapchains should be created with foveation and profiles can be
// applied to them
func (e *Extension) IsEnabled() bool {
	enabled := e.foveationActive && e.configurationActive
	if e.backend == xr.GraphicsBackendVulkan {
		enabled = enabled && e.vulkanActive
	}

	return enabled && e.swapchainUpdater != nil && e.swapchainUpdater.IsEnabled()
}

// SwapchainCreateNext returns the descriptor chain to hand to swapchain creation. When the
// extension is enabled, its SwapchainCreateInfoFoveation is prepended to next; otherwise next
// is returned unchanged.
func (e *Extension) SwapchainCreateNext(next xr.Options) xr.Options {
	if !e.IsEnabled() {
		return next
	}

	// A chain that already carries a foveation descriptor would become a cycle
	if _, found := xr.FindInChain(next, xr.TypeSwapchainCreateInfoFoveationFB); found {
		e.logger.Warn("swapchain create chain already contains a foveation descriptor")
		return next
	}

	e.swapchainCreateInfo.Next = next
	return &e.swapchainCreateInfo
}

// OnMainSwapchainsCreated applies the current settings to the new swapchain. ctx must belong
// to the render thread.
func (e *Extension) OnMainSwapchainsCreated(ctx context.Context) {
	e.logger.Debug("Extension::OnMainSwapchainsCreated")

	e.UpdateProfile(ctx)
}

func (e *Extension) FoveationLevel() FoveationLevel {
	e.settingsMutex.RLock()
	defer e.settingsMutex.RUnlock()

	return e.foveationLevel
}

// SetFoveationLevel stores the level and applies it to the swapchain. If the extension is not
// ready yet, the level is applied once the swapchain is created.
func (e *Extension) SetFoveationLevel(ctx context.Context, level FoveationLevel) {
	e.logger.Debug("Extension::SetFoveationLevel", slog.String("FoveationLevel", level.String()))

	e.settingsMutex.Lock()
	e.foveationLevel = level
	e.settingsMutex.Unlock()

	e.requestProfileUpdate(ctx)
}

func (e *Extension) FoveationDynamic() FoveationDynamic {
	e.settingsMutex.RLock()
	defer e.settingsMutex.RUnlock()

	return e.foveationDynamic
}

// SetFoveationDynamic stores the dynamic mode and applies it to the swapchain. If the extension
// is not ready yet, the mode is applied once the swapchain is created.
func (e *Extension) SetFoveationDynamic(ctx context.Context, dynamic FoveationDynamic) {
	e.logger.Debug("Extension::SetFoveationDynamic", slog.String("FoveationDynamic", dynamic.String()))

	e.settingsMutex.Lock()
	e.foveationDynamic = dynamic
	e.settingsMutex.Unlock()

	e.requestProfileUpdate(ctx)
}

// requestProfileUpdate runs UpdateProfile directly when called from the render thread and
// queues it there otherwise
func (e *Extension) requestProfileUpdate(ctx context.Context) {
	if e.renderThread.IsCurrent(ctx) {
		e.UpdateProfile(ctx)
		return
	}

	if !e.IsEnabled() {
		return
	}

	err := e.renderThread.Post(ctx, e.UpdateProfile)
	if err != nil {
		e.logger.Warn("unable to queue a foveation profile update", slog.Any("error", err))
	}
}
