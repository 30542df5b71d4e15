// Package fb_swapchain_update_state wraps XR_FB_swapchain_update_state, which lets other
// extensions push new state, such as a foveation profile, into an existing swapchain.
package fb_swapchain_update_state

//go:generate mockgen -source extension.go -destination mocks_test.go -package fb_swapchain_update_state

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/xrfoveation/xr"
	"golang.org/x/exp/slog"
)

const ExtensionName string = "XR_FB_swapchain_update_state"

// Driver exposes the runtime entry points of the extension once they have been bound to an instance
type Driver interface {
	UpdateSwapchain(swapchain xr.Swapchain, state xr.Options) xr.Result
}

// Loader binds a Driver to a newly-created instance
type Loader func(instance xr.Instance) (Driver, error)

type Extension struct {
	logger *slog.Logger
	loader Loader

	extensionActive bool
	driver          Driver
}

func New(logger *slog.Logger, loader Loader) (*Extension, error) {
	if logger == nil {
		return nil, errors.New("fb_swapchain_update_state.New requires a logger")
	}

	return &Extension{
		logger: logger,
		loader: loader,
	}, nil
}

// RequestedExtensions returns the slots the host fills during instance negotiation
func (e *Extension) RequestedExtensions() map[string]*bool {
	return map[string]*bool{
		ExtensionName: &e.extensionActive,
	}
}

func (e *Extension) OnInstanceCreated(instance xr.Instance) {
	e.logger.Debug("Extension::OnInstanceCreated")

	if !e.extensionActive || e.loader == nil {
		return
	}

	driver, err := e.loader(instance)
	if err != nil {
		e.logger.Error("unable to bind XR_FB_swapchain_update_state entry points", slog.Any("error", err))
		return
	}

	e.driver = driver
}

func (e *Extension) OnInstanceDestroyed() {
	e.logger.Debug("Extension::OnInstanceDestroyed")

	e.extensionActive = false
	e.driver = nil
}

// IsEnabled is true when the extension was negotiated and its entry points are bound
func (e *Extension) IsEnabled() bool {
	return e.extensionActive && e.driver != nil
}

// UpdateSwapchain submits a state descriptor to a swapchain. The runtime's result is always
// returned; the error is non-nil when the result is a failure.
func (e *Extension) UpdateSwapchain(swapchain xr.Swapchain, state xr.Options) (xr.Result, error) {
	if !e.IsEnabled() {
		return xr.ErrorFunctionUnsupported, errors.New("XR_FB_swapchain_update_state is not enabled")
	}
	if swapchain == xr.NullSwapchain {
		return xr.ErrorHandleInvalid, errors.New("attempted to update a null swapchain")
	}
	if state == nil {
		return xr.ErrorValidationFailure, errors.New("attempted to update a swapchain without a state descriptor")
	}

	result := e.driver.UpdateSwapchain(swapchain, state)
	return result, result.ToError()
}
