package fb_foveation

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/xrfoveation/xr"
	"golang.org/x/exp/slog"
)

// UpdateProfile builds a foveation profile from the current settings, submits it to the main
// color swapchain and destroys it again. The swapchain keeps the submitted state.
//
// ctx must belong to the render thread; anything else is a programming error and panics. The
// call does nothing while the extension is disabled or before the swapchain exists. Runtime
// failures are logged and leave the previously submitted state in effect.
func (e *Extension) UpdateProfile(ctx context.Context) {
	if !e.renderThread.IsCurrent(ctx) {
		panic(errors.AssertionFailedf("Extension::UpdateProfile must be called from the render thread"))
	}

	if !e.IsEnabled() || e.driver == nil {
		return
	}

	swapchain := e.runtime.ColorSwapchain()
	if swapchain == xr.NullSwapchain {
		// Called again from OnMainSwapchainsCreated
		return
	}

	e.settingsMutex.RLock()
	levelInfo := FoveationLevelProfileCreateInfo{
		Level:          e.foveationLevel,
		VerticalOffset: 0,
		Dynamic:        e.foveationDynamic,
	}
	e.settingsMutex.RUnlock()

	e.logger.Debug("Extension::UpdateProfile",
		slog.String("FoveationLevel", levelInfo.Level.String()),
		slog.String("FoveationDynamic", levelInfo.Dynamic.String()))

	createInfo := FoveationProfileCreateInfo{
		NextOptions: xr.NextOptions{Next: levelInfo},
	}

	profile, result := e.driver.CreateFoveationProfile(e.runtime.Session(), createInfo)
	if result.Failed() {
		e.logger.Error("unable to create the foveation profile", slog.String("result", e.runtime.ResultString(result)))
		return
	}

	result, err := e.swapchainUpdater.UpdateSwapchain(swapchain, SwapchainStateFoveation{Profile: profile})
	if err != nil || result.Failed() {
		// The profile still has to be destroyed
		e.logger.Error("unable to update the swapchain",
			slog.String("result", e.runtime.ResultString(result)),
			slog.Any("error", err))
	} else {
		e.settingsMutex.Lock()
		e.appliedProfile = &levelInfo
		e.settingsMutex.Unlock()
	}

	result = e.driver.DestroyFoveationProfile(profile)
	if result.Failed() {
		e.logger.Error("unable to destroy the foveation profile", slog.String("result", e.runtime.ResultString(result)))
	}
}

// AppliedProfile returns the level settings of the last profile the swapchain accepted, if any
func (e *Extension) AppliedProfile() (FoveationLevelProfileCreateInfo, bool) {
	e.settingsMutex.RLock()
	defer e.settingsMutex.RUnlock()

	if e.appliedProfile == nil {
		return FoveationLevelProfileCreateInfo{}, false
	}

	return *e.appliedProfile, true
}
