// Package registry is the host side of extension negotiation. Extension wrappers register the
// capabilities they want, the registry fills their slots against what the runtime offers, then
// fans out the instance and swapchain lifecycle to every wrapper.
package registry

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/xrfoveation/xr"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// Wrapper is implemented by every extension wrapper
type Wrapper interface {
	// RequestedExtensions maps each extension name to the slot that receives whether it is enabled
	RequestedExtensions() map[string]*bool
	OnInstanceCreated(instance xr.Instance)
	OnInstanceDestroyed()
}

// SwapchainCreateInfoProvider is implemented by wrappers that contribute to swapchain creation
type SwapchainCreateInfoProvider interface {
	SwapchainCreateNext(next xr.Options) xr.Options
}

// SwapchainsCreatedListener is implemented by wrappers that act once the main swapchains exist
type SwapchainsCreatedListener interface {
	OnMainSwapchainsCreated(ctx context.Context)
}

type Registry struct {
	logger   *slog.Logger
	wrappers []Wrapper

	slots    *swiss.Map[string, []*bool]
	enabled  []string
	instance xr.Instance
}

func New(logger *slog.Logger) *Registry {
	return &Registry{
		logger: logger,
		slots:  swiss.NewMap[string, []*bool](8),
	}
}

// Register adds a wrapper. Wrappers can only be added before an instance is created.
func (r *Registry) Register(wrapper Wrapper) error {
	if wrapper == nil {
		return errors.New("attempted to register a nil extension wrapper")
	}
	if r.instance != xr.NullInstance {
		return errors.New("extension wrappers must be registered before the instance is created")
	}

	r.wrappers = append(r.wrappers, wrapper)
	return nil
}

// Negotiate fills every requested slot with whether its extension is in available and returns
// the sorted names of the extensions to enable on the instance
func (r *Registry) Negotiate(available []string) []string {
	r.logger.Debug("Registry::Negotiate", slog.Int("Available", len(available)))

	availableSet := swiss.NewMap[string, struct{}](uint32(len(available)) + 8)
	for _, name := range available {
		availableSet.Put(name, struct{}{})
	}

	r.slots = swiss.NewMap[string, []*bool](uint32(r.slots.Count()) + 8)
	for _, wrapper := range r.wrappers {
		for name, slot := range wrapper.RequestedExtensions() {
			existing, _ := r.slots.Get(name)
			r.slots.Put(name, append(existing, slot))
		}
	}

	r.enabled = r.enabled[:0]
	r.slots.Iter(func(name string, slots []*bool) bool {
		active := availableSet.Has(name)
		for _, slot := range slots {
			*slot = active
		}

		if active {
			r.enabled = append(r.enabled, name)
		} else {
			r.logger.Debug("  requested extension is not available", slog.String("Extension", name))
		}
		return false
	})
	slices.Sort(r.enabled)

	return slices.Clone(r.enabled)
}

// EnabledExtensions returns the sorted names chosen by the last Negotiate
func (r *Registry) EnabledExtensions() []string {
	return slices.Clone(r.enabled)
}

func (r *Registry) IsExtensionEnabled(name string) bool {
	_, found := slices.BinarySearch(r.enabled, name)
	return found
}

// InstanceCreated notifies every wrapper that the instance exists
func (r *Registry) InstanceCreated(instance xr.Instance) error {
	r.logger.Debug("Registry::InstanceCreated")

	if instance == xr.NullInstance {
		return errors.New("attempted to notify wrappers of a null instance")
	}
	if r.instance != xr.NullInstance {
		return errors.Newf("an instance is already active: %#x", uintptr(r.instance))
	}

	r.instance = instance
	for _, wrapper := range r.wrappers {
		wrapper.OnInstanceCreated(instance)
	}
	return nil
}

// InstanceDestroyed notifies every wrapper, in reverse registration order, that the instance is
// gone
func (r *Registry) InstanceDestroyed() {
	r.logger.Debug("Registry::InstanceDestroyed")

	if r.instance == xr.NullInstance {
		r.logger.Warn("instance destroyed without an active instance")
	}

	for i := len(r.wrappers) - 1; i >= 0; i-- {
		r.wrappers[i].OnInstanceDestroyed()
	}

	r.instance = xr.NullInstance
	r.enabled = r.enabled[:0]
}

// SwapchainCreateInfo returns base with the descriptors of every contributing wrapper chained
// in front of base's existing Next
func (r *Registry) SwapchainCreateInfo(base xr.SwapchainCreateInfo) xr.SwapchainCreateInfo {
	next := base.Next
	for _, wrapper := range r.wrappers {
		provider, ok := wrapper.(SwapchainCreateInfoProvider)
		if ok {
			next = provider.SwapchainCreateNext(next)
		}
	}

	base.Next = next

	r.logger.Debug("Registry::SwapchainCreateInfo", slog.Int("ChainLength", xr.ChainLength(base)))
	return base
}

// MainSwapchainsCreated notifies listening wrappers. ctx must belong to the render thread.
func (r *Registry) MainSwapchainsCreated(ctx context.Context) {
	r.logger.Debug("Registry::MainSwapchainsCreated")

	for _, wrapper := range r.wrappers {
		listener, ok := wrapper.(SwapchainsCreatedListener)
		if ok {
			listener.OnMainSwapchainsCreated(ctx)
		}
	}
}

// BuildStatusString returns a JSON description of the active instance and the negotiated extensions
func (r *Registry) BuildStatusString() string {
	writer := jwriter.NewWriter()

	json := writer.Object()
	json.Name("InstanceActive").Bool(r.instance != xr.NullInstance)
	json.Name("WrapperCount").Int(len(r.wrappers))

	requested := make([]string, 0, r.slots.Count())
	r.slots.Iter(func(name string, slots []*bool) bool {
		requested = append(requested, name)
		return false
	})
	slices.Sort(requested)

	extensions := json.Name("Extensions").Object()
	for _, name := range requested {
		extensions.Name(name).Bool(r.IsExtensionEnabled(name))
	}
	extensions.End()
	json.End()

	return string(writer.Bytes())
}
