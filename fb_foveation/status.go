package fb_foveation

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/xrfoveation/xr"
)

// BuildStatusString returns a JSON description of the negotiated extensions, the current
// settings and the last profile applied to the swapchain
func (e *Extension) BuildStatusString() string {
	writer := jwriter.NewWriter()
	e.PrintStatus(&writer)
	return string(writer.Bytes())
}

// PrintStatus writes the same JSON object as BuildStatusString into an existing writer
func (e *Extension) PrintStatus(writer *jwriter.Writer) {
	json := writer.Object()
	defer json.End()

	json.Name("Backend").String(e.backend.String())
	json.Name("Enabled").Bool(e.IsEnabled())
	json.Name("DriverBound").Bool(e.driver != nil)

	extensions := json.Name("Extensions").Object()
	extensions.Name(ExtensionName).Bool(e.foveationActive)
	extensions.Name(ConfigurationExtensionName).Bool(e.configurationActive)
	if e.backend == xr.GraphicsBackendVulkan {
		extensions.Name(VulkanExtensionName).Bool(e.vulkanActive)
	}
	extensions.End()

	if e.swapchainCreateInfo.Flags != 0 {
		json.Name("SwapchainCreateFlags").String(e.swapchainCreateInfo.Flags.String())
	}

	json.Name("FoveationLevel").String(e.FoveationLevel().String())
	json.Name("FoveationDynamic").String(e.FoveationDynamic().String())

	if applied, ok := e.AppliedProfile(); ok {
		appliedJson := json.Name("AppliedProfile").Object()
		appliedJson.Name("FoveationLevel").String(applied.Level.String())
		appliedJson.Name("FoveationDynamic").String(applied.Dynamic.String())
		appliedJson.End()
	}
}
