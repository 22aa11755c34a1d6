package provision

import (
	"encoding/json"
	"strings"

	"gcssh/internal/errors"
)

// Instance is one remote VM record from the provider's listing. Instances are
// constructed once per run from a single JSON decode and never mutated;
// Zone and ExternalIP are pure derivations.
type Instance struct {
	// Name uniquely identifies the VM within a listing.
	Name string `json:"name"`

	// ZoneURL is the raw location reference as returned by the provider,
	// e.g. "https://www.googleapis.com/compute/v1/projects/p/zones/us-central1-a".
	ZoneURL string `json:"zone"`

	// NetworkInterfaces in provider order; may be empty for isolated VMs.
	NetworkInterfaces []NetworkInterface `json:"networkInterfaces"`
}

// NetworkInterface holds the external-access bindings of one interface.
type NetworkInterface struct {
	AccessConfigs []AccessConfig `json:"accessConfigs"`
}

// AccessConfig is a single external-address binding. NatIP is empty when the
// VM has no external-facing address configured on this binding.
type AccessConfig struct {
	NatIP string `json:"natIP"`
}

// Zone returns the zone name: the final '/'-delimited segment of ZoneURL.
// A value with no '/' is returned unchanged; this never errors.
func (i *Instance) Zone() string {
	if idx := strings.LastIndex(i.ZoneURL, "/"); idx >= 0 {
		return i.ZoneURL[idx+1:]
	}
	return i.ZoneURL
}

// ExternalIP returns the first non-empty natIP found scanning interfaces in
// order, then each interface's access configs in order. The first/primary
// interface is authoritative. Returns ("", false) when no config has one.
func (i *Instance) ExternalIP() (string, bool) {
	for _, iface := range i.NetworkInterfaces {
		for _, cfg := range iface.AccessConfigs {
			if cfg.NatIP != "" {
				return cfg.NatIP, true
			}
		}
	}
	return "", false
}

// Clone returns a deep copy so callers never alias back into a catalog.
func (i *Instance) Clone() Instance {
	out := Instance{
		Name:    i.Name,
		ZoneURL: i.ZoneURL,
	}
	if i.NetworkInterfaces != nil {
		out.NetworkInterfaces = make([]NetworkInterface, len(i.NetworkInterfaces))
		for idx, iface := range i.NetworkInterfaces {
			cp := NetworkInterface{}
			if iface.AccessConfigs != nil {
				cp.AccessConfigs = make([]AccessConfig, len(iface.AccessConfigs))
				copy(cp.AccessConfigs, iface.AccessConfigs)
			}
			out.NetworkInterfaces[idx] = cp
		}
	}
	return out
}

// DecodeInstances parses the listing command's JSON stdout into typed
// records. A malformed payload or a record without a name is a data-contract
// problem (DECODE), kept distinct from command-execution failures (LIST).
func DecodeInstances(data []byte) ([]Instance, error) {
	var instances []Instance
	if err := json.Unmarshal(data, &instances); err != nil {
		return nil, errors.Wrap(err, errors.ErrDecoding,
			"Instance listing didn't match the expected JSON shape",
			"Re-run with GCSSH_DEBUG=1 to inspect the raw output.")
	}

	for _, inst := range instances {
		if inst.Name == "" {
			return nil, errors.New(errors.ErrDecoding,
				"Instance listing contains a record without a name",
				"The gcloud output format may have changed; update gcssh.")
		}
	}

	return instances, nil
}
