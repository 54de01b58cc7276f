// Package hwid derives a stable hardware identifier used to bind an account
// to one machine. Collection is OS-specific; every path degrades to a
// deterministic hostname-based UUID so the engine always has an id to work
// with.
package hwid

import (
	"os"
	"strings"

	"github.com/google/uuid"
)

// FailedID is returned when no identifier source is available at all,
// including the hostname.
const FailedID = "HWID_FAIL"

// Provider yields the hardware id of the current machine.
type Provider interface {
	ID() string
}

// Static is a fixed-id Provider for tests.
type Static string

func (s Static) ID() string { return string(s) }

// SystemProvider reads the machine identity from the operating system:
// /etc/machine-id on Linux, IOPlatformUUID on macOS, the Cryptography
// MachineGuid on Windows. The id is computed once and reused.
type SystemProvider struct {
	id string
}

func NewSystemProvider() *SystemProvider {
	return &SystemProvider{id: collect()}
}

func (p *SystemProvider) ID() string { return p.id }

func collect() string {
	if id := strings.TrimSpace(machineID()); id != "" {
		return id
	}
	return fallbackID()
}

// fallbackID derives a name-based UUID from the hostname, matching the
// uuid5(NAMESPACE_DNS, hostname) scheme used by other client SDKs for this
// store.
func fallbackID() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return FailedID
	}
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(hostname)).String()
}
