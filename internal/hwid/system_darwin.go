package hwid

import (
	"os/exec"
	"strings"
)

// machineID extracts IOPlatformUUID from the IOKit registry.
func machineID() string {
	out, err := exec.Command("ioreg", "-rd1", "-c", "IOPlatformExpertDevice").Output()
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, "IOPlatformUUID") {
			continue
		}
		parts := strings.Split(line, `"`)
		if len(parts) >= 2 {
			return parts[len(parts)-2]
		}
	}
	return ""
}
