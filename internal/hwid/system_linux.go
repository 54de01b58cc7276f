package hwid

import "os"

// machineID reads the systemd machine id.
func machineID() string {
	data, err := os.ReadFile("/etc/machine-id")
	if err != nil {
		return ""
	}
	return string(data)
}
