package loader

import "sync"

// defaultScanLimit bounds the module snapshot taken by a process-wide scan.
// Modules loaded beyond the limit are not searched.
const defaultScanLimit = 1024

var (
	scanMu    sync.RWMutex
	scanLimit = defaultScanLimit
)

// ScanLimit returns the maximum number of modules a process-wide scan
// inspects. It only affects platforms without a native search-all-modules
// primitive; the unix loader searches natively without a snapshot.
func ScanLimit() int {
	scanMu.RLock()
	defer scanMu.RUnlock()
	return scanLimit
}

// SetScanLimit adjusts the module snapshot capacity for process-wide scans.
// Values below 1 restore the default.
func SetScanLimit(n int) {
	scanMu.Lock()
	defer scanMu.Unlock()
	if n < 1 {
		n = defaultScanLimit
	}
	scanLimit = n
}
