package rays3d

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// renderBytes estimates the allocation of one render: the ray array plus
// the framebuffer.
func renderBytes(width, height int) uint64 {
	n := uint64(width) * uint64(height)
	return n * uint64(unsafe.Sizeof(Ray{})+unsafe.Sizeof(uint32(0)))
}

// checkMemory refuses renders that cannot fit in available memory. Missing
// memory statistics are not an error.
func checkMemory(width, height int) error {
	need := renderBytes(width, height)
	vm, err := mem.VirtualMemory()
	if err != nil {
		DebugLogOnce("Memory stats unavailable: %v", err)
		return nil
	}
	if need > vm.Available {
		return fmt.Errorf("%w: %dx%d needs %d bytes, %d available", ErrInsufficientMemory, width, height, need, vm.Available)
	}
	DebugLog("Render needs %d bytes, %d available", need, vm.Available)
	return nil
}

// defaultWorkers is the number of logical CPUs.
func defaultWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return max(runtime.NumCPU(), 1)
	}
	return n
}
