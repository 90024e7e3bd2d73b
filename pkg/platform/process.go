package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessInfo describes a running process.
type ProcessInfo struct {
	PID        int
	PPID       int
	Name       string
	Executable string
	NumThreads int
	StartedAt  time.Time
}

// DescribeProcess collects information about the process with the given id.
// Fields the operating system refuses to report are left zero.
func DescribeProcess(ctx context.Context, pid int) (ProcessInfo, error) {
	p, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return ProcessInfo{}, fmt.Errorf("describe process %d: %w", pid, err)
	}

	info := ProcessInfo{PID: pid}
	if name, err := p.NameWithContext(ctx); err == nil {
		info.Name = name
	}
	if ppid, err := p.PpidWithContext(ctx); err == nil {
		info.PPID = int(ppid)
	}
	if exe, err := p.ExeWithContext(ctx); err == nil {
		info.Executable = exe
	}
	if n, err := p.NumThreadsWithContext(ctx); err == nil {
		info.NumThreads = int(n)
	}
	if ms, err := p.CreateTimeWithContext(ctx); err == nil {
		info.StartedAt = time.UnixMilli(ms)
	}
	return info, nil
}
