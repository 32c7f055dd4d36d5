package drive

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Mounter invokes an external helper command to make networked storage
// reachable at a local mount point. The helper is resolved once at
// construction; a Mounter without one degrades every Mount call to a
// console notice, so environments without the capability still run.
type Mounter struct {
	mountPoint string
	command    []string
}

// NewMounter creates a mounter for mountPoint. command is the helper
// invocation (binary plus arguments, whitespace separated); an empty
// command marks the capability unavailable.
func NewMounter(mountPoint, command string) *Mounter {
	return &Mounter{
		mountPoint: mountPoint,
		command:    strings.Fields(command),
	}
}

// Available reports whether a mount helper was configured.
func (m *Mounter) Available() bool {
	return len(m.command) > 0
}

// MountPoint returns the configured mount point path.
func (m *Mounter) MountPoint() string {
	return m.mountPoint
}

// Mount runs the helper command against the mount point. Missing capability
// or a missing mount point directory is a notice, not an error; only a
// failing helper invocation is reported to the caller, and the caller is
// expected to continue regardless.
func (m *Mounter) Mount(ctx context.Context) error {
	if !m.Available() {
		fmt.Println("drive mount helper is not configured; skipping mount.")
		return nil
	}

	if _, err := os.Stat(m.mountPoint); os.IsNotExist(err) {
		fmt.Printf("Mount point %s does not exist. Create the directory first or adjust the path.\n", m.mountPoint)
		return nil
	}

	fmt.Printf("Mounting drive at %s...\n", m.mountPoint)

	args := append(append([]string{}, m.command[1:]...), m.mountPoint)
	cmd := exec.CommandContext(ctx, m.command[0], args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("mount helper failed for %s: %w", m.mountPoint, err)
	}
	return nil
}
