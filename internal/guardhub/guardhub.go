// Package guardhub invokes the guardrail hub CLI for configuration and
// the per-guardrail install/uninstall hooks. Hooks receive the
// original hub URI, never the resolved package name.
package guardhub

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/fbkclanna/pmguard/internal/pm"
)

const binary = "guardhub"

// Configure invokes guardhub configure directly. Going through pm run
// would try to sync hub packages that are unreachable until
// configuration completes.
func Configure(args ...string) error {
	cmd := exec.Command(binary, append([]string{"configure"}, args...)...) //nolint:gosec // fixed binary, user-provided passthrough args
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("unable to invoke %s; install it with 'pm tool install %s'", binary, binary)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s configure exited with code %d", binary, exitErr.ExitCode())
		}
		return fmt.Errorf("%s configure: %w", binary, err)
	}
	return nil
}

// Install runs the post-install hook for one guardrail.
func Install(hubURI string) error {
	return pm.Run(binary, "install", hubURI)
}

// Uninstall runs the pre-uninstall hook for one guardrail.
func Uninstall(hubURI string) error {
	return pm.Run(binary, "uninstall", hubURI)
}
