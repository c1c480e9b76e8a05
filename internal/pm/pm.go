package pm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/fbkclanna/pmguard/internal/auth"
)

const binary = "pm"

// Index URLs injected into add/sync so the package manager can fetch
// guardrail packages from the authenticated hub index while everything
// else resolves against the default registry.
const (
	hubIndexHost     = "pkgs.guardhub.dev"
	defaultIndexURL  = "https://registry.pmlang.dev/simple"
	hubIndexTemplate = "https://__token__:%s@" + hubIndexHost + "/simple"
)

// IsInstalled reports whether the package manager is available on
// PATH.
func IsInstalled() bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

// Init runs pm init with the given passthrough arguments.
func Init(args ...string) error {
	return call(false, "init", args...)
}

// Add installs packages. When includeIndex is true the hub index flags
// are injected, which requires a configured hub token.
func Add(packages []string, includeIndex bool, extra ...string) error {
	args := append([]string{}, packages...)
	if includeIndex {
		flags, err := indexFlags()
		if err != nil {
			return err
		}
		args = append(args, flags...)
	}
	args = append(args, extra...)
	return call(true, "add", args...)
}

// Remove uninstalls packages.
func Remove(packages []string, extra ...string) error {
	args := append([]string{}, packages...)
	args = append(args, extra...)
	return call(true, "remove", args...)
}

// Sync updates the project environment to match the manifest.
func Sync(extra ...string) error {
	flags, err := indexFlags()
	if err != nil {
		return err
	}
	return call(true, "sync", append(flags, extra...)...)
}

// Run executes a command inside the project environment.
func Run(args ...string) error {
	return call(true, "run", args...)
}

// Call forwards an arbitrary pm subcommand with full console output.
func Call(command string, args ...string) error {
	return call(false, command, args...)
}

func indexFlags() ([]string, error) {
	token, err := auth.ResolveToken()
	if err != nil {
		return nil, err
	}
	return []string{
		"--index=" + fmt.Sprintf(hubIndexTemplate, token),
		"--default-index=" + defaultIndexURL,
	}, nil
}

// call invokes the package manager. Quiet mode appends --quiet and
// discards stdout; stderr always reaches the console.
func call(quiet bool, command string, args ...string) error {
	full := []string{command}
	if quiet {
		full = append(full, "--quiet")
	}
	full = append(full, args...)

	cmd := exec.Command(binary, full...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	if quiet {
		cmd.Stdout = io.Discard
	} else {
		cmd.Stdout = os.Stdout
	}

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("unable to invoke %s; ensure it is installed and available on PATH", binary)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s %s exited with code %d", binary, command, exitErr.ExitCode())
		}
		return fmt.Errorf("%s %s: %w", binary, command, err)
	}
	return nil
}
