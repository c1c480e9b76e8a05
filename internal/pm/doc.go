// Package pm wraps the external package manager CLI. It handles
// init/add/remove/sync invocations, hub index flag injection, and
// passthrough of forwarded subcommands without depending on other
// internal packages except auth.
package pm
