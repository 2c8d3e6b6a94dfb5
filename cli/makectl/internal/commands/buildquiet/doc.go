// Package buildquiet implements the "build_quiet <profile>" command. It builds
// one profile, keeps the tool's stderr out of the way, and only shows it when
// the build fails.
package buildquiet
