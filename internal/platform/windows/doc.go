// Package windows provides Windows platform support: registry-backed
// application and association lookups, process start and activation, and
// packaged-app (AppX) activation through the shell activation manager.
// On other platforms the package compiles as a no-op stub.
package windows
