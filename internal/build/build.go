package build

// Version is set at build time with -ldflags "-X .../internal/build.Version=...".
var Version = "0.0.0"
