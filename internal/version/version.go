package version

// Version is the application version, overridable at build time with
// -ldflags "-X tradingsim/internal/version.Version=...".
var Version = "1.0.0"
