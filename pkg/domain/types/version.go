package types

// Version is the application version. Overwritten at build time with -ldflags.
var Version = "dev"
