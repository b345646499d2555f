package version

// Version is set at build time with -ldflags "-X github.com/bnema/bibbox-fbs/internal/version.Version=...".
var Version = "dev"
