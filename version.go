package notia

// Version is overridden at build time via -ldflags "-X github.com/aretw0/notia.Version=...".
var Version = "dev"
