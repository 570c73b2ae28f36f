package model

// Version is the pathseg release version, overridden at build time with
// -ldflags "-X pathseg/internal/model.Version=...".
var Version = "v0.3.1"
