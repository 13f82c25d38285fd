package main

// Version is overwritten at build time with -ldflags "-X main.Version=...".
var Version = "dev"
