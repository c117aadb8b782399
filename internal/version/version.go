package version

// Version is stamped by the release workflow.
var Version = "0.2.0"
