package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, storage failure)
	ExitConfigError = 2 // Configuration error (bad config file, bad log level)
	ExitDataError   = 3 // Data error (unknown building, duplicate name, invalid field)
)
