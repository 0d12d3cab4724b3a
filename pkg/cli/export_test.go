package cli

// Export unexported functions for testing
var RunForTest = run
