package app

import (
	"os"
	"strconv"
	"sync"
)

// TestModeEnv names the variable that marks a test binary.
const TestModeEnv = "EMPLOYEES_TEST_MODE"

var testMode = sync.OnceValue(func() bool {
	on, err := strconv.ParseBool(os.Getenv(TestModeEnv))
	return err == nil && on
})

// InTestMode reports whether the process runs under tests. main exits early and the
// router skips the access log. The variable is read once.
func InTestMode() bool {
	return testMode()
}
