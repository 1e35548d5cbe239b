package utils

import (
	"fmt"
	"os"
	"strconv"
)

type Env interface {
	uint | string
}

// GetEnv reads key from the environment, falling back to defaultVal, and
// converts it to T. A value that does not parse as T panics: binaries read
// their configuration once at startup and cannot run without it.
func GetEnv[T Env](key string, defaultVal string) T {
	var retVal T

	val, ok := os.LookupEnv(key)
	if !ok {
		val = defaultVal
	}

	switch ptr := any(&retVal).(type) {
	case *uint:
		parsedVal, err := strconv.ParseUint(val, 10, 32)
		if err != nil {
			panic(fmt.Sprintf("error while parsing env %s=%s", key, val))
		}

		*ptr = uint(parsedVal)
	case *string:
		*ptr = val
	}

	return retVal
}
