package answer

import (
	"os"
	"strconv"
)

// Config holds the numeric comparison tolerances.
type Config struct {
	// AbsTolerance applies when |expected| < SmallValueThreshold.
	// Default: 0.01.
	AbsTolerance float64

	// RelTolerance is the allowed error as a fraction of |expected|
	// for everything else. Default: 0.001 (0.1%).
	RelTolerance float64

	// SmallValueThreshold separates absolute from relative comparison.
	// Default: 0.1.
	SmallValueThreshold float64
}

// DefaultConfig returns the standard tolerances.
func DefaultConfig() Config {
	return Config{
		AbsTolerance:        0.01,
		RelTolerance:        0.001,
		SmallValueThreshold: 0.1,
	}
}

// ConfigFromEnv reads overrides from environment variables:
//
//	MATHLAB_ABS_TOLERANCE, MATHLAB_REL_TOLERANCE, MATHLAB_SMALL_VALUE
//
// Unparseable or negative values keep the default.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	envFloat("MATHLAB_ABS_TOLERANCE", &cfg.AbsTolerance)
	envFloat("MATHLAB_REL_TOLERANCE", &cfg.RelTolerance)
	envFloat("MATHLAB_SMALL_VALUE", &cfg.SmallValueThreshold)
	return cfg
}

func envFloat(key string, dst *float64) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return
	}
	*dst = f
}
