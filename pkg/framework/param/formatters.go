package param

import (
	"fmt"
	"strconv"
	"strings"
)

// PercentFormatter formats percentage values
func PercentFormatter(value float64) string {
	return fmt.Sprintf("%.0f%%", value)
}

// PercentParser parses percentage strings
func PercentParser(str string) (float64, error) {
	str = strings.TrimSuffix(strings.TrimSpace(str), "%")
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}

// FullScaleFormatter returns a formatter showing a raw code as a percentage
// of fullScale, e.g. a 10-bit knob at 512 shows as "50.0%".
func FullScaleFormatter(fullScale float64) func(float64) string {
	return func(value float64) string {
		if fullScale == 0 {
			return "0.0%"
		}
		return fmt.Sprintf("%.1f%%", value/fullScale*100)
	}
}

// FullScaleParser is the inverse of FullScaleFormatter
func FullScaleParser(fullScale float64) func(string) (float64, error) {
	return func(str string) (float64, error) {
		pct, err := PercentParser(str)
		if err != nil {
			return 0, err
		}
		return pct / 100 * fullScale, nil
	}
}
