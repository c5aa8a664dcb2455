package utils

import "fmt"

// SiUnits Formats number with a metric prefix, eg. 1.50 K
func SiUnits(number float64, decimals int) string {
	if number >= 1000000000000 {
		return fmt.Sprintf("%.*f T", decimals, number/1000000000000)
	} else if number >= 1000000000 {
		return fmt.Sprintf("%.*f G", decimals, number/1000000000)
	} else if number >= 1000000 {
		return fmt.Sprintf("%.*f M", decimals, number/1000000)
	} else if number >= 1000 {
		return fmt.Sprintf("%.*f K", decimals, number/1000)
	}

	return fmt.Sprintf("%.*f ", decimals, number)
}
