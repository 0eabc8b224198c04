// Package mix provides audio mixing and crossfading operations.
package mix

// DryWet performs a linear dry/wet mix between two signals.
// amount parameter: 0.0 = 100% dry, 1.0 = 100% wet
func DryWet(dry, wet, amount float32) float32 {
	return (1.0-amount)*dry + amount*wet
}

// ClampAmount limits a mix amount to [0, 1]. NaN maps to 0.
func ClampAmount(amount float32) float32 {
	if !(amount > 0) {
		return 0
	}
	if amount > 1 {
		return 1
	}
	return amount
}
