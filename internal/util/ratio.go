package util

import "strconv"

// Ratio returns width:height reduced by their greatest common divisor,
// e.g. Ratio(1920, 1080) == "16:9".
// Signs are ignored. A zero side reduces to "1:0" or "0:1"; both zero give "0:0".
func Ratio(width, height int) string {
	w, h := abs(width), abs(height)
	r := gcd(w, h)
	if r == 0 {
		return "0:0"
	}
	return strconv.Itoa(w/r) + ":" + strconv.Itoa(h/r)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
