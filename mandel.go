package mandel

// IterLimit is the fixed iteration cap for the renderer. Escape counts fit
// in one byte because every count is below this limit.
const IterLimit = 255

// EscapeTime reports how quickly the orbit of z = z*z + c leaves the
// bailout radius |z| = 2 (squared norm 4), giving up after limit
// iterations. The returned count is the number of completed updates
// before the squared norm exceeded 4; the check happens before the
// update, so a point whose orbit is already outside the radius at entry
// to iteration i escapes at i without performing that update.
func EscapeTime(c complex128, limit int) (count int, escaped bool) {
	z := complex(0, 0)
	for i := 0; i < limit; i++ {
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i, true
		}
		z = z*z + c
	}
	return 0, false
}
