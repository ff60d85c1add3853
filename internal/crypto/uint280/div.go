package uint280

// Div returns the quotient and remainder of a / b using binary long division.
//
// The divisor is aligned with the dividend's top bit and walked back down one
// bit per step, so the loop runs NBits(a) - NBits(b) + 1 times.
func (a Uint) Div(b Uint) (q, r Uint, err error) {
	if b.IsZero() {
		return Uint{}, Uint{}, ErrDivisionByZero
	}
	if a.Lt(b) {
		return Uint{}, a, nil
	}

	bitDiff := a.NBits() - b.NBits()
	d := b.Shl(uint(bitDiff))
	r = a
	for i := 0; i <= bitDiff; i++ {
		diff, borrow := r.Sbb(d)
		q, _ = q.Shl1()
		if borrow == 0 {
			r = diff
			q[0] |= 1
		}
		d, _ = d.Shr1()
	}
	return q, r, nil
}
