package ui

// Waiting appends an animated ellipsis to msg: one dot for step 0, two for
// step 1, three for anything else. The driving loop cycles the step through
// 0,1,2; out-of-range values saturate at three dots.
func Waiting(msg string, step int) string {
	switch step {
	case 0:
		return msg + "."
	case 1:
		return msg + ".."
	default:
		return msg + "..."
	}
}
