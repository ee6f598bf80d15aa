package signal

// Invert returns -x.
func Invert[T Number](x T) T {
	return -x
}

// Scale returns x * factor.
func Scale[T Number](x, factor T) T {
	return x * factor
}
