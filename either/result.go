package either

// FromResult converts the usual (value, error) pair. A non nil err gives a failure.
func FromResult[A any](a A, err error) Either[A, error] {
	if err != nil {
		return Failure[A](err)
	}

	return Success[A, error](a)
}

// ToResult returns the (value, error) pair held by x.
// For a failure holding a nil error the zero value of A and a nil error are returned.
func ToResult[A any](x Either[A, error]) (A, error) {
	if x.success {
		return x.value, nil
	}

	var zero A
	return zero, x.failure
}
