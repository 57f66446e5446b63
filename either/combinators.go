package either

// Map applies f to the success value. A failure is returned unchanged and f is not called.
func Map[A, B, E any](x Either[A, E], f func(A) B) Either[B, E] {
	if x.success {
		return Success[B, E](f(x.value))
	}

	return Failure[B](x.failure)
}

// FlatMap returns f(a) for Success(a). A failure short-circuits: f is never called.
func FlatMap[A, B, E any](x Either[A, E], f func(A) Either[B, E]) Either[B, E] {
	if x.success {
		return f(x.value)
	}

	return Failure[B](x.failure)
}

// MapFailure applies f to the failure value. f is not called on success.
func MapFailure[A, E, F any](x Either[A, E], f func(E) F) Either[A, F] {
	if x.success {
		return Success[A, F](x.value)
	}

	return Failure[A](f(x.failure))
}

// Fold calls onSuccess or onFailure depending on the variant of x and returns its result.
func Fold[A, E, R any](x Either[A, E], onSuccess func(A) R, onFailure func(E) R) R {
	if x.success {
		return onSuccess(x.value)
	}

	return onFailure(x.failure)
}

// Flip swaps the failure channels of a nested Either:
//
//	Success(Success(a)) -> Success(Success(a))
//	Success(Failure(e1)) -> Failure(e1)
//	Failure(e2)          -> Success(Failure(e2))
//
// Flip(Flip(x)) == x.
func Flip[A, E1, E2 any](x Either[Either[A, E1], E2]) Either[Either[A, E2], E1] {
	if !x.success {
		return Success[Either[A, E2], E1](Failure[A](x.failure))
	}

	inner := x.value
	if !inner.success {
		return Failure[Either[A, E2]](inner.failure)
	}

	return Success[Either[A, E2], E1](Success[A, E2](inner.value))
}

// Join collapses two levels sharing the same failure type.
// It returns the same result as FlatMap(x, identity).
func Join[A, E any](x Either[Either[A, E], E]) Either[A, E] {
	if !x.success {
		return Failure[A](x.failure)
	}

	return x.value
}
