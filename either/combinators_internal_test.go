package either

import (
	"strconv"
	"testing"

	gm "github.com/onsi/gomega"
)

func identity[T any](v T) T {
	return v
}

// samples covers both variants.
func samples() []Either[int, string] {
	return []Either[int, string]{
		Success[int, string](0),
		Success[int, string](5),
		Success[int, string](-12),
		Failure[int]("bad"),
		Failure[int](""),
	}
}

func half(v int) Either[int, string] {
	if v%2 != 0 {
		return Failure[int]("odd")
	}
	return Success[int, string](v / 2)
}

func positive(v int) Either[int, string] {
	if v <= 0 {
		return Failure[int]("not positive")
	}
	return Success[int, string](v)
}

func TestMapLaws(t *testing.T) {
	g := gm.NewWithT(t)

	double := func(v int) int { return v * 2 }
	format := func(v int) string { return strconv.Itoa(v) }

	for _, x := range samples() {
		g.Expect(Map(x, identity[int])).To(gm.Equal(x))
		g.Expect(Map(Map(x, double), format)).To(gm.Equal(Map(x, func(v int) string { return format(double(v)) })))
	}

	g.Expect(Map(Success[int, string](4), format)).To(gm.Equal(Success[string, string]("4")))
}

func TestFlatMapLaws(t *testing.T) {
	g := gm.NewWithT(t)

	// left identity
	for _, a := range []int{-3, 0, 4, 7} {
		g.Expect(FlatMap(Success[int, string](a), half)).To(gm.Equal(half(a)))
	}

	for _, x := range samples() {
		// right identity
		g.Expect(FlatMap(x, Success[int, string])).To(gm.Equal(x))

		// associativity
		left := FlatMap(FlatMap(x, half), positive)
		right := FlatMap(x, func(v int) Either[int, string] { return FlatMap(half(v), positive) })
		g.Expect(left).To(gm.Equal(right))
	}
}

func TestFailureShortCircuit(t *testing.T) {
	g := gm.NewWithT(t)

	calls := 0
	count := func(v int) int {
		calls++
		return v
	}
	countFlat := func(v int) Either[int, string] {
		calls++
		return Success[int, string](v)
	}

	x := Failure[int]("bad")
	g.Expect(Map(x, count)).To(gm.Equal(Failure[int]("bad")))
	g.Expect(FlatMap(x, countFlat)).To(gm.Equal(Failure[int]("bad")))
	g.Expect(calls).To(gm.BeZero())

	g.Expect(Map(Success[int, string](1), count)).To(gm.Equal(Success[int, string](1)))
	g.Expect(calls).To(gm.Equal(1))
}

func TestMapFailure(t *testing.T) {
	g := gm.NewWithT(t)

	calls := 0
	length := func(s string) int {
		calls++
		return len(s)
	}

	g.Expect(MapFailure(Failure[int]("bad"), length)).To(gm.Equal(Failure[int](3)))
	g.Expect(MapFailure(Success[int, string](7), length)).To(gm.Equal(Success[int, int](7)))
	g.Expect(calls).To(gm.Equal(1))
}

func TestFold(t *testing.T) {
	g := gm.NewWithT(t)

	successCalls, failureCalls := 0, 0
	onSuccess := func(v int) string {
		successCalls++
		return strconv.Itoa(v)
	}
	onFailure := func(e string) string {
		failureCalls++
		return "error: " + e
	}

	g.Expect(Fold(Success[int, string](2), onSuccess, onFailure)).To(gm.Equal("2"))
	g.Expect(Fold(Failure[int]("bad"), onSuccess, onFailure)).To(gm.Equal("error: bad"))
	g.Expect(successCalls).To(gm.Equal(1))
	g.Expect(failureCalls).To(gm.Equal(1))
}

func TestFlip(t *testing.T) {
	tests := []struct {
		name     string
		input    Either[Either[int, string], bool]
		expected Either[Either[int, bool], string]
	}{
		{
			name:     "success success",
			input:    Success[Either[int, string], bool](Success[int, string](5)),
			expected: Success[Either[int, bool], string](Success[int, bool](5)),
		},
		{
			name:     "success failure",
			input:    Success[Either[int, string], bool](Failure[int]("bad")),
			expected: Failure[Either[int, bool]]("bad"),
		},
		{
			name:     "failure",
			input:    Failure[Either[int, string]](true),
			expected: Success[Either[int, bool], string](Failure[int](true)),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := gm.NewWithT(t)

			flipped := Flip(test.input)
			g.Expect(flipped).To(gm.Equal(test.expected))
			g.Expect(Flip(flipped)).To(gm.Equal(test.input))
			g.Expect(Flip(flipped) == test.input).To(gm.BeTrue())
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		input    Either[Either[int, string], string]
		expected Either[int, string]
	}{
		{
			name:     "success success",
			input:    Success[Either[int, string], string](Success[int, string](5)),
			expected: Success[int, string](5),
		},
		{
			name:     "success failure",
			input:    Success[Either[int, string], string](Failure[int]("e")),
			expected: Failure[int]("e"),
		},
		{
			name:     "failure",
			input:    Failure[Either[int, string]]("e2"),
			expected: Failure[int]("e2"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := gm.NewWithT(t)

			g.Expect(Join(test.input)).To(gm.Equal(test.expected))
			g.Expect(Join(test.input)).To(gm.Equal(FlatMap(test.input, identity[Either[int, string]])))
		})
	}
}
