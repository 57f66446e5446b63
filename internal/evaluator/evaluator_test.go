package evaluator_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tupyy/either/either"
	"github.com/tupyy/either/internal/evaluator"
	"github.com/tupyy/either/internal/interpreter"
)

var _ = Describe("profile evaluator", func() {
	var (
		e        *evaluator.Evaluator
		profiles []evaluator.Profile
	)

	BeforeEach(func() {
		e = evaluator.New()
		profiles = []evaluator.Profile{
			{
				Name: "performance",
				Conditions: []evaluator.Condition{
					{Name: "low", Expression: "cpu < 25%"},
					{Name: "high", Expression: "cpu >= 25%"},
				},
			},
			{
				Name: "memory",
				Conditions: []evaluator.Condition{
					{Name: "full", Expression: "mem > 1Gib && swap > 0"},
					{Name: "broken", Expression: "mem >"},
				},
			},
		}
	})

	It("returns none without profiles", func() {
		results, err := e.Evaluate(context.Background())
		Expect(err).To(BeNil())
		Expect(results.IsNone()).To(BeTrue())
	})

	It("evaluates every condition of every profile", func() {
		e.SetProfiles(profiles)
		e.SetValue("cpu", 10)
		e.SetValue("mem", 2<<30)
		e.SetValue("swap", 1)

		o, err := e.Evaluate(context.Background())
		Expect(err).To(BeNil())

		results, ok := o.Get()
		Expect(ok).To(BeTrue())
		Expect(results).To(HaveLen(2))

		Expect(results[0].Name).To(Equal("performance"))
		Expect(results[0].Conditions).To(HaveLen(2))
		Expect(results[0].Conditions[0].Name).To(Equal("low"))
		Expect(results[0].Conditions[0].Result).To(Equal(either.Success[bool, error](true)))
		Expect(results[0].Conditions[1].Result).To(Equal(either.Success[bool, error](false)))

		Expect(results[1].Name).To(Equal("memory"))
		Expect(results[1].Conditions[0].Result).To(Equal(either.Success[bool, error](true)))

		err, failed := results[1].Conditions[1].Result.GetFailure()
		Expect(failed).To(BeTrue())
		Expect(err).To(BeAssignableToTypeOf(&interpreter.ParseError{}))
	})

	It("keeps evaluation errors per condition", func() {
		e.SetProfiles(profiles[:1])

		o, err := e.Evaluate(context.Background())
		Expect(err).To(BeNil())

		results, _ := o.Get()
		for _, c := range results[0].Conditions {
			err, failed := c.Result.GetFailure()
			Expect(failed).To(BeTrue())
			Expect(err).To(BeAssignableToTypeOf(&interpreter.EvaluationError{}))
		}

		e.SetValue("cpu", 30)
		o, err = e.Evaluate(context.Background())
		Expect(err).To(BeNil())

		results, _ = o.Get()
		Expect(results[0].Conditions[0].Result).To(Equal(either.Success[bool, error](false)))
		Expect(results[0].Conditions[1].Result).To(Equal(either.Success[bool, error](true)))
	})

	It("reports failed conditions", func() {
		e.SetProfiles(profiles)
		e.SetValue("cpu", 10)

		o, err := e.Evaluate(context.Background())
		Expect(err).To(BeNil())

		results, _ := o.Get()
		failures := evaluator.Failures(results)
		Expect(failures).NotTo(BeNil())
		Expect(failures.Error()).To(ContainSubstring("memory.full"))
		Expect(failures.Error()).To(ContainSubstring("memory.broken"))
		Expect(failures.Error()).NotTo(ContainSubstring("performance"))

		e.SetProfiles(profiles[:1])
		o, _ = e.Evaluate(context.Background())
		results, _ = o.Get()
		Expect(evaluator.Failures(results)).To(BeNil())
	})

	It("stops when the context is done", func() {
		e.SetProfiles(profiles)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		o, err := e.Evaluate(ctx)
		Expect(err).To(MatchError(context.Canceled))
		Expect(o.IsNone()).To(BeTrue())
	})
})
