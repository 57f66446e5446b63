package evaluator

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/tupyy/either/either"
	"github.com/tupyy/either/internal/interpreter"
	"github.com/tupyy/either/option"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type condition struct {
	name        string
	interpreter either.Either[*interpreter.Interpreter, error]
}

type profileEvaluator struct {
	name       string
	conditions []condition
}

// evaluate returns the result of each condition.
// A condition whose expression failed to parse keeps its parse error as result.
func (pe *profileEvaluator) evaluate(variables map[string]interface{}) ProfileResult {
	results := make([]ConditionResult, 0, len(pe.conditions))
	for _, c := range pe.conditions {
		res := either.FlatMap(c.interpreter, func(i *interpreter.Interpreter) either.Either[bool, error] {
			return i.Evaluate(variables)
		})

		if err, failed := res.GetFailure(); failed {
			zap.S().Warnw("condition evaluation failed", "profile", pe.name, "condition", c.name, "error", err)
		} else {
			zap.S().Debugw("condition evaluated", "profile", pe.name, "condition", c.name, "result", res)
		}

		results = append(results, ConditionResult{
			Name:   c.name,
			Result: res,
		})
	}

	return ProfileResult{
		Name:       pe.name,
		Conditions: results,
	}
}

type Evaluator struct {
	lock       sync.RWMutex
	evaluators []*profileEvaluator
	variables  map[string]interface{}
}

func New() *Evaluator {
	return &Evaluator{
		variables: make(map[string]interface{}),
	}
}

// SetProfiles replaces the profiles. Expressions are parsed once here.
func (e *Evaluator) SetProfiles(profiles []Profile) {
	evaluators := make([]*profileEvaluator, 0, len(profiles))
	for _, p := range profiles {
		pe := &profileEvaluator{
			name:       p.Name,
			conditions: make([]condition, 0, len(p.Conditions)),
		}

		for _, c := range p.Conditions {
			pe.conditions = append(pe.conditions, condition{
				name:        c.Name,
				interpreter: interpreter.New(c.Expression),
			})
		}

		evaluators = append(evaluators, pe)
	}

	e.lock.Lock()
	defer e.lock.Unlock()

	e.evaluators = evaluators
}

func (e *Evaluator) SetValue(name string, value interface{}) {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.variables[name] = value
}

// Evaluate returns the results of every profile in the order the profiles were set.
// It returns None if there are no profiles.
// The only error returned is the context's error if ctx is done before all profiles were evaluated.
func (e *Evaluator) Evaluate(ctx context.Context) (option.Option[[]ProfileResult], error) {
	e.lock.RLock()
	defer e.lock.RUnlock()

	if len(e.evaluators) == 0 {
		return option.None[[]ProfileResult](), nil
	}

	results := make([]ProfileResult, len(e.evaluators))

	g, ctx := errgroup.WithContext(ctx)
	for idx, pe := range e.evaluators {
		idx, pe := idx, pe
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[idx] = pe.evaluate(e.variables)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return option.None[[]ProfileResult](), err
	}

	return option.Some(results), nil
}

// Failures returns an error holding every failed condition or nil if all conditions were evaluated.
func Failures(results []ProfileResult) error {
	var merr *multierror.Error
	for _, p := range results {
		for _, c := range p.Conditions {
			if err, failed := c.Result.GetFailure(); failed {
				merr = multierror.Append(merr, fmt.Errorf("%s.%s: %w", p.Name, c.Name, err))
			}
		}
	}

	return merr.ErrorOrNil()
}
