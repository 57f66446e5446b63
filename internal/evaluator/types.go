package evaluator

import "github.com/tupyy/either/either"

/* Profile specify all the conditions of a profile:
```yaml
profiles:
  - name: performance
    conditions:
      - name: low
        expression: cpu < 25%
      - name: high
        expression: cpu >= 25%
```
In this example the profile is _performance_ and the conditions are _low_ and _high_.
Each condition's expression is evaluated against the evaluator's variables.
*/
type Profile struct {
	// Name is the name of the profile
	Name string `json:"name"`
	// Conditions holds profile's conditions.
	Conditions []Condition `json:"conditions"`
}

type Condition struct {
	// Name is the name of the condition
	Name string `json:"name"`
	// Expression is the boolean expression of the condition.
	Expression string `json:"expression"`
}

// ConditionResult holds the value of the condition or the error returned by the parser or the interpreter.
type ConditionResult struct {
	Name   string
	Result either.Either[bool, error]
}

type ProfileResult struct {
	Name       string
	Conditions []ConditionResult
}
