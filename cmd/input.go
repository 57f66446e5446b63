package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tupyy/either/either"
	"github.com/tupyy/either/internal/evaluator"
	"sigs.k8s.io/yaml"
)

var ErrMalformedVariable = errors.New("variable must be in the form name=value")

// profilesFile is the content of the file passed with --profiles.
type profilesFile struct {
	Variables map[string]interface{} `json:"variables"`
	Profiles  []evaluator.Profile    `json:"profiles"`
}

func readProfiles(path string) either.Either[profilesFile, error] {
	return either.FlatMap(either.FromResult(os.ReadFile(path)), parseProfiles)
}

func parseProfiles(data []byte) either.Either[profilesFile, error] {
	var f profilesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return either.Failure[profilesFile](fmt.Errorf("failed to parse profiles: %w", err))
	}

	return either.Success[profilesFile, error](f)
}

type variable struct {
	name  string
	value interface{}
}

// parseVariable parses name=value. The value is a bool or a number.
func parseVariable(s string) either.Either[variable, error] {
	name, raw, found := strings.Cut(s, "=")
	if !found || name == "" {
		return either.Failure[variable](fmt.Errorf("%w: %q", ErrMalformedVariable, s))
	}

	var value either.Either[interface{}, error]
	if raw == "true" || raw == "false" {
		value = either.Success[interface{}, error](raw == "true")
	} else {
		value = either.Map(either.FromResult(strconv.ParseFloat(raw, 64)), func(f float64) interface{} { return f })
	}

	return either.MapFailure(
		either.Map(value, func(v interface{}) variable { return variable{name: name, value: v} }),
		func(err error) error { return fmt.Errorf("variable %q: %w", name, err) },
	)
}
