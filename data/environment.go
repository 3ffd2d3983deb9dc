package data

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment tells the post utilities whether the site is previewed
// locally or built for publishing. The zero value is Production.
type Environment int

const (
	Production Environment = iota
	Development
)

// EnvironmentFor maps a development switch onto an Environment.
func EnvironmentFor(dev bool) Environment {
	if dev {
		return Development
	}

	return Production
}

// ParseEnvironment accepts the long and short names of both environments
// as well as the boolean forms of a development switch ("true", "0", ...).
func ParseEnvironment(s string) (Environment, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "", "production", "prod":
		return Production, nil
	case "development", "dev":
		return Development, nil
	}

	if dev, err := strconv.ParseBool(name); err == nil {
		return EnvironmentFor(dev), nil
	}

	return Production, fmt.Errorf("unknown environment '%s'", s)
}

// ShowDrafts reports whether draft posts are listed.
func (env Environment) ShowDrafts() bool {
	return env == Development
}

func (env Environment) String() string {
	if env == Development {
		return "development"
	}

	return "production"
}
