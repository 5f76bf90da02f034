package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	choiceFlagTypeName          = "string"
	choiceFlagInvalidValueLabel = "invalid value"
	choiceFlagValueSeparator    = ", "
)

// choiceFlagValue accepts one of a fixed set of lower-case literals.
type choiceFlagValue struct {
	target  *string
	flagKey string
	choices []string
}

func (value *choiceFlagValue) Set(input string) error {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, choice := range value.choices {
		if normalized == choice {
			*value.target = normalized
			return nil
		}
	}
	return fmt.Errorf("%s %q for --%s; accepted values: %s", choiceFlagInvalidValueLabel, input, value.flagKey, strings.Join(value.choices, choiceFlagValueSeparator))
}

func (value *choiceFlagValue) String() string {
	if value == nil || value.target == nil {
		return ""
	}
	return *value.target
}

func (value *choiceFlagValue) Type() string {
	return choiceFlagTypeName
}

func registerChoiceFlag(flagSet *pflag.FlagSet, target *string, name string, defaultValue string, choices []string, usage string) {
	if flagSet == nil || target == nil {
		return
	}
	*target = defaultValue
	flagSet.Var(&choiceFlagValue{target: target, flagKey: name, choices: choices}, name, fmt.Sprintf("%s (%s)", usage, strings.Join(choices, "|")))
}
