package shared

import (
	"slices"

	"github.com/dmitrymomot/authkit/pkg/environment"
)

// LogCategory names a class of client log output.
type LogCategory string

const (
	LogQuery LogCategory = "query"
	LogInfo  LogCategory = "info"
	LogWarn  LogCategory = "warn"
	LogError LogCategory = "error"
)

// LogCategories is the set of categories a client should emit.
type LogCategories []LogCategory

// Has reports whether c is part of the set.
func (cs LogCategories) Has(c LogCategory) bool {
	return slices.Contains(cs, c)
}

// LogCategoriesFor selects the categories for env.
// Development gets query, warn and error; every other environment gets error only.
func LogCategoriesFor(env environment.Environment) LogCategories {
	if env.IsDevelopment() {
		return LogCategories{LogQuery, LogWarn, LogError}
	}
	return LogCategories{LogError}
}
