package environment

import (
	"os"
	"strings"
)

// Environment names the deployment a process runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// EnvVar is the process variable consulted by FromEnv.
const EnvVar = "APP_ENV"

// Parse normalizes a raw name. The aliases dev, stage and prod map onto
// their canonical values and an empty string means Development. Unknown
// names are lowercased and kept.
func Parse(raw string) Environment {
	name := strings.ToLower(strings.TrimSpace(raw))
	switch name {
	case "", "dev":
		return Development
	case "stage":
		return Staging
	case "prod":
		return Production
	}
	return Environment(name)
}

// FromEnv parses APP_ENV.
func FromEnv() Environment {
	return Parse(os.Getenv(EnvVar))
}

func (e Environment) IsProduction() bool { return e == Production || e == "prod" }
func (e Environment) IsDevelopment() bool { return e == Development || e == "dev" }
func (e Environment) IsStaging() bool { return e == Staging || e == "stage" }

func (e Environment) String() string { return string(e) }
