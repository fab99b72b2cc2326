package config

// Extension represents one required Visual Studio Code extension.
// - ID: the stable marketplace identifier (publisher.name) used for matching
//   against `code --list-extensions` output. Matching is case-insensitive.
// - Name: Human-readable display name used in report lines.
// - Severity: "critical", "important" or "optional" — how badly the course
//   workflow degrades when the extension is missing.
// - Reason: One-line justification shown alongside a failure.
type Extension struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Severity string `yaml:"severity"`
	Reason   string `yaml:"reason"`
}

// Config is the top-level structure the doctor run consumes.
// It carries the required-extension table, the accepted institutional email
// domain suffixes, and the hosting domains recognized for repository remotes.
// All three have built-in defaults; a YAML file can override any of them.
type Config struct {
	Extensions   []Extension
	EmailDomains []string
	RemoteHosts  []string
}
