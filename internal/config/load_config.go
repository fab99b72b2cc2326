package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"setup-doctor/internal/logger"
)

// Default returns the built-in configuration: the five required extensions,
// the accepted institutional email domains, and the recognized remote hosts.
// This table is fixed course policy, not derived at runtime; the YAML override
// exists so instructors can adjust it between terms without a rebuild.
func Default() Config {
	return Config{
		Extensions: []Extension{
			{
				ID:       "ritwickdey.LiveServer",
				Name:     "Live Server",
				Severity: "critical",
				Reason:   "serves your pages locally with live reload; every exercise assumes it",
			},
			{
				ID:       "esbenp.prettier-vscode",
				Name:     "Prettier",
				Severity: "critical",
				Reason:   "formats HTML/CSS/JS on save; submissions are expected to be formatted",
			},
			{
				ID:       "eamodio.gitlens",
				Name:     "GitLens",
				Severity: "important",
				Reason:   "shows commit history inline, which the version-control labs rely on",
			},
			{
				ID:       "GitHub.vscode-pull-request-github",
				Name:     "GitHub Pull Requests",
				Severity: "important",
				Reason:   "lets you open and review pull requests without leaving the editor",
			},
			{
				ID:       "streetsidesoftware.code-spell-checker",
				Name:     "Code Spell Checker",
				Severity: "optional",
				Reason:   "catches typos in class names and copy before they reach a critique",
			},
		},
		EmailDomains: []string{"@ocadu.ca", "@student.ocadu.ca"},
		RemoteHosts:  []string{"github.com"},
	}
}

// LoadConfig returns the configuration for a doctor run.
// With an empty path it returns the built-in defaults. Otherwise it reads the
// given YAML file and overrides whichever sections the file provides, keeping
// defaults for the rest. A missing or malformed file is reported and the
// defaults are used — a broken override never aborts the checkup itself.
func LoadConfig(configFile string) Config {
	cfg := Default()
	if configFile == "" {
		return cfg
	}

	// wrapper mirrors the expected YAML layout:
	// doctor: { extensions: [...], email_domains: [...], remote_hosts: [...] }
	wrapper := struct {
		Doctor struct {
			Extensions   []Extension `yaml:"extensions"`
			EmailDomains []string    `yaml:"email_domains"`
			RemoteHosts  []string    `yaml:"remote_hosts"`
		} `yaml:"doctor"`
	}{}

	raw, err := os.ReadFile(configFile)
	if err != nil {
		logger.Warn("[WARN] Could not read %s (%v); using built-in defaults\n", configFile, err)
		return cfg
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		logger.Warn("[WARN] Could not parse %s (%v); using built-in defaults\n", configFile, err)
		return cfg
	}

	// Only replace sections the file actually set.
	if len(wrapper.Doctor.Extensions) > 0 {
		cfg.Extensions = wrapper.Doctor.Extensions
	}
	if len(wrapper.Doctor.EmailDomains) > 0 {
		cfg.EmailDomains = wrapper.Doctor.EmailDomains
	}
	if len(wrapper.Doctor.RemoteHosts) > 0 {
		cfg.RemoteHosts = wrapper.Doctor.RemoteHosts
	}

	logger.Debug("[DEBUG] Loaded config from %s: %d extensions, %d email domains, %d remote hosts\n",
		configFile, len(cfg.Extensions), len(cfg.EmailDomains), len(cfg.RemoteHosts))
	return cfg
}
