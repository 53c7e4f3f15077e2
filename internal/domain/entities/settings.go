package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLockfile     = "Podfile.lock"
	DefaultProvider     = "github"
	DefaultBranchPrefix = "update_pods"
	DefaultCommitTitle  = "Update Pods"
	DefaultBaseBranch   = "main"
	defaultWorkingDir   = "."
)

var (
	ErrUpdateCommandRequired = errors.New("update_cmd is required")
	ErrTokenRequired         = errors.New("token is required to publish (set inline, via ${ENV_VAR}, or as file path)")
	ErrBaseBranchRequired    = errors.New("base_branch is required to publish")
	ErrCommitTitleRequired   = errors.New("commit_title is required to publish")
	ErrIdentityRequired      = errors.New("commit_username and commit_email are required to publish")
	ErrInvalidRepository     = errors.New(
		"repository must be in the form owner/name (organization/project/name for azuredevops)",
	)
)

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Settings are the caller-supplied inputs of one update run.
type Settings struct {
	UpdateCommand  string `yaml:"update_cmd"`
	WorkingDir     string `yaml:"working_dir"`
	Lockfile       string `yaml:"lockfile"`
	Token          string `yaml:"token"`
	BaseBranch     string `yaml:"base_branch"`
	CommitEmail    string `yaml:"commit_email"`
	CommitUsername string `yaml:"commit_username"`
	CommitTitle    string `yaml:"commit_title"`
	Provider       string `yaml:"provider"`
	Repository     string `yaml:"repository"` // owner/name or org/project/name; detected when empty
	BranchPrefix   string `yaml:"branch_prefix"`
	Publish        bool   `yaml:"publish"`
	SkipUnchanged  bool   `yaml:"skip_unchanged"`
	Changelog      bool   `yaml:"changelog"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{
		WorkingDir:    defaultWorkingDir,
		Lockfile:      DefaultLockfile,
		BaseBranch:    DefaultBaseBranch,
		CommitTitle:   DefaultCommitTitle,
		Provider:      DefaultProvider,
		BranchPrefix:  DefaultBranchPrefix,
		Publish:       true,
		SkipUnchanged: true,
	}
}

// NewSettings reads a YAML settings file on top of the defaults. An empty
// path yields the defaults. The token is kept raw; callers resolve it with
// ResolveToken once every overlay is applied.
func NewSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	return settings, nil
}

// ApplyActionInputs overlays GitHub Action style inputs (INPUT_UPDATE_CMD,
// INPUT_WORKING_DIR, ...) read through getenv. Unset inputs are ignored.
func (s *Settings) ApplyActionInputs(getenv func(string) string) {
	strInputs := map[string]*string{
		"update_cmd":      &s.UpdateCommand,
		"working_dir":     &s.WorkingDir,
		"lockfile":        &s.Lockfile,
		"token":           &s.Token,
		"base_branch":     &s.BaseBranch,
		"commit_email":    &s.CommitEmail,
		"commit_username": &s.CommitUsername,
		"commit_title":    &s.CommitTitle,
		"provider":        &s.Provider,
		"repository":      &s.Repository,
		"branch_prefix":   &s.BranchPrefix,
	}
	for name, target := range strInputs {
		if value := strings.TrimSpace(getenv(actionInputName(name))); value != "" {
			*target = value
		}
	}

	boolInputs := map[string]*bool{
		"publish":        &s.Publish,
		"skip_unchanged": &s.SkipUnchanged,
		"changelog":      &s.Changelog,
	}
	for name, target := range boolInputs {
		raw := strings.TrimSpace(getenv(actionInputName(name)))
		if raw == "" {
			continue
		}
		value, err := strconv.ParseBool(raw)
		if err != nil {
			logger.Warnf("Ignoring input %q: %q is not a boolean", name, raw)
			continue
		}
		*target = value
	}
}

// Validate checks the inputs required by the configured mode.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.UpdateCommand) == "" {
		return ErrUpdateCommandRequired
	}
	if !s.Publish {
		return nil
	}

	if s.Token == "" {
		return ErrTokenRequired
	}
	if s.BaseBranch == "" {
		return ErrBaseBranchRequired
	}
	if s.CommitTitle == "" {
		return ErrCommitTitleRequired
	}
	if s.CommitUsername == "" || s.CommitEmail == "" {
		return ErrIdentityRequired
	}
	if s.Repository != "" {
		if _, err := ParseRepositorySlug(s.Provider, s.Repository); err != nil {
			return err
		}
	}
	return nil
}

// LockfilePath returns the lockfile path joined with the working directory.
func (s *Settings) LockfilePath() string {
	if filepath.IsAbs(s.Lockfile) {
		return s.Lockfile
	}
	return filepath.Join(s.WorkingDir, s.Lockfile)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".podupdate.yaml",
		".podupdate.yml",
		"podupdate.yaml",
		"podupdate.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from it.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func actionInputName(name string) string {
	return "INPUT_" + strings.ToUpper(name)
}
