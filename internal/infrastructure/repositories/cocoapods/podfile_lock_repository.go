package cocoapods

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
	"github.com/rios0rios0/podupdate/internal/domain/repositories"
	"github.com/rios0rios0/podupdate/internal/infrastructure/repositories/lockfile"
)

const (
	lockfileName = "Podfile.lock"
	kindName     = "cocoapods"
)

var (
	errMissingPods = errors.New("missing PODS section")
	errInvalidPods = errors.New("PODS must be a sequence")
)

// podPattern splits "Name (1.2.3)" into name and version. Subspecs keep
// their slash ("Firebase/Core").
var podPattern = regexp.MustCompile(`^(.+?)(?:\s+\(([^)]*)\))?$`)

// podfileLock mirrors the sections of Podfile.lock this reader needs.
type podfileLock struct {
	Pods            yaml.Node `yaml:"PODS"`
	PodfileChecksum string    `yaml:"PODFILE CHECKSUM"`
	CocoaPods       string    `yaml:"COCOAPODS"`
}

// PodfileLockRepository reads CocoaPods Podfile.lock files.
type PodfileLockRepository struct{}

// NewLockfileRepository creates the CocoaPods lockfile reader.
func NewLockfileRepository() repositories.LockfileRepository {
	return &PodfileLockRepository{}
}

func (r *PodfileLockRepository) Name() string { return kindName }

func (r *PodfileLockRepository) Supports(path string) bool {
	return filepath.Base(path) == lockfileName
}

// Parse reads every entry of the PODS section, including pods pulled in
// transitively, in file order.
func (r *PodfileLockRepository) Parse(path string) (*entities.Snapshot, error) {
	data, checksum, err := lockfile.Read(path)
	if err != nil {
		return nil, err
	}

	var lock podfileLock
	if unmarshalErr := yaml.Unmarshal(data, &lock); unmarshalErr != nil {
		return nil, &entities.ParseError{Path: path, Err: unmarshalErr}
	}

	entries, podsErr := parsePods(&lock.Pods)
	if podsErr != nil {
		return nil, &entities.ParseError{Path: path, Err: podsErr}
	}

	logger.Debugf(
		"[%s] Read %d pods from %s (CocoaPods %s, Podfile checksum %s)",
		kindName, len(entries), path, lock.CocoaPods, lock.PodfileChecksum,
	)
	return entities.NewSnapshot(path, checksum, entries), nil
}

// parsePods walks the PODS sequence. Each item is either a scalar
// "Name (version)" or a single-key mapping whose key is the pod and whose
// value lists its dependency requirements.
func parsePods(node *yaml.Node) ([]entities.PackageEntry, error) {
	if node.Kind == 0 {
		return nil, errMissingPods
	}
	if node.Kind != yaml.SequenceNode {
		return nil, errInvalidPods
	}

	entries := make([]entities.PackageEntry, 0, len(node.Content))
	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			entries = append(entries, parsePod(item.Value))
		case yaml.MappingNode:
			for i := 0; i < len(item.Content); i += 2 {
				entries = append(entries, parsePod(item.Content[i].Value))
			}
		default:
			return nil, fmt.Errorf("unexpected PODS entry at line %d", item.Line)
		}
	}
	return entries, nil
}

func parsePod(raw string) entities.PackageEntry {
	matches := podPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if matches == nil {
		return entities.PackageEntry{Name: strings.TrimSpace(raw)}
	}
	return entities.PackageEntry{
		Name:    matches[1],
		Version: strings.TrimSpace(matches[2]),
	}
}
