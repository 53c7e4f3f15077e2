package terraform

import (
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
	"github.com/rios0rios0/podupdate/internal/domain/repositories"
	"github.com/rios0rios0/podupdate/internal/infrastructure/repositories/lockfile"
)

const (
	lockfileName = ".terraform.lock.hcl"
	kindName     = "terraform"
)

//nolint:gochecknoglobals // static HCL schema
var lockSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "provider", LabelNames: []string{"source"}},
	},
}

// TerraformLockRepository reads Terraform dependency lock files.
type TerraformLockRepository struct{}

// NewLockfileRepository creates the .terraform.lock.hcl reader.
func NewLockfileRepository() repositories.LockfileRepository {
	return &TerraformLockRepository{}
}

func (r *TerraformLockRepository) Name() string { return kindName }

func (r *TerraformLockRepository) Supports(path string) bool {
	return filepath.Base(path) == lockfileName
}

// Parse returns one entry per provider block, keyed by its source address.
// A block without a string "version" attribute is unresolved.
func (r *TerraformLockRepository) Parse(path string) (*entities.Snapshot, error) {
	data, checksum, err := lockfile.Read(path)
	if err != nil {
		return nil, err
	}

	file, diags := hclparse.NewParser().ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, &entities.ParseError{Path: path, Err: diags}
	}

	content, _, diags := file.Body.PartialContent(lockSchema)
	if diags.HasErrors() {
		return nil, &entities.ParseError{Path: path, Err: diags}
	}

	entries := make([]entities.PackageEntry, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		entries = append(entries, entities.PackageEntry{
			Name:    block.Labels[0],
			Version: providerVersion(block),
		})
	}

	logger.Debugf("[%s] Read %d providers from %s", kindName, len(entries), path)
	return entities.NewSnapshot(path, checksum, entries), nil
}

func providerVersion(block *hcl.Block) string {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return ""
	}

	versionAttr, ok := attrs["version"]
	if !ok {
		return ""
	}

	value, valueDiags := versionAttr.Expr.Value(&hcl.EvalContext{})
	if valueDiags.HasErrors() || value.IsNull() || value.Type() != cty.String {
		return ""
	}
	return value.AsString()
}
