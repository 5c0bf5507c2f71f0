package regions

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/chime/internal/ctxlog"
	"github.com/vk/chime/internal/params"
)

// regionBlock is one `region "<name>" {}` block. Its attributes are free-form
// sub-population counts, so the body is decoded manually.
type regionBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// regionFile is the top-level structure of a region definition file.
type regionFile struct {
	Regions []*regionBlock `hcl:"region,block"`
}

// Load parses the region file at path and sums its sub-population counts
// into a Regions aggregate.
func Load(ctx context.Context, path string) (*params.Regions, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse region file %s: %w", path, diags)
	}

	var rf regionFile
	if diags := gohcl.DecodeBody(file.Body, nil, &rf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode region file %s: %w", path, diags)
	}
	if len(rf.Regions) == 0 {
		return nil, fmt.Errorf("region file %s defines no region blocks", path)
	}

	counts := make(map[string]int)
	for _, block := range rf.Regions {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid region block '%s' in %s: %w", block.Name, path, diags)
		}
		for name, attr := range attrs {
			if _, exists := counts[name]; exists {
				return nil, fmt.Errorf("duplicate sub-population '%s' in region file %s", name, path)
			}
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("invalid value for sub-population '%s': %w", name, diags)
			}
			if val.Type() != cty.Number {
				return nil, fmt.Errorf("sub-population '%s' must be a number, got %s", name, val.Type().FriendlyName())
			}
			var count int
			if err := gocty.FromCtyValue(val, &count); err != nil {
				return nil, fmt.Errorf("sub-population '%s' must be a whole number: %w", name, err)
			}
			counts[name] = count
		}
		logger.Debug("Region block decoded.", "region", block.Name, "subPopulations", len(attrs))
	}

	return params.NewRegions(counts)
}
