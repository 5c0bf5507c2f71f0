package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/chime/internal/ctxlog"
	"github.com/vk/chime/internal/params"
	"github.com/vk/chime/internal/regions"
	"github.com/vk/chime/internal/validate"
)

// dispositionNames orders the composite fields recomposed from their
// decomposed days/rate flags.
var dispositionNames = []string{"hospitalized", "icu", "ventilated"}

// Resolve finishes the pipeline: it layers the parameters file (from the
// --parameters flag or the PARAMETERS environment entry) over the argv pass,
// enforces presence of required flags, re-validates the disposition inputs
// on the merged values, recomposes the Disposition entities, loads the
// region file, and constructs the final Parameters aggregate. Any failure
// aborts with no partial result.
func (r *Resolver) Resolve(ctx context.Context, env map[string]string) (*params.Parameters, error) {
	logger := ctxlog.FromContext(ctx)

	path, _ := r.ns["parameters"].(string)
	if path == "" {
		path = env["PARAMETERS"]
	}
	if path != "" {
		logger.Info("Using parameters file.", "path", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read parameters file: %w", err)
		}
		// Second pass into the same namespace: file values override argv
		// values flag by flag.
		if err := r.flagSet.Parse(strings.Fields(string(data))); err != nil {
			return nil, fmt.Errorf("failed to parse parameters file %s: %w", path, err)
		}
	}
	delete(r.ns, "parameters")

	if regionPath, ok := r.ns["region_file"].(string); ok && regionPath != "" {
		region, err := regions.Load(ctx, regionPath)
		if err != nil {
			return nil, err
		}
		r.ns["region"] = region
		if _, ok := r.ns["population"]; !ok {
			r.ns["population"] = region.Population
		}
	}
	delete(r.ns, "region_file")

	for _, def := range r.defs {
		if !def.Required {
			continue
		}
		if _, ok := r.ns[def.Name]; !ok {
			return nil, fmt.Errorf("--%s is required", flagName(def.Name))
		}
	}

	// File-sourced overrides merged into the namespace after the flag-level
	// bounds checks ran, so re-check the disposition inputs on the values of
	// record.
	for _, name := range dispositionNames {
		if err := validate.Positive(name+"_days", r.ns[name+"_days"]); err != nil {
			return nil, err
		}
		if err := validate.Rate(name+"_rate", r.ns[name+"_rate"]); err != nil {
			return nil, err
		}
	}

	for _, name := range dispositionNames {
		days, ok := r.ns[name+"_days"].(int)
		if !ok {
			return nil, fmt.Errorf("--%s must be an integer", flagName(name+"_days"))
		}
		rate, ok := r.ns[name+"_rate"].(float64)
		if !ok {
			return nil, fmt.Errorf("--%s must be a number", flagName(name+"_rate"))
		}
		disposition, err := params.NewDisposition(days, rate)
		if err != nil {
			return nil, fmt.Errorf("invalid %s disposition: %w", name, err)
		}
		r.ns[name] = disposition
		delete(r.ns, name+"_days")
		delete(r.ns, name+"_rate")
	}

	logger.Debug("Namespace resolved.", "fields", len(r.ns))
	return params.New(r.ns)
}
