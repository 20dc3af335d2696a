package main

import (
	"fmt"

	"github.com/fwojciec/docscope"
)

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	filter := docscope.DocSourceFilter{}
	if c.Ecosystem != "" {
		filter.EcosystemID = &c.Ecosystem
	}
	if c.Unassigned {
		assigned := false
		filter.Assigned = &assigned
	}

	sources, err := deps.Sources.FindDocSources(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscope.ErrorMessage(err))
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintln(deps.Stdout, "No doc sources found. Use 'docscope seed' to load a catalog.")
		return nil
	}

	for _, src := range sources {
		ecosystem := "(unassigned)"
		if src.EcosystemID != nil {
			ecosystem = *src.EcosystemID
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", src.ID, src.Name, src.URL, ecosystem)
	}

	return nil
}
