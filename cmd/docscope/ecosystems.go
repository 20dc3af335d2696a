package main

import (
	"fmt"

	"github.com/fwojciec/docscope"
)

// Run executes the ecosystems command.
func (c *EcosystemsCmd) Run(deps *Dependencies) error {
	filter := docscope.EcosystemFilter{}
	if !c.All {
		active := true
		filter.IsActive = &active
	}

	ecosystems, err := deps.Ecosystems.FindEcosystems(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscope.ErrorMessage(err))
		return err
	}

	if len(ecosystems) == 0 {
		fmt.Fprintln(deps.Stdout, "No ecosystems found. Use 'docscope seed' to load a catalog.")
		return nil
	}

	for _, eco := range ecosystems {
		status := "active"
		if !eco.IsActive {
			status = "inactive"
		}
		fmt.Fprintf(deps.Stdout, "%s  priority=%d  %s  %s\n", eco.ID, eco.Priority, status, eco.Description)
	}

	return nil
}
