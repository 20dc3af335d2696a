package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/docscope"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML shape accepted by the seed command.
type seedFile struct {
	Ecosystems []seedEcosystem `yaml:"ecosystems"`
	DocSources []seedDocSource `yaml:"docSources"`
}

type seedEcosystem struct {
	ID            string              `yaml:"id"`
	Description   string              `yaml:"description"`
	Aliases       []string            `yaml:"aliases"`
	Keywords      []string            `yaml:"keywords"`
	KeywordGroups map[string][]string `yaml:"keywordGroups"`
	Priority      int                 `yaml:"priority"`

	// Active defaults to true when omitted.
	Active *bool `yaml:"active"`
}

type seedDocSource struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	URL       string `yaml:"url"`
	Ecosystem string `yaml:"ecosystem"`
}

// Run executes the seed command. The seed file is authoritative: existing
// ecosystems and sources with matching IDs are replaced.
func (c *SeedCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return fmt.Errorf("failed to parse seed file %q: %w", c.File, err)
	}

	for _, se := range seed.Ecosystems {
		active := true
		if se.Active != nil {
			active = *se.Active
		}
		eco := &docscope.Ecosystem{
			ID:            se.ID,
			Description:   se.Description,
			Aliases:       se.Aliases,
			Keywords:      se.Keywords,
			KeywordGroups: se.KeywordGroups,
			Priority:      se.Priority,
			IsActive:      active,
		}

		err := deps.Ecosystems.CreateEcosystem(deps.Ctx, eco)
		if docscope.ErrorCode(err) == docscope.ECONFLICT {
			_, err = deps.Ecosystems.UpdateEcosystem(deps.Ctx, eco.ID, docscope.EcosystemUpdate{
				Description:   &se.Description,
				Aliases:       se.Aliases,
				Keywords:      se.Keywords,
				KeywordGroups: se.KeywordGroups,
				Priority:      &se.Priority,
				IsActive:      &active,
			})
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: ecosystem %q: %s\n", se.ID, docscope.ErrorMessage(err))
			return err
		}

		if c.Embed {
			vec, err := deps.Embedder.Embed(deps.Ctx, se.Description)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: embedding %q: %s\n", se.ID, docscope.ErrorMessage(err))
				return err
			}
			if _, err := deps.Ecosystems.UpdateEcosystem(deps.Ctx, se.ID, docscope.EcosystemUpdate{
				DescriptionEmbedding: vec,
			}); err != nil {
				fmt.Fprintf(deps.Stderr, "error: ecosystem %q: %s\n", se.ID, docscope.ErrorMessage(err))
				return err
			}
		}
	}

	for _, ss := range seed.DocSources {
		src := &docscope.DocSource{
			ID:   ss.ID,
			Name: ss.Name,
			URL:  ss.URL,
		}
		if ss.Ecosystem != "" {
			src.EcosystemID = &ss.Ecosystem
		}

		// Replace any existing source with the same ID.
		if ss.ID != "" {
			if _, err := deps.Sources.FindDocSourceByID(deps.Ctx, ss.ID); err == nil {
				if err := deps.Sources.DeleteDocSource(deps.Ctx, ss.ID); err != nil {
					fmt.Fprintf(deps.Stderr, "error: doc source %q: %s\n", ss.ID, docscope.ErrorMessage(err))
					return err
				}
			}
		}

		if err := deps.Sources.CreateDocSource(deps.Ctx, src); err != nil {
			fmt.Fprintf(deps.Stderr, "error: doc source %q: %s\n", ss.Name, docscope.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Seeded %d ecosystems and %d doc sources\n", len(seed.Ecosystems), len(seed.DocSources))
	return nil
}
