// Package issue holds the fixed civic-issue catalog whose keyword sets drive
// bill queries.
package issue

import (
	"embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/civicsignal/repalign/internal/domain"
)

//go:embed default_issues.yaml
var defaultCatalogFS embed.FS

type catalogFile struct {
	Issues []issueEntry `yaml:"issues"`
}

type issueEntry struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Nonprofit   string   `yaml:"nonprofit,omitempty"`
	LearnMore   string   `yaml:"learn_more,omitempty"`
}

// Catalog is the loaded issue table, read-only after construction
type Catalog struct {
	byID  map[string]domain.Issue
	order []string
}

// Load reads a catalog from a YAML file, falling back to the embedded default
// catalog when path is empty.
func Load(path string) (*Catalog, error) {
	var data []byte
	var err error

	if path == "" {
		data, err = defaultCatalogFS.ReadFile("default_issues.yaml")
		if err != nil {
			return nil, fmt.Errorf("reading embedded catalog: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog: %w", err)
		}
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := &Catalog{byID: make(map[string]domain.Issue, len(file.Issues))}
	for i, entry := range file.Issues {
		if entry.ID == "" {
			return nil, fmt.Errorf("catalog issue %d: id is required", i)
		}
		if len(entry.Keywords) == 0 {
			return nil, fmt.Errorf("catalog issue %q: at least one keyword is required", entry.ID)
		}
		if _, dup := c.byID[entry.ID]; dup {
			return nil, fmt.Errorf("catalog issue %q: duplicate id", entry.ID)
		}
		c.byID[entry.ID] = domain.Issue{
			ID:          entry.ID,
			Title:       entry.Title,
			Description: entry.Description,
			Keywords:    entry.Keywords,
			Nonprofit:   entry.Nonprofit,
			LearnMore:   entry.LearnMore,
		}
		c.order = append(c.order, entry.ID)
	}

	return c, nil
}

// Get looks up one issue by id
func (c *Catalog) Get(id string) (domain.Issue, bool) {
	issue, ok := c.byID[id]
	return issue, ok
}

// List returns all issues in catalog order
func (c *Catalog) List() []domain.Issue {
	out := make([]domain.Issue, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// IDs returns the sorted issue ids, for diagnostics
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
