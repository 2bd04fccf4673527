package seeder

import (
	"fmt"

	"github.com/Rana718/volunteer-verse/internal/types"
)

// DependencyGraph orders tables so that referenced tables are filled first.
// Ties keep the order in which tables were added.
type DependencyGraph struct {
	tables []string
	deps   map[string][]string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		deps: make(map[string][]string),
	}
}

func (g *DependencyGraph) AddTable(name string) {
	if _, exists := g.deps[name]; exists {
		return
	}
	g.tables = append(g.tables, name)
	g.deps[name] = nil
}

// AddReference records that table depends on refTable.
func (g *DependencyGraph) AddReference(table, refTable string) {
	g.AddTable(table)
	g.AddTable(refTable)
	if table != refTable {
		g.deps[table] = append(g.deps[table], refTable)
	}
}

func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		temp[tableName] = true
		for _, dep := range g.deps[tableName] {
			if err := visit(dep); err != nil {
				return err
			}
		}
		temp[tableName] = false

		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	for _, tableName := range g.tables {
		if err := visit(tableName); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// VolunteerVerseGraph builds the graph of the five tables, including the
// schedule's unenforced event reference.
func VolunteerVerseGraph() *DependencyGraph {
	g := NewDependencyGraph()
	for _, table := range types.InsertionOrder {
		g.AddTable(table)
	}
	for _, ref := range types.References {
		g.AddReference(ref.Table, ref.RefTable)
	}
	return g
}
