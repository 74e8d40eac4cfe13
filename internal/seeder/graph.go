package seeder

import "fmt"

// DependencyGraph orders tables so that each one comes after every table it draws
// foreign keys from.
type DependencyGraph struct {
	names []string
	deps  map[string][]string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		deps: make(map[string][]string),
	}
}

func (g *DependencyGraph) AddTable(name string) {
	if _, ok := g.deps[name]; ok {
		return
	}
	g.names = append(g.names, name)
	g.deps[name] = nil
}

// AddDependency records that table draws keys from source.
func (g *DependencyGraph) AddDependency(table, source string) {
	g.AddTable(table)
	g.AddTable(source)
	for _, d := range g.deps[table] {
		if d == source {
			return
		}
	}
	g.deps[table] = append(g.deps[table], source)
}

// BuildInsertionOrder returns every table after its sources. Tables without a
// relationship keep the order they were added in.
func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(name string) error {
		if temp[name] {
			return fmt.Errorf("circular dependency detected involving table: %s", name)
		}
		if visited[name] {
			return nil
		}

		temp[name] = true
		for _, dep := range g.deps[name] {
			if dep != name {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		temp[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range g.names {
		if !visited[name] {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}
