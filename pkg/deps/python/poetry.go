package python

import "sort"

// poetryName returns [tool.poetry].name, or "".
func poetryName(doc map[string]any) string {
	name, _ := poetryTable(doc)["name"].(string)
	return name
}

// poetryDependencyNames returns the distribution names declared in Poetry's
// dependency tables: [tool.poetry.dependencies], the legacy
// [tool.poetry.dev-dependencies] and every [tool.poetry.group.<g>.dependencies].
// The "python" constraint is not a distribution and is skipped.
func poetryDependencyNames(doc map[string]any) []string {
	poetry := poetryTable(doc)
	if poetry == nil {
		return nil
	}

	tables := []any{poetry["dependencies"], poetry["dev-dependencies"]}
	if groups, ok := poetry["group"].(map[string]any); ok {
		for _, g := range groups {
			if gt, ok := g.(map[string]any); ok {
				tables = append(tables, gt["dependencies"])
			}
		}
	}

	seen := make(map[string]bool)
	for _, t := range tables {
		deps, ok := t.(map[string]any)
		if !ok {
			continue
		}
		for name := range deps {
			if name != "python" {
				seen[name] = true
			}
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func poetryTable(doc map[string]any) map[string]any {
	tool, ok := doc["tool"].(map[string]any)
	if !ok {
		return nil
	}
	poetry, _ := tool["poetry"].(map[string]any)
	return poetry
}
