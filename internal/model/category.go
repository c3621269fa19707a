package model

// CategoryMap maps a platform category id to its display name. It is
// fetched once per run and treated as an immutable snapshot; ids the
// platform never assigned simply have no entry.
type CategoryMap map[int]string

// Name looks up a category id, reporting whether the id is known.
func (m CategoryMap) Name(id int) (string, bool) {
	name, ok := m[id]
	return name, ok
}
