package glenum

import "fmt"

// token is the underlying kind shared by every enumeration and bitfield group.
type token interface {
	~uint32
}

// group is the member table of one enumeration group.
type group[T token] struct {
	name    string
	members map[T]string
}

func newGroup[T token](name string, members map[T]string) *group[T] {
	return &group[T]{name: name, members: members}
}

// parse converts a raw token into a member of the group.
func (g *group[T]) parse(raw uint32) (T, bool) {
	v := T(raw)
	if _, ok := g.members[v]; ok {
		return v, true
	}
	invalidToken(g.name, raw)
	return 0, false
}

func (g *group[T]) contains(v T) bool {
	_, ok := g.members[v]
	return ok
}

func (g *group[T]) str(v T) string {
	if s, ok := g.members[v]; ok {
		return s
	}
	return fmt.Sprintf("%s(0x%04X)", g.name, uint32(v))
}

// merge adds the members of other groups, converting their values.
func merge[T, U token](dst *group[T], src *group[U]) {
	for v, s := range src.members {
		if _, ok := dst.members[T(v)]; !ok {
			dst.members[T(v)] = s
		}
	}
}
