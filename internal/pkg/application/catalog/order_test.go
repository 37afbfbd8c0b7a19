package catalog

import (
	"testing"

	"github.com/matryer/is"
)

type named struct {
	name string
	seq  int
}

func byName(n named) string { return n.name }

func names(records []named) []string {
	s := make([]string, len(records))
	for i, r := range records {
		s[i] = r.name
	}
	return s
}

func TestOrderAscendingIgnoresCase(t *testing.T) {
	is := is.New(t)

	sorted := orderBy([]named{{name: "C"}, {name: "a"}, {name: "B"}}, "asc", byName)

	is.Equal(names(sorted), []string{"a", "B", "C"})
}

func TestOrderDescending(t *testing.T) {
	is := is.New(t)

	sorted := orderBy([]named{{name: "C"}, {name: "a"}, {name: "B"}}, "DESC", byName)

	is.Equal(names(sorted), []string{"C", "B", "a"})
}

func TestOrderIgnoresUnknownTokens(t *testing.T) {
	is := is.New(t)

	for _, order := range []string{"banana", "", "ascending", "up"} {
		sorted := orderBy([]named{{name: "C"}, {name: "a"}, {name: "B"}}, order, byName)
		is.Equal(names(sorted), []string{"C", "a", "B"}) // order should be left untouched
	}
}

func TestOrderAcceptsSurroundingWhitespace(t *testing.T) {
	is := is.New(t)

	sorted := orderBy([]named{{name: "b"}, {name: "a"}}, " asc ", byName)

	is.Equal(names(sorted), []string{"a", "b"})
}

func TestOrderKeepsTiesInOriginalOrderInBothDirections(t *testing.T) {
	is := is.New(t)

	input := func() []named {
		return []named{{"x", 1}, {"Dup", 2}, {"", 3}, {"dup", 4}, {"a", 5}, {"DUP", 6}}
	}

	asc := orderBy(input(), "asc", byName)
	is.Equal(asc, []named{{"", 3}, {"a", 5}, {"Dup", 2}, {"dup", 4}, {"DUP", 6}, {"x", 1}})

	desc := orderBy(input(), "desc", byName)
	is.Equal(desc, []named{{"x", 1}, {"Dup", 2}, {"dup", 4}, {"DUP", 6}, {"a", 5}, {"", 3}})
}
