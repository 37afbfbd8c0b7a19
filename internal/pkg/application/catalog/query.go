package catalog

// Include is the set of relationship names to resolve into nested records.
type Include map[string]bool

func (i Include) Has(relation string) bool {
	return i[relation]
}

// Query describes a request for one kind of resource.
type Query struct {
	ID int
	// Text filters on title for films and on name for every other kind.
	Text  string
	Model string

	Include Include
	All     bool
	Order   string
}

// normalize expands All into the full relationship set and lets an id
// take precedence over any text filter.
func (q Query) normalize(relations []string) Query {
	include := Include{}
	for r, requested := range q.Include {
		include[r] = requested
	}

	if q.All {
		for _, r := range relations {
			include[r] = true
		}
	}

	q.Include = include

	if q.ID != 0 {
		q.Text = ""
		q.Model = ""
	}

	return q
}

// searchParams maps the text filters onto the catalog's search parameter.
// A name filter wins over a model filter.
func (q Query) searchParams() map[string]string {
	if q.Text != "" {
		return map[string]string{"search": q.Text}
	}

	if q.Model != "" {
		return map[string]string{"search": q.Model}
	}

	return nil
}
