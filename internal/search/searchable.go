package search

// Searchable marks an entity type whose rows are mirrored into the
// full-text index. An implementation declares its index name, its
// primary key, and the fields to index. The synchronizer only ever
// touches staged entities that implement this interface; everything
// else passes through commits untouched.
type Searchable interface {
	// SearchIndex is the index name, conventionally the table name.
	SearchIndex() string
	// SearchID is the document id, the entity's primary key.
	SearchID() uint64
	// SearchFields maps the declared field names to their current
	// values.
	SearchFields() map[string]interface{}
}
