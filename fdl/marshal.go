package fdl

import "encoding/json"

// MarshalJSON implements json.Marshaler for Document.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToMap())
}

// ToMap converts the document to a native Go map of section name to field
// map. First-match semantics are preserved: when names collide, the
// earliest section and earliest field win, so a round-trip through the map
// agrees with [Document.Fetch].
func (d *Document) ToMap() map[string]map[string]string {
	result := make(map[string]map[string]string, len(d.tree))

	for _, s := range d.tree {
		if _, dup := result[s.Name]; dup {
			continue
		}

		fields := make(map[string]string, len(s.Fields))

		for _, f := range s.Fields {
			if _, dup := fields[f.Name]; dup {
				continue
			}

			fields[f.Name] = f.Value
		}

		result[s.Name] = fields
	}

	return result
}
