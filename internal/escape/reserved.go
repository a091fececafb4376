package escape

import "strings"

// reservedWords is the set of common SQL reserved words checked when
// proposing identifiers. The list is deliberately the cross-dialect core
// rather than any one backend's full catalog.
var reservedWords = map[string]struct{}{
	"all": {}, "and": {}, "any": {}, "as": {}, "asc": {}, "between": {},
	"by": {}, "case": {}, "cast": {}, "check": {}, "column": {},
	"constraint": {}, "create": {}, "cross": {}, "current": {},
	"default": {}, "delete": {}, "desc": {}, "distinct": {}, "drop": {},
	"else": {}, "end": {}, "except": {}, "exists": {}, "false": {},
	"from": {}, "full": {}, "group": {}, "having": {}, "in": {},
	"inner": {}, "insert": {}, "intersect": {}, "into": {}, "is": {},
	"join": {}, "left": {}, "like": {}, "limit": {}, "not": {},
	"null": {}, "on": {}, "or": {}, "order": {}, "outer": {},
	"primary": {}, "references": {}, "right": {}, "select": {}, "set": {},
	"table": {}, "then": {}, "true": {}, "union": {}, "unique": {},
	"update": {}, "user": {}, "values": {}, "when": {}, "where": {},
	"with": {},
}

// IsReserved reports whether ident collides with a reserved word. Collisions
// are warned about but not rejected: the identifier is still usable, quoted
// or not, on every supported backend.
func IsReserved(ident string) bool {
	_, ok := reservedWords[strings.ToLower(ident)]
	return ok
}
