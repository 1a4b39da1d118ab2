package store

import (
	"strconv"
	"strings"
)

// Cond is a boolean predicate over entity columns, rendered into the SQL
// WHERE clause of the query that carries it. Placeholders are written as "?"
// and renumbered to positional parameters when the query is built, so conds
// compose in any order.
type Cond struct {
	expr string
	args []any
}

// Eq matches rows where the column equals the value.
func Eq(col string, v any) Cond { return Cond{expr: col + " = ?", args: []any{v}} }

// Ne matches rows where the column differs from the value.
func Ne(col string, v any) Cond { return Cond{expr: col + " <> ?", args: []any{v}} }

// Contains is a case-sensitive substring match, used for identifier-like
// fields (license number, id number). The value matches literally: LIKE
// metacharacters in it are escaped.
func Contains(col, s string) Cond {
	return Cond{expr: col + ` LIKE '%' || ? || '%' ESCAPE '\'`, args: []any{escapeLike(s)}}
}

// ContainsFold is a case-insensitive substring match, used for free-text
// fields (name, specialty, diagnosis). The value matches literally.
func ContainsFold(col, s string) Cond {
	return Cond{expr: col + ` ILIKE '%' || ? || '%' ESCAPE '\'`, args: []any{escapeLike(s)}}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike quotes %, _ and \ so the value is a literal substring pattern
// under ESCAPE '\'.
func escapeLike(s string) string { return likeEscaper.Replace(s) }

// Gte matches rows where the column is greater than or equal to the value.
// Range bounds are inclusive.
func Gte(col string, v any) Cond { return Cond{expr: col + " >= ?", args: []any{v}} }

// Lte matches rows where the column is less than or equal to the value.
func Lte(col string, v any) Cond { return Cond{expr: col + " <= ?", args: []any{v}} }

// renumber rewrites "?" placeholders in expr to $n positional parameters
// starting at start, returning the rewritten expression and the next index.
func renumber(expr string, start int) (string, int) {
	var sb strings.Builder
	n := start
	for _, r := range expr {
		if r == '?' {
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			n++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String(), n
}
