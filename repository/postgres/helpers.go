package postgres

import "fmt"

const maxPageSize = 100

// paginate appends a LIMIT/OFFSET clause when the caller asked for a page.
// A non-positive limit means "every row": stats aggregate over a user's full
// history and must never be truncated. Explicit page sizes are capped at
// maxPageSize.
func paginate(query string, args []interface{}, limit, offset int) (string, []interface{}) {
	if limit <= 0 {
		return query, args
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	n := len(args)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2)
	return query, append(args, limit, offset)
}
