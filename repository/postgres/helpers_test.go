package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	const base = `SELECT id FROM calls WHERE user_id = $1`

	t.Run("zero limit reads every row", func(t *testing.T) {
		// Stats aggregate over a user's full history; a zero limit must not
		// turn into a LIMIT clause that truncates users past one page.
		query, args := paginate(base, []interface{}{int64(1)}, 0, 0)
		assert.Equal(t, base, query)
		assert.Equal(t, []interface{}{int64(1)}, args)
	})

	t.Run("negative limit reads every row", func(t *testing.T) {
		query, args := paginate(base, []interface{}{int64(1)}, -5, 0)
		assert.Equal(t, base, query)
		assert.Len(t, args, 1)
	})

	t.Run("explicit page appends clause", func(t *testing.T) {
		query, args := paginate(base, []interface{}{int64(1)}, 20, 40)
		assert.Equal(t, base+" LIMIT $2 OFFSET $3", query)
		assert.Equal(t, []interface{}{int64(1), 20, 40}, args)
	})

	t.Run("page size is capped", func(t *testing.T) {
		_, args := paginate(base, []interface{}{int64(1)}, 5000, 0)
		assert.Equal(t, maxPageSize, args[1])
	})

	t.Run("negative offset is zeroed", func(t *testing.T) {
		_, args := paginate(base, []interface{}{int64(1)}, 10, -3)
		assert.Equal(t, 0, args[2])
	})

	t.Run("placeholders follow existing args", func(t *testing.T) {
		query, _ := paginate(base+` AND status = $2`, []interface{}{int64(1), "completed"}, 10, 0)
		assert.Equal(t, base+` AND status = $2 LIMIT $3 OFFSET $4`, query)
	})
}
