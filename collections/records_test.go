package collections

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/awp3/loscore/testingz"
)

func TestWhere(t *testing.T) {
	books := loadRecords(t, "books.json")

	res := Where(books, Record{"author": "Shakespeare"})
	assert.Equal(t, []string{"Cymbeline", "The Tempest"}, lo.Map(res, func(r Record, _ int) string {
		return r["title"].(string)
	}))

	// Every criteria pair must match; the i-th record is not paired with the i-th key.
	res = Where(books, Record{"author": "Shakespeare", "year": float64(1611)})
	assert.Equal(t, []Record{books[1]}, res)

	assert.Empty(t, Where(books, Record{"author": "Shakespeare", "year": float64(1614)}))
	assert.Empty(t, Where(books, Record{"publisher": "Folio"}))
	assert.Equal(t, books, Where(books, Record{}))
	assert.Empty(t, Where([]Record{}, Record{"year": float64(1603)}))

	t.Run("Typed", func(t *testing.T) {
		scores := []map[string]int{{"a": 1, "b": 2}, {"a": 1}, {"a": 2, "b": 2}}
		assert.Equal(t, scores[:2], Where(scores, map[string]int{"a": 1}))
		assert.Equal(t, []map[string]int{scores[0], scores[2]}, Where(scores, map[string]int{"b": 2}))
	})

	t.Run("Uncomparable", func(t *testing.T) {
		rs := []Record{{"tags": []string{"a"}}, {"tags": "a"}}
		assert.Equal(t, rs[1:], Where(rs, Record{"tags": "a"}))
		assert.Empty(t, Where(rs, Record{"tags": []string{"a"}}))
	})

	t.Run("Nil", func(t *testing.T) {
		rs := []Record{{"v": nil}, {"v": 0}, {}}
		assert.Equal(t, rs[:1], Where(rs, Record{"v": nil}))
	})
}

func TestFindWhere(t *testing.T) {
	books := loadRecords(t, "books.json")

	testingz.O(FindWhere(books, Record{"year": float64(1614)})).Found(t).Equal(books[2])
	testingz.O(FindWhere(books, Record{"author": "Shakespeare"})).Found(t).Equal(books[0])
	testingz.O(FindWhere(books, Record{"year": float64(9999)})).Absent(t)
	testingz.O(FindWhere(books, Record{"author": "Shakespeare", "year": float64(1614)})).Absent(t)

	years := []map[string]int{{"y": 1610}, {"y": 1611}}
	testingz.O(FindWhere(years, map[string]int{"y": 1611})).Found(t).Equal(years[1])
	testingz.O(FindWhere(years, map[string]int{"y": 9999})).Absent(t)
}

func TestPluck(t *testing.T) {
	assert.Equal(t, []int{1, 3}, Pluck([]map[string]int{{"a": 1}, {"b": 2}, {"a": 3}}, "a"))

	books := loadRecords(t, "books.json")
	assert.Equal(t, []any{"Cymbeline", "The Tempest", "The Tempest2"}, Pluck(books, "title"))
	assert.Empty(t, Pluck(books, "name"))

	// A present key holding nil is still plucked.
	assert.Equal(t, []any{nil, 2}, Pluck([]Record{{"a": nil}, {"a": 2}, {}}, "a"))
}

func TestMax(t *testing.T) {
	inventory := loadRecords(t, "inventory.json")
	testingz.O(Max(inventory)).Found(t).Equal(inventory[2])

	testingz.O(Max([]map[string]int{{"q": 2}, {"q": 0}, {"q": 5}})).Found(t).Equal(map[string]int{"q": 5})

	books := loadRecords(t, "books.json")
	testingz.O(Max(books)).Found(t).Equal(books[2])

	t.Run("FirstWins", func(t *testing.T) {
		rs := []Record{{"id": "a", "n": 1}, {"id": "b", "n": int64(7)}, {"id": "c", "m": 7.0}}
		testingz.O(Max(rs)).Found(t).Equal(rs[1])
	})

	t.Run("MixedKinds", func(t *testing.T) {
		rs := []Record{{"n": uint8(3)}, {"n": float32(2.5)}, {"n": "99"}}
		testingz.O(Max(rs)).Found(t).Equal(rs[0])
	})

	testingz.O(Max([]Record{})).Absent(t)
	testingz.O(Max([]Record{{"name": "meow"}})).Absent(t)

	// Known defect: the running maximum starts at 0, so negative values are never picked.
	t.Run("AllNegative", func(t *testing.T) {
		testingz.O(Max([]map[string]int{{"q": -2}, {"q": -1}})).Absent(t)

		rs := []map[string]int{{"q": -2}, {"q": -1, "r": 0}}
		testingz.O(Max(rs)).Found(t).Equal(rs[1])
	})
}
