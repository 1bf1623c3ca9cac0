package jsonz

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	type T struct {
		A string
		B int
	}
	bs := []byte(`{"a":"hello","b":1}`)
	tt, err := Unmarshal[T](bs)
	require.NoError(t, err)
	assert.Equal(t, T{A: "hello", B: 1}, *tt)

	bs2 := []byte(`{"a":"hello","b":}`)
	tt, err = Unmarshal[T](bs2)
	require.Error(t, err)
	var jerr *json.SyntaxError
	require.ErrorAs(t, err, &jerr)
	assert.Equal(t, "invalid character '}' looking for beginning of value", jerr.Error())
	assert.Nil(t, tt)
}

func TestReadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "years.json")
	require.NoError(t, os.WriteFile(name, []byte(`[1603, 1611]`), 0o600))

	res, err := ReadFile[[]int](name)
	require.NoError(t, err)
	assert.Equal(t, []int{1603, 1611}, *res)

	_, err = ReadFile[[]int](filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, "read file")
}

func TestRecords(t *testing.T) {
	rs, err := Records([]byte(`[{"title":"Cymbeline","year":1603},{"name":"meow"}]`))
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "Cymbeline", rs[0]["title"])
	assert.Equal(t, float64(1603), rs[0]["year"])
	assert.Equal(t, map[string]any{"name": "meow"}, rs[1])

	_, err = Records([]byte(`{"title":"Cymbeline"}`))
	var terr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &terr)
}
