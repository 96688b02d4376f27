package guard

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssert(t *testing.T) {
	assert.NoError(t, Assert(true, http.StatusBadRequest, "never"))

	err := Assert(false, http.StatusNotFound, "post not found")
	var ge *Error
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, http.StatusNotFound, ge.Status)
	assert.Equal(t, "post not found", ge.Error())
}

func TestRequireFields(t *testing.T) {
	title := "T"
	empty := ""
	var nilPtr *string

	t.Run("all present", func(t *testing.T) {
		assert.NoError(t, RequireFields(Required("title", "T"), Required("content", &title), Required("n", 0)))
	})

	cases := map[string]any{
		"nil":           nil,
		"empty string":  "",
		"nil pointer":   nilPtr,
		"pointer to \"\"": &empty,
		"unset optional": Optional[string]{},
		"null optional":  Optional[string]{Set: true, Null: true},
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			err := RequireFields(Required("title", "ok"), Required("content", v))
			var ge *Error
			require.True(t, errors.As(err, &ge))
			assert.Equal(t, http.StatusBadRequest, ge.Status)
			assert.Contains(t, ge.Message, "content")
		})
	}
}

func TestEnsureOwner(t *testing.T) {
	assert.NoError(t, EnsureOwner("42", 42, "x"))
	assert.NoError(t, EnsureOwner("a1", "a1", "x"))

	err := EnsureOwner("a1", "b2", "not yours")
	var ge *Error
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, http.StatusForbidden, ge.Status)
	assert.Equal(t, "not yours", ge.Message)
}

type patch struct {
	Title   Optional[string] `json:"title"`
	Content Optional[string] `json:"content"`
}

func TestOptionalDecoding(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"title":"new"}`), &p))
	assert.True(t, p.Title.Set)
	assert.Equal(t, "new", p.Title.Value)
	assert.False(t, p.Content.Set)
	assert.True(t, p.Content.Blank())

	p = patch{}
	require.NoError(t, json.Unmarshal([]byte(`{"content":null}`), &p))
	assert.True(t, p.Content.Set)
	assert.True(t, p.Content.Null)
	assert.Empty(t, p.Content.Value)
}

func TestPickDefined(t *testing.T) {
	p := patch{Content: Optional[string]{Value: "body", Set: true}}
	got := PickDefined(Pick("title", p.Title), Pick("content", p.Content))
	assert.Equal(t, map[string]any{"content": "body"}, got)

	assert.Empty(t, PickDefined(Pick("title", Optional[string]{})))

	withNull := PickDefined(Pick("title", Optional[string]{Set: true, Null: true}))
	v, ok := withNull["title"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestNotNull(t *testing.T) {
	assert.NoError(t, NotNull("x", Pick("title", Optional[string]{Value: "a", Set: true}), Pick("content", Optional[string]{})))

	err := NotNull("cannot be null", Pick("title", Optional[string]{Set: true, Null: true}))
	var ge *Error
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, http.StatusBadRequest, ge.Status)
}
