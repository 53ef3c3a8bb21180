package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldUnmarshal(t *testing.T) {
	t.Parallel()

	type body struct {
		Title       Field[string]  `json:"title"`
		ActualHours Field[float64] `json:"actual_hours"`
	}

	t.Run("absent field stays unset", func(t *testing.T) {
		t.Parallel()
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{}`), &b))
		assert.False(t, b.Title.Set)
		assert.False(t, b.ActualHours.Set)
	})

	t.Run("null field is set and null", func(t *testing.T) {
		t.Parallel()
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{"actual_hours": null}`), &b))
		assert.False(t, b.Title.Set)
		assert.True(t, b.ActualHours.Set)
		assert.True(t, b.ActualHours.Null)
	})

	t.Run("value field carries the value", func(t *testing.T) {
		t.Parallel()
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{"title": "fix login", "actual_hours": 1.5}`), &b))
		assert.True(t, b.Title.Set)
		assert.False(t, b.Title.Null)
		assert.Equal(t, "fix login", b.Title.Value)
		assert.Equal(t, 1.5, b.ActualHours.Value)
	})

	t.Run("type mismatch errors", func(t *testing.T) {
		t.Parallel()
		var b body
		assert.Error(t, json.Unmarshal([]byte(`{"actual_hours": "lots"}`), &b))
	})
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	v := ValueOf(int64(7))
	assert.True(t, v.Set)
	assert.False(t, v.Null)
	assert.Equal(t, int64(7), v.Value)

	n := Null[int64]()
	assert.True(t, n.Set)
	assert.True(t, n.Null)
}
