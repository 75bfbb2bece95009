package fotmob

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTeam = `{
	"details": {"id": 8540, "name": "Palermo", "rating": 6.85, "active": true, "coach": null},
	"fixtures": [{"id": 1}, {"id": 2}]
}`

func mustDecode(t *testing.T, body string) Value {
	t.Helper()
	v, err := decode([]byte(body))
	require.NoError(t, err)
	return v
}

func TestValueAccessors(t *testing.T) {
	v := mustDecode(t, sampleTeam)

	assert.Equal(t, ObjectValue, v.Kind())
	assert.Equal(t, []string{"details", "fixtures"}, v.Keys())

	details := v.Get("details")
	id, ok := details.Get("id").AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(8540), id)

	rating, ok := details.Get("rating").AsFloat()
	assert.True(t, ok)
	assert.InDelta(t, 6.85, rating, 1e-9)

	_, ok = details.Get("rating").AsInt()
	assert.False(t, ok)

	active, ok := details.Get("active").AsBool()
	assert.True(t, ok)
	assert.True(t, active)

	coach, present := details.Lookup("coach")
	assert.True(t, present)
	assert.True(t, coach.IsNull())
	assert.True(t, details.Has("coach"))
	assert.False(t, details.Has("stadium"))

	fixtures := v.Get("fixtures")
	assert.Equal(t, ArrayValue, fixtures.Kind())
	assert.Equal(t, 2, fixtures.Len())
	second, _ := fixtures.Index(1).Get("id").AsInt()
	assert.Equal(t, int64(2), second)
}

func TestValueMismatchesAreNull(t *testing.T) {
	v := mustDecode(t, sampleTeam)

	assert.True(t, v.Get("missing").IsNull())
	assert.True(t, v.Index(0).IsNull())
	assert.True(t, v.Get("fixtures").Index(5).IsNull())
	assert.True(t, v.Get("fixtures").Index(-1).IsNull())
	assert.True(t, v.Path("details", "name", "deeper").IsNull())
	assert.Nil(t, v.Get("details").Get("name").Keys())

	_, ok := v.Get("details").AsString()
	assert.False(t, ok)
	assert.Zero(t, String("x").Len())
}

func TestValueNative(t *testing.T) {
	v := mustDecode(t, `{"id": 8540, "rating": 6.5, "tags": ["a", null, false]}`)

	expected := map[string]any{
		"id":     8540,
		"rating": 6.5,
		"tags":   []any{"a", nil, false},
	}
	assert.Equal(t, expected, v.Native())

	back, err := FromNative(v.Native())
	require.NoError(t, err)
	assert.True(t, v.Equal(back))

	_, err = FromNative(struct{}{})
	assert.Error(t, err)
}

func TestValueJSON(t *testing.T) {
	v := mustDecode(t, `{"name":"Palermo","id":8540,"big":12345678901234567890,"list":[1,"two",null]}`)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Palermo","id":8540,"big":12345678901234567890,"list":[1,"two",null]}`, string(out))
	assert.Contains(t, string(out), "12345678901234567890")

	var embedded struct {
		Payload Value `json:"payload"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"payload": {"id": 1}}`), &embedded))
	id, _ := embedded.Payload.Get("id").AsInt()
	assert.Equal(t, int64(1), id)
}

func TestValueEqual(t *testing.T) {
	a := Object(map[string]Value{"id": Int(1), "list": Array(String("x"), Null())})
	b := Object(map[string]Value{"id": Int(1), "list": Array(String("x"), Null())})
	c := Object(map[string]Value{"id": Int(2), "list": Array(String("x"), Null())})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, Int(1).Equal(String("1")))
	assert.True(t, Null().Equal(Value{}))
	assert.Equal(t, 0, Array().Len())
	assert.Equal(t, ObjectValue, Object(nil).Kind())
}

func TestDecodeRejectsInvalid(t *testing.T) {
	for _, body := range []string{"not valid json", "", "   ", "{", "[1,]", "{}x", "1 2"} {
		_, err := decode([]byte(body))
		require.Error(t, err, "body %q", body)
		assert.ErrorIs(t, err, ErrInvalidResponse, "body %q", body)
	}
}

func TestDecodeScalarRoot(t *testing.T) {
	v := mustDecode(t, ` "hello" `)
	s, ok := v.AsString()
	assert.True(t, ok)
	assert.Equal(t, "hello", s)
}
