package parse_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/cliarg/parse"
	"github.com/zclconf/go-cty/cty"
)

func TestParseType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src      string
		expected cty.Type
	}{
		{"string", cty.String},
		{"number", cty.Number},
		{"bool", cty.Bool},
		{"any", cty.DynamicPseudoType},
		{"list(number)", cty.List(cty.Number)},
		{"map(string)", cty.Map(cty.String)},
		{"set(bool)", cty.Set(cty.Bool)},
		{"object({ name = string, port = number })", cty.Object(map[string]cty.Type{"name": cty.String, "port": cty.Number})},
	}

	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := parse.ParseType(tc.src)
			require.NoError(t, err)
			require.True(t, tc.expected.Equals(got), "expected %s, got %s", tc.expected.FriendlyName(), got.FriendlyName())
		})
	}
}

func TestParseType_Errors(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"list(any)", "float", "list(number, string)", "tuple(number)", "1 +", `"string"`} {
		_, err := parse.ParseType(src)
		require.Error(t, err, "expected %q to be rejected", src)
	}
	require.Panics(t, func() { parse.MustValue("nope") })
}

func TestValue_List(t *testing.T) {
	t.Parallel()

	v := parse.MustValue("list(number)")
	require.False(t, v.IsSet())

	require.NoError(t, parse.Parse(v, "[1, 2, 3]"))
	require.True(t, v.IsSet())
	expected := cty.ListVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2), cty.NumberIntVal(3)})
	require.True(t, v.Val.Equals(expected).True(), "got %#v", v.Val)

	require.Error(t, parse.Parse(v, `["a"]`))
	require.Error(t, parse.Parse(v, "word"))
}

func TestValue_Map(t *testing.T) {
	t.Parallel()

	v := parse.MustValue("map(string)")
	require.NoError(t, v.ParseArg(`{ region = "eu", zone = "b" }`))
	require.Equal(t, "eu", v.Val.Index(cty.StringVal("region")).AsString())
	require.Equal(t, "b", v.Val.Index(cty.StringVal("zone")).AsString())
}

func TestValue_StringAcceptsBareWords(t *testing.T) {
	t.Parallel()

	v := parse.MustValue("string")
	require.NoError(t, v.ParseArg("hello"))
	require.Equal(t, "hello", v.Val.AsString())

	require.NoError(t, v.ParseArg(`"quoted"`))
	require.Equal(t, "quoted", v.Val.AsString())

	n := parse.MustValue("number")
	require.Error(t, n.ParseArg("hello"))
	require.NoError(t, n.ParseArg("12"))
	require.True(t, n.Val.Equals(cty.NumberIntVal(12)).True())
}

func TestValue_DefaultArity(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint(1), parse.DefaultArity(parse.MustValue("string")).Max())
}
