package tmdb_test

import (
	"encoding/json"
	"testing"

	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableString_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *string
	}{
		{name: "value", input: `"Disney+"`, want: stringPtr("Disney+")},
		{name: "empty string maps to nil", input: `""`, want: nil},
		{name: "null maps to nil", input: `null`, want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var s tmdb.NullableString

			err := json.Unmarshal([]byte(tt.input), &s)
			require.NoError(t, err)

			if tt.want == nil {
				assert.Nil(t, s.Value)
				assert.Empty(t, s.String())
			} else {
				require.NotNil(t, s.Value)
				assert.Equal(t, *tt.want, *s.Value)
				assert.Equal(t, *tt.want, s.String())
			}
		})
	}
}

func TestNullableString_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(tmdb.NullableString{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	data, err = json.Marshal(tmdb.NullableString{Value: stringPtr("HBO")})
	require.NoError(t, err)
	assert.Equal(t, `"HBO"`, string(data))
}

func TestAlternativeName_EmptyType(t *testing.T) {
	t.Parallel()

	body := []byte(`{"name":"Lucasfilm","type":""}`)

	var name tmdb.AlternativeName

	err := json.Unmarshal(body, &name)
	require.NoError(t, err)
	assert.Equal(t, "Lucasfilm", name.Name)
	assert.Nil(t, name.Kind.Value)
}

func TestDatedPage_Unmarshal(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"dates": {"maximum": "2026-08-15", "minimum": "2026-07-01"},
		"page": 1,
		"results": [{"id": 550, "title": "Fight Club"}],
		"total_pages": 1,
		"total_results": 1
	}`)

	var page tmdb.DatedPage[tmdb.Movie]

	err := json.Unmarshal(body, &page)
	require.NoError(t, err)
	assert.Equal(t, "2026-07-01", page.Dates.Minimum)
	assert.Equal(t, "2026-08-15", page.Dates.Maximum)
	require.Len(t, page.Results, 1)
	assert.Equal(t, int64(550), page.Results[0].ID)
}

func stringPtr(s string) *string {
	return &s
}
