package country

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countries-backend/internal/shared/result"
)

func TestNewValidCountry(t *testing.T) {
	r := New("Argentina", "ar")

	require.True(t, r.IsOk())
	c := r.Value()
	assert.NotEqual(t, "", c.ID().String())
	assert.Equal(t, "Argentina", c.Name())
	assert.Equal(t, "AR", c.Code())
	assert.Empty(t, c.Cities())
}

func TestNewTrimsNameAndCode(t *testing.T) {
	r := New("  Argentina  ", "  ar ")

	require.True(t, r.IsOk())
	assert.Equal(t, "Argentina", r.Value().Name())
	assert.Equal(t, "AR", r.Value().Code())
}

func TestNewCodeIsOptional(t *testing.T) {
	r := New("Argentina", "")

	require.True(t, r.IsOk())
	assert.Equal(t, "", r.Value().Code())

	r = New("Argentina", "   ")
	require.True(t, r.IsOk())
	assert.Equal(t, "", r.Value().Code())
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		label   string
		name    string
		code    string
		message string
	}{
		{"blank name", "", "AR", "Country name is required."},
		{"whitespace name", "   ", "AR", "Country name is required."},
		{"long name", strings.Repeat("a", 101), "AR", "Country name must not exceed 100 characters."},
		{"long code", "Argentina", strings.Repeat("x", 11), "Country code must not exceed 10 characters."},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			r := New(tt.name, tt.code)

			assert.False(t, r.IsOk())
			require.NotNil(t, r.Err())
			assert.Equal(t, result.KindValidation, r.Err().Kind)
			assert.Equal(t, tt.message, r.Err().Message)
		})
	}
}

func TestNameLengthIsMeasuredInRunes(t *testing.T) {
	// 100 multi-byte characters are within the limit even though the byte
	// count is larger.
	r := New(strings.Repeat("ü", 100), "")

	assert.True(t, r.IsOk())
}

func TestUpdateMutatesInPlace(t *testing.T) {
	c := New("Argentna", "").Value()
	id := c.ID()

	r := c.Update("Argentina", "ar")

	require.True(t, r.IsOk())
	assert.Equal(t, id, c.ID())
	assert.Equal(t, "Argentina", c.Name())
	assert.Equal(t, "AR", c.Code())
}

func TestUpdateRejectsInvalidStateUnchanged(t *testing.T) {
	c := New("Argentina", "AR").Value()

	r := c.Update("", "XX")

	assert.False(t, r.IsOk())
	assert.Equal(t, "Argentina", c.Name())
	assert.Equal(t, "AR", c.Code())
}

func TestFilterMatches(t *testing.T) {
	ar := Rehydrate(New("Argentina", "AR").Value().ID(), "Argentina", "AR", nil)
	noCode := New("Nowhere", "").Value()

	assert.True(t, NewFilter("").Matches(ar))
	assert.True(t, NewFilter("gent").Matches(ar))
	assert.True(t, NewFilter("ARGENTINA").Matches(ar))
	assert.True(t, NewFilter("ar").Matches(ar))
	assert.False(t, NewFilter("zz").Matches(ar))

	// A country without a code never matches through the code field.
	assert.False(t, NewFilter("a").Matches(noCode))
}
