package csvfile

import (
	"testing"

	"github.com/LENAX/ppm/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicantCodec(t *testing.T) {
	c := ApplicantCodec{}

	t.Run("IsActive为空时默认true", func(t *testing.T) {
		a, err := c.Decode([]string{"1", "Alice", "Johnson", "1992-06-15", "Female", "Idaho", ""})
		require.NoError(t, err)
		assert.True(t, a.IsActive)
	})

	t.Run("IsActive非法值", func(t *testing.T) {
		_, err := c.Decode([]string{"1", "Alice", "Johnson", "1992-06-15", "Female", "Idaho", "maybe"})
		assert.Error(t, err)
	})

	t.Run("列数不匹配", func(t *testing.T) {
		_, err := c.Decode([]string{"1", "Alice"})
		assert.Error(t, err)
	})

	t.Run("Merge总是采用新的IsActive", func(t *testing.T) {
		dst := model.Applicant{ID: 1, FirstName: "Alice", IsActive: true}
		got := c.Merge(dst, model.Applicant{LastName: "Smith"})
		assert.Equal(t, "Alice", got.FirstName)
		assert.Equal(t, "Smith", got.LastName)
		assert.False(t, got.IsActive)
	})
}

func TestCodecHeaders(t *testing.T) {
	assert.Equal(t, "Address_ID", AddressCodec{}.Header()[0])
	assert.Equal(t, "Contact_ID", ContactCodec{}.Header()[0])
	assert.Equal(t, "Applicant_ID", ApplicantCodec{}.Header()[0])

	// Header返回副本
	h := AddressCodec{}.Header()
	h[0] = "changed"
	assert.Equal(t, "Address_ID", AddressColumns[0])
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"", 0, false},
		{"3", 3, false},
		{"3.0", 3, false},
		{"3.5", 0, true},
		{"abc", 0, true},
		{"1e20", 0, true},
		{"-1e20", 0, true},
		{"9223372036854775808.0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseInt("Address_ID", tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
