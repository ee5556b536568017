package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseCategory(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Category
		wantErr  bool
	}{
		{name: "Success - known tag", input: "ELECTRONICS", expected: CategoryElectronics},
		{name: "Success - another known tag", input: "BOOKS", expected: CategoryBooks},
		{name: "Error - lowercase is not a known tag", input: "electronics", wantErr: true},
		{name: "Error - unknown tag", input: "GROCERIES", wantErr: true},
		{name: "Error - empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			category, err := ParseCategory(tc.input)
			// then
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, category)
		})
	}
}

func Test_Category_Valid(t *testing.T) {
	assert.True(t, CategorySports.Valid())
	assert.False(t, Category("SPORT").Valid())
	assert.False(t, Category("").Valid())
}
