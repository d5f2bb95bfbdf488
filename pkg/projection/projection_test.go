//nolint:lll // readablity
package projection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFields() map[string]any {
	return map[string]any{
		"header": map[string]any{
			"packet-id": "car-damage",
			"game-year": uint8(24),
		},
		"car-damage-data": []map[string]any{
			{"tyres-wear": [4]float32{1, 2, 3, 4.5}, "engine-blown": false},
			{"tyres-wear": [4]float32{}, "engine-blown": true},
		},
	}
}

func TestJSON(t *testing.T) {
	s := JSON(sampleFields(), 0)
	assert.True(t, strings.HasPrefix(s, `{"car-damage-data":[`), s)
	assert.NotContains(t, s, "\n")

	assert.Contains(t, JSON(sampleFields(), 2), "\n  \"header\"")
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    []any
		wantErr bool
	}{
		{"nested key", "$.header['game-year']", []any{int64(24)}, false},
		{"array element", "$['car-damage-data'][0]['tyres-wear'][3]", []any{4.5}, false},
		{"wildcard", "$['car-damage-data'][*]['engine-blown']", []any{false, true}, false},
		{"missing key", "$.header.unknown", nil, false},
		{"invalid path", "$[", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(sampleFields(), tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
