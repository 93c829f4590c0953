package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Shape
		want    Shape
		wantErr bool
	}{
		{"equal", Shape{3, 4}, Shape{3, 4}, Shape{3, 4}, false},
		{"scalar left", ScalarShape, Shape{2, 5}, Shape{2, 5}, false},
		{"scalar right", Shape{2, 5}, ScalarShape, Shape{2, 5}, false},
		{"both scalar", ScalarShape, ScalarShape, Shape{}, true},
		{"different", Shape{2, 2}, Shape{3, 3}, Shape{}, true},
		{"transposed", Shape{2, 3}, Shape{3, 2}, Shape{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.a, tt.b)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrShapeMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShapeValidate(t *testing.T) {
	for _, s := range []Shape{{1, 1}, {3, 4}} {
		assert.NoError(t, s.Validate(), "Shape%v", s)
	}
	for _, s := range []Shape{{0, 0}, {0, 3}, {3, 0}, {-1, 2}} {
		assert.ErrorIs(t, s.Validate(), ErrBadShape, "Shape%v", s)
	}
}

func TestShapeBasics(t *testing.T) {
	assert.True(t, ScalarShape.IsScalar())
	assert.False(t, Shape{1, 1}.IsScalar())
	assert.Equal(t, 1, ScalarShape.NumElements())
	assert.Equal(t, 12, Shape{3, 4}.NumElements())
	assert.Equal(t, "3x4", Shape{3, 4}.String())
	assert.Equal(t, "scalar", ScalarShape.String())
	assert.True(t, Shape{2, 2}.Equal(Shape{2, 2}))
}
