package hybridize

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hybridize/blobstore"
	"github.com/hupe1980/hybridize/codec"
	"github.com/hupe1980/hybridize/indexrange"
	"github.com/hupe1980/hybridize/output"
	"github.com/hupe1980/hybridize/resource"
	"github.com/hupe1980/hybridize/scoring"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	other := errors.New("other")
	assert.Same(t, other, translateError(other))

	for _, tc := range []struct {
		in     error
		public error
	}{
		{output.ErrInvalidCapacity, ErrInvalidK},
		{output.ErrUnsupported, ErrUnsupported},
		{output.ErrCorruptSnapshot, ErrCorruptSnapshot},
		{fmt.Errorf("open: %w", blobstore.ErrNotFound), ErrNotFound},
		{resource.ErrMemoryLimitExceeded, ErrResourceExhausted},
		{scoring.ErrNilAccessibility, ErrInvalidArgument},
		{scoring.ErrEmptyInteraction, ErrInvalidArgument},
		{codec.ErrUnknownCodec, ErrInvalidArgument},
	} {
		err := translateError(tc.in)
		assert.ErrorIs(t, err, tc.public, tc.in.Error())
		assert.ErrorIs(t, err, tc.in, tc.in.Error())
	}
}

func TestTranslateError_Window(t *testing.T) {
	_, werr := indexrange.New(0, 3).OverlappingWindows(5, 4)
	require.Error(t, werr)

	err := translateError(fmt.Errorf("range pairs: %w", werr))
	assert.ErrorIs(t, err, ErrInvalidWindow)
	assert.ErrorIs(t, err, indexrange.ErrInvalidWindow)

	var we *ErrWindow
	require.ErrorAs(t, err, &we)
	assert.Equal(t, indexrange.New(0, 3), we.Range)
	assert.Equal(t, uint64(5), we.Width)
	assert.Equal(t, uint64(4), we.Overlap)
	assert.Contains(t, we.Error(), "width=5")
}
