package cache

import (
	"testing"

	dom "github.com/JorgegrDev/medic-action/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeList_NilStoresEmptyArray(t *testing.T) {
	b, err := encodeList(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestDecodeList_EmptyArrayIsHit(t *testing.T) {
	list, err := decodeList([]byte("[]"))
	require.NoError(t, err)
	require.NotNil(t, list, "an empty cached list must not look like a miss")
	assert.Empty(t, list)
}

func TestListRoundTrip(t *testing.T) {
	in := []dom.Medication{{ID: 3, UserID: 1, Name: "Paracetamol", Dosage: "500mg"}}

	b, err := encodeList(in)
	require.NoError(t, err)
	out, err := decodeList(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
