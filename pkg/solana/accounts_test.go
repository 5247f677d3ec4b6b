package solana

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionalAccountGroup(t *testing.T) {
	keys := generateKeys(t, 2)
	first := NewAccountMeta(public(keys[0]), false)
	second := NewReadonlyAccountMeta(public(keys[1]), false)
	missing := NewAccountMeta(nil, false)
	truncated := NewAccountMeta(public(keys[0])[:5], false)

	for _, tc := range []struct {
		name      string
		condition bool
		members   []AccountMeta
		expected  []AccountMeta
		err       error
	}{
		{name: "condition false", condition: false, members: []AccountMeta{first, second}},
		{name: "condition false with partial group", condition: false, members: []AccountMeta{first, missing}},
		{name: "none supplied", condition: true, members: []AccountMeta{missing, missing}},
		{name: "all supplied", condition: true, members: []AccountMeta{first, second}, expected: []AccountMeta{first, second}},
		{name: "first missing", condition: true, members: []AccountMeta{missing, second}, err: ErrIncompleteConditionalGroup},
		{name: "second missing", condition: true, members: []AccountMeta{first, missing}, err: ErrIncompleteConditionalGroup},
		{name: "empty group", condition: true},
		{name: "truncated key", condition: true, members: []AccountMeta{truncated, second}, err: ErrIncompleteConditionalGroup},
		{name: "truncated key alone", condition: true, members: []AccountMeta{missing, truncated}, err: ErrIncompleteConditionalGroup},
		{name: "condition false with truncated key", condition: false, members: []AccountMeta{truncated, second}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			segment, err := ConditionalAccountGroup(tc.condition, tc.members...)
			if tc.err != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.err))
				assert.Nil(t, segment)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, segment)
		})
	}
}

func TestConditionalAccountGroup_ReturnsCopy(t *testing.T) {
	keys := generateKeys(t, 2)
	members := []AccountMeta{
		NewAccountMeta(public(keys[0]), false),
		NewAccountMeta(public(keys[1]), false),
	}

	segment, err := ConditionalAccountGroup(true, members...)
	require.NoError(t, err)

	segment[0].IsWritable = false
	assert.True(t, members[0].IsWritable)
}
