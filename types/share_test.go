package types

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func Test_Secret_String(t *testing.T) {
	require.Equal(t, "0", Secret{}.String())
	require.Equal(t, "0", NewSecret(big.NewInt(0)).String())
	require.Equal(t, "42", NewSecret(big.NewInt(42)).String())
	require.Equal(t, "-42", NewSecret(big.NewInt(-42)).String())
	require.True(t, Secret{}.IsZero())
	require.False(t, NewSecret(big.NewInt(1)).IsZero())

	v := big.NewInt(7)
	s := NewSecret(v)
	v.SetInt64(8)
	require.Equal(t, "7", s.String())
}

func Test_ShareSet_Keys(t *testing.T) {
	set := ShareSet{K: 2, Shares: map[int]Share{
		10: {Key: 10}, 2: {Key: 2}, 1: {Key: 1},
	}}
	require.Equal(t, []int{1, 2, 10}, set.Keys())
	require.Equal(t, "{n=0 k=2 shares=[1 2 10]}", set.String())
}

func Test_Error_Kind(t *testing.T) {
	err := NewError(KindInvalidDigit, "invalid digit %q for radix %d", 'g', 16)
	require.Equal(t, "InvalidDigit: invalid digit 'g' for radix 16", err.Error())
	require.ErrorIs(t, err, ErrInvalidDigit)
	require.NotErrorIs(t, err, ErrEmptyValue)

	keyed := err.WithKey(3)
	require.Equal(t, "InvalidDigit: share 3: invalid digit 'g' for radix 16", keyed.Error())
	require.Equal(t, 0, err.Key)

	wrapped := xerrors.Errorf("record a.json: %w", keyed)
	require.ErrorIs(t, wrapped, ErrInvalidDigit)
	require.Equal(t, KindInvalidDigit, KindOf(wrapped))
	require.Equal(t, 3, KeyOf(wrapped))

	require.Equal(t, ErrorKind(""), KindOf(xerrors.New("plain")))
	require.Equal(t, 0, KeyOf(nil))
}

func Test_Response_View(t *testing.T) {
	ok := Response{ID: "a", Source: "s", Secret: NewSecret(big.NewInt(3))}
	require.False(t, ok.Failed())
	require.Equal(t, "s: 3", ok.String())
	require.Equal(t, ResponseView{ID: "a", Source: "s", Secret: "3"}, ok.View())

	failed := Response{ID: "b", Source: "s", Err: ErrEmptyValue.WithKey(2)}
	require.True(t, failed.Failed())
	view := failed.View()
	require.Empty(t, view.Secret)
	require.Equal(t, "EmptyValue", view.Error.Kind)
	require.Equal(t, 2, view.Error.Key)

	other := Response{Err: xerrors.New("boom")}
	require.Equal(t, "Error", other.View().Error.Kind)
}
