package runner

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.dedis.ch/sssrecon/sss"
	"go.dedis.ch/sssrecon/types"
)

const scenarioA = `{
  "keys": {"n": 4, "k": 3},
  "1": {"base": "10", "value": "4"},
  "2": {"base": "2", "value": "111"},
  "3": {"base": "10", "value": "12"},
  "6": {"base": "4", "value": "213"}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}

func Test_Runner_Files(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	dir := t.TempDir()

	reqs := []types.Request{
		NewRequestFromFile(writeFile(t, dir, "a.json", scenarioA)),
		NewRequestFromFile(writeFile(t, dir, "b.json", `{"keys": {"n": 4, "k": 5}, "1": {"base": "10", "value": "4"}}`)),
		NewRequestFromFile(writeFile(t, dir, "c.json", `{"keys": {"k": 1}, "1": {"base": "16", "value": "g"}}`)),
		NewRequestFromFile(writeFile(t, dir, "d.json", `{"1": {"base": "10", "value": "4"}}`)),
		NewRequestFromFile(filepath.Join(dir, "missing.json")),
	}

	responses := NewRunner(2).Run(reqs)
	require.Len(t, responses, len(reqs))

	for i, resp := range responses {
		require.Equal(t, reqs[i].ID, resp.ID)
		require.Equal(t, reqs[i].Source, resp.Source)
	}

	require.NoError(t, responses[0].Err)
	require.Equal(t, "3", responses[0].Secret.String())
	require.NotEmpty(t, responses[0].Digest)

	require.ErrorIs(t, responses[1].Err, types.ErrInsufficientShares)

	require.ErrorIs(t, responses[2].Err, types.ErrInvalidDigit)
	require.Equal(t, 1, types.KeyOf(responses[2].Err))

	require.ErrorIs(t, responses[3].Err, types.ErrMalformedRecord)
	require.Empty(t, responses[3].Digest)

	require.Error(t, responses[4].Err)
	require.True(t, responses[4].Failed())
}

func Test_Runner_Memoizes_Identical_Records(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	secret := big.NewInt(123456789)
	set, err := sss.Deal(secret, 5, 3, []int{7, 11})
	require.NoError(t, err)

	reqs := make([]types.Request, 20)
	for i := range reqs {
		reqs[i] = NewRequest("dealt", set)
	}

	r := NewRunner(8)
	responses := r.Run(reqs)

	cached := 0
	for _, resp := range responses {
		require.NoError(t, resp.Err)
		require.Equal(t, "123456789", resp.Secret.String())
		if resp.Cached {
			cached++
		}
	}
	require.Equal(t, len(reqs)-1, cached)
	require.Equal(t, 1, r.Computed())

	// unique ids
	ids := map[string]struct{}{}
	for _, req := range reqs {
		ids[req.ID] = struct{}{}
	}
	require.Len(t, ids, len(reqs))
}

func Test_Runner_Options(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	set := types.ShareSet{N: 1, K: 1, Shares: map[int]types.Share{
		1: {Key: 1, Base: 10, Digits: ""},
	}}

	responses := NewRunner(1).Run([]types.Request{NewRequest("empty", set)})
	require.ErrorIs(t, responses[0].Err, types.ErrEmptyValue)

	responses = NewRunner(1, sss.WithEmptyAsZero()).Run([]types.Request{NewRequest("empty", set)})
	require.NoError(t, responses[0].Err)
	require.Equal(t, "0", responses[0].Secret.String())
}

func Test_Runner_No_Request(t *testing.T) {
	require.Empty(t, NewRunner(0).Run(nil))
}

func Test_Runner_Bounded_Memo(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	reqs := make([]types.Request, 10)
	for i := range reqs {
		set, err := sss.Deal(big.NewInt(int64(1000+i)), 3, 2, []int{10})
		require.NoError(t, err)
		reqs[i] = NewRequest("dealt", set)
	}

	r := NewRunner(1).WithMaxEntries(3)
	responses := r.Run(reqs)
	for i, resp := range responses {
		require.NoError(t, resp.Err)
		require.False(t, resp.Cached)
		require.Equal(t, big.NewInt(int64(1000+i)).String(), resp.Secret.String())
	}
	require.Equal(t, 3, r.Computed())

	// the first record was forgotten, the last one is remembered
	responses = r.Run([]types.Request{reqs[len(reqs)-1], reqs[0]})
	require.True(t, responses[0].Cached)
	require.False(t, responses[1].Cached)
	require.Equal(t, "1000", responses[1].Secret.String())
	require.Equal(t, 3, r.Computed())
}

func Test_Runner_Cached_Secrets_Are_Copies(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	set, err := sss.Deal(big.NewInt(42), 3, 2, []int{16})
	require.NoError(t, err)

	r := NewRunner(1)
	first := r.Run([]types.Request{NewRequest("dealt", set)})[0]
	first.Secret.Value.SetInt64(7)

	second := r.Run([]types.Request{NewRequest("dealt", set)})[0]
	require.True(t, second.Cached)
	require.Equal(t, "42", second.Secret.String())
}
