// Package runner reconstructs batches of records concurrently.
package runner

import (
	"sync"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"go.dedis.ch/sssrecon/record"
	"go.dedis.ch/sssrecon/sss"
	"go.dedis.ch/sssrecon/storage"
	"go.dedis.ch/sssrecon/types"
	"golang.org/x/xerrors"
)

const (
	// DefaultWorkers is used when a Runner is created with no worker count.
	DefaultWorkers = 4
	// DefaultMaxEntries bounds the number of records a Runner remembers.
	DefaultMaxEntries = 1024
)

// NewRequest wraps an already decoded record.
func NewRequest(source string, set types.ShareSet) types.Request {
	return types.Request{
		ID:     xid.New().String(),
		Source: source,
		Set:    set,
	}
}

// NewRequestFromFile decodes the record stored at path. A decoding failure
// is kept in the request and reported in its response.
func NewRequestFromFile(path string) types.Request {
	req := types.Request{
		ID:     xid.New().String(),
		Source: path,
	}

	set, err := record.ParseFile(path)
	if err != nil {
		log.Debug().Str("id", req.ID).Msgf("failed to decode %s: %v", path, err)
		req.Err = err
		return req
	}
	req.Set = set

	return req
}

// Runner reconstructs requests. Identical records are only reconstructed
// once as long as they stay among the last maxEntries distinct records seen.
type Runner struct {
	workers    int
	maxEntries int
	opts       []sss.Option

	// mu serializes insertions and evictions in memo
	mu   sync.Mutex
	seq  uint64
	memo storage.KVStore
}

// outcome is the memoized result of one record. seq orders insertions.
type outcome struct {
	seq    uint64
	once   sync.Once
	secret types.Secret
	err    error
}

// NewRunner creates a runner using at most workers goroutines.
func NewRunner(workers int, opts ...sss.Option) *Runner {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Runner{
		workers:    workers,
		maxEntries: DefaultMaxEntries,
		opts:       opts,
		memo:       storage.NewSafeKV(),
	}
}

// WithMaxEntries sets how many distinct records are remembered. Older
// records are forgotten first. A non-positive value keeps the default.
func (r *Runner) WithMaxEntries(n int) *Runner {
	if n > 0 {
		r.maxEntries = n
	}
	return r
}

// Run answers every request. Responses are in the same order as requests.
func (r *Runner) Run(reqs []types.Request) []types.Response {
	responses := make([]types.Response, len(reqs))

	jobs := make(chan int)
	wg := sync.WaitGroup{}

	workers := r.workers
	if workers > len(reqs) {
		workers = len(reqs)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				responses[i] = r.handle(reqs[i])
			}
		}()
	}

	for i := range reqs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return responses
}

// Computed returns how many distinct records are currently remembered.
func (r *Runner) Computed() int {
	return r.memo.Len()
}

func (r *Runner) handle(req types.Request) types.Response {
	resp := types.Response{
		ID:     req.ID,
		Source: req.Source,
	}

	if req.Err != nil {
		resp.Err = req.Err
		return resp
	}

	digest, err := storage.Digest(req.Set)
	if err != nil {
		resp.Err = xerrors.Errorf("failed to digest record: %w", err)
		return resp
	}
	resp.Digest = digest

	res, loaded := r.lookup(digest)
	res.once.Do(func() {
		res.secret, res.err = sss.Reconstruct(req.Set, r.opts...)
	})

	if res.secret.Value != nil {
		resp.Secret = types.NewSecret(res.secret.Value)
	}
	resp.Err = res.err
	resp.Cached = loaded

	if resp.Err != nil {
		log.Info().Str("id", req.ID).Str("source", req.Source).
			Str("kind", string(types.KindOf(resp.Err))).Msg("reconstruction failed")
	} else {
		log.Info().Str("id", req.ID).Str("source", req.Source).
			Bool("cached", loaded).Msg("secret reconstructed")
	}

	return resp
}

// lookup returns the memo entry of digest, creating it if needed.
func (r *Runner) lookup(digest string) (*outcome, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	v, loaded := r.memo.GetOrPut(digest, &outcome{seq: r.seq})
	if !loaded {
		r.evict()
	}
	return v.(*outcome), loaded
}

// evict drops the oldest entries until the memo fits in maxEntries. Entries
// being computed stay valid for the goroutines already holding them.
func (r *Runner) evict() {
	for r.memo.Len() > r.maxEntries {
		var oldest string
		var oldestSeq uint64
		r.memo.For(func(key string, value interface{}) error {
			seq := value.(*outcome).seq
			if oldest == "" || seq < oldestSeq {
				oldest, oldestSeq = key, seq
			}
			return nil
		})

		log.Debug().Msgf("forgetting record %s", oldest)
		r.memo.Del(oldest)
	}
}
