package vectors

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when cachePayload format changes.
const cacheSchemaVersion uint16 = 1

// Cache stores suite results on disk keyed by the suite file's content
// hash, so unchanged suites are not re-executed on repeated runs.
type Cache struct {
	dir string
}

type cachePayload struct {
	Schema uint16
	Suite  string
	Total  uint32
	Passed uint32
}

// OpenCache initializes and returns a result cache at the standard location.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "vectors")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(fingerprint []byte) string {
	key := sha256.Sum256(fingerprint)
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".msgpack")
}

// Lookup returns the cached result of a suite with the given fingerprint,
// or ok == false when there is none. Only fully passing results are cached,
// so a hit never hides a failure.
func (c *Cache) Lookup(fingerprint []byte) (SuiteResult, bool, error) {
	data, err := os.ReadFile(c.pathFor(fingerprint))
	if errors.Is(err, fs.ErrNotExist) {
		return SuiteResult{}, false, nil
	}
	if err != nil {
		return SuiteResult{}, false, err
	}
	var p cachePayload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		// A corrupt or stale entry is the same as a miss.
		return SuiteResult{}, false, nil
	}
	if p.Schema != cacheSchemaVersion {
		return SuiteResult{}, false, nil
	}
	return SuiteResult{
		Suite:  p.Suite,
		Total:  int(p.Total),
		Passed: int(p.Passed),
	}, true, nil
}

// Store records a suite result. Results with failures are not stored.
func (c *Cache) Store(fingerprint []byte, res SuiteResult) error {
	if len(res.Failures) > 0 {
		return nil
	}
	total, err := safecast.Conv[uint32](res.Total)
	if err != nil {
		return err
	}
	passed, err := safecast.Conv[uint32](res.Passed)
	if err != nil {
		return err
	}
	data, err := msgpack.Marshal(cachePayload{
		Schema: cacheSchemaVersion,
		Suite:  res.Suite,
		Total:  total,
		Passed: passed,
	})
	if err != nil {
		return err
	}
	tmp := c.pathFor(fingerprint) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.pathFor(fingerprint))
}
