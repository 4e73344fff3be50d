package classifier

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/rfmatch/internal/storage"
)

// Source says where the model artifact lives. Key takes precedence over Path.
type Source struct {
	Path string
	Key  string
}

// Load reads and decodes the model artifact. Callers treat a failure as fatal:
// every prediction depends on it.
func Load(ctx context.Context, store storage.ObjectStore, src Source) (*Forest, error) {
	var (
		data   []byte
		err    error
		origin string
	)

	switch {
	case src.Key != "":
		if store == nil {
			return nil, fmt.Errorf("classifier key %q configured without an object store", src.Key)
		}
		origin = "s3:" + src.Key
		data, err = store.Fetch(ctx, src.Key)
	case src.Path != "":
		origin = src.Path
		data, err = os.ReadFile(src.Path)
	default:
		return nil, fmt.Errorf("no classifier model source configured")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier model from %s: %w", origin, err)
	}

	forest, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode classifier model from %s: %w", origin, err)
	}

	log.Info().
		Str("source", origin).
		Int("trees", len(forest.Trees)).
		Strs("classes", forest.Classes).
		Msg("Classifier model loaded")

	return forest, nil
}
