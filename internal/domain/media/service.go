package media

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Upload is the result of ingesting a file: the bare object key and the
// absolute URL it can be fetched from.
type Upload struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type Service struct {
	store         Store
	publicBaseURL string
}

func NewService(store Store, publicBaseURL string) *Service {
	return &Service{
		store:         store,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Ingest stores an uploaded file under a collision-resistant key and returns
// its public URL. The original filename contributes only its extension,
// preserved verbatim (photo.PNG keeps .PNG).
func (s *Service) Ingest(ctx context.Context, body io.Reader, originalName, contentType string) (*Upload, error) {
	key := objectKey(originalName)
	if err := s.store.Put(ctx, key, contentType, body); err != nil {
		return nil, fmt.Errorf("store media: %w", err)
	}
	return &Upload{
		URL:      s.publicBaseURL + "/media/" + key,
		Filename: key,
	}, nil
}

// Fetch streams a stored object back by key.
func (s *Service) Fetch(ctx context.Context, key string) (*Object, error) {
	return s.store.Get(ctx, key)
}

// objectKey builds {unixMillis}-{randomToken}{.ext}. Timestamp plus random
// token is the only uniqueness guarantee; collisions are not checked.
func objectKey(originalName string) string {
	token := strings.SplitN(uuid.NewString(), "-", 2)[0]
	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), token)

	if dot := strings.LastIndex(originalName, "."); dot >= 0 && dot < len(originalName)-1 {
		key += "." + originalName[dot+1:]
	}
	return key
}
