package registration

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// captchaAlphabet omits visually ambiguous characters (I, O, 0, 1).
const captchaAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Challenge is an issued captcha. Text is only exposed at issue time.
type Challenge struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// CaptchaStore holds issued challenges until they are answered or
// expire. Take removes the challenge, making every answer single-use.
type CaptchaStore interface {
	Put(ctx context.Context, id, text string, ttl time.Duration) error
	Take(ctx context.Context, id string) (string, bool, error)
}

type captchaEntry struct {
	text      string
	expiresAt time.Time
}

type memoryCaptchaStore struct {
	mu      sync.Mutex
	entries map[string]captchaEntry
	now     func() time.Time
}

// NewMemoryCaptchaStore returns a process-local captcha store.
func NewMemoryCaptchaStore() CaptchaStore {
	return &memoryCaptchaStore{entries: make(map[string]captchaEntry), now: time.Now}
}

func (s *memoryCaptchaStore) Put(_ context.Context, id, text string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = captchaEntry{text: text, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *memoryCaptchaStore) Take(_ context.Context, id string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return "", false, nil
	}
	delete(s.entries, id)
	if s.now().After(entry.expiresAt) {
		return "", false, nil
	}
	return entry.text, true, nil
}

// newChallenge mints a challenge with cryptographically random text.
func newChallenge(length int) (*Challenge, error) {
	if length <= 0 {
		return nil, fmt.Errorf("captcha length must be positive")
	}
	var sb strings.Builder
	max := big.NewInt(int64(len(captchaAlphabet)))
	for i := 0; i < length; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return nil, fmt.Errorf("generating captcha: %w", err)
		}
		sb.WriteByte(captchaAlphabet[idx.Int64()])
	}
	return &Challenge{ID: uuid.NewString(), Text: sb.String()}, nil
}
