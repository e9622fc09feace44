package utils

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FilenameGenerator produces "<unix-millis>-<8 hex>.<ext>" names. The
// millisecond part never repeats or goes backwards within one generator.
type FilenameGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewFilenameGenerator() *FilenameGenerator {
	return &FilenameGenerator{now: time.Now}
}

func (g *FilenameGenerator) Next(mimeType string) string {
	g.mu.Lock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	g.mu.Unlock()

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return strconv.FormatInt(ms, 10) + "-" + suffix + ImageExtension(mimeType)
}
