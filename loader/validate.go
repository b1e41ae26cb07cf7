package loader

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// warn logs records that load but read poorly in play.
func warn(records []rawRecord) {
	for _, r := range records {
		if strings.TrimSpace(r.text) == "" {
			log.Warn().
				Str("source", r.source).
				Int("record", r.index).
				Str("winner", r.winner).
				Str("loser", r.loser).
				Msg("victory has no justification text")
		}
	}
}
