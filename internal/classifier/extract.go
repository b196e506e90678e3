package classifier

import (
	"regexp"
	"strings"
)

const (
	fieldTxID        = "txid"
	fieldAmount      = "amount"
	fieldSenderName  = "sender_name"
	fieldPhoneDigits = "phone_digits"
	fieldTimestamp   = "timestamp"
)

// extractor is one independent field pattern. Each fails soft: no match
// means no value, never an error.
type extractor struct {
	field    string
	patterns []*regexp.Regexp
}

// extract tries the extractor's patterns in order and returns the first
// non-empty capture.
func (e extractor) extract(text string) (string, bool) {
	for _, pattern := range e.patterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		value := strings.TrimSpace(match[1])
		if value != "" {
			return value, true
		}
	}
	return "", false
}

// defaultExtractors returns the per-field patterns for MoMo confirmation
// SMS, e.g.:
//
//	*161*TxId:17818959211*R* You have received 1000 RWF from John Doe
//	(**567) at 2024-05-01 12:30:45 on your mobile money account.
func defaultExtractors() []extractor {
	return []extractor{
		{
			field: fieldTxID,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)TxId[:\s]*(\d+)`),
				regexp.MustCompile(`(?i)\*161\*TxId:(\d+)\*R\*`),
			},
		},
		{
			field: fieldAmount,
			patterns: []*regexp.Regexp{
				// digits with optional thousands separators before the
				// currency marker; the marker itself is not captured
				regexp.MustCompile(`(\d{1,3}(?:,\d{3})*|\d+)\s*RWF`),
			},
		},
		{
			field: fieldSenderName,
			patterns: []*regexp.Regexp{
				// letter run after a from/by marker, up to the trailing
				// parenthetical holding the masked phone number
				regexp.MustCompile(`(?i)\b(?:from|by)\s+([A-Za-z][A-Za-z ]*?)\s*\(`),
			},
		},
		{
			field: fieldPhoneDigits,
			patterns: []*regexp.Regexp{
				// last 2-3 digits inside the asterisk-masked parenthetical
				regexp.MustCompile(`\(\*+(\d{2,3})\)`),
			},
		},
		{
			field: fieldTimestamp,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\bat (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})`),
			},
		},
	}
}
