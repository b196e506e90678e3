package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTxID(t *testing.T) {
	tests := []struct {
		name  string
		txid  string
		valid bool
	}{
		{name: "numeric txid", txid: "17818959211", valid: true},
		{name: "alphanumeric txid", txid: "TX1234abc", valid: true},
		{name: "minimum length", txid: "1234", valid: true},
		{name: "empty", txid: "", valid: false},
		{name: "too short", txid: "123", valid: false},
		{name: "too long", txid: "123456789012345678901234567890123", valid: false},
		{name: "contains spaces", txid: "1234 5678", valid: false},
		{name: "contains punctuation", txid: "1234-5678", valid: false},
		{name: "sql injection attempt", txid: "1' OR '1'='1", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidTxID(tt.txid))
		})
	}
}
