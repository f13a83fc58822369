package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := EnforceRequest{
		User:   "  alice  ",
		Amount: 5000,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "alice", req.User)
	assert.Equal(t, int64(5000), req.Amount)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	item := LimitItem{
		User:         "bob",
		MonthlyLimit: 300_000,
		Category:     "groceries <script>alert('x')</script>",
	}
	SanitizeStruct(&item)

	assert.Contains(t, item.Category, "&lt;script&gt;")
	assert.NotContains(t, item.Category, "<script>")
}

func TestSanitizeStruct_DelegationRequest(t *testing.T) {
	req := DelegationRequest{
		Owner:    " alice ",
		Delegate: "  bob",
		Limit:    10_000,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "alice", req.Owner)
	assert.Equal(t, "bob", req.Delegate)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"alice",
		"GABCD1234",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"alice bob",   // space
		"user<001>",   // angle brackets
		"user;DROP",   // semicolon
		"",            // empty
		"hello world", // space
		"user\n001",   // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}
