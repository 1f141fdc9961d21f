package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerification_StartsDefault(t *testing.T) {
	v := NewVerification()

	assert.Equal(t, VerificationDefault, v.Phase)
	assert.False(t, v.CanSubmit())
}

func TestVerification_MarkPending(t *testing.T) {
	v := NewVerification()

	v.MarkPending()

	assert.Equal(t, VerificationPending, v.Phase)
	assert.True(t, v.CanSubmit())
	assert.Empty(t, v.Code)
	assert.Empty(t, v.Error)
}

func TestVerification_FailClearsCodeAndCapturesError(t *testing.T) {
	v := NewVerification()
	v.MarkPending()
	v.SetCode("424242")

	v.Fail("Invalid code")

	assert.Equal(t, VerificationFailed, v.Phase)
	assert.Empty(t, v.Code)
	assert.Equal(t, "Invalid code", v.Error)
}

func TestVerification_ResubmitAfterFailure(t *testing.T) {
	v := NewVerification()
	v.MarkPending()
	v.Fail("Invalid code")

	// Editing the code and resubmitting re-attempts without an explicit reset.
	v.SetCode("123456")
	assert.True(t, v.CanSubmit())

	v.BeginAttempt()
	assert.Empty(t, v.Error)
	assert.Equal(t, "123456", v.Code)
}

func TestVerification_ResetAfterActivation(t *testing.T) {
	v := NewVerification()
	v.MarkPending()
	v.SetCode("123456")

	v.Reset()

	assert.Equal(t, VerificationDefault, v.Phase)
	assert.Empty(t, v.Code)
	assert.Empty(t, v.Error)
}
