package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("Kyoto", "title"))
	assert.Error(t, ValidateRequired("", "title"))
	assert.Error(t, ValidateRequired("   ", "title"))
}

func TestValidateOptionalClock(t *testing.T) {
	assert.NoError(t, ValidateOptionalClock("", "endTime"))
	assert.NoError(t, ValidateOptionalClock("18:30", "endTime"))
	assert.Error(t, ValidateOptionalClock("18:99", "endTime"))
}

func TestValidatePositiveAmount(t *testing.T) {
	assert.NoError(t, ValidatePositiveAmount(1, "amount"))
	assert.Error(t, ValidatePositiveAmount(0, "amount"))
	assert.Error(t, ValidatePositiveAmount(-500, "amount"))
}

func TestValidateOTP(t *testing.T) {
	assert.NoError(t, ValidateOTP("000000"))
	assert.NoError(t, ValidateOTP("123456"))
	assert.Error(t, ValidateOTP("12345"))
	assert.Error(t, ValidateOTP("1234567"))
	assert.Error(t, ValidateOTP("12a456"))
}

func TestCleanFileName(t *testing.T) {
	assert.Equal(t, "Kyoto_Summer_Tour", CleanFileName("Kyoto Summer Tour"))
	assert.Equal(t, "a_b_c", CleanFileName(`a/b:c`))
	assert.Equal(t, "trimmed", CleanFileName("  trimmed  "))
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	assert.Len(t, id, IDLength)
	for _, r := range id {
		assert.Contains(t, IDCharset, string(r))
	}
}
