package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptRoundTrip(t *testing.T) {
	hashed, err := Crypt("s3cret_pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret_pass", hashed)

	err, ok := VerifyPassword("s3cret_pass", hashed)
	assert.NoError(t, err)
	assert.True(t, ok)

	err, ok = VerifyPassword("wrong_pass", hashed)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abc", "mom_of_three", "a1b2c3", "___"}
	for _, name := range valid {
		assert.True(t, IsValidUsername(name), name)
	}

	invalid := []string{
		"ab",                // 太短
		"a_very_long_username", // 超过15位
		"UpperCase",
		"with space",
		"dash-name",
		"",
	}
	for _, name := range invalid {
		assert.False(t, IsValidUsername(name), name)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("parent@example.com"))
	assert.True(t, IsValidEmail("a.b-c@mail.example.org"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, SplitTags(""))
	assert.Equal(t, []string{"Tantrums", "Boundaries"}, SplitTags("Tantrums, Boundaries"))
	// 去重且保持顺序
	assert.Equal(t, []string{"Reading", "Music"}, SplitTags("Reading,Music,Reading"))
	assert.Equal(t, []string{"ADHD"}, SplitTags(" ,ADHD,, "))
}

func TestTransfer(t *testing.T) {
	assert.Equal(t, int64(42), Transfer(int64(42)))
	assert.Equal(t, int64(42), Transfer(float64(42)))
	assert.Equal(t, int64(42), Transfer("42"))
	assert.Equal(t, int64(-1), Transfer("not a number"))
	assert.Equal(t, int64(-1), Transfer(nil))
}

func TestGenerateActivationCode(t *testing.T) {
	code, err := GenerateActivationCode()
	assert.NoError(t, err)
	assert.Len(t, code, 6)

	other, err := GenerateActivationCode()
	assert.NoError(t, err)
	// 两次生成撞车的概率可以忽略
	assert.NotEqual(t, code, other)
}
