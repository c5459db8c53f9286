package validator

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ISBN string `binding:"isbn1013"`
	Year int    `binding:"pubyear"`
}

func engine(t *testing.T) *validatorv10.Validate {
	t.Helper()
	require.NoError(t, Register())
	v, ok := binding.Validator.Engine().(*validatorv10.Validate)
	require.True(t, ok)
	return v
}

func TestISBNValidator(t *testing.T) {
	v := engine(t)

	valid := []string{"1234567890", "9780451524935"}
	for _, isbn := range valid {
		assert.NoError(t, v.Var(isbn, "isbn1013"), "isbn %q", isbn)
	}

	invalid := []string{"", "123456789", "12345678901", "123456789012", "123456789X", "978-0451524935"}
	for _, isbn := range invalid {
		assert.Error(t, v.Var(isbn, "isbn1013"), "isbn %q", isbn)
	}
}

func TestPublishedYearValidator(t *testing.T) {
	v := engine(t)
	nextYear := time.Now().Year() + 1

	for _, y := range []int{1000, 1949, time.Now().Year(), nextYear} {
		assert.NoError(t, v.Var(y, "pubyear"), "year %d", y)
	}
	for _, y := range []int{0, 999, nextYear + 1} {
		assert.Error(t, v.Var(y, "pubyear"), "year %d", y)
	}
}

func TestTranslateEnumeratesAllFailures(t *testing.T) {
	v := engine(t)

	err := v.Struct(sample{ISBN: "bad", Year: 10})
	require.Error(t, err)

	fields := Translate(err)
	require.Len(t, fields, 2)
	assert.Equal(t, "ISBN", fields[0].Field)
	assert.Equal(t, "ISBN must be exactly 10 or 13 digits", fields[0].Message)
	assert.Equal(t, "bad", fields[0].Value)
	assert.Equal(t, "Year", fields[1].Field)
	assert.Equal(t, fmt.Sprintf("Year must be between 1000 and %d", time.Now().Year()+1), fields[1].Message)
}

func TestTranslateNonValidatorError(t *testing.T) {
	fields := Translate(errors.New("unexpected EOF"))
	require.Len(t, fields, 1)
	assert.Equal(t, "body", fields[0].Field)
	assert.Equal(t, "unexpected EOF", fields[0].Message)
}
