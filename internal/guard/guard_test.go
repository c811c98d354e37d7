package guard

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotNil(t *testing.T) {
	var p *int
	err := NotNil(p, "newCustomer")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrOutOfRange)

	v := 3
	assert.NoError(t, NotNil(&v, "newCustomer"))
}

func TestNotZero(t *testing.T) {
	err := NotZero(0, "updatedOrder.Id")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)

	param, ok := Param(err)
	require.True(t, ok)
	assert.Equal(t, "updatedOrder.Id", param)

	assert.NoError(t, NotZero(7, "id"))
	assert.NoError(t, NotZero(-1, "id"))
}

func TestNotBlank(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n", "   "} {
		err := NotBlank(s, "FirstName")
		require.Error(t, err, "value %q", s)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		param, _ := Param(err)
		assert.Equal(t, "FirstName", param)
	}
	assert.NoError(t, NotBlank("John", "FirstName"))
}

func TestParamSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("customer: %w", &ArgumentError{Param: "Email"})
	param, ok := Param(err)
	require.True(t, ok)
	assert.Equal(t, "Email", param)

	_, ok = Param(errors.New("boom"))
	assert.False(t, ok)
}
