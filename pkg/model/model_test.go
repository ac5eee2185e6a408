package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicant_Validate(t *testing.T) {
	t.Run("预置数据全部合法", func(t *testing.T) {
		for _, a := range ApplicantFixtures() {
			require.NoError(t, a.Validate(), a.FullName())
		}
	})

	t.Run("缺少名字", func(t *testing.T) {
		a := Applicant{LastName: "Doe", DoB: "1990-01-01"}
		err := a.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalid))
		assert.Contains(t, err.Error(), "first_name")
	})

	t.Run("日期格式错误", func(t *testing.T) {
		a := Applicant{FirstName: "Jane", LastName: "Doe", DoB: "01/02/1990"}
		err := a.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Contains(t, err.Error(), "dob")
	})

	t.Run("性别超长", func(t *testing.T) {
		a := Applicant{FirstName: "Jane", LastName: "Doe", DoB: "1990-01-01", Gender: strings.Repeat("x", 21)}
		assert.ErrorIs(t, a.Validate(), ErrInvalid)
	})
}

func TestAddress_Validate(t *testing.T) {
	assert.NoError(t, Address{Street: "Elm"}.Validate())
	assert.ErrorIs(t, Address{City: "Boise"}.Validate(), ErrInvalid)
	assert.ErrorIs(t, Address{Street: "Elm", Zip: "12345678901"}.Validate(), ErrInvalid)
}

func TestContact_Validate(t *testing.T) {
	for _, c := range ContactFixtures() {
		require.NoError(t, c.Validate())
	}
	c := Contact{FirstName: "A", LastName: "B", Phone: "555-123-4567-0000", Relationship: "Parent"}
	assert.ErrorIs(t, c.Validate(), ErrInvalid)
}

func TestFixtures(t *testing.T) {
	assert.Len(t, ApplicantFixtures(), 10)
	assert.Len(t, ContactFixtures(), 10)
	assert.Empty(t, AddressFixtures())

	// 每次返回新切片，修改不会影响下一次调用
	fx := ApplicantFixtures()
	fx[0].FirstName = "changed"
	assert.Equal(t, "Alice", ApplicantFixtures()[0].FirstName)
}
