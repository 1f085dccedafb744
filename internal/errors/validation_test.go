package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/warband-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestEmptyBuilderReturnsNil() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidationErrorDirect() {
	ve := errors.NewValidationError()
	s.Assert().False(ve.HasErrors())
	s.Assert().Nil(ve.ToError())
	s.Assert().Equal("validation failed", ve.Error())

	ve.AddFieldError("name", "is required")
	ve.AddFieldErrorf("point_limit", "must be %d or %d", 75, 125)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "point_limit: must be 75 or 125")

	err := ve.ToError()
	s.Require().NotNil(err)
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().Equal(ve.Fields, err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestRequiredField() {
	err := errors.NewValidationBuilder().
		RequiredField("name").
		Build()

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Assert().Equal([]string{"is required"}, fields["name"])
}

func (s *ValidationTestSuite) TestAccumulatesMultipleFields() {
	err := errors.NewValidationBuilder().
		RequiredField("name").
		Fieldf("point_limit", "must be %d or %d", 75, 125).
		Field("name", "contains control characters").
		Build()

	s.Require().Error(err)

	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Len(fields["name"], 2)
	s.Assert().Equal([]string{"must be 75 or 125"}, fields["point_limit"])
}

func (s *ValidationTestSuite) TestValidateRequired() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "  ", vb)
	s.Assert().Error(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRequired("name", "The Breakers", vb)
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateMaxLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", "abcdef", 5, vb)
	s.Assert().Error(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", "abcde", 5, vb)
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"leader", "trooper"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("kind", "trooper", allowed, vb)
	s.Assert().NoError(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("kind", "sidekick", allowed, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "must be one of")
}
