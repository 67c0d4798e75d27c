package fault

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidation_FieldEntry(t *testing.T) {
	t.Parallel()

	vf := Validation("firstName is required", "firstName")

	fields := vf.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "firstName", fields[0].Field)
	assert.Equal(t, []string{"firstName is required"}, fields[0].Details)
}

func TestValidation_EmptyFieldName(t *testing.T) {
	t.Parallel()

	vf := Validation("form is invalid", "")
	assert.Empty(t, vf.Fields())
	assert.Equal(t, "form is invalid", vf.Detail())
}

func TestWithField_AppendsInOrder(t *testing.T) {
	t.Parallel()

	vf := Validation("first is bad", "first").
		WithField("second", "second is bad").
		WithField("first", "first is too long")

	fields := vf.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "first", fields[0].Field)
	assert.Equal(t, []string{"first is bad", "first is too long"}, fields[0].Details)
	assert.Equal(t, "second", fields[1].Field)
	assert.Equal(t, []string{"second is bad"}, fields[1].Details)
}

func TestWithField_DoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	orig := Validation("a is bad", "a")
	_ = orig.WithField("b", "b is bad")

	require.Len(t, orig.Fields(), 1)
	assert.Equal(t, "a", orig.Fields()[0].Field)
}

func TestMerge_SharedFieldAppends(t *testing.T) {
	t.Parallel()

	a := Validation("email is required", "email")
	b := Validation("email looks malformed", "email")

	merged := a.Merge(b)

	fields := merged.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "email", fields[0].Field)
	assert.Equal(t, []string{"email is required", "email looks malformed"}, fields[0].Details)
}

func TestMerge_FieldOrderIsFirstOccurrence(t *testing.T) {
	t.Parallel()

	a := Validation("x required", "x")
	b := Validation("y required", "y").WithField("x", "x too short")

	merged := a.Merge(b)

	fields := merged.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "x", fields[0].Field)
	assert.Equal(t, []string{"x required", "x too short"}, fields[0].Details)
	assert.Equal(t, "y", fields[1].Field)
}

func TestMerge_KeepsReceiverDetail(t *testing.T) {
	t.Parallel()

	a := Validation("first message", "a")
	b := Validation("second message", "b")

	assert.Equal(t, "first message", a.Merge(b).Detail())

	empty := ValidationFault{}
	assert.Equal(t, "second message", empty.Merge(b).Detail())
}

func TestFields_ReturnsCopy(t *testing.T) {
	t.Parallel()

	vf := Validation("a is bad", "a")
	fields := vf.Fields()
	fields[0].Details[0] = "mutated"
	fields[0].Field = "mutated"

	fresh := vf.Fields()
	assert.Equal(t, "a", fresh[0].Field)
	assert.Equal(t, []string{"a is bad"}, fresh[0].Details)
}

func TestValidation_WithCodeKeepsFields(t *testing.T) {
	t.Parallel()

	f := Validation("name is required", "name").WithCode("user.invalid")

	assert.Equal(t, "user.invalid", f.Code())
	vf, ok := f.(ValidationFault)
	require.True(t, ok)
	require.Len(t, vf.Fields(), 1)
	assert.Equal(t, "name", vf.Fields()[0].Field)
}

func TestValidation_Payload(t *testing.T) {
	t.Parallel()

	vf := Validation("x required", "x").WithField("y", "y required", "y too short")

	p := vf.Payload()
	assert.Equal(t, CodeValidation, p.Code)
	assert.Equal(t, "x required", p.Detail)
	require.Len(t, p.FieldErrors, 2)
	assert.Equal(t, "x", p.FieldErrors[0].FieldName)
	assert.Equal(t, []string{"y required", "y too short"}, p.FieldErrors[1].Details)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"code": "validation.error",
		"detail": "x required",
		"fieldErrors": [
			{"fieldName": "x", "details": ["x required"]},
			{"fieldName": "y", "details": ["y required", "y too short"]}
		]
	}`, string(raw))
}
