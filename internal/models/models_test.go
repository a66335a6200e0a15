package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	var body ProfileUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"bio":"hello","city":null}`), &body))

	assert.True(t, body.Bio.IsSet())
	assert.False(t, body.Bio.IsNull())
	assert.Equal(t, "hello", *body.Bio.Get())

	assert.True(t, body.City.IsSet())
	assert.True(t, body.City.IsNull())
	assert.Nil(t, body.City.Get())

	assert.False(t, body.FirstName.IsSet())
	assert.False(t, body.FirstName.IsNull())
}

func TestOptional_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A Optional[int]    `json:"a"`
		B Optional[string] `json:"b"`
	}{A: Some(3), B: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(data))
}

func TestProfileUpdate_Assignments(t *testing.T) {
	var body ProfileUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"bio":"new bio","image_url":null,"birth_date":"1990-05-17"}`), &body))

	assert.Equal(t, []Assignment{
		{Column: "bio", Value: "new bio"},
		{Column: "birth_date", Value: NewDate(1990, time.May, 17)},
		{Column: "image_url", Value: nil},
	}, body.Assignments())
}

func TestAdUpdate_Assignments_Empty(t *testing.T) {
	assert.Empty(t, AdUpdate{}.Assignments())
}

func TestUserPatch_Assignments(t *testing.T) {
	p := UserPatch{IsVerified: Some(true), Email: Some("a@b.io")}
	assert.Equal(t, []Assignment{
		{Column: "email", Value: "a@b.io"},
		{Column: "is_verified", Value: true},
	}, p.Assignments())
}

func TestDate_JSONAndScan(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2001-02-03"`), &d))
	assert.Equal(t, "2001-02-03", d.String())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2001-02-03"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`"03/02/2001"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20010203`), &d))

	var scanned Date
	require.NoError(t, scanned.Scan(time.Date(2001, 2, 3, 15, 4, 5, 0, time.FixedZone("X", 3600))))
	assert.Equal(t, "2001-02-03", scanned.String())
	require.NoError(t, scanned.Scan([]byte("1999-12-31")))
	assert.Equal(t, "1999-12-31", scanned.String())
	assert.Error(t, scanned.Scan(42))

	v, err := NewDate(2020, time.January, 2).Value()
	require.NoError(t, err)
	assert.Equal(t, "2020-01-02", v)
}

func TestValidate_AdCreate(t *testing.T) {
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'x'
	}
	other := Gender("robot")

	tests := []struct {
		name      string
		body      AdCreate
		wantField []string
	}{
		{
			name: "valid",
			body: AdCreate{OwnerID: uuid.New(), Title: "Room available"},
		},
		{
			name:      "missing owner and title",
			body:      AdCreate{},
			wantField: []string{"owner_id", "title"},
		},
		{
			name:      "title too long",
			body:      AdCreate{OwnerID: uuid.New(), Title: string(long)},
			wantField: []string{"title"},
		},
		{
			name:      "unknown gender",
			body:      AdCreate{OwnerID: uuid.New(), Title: "t", Gender: &other},
			wantField: []string{"gender"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.body)
			if tt.wantField == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			var fields []string
			for _, fe := range verr.Errors {
				assert.Equal(t, "body", fe.Loc[0])
				fields = append(fields, fe.Loc[1])
			}
			assert.ElementsMatch(t, tt.wantField, fields)
		})
	}
}

func TestValidate_OptionalFields(t *testing.T) {
	var body ProfileUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"latitude":91,"gender":"male","bio":null}`), &body))

	err := Validate(body)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, []string{"body", "latitude"}, verr.Errors[0].Loc)
	assert.Equal(t, "value_error.max", verr.Errors[0].Type)

	require.NoError(t, json.Unmarshal([]byte(`{"latitude":45.5}`), &body))
	assert.NoError(t, Validate(body))
}

func TestValidate_Register(t *testing.T) {
	assert.NoError(t, Validate(RegisterRequest{Email: "john@example.com", Password: "secret123"}))

	var verr *ValidationError
	require.ErrorAs(t, Validate(RegisterRequest{Email: "nope", Password: "x"}), &verr)
	assert.Equal(t, "value is not a valid email address", verr.Errors[0].Msg)
}

func TestNewUserRead_HidesPassword(t *testing.T) {
	u := &User{ID: uuid.New(), Email: "a@b.io", HashedPassword: "hash", IsActive: true}
	data, err := json.Marshal(NewUserRead(u))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
	assert.Contains(t, string(data), `"is_active":true`)
}
