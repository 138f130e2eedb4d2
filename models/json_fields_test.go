package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestDecodeStringList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"json array", `["wifi","pool"]`, []string{"wifi", "pool"}},
		{"empty array", `[]`, []string{}},
		{"json null", `null`, []string{}},
		{"legacy quoted csv", `"wifi, pool , spa"`, []string{"wifi", "pool", "spa"}},
		{"legacy bare string", `wifi,pool`, []string{"wifi", "pool"}},
		{"legacy single value", `"breakfast"`, []string{"breakfast"}},
		{"garbage object", `{"oops": true}`, []string{}},
		{"empty", ``, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeStringList(datatypes.JSON(tt.raw)))
		})
	}
}

func TestDecodeObject(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"days": "mon-fri"}, DecodeObject(datatypes.JSON(`{"days":"mon-fri"}`)))
	assert.Empty(t, DecodeObject(datatypes.JSON(`not json`)))
	assert.Empty(t, DecodeObject(nil))
}

func TestEncodeJSONFieldRoundTrip(t *testing.T) {
	raw, err := EncodeJSONField("facilities", []string{"pool", "gym"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pool", "gym"}, DecodeStringList(raw))
}

func TestDecodeAmenitiesDegradesToEmpty(t *testing.T) {
	a := DecodeAmenities(datatypes.JSON(`broken`))
	assert.Empty(t, a.General)
	assert.Nil(t, a.Rental)
	assert.Nil(t, a.Activity)

	a = DecodeAmenities(datatypes.JSON(`{"general":["wifi"],"rental":{"seats":4}}`))
	assert.Equal(t, []string{"wifi"}, a.General)
	require.NotNil(t, a.Rental)
	assert.Equal(t, 4, a.Rental.Seats)
}

func TestAmenitiesValidate(t *testing.T) {
	rental := &Amenities{General: []string{"wifi"}, Rental: &RentalSpecifics{Seats: 4}}
	assert.NoError(t, rental.Validate("rental/car"))
	assert.Error(t, rental.Validate("activity/trek"))
	assert.Error(t, rental.Validate("hotel"))

	activity := &Amenities{Activity: &ActivitySpecifics{GroupSize: 8}}
	assert.NoError(t, activity.Validate("activity/trek"))
	assert.Error(t, activity.Validate("rental/car"))

	general := &Amenities{General: []string{"guide"}}
	assert.NoError(t, general.Validate("hotel"))
}

func TestTypeFamily(t *testing.T) {
	assert.Equal(t, "rental", TypeFamily("rental/car"))
	assert.Equal(t, "activity", TypeFamily("activity/trek"))
	assert.Equal(t, "hotel", TypeFamily("hotel"))
}
