package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func validProperty() map[string]string {
	return map[string]string{
		"name":        "Lake Cabin",
		"tagline":     "Quiet place by the lake",
		"price":       "120",
		"category":    "cabin",
		"description": words(12),
		"country":     "BR",
		"guests":      "4",
		"bedrooms":    "2",
		"beds":        "3",
		"baths":       "1",
		"amenities":   `[{"name":"wifi","selected":true}]`,
	}
}

func TestValidateProfile(t *testing.T) {
	t.Run("valid payload comes back unmodified", func(t *testing.T) {
		in, err := Validate[ProfileInput](Fields(map[string]string{
			"firstName": "Al",
			"lastName":  "Nguyen ",
			"username":  "al_n",
		}))

		require.NoError(t, err)
		assert.Equal(t, ProfileInput{FirstName: "Al", LastName: "Nguyen ", Username: "al_n"}, in)
	})

	tests := []struct {
		field string
		want  string
	}{
		{"firstName", "First name"},
		{"lastName", "Last name"},
		{"username", "Username"},
	}
	for _, tt := range tests {
		t.Run("short "+tt.field, func(t *testing.T) {
			payload := map[string]string{"firstName": "Ana", "lastName": "Souza", "username": "anas"}
			payload[tt.field] = "A"

			_, err := Validate[ProfileInput](Fields(payload))

			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("all violations are joined in field order", func(t *testing.T) {
		_, err := Validate[ProfileInput](Fields(map[string]string{
			"firstName": "A", "lastName": "B", "username": "C",
		}))

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{
			"First name must be at least two characters.",
			"Last name must be at least two characters.",
			"Username must be at least two characters.",
		}, ve.Messages)
	})

	t.Run("missing key is required", func(t *testing.T) {
		_, err := Validate[ProfileInput](Fields(map[string]string{"firstName": "Ana", "lastName": "Souza"}))

		require.Error(t, err)
		assert.Equal(t, "username is required.", err.Error())
	})
}

func TestValidateProperty(t *testing.T) {
	t.Run("numbers are coerced", func(t *testing.T) {
		in, err := Validate[PropertyInput](Fields(validProperty()))

		require.NoError(t, err)
		assert.Equal(t, 120, in.Price)
		assert.Equal(t, 4, in.Guests)
		assert.Equal(t, 3, in.Beds)
	})

	t.Run("blank number coerces to zero", func(t *testing.T) {
		p := validProperty()
		p["baths"] = ""

		in, err := Validate[PropertyInput](Fields(p))

		require.NoError(t, err)
		assert.Equal(t, 0, in.Baths)
	})

	coercion := []struct {
		name  string
		value string
		want  string
	}{
		{"text", "abc", "price must be a positive number."},
		{"fraction", "12.5", "price must be a positive number."},
		{"negative", "-1", "price must be a positive number."},
	}
	for _, tt := range coercion {
		t.Run("price "+tt.name, func(t *testing.T) {
			p := validProperty()
			p["price"] = tt.value

			_, err := Validate[PropertyInput](Fields(p))

			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}

	lengths := []struct {
		name string
		n    int
		ok   bool
	}{
		{"9 words", 9, false},
		{"10 words", 10, true},
		{"1000 words", 1000, true},
		{"1001 words", 1001, false},
	}
	for _, tt := range lengths {
		t.Run("description "+tt.name, func(t *testing.T) {
			p := validProperty()
			p["description"] = words(tt.n)

			_, err := Validate[PropertyInput](Fields(p))

			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, "description must be between 10 and 1000 words.", err.Error())
		})
	}

	t.Run("name bounds", func(t *testing.T) {
		p := validProperty()
		p["name"] = strings.Repeat("n", 101)
		p["tagline"] = "t"

		_, err := Validate[PropertyInput](Fields(p))

		require.Error(t, err)
		assert.Equal(t,
			"name must be less than 100 characters. tagline must be at least 2 characters.",
			err.Error())
	})
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name string
		file *File
		want string
	}{
		{"2 MiB png", &File{Size: 2 << 20, ContentType: "image/png"}, "File size must be less than 1 MB"},
		{"500 KiB text", &File{Size: 500 << 10, ContentType: "text/plain"}, "File must be an image"},
		{"500 KiB jpeg", &File{Size: 500 << 10, ContentType: "image/jpeg"}, ""},
		{"exactly 1 MiB", &File{Size: 1 << 20, ContentType: "image/png"}, ""},
		{"too big and wrong type", &File{Size: 3 << 20, ContentType: "application/pdf"}, "File size must be less than 1 MB File must be an image"},
		{"missing", nil, "File must be an image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Payload{}
			if tt.file != nil {
				p = WithFile("image", tt.file)
			}

			in, err := Validate[ImageInput](p)

			if tt.want == "" {
				require.NoError(t, err)
				assert.Same(t, tt.file, in.Image)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestValidateReview(t *testing.T) {
	base := func() map[string]string {
		return map[string]string{"propertyId": "p-1", "rating": "4", "comment": "lovely stay, would return"}
	}

	in, err := Validate[ReviewInput](Fields(base()))
	require.NoError(t, err)
	assert.Equal(t, 4, in.Rating)

	for _, rating := range []string{"0", "6", "x"} {
		p := base()
		p["rating"] = rating
		_, err := Validate[ReviewInput](Fields(p))
		assert.EqualError(t, err, "rating must be between 1 and 5.", rating)
	}

	p := base()
	p["comment"] = "too short"
	_, err = Validate[ReviewInput](Fields(p))
	assert.EqualError(t, err, "comment must be at least 10 characters.")
}

func TestValidateBooking(t *testing.T) {
	_, err := Validate[BookingInput](Fields(map[string]string{
		"propertyId": "p-1", "checkIn": "2026-03-01", "checkOut": "03/05/2026",
	}))

	assert.EqualError(t, err, "checkOut must be a date (YYYY-MM-DD).")
}

func TestCoerceInt(t *testing.T) {
	cases := map[string]struct {
		n  int
		ok bool
	}{
		"42":   {42, true},
		" 7 ":  {7, true},
		"3.0":  {3, true},
		"1e3":  {1000, true},
		"":     {0, true},
		"1.5":  {0, false},
		"NaN":  {0, false},
		"Inf":  {0, false},
		"ten":  {0, false},
		"1e20": {0, false},
	}

	for raw, want := range cases {
		n, ok := coerceInt(raw)
		assert.Equal(t, want.ok, ok, raw)
		assert.Equal(t, want.n, n, raw)
	}
}
