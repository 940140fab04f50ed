package schema

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// messages is keyed by <Struct>.<Field>.<tag>.
var messages = map[string]string{
	"ProfileInput.FirstName.min": "First name must be at least two characters.",
	"ProfileInput.LastName.min":  "Last name must be at least two characters.",
	"ProfileInput.Username.min":  "Username must be at least two characters.",

	"PropertyInput.Name.min":              "name must be at least 2 characters.",
	"PropertyInput.Name.max":              "name must be less than 100 characters.",
	"PropertyInput.Tagline.min":           "tagline must be at least 2 characters.",
	"PropertyInput.Tagline.max":           "tagline must be less than 100 characters.",
	"PropertyInput.Price.min":             "price must be a positive number.",
	"PropertyInput.Price.number":          "price must be a positive number.",
	"PropertyInput.Description.words_min": "description must be between 10 and 1000 words.",
	"PropertyInput.Description.words_max": "description must be between 10 and 1000 words.",
	"PropertyInput.Guests.min":            "guest amount must be a positive number.",
	"PropertyInput.Guests.number":         "guest amount must be a positive number.",
	"PropertyInput.Bedrooms.min":          "bedrooms amount must be a positive number.",
	"PropertyInput.Bedrooms.number":       "bedrooms amount must be a positive number.",
	"PropertyInput.Beds.min":              "beds amount must be a positive number.",
	"PropertyInput.Beds.number":           "beds amount must be a positive number.",
	"PropertyInput.Baths.min":             "baths amount must be a positive number.",
	"PropertyInput.Baths.number":          "baths amount must be a positive number.",

	"ImageInput.Image.image_size": "File size must be less than 1 MB",
	"ImageInput.Image.image_type": "File must be an image",
	"ImageInput.Image.required":   "File must be an image",

	"ReviewInput.Rating.min":    "rating must be between 1 and 5.",
	"ReviewInput.Rating.max":    "rating must be between 1 and 5.",
	"ReviewInput.Rating.number": "rating must be between 1 and 5.",
	"ReviewInput.Comment.min":   "comment must be at least 10 characters.",
	"ReviewInput.Comment.max":   "comment must be at most 1000 characters.",

	"BookingInput.CheckIn.datetime":  "checkIn must be a date (YYYY-MM-DD).",
	"BookingInput.CheckOut.datetime": "checkOut must be a date (YYYY-MM-DD).",
}

func message(fe validator.FieldError) string {
	if m, ok := messages[fe.StructNamespace()+"."+fe.Tag()]; ok {
		return m
	}
	return fmt.Sprintf("%s is invalid.", fe.Field())
}

func requiredMessage(t reflect.Type, sf reflect.StructField, key string) string {
	if m, ok := messages[t.Name()+"."+sf.Name+".required"]; ok {
		return m
	}
	return fmt.Sprintf("%s is required.", key)
}

func numberMessage(t reflect.Type, sf reflect.StructField, key string) string {
	if m, ok := messages[t.Name()+"."+sf.Name+".number"]; ok {
		return m
	}
	return fmt.Sprintf("%s must be a whole number.", key)
}
