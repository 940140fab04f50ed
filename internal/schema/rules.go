package schema

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const MaxImageSize = 1 << 20

var acceptedImageTypes = []string{"image/jpeg", "image/jpg", "image/png"}

func registerRules(v *validator.Validate) {
	_ = v.RegisterValidation("words_min", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		return err == nil && wordCount(fl.Field().String()) >= limit
	})
	_ = v.RegisterValidation("words_max", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		return err == nil && wordCount(fl.Field().String()) <= limit
	})

	v.RegisterStructValidation(validateImage, ImageInput{})
}

// wordCount splits on single spaces, so "a  b" counts three words.
func wordCount(s string) int {
	return len(strings.Split(s, " "))
}

func validateImage(sl validator.StructLevel) {
	in := sl.Current().Interface().(ImageInput)
	if in.Image == nil {
		return
	}

	if in.Image.Size > MaxImageSize {
		sl.ReportError(in.Image, "image", "Image", "image_size", strconv.Itoa(MaxImageSize))
	}
	if !isAcceptedImageType(in.Image.ContentType) {
		sl.ReportError(in.Image, "image", "Image", "image_type", "")
	}
}

func isAcceptedImageType(contentType string) bool {
	for _, t := range acceptedImageTypes {
		if strings.HasPrefix(contentType, t) {
			return true
		}
	}
	return false
}
