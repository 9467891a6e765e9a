package courses

import "errors"

var sortFields = map[string]string{
	"createdAt":       "createdAt",
	"title":           "title",
	"price":           "price",
	"rating":          "rating",
	"enrollmentCount": "enrollmentCount",
}

// IsValidLevel reports whether level is one of the difficulty enum values
func IsValidLevel(level string) bool {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// IsValidStatus reports whether status is one of the lifecycle enum values
func IsValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusPublished, StatusUnpublished:
		return true
	}
	return false
}

// SortField maps a requested sort key to the stored field name, falling
// back to createdAt for unknown keys.
func SortField(requested string) string {
	if field, ok := sortFields[requested]; ok {
		return field
	}
	return "createdAt"
}

// SortDirection maps asc/desc to Mongo sort values, defaulting to newest
// first.
func SortDirection(requested string) int {
	if requested == "asc" {
		return 1
	}
	return -1
}

// ValidateCreate checks enum fields beyond binding tags
func ValidateCreate(req *CreateCourseRequest) error {
	if !IsValidLevel(req.Level) {
		return errors.New("level must be one of beginner, intermediate or advanced")
	}
	return nil
}

// ValidateUpdate checks enum fields of a patch
func ValidateUpdate(req *UpdateCourseRequest) error {
	if req.Level != "" && !IsValidLevel(req.Level) {
		return errors.New("level must be one of beginner, intermediate or advanced")
	}
	return nil
}
