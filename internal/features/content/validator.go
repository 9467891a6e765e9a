package content

import (
	"errors"
	"fmt"
)

// IsValidModuleType reports whether t is one of the module type enum
// values.
func IsValidModuleType(t string) bool {
	switch t {
	case TypeVideo, TypeVideoSlide, TypeArticle, TypeQuiz, TypeAssignment:
		return true
	}
	return false
}

// ValidateCreateModule checks enum fields beyond binding tags
func ValidateCreateModule(req *CreateModuleRequest) error {
	if !IsValidModuleType(req.Type) {
		return errors.New("type must be one of video, video_slide, article, quiz or assignment")
	}
	return nil
}

// ValidateUpdateModule checks enum fields of a patch
func ValidateUpdateModule(req *UpdateModuleRequest) error {
	if req.Type != "" && !IsValidModuleType(req.Type) {
		return errors.New("type must be one of video, video_slide, article, quiz or assignment")
	}
	return nil
}

// ValidateReorderSections rejects batches that repeat an id or an order
// before anything touches the store.
func ValidateReorderSections(req *ReorderSectionsRequest) error {
	seenIDs := make(map[string]bool, len(req.SectionOrders))
	seenOrders := make(map[int]bool, len(req.SectionOrders))

	for _, pair := range req.SectionOrders {
		if seenIDs[pair.SectionID] {
			return fmt.Errorf("sectionId %s appears more than once", pair.SectionID)
		}
		if seenOrders[pair.Order] {
			return fmt.Errorf("order %d appears more than once", pair.Order)
		}
		seenIDs[pair.SectionID] = true
		seenOrders[pair.Order] = true
	}

	return nil
}

// ValidateReorderModules rejects batches that repeat an id or an order
func ValidateReorderModules(req *ReorderModulesRequest) error {
	seenIDs := make(map[string]bool, len(req.ModuleOrders))
	seenOrders := make(map[int]bool, len(req.ModuleOrders))

	for _, pair := range req.ModuleOrders {
		if seenIDs[pair.ModuleID] {
			return fmt.Errorf("moduleId %s appears more than once", pair.ModuleID)
		}
		if seenOrders[pair.Order] {
			return fmt.Errorf("order %d appears more than once", pair.Order)
		}
		seenIDs[pair.ModuleID] = true
		seenOrders[pair.Order] = true
	}

	return nil
}
