package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidModuleType(t *testing.T) {
	require.True(t, IsValidModuleType(TypeVideo))
	require.True(t, IsValidModuleType(TypeVideoSlide))
	require.True(t, IsValidModuleType(TypeArticle))
	require.True(t, IsValidModuleType(TypeQuiz))
	require.True(t, IsValidModuleType(TypeAssignment))
	require.False(t, IsValidModuleType("podcast"))
	require.False(t, IsValidModuleType(""))
}

func TestValidateCreateModule(t *testing.T) {
	order := 1
	valid := CreateModuleRequest{
		Title:   "What is a goroutine?",
		Type:    TypeVideo,
		Content: "https://cdn.example.com/v/1.mp4",
		Order:   &order,
	}
	require.NoError(t, ValidateCreateModule(&valid))

	badType := valid
	badType.Type = "podcast"
	require.Error(t, ValidateCreateModule(&badType))
}

func TestValidateUpdateModule(t *testing.T) {
	require.NoError(t, ValidateUpdateModule(&UpdateModuleRequest{}))
	require.NoError(t, ValidateUpdateModule(&UpdateModuleRequest{Type: TypeQuiz}))
	require.Error(t, ValidateUpdateModule(&UpdateModuleRequest{Type: "podcast"}))
}

func TestValidateReorderSections(t *testing.T) {
	require.NoError(t, ValidateReorderSections(&ReorderSectionsRequest{
		SectionOrders: []SectionOrder{
			{SectionID: "a", Order: 2},
			{SectionID: "b", Order: 1},
		},
	}))

	require.Error(t, ValidateReorderSections(&ReorderSectionsRequest{
		SectionOrders: []SectionOrder{
			{SectionID: "a", Order: 1},
			{SectionID: "a", Order: 2},
		},
	}), "repeated id")

	require.Error(t, ValidateReorderSections(&ReorderSectionsRequest{
		SectionOrders: []SectionOrder{
			{SectionID: "a", Order: 1},
			{SectionID: "b", Order: 1},
		},
	}), "repeated order")
}

func TestValidateReorderModules(t *testing.T) {
	require.NoError(t, ValidateReorderModules(&ReorderModulesRequest{
		ModuleOrders: []ModuleOrder{
			{ModuleID: "a", Order: 3},
			{ModuleID: "b", Order: 1},
			{ModuleID: "c", Order: 2},
		},
	}))

	require.Error(t, ValidateReorderModules(&ReorderModulesRequest{
		ModuleOrders: []ModuleOrder{
			{ModuleID: "a", Order: 1},
			{ModuleID: "b", Order: 1},
		},
	}))
}
