// Package testutil provides fixtures shared by the package tests.
package testutil

import (
	"encoding/json"

	"device-compare/internal/model"
)

// SampleComparison returns a fully populated comparison of two phones.
func SampleComparison() *model.ComparisonResult {
	return &model.ComparisonResult{
		Device1: model.DeviceData{
			Name: "iPhone 15 Pro",
			Specs: model.DeviceSpecs{
				Display:   "6.1-inch Super Retina XDR OLED, 120Hz",
				Camera:    "48MP main, 12MP ultra wide, 12MP 3x telephoto",
				Processor: "A17 Pro",
				Battery:   "3274 mAh, 27W wired charging",
				RAM:       "8GB",
				Storage:   "128GB / 256GB / 512GB / 1TB",
				Price:     "$999",
			},
			Pros: []string{"Titanium build", "Excellent video recording", "Fast A17 Pro chip", "USB-C port"},
			Cons: []string{"Expensive", "Slow charging", "Runs warm under load"},
		},
		Device2: model.DeviceData{
			Name: "Pixel 8 Pro",
			Specs: model.DeviceSpecs{
				Display:   "6.7-inch LTPO OLED, 120Hz",
				Camera:    "50MP main, 48MP ultra wide, 48MP 5x telephoto",
				Processor: "Google Tensor G3",
				Battery:   "5050 mAh, 30W wired charging",
				RAM:       "12GB",
				Storage:   "128GB / 256GB / 512GB / 1TB",
				Price:     "$999",
			},
			Pros: []string{"Seven years of updates", "Great computational photography", "Bright display"},
			Cons: []string{"Tensor G3 runs hot", "Average battery life", "Slow charging", "Bulky"},
		},
		Summary: "Both are flagship phones. Choose the iPhone for video and ecosystem, the Pixel for software support and photos.",
	}
}

// SampleComparisonJSON returns SampleComparison encoded as the backend would return it.
func SampleComparisonJSON() string {
	data, err := json.Marshal(SampleComparison())
	if err != nil {
		panic(err)
	}
	return string(data)
}

// SampleHistory returns a follow-up conversation ending on an unanswered user question.
func SampleHistory() model.ChatHistory {
	return model.ChatHistory{
		{Role: model.RoleUser, Content: "Which one has the better zoom?"},
		{Role: model.RoleModel, Content: "The Pixel 8 Pro, with a 5x telephoto lens."},
		{Role: model.RoleUser, Content: "And which charges faster?"},
	}
}
