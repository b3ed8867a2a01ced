// Package memory provides in-memory implementations of the persistence
// interfaces, seeded with the static catalog fixture.
package memory

import (
	"time"

	"farmhub/internal/domain/entity"
)

// seedProducts returns the supply catalog fixture.
func seedProducts() []entity.Product {
	return []entity.Product{
		{
			ID:          "1",
			Name:        "Premium NPK Fertilizer",
			Description: "High-quality balanced fertilizer with 15-15-15 NPK ratio. Perfect for all crop types during growth phase.",
			Price:       45.99,
			Category:    "fertilizer",
			Image:       "https://images.pexels.com/photos/4022091/pexels-photo-4022091.jpeg",
			Supplier:    "AgriCorp Solutions",
			InStock:     true,
			Rating:      4.8,
			Reviews:     124,
			BulkDiscount: &entity.BulkDiscount{
				MinQuantity:     10,
				DiscountPercent: 15,
			},
		},
		{
			ID:          "2",
			Name:        "Organic Pest Control Spray",
			Description: "Eco-friendly pesticide made from natural ingredients. Safe for organic farming and beneficial insects.",
			Price:       28.50,
			Category:    "pesticide",
			Image:       "https://images.pexels.com/photos/4022120/pexels-photo-4022120.jpeg",
			Supplier:    "Green Solutions Ltd",
			InStock:     true,
			Rating:      4.6,
			Reviews:     89,
		},
		{
			ID:          "3",
			Name:        "Hybrid Corn Seeds",
			Description: "High-yield hybrid corn variety with excellent disease resistance and drought tolerance.",
			Price:       85.00,
			Category:    "seeds",
			Image:       "https://images.pexels.com/photos/547263/pexels-photo-547263.jpeg",
			Supplier:    "Seeds & More",
			InStock:     true,
			Rating:      4.9,
			Reviews:     156,
			BulkDiscount: &entity.BulkDiscount{
				MinQuantity:     5,
				DiscountPercent: 20,
			},
		},
		{
			ID:          "4",
			Name:        "Professional Pruning Shears",
			Description: "Heavy-duty pruning shears with titanium coating for long-lasting sharpness and durability.",
			Price:       34.99,
			Category:    "tools",
			Image:       "https://images.pexels.com/photos/1301868/pexels-photo-1301868.jpeg",
			Supplier:    "Farm Tools Pro",
			InStock:     true,
			Rating:      4.7,
			Reviews:     73,
		},
		{
			ID:          "5",
			Name:        "Advanced Drip Irrigation Kit",
			Description: "Complete irrigation system for efficient water management. Covers up to 1000 sq ft.",
			Price:       299.99,
			Category:    "equipment",
			Image:       "https://images.pexels.com/photos/1301856/pexels-photo-1301856.jpeg",
			Supplier:    "Irrigation Systems Inc",
			InStock:     true,
			Rating:      4.5,
			Reviews:     45,
		},
		{
			ID:          "6",
			Name:        "Calcium Chloride Foliar Spray",
			Description: "Essential calcium supplement for preventing blossom end rot and improving fruit quality.",
			Price:       19.99,
			Category:    "fertilizer",
			Image:       "https://images.pexels.com/photos/4022135/pexels-photo-4022135.jpeg",
			Supplier:    "NutriGrow",
			InStock:     true,
			Rating:      4.4,
			Reviews:     67,
		},
	}
}

// seedCrops returns the crop listing fixture.
func seedCrops() []entity.Crop {
	return []entity.Crop{
		{
			ID:           "1",
			Name:         "Organic Tomatoes",
			Variety:      "Roma",
			Quantity:     500,
			Unit:         "kg",
			PricePerUnit: 3.50,
			Description:  "Fresh organic Roma tomatoes, perfect for processing and cooking. Grown without pesticides.",
			HarvestDate:  time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			Location:     "California Central Valley",
			Image:        "https://images.pexels.com/photos/533280/pexels-photo-533280.jpeg",
			Farmer:       "Green Valley Farms",
			Organic:      true,
			Available:    true,
		},
		{
			ID:           "2",
			Name:         "Sweet Corn",
			Variety:      "Golden Bantam",
			Quantity:     1000,
			Unit:         "kg",
			PricePerUnit: 2.80,
			Description:  "Premium sweet corn with excellent flavor. Harvested at peak sweetness for maximum quality.",
			HarvestDate:  time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
			Location:     "Iowa Farmlands",
			Image:        "https://images.pexels.com/photos/547263/pexels-photo-547263.jpeg",
			Farmer:       "Sunshine Agriculture",
			Organic:      false,
			Available:    true,
		},
		{
			ID:           "3",
			Name:         "Organic Lettuce",
			Variety:      "Butterhead",
			Quantity:     200,
			Unit:         "kg",
			PricePerUnit: 4.20,
			Description:  "Crisp and fresh organic butterhead lettuce. Perfect for salads and sandwiches.",
			HarvestDate:  time.Date(2024, time.January, 18, 0, 0, 0, 0, time.UTC),
			Location:     "Oregon Coast",
			Image:        "https://images.pexels.com/photos/1656663/pexels-photo-1656663.jpeg",
			Farmer:       "Coastal Organics",
			Organic:      true,
			Available:    true,
		},
	}
}

// seedDiseases returns the disease guide fixture. Treatments reference
// products in the supply catalog by ID.
func seedDiseases() []entity.Disease {
	return []entity.Disease{
		{
			ID:          "1",
			Name:        "Tomato Blight",
			Description: "A serious fungal disease that affects tomato plants, causing leaf spots and fruit rot.",
			Symptoms:    []string{"Dark spots on leaves", "Yellowing foliage", "Brown patches on fruit", "Stem lesions"},
			AffectedCrops: []string{
				"Tomatoes", "Potatoes", "Peppers",
			},
			Treatments: []entity.Treatment{
				{
					ID:                "t1",
					Name:              "Copper Fungicide Treatment",
					Type:              entity.TreatmentChemical,
					Description:       "Effective copper-based fungicide for controlling blight",
					ApplicationMethod: "Foliar spray",
					Dosage:            "2-3 ml per liter of water",
					ProductIDs:        []string{"2"},
				},
			},
			Prevention: []string{
				"Proper spacing for air circulation",
				"Avoid overhead watering",
				"Crop rotation",
				"Remove infected debris",
			},
			Image: "https://images.pexels.com/photos/4022064/pexels-photo-4022064.jpeg",
		},
		{
			ID:          "2",
			Name:        "Corn Smut",
			Description: "Fungal disease causing galls on corn ears, leaves, and stalks.",
			Symptoms:    []string{"Gray-black galls on ears", "Distorted plant growth", "Reduced yield"},
			AffectedCrops: []string{
				"Corn", "Sweet Corn",
			},
			Treatments: []entity.Treatment{
				{
					ID:                "t2",
					Name:              "Preventive Fungicide",
					Type:              entity.TreatmentChemical,
					Description:       "Systemic fungicide for corn smut prevention",
					ApplicationMethod: "Soil application",
					Dosage:            "5 kg per hectare",
					ProductIDs:        []string{"1"},
				},
			},
			Prevention: []string{
				"Use resistant varieties",
				"Avoid plant injuries",
				"Control insects that spread disease",
			},
			Image: "https://images.pexels.com/photos/547263/pexels-photo-547263.jpeg",
		},
	}
}
