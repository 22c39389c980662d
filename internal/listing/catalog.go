package listing

import "github.com/jimezsa/findyourhome/internal/criteria"

const SourceBuiltin = "builtin"

// Featured returns the listings shown on the home page.
func Featured() []Listing {
	return []Listing{
		{
			ID:           "1",
			Source:       SourceBuiltin,
			Title:        "Cozy Studio Apartment",
			Location:     "Downtown",
			Price:        1200,
			Currency:     "$",
			PriceLabel:   "$1200/month",
			PropertyType: criteria.PropertyStudio,
		},
		{
			ID:           "2",
			Source:       SourceBuiltin,
			Title:        "Spacious 2BR House",
			Location:     "Suburbs",
			Price:        1800,
			Currency:     "$",
			PriceLabel:   "$1800/month",
			PropertyType: criteria.PropertyHouse,
			Bedrooms:     2,
		},
		{
			ID:           "3",
			Source:       SourceBuiltin,
			Title:        "Modern 1BR Loft",
			Location:     "City Center",
			Price:        1500,
			Currency:     "$",
			PriceLabel:   "$1500/month",
			PropertyType: criteria.PropertyApartment,
			Bedrooms:     1,
		},
	}
}

// Kreuzberg returns the listing rendered by the detail page.
func Kreuzberg() Listing {
	return Listing{
		ID:            "kreuzberg-1",
		Source:        SourceBuiltin,
		Title:         "Spacious 2-Bedroom Apartment in Kreuzberg",
		Location:      "Kreuzberg, Berlin",
		Price:         1200,
		Currency:      "€",
		PropertyType:  criteria.PropertyApartment,
		Bedrooms:      2,
		Bathrooms:     1,
		Size:          75,
		PetsAllowed:   true,
		Furnished:     true,
		AvailableFrom: "2024-09-01",
		Description:   "A beautiful and spacious apartment in the heart of Kreuzberg. Recently renovated with modern amenities and a balcony overlooking a quiet courtyard. Close to public transportation and local attractions.",
		Features: []string{
			"Balcony", "Furnished", "Pet-friendly", "Dishwasher", "Washing Machine",
			"High-speed Internet", "TV", "Parking", "Air Conditioning", "Heating",
			"Garden Access", "Coffee Machine", "Gym Access", "Security System",
			"Dryer", "Bike Storage", "Child-friendly", "Elevator", "Gas Stove",
			"Electricity Included", "Minimalist Design", "Spacious", "Water Included",
			"Smart Home Features", "Piano", "Rain Shower", "Security Cameras",
			"Hardwood Floors", "Energy-efficient Appliances", "Ceiling Fan",
			"Cable TV", "Waste Disposal", "Fenced Property", "Storage Unit",
			"Intercom", "Window Coverings", "Medical Facilities Nearby",
			"Recently Renovated", "Allows Cats", "Allows Dogs",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=2070&q=80",
			"https://images.unsplash.com/photo-1502005229762-cf1b2da7c5d6?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=2071&q=80",
			"https://images.unsplash.com/photo-1484154218962-a197022b5858?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=2074&q=80",
		},
	}
}

// Catalog is every built-in listing: the featured ones followed by the detail
// listing.
func Catalog() []Listing {
	return append(Featured(), Kreuzberg())
}
