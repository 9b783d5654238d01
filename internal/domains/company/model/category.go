package model

import "slices"

// Category is the business type of a company. Values outside the list are rejected; businesses
// that fit none of them use CategoryOther.
type Category string

const (
	CategoryBarbershop  Category = "barbershop"
	CategoryBeautySalon Category = "beauty_salon"
	CategorySpa         Category = "spa"
	CategoryClinic      Category = "clinic"
	CategoryDentist     Category = "dentist"
	CategoryFitness     Category = "fitness"
	CategoryEducation   Category = "education"
	CategoryConsulting  Category = "consulting"
	CategoryAutomotive  Category = "automotive"
	CategoryPetCare     Category = "pet_care"
	CategoryOther       Category = "other"
)

var categories = []Category{
	CategoryBarbershop,
	CategoryBeautySalon,
	CategorySpa,
	CategoryClinic,
	CategoryDentist,
	CategoryFitness,
	CategoryEducation,
	CategoryConsulting,
	CategoryAutomotive,
	CategoryPetCare,
	CategoryOther,
}

func Categories() []Category {
	return slices.Clone(categories)
}

func (c Category) IsValid() bool {
	return slices.Contains(categories, c)
}
