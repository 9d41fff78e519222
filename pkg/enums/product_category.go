package enums

// ProductCategory is the fixed catalog taxonomy shown on the home screen.
type ProductCategory string

const (
	CategoryVegetables ProductCategory = "Vegetables"
	CategoryFruits     ProductCategory = "Fruits"
	CategoryGrains     ProductCategory = "Grains"
	CategoryHerbs      ProductCategory = "Herbs"
	CategoryDairy      ProductCategory = "Dairy"
	CategoryOrganic    ProductCategory = "Organic"
)

// AllCategories lists every supported category in display order.
var AllCategories = []ProductCategory{
	CategoryVegetables,
	CategoryFruits,
	CategoryGrains,
	CategoryHerbs,
	CategoryDairy,
	CategoryOrganic,
}

func (c ProductCategory) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c ProductCategory) String() string {
	return string(c)
}
