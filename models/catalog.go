package models

import "gorm.io/gorm"

// DefaultCatalog is the seed catalog for the storefront. Prices are in PHP.
var DefaultCatalog = []Product{
	{
		ID:          "predator-helios-gaming-laptop",
		Name:        "Acer Predator Helios 300",
		Price:       89999.00,
		Description: "Intel Core i9-13900HX, NVIDIA RTX 4070, 32GB DDR5 RAM, 1TB NVMe SSD. 165Hz QHD display for ultimate gaming performance.",
		Images: []string{
			"https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=1200&q=80",
			"https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?w=1200&q=80",
		},
		Colors: []ProductColor{
			{Name: "Black", Value: "black"},
			{Name: "Silver", Value: "silver"},
		},
		Sizes:    []string{"RTX 4060", "RTX 4070", "RTX 4090"},
		Category: "laptops",
	},
	{
		ID:          "rog-strix-gaming-laptop",
		Name:        "ASUS ROG Strix G16",
		Price:       129999.00,
		Description: "AMD Ryzen 9 7945HX, NVIDIA RTX 4080, 32GB DDR5 RAM, 2TB NVMe SSD. 240Hz FHD display with G-SYNC.",
		Images: []string{
			"https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=1200&q=80",
		},
		Colors: []ProductColor{
			{Name: "Black", Value: "black"},
			{Name: "White", Value: "white"},
		},
		Sizes:    []string{"RTX 4070", "RTX 4080", "RTX 4090"},
		Category: "laptops",
	},
	{
		ID:          "legion-pro-gaming-laptop",
		Name:        "Lenovo Legion Pro 5",
		Price:       74999.00,
		Description: "Intel Core i7-13700HX, NVIDIA RTX 4060, 16GB DDR5 RAM, 512GB NVMe SSD. 144Hz FHD display.",
		Images: []string{
			"https://images.unsplash.com/photo-1625842268584-8f3296236761?w=1200&q=80",
		},
		Colors: []ProductColor{
			{Name: "Gray", Value: "gray"},
			{Name: "Black", Value: "black"},
		},
		Sizes:    []string{"RTX 4050", "RTX 4060", "RTX 4070"},
		Category: "laptops",
	},
	{
		ID:          "razer-deathadder-gaming-mouse",
		Name:        "Razer DeathAdder V3 Pro",
		Price:       8499.00,
		Description: "Wireless gaming mouse with Focus Pro 30K optical sensor, 90-hour battery life, and customizable RGB lighting.",
		Images: []string{
			"https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=1200&q=80",
		},
		Colors: []ProductColor{
			{Name: "Black", Value: "black"},
			{Name: "White", Value: "white"},
		},
		Sizes:    []string{"Wireless", "Wired"},
		Category: "mice",
	},
	{
		ID:          "logitech-g502-gaming-mouse",
		Name:        "Logitech G502 X LIGHTSPEED",
		Price:       8999.00,
		Description: "Wireless gaming mouse with HERO 25K sensor, 11 programmable buttons, and LIGHTSYNC RGB.",
		Images: []string{
			"https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7?w=1200&q=80",
		},
		Colors: []ProductColor{
			{Name: "Black", Value: "black"},
			{Name: "White", Value: "white"},
		},
		Sizes:    []string{"Wireless", "Wired"},
		Category: "mice",
	},
	{
		ID:          "secretlab-titan-gaming-chair",
		Name:        "Secretlab Titan Evo 2024",
		Price:       30999.00,
		Description: "Premium gaming chair with NEO Hybrid Leatherette, 4D armrests, and full metal frame. Supports up to 290 lbs.",
		Images: []string{
			"https://images.unsplash.com/photo-1580480055273-228ff5388ef8?w=1200&q=80",
		},
		Colors: []ProductColor{
			{Name: "Black", Value: "black"},
			{Name: "Blue", Value: "blue"},
			{Name: "Red", Value: "red"},
		},
		Sizes:    []string{"Small", "Regular", "XL"},
		Category: "chairs",
	},
	{
		ID:          "dxracer-master-gaming-chair",
		Name:        "DXRacer Master Series",
		Price:       28199.00,
		Description: "Ergonomic gaming chair with premium PU leather, adjustable lumbar support, and 4D armrests.",
		Images: []string{
			"https://images.unsplash.com/photo-1598550476439-6847785fcea6?w=1200&q=80",
		},
		Colors: []ProductColor{
			{Name: "Black", Value: "black"},
			{Name: "Red", Value: "red"},
			{Name: "White", Value: "white"},
		},
		Sizes:    []string{"Standard", "Wide", "XL"},
		Category: "chairs",
	},
}

// SeedProducts inserts the default catalog, skipping products that already exist
func SeedProducts(db *gorm.DB) error {
	for _, product := range DefaultCatalog {
		var count int64
		if err := db.Model(&Product{}).Where("id = ?", product.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&product).Error; err != nil {
			return err
		}
	}
	return nil
}
