// internal/domain/catalog/seed.go
package catalog

import "time"

func seedDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedProducts returns the initial Z-Mart catalog. Product 4 carries a
// positive stock quantity while flagged out of stock; the flag is
// authoritative and the mismatch is part of the seed data.
func SeedProducts() []Product {
	products := make([]Product, len(seedProducts))
	for i, p := range seedProducts {
		products[i] = p.Clone()
	}
	return products
}

var seedProducts = []Product{
	{
		ID:            1,
		Name:          "Wireless Headphones",
		Description:   "High-quality wireless headphones with noise cancellation",
		Price:         55999,
		OriginalPrice: 69999,
		Category:      "Electronics",
		Brand:         "TechBrand",
		Rating:        4.5,
		Reviews:       128,
		Images:        []string{"/images/wireless-headphones.jpg"},
		InStock:       true,
		StockQuantity: 25,
		Features:      []string{"Noise Cancellation", "30-hour Battery", "Wireless Charging"},
		Specifications: map[string]string{
			"Battery Life": "30 hours",
			"Connectivity": "Bluetooth 5.0",
			"Weight": "250g",
		},
		CreatedAt:     seedDate("2024-01-01"),
	},
	{
		ID:            2,
		Name:          "Smart Watch",
		Description:   "Advanced smartwatch with health monitoring features",
		Price:         83999,
		OriginalPrice: 111999,
		Category:      "Electronics",
		Brand:         "SmartTech",
		Rating:        4.8,
		Reviews:       89,
		Images:        []string{"/images/smart-watch.jpg"},
		InStock:       true,
		StockQuantity: 15,
		Features:      []string{"Heart Rate Monitor", "GPS", "Water Resistant"},
		Specifications: map[string]string{
			"Display": "1.4 inch OLED",
			"Battery": "7 days",
			"Water Resistance": "50m",
		},
		CreatedAt:     seedDate("2024-01-02"),
	},
	{
		ID:            3,
		Name:          "Laptop Stand",
		Description:   "Ergonomic laptop stand for better posture",
		Price:         22399,
		OriginalPrice: 27999,
		Category:      "Electronics",
		Brand:         "ErgoTech",
		Rating:        4.3,
		Reviews:       156,
		Images:        []string{"/images/laptop-stand.jpg"},
		InStock:       true,
		StockQuantity: 50,
		Features:      []string{"Adjustable Height", "Aluminum Build", "Portable"},
		Specifications: map[string]string{
			"Material": "Aluminum",
			"Weight": "1.2kg",
			"Compatibility": "All laptops",
		},
		CreatedAt:     seedDate("2024-01-03"),
	},
	{
		ID:            4,
		Name:          "Bluetooth Speaker",
		Description:   "Portable wireless speaker with premium sound quality",
		Price:         41999,
		OriginalPrice: 55999,
		Category:      "Electronics",
		Brand:         "SoundMax",
		Rating:        4.6,
		Reviews:       203,
		Images:        []string{"/images/bluetooth-speaker.jpg"},
		InStock:       false,
		StockQuantity: 30,
		Features:      []string{"360\u00b0 Sound", "Waterproof", "12-hour Battery"},
		Specifications: map[string]string{
			"Battery Life": "12 hours",
			"Connectivity": "Bluetooth 5.0",
			"Water Rating": "IPX7",
		},
		CreatedAt:     seedDate("2024-01-04"),
	},
	{
		ID:            5,
		Name:          "Smartphone",
		Description:   "Latest flagship smartphone with advanced camera system",
		Price:         139999,
		OriginalPrice: 159999,
		Category:      "Electronics",
		Brand:         "TechPro",
		Rating:        4.7,
		Reviews:       342,
		Images:        []string{"/images/smartphone.png"},
		InStock:       true,
		StockQuantity: 20,
		Features:      []string{"Triple Camera", "5G Ready", "Fast Charging"},
		Specifications: map[string]string{
			"Display": "6.7 inch AMOLED",
			"Storage": "256GB",
			"RAM": "8GB",
		},
		CreatedAt:     seedDate("2024-01-05"),
	},
	{
		ID:            6,
		Name:          "Tablet",
		Description:   "High-performance tablet for work and entertainment",
		Price:         69999,
		OriginalPrice: 89999,
		Category:      "Electronics",
		Brand:         "TabletCorp",
		Rating:        4.4,
		Reviews:       178,
		Images:        []string{"/images/tablet.png"},
		InStock:       true,
		StockQuantity: 18,
		Features:      []string{"10.1 inch Display", "Stylus Support", "All-day Battery"},
		Specifications: map[string]string{
			"Display": "10.1 inch IPS",
			"Storage": "128GB",
			"Battery": "10 hours",
		},
		CreatedAt:     seedDate("2024-01-06"),
	},
	{
		ID:            7,
		Name:          "Gaming Mouse",
		Description:   "Professional gaming mouse with RGB lighting",
		Price:         8999,
		OriginalPrice: 12999,
		Category:      "Electronics",
		Brand:         "GameGear",
		Rating:        4.6,
		Reviews:       267,
		Images:        []string{"/images/gaming-mouse.png"},
		InStock:       true,
		StockQuantity: 45,
		Features:      []string{"RGB Lighting", "Programmable Buttons", "High DPI"},
		Specifications: map[string]string{
			"DPI": "16000",
			"Buttons": "8",
			"Connection": "USB",
		},
		CreatedAt:     seedDate("2024-01-07"),
	},
	{
		ID:            8,
		Name:          "Mechanical Keyboard",
		Description:   "Premium mechanical keyboard for gaming and typing",
		Price:         18999,
		OriginalPrice: 24999,
		Category:      "Electronics",
		Brand:         "KeyMaster",
		Rating:        4.5,
		Reviews:       189,
		Images:        []string{"/images/keyboard.png"},
		InStock:       true,
		StockQuantity: 35,
		Features:      []string{"Mechanical Switches", "Backlit Keys", "Compact Design"},
		Specifications: map[string]string{
			"Switch Type": "Blue",
			"Layout": "TKL",
			"Connection": "USB-C",
		},
		CreatedAt:     seedDate("2024-01-08"),
	},
	{
		ID:            9,
		Name:          "HD Webcam",
		Description:   "1080p webcam for video calls and streaming",
		Price:         12999,
		OriginalPrice: 16999,
		Category:      "Electronics",
		Brand:         "CamTech",
		Rating:        4.3,
		Reviews:       145,
		Images:        []string{"/images/webcam.png"},
		InStock:       true,
		StockQuantity: 40,
		Features:      []string{"1080p HD", "Auto Focus", "Built-in Mic"},
		Specifications: map[string]string{
			"Resolution": "1920x1080",
			"Frame Rate": "30fps",
			"Connection": "USB 3.0",
		},
		CreatedAt:     seedDate("2024-01-09"),
	},
	{
		ID:            10,
		Name:          "Power Bank",
		Description:   "High-capacity portable charger for all devices",
		Price:         6999,
		OriginalPrice: 9999,
		Category:      "Electronics",
		Brand:         "PowerMax",
		Rating:        4.4,
		Reviews:       298,
		Images:        []string{"/images/power-bank.png"},
		InStock:       true,
		StockQuantity: 60,
		Features:      []string{"20000mAh", "Fast Charging", "Multiple Ports"},
		Specifications: map[string]string{
			"Capacity": "20000mAh",
			"Ports": "3 USB",
			"Charging Speed": "18W",
		},
		CreatedAt:     seedDate("2024-01-10"),
	},
	{
		ID:            11,
		Name:          "Running Shoes",
		Description:   "Comfortable running shoes with advanced cushioning",
		Price:         36399,
		OriginalPrice: 44799,
		Category:      "Fashion",
		Brand:         "SportFlex",
		Rating:        4.4,
		Reviews:       95,
		Images:        []string{"/images/running-shoes.jpg"},
		InStock:       true,
		StockQuantity: 25,
		Features:      []string{"Breathable Mesh", "Cushioned Sole", "Lightweight"},
		Specifications: map[string]string{
			"Material": "Mesh & Synthetic",
			"Sole Type": "Rubber",
			"Weight": "280g",
		},
		CreatedAt:     seedDate("2024-01-11"),
	},
	{
		ID:            12,
		Name:          "Cotton T-Shirt",
		Description:   "Premium cotton t-shirt for everyday comfort",
		Price:         2999,
		OriginalPrice: 3999,
		Category:      "Fashion",
		Brand:         "ComfortWear",
		Rating:        4.2,
		Reviews:       156,
		Images:        []string{"/images/t-shirt.png"},
		InStock:       true,
		StockQuantity: 80,
		Features:      []string{"100% Cotton", "Pre-shrunk", "Soft Feel"},
		Specifications: map[string]string{
			"Material": "100% Cotton",
			"Fit": "Regular",
			"Care": "Machine Wash",
		},
		CreatedAt:     seedDate("2024-01-12"),
	},
	{
		ID:            13,
		Name:          "Denim Jeans",
		Description:   "Classic denim jeans with modern fit",
		Price:         8999,
		OriginalPrice: 12999,
		Category:      "Fashion",
		Brand:         "DenimCo",
		Rating:        4.3,
		Reviews:       234,
		Images:        []string{"/images/jeans.png"},
		InStock:       true,
		StockQuantity: 45,
		Features:      []string{"Stretch Denim", "Fade Resistant", "Comfortable Fit"},
		Specifications: map[string]string{
			"Material": "98% Cotton, 2% Elastane",
			"Fit": "Slim",
			"Wash": "Dark Blue",
		},
		CreatedAt:     seedDate("2024-01-13"),
	},
	{
		ID:            14,
		Name:          "Casual Sneakers",
		Description:   "Stylish casual sneakers for everyday wear",
		Price:         12999,
		OriginalPrice: 16999,
		Category:      "Fashion",
		Brand:         "UrbanStep",
		Rating:        4.5,
		Reviews:       187,
		Images:        []string{"/images/sneakers.png"},
		InStock:       true,
		StockQuantity: 35,
		Features:      []string{"Canvas Upper", "Rubber Sole", "Lace-up"},
		Specifications: map[string]string{
			"Material": "Canvas",
			"Sole Material": "Rubber",
			"Style": "Low-top",
		},
		CreatedAt:     seedDate("2024-01-14"),
	},
	{
		ID:            15,
		Name:          "Winter Jacket",
		Description:   "Warm winter jacket with water-resistant coating",
		Price:         18999,
		OriginalPrice: 24999,
		Category:      "Fashion",
		Brand:         "WarmWear",
		Rating:        4.6,
		Reviews:       123,
		Images:        []string{"/images/jacket.png"},
		InStock:       true,
		StockQuantity: 20,
		Features:      []string{"Water Resistant", "Insulated", "Multiple Pockets"},
		Specifications: map[string]string{
			"Material": "Polyester",
			"Insulation": "Synthetic",
			"Water Rating": "DWR",
		},
		CreatedAt:     seedDate("2024-01-15"),
	},
	{
		ID:            16,
		Name:          "Summer Dress",
		Description:   "Elegant summer dress for special occasions",
		Price:         14999,
		OriginalPrice: 19999,
		Category:      "Fashion",
		Brand:         "ElegantStyle",
		Rating:        4.4,
		Reviews:       89,
		Images:        []string{"/images/dress.png"},
		InStock:       true,
		StockQuantity: 30,
		Features:      []string{"Flowy Design", "Breathable Fabric", "Easy Care"},
		Specifications: map[string]string{
			"Material": "Polyester Blend",
			"Length": "Midi",
			"Sleeve": "Sleeveless",
		},
		CreatedAt:     seedDate("2024-01-16"),
	},
	{
		ID:            17,
		Name:          "Travel Backpack",
		Description:   "Durable travel backpack with multiple compartments",
		Price:         11999,
		OriginalPrice: 15999,
		Category:      "Fashion",
		Brand:         "TravelGear",
		Rating:        4.5,
		Reviews:       167,
		Images:        []string{"/images/backpack.png"},
		InStock:       true,
		StockQuantity: 40,
		Features:      []string{"Water Resistant", "Laptop Compartment", "Ergonomic"},
		Specifications: map[string]string{
			"Capacity": "35L",
			"Material": "Nylon",
			"Dimensions": "50x30x20cm",
		},
		CreatedAt:     seedDate("2024-01-17"),
	},
	{
		ID:            18,
		Name:          "Sunglasses",
		Description:   "UV protection sunglasses with polarized lenses",
		Price:         7999,
		OriginalPrice: 10999,
		Category:      "Fashion",
		Brand:         "SunShield",
		Rating:        4.3,
		Reviews:       145,
		Images:        []string{"/images/sunglasses.png"},
		InStock:       true,
		StockQuantity: 55,
		Features:      []string{"UV400 Protection", "Polarized", "Lightweight"},
		Specifications: map[string]string{
			"Lens Material": "Polycarbonate",
			"Frame Material": "Acetate",
			"UV Protection": "100%",
		},
		CreatedAt:     seedDate("2024-01-18"),
	},
	{
		ID:            19,
		Name:          "Analog Watch",
		Description:   "Classic analog watch with leather strap",
		Price:         16999,
		OriginalPrice: 22999,
		Category:      "Fashion",
		Brand:         "TimeClassic",
		Rating:        4.6,
		Reviews:       198,
		Images:        []string{"/images/watch-analog.png"},
		InStock:       true,
		StockQuantity: 25,
		Features:      []string{"Leather Strap", "Water Resistant", "Classic Design"},
		Specifications: map[string]string{
			"Movement": "Quartz",
			"Case Material": "Stainless Steel",
			"Water Resistance": "30m",
		},
		CreatedAt:     seedDate("2024-01-19"),
	},
	{
		ID:            20,
		Name:          "Leather Belt",
		Description:   "Genuine leather belt with metal buckle",
		Price:         4999,
		OriginalPrice: 6999,
		Category:      "Fashion",
		Brand:         "LeatherCraft",
		Rating:        4.2,
		Reviews:       134,
		Images:        []string{"/images/belt.png"},
		InStock:       true,
		StockQuantity: 70,
		Features:      []string{"Genuine Leather", "Metal Buckle", "Adjustable"},
		Specifications: map[string]string{
			"Material": "Genuine Leather",
			"Width": "3.5cm",
			"Length": "120cm",
		},
		CreatedAt:     seedDate("2024-01-20"),
	},
	{
		ID:            21,
		Name:          "Coffee Maker",
		Description:   "Automatic coffee maker with programmable timer",
		Price:         25199,
		OriginalPrice: 33599,
		Category:      "Home & Garden",
		Brand:         "BrewMaster",
		Rating:        4.2,
		Reviews:       67,
		Images:        []string{"/images/coffee-maker.jpg"},
		InStock:       true,
		StockQuantity: 15,
		Features:      []string{"Programmable", "Auto Shut-off", "12-cup Capacity"},
		Specifications: map[string]string{
			"Capacity": "12 cups",
			"Power": "1000W",
			"Material": "Stainless Steel",
		},
		CreatedAt:     seedDate("2024-01-21"),
	},
	{
		ID:            22,
		Name:          "Comfortable Sofa",
		Description:   "3-seater sofa with premium fabric upholstery",
		Price:         89999,
		OriginalPrice: 119999,
		Category:      "Home & Garden",
		Brand:         "ComfortHome",
		Rating:        4.5,
		Reviews:       89,
		Images:        []string{"/images/sofa.png"},
		InStock:       true,
		StockQuantity: 8,
		Features:      []string{"3-Seater", "Premium Fabric", "Sturdy Frame"},
		Specifications: map[string]string{
			"Seating": "3 People",
			"Material": "Fabric",
			"Dimensions": "200x90x85cm",
		},
		CreatedAt:     seedDate("2024-01-22"),
	},
	{
		ID:            23,
		Name:          "Dining Table",
		Description:   "Wooden dining table for 6 people",
		Price:         69999,
		OriginalPrice: 89999,
		Category:      "Home & Garden",
		Brand:         "WoodCraft",
		Rating:        4.4,
		Reviews:       76,
		Images:        []string{"/images/dining-table.png"},
		InStock:       true,
		StockQuantity: 12,
		Features:      []string{"Solid Wood", "6-Seater", "Easy Assembly"},
		Specifications: map[string]string{
			"Material": "Solid Wood",
			"Seating": "6 People",
			"Dimensions": "180x90x75cm",
		},
		CreatedAt:     seedDate("2024-01-23"),
	},
	{
		ID:            24,
		Name:          "Queen Bed Frame",
		Description:   "Modern queen size bed frame with headboard",
		Price:         54999,
		OriginalPrice: 69999,
		Category:      "Home & Garden",
		Brand:         "SleepWell",
		Rating:        4.3,
		Reviews:       112,
		Images:        []string{"/images/bed-frame.png"},
		InStock:       true,
		StockQuantity: 10,
		Features:      []string{"Queen Size", "Upholstered Headboard", "Sturdy Build"},
		Specifications: map[string]string{
			"Size": "Queen (150x200cm)",
			"Material": "Wood & Fabric",
			"Height": "120cm",
		},
		CreatedAt:     seedDate("2024-01-24"),
	},
	{
		ID:            25,
		Name:          "Table Lamp",
		Description:   "Modern table lamp with adjustable brightness",
		Price:         8999,
		OriginalPrice: 12999,
		Category:      "Home & Garden",
		Brand:         "LightUp",
		Rating:        4.2,
		Reviews:       145,
		Images:        []string{"/images/lamp.png"},
		InStock:       true,
		StockQuantity: 35,
		Features:      []string{"Adjustable Brightness", "Touch Control", "LED Bulb"},
		Specifications: map[string]string{
			"Light Type": "LED",
			"Power": "12W",
			"Height": "45cm",
		},
		CreatedAt:     seedDate("2024-01-25"),
	},
	{
		ID:            26,
		Name:          "Wall Mirror",
		Description:   "Decorative wall mirror with wooden frame",
		Price:         12999,
		OriginalPrice: 16999,
		Category:      "Home & Garden",
		Brand:         "ReflectStyle",
		Rating:        4.4,
		Reviews:       98,
		Images:        []string{"/images/mirror.png"},
		InStock:       true,
		StockQuantity: 25,
		Features:      []string{"Wooden Frame", "Easy Mounting", "Decorative"},
		Specifications: map[string]string{
			"Size": "60x80cm",
			"Frame Material": "Wood",
			"Shape": "Rectangular",
		},
		CreatedAt:     seedDate("2024-01-26"),
	},
	{
		ID:            27,
		Name:          "Plant Pot Set",
		Description:   "Set of 3 ceramic plant pots with drainage",
		Price:         4999,
		OriginalPrice: 6999,
		Category:      "Home & Garden",
		Brand:         "GreenThumb",
		Rating:        4.1,
		Reviews:       167,
		Images:        []string{"/images/plant-pot.png"},
		InStock:       true,
		StockQuantity: 50,
		Features:      []string{"Ceramic Material", "Drainage Holes", "Set of 3"},
		Specifications: map[string]string{
			"Material": "Ceramic",
			"Sizes": "Small, Medium, Large",
			"Drainage": "Yes",
		},
		CreatedAt:     seedDate("2024-01-27"),
	},
	{
		ID:            28,
		Name:          "Window Curtains",
		Description:   "Blackout curtains for bedroom and living room",
		Price:         7999,
		OriginalPrice: 10999,
		Category:      "Home & Garden",
		Brand:         "WindowStyle",
		Rating:        4.3,
		Reviews:       134,
		Images:        []string{"/images/curtains.png"},
		InStock:       true,
		StockQuantity: 40,
		Features:      []string{"Blackout", "Thermal Insulated", "Easy Installation"},
		Specifications: map[string]string{
			"Size": "140x240cm",
			"Material": "Polyester",
			"Light Blocking": "99%",
		},
		CreatedAt:     seedDate("2024-01-28"),
	},
	{
		ID:            29,
		Name:          "Area Rug",
		Description:   "Soft area rug for living room decoration",
		Price:         15999,
		OriginalPrice: 21999,
		Category:      "Home & Garden",
		Brand:         "RugMaster",
		Rating:        4.5,
		Reviews:       89,
		Images:        []string{"/images/rug.png"},
		InStock:       true,
		StockQuantity: 20,
		Features:      []string{"Soft Texture", "Non-slip", "Easy Clean"},
		Specifications: map[string]string{
			"Size": "200x300cm",
			"Material": "Polyester",
			"Thickness": "12mm",
		},
		CreatedAt:     seedDate("2024-01-29"),
	},
	{
		ID:            30,
		Name:          "Bookshelf",
		Description:   "5-tier wooden bookshelf for home office",
		Price:         18999,
		OriginalPrice: 24999,
		Category:      "Home & Garden",
		Brand:         "StudySpace",
		Rating:        4.4,
		Reviews:       156,
		Images:        []string{"/images/bookshelf.png"},
		InStock:       true,
		StockQuantity: 15,
		Features:      []string{"5 Tiers", "Solid Wood", "Easy Assembly"},
		Specifications: map[string]string{
			"Material": "Solid Wood",
			"Tiers": "5",
			"Dimensions": "80x30x180cm",
		},
		CreatedAt:     seedDate("2024-01-30"),
	},
	{
		ID:            31,
		Name:          "Basketball",
		Description:   "Official size basketball for indoor and outdoor play",
		Price:         3999,
		OriginalPrice: 5999,
		Category:      "Sports",
		Brand:         "SportsPro",
		Rating:        4.3,
		Reviews:       189,
		Images:        []string{"/images/basketball.png"},
		InStock:       true,
		StockQuantity: 60,
		Features:      []string{"Official Size", "Durable", "Good Grip"},
		Specifications: map[string]string{
			"Size": "Size 7",
			"Material": "Synthetic Leather",
			"Suitable For": "Indoor/Outdoor",
		},
		CreatedAt:     seedDate("2024-01-31"),
	},
	{
		ID:            32,
		Name:          "Tennis Racket",
		Description:   "Professional tennis racket for intermediate players",
		Price:         14999,
		OriginalPrice: 19999,
		Category:      "Sports",
		Brand:         "TennisAce",
		Rating:        4.5,
		Reviews:       123,
		Images:        []string{"/images/tennis-racket.png"},
		InStock:       true,
		StockQuantity: 25,
		Features:      []string{"Lightweight", "Good Control", "Durable Strings"},
		Specifications: map[string]string{
			"Weight": "280g",
			"Head Size": "100 sq in",
			"String Pattern": "16x19",
		},
		CreatedAt:     seedDate("2024-02-01"),
	},
	{
		ID:            33,
		Name:          "Yoga Mat",
		Description:   "Non-slip yoga mat for home workouts",
		Price:         5999,
		OriginalPrice: 7999,
		Category:      "Sports",
		Brand:         "YogaFlow",
		Rating:        4.4,
		Reviews:       267,
		Images:        []string{"/images/yoga-mat.png"},
		InStock:       true,
		StockQuantity: 45,
		Features:      []string{"Non-slip", "Eco-friendly", "Lightweight"},
		Specifications: map[string]string{
			"Size": "183x61cm",
			"Thickness": "6mm",
			"Material": "TPE",
		},
		CreatedAt:     seedDate("2024-02-02"),
	},
	{
		ID:            34,
		Name:          "Dumbbell Set",
		Description:   "Adjustable dumbbell set for home gym",
		Price:         24999,
		OriginalPrice: 32999,
		Category:      "Sports",
		Brand:         "FitStrong",
		Rating:        4.6,
		Reviews:       145,
		Images:        []string{"/images/dumbbells.png"},
		InStock:       true,
		StockQuantity: 20,
		Features:      []string{"Adjustable Weight", "Comfortable Grip", "Space Saving"},
		Specifications: map[string]string{
			"Weight Range": "5-25kg each",
			"Material": "Cast Iron",
			"Grip Type": "Knurled",
		},
		CreatedAt:     seedDate("2024-02-03"),
	},
	{
		ID:            35,
		Name:          "Mountain Bike",
		Description:   "21-speed mountain bike for outdoor adventures",
		Price:         89999,
		OriginalPrice: 119999,
		Category:      "Sports",
		Brand:         "TrailRider",
		Rating:        4.5,
		Reviews:       98,
		Images:        []string{"/images/bicycle.png"},
		InStock:       true,
		StockQuantity: 8,
		Features:      []string{"21 Speeds", "Suspension Fork", "Disc Brakes"},
		Specifications: map[string]string{
			"Wheel Size": "26 inch",
			"Speeds": "21",
			"Frame Material": "Aluminum",
		},
		CreatedAt:     seedDate("2024-02-04"),
	},
	{
		ID:            36,
		Name:          "Football",
		Description:   "Official size football for training and matches",
		Price:         2999,
		OriginalPrice: 3999,
		Category:      "Sports",
		Brand:         "KickMaster",
		Rating:        4.2,
		Reviews:       234,
		Images:        []string{"/images/football.png"},
		InStock:       true,
		StockQuantity: 70,
		Features:      []string{"Official Size", "Durable", "Good Flight"},
		Specifications: map[string]string{
			"Size": "Size 5",
			"Material": "PU Leather",
			"Weight": "410-450g",
		},
		CreatedAt:     seedDate("2024-02-05"),
	},
	{
		ID:            37,
		Name:          "Swimming Goggles",
		Description:   "Anti-fog swimming goggles with UV protection",
		Price:         1999,
		OriginalPrice: 2999,
		Category:      "Sports",
		Brand:         "AquaVision",
		Rating:        4.3,
		Reviews:       178,
		Images:        []string{"/images/swimming-goggles.png"},
		InStock:       true,
		StockQuantity: 80,
		Features:      []string{"Anti-fog", "UV Protection", "Adjustable Strap"},
		Specifications: map[string]string{
			"Lens Type": "Polycarbonate",
			"UV Protection": "Yes",
			"Strap Material": "Silicone",
		},
		CreatedAt:     seedDate("2024-02-06"),
	},
	{
		ID:            38,
		Name:          "Gym Bag",
		Description:   "Spacious gym bag with shoe compartment",
		Price:         8999,
		OriginalPrice: 11999,
		Category:      "Sports",
		Brand:         "FitCarry",
		Rating:        4.4,
		Reviews:       156,
		Images:        []string{"/images/gym-bag.png"},
		InStock:       true,
		StockQuantity: 35,
		Features:      []string{"Shoe Compartment", "Water Resistant", "Multiple Pockets"},
		Specifications: map[string]string{
			"Capacity": "40L",
			"Material": "Polyester",
			"Dimensions": "55x25x25cm",
		},
		CreatedAt:     seedDate("2024-02-07"),
	},
	{
		ID:            39,
		Name:          "Protein Shaker",
		Description:   "BPA-free protein shaker with mixing ball",
		Price:         1499,
		OriginalPrice: 1999,
		Category:      "Sports",
		Brand:         "ShakeFit",
		Rating:        4.1,
		Reviews:       289,
		Images:        []string{"/images/protein-shaker.png"},
		InStock:       true,
		StockQuantity: 90,
		Features:      []string{"BPA-free", "Leak Proof", "Mixing Ball"},
		Specifications: map[string]string{
			"Capacity": "600ml",
			"Material": "Tritan Plastic",
			"Dishwasher Safe": "Yes",
		},
		CreatedAt:     seedDate("2024-02-08"),
	},
}
