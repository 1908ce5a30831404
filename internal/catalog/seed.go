package catalog

import "github.com/voltkart/storefront-backend/pkg/enums"

func intPtr(v int) *int { return &v }

// seedProducts returns the static storefront catalog. Order matters:
// browse results and featured picks follow it.
func seedProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "E-Bike",
			Category:      enums.ProductCategoryBikeConversion,
			Price:         60000,
			OriginalPrice: intPtr(100000),
			Image:         "https://i.postimg.cc/x8Cj3WZj/e-bike-0.jpg",
			Images: []string{
				"https://i.postimg.cc/x8Cj3WZj/e-bike-0.jpg",
				"https://i.postimg.cc/Bbk3ctDN/e-bike-1.jpg",
			},
			Description: "Want to get your bike converted into E-BIKE ... Try this !",
			Features: []string{
				"Conversion from Fuel to Electric",
				"Electric Motor Drive",
				"Rechargeable Battery System",
				"Cost-Effective Operation",
				"Eco-Friendly Transportation",
			},
			Specifications: map[string]string{
				"Motor":         "1000W Brushless DC Hub Motor",
				"Battery":       "60V / 30Ah Lithium-ion (removable)",
				"Range":         "60–80 km per charge",
				"Top Speed":     "Up to 60 km/h (varies by motor)",
				"Charging Time": "4–5 hours",
				"Brakes":        "Front & rear disc brakes",
				"Frame":         "Original bike frame with minimal modifications",
			},
			InStock: true,
			Rating:  4.8,
			Reviews: 127,
		},
		{
			ID:            "2",
			Name:          "Solar Tricycle",
			Category:      enums.ProductCategoryCycleConversion,
			Price:         50000,
			OriginalPrice: intPtr(54000),
			Image:         "https://i.postimg.cc/3wqkvY1B/wheelchair-tricycle-0.jpg",
			Images: []string{
				"https://i.postimg.cc/xTgTm9Tz/wheelchair-tricycle-1.jpg",
				"https://i.postimg.cc/3wqkvY1B/wheelchair-tricycle-0.jpg",
			},
			Description: "Want to buy a unique gift for someone .. Contact Us",
			Features: []string{
				"Solar Charging System",
				"Dual Power Source",
				"Hybrid Design",
				"Accessibility-Focused",
				"Eco-Friendly Mobility",
				"Durable Build for Rural Terrain",
			},
			Specifications: map[string]string{
				"Power":    "100–200W solar panel + 24V/36V battery",
				"Motor":    "250W–500W BLDC motor",
				"Range":    "30–50 km per charge",
				"Speed":    "Up to 20 km/h",
				"Charging": "5–6 hours (solar or plug-in)",
				"Frame":    "Lightweight, off-road capable",
				"Wheels":   "3-wheel with suspension for stability",
			},
			InStock: true,
			Rating:  4.6,
			Reviews: 89,
		},
		{
			ID:            "3",
			Name:          "Smart Curtains",
			Category:      enums.ProductCategoryBikeConversion,
			Price:         6000,
			OriginalPrice: intPtr(8000),
			Image:         "https://i.postimg.cc/hjHMpFD8/iot-curtains.jpg",
			Images: []string{
				"https://i.postimg.cc/hjHMpFD8/iot-curtains.jpg",
			},
			Description: "Want your office/home to be automated through voice ! Try these",
			Features: []string{
				"Mobile App Control",
				"Voice Assistant Integration",
				"Light & Temperature Sensors",
				"Automatically adjust curtains based on sunlight or room temperature",
				"Energy Efficiency",
				"Timer & Routine Automation",
				"Accessibility Friendly",
				"Easy Installation & Compatibility",
			},
			Specifications: map[string]string{
				"Motor":        "Quiet DC motor (≤ 40 dB noise)",
				"Control":      "Mobile app + voice (Alexa, Google, Siri)",
				"Connectivity": "Wi-Fi / Bluetooth / Zigbee",
				"Power":        "AC or battery (solar optional)",
				"Automation":   "Timer, schedule, sunlight-based",
				"Curtain Type": "Supports rods, rails, tracks",
				"Price":        "Rs. 5000/window",
			},
			InStock: true,
			Rating:  4.9,
			Reviews: 156,
		},
		{
			ID:            "4",
			Name:          "Smart Display",
			Category:      enums.ProductCategoryCycleConversion,
			Price:         9000,
			OriginalPrice: intPtr(12000),
			Image:         "https://i.postimg.cc/zXqT5Dcb/electric-matrix-notice-board.jpg",
			Images: []string{
				"https://i.postimg.cc/zXqT5Dcb/electric-matrix-notice-board.jpg",
			},
			Description: "Want To Display Your Message, Anytime, Anywhere .. Own It Now",
			Features: []string{
				"IoT‑Enabled",
				"High Brightness",
				"Energy Efficient",
				"Dynamic Display",
				"Weather‑Resistant",
				"Real‑Time Updates",
				"Easy Installation",
			},
			Specifications: map[string]string{
				"Display Type":      "LED Matrix",
				"Pixel Pitch":       "3mm / 5mm / 10mm (as per model)",
				"Brightness":        "≥ 5000 nits (outdoor) / ≥ 1000 nits (indoor)",
				"Supported Content": "Text, Images, Animations, Real‑time Data Feeds",
				"Power Supply":      "110V/220V AC",
				"Power Consumption": "~50–150W (depends on size)",
				"Material":          "Aluminum/Steel frame with weather‑resistant coating",
				"Applications":      "Schools, Public Spaces, Offices, Transportation Hubs",
			},
			InStock: true,
			Rating:  4.4,
			Reviews: 73,
		},
		{
			ID:            "5",
			Name:          "Smart Barricade",
			Category:      enums.ProductCategoryBikeConversion,
			Price:         15000,
			OriginalPrice: intPtr(17500),
			Image:         "https://i.postimg.cc/fyCtkXr3/Smart-Barricade-0.jpg",
			Images: []string{
				"https://i.postimg.cc/fyCtkXr3/Smart-Barricade-0.jpg",
			},
			Description: "Wants to Secure Smarter Where Safety Meets Innovation ! Try it",
			Features: []string{
				"IoT-Enabled Control",
				"Vehicle Detection",
				"Solar Powered Operation",
				"Smart Alerts & Indicators",
				"Automated Movement",
				"Real-Time Data Logging",
				"Enhanced Road Safety",
			},
			Specifications: map[string]string{
				"Controller":    "ESP32 / Arduino with IoT module",
				"Connectivity":  "Wi-Fi / GSM for real-time control",
				"Sensors":       "Ultrasonic or IR for vehicle detection",
				"Power":         "Solar-powered with battery backup",
				"Display":       "LED lights and warning indicators",
				"Automation":    "Auto open/close based on traffic input",
				"App Interface": "Live monitoring and alerts via mobile/web",
			},
			InStock: false,
			Rating:  4.7,
			Reviews: 94,
		},
		{
			ID:            "6",
			Name:          "E-Cycle",
			Category:      enums.ProductCategoryCycleConversion,
			Price:         21000,
			OriginalPrice: intPtr(23000),
			Image:         "https://i.postimg.cc/9MpFB2tK/e-cycle-0.jpg",
			Images: []string{
				"https://i.postimg.cc/9MpFB2tK/e-cycle-0.jpg",
				"https://i.postimg.cc/jq1rYC5v/e-cycle-1.jpg",
			},
			Description: "Want To Ride Eco-friendly .. Give it a go",
			Features: []string{
				"Lightweight Electric Motor",
				"Long-Lasting Battery",
				"Lightweight Frame Design",
				"Smart Pedal Assist System (PAS)",
				"Digital Display Console",
				"Anti-Theft & Locking System",
				"Urban-Ready Features",
				"Safety & Braking System",
				"Eco-Friendly Transportation",
				"Easy Maintenance",
			},
			Specifications: map[string]string{
				"Motor":         "250W brushless hub motor",
				"Battery":       "36V, 10.4Ah lithium-ion (removable)",
				"Range":         "Up to 60 km per charge (pedal assist mode)",
				"Top Speed":     "25 km/h (as per Indian regulations)",
				"Frame":         "Lightweight aluminum alloy",
				"Brakes":        "Dual disc brakes (front & rear)",
				"Charging Time": "4–6 hours",
			},
			InStock: true,
			Rating:  4.5,
			Reviews: 45,
		},
		{
			ID:            "7",
			Name:          "Electric Kick Scooter",
			Category:      enums.ProductCategoryCycleConversion,
			Price:         30000,
			OriginalPrice: intPtr(32000),
			Image:         "https://i.postimg.cc/J7dwqvZt/electric-scooter-0.jpg",
			Images: []string{
				"https://i.postimg.cc/J7dwqvZt/electric-scooter-0.jpg",
			},
			Description: "Why Walk When You Can Fly on Wheels? .. Go For It",
			Features: []string{
				"Compact & Lightweight Design",
				"Rechargeable Battery",
				"Smooth Electric Ride",
				"Digital Dashboard",
				"Safety Features",
				"Ideal for Urban Use",
				"Eco-Friendly Mobility",
			},
			Specifications: map[string]string{
				"Motor":         "250W–350W hub motor",
				"Battery":       "36V / 7.5–10Ah lithium-ion battery",
				"Range":         "20–40 km per charge",
				"Top Speed":     "Up to 25 km/h (urban legal limit)",
				"Charging Time": "3–5 hours",
				"Frame":         "Foldable aluminum alloy, lightweight (~12–15 kg)",
				"Brakes":        "Electronic + rear disc or foot brake",
			},
			InStock: true,
			Rating:  4.5,
			Reviews: 45,
		},
		{
			ID:            "8",
			Name:          "Smart Wheel Chair",
			Category:      enums.ProductCategoryCycleConversion,
			Price:         40000,
			OriginalPrice: intPtr(44000),
			Image:         "https://i.postimg.cc/0yRBXsQ5/electric-wheel-chair.jpg",
			Images: []string{
				"https://i.postimg.cc/0yRBXsQ5/electric-wheel-chair.jpg",
			},
			Description: "Ready to Roll Your Way with Smart Wheel Chair.. Give it a shot!",
			Features: []string{
				"IoT Integration",
				"Health Monitoring System",
				"GPS Tracking & Geo-fencing",
				"Fall & Tilt Detection",
				"Mobile App Control",
				"Dual Control Modes",
				"Long Battery Life",
				"Smart Alerts & Notifications",
			},
			Specifications: map[string]string{
				"Controller":   "ESP32 / Arduino / Raspberry Pi with IoT capabilities",
				"Connectivity": "Wi-Fi, Bluetooth, GSM (optional for SMS alerts), GPS",
				"Mobility":     "Motorized wheels, joystick/app-based control",
				"Speed":        "Up to 6–8 km/h",
				"Battery":      "24V or 36V lithium-ion battery, 6–8 hours backup",
				"Navigation":   "Real-time GPS tracking, route tracking via mobile app",
				"Mobile App":   "Health data dashboard, alerts, battery status, live location",
			},
			InStock: true,
			Rating:  4.5,
			Reviews: 45,
		},
		{
			ID:            "9",
			Name:          "Office/Home Automation",
			Category:      enums.ProductCategoryCycleConversion,
			Price:         15000,
			OriginalPrice: intPtr(17000),
			Image:         "https://i.postimg.cc/8cv4QZPQ/Screenshot-2025-08-05-184526.png",
			Images: []string{
				"https://i.postimg.cc/8cv4QZPQ/Screenshot-2025-08-05-184526.png",
				"https://i.postimg.cc/FHpZ4dmR/Screenshot-2025-08-05-184659.png",
			},
			Description: "Want to Convert Your Home Into Smart Home/Office.. Say YES to it",
			Features: []string{
				"Centralized Smart Control",
				"Automation & Scheduling",
				"Smart Sensors",
				"Enhanced Security",
				"Energy Efficiency",
				"Intelligent Climate Control",
				"Real-Time Alerts & Monitoring",
			},
			Specifications: map[string]string{
				"Connectivity":      "Wi-Fi / Zigbee / Bluetooth",
				"Control":           "Central dashboard via app/web",
				"Smart Devices":     "Lights, ACs, fans, blinds, projectors",
				"Sensors":           "Motion, temperature, light, occupancy",
				"Automation":        "Schedule & sensor-based rules",
				"Security":          "Smart locks, CCTV, access alerts",
				"Energy Monitoring": "Real-time power usage tracking",
			},
			InStock: true,
			Rating:  4.5,
			Reviews: 45,
		},
	}
}
