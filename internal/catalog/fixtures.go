package catalog

import "github.com/rentx-lk/rentx-api/internal/models"

// Fixture is the built-in vehicle listing served by the catalog.
var Fixture = []models.Vehicle{
	{
		ID: "toyota-prius-2021", Name: "Toyota Prius", Type: models.TypeSedan,
		Transmission: models.TransmissionAutomatic, Fuel: "hybrid", Seats: 5, Year: 2021,
		PricePerDay: 65, Location: "Colombo", Province: "Western", Rating: 4.8, ReviewCount: 124,
		HasDriverOption: true,
		Images:          []string{"/images/vehicles/prius-1.jpg", "/images/vehicles/prius-2.jpg"},
		Description:     "Quiet, fuel-efficient hybrid for city errands and airport runs.",
	},
	{
		ID: "toyota-land-cruiser-2020", Name: "Toyota Land Cruiser Prado", Type: models.TypeSUV,
		Transmission: models.TransmissionAutomatic, Fuel: "diesel", Seats: 7, Year: 2020,
		PricePerDay: 180, Location: "Kandy", Province: "Central", Rating: 4.9, ReviewCount: 86,
		HasDriverOption: true,
		Images:          []string{"/images/vehicles/prado-1.jpg"},
		Description:     "Full-size four-wheel drive for hill country roads and family tours.",
	},
	{
		ID: "suzuki-wagon-r-2019", Name: "Suzuki Wagon R", Type: models.TypeHatchback,
		Transmission: models.TransmissionAutomatic, Fuel: "petrol", Seats: 4, Year: 2019,
		PricePerDay: 30, Location: "Colombo", Province: "Western", Rating: 4.5, ReviewCount: 210,
		Images:      []string{"/images/vehicles/wagonr-1.jpg"},
		Description: "Compact and easy to park. The budget choice for getting around Colombo.",
	},
	{
		ID: "toyota-kdh-2018", Name: "Toyota KDH High Roof", Type: models.TypeVan,
		Transmission: models.TransmissionManual, Fuel: "diesel", Seats: 14, Year: 2018,
		PricePerDay: 120, Location: "Negombo", Province: "Western", Rating: 4.6, ReviewCount: 57,
		HasDriverOption: true,
		Images:          []string{"/images/vehicles/kdh-1.jpg", "/images/vehicles/kdh-2.jpg"},
		Description:     "Roomy van for groups and airport transfers, luggage space included.",
	},
	{
		ID: "bajaj-re-2022", Name: "Bajaj RE Tuk-Tuk", Type: models.TypeTukTuk,
		Transmission: models.TransmissionManual, Fuel: "petrol", Seats: 3, Year: 2022,
		PricePerDay: 20, Location: "Galle", Province: "Southern", Rating: 4.7, ReviewCount: 312,
		Images:      []string{"/images/vehicles/tuktuk-1.jpg"},
		Description: "Drive yourself along the southern coast in a classic three-wheeler.",
	},
	{
		ID: "honda-vezel-2021", Name: "Honda Vezel", Type: models.TypeSUV,
		Transmission: models.TransmissionAutomatic, Fuel: "hybrid", Seats: 5, Year: 2021,
		PricePerDay: 85, Location: "Colombo", Province: "Western", Rating: 4.7, ReviewCount: 98,
		HasDriverOption: true,
		Images:          []string{"/images/vehicles/vezel-1.jpg"},
		Description:     "Compact hybrid crossover with plenty of boot space.",
	},
	{
		ID: "honda-cd-125-2020", Name: "Honda CD 125", Type: models.TypeMotorbike,
		Transmission: models.TransmissionManual, Fuel: "petrol", Seats: 2, Year: 2020,
		PricePerDay: 15, Location: "Mirissa", Province: "Southern", Rating: 4.4, ReviewCount: 143,
		Description: "Light motorbike for beach hopping between Mirissa and Weligama.",
	},
	{
		ID: "mercedes-e-class-2022", Name: "Mercedes-Benz E-Class", Type: models.TypeLuxury,
		Transmission: models.TransmissionAutomatic, Fuel: "petrol", Seats: 5, Year: 2022,
		PricePerDay: 240, Location: "Colombo", Province: "Western", Rating: 5.0, ReviewCount: 31,
		HasDriverOption: true,
		Images:          []string{"/images/vehicles/eclass-1.jpg", "/images/vehicles/eclass-2.jpg"},
		Description:     "Chauffeur-ready executive saloon for weddings and business travel.",
	},
	{
		ID: "toyota-axio-2017", Name: "Toyota Axio", Type: models.TypeSedan,
		Transmission: models.TransmissionAutomatic, Fuel: "petrol", Seats: 5, Year: 2017,
		PricePerDay: 45, Location: "Kandy", Province: "Central", Rating: 4.3, ReviewCount: 167,
		Images:      []string{"/images/vehicles/axio-1.jpg"},
		Description: "Reliable everyday sedan, a favourite with local drivers.",
	},
	{
		ID: "mitsubishi-montero-2019", Name: "Mitsubishi Montero Sport", Type: models.TypeSUV,
		Transmission: models.TransmissionAutomatic, Fuel: "diesel", Seats: 7, Year: 2019,
		PricePerDay: 150, Location: "Nuwara Eliya", Province: "Central", Rating: 4.6, ReviewCount: 44,
		HasDriverOption: true,
		Images:          []string{"/images/vehicles/montero-1.jpg"},
		Description:     "Sure-footed on misty tea estate roads.",
	},
	{
		ID: "toyota-coaster-2016", Name: "Toyota Coaster", Type: models.TypeMinibus,
		Transmission: models.TransmissionManual, Fuel: "diesel", Seats: 29, Year: 2016,
		PricePerDay: 210, Location: "Anuradhapura", Province: "North Central", Rating: 4.2, ReviewCount: 22,
		HasDriverOption: true,
		Description:     "Minibus with driver for pilgrim tours of the cultural triangle.",
	},
	{
		ID: "nissan-leaf-2020", Name: "Nissan Leaf", Type: models.TypeHatchback,
		Transmission: models.TransmissionAutomatic, Fuel: "electric", Seats: 5, Year: 2020,
		PricePerDay: 55, Location: "Colombo", Province: "Western", Rating: 4.5, ReviewCount: 76,
		Images:      []string{"/images/vehicles/leaf-1.jpg"},
		Description: "Electric hatchback with home-charger cable included.",
	},
	{
		ID: "suzuki-alto-2018", Name: "Suzuki Alto", Type: models.TypeHatchback,
		Transmission: models.TransmissionManual, Fuel: "petrol", Seats: 4, Year: 2018,
		PricePerDay: 25, Location: "Jaffna", Province: "Northern", Rating: 4.1, ReviewCount: 88,
		Description: "Simple and economical runabout for exploring the peninsula.",
	},
	{
		ID: "toyota-hiace-2019", Name: "Toyota HiAce", Type: models.TypeVan,
		Transmission: models.TransmissionAutomatic, Fuel: "diesel", Seats: 10, Year: 2019,
		PricePerDay: 110, Location: "Trincomalee", Province: "Eastern", Rating: 4.5, ReviewCount: 39,
		HasDriverOption: true,
		Images:          []string{"/images/vehicles/hiace-1.jpg"},
		Description:     "Comfortable van for east coast beach trips.",
	},
	{
		ID: "yamaha-fz-2021", Name: "Yamaha FZ", Type: models.TypeMotorbike,
		Transmission: models.TransmissionManual, Fuel: "petrol", Seats: 2, Year: 2021,
		PricePerDay: 18, Location: "Ella", Province: "Uva", Rating: 4.8, ReviewCount: 201,
		Images:      []string{"/images/vehicles/fz-1.jpg"},
		Description: "Nimble street bike made for the Ella gap and Little Adam's Peak.",
	},
	{
		ID: "kia-sorento-2022", Name: "Kia Sorento", Type: models.TypeSUV,
		Transmission: models.TransmissionAutomatic, Fuel: "diesel", Seats: 7, Year: 2022,
		PricePerDay: 160, Location: "Galle", Province: "Southern", Rating: 4.7, ReviewCount: 18,
		HasDriverOption: true,
		Images:          []string{"/images/vehicles/sorento-1.jpg"},
		Description:     "Seven-seat SUV for families touring the fort and the beaches.",
	},
	{
		ID: "bmw-5-series-2021", Name: "BMW 5 Series", Type: models.TypeLuxury,
		Transmission: models.TransmissionAutomatic, Fuel: "petrol", Seats: 5, Year: 2021,
		PricePerDay: 230, Location: "Colombo", Province: "Western", Rating: 4.9, ReviewCount: 27,
		HasDriverOption: true,
		Images:          []string{"/images/vehicles/bmw5-1.jpg"},
		Description:     "Executive comfort with optional chauffeur.",
	},
	{
		ID: "tata-nano-2015", Name: "Tata Nano", Type: models.TypeHatchback,
		Transmission: models.TransmissionManual, Fuel: "petrol", Seats: 4, Year: 2015,
		PricePerDay: 12, Location: "Ratnapura", Province: "Sabaragamuwa", Rating: 3.9, ReviewCount: 14,
		Description: "The cheapest way onto four wheels in gem country.",
	},
}
