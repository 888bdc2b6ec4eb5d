package services

import "github.com/Geraxi/Flight-Fuel-sub000/models"

// getDefaultAirportCatalog defines the static airport reference data.
// Coordinates are decimal degrees. The set covers the major hubs the app's
// pilot user base flies between; a real scheduling feed is out of scope.
func getDefaultAirportCatalog() []models.Airport {
	return []models.Airport{
		{Code: "LHR", Name: "Heathrow", City: "London", Country: "United Kingdom", Lat: 51.4700, Lon: -0.4543},
		{Code: "LGW", Name: "Gatwick", City: "London", Country: "United Kingdom", Lat: 51.1537, Lon: -0.1821},
		{Code: "MAN", Name: "Manchester", City: "Manchester", Country: "United Kingdom", Lat: 53.3654, Lon: -2.2728},
		{Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Country: "France", Lat: 49.0097, Lon: 2.5479},
		{Code: "AMS", Name: "Schiphol", City: "Amsterdam", Country: "Netherlands", Lat: 52.3105, Lon: 4.7683},
		{Code: "FRA", Name: "Frankfurt", City: "Frankfurt", Country: "Germany", Lat: 50.0379, Lon: 8.5622},
		{Code: "MAD", Name: "Barajas", City: "Madrid", Country: "Spain", Lat: 40.4983, Lon: -3.5676},
		{Code: "BCN", Name: "El Prat", City: "Barcelona", Country: "Spain", Lat: 41.2974, Lon: 2.0833},
		{Code: "FCO", Name: "Fiumicino", City: "Rome", Country: "Italy", Lat: 41.8003, Lon: 12.2389},
		{Code: "ZRH", Name: "Zurich", City: "Zurich", Country: "Switzerland", Lat: 47.4647, Lon: 8.5492},
		{Code: "IST", Name: "Istanbul", City: "Istanbul", Country: "Turkey", Lat: 41.2753, Lon: 28.7519},
		{Code: "DXB", Name: "Dubai International", City: "Dubai", Country: "United Arab Emirates", Lat: 25.2532, Lon: 55.3657},
		{Code: "DOH", Name: "Hamad", City: "Doha", Country: "Qatar", Lat: 25.2731, Lon: 51.6081},
		{Code: "JFK", Name: "John F. Kennedy", City: "New York", Country: "United States", Lat: 40.6413, Lon: -73.7781},
		{Code: "EWR", Name: "Newark Liberty", City: "Newark", Country: "United States", Lat: 40.6895, Lon: -74.1745},
		{Code: "BOS", Name: "Logan", City: "Boston", Country: "United States", Lat: 42.3656, Lon: -71.0096},
		{Code: "ORD", Name: "O'Hare", City: "Chicago", Country: "United States", Lat: 41.9742, Lon: -87.9073},
		{Code: "MIA", Name: "Miami International", City: "Miami", Country: "United States", Lat: 25.7959, Lon: -80.2870},
		{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Country: "United States", Lat: 33.9416, Lon: -118.4085},
		{Code: "SFO", Name: "San Francisco International", City: "San Francisco", Country: "United States", Lat: 37.6213, Lon: -122.3790},
		{Code: "YYZ", Name: "Pearson", City: "Toronto", Country: "Canada", Lat: 43.6777, Lon: -79.6248},
		{Code: "GRU", Name: "Guarulhos", City: "Sao Paulo", Country: "Brazil", Lat: -23.4356, Lon: -46.4731},
		{Code: "JNB", Name: "O.R. Tambo", City: "Johannesburg", Country: "South Africa", Lat: -26.1367, Lon: 28.2411},
		{Code: "CAI", Name: "Cairo International", City: "Cairo", Country: "Egypt", Lat: 30.1219, Lon: 31.4056},
		{Code: "DEL", Name: "Indira Gandhi", City: "Delhi", Country: "India", Lat: 28.5562, Lon: 77.1000},
		{Code: "BOM", Name: "Chhatrapati Shivaji", City: "Mumbai", Country: "India", Lat: 19.0896, Lon: 72.8656},
		{Code: "SIN", Name: "Changi", City: "Singapore", Country: "Singapore", Lat: 1.3644, Lon: 103.9915},
		{Code: "BKK", Name: "Suvarnabhumi", City: "Bangkok", Country: "Thailand", Lat: 13.6900, Lon: 100.7501},
		{Code: "HKG", Name: "Hong Kong International", City: "Hong Kong", Country: "Hong Kong", Lat: 22.3080, Lon: 113.9185},
		{Code: "NRT", Name: "Narita", City: "Tokyo", Country: "Japan", Lat: 35.7720, Lon: 140.3929},
		{Code: "HND", Name: "Haneda", City: "Tokyo", Country: "Japan", Lat: 35.5494, Lon: 139.7798},
		{Code: "ICN", Name: "Incheon", City: "Seoul", Country: "South Korea", Lat: 37.4602, Lon: 126.4407},
		{Code: "SYD", Name: "Kingsford Smith", City: "Sydney", Country: "Australia", Lat: -33.9399, Lon: 151.1753},
		{Code: "MEL", Name: "Tullamarine", City: "Melbourne", Country: "Australia", Lat: -37.6690, Lon: 144.8410},
		{Code: "AKL", Name: "Auckland", City: "Auckland", Country: "New Zealand", Lat: -37.0082, Lon: 174.7850},
	}
}
